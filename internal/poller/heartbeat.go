package poller

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"hwbot/pkg/logx"
)

// StartHeartbeat schedules a liveness summary message on the given cron
// spec (standard 5-field syntax, or @every / @daily descriptors). Returns
// a stop function; a bad spec fails before anything is scheduled.
func (p *Poller) StartHeartbeat(spec string) (func(), error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := p.notifier.Notify(ctx, "Бот на связи. "+p.StatusLine()); err != nil {
			p.log.Warn("heartbeat delivery failed", logx.Err(err))
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	p.log.Info("heartbeat scheduled", logx.String("spec", spec))
	return func() { c.Stop() }, nil
}
