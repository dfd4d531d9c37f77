// Package poller runs the polling/sleeping cycle: fetch homework statuses
// from the cursor, translate the first change into a chat message, advance
// the cursor, sleep, repeat. Recoverable errors become a single chat
// notification per distinct error; the loop itself never dies.
package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"hwbot/internal/practicum"
	"hwbot/pkg/logx"
)

// DefaultInterval is the fixed inter-iteration sleep (10 minutes).
const DefaultInterval = 600 * time.Second

// API is the incremental-fetch capability of the review API.
type API interface {
	Fetch(ctx context.Context, from int64) (map[string]any, error)
}

// Notifier delivers one text message to the configured chat.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Snapshot is a point-in-time view of the loop state, for /status and the
// heartbeat. Fields are copies; the loop keeps mutating its own state.
type Snapshot struct {
	Polls     uint64
	Cursor    int64
	LastPoll  time.Time
	LastError string
}

type Poller struct {
	api      API
	notifier Notifier
	interval time.Duration
	now      func() time.Time
	log      logx.Logger

	// mu guards the snapshot fields: the loop writes them, /status and the
	// heartbeat read them from other goroutines.
	mu         sync.Mutex
	polls      uint64
	cursor     int64
	lastPoll   time.Time
	lastErrKey string
	lastErrMsg string
}

type Option func(*Poller)

// WithInterval overrides the inter-iteration sleep. Tests only.
func WithInterval(d time.Duration) Option { return func(p *Poller) { p.interval = d } }

// WithClock overrides the time source. Tests only.
func WithClock(now func() time.Time) Option { return func(p *Poller) { p.now = now } }

func New(api API, n Notifier, log logx.Logger, opts ...Option) *Poller {
	p := &Poller{
		api:      api,
		notifier: n,
		interval: DefaultInterval,
		now:      time.Now,
		log:      log,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run executes the loop until ctx is cancelled. The cursor starts at "now";
// only changes that happen after process start are ever reported.
func (p *Poller) Run(ctx context.Context) {
	p.mu.Lock()
	p.cursor = p.now().Unix()
	p.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		if err := p.iterate(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			p.report(ctx, err)
		}

		p.log.Info("sleeping", logx.Duration("interval", p.interval))
		timer.Reset(p.interval)
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}
}

// iterate performs one polling pass. The cursor advances only when every
// step — fetch, validation, translation, delivery — succeeded.
func (p *Poller) iterate(ctx context.Context) error {
	p.mu.Lock()
	from := p.cursor
	p.polls++
	p.lastPoll = p.now()
	p.mu.Unlock()

	raw, err := p.api.Fetch(ctx, from)
	if err != nil {
		return err
	}

	homeworks, next, err := practicum.CheckResponse(raw)
	if err != nil {
		return err
	}

	if len(homeworks) > 0 {
		// Only the first record per pass; later ones surface on the next
		// poll once the cursor moves past this batch.
		msg, err := practicum.ParseStatus(homeworks[0])
		if err != nil {
			return err
		}
		if err := p.notifier.Notify(ctx, msg); err != nil {
			return err
		}
		p.log.Info("status change reported", logx.Int("batch", len(homeworks)))
	} else {
		p.log.Debug("no homework updates")
	}

	p.mu.Lock()
	p.cursor = next
	p.mu.Unlock()
	return nil
}

// report converts a recoverable iteration error into one chat message,
// suppressing repeats of the same error across consecutive iterations.
// A failure of this secondary send is logged and swallowed so the loop
// stays alive.
func (p *Poller) report(ctx context.Context, err error) {
	key := errKey(err)

	p.mu.Lock()
	repeat := key == p.lastErrKey
	p.lastErrKey = key
	p.lastErrMsg = err.Error()
	p.mu.Unlock()

	if repeat {
		p.log.Debug("suppressing repeated error", logx.Err(err))
		return
	}

	p.log.Warn("iteration failed", logx.Err(err), logx.String("kind", key))
	msg := fmt.Sprintf("Сбой в работе программы: %s", err)
	if nerr := p.notifier.Notify(ctx, msg); nerr != nil {
		p.log.Error("failed to deliver error notification", logx.Err(nerr))
	}
}

// Snapshot returns a copy of the loop state.
func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Polls:     p.polls,
		Cursor:    p.cursor,
		LastPoll:  p.lastPoll,
		LastError: p.lastErrMsg,
	}
}

// StatusLine renders the snapshot as a one-line /status reply.
func (p *Poller) StatusLine() string {
	s := p.Snapshot()
	last := "ещё не было"
	if !s.LastPoll.IsZero() {
		last = s.LastPoll.Format("2006-01-02 15:04:05")
	}
	line := fmt.Sprintf("Опросов: %d. Последний опрос: %s. Курсор: %d.", s.Polls, last, s.Cursor)
	if s.LastError != "" {
		line += " Последняя ошибка: " + s.LastError
	}
	return line
}

// errKey builds the duplicate-suppression key: error kind plus rendered
// message, so semantically different errors never collide on text alone.
func errKey(err error) string {
	kind := "error"
	var k interface{ Kind() string }
	if errors.As(err, &k) {
		kind = k.Kind()
	}
	return kind + "|" + err.Error()
}
