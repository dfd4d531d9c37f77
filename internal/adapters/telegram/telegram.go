// Package telegram adapts the telebot client to the transport.Sender seam.
// Outbound it is send-only; inbound it handles a single /status command in
// the configured chat.
package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	tele "gopkg.in/telebot.v4"

	"hwbot/internal/transport"
	"hwbot/pkg/logx"
)

type Config struct {
	Token string
	// ChatID is the only chat the bot talks to; /status from anywhere else
	// is ignored.
	ChatID      int64
	PollTimeout time.Duration
}

// StatusFunc renders the current liveness snapshot for /status replies.
type StatusFunc func() string

type Adapter struct {
	cfg Config
	log logx.Logger
	bot *tele.Bot

	runMu     sync.Mutex
	running   bool
	runCancel context.CancelFunc
	runWG     sync.WaitGroup
}

func New(cfg Config, log logx.Logger) (*Adapter, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	timeout := cfg.PollTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	b, err := tele.NewBot(tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: timeout},
	})
	if err != nil {
		return nil, err
	}
	return &Adapter{cfg: cfg, log: log, bot: b}, nil
}

// Start begins the inbound update loop so /status works. The outbound
// SendText path does not require Start; a send-only deployment may skip it.
func (a *Adapter) Start(ctx context.Context, status StatusFunc) error {
	a.runMu.Lock()
	if a.running {
		a.runMu.Unlock()
		return nil
	}
	a.running = true
	rctx, cancel := context.WithCancel(ctx)
	a.runCancel = cancel
	a.runWG.Add(1)
	a.runMu.Unlock()

	a.bot.Handle("/status", func(c tele.Context) error {
		m := c.Message()
		if m == nil || m.Chat == nil || m.Chat.ID != a.cfg.ChatID {
			return nil
		}
		text := "статус недоступен"
		if status != nil {
			text = status()
		}
		return c.Send(text)
	})

	go func() {
		defer a.runWG.Done()
		// Ensure we stop telebot when context is cancelled.
		go func() {
			<-rctx.Done()
			a.bot.Stop()
		}()
		a.log.Info("telegram polling started")
		a.bot.Start() // blocks until Stop() called
	}()

	return nil
}

func (a *Adapter) Stop(ctx context.Context) error {
	a.runMu.Lock()
	cancel := a.runCancel
	a.runCancel = nil
	wasRunning := a.running
	a.running = false
	a.runMu.Unlock()

	if !wasRunning {
		return nil
	}
	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		a.runWG.Wait()
		close(done)
	}()

	// Keep shutdown snappy even if getUpdates long-poll is still waiting.
	grace := time.NewTimer(2 * time.Second)
	defer grace.Stop()

	select {
	case <-done:
		a.log.Info("telegram polling stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-grace.C:
		a.log.Warn("telegram stop grace elapsed; continuing shutdown")
		return nil
	}
}

func (a *Adapter) SendText(ctx context.Context, to transport.ChatTarget, text string) error {
	_, err := a.bot.Send(&tele.Chat{ID: to.ChatID}, text)
	return err
}
