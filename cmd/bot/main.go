package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"

	"hwbot/internal/adapters/telegram"
	"hwbot/internal/config"
	"hwbot/internal/notifier"
	"hwbot/internal/poller"
	"hwbot/internal/practicum"
	"hwbot/pkg/logx"
)

func main() {
	var envPath string
	flag.StringVar(&envPath, "env", ".env", "path to env file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := config.LoadDotenv(envPath); err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}

	bootLog := logx.NewConsole(os.Getenv(config.EnvLogLevel))
	cfg, err := config.Load(os.Getenv, bootLog)
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}
	log := logx.NewConsole(cfg.LogLevel)

	bot, err := telegram.New(telegram.Config{Token: cfg.TelegramToken, ChatID: cfg.ChatID}, log.With(logx.String("component", "telegram")))
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}

	api := practicum.NewClient(cfg.PracticumToken, log.With(logx.String("component", "practicum")))
	notif := notifier.New(bot, cfg.ChatID, log.With(logx.String("component", "notifier")))
	p := poller.New(api, notif, log.With(logx.String("component", "poller")))

	if err := bot.Start(ctx, p.StatusLine); err != nil {
		fmt.Println("fatal start:", err)
		os.Exit(1)
	}

	if err := config.Watch(ctx, envPath, log); err != nil {
		log.Warn("env file watch unavailable", logx.Err(err))
	}

	if cfg.HeartbeatSchedule != "" {
		stop, err := p.StartHeartbeat(cfg.HeartbeatSchedule)
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer stop()
	}

	notifySystemd(ctx, log)

	p.Run(ctx)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	_ = bot.Stop(stopCtx)
}

// notifySystemd reports readiness and, when the unit has WatchdogSec set,
// keeps the watchdog fed from a background ticker.
func notifySystemd(ctx context.Context, log logx.Logger) {
	if ok, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.Debug("sd_notify unavailable", logx.Err(err))
	} else if ok {
		log.Info("systemd readiness reported")
	}

	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil || interval <= 0 {
		return
	}
	go func() {
		t := time.NewTicker(interval / 2)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				_, _ = daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			}
		}
	}()
}
