// Package config loads and validates the bot's environment configuration.
//
// The runtime surface is deliberately tiny: three mandatory secrets plus a
// couple of optional knobs. Everything else (endpoint URL, poll interval,
// verdict table) is compiled in.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"hwbot/pkg/logx"
)

// Env var names. The three secrets are mandatory; the rest are optional.
const (
	EnvPracticumToken = "PRACTICUM_TOKEN"
	EnvTelegramToken  = "TELEGRAM_TOKEN"
	EnvChatID         = "TELEGRAM_CHAT_ID"

	EnvHeartbeatSchedule = "HEARTBEAT_SCHEDULE"
	EnvLogLevel          = "LOG_LEVEL"
)

type Config struct {
	PracticumToken string
	TelegramToken  string
	ChatID         int64

	// HeartbeatSchedule is an optional cron spec for liveness summaries.
	// Empty disables the heartbeat.
	HeartbeatSchedule string
	LogLevel          string
}

// MissingError names every mandatory variable that was absent or empty.
type MissingError struct {
	Vars []string
}

func (e *MissingError) Error() string {
	return "не заданы обязательные переменные окружения: " + strings.Join(e.Vars, ", ")
}

// LoadDotenv loads a .env file if one exists. A missing file is not an
// error; the variables may come from the real environment.
func LoadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Load reads and validates configuration from the given env lookup
// (normally os.Getenv). All missing secrets are reported at once;
// a MissingError is fatal for the caller — polling must not start.
func Load(getenv func(string) string, log logx.Logger) (*Config, error) {
	var missing []string
	for _, name := range []string{EnvPracticumToken, EnvTelegramToken, EnvChatID} {
		if strings.TrimSpace(getenv(name)) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		log.Error("mandatory env vars missing", logx.String("vars", strings.Join(missing, ", ")))
		return nil, &MissingError{Vars: missing}
	}

	chatID, err := strconv.ParseInt(strings.TrimSpace(getenv(EnvChatID)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s должен быть целым числом: %w", EnvChatID, err)
	}

	cfg := &Config{
		PracticumToken:    strings.TrimSpace(getenv(EnvPracticumToken)),
		TelegramToken:     strings.TrimSpace(getenv(EnvTelegramToken)),
		ChatID:            chatID,
		HeartbeatSchedule: strings.TrimSpace(getenv(EnvHeartbeatSchedule)),
		LogLevel:          strings.TrimSpace(getenv(EnvLogLevel)),
	}

	log.Info("all mandatory env vars present")
	return cfg, nil
}
