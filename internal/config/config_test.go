package config

import (
	"errors"
	"strings"
	"testing"

	"hwbot/pkg/logx"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadAllPresent(t *testing.T) {
	t.Parallel()
	cfg, err := Load(envFrom(map[string]string{
		EnvPracticumToken: "ptok",
		EnvTelegramToken:  "ttok",
		EnvChatID:         "123456",
	}), logx.Nop())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.PracticumToken != "ptok" || cfg.TelegramToken != "ttok" {
		t.Fatalf("unexpected tokens: %+v", cfg)
	}
	if cfg.ChatID != 123456 {
		t.Fatalf("ChatID = %d, want 123456", cfg.ChatID)
	}
}

func TestLoadMissingSecrets(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		env  map[string]string
		want []string
	}{
		{
			name: "all missing",
			env:  map[string]string{},
			want: []string{EnvPracticumToken, EnvTelegramToken, EnvChatID},
		},
		{
			name: "one missing",
			env:  map[string]string{EnvPracticumToken: "p", EnvChatID: "1"},
			want: []string{EnvTelegramToken},
		},
		{
			name: "blank counts as missing",
			env:  map[string]string{EnvPracticumToken: "p", EnvTelegramToken: "  ", EnvChatID: "1"},
			want: []string{EnvTelegramToken},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(envFrom(tt.env), logx.Nop())
			var me *MissingError
			if !errors.As(err, &me) {
				t.Fatalf("expected MissingError, got %v", err)
			}
			if len(me.Vars) != len(tt.want) {
				t.Fatalf("Vars = %v, want %v", me.Vars, tt.want)
			}
			for i := range tt.want {
				if me.Vars[i] != tt.want[i] {
					t.Fatalf("Vars = %v, want %v", me.Vars, tt.want)
				}
			}
			for _, v := range tt.want {
				if !strings.Contains(me.Error(), v) {
					t.Fatalf("error %q does not name %s", me.Error(), v)
				}
			}
		})
	}
}

func TestLoadDotenvMissingFile(t *testing.T) {
	t.Parallel()
	if err := LoadDotenv("/nonexistent/.env"); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}

func TestLoadBadChatID(t *testing.T) {
	t.Parallel()
	_, err := Load(envFrom(map[string]string{
		EnvPracticumToken: "p",
		EnvTelegramToken:  "t",
		EnvChatID:         "not-a-number",
	}), logx.Nop())
	if err == nil {
		t.Fatal("expected error for non-integer chat id")
	}
}

func TestLoadOptionalKnobs(t *testing.T) {
	t.Parallel()
	cfg, err := Load(envFrom(map[string]string{
		EnvPracticumToken:    "p",
		EnvTelegramToken:     "t",
		EnvChatID:            "7",
		EnvHeartbeatSchedule: "@daily",
		EnvLogLevel:          "debug",
	}), logx.Nop())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HeartbeatSchedule != "@daily" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected knobs: %+v", cfg)
	}
}
