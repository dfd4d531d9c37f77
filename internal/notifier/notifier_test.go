package notifier

import (
	"context"
	"errors"
	"testing"

	"hwbot/internal/transport"
	"hwbot/pkg/logx"
)

type fakeSender struct {
	sent []string
	to   []transport.ChatTarget
	err  error
}

func (f *fakeSender) SendText(ctx context.Context, to transport.ChatTarget, text string) error {
	f.sent = append(f.sent, text)
	f.to = append(f.to, to)
	return f.err
}

func TestNotifyDelivers(t *testing.T) {
	t.Parallel()
	s := &fakeSender{}
	n := New(s, 42, logx.Nop())

	if err := n.Notify(context.Background(), "привет"); err != nil {
		t.Fatalf("Notify error: %v", err)
	}
	if len(s.sent) != 1 || s.sent[0] != "привет" {
		t.Fatalf("unexpected sends: %v", s.sent)
	}
	if s.to[0].ChatID != 42 {
		t.Fatalf("ChatID = %d, want 42", s.to[0].ChatID)
	}
}

func TestNotifyWrapsFailure(t *testing.T) {
	t.Parallel()
	cause := errors.New("telegram down")
	n := New(&fakeSender{err: cause}, 42, logx.Nop())

	err := n.Notify(context.Background(), "привет")
	var se *SendError
	if !errors.As(err, &se) {
		t.Fatalf("expected SendError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("SendError does not wrap the cause: %v", err)
	}
	if se.Kind() != KindSend {
		t.Fatalf("Kind = %q, want %q", se.Kind(), KindSend)
	}
}

func TestNotifyCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := New(&fakeSender{}, 42, logx.Nop())
	err := n.Notify(ctx, "привет")
	var se *SendError
	if !errors.As(err, &se) {
		t.Fatalf("expected SendError for cancelled context, got %v", err)
	}
}
