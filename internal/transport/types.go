package transport

import "context"

// ChatTarget identifies the destination chat for outbound messages.
type ChatTarget struct {
	ChatID int64
}

// Sender is the outbound messaging capability. Implemented by the Telegram
// adapter; kept as an interface so the notifier and tests don't depend on a
// specific platform.
type Sender interface {
	SendText(ctx context.Context, to ChatTarget, text string) error
}
