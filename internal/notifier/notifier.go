// Package notifier delivers plain-text messages to the single configured
// chat. Sends are rate-limited so an error burst cannot flood Telegram;
// delivery failures come back as *SendError for the poll loop to classify.
package notifier

import (
	"context"

	"golang.org/x/time/rate"

	"hwbot/internal/transport"
	"hwbot/pkg/logx"
)

// KindSend is the error-kind discriminant for delivery failures.
const KindSend = "cant_send_message"

// SendError wraps a transport failure while sending to the chat.
type SendError struct {
	Err error
}

func (e *SendError) Error() string {
	return "невозможно отправить сообщение в Telegram: " + e.Err.Error()
}

func (e *SendError) Unwrap() error { return e.Err }
func (e *SendError) Kind() string  { return KindSend }

type Notifier struct {
	sender  transport.Sender
	target  transport.ChatTarget
	limiter *rate.Limiter
	log     logx.Logger
}

func New(sender transport.Sender, chatID int64, log logx.Logger) *Notifier {
	return &Notifier{
		sender: sender,
		target: transport.ChatTarget{ChatID: chatID},
		// Telegram caps bots around one message per second per chat.
		limiter: rate.NewLimiter(rate.Limit(1), 3),
		log:     log,
	}
}

// Notify sends one text to the configured chat. No retry: the poll loop's
// fixed-interval re-invocation is the only retry mechanism in this system.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return &SendError{Err: err}
	}
	if err := n.sender.SendText(ctx, n.target, text); err != nil {
		n.log.Error("message delivery failed", logx.Err(err), logx.Int64("chat_id", n.target.ChatID))
		return &SendError{Err: err}
	}
	n.log.Debug("message delivered", logx.Int64("chat_id", n.target.ChatID))
	return nil
}
