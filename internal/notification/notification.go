package notification

import (
	"context"
	"log/slog"
)

const (
	// KindPosted indicates a transaction that moved the balance.
	KindPosted = "transaction_posted"
	// KindRejected indicates a withdrawal declined for insufficient funds.
	KindRejected = "transaction_rejected"
)

// Message describes a transaction event pushed to the account holder.
type Message struct {
	Kind          string
	AccountNumber int64
	Holder        string
	Body          string
}

// Notifier delivers transaction notifications to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier is a stub implementation that writes notifications to
// the structured logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier stub.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification",
		"kind", message.Kind,
		"account", message.AccountNumber,
		"holder", message.Holder,
		"body", message.Body,
	)
	return nil
}
