package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/services"
	"github.com/SscSPs/loyalty_token_ledger/internal/middleware"
)

// logNotifier delivers notifications to the request log.
type logNotifier struct{}

// NewLogNotifier creates a Notifier that writes one structured log line per notification.
func NewLogNotifier() portssvc.Notifier {
	return logNotifier{}
}

var _ portssvc.Notifier = logNotifier{}

func (logNotifier) Notify(ctx context.Context, n domain.Notification) {
	middleware.GetLoggerFromCtx(ctx).Info("Ledger notification",
		slog.String("action", n.Action),
		slog.String("recipient", n.Recipient.String()),
		slog.String("from", n.From.String()),
		slog.String("to", n.To.String()),
		slog.String("quantity", n.Quantity.String()),
	)
}
