package metrics

import (
	"errors"
	"time"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "loyalty_ledger"

var (
	ledgerActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "actions_total",
		Help:      "Count of ledger actions by outcome.",
	}, []string{"action", "backend", "status"})
	ledgerActionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "action_duration_seconds",
		Help:      "Duration of ledger actions including commit.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"action", "backend", "status"})
	ledgerNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "notifications_total",
		Help:      "Count of observer notifications delivered after commit.",
	}, []string{"action"})
)

// Ledger tracks metrics for ledger actions.
type Ledger struct {
	backend string
}

// NewLedger creates a Ledger metrics collector for a storage backend.
func NewLedger(backend string) *Ledger {
	if backend == "" {
		backend = "unknown"
	}
	return &Ledger{backend: backend}
}

// ObserveAction records duration and outcome of an action.
func (m *Ledger) ObserveAction(action string, err error, started time.Time) {
	if m == nil {
		return
	}
	status := Status(err)
	ledgerActionsTotal.WithLabelValues(action, m.backend, status).Inc()
	ledgerActionDuration.WithLabelValues(action, m.backend, status).Observe(time.Since(started).Seconds())
}

// ObserveNotification counts a delivered notification.
func (m *Ledger) ObserveNotification(action string) {
	if m == nil {
		return
	}
	ledgerNotificationsTotal.WithLabelValues(action).Inc()
}

// Status maps an action error to a low-cardinality label.
func Status(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, apperrors.ErrValidation):
		return "validation"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrDuplicate):
		return "duplicate"
	case errors.Is(err, apperrors.ErrInvariant):
		return "invariant"
	default:
		return "error"
	}
}
