package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	return testutil.ToFloat64(collector) - before
}

func TestLedgerObserveAction(t *testing.T) {
	m := NewLedger("leveldb")
	start := time.Now().Add(-time.Millisecond)

	assert.Equal(t, 1.0, delta(t, ledgerActionsTotal.WithLabelValues("issue", "leveldb", "success"), func() {
		m.ObserveAction("issue", nil, start)
	}))
	assert.Equal(t, 1.0, delta(t, ledgerActionsTotal.WithLabelValues("claim", "leveldb", "not_found"), func() {
		m.ObserveAction("claim", fmt.Errorf("settle: %w", apperrors.ErrNoClaim), start)
	}))
}

func TestLedgerDefaultsBackendLabel(t *testing.T) {
	m := NewLedger("")
	assert.Equal(t, 1.0, delta(t, ledgerActionsTotal.WithLabelValues("burn", "unknown", "invariant"), func() {
		m.ObserveAction("burn", apperrors.ErrOverdrawn, time.Now())
	}))
}

func TestNilLedgerIsNoop(t *testing.T) {
	var m *Ledger
	assert.NotPanics(t, func() {
		m.ObserveAction("issue", nil, time.Now())
		m.ObserveNotification("allowclaim")
	})
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "success", Status(nil))
	assert.Equal(t, "validation", Status(apperrors.ErrMemoTooLong))
	assert.Equal(t, "unauthorized", Status(apperrors.ErrMissingAuthority))
	assert.Equal(t, "not_found", Status(apperrors.ErrSymbolNotFound))
	assert.Equal(t, "duplicate", Status(apperrors.ErrSymbolExists))
	assert.Equal(t, "invariant", Status(apperrors.ErrOverdrawnClaim))
	assert.Equal(t, "error", Status(errors.New("disk on fire")))
}

func TestHTTPMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(HTTPMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", Handler())

	assert.Equal(t, 1.0, delta(t, httpRequestsTotal.WithLabelValues("GET", "/ping", "204"), func() {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "loyalty_ledger_http_requests_total")
}
