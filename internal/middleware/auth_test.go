package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	"github.com/SscSPs/loyalty_token_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "middleware-test-secret"
	testIssuer = "ledger-test"
)

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := utils.GenerateJWT(subject, testSecret, time.Minute, testIssuer)
	require.NoError(t, err)
	return token
}

func newAuthRouter(seen *[]domain.Name) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthMiddleware(testSecret, testIssuer), func(c *gin.Context) {
		set, _ := GetSignersFromCtx(c.Request.Context())
		for name := range set {
			*seen = append(*seen, name)
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware_CollectsAllSigners(t *testing.T) {
	var seen []domain.Name
	r := newAuthRouter(&seen)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "alice"))
	req.Header.Add(CosignHeader, signedToken(t, "exchange"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []domain.Name{"alice", "exchange"}, seen)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "missing header"},
		{name: "wrong scheme", headers: map[string]string{"Authorization": "Basic abc"}},
		{name: "garbage token", headers: map[string]string{"Authorization": "Bearer abc"}},
		{name: "invalid subject", headers: map[string]string{"Authorization": "Bearer " + signedToken(t, "Not_A_Name")}},
		{name: "bad cosigner", headers: map[string]string{
			"Authorization": "Bearer " + signedToken(t, "alice"),
			CosignHeader:    "nope",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []domain.Name
			r := newAuthRouter(&seen)
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Empty(t, seen)
		})
	}
}

func TestHasSigner(t *testing.T) {
	ctx := WithSigners(context.Background(), "alice", "bob")
	assert.True(t, HasSigner(ctx, "alice"))
	assert.False(t, HasSigner(ctx, "carol"))
	assert.False(t, HasSigner(context.Background(), "alice"))
}

func TestRateLimit_BlocksAfterQuota(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/ping", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewRateLimiter("lots")
	assert.Error(t, err)
}
