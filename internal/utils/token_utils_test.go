package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("alice", testSecret, time.Minute, "ledger")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, testSecret, "ledger")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "ledger", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	valid, err := GenerateJWT("alice", testSecret, time.Minute, "ledger")
	require.NoError(t, err)
	expired, err := GenerateJWT("alice", testSecret, -time.Minute, "ledger")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(valid, "other-secret", "ledger")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseAndValidateJWT(valid, testSecret, "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	_, err = ParseAndValidateJWT(expired, testSecret, "ledger")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = ParseAndValidateJWT("not-a-token", testSecret, "ledger")
	assert.Error(t, err)
}
