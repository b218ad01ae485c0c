package services

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	"github.com/SscSPs/loyalty_token_ledger/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashReader(t *testing.T) {
	a, err := HashReader(strings.NewReader("ledger"))
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := HashReader(strings.NewReader("ledger"))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := HashReader(strings.NewReader("ledger2"))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestDefaultVersionState(t *testing.T) {
	v := DefaultVersionState("2.1.0")
	assert.Equal(t, "2.1.0", v.Version)
	assert.Len(t, v.Hash, 64, "the test binary is readable")
}

func TestSignerAuthorizer(t *testing.T) {
	auth := NewSignerAuthorizer()
	ctx := middleware.WithSigners(context.Background(), "alice", "exchange")

	assert.NoError(t, auth.RequireAuth(ctx, "alice"))
	assert.NoError(t, auth.RequireAuth(ctx, "exchange"))

	err := auth.RequireAuth(ctx, "bob")
	assert.ErrorIs(t, err, apperrors.ErrMissingAuthority)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "bob")

	assert.Error(t, auth.RequireAuth(context.Background(), "alice"), "no signers means no authority")
}

type memVersionRepo struct {
	state   *domain.VersionState
	deletes int
}

func (m *memVersionRepo) LoadVersion(context.Context) (domain.VersionState, bool, error) {
	if m.state == nil {
		return domain.VersionState{}, false, nil
	}
	return *m.state, true, nil
}

func (m *memVersionRepo) SaveVersion(_ context.Context, v domain.VersionState) error {
	m.state = &v
	return nil
}

func (m *memVersionRepo) DeleteVersion(context.Context) error {
	m.state = nil
	m.deletes++
	return nil
}

func TestVersionSession(t *testing.T) {
	ctx := context.Background()
	repo := &memVersionRepo{}
	fallback := domain.VersionState{Version: "1.0.0", Hash: "ab"}

	s, err := openSession(ctx, repo, fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, s.state)
	require.NoError(t, s.commit(ctx))
	require.NotNil(t, repo.state)
	assert.Equal(t, fallback, *repo.state)

	stored := domain.VersionState{Version: "0.9.0", Hash: "cd"}
	repo.state = &stored
	s, err = openSession(ctx, repo, fallback)
	require.NoError(t, err)
	assert.Equal(t, stored, s.state, "a stored record wins over the fallback")

	s.markForRemoval()
	require.NoError(t, s.commit(ctx))
	assert.Nil(t, repo.state)
	assert.Equal(t, 1, repo.deletes)
}
