package domain_test

import (
	"testing"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Symbol
		wantErr bool
	}{
		{name: "valid", input: "4,SYS", want: domain.NewSymbol(4, "SYS")},
		{name: "zero precision", input: "0,PTS", want: domain.NewSymbol(0, "PTS")},
		{name: "max precision", input: "18,ETH", want: domain.NewSymbol(18, "ETH")},
		{name: "precision too large", input: "19,ETH", wantErr: true},
		{name: "missing comma", input: "4SYS", wantErr: true},
		{name: "empty code", input: "4,", wantErr: true},
		{name: "digit in code", input: "4,SY5", wantErr: true},
		{name: "negative precision", input: "-1,SYS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseSymbol(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidSymbol)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestSymbol_EqualityIsByValue(t *testing.T) {
	assert.Equal(t, domain.NewSymbol(4, "SYS"), domain.NewSymbol(4, "SYS"))
	assert.NotEqual(t, domain.NewSymbol(4, "SYS"), domain.NewSymbol(2, "SYS"))
}

func TestName_IsValid(t *testing.T) {
	valid := []domain.Name{"alice", "bob.exchange", "a", "abcde1234512", "z.y"}
	invalid := []domain.Name{"", "Alice", "alice.", "abcdefghijklm", "carol6", "dave_x"}

	for _, n := range valid {
		assert.True(t, n.IsValid(), "expected %q to be valid", n)
	}
	for _, n := range invalid {
		assert.False(t, n.IsValid(), "expected %q to be invalid", n)
	}
}

func TestAccount_Spendable(t *testing.T) {
	acc := domain.Account{
		Owner:   "alice",
		Balance: domain.NewAsset(100, domain.NewSymbol(0, "SYM")),
		Blocked: 30,
	}
	assert.Equal(t, domain.NewAsset(70, domain.NewSymbol(0, "SYM")), acc.Spendable())
	assert.Equal(t, "SYM", acc.Code())
}
