package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAsset(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Asset
		wantErr error
	}{
		{
			name:  "four decimals",
			input: "10.0000 SYS",
			want:  domain.NewAsset(100000, domain.NewSymbol(4, "SYS")),
		},
		{
			name:  "no decimals",
			input: "1000 PTS",
			want:  domain.NewAsset(1000, domain.NewSymbol(0, "PTS")),
		},
		{
			name:  "negative release",
			input: "-0.0030 SYS",
			want:  domain.NewAsset(-30, domain.NewSymbol(4, "SYS")),
		},
		{
			name:    "missing code",
			input:   "10.0000",
			wantErr: apperrors.ErrInvalidQuantity,
		},
		{
			name:    "lowercase code",
			input:   "10.0000 sys",
			wantErr: apperrors.ErrInvalidSymbol,
		},
		{
			name:    "code too long",
			input:   "1 ABCDEFGH",
			wantErr: apperrors.ErrInvalidSymbol,
		},
		{
			name:    "exponent form",
			input:   "1e3 SYS",
			wantErr: apperrors.ErrInvalidQuantity,
		},
		{
			name:    "not a number",
			input:   "ten SYS",
			wantErr: apperrors.ErrInvalidQuantity,
		},
		{
			name:    "out of range",
			input:   "4611686018427387904 SYS",
			wantErr: apperrors.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseAsset(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsset_String(t *testing.T) {
	assert.Equal(t, "10.0000 SYS", domain.NewAsset(100000, domain.NewSymbol(4, "SYS")).String())
	assert.Equal(t, "-0.0030 SYS", domain.NewAsset(-30, domain.NewSymbol(4, "SYS")).String())
	assert.Equal(t, "7 PTS", domain.NewAsset(7, domain.NewSymbol(0, "PTS")).String())
}

func TestAsset_IsValid(t *testing.T) {
	sym := domain.NewSymbol(2, "USD")
	assert.True(t, domain.NewAsset(domain.MaxAmount, sym).IsValid())
	assert.True(t, domain.NewAsset(-domain.MaxAmount, sym).IsValid())
	assert.False(t, domain.NewAsset(domain.MaxAmount+1, sym).IsValid())
	assert.False(t, domain.NewAsset(1, domain.NewSymbol(19, "USD")).IsValid())
}

func TestAsset_JSONUsesTextForm(t *testing.T) {
	payload := struct {
		Quantity domain.Asset `json:"quantity"`
	}{Quantity: domain.NewAsset(2500, domain.NewSymbol(2, "PTS"))}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"quantity":"25.00 PTS"}`, string(raw))

	var decoded struct {
		Quantity domain.Asset `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, payload.Quantity, decoded.Quantity)
}
