package mapping

import (
	"testing"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatsMappingKeepsSymbolOnBothAssets(t *testing.T) {
	sym := domain.NewSymbol(2, "PTS")
	d := domain.CurrencyStats{
		Supply:    domain.NewAsset(150, sym),
		MaxSupply: domain.NewAsset(1000, sym),
		Issuer:    "issuer",
		Info:      domain.StoreInfo{Name: "Points", URL: "https://points.example", LogoURL: "https://points.example/logo.png"},
	}

	m := ToModelStats(d)
	assert.Equal(t, "PTS", m.SymbolCode)
	assert.Equal(t, uint8(2), m.Precision)
	assert.Equal(t, d, ToDomainStats(m))
}

func TestClaimMappingUsesKeyCode(t *testing.T) {
	d := domain.Claim{
		ClaimKey: domain.ClaimKey{Holder: "alice", Beneficiary: "bob", Code: "PTS"},
		Quantity: domain.NewAsset(30, domain.NewSymbol(0, "PTS")),
		Payer:    "alice",
	}
	assert.Equal(t, d, ToDomainClaim(ToModelClaim(d)))
}
