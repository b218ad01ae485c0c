package mapping

import (
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	"github.com/SscSPs/loyalty_token_ledger/internal/models"
)

// ToModelStats converts domain CurrencyStats to a model TokenStats
func ToModelStats(d domain.CurrencyStats) models.TokenStats {
	sym := d.Symbol()
	return models.TokenStats{
		SymbolCode:  sym.Code,
		Precision:   sym.Precision,
		Supply:      d.Supply.Amount,
		MaxSupply:   d.MaxSupply.Amount,
		Issuer:      d.Issuer.String(),
		InfoName:    d.Info.Name,
		InfoURL:     d.Info.URL,
		InfoLogoURL: d.Info.LogoURL,
	}
}

// ToDomainStats converts a model TokenStats to domain CurrencyStats
func ToDomainStats(m models.TokenStats) domain.CurrencyStats {
	sym := domain.NewSymbol(m.Precision, m.SymbolCode)
	return domain.CurrencyStats{
		Supply:    domain.NewAsset(m.Supply, sym),
		MaxSupply: domain.NewAsset(m.MaxSupply, sym),
		Issuer:    domain.Name(m.Issuer),
		Info: domain.StoreInfo{
			Name:    m.InfoName,
			URL:     m.InfoURL,
			LogoURL: m.InfoLogoURL,
		},
	}
}

// ToModelSymbol converts a registry entry to a model TokenSymbol
func ToModelSymbol(d domain.SymbolEntry) models.TokenSymbol {
	return models.TokenSymbol{SymbolCode: d.Symbol.Code, Precision: d.Symbol.Precision}
}

// ToDomainSymbol converts a model TokenSymbol to a registry entry
func ToDomainSymbol(m models.TokenSymbol) domain.SymbolEntry {
	return domain.SymbolEntry{Symbol: domain.NewSymbol(m.Precision, m.SymbolCode)}
}

// ToDomainSymbolSlice converts a slice of model TokenSymbols to registry entries
func ToDomainSymbolSlice(ms []models.TokenSymbol) []domain.SymbolEntry {
	ds := make([]domain.SymbolEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSymbol(m)
	}
	return ds
}

// ToModelAccount converts a domain Account to a model TokenAccount
func ToModelAccount(d domain.Account) models.TokenAccount {
	return models.TokenAccount{
		Owner:      d.Owner.String(),
		SymbolCode: d.Balance.Symbol.Code,
		Precision:  d.Balance.Symbol.Precision,
		Balance:    d.Balance.Amount,
		Blocked:    d.Blocked,
		Payer:      d.Payer.String(),
	}
}

// ToDomainAccount converts a model TokenAccount to a domain Account
func ToDomainAccount(m models.TokenAccount) domain.Account {
	return domain.Account{
		Owner:   domain.Name(m.Owner),
		Balance: domain.NewAsset(m.Balance, domain.NewSymbol(m.Precision, m.SymbolCode)),
		Blocked: m.Blocked,
		Payer:   domain.Name(m.Payer),
	}
}

// ToDomainAccountSlice converts a slice of model TokenAccounts to domain Accounts
func ToDomainAccountSlice(ms []models.TokenAccount) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToModelClaim converts a domain Claim to a model TokenClaim
func ToModelClaim(d domain.Claim) models.TokenClaim {
	return models.TokenClaim{
		Holder:      d.Holder.String(),
		Beneficiary: d.Beneficiary.String(),
		SymbolCode:  d.Code,
		Precision:   d.Quantity.Symbol.Precision,
		Quantity:    d.Quantity.Amount,
		Payer:       d.Payer.String(),
	}
}

// ToDomainClaim converts a model TokenClaim to a domain Claim
func ToDomainClaim(m models.TokenClaim) domain.Claim {
	return domain.Claim{
		ClaimKey: domain.ClaimKey{
			Holder:      domain.Name(m.Holder),
			Beneficiary: domain.Name(m.Beneficiary),
			Code:        m.SymbolCode,
		},
		Quantity: domain.NewAsset(m.Quantity, domain.NewSymbol(m.Precision, m.SymbolCode)),
		Payer:    domain.Name(m.Payer),
	}
}

// ToDomainClaimSlice converts a slice of model TokenClaims to domain Claims
func ToDomainClaimSlice(ms []models.TokenClaim) []domain.Claim {
	ds := make([]domain.Claim, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClaim(m)
	}
	return ds
}

// ToModelState converts a domain VersionState to a model LedgerState
func ToModelState(d domain.VersionState) models.LedgerState {
	return models.LedgerState{Version: d.Version, Hash: d.Hash}
}

// ToDomainState converts a model LedgerState to a domain VersionState
func ToDomainState(m models.LedgerState) domain.VersionState {
	return domain.VersionState{Version: m.Version, Hash: m.Hash}
}
