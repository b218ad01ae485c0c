package repositories

import (
	"context"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
)

// Find* methods report absence with found == false and a nil error.
// Absence of a row is a valid state, not a failure.

// StatsRepository holds CurrencyStats keyed by symbol code.
type StatsRepository interface {
	// FindStats retrieves the stats of a symbol code.
	FindStats(ctx context.Context, code string) (stats domain.CurrencyStats, found bool, err error)

	// InsertStats persists stats for a new symbol.
	InsertStats(ctx context.Context, stats domain.CurrencyStats) error

	// UpdateSupply persists a new supply for an existing symbol.
	UpdateSupply(ctx context.Context, supply domain.Asset) error

	// DeleteStats removes the stats of a symbol code. Deleting an absent row is not an error.
	DeleteStats(ctx context.Context, code string) error
}

// SymbolRepository is the registry of created symbols.
type SymbolRepository interface {
	// InsertSymbol registers a symbol.
	InsertSymbol(ctx context.Context, entry domain.SymbolEntry) error

	// ListSymbols returns every registered symbol ordered by code.
	ListSymbols(ctx context.Context) ([]domain.SymbolEntry, error)

	// DeleteAllSymbols wipes the registry and returns how many entries were removed.
	DeleteAllSymbols(ctx context.Context) (int, error)
}

// AccountRepository holds balance rows keyed by (owner, symbol code).
type AccountRepository interface {
	// FindAccount retrieves the row of owner for a symbol code.
	FindAccount(ctx context.Context, owner domain.Name, code string) (account domain.Account, found bool, err error)

	// ListAccounts returns every row of owner ordered by code.
	ListAccounts(ctx context.Context, owner domain.Name) ([]domain.Account, error)

	// InsertAccount persists a new row.
	InsertAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount overwrites balance, blocked and payer of an existing row.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes a row.
	DeleteAccount(ctx context.Context, owner domain.Name, code string) error
}

// ClaimRepository holds outstanding holds keyed by (holder, beneficiary, symbol code).
type ClaimRepository interface {
	// FindClaim retrieves a claim by its composite key.
	FindClaim(ctx context.Context, key domain.ClaimKey) (claim domain.Claim, found bool, err error)

	// ListClaimsByHolder returns up to limit claims of holder ordered by
	// (beneficiary, code), starting strictly after the given key when after is non-nil.
	ListClaimsByHolder(ctx context.Context, holder domain.Name, after *domain.ClaimKey, limit int) ([]domain.Claim, error)

	// InsertClaim persists a new claim.
	InsertClaim(ctx context.Context, claim domain.Claim) error

	// UpdateClaim overwrites quantity and payer of an existing claim.
	UpdateClaim(ctx context.Context, claim domain.Claim) error

	// DeleteClaim removes a claim.
	DeleteClaim(ctx context.Context, key domain.ClaimKey) error

	// DeleteClaimsByHolder removes every claim of holder and returns how many were removed.
	DeleteClaimsByHolder(ctx context.Context, holder domain.Name) (int, error)
}

// VersionRepository holds the VersionState singleton.
type VersionRepository interface {
	// LoadVersion reads the singleton.
	LoadVersion(ctx context.Context) (state domain.VersionState, found bool, err error)

	// SaveVersion creates or replaces the singleton.
	SaveVersion(ctx context.Context, state domain.VersionState) error

	// DeleteVersion removes the singleton. Deleting an absent record is not an error.
	DeleteVersion(ctx context.Context) error
}
