package services

import (
	"context"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
)

// Authorizer answers whether an identity authorized the current unit of work.
type Authorizer interface {
	// RequireAuth fails with apperrors.ErrMissingAuthority when name did not sign.
	RequireAuth(ctx context.Context, name domain.Name) error
}

// Notifier receives observer notifications after a unit of work commits.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// TokenReaderSvc defines read operations on symbols, stats and balances.
type TokenReaderSvc interface {
	// GetSupply returns the current supply of a symbol.
	GetSupply(ctx context.Context, code string) (*domain.Asset, error)

	// GetStats returns the full stats row of a symbol.
	GetStats(ctx context.Context, code string) (*domain.CurrencyStats, error)

	// ListSymbols enumerates the symbol registry ordered by code.
	ListSymbols(ctx context.Context) ([]domain.SymbolEntry, error)

	// GetBalance returns the spendable amount (balance minus blocked) of owner.
	GetBalance(ctx context.Context, owner domain.Name, code string) (*domain.Asset, error)

	// GetAccount returns the raw balance row of owner.
	GetAccount(ctx context.Context, owner domain.Name, code string) (*domain.Account, error)
}

// TokenWriterSvc defines the supply-changing actions.
type TokenWriterSvc interface {
	// Create registers a new symbol with zero supply.
	Create(ctx context.Context, issuer domain.Name, maxSupply domain.Asset, info domain.StoreInfo) (*domain.CurrencyStats, error)

	// Issue mints quantity to an account and returns the updated stats.
	Issue(ctx context.Context, to domain.Name, quantity domain.Asset, memo string) (*domain.CurrencyStats, error)

	// Burn destroys value from owner's spendable balance and returns the updated stats.
	Burn(ctx context.Context, owner domain.Name, value domain.Asset) (*domain.CurrencyStats, error)
}

// TokenSvcFacade combines all token-related service interfaces
type TokenSvcFacade interface {
	TokenReaderSvc
	TokenWriterSvc
}

// EscrowReaderSvc defines read operations on the claim ledger.
type EscrowReaderSvc interface {
	// GetClaim returns one outstanding claim.
	GetClaim(ctx context.Context, key domain.ClaimKey) (*domain.Claim, error)

	// ListClaims pages through the claims placed by holder.
	ListClaims(ctx context.Context, holder domain.Name, pageToken string, limit int) (*domain.ClaimPage, error)

	// AuditHolder checks that holder's blocked amounts equal the claims it placed.
	AuditHolder(ctx context.Context, holder domain.Name) (*domain.HolderAudit, error)
}

// EscrowWriterSvc defines the hold and settle actions.
type EscrowWriterSvc interface {
	// AllowClaim places (positive quantity) or releases (negative quantity) a hold
	// of from's funds for to. The returned claim has a zero quantity once fully released.
	AllowClaim(ctx context.Context, from, to domain.Name, quantity domain.Asset) (*domain.Claim, error)

	// Claim settles part or all of a hold, moving quantity from from to to.
	// It returns the beneficiary's row after settlement.
	Claim(ctx context.Context, from, to domain.Name, quantity domain.Asset) (*domain.Account, error)
}

// EscrowSvcFacade combines all escrow-related service interfaces
type EscrowSvcFacade interface {
	EscrowReaderSvc
	EscrowWriterSvc
}

// AdminSvc defines the administrative actions on ledger state.
type AdminSvc interface {
	// CleanState marks the version record for removal at the end of the unit of work.
	CleanState(ctx context.Context) error

	// SweepState eagerly deletes stats of the listed symbols, the whole registry,
	// every row of the listed owners and every claim they hold.
	SweepState(ctx context.Context, codes []string, owners []domain.Name) (*domain.SweepReport, error)

	// GetVersion returns the stored version record or the running default.
	GetVersion(ctx context.Context) (*domain.VersionState, error)
}

// ServiceContainer holds instances of all the application services.
// It is the entry point used by the handlers.
type ServiceContainer struct {
	Token  TokenSvcFacade
	Escrow EscrowSvcFacade
	Admin  AdminSvc
}
