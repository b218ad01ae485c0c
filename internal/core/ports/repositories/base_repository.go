package repositories

import (
	"context"
)

// LedgerTx is one storage transaction. All repositories returned by a LedgerTx
// read and write inside that transaction.
type LedgerTx interface {
	Stats() StatsRepository
	Symbols() SymbolRepository
	Accounts() AccountRepository
	Claims() ClaimRepository
	Version() VersionRepository
}

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new storage transaction
	Begin(ctx context.Context) (LedgerTx, error)

	// BeginRead starts a read-only transaction over a consistent view of the
	// tables. Writes through it fail; it is released with Rollback.
	BeginRead(ctx context.Context) (LedgerTx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx LedgerTx) error

	// Rollback rolls back a transaction. Rolling back a committed transaction is a no-op.
	Rollback(ctx context.Context, tx LedgerTx) error
}

// LedgerStore is a storage backend for the ledger tables.
type LedgerStore interface {
	TransactionManager

	// Backend names the storage engine for logs and metrics.
	Backend() string

	// Close releases the backend's resources.
	Close() error
}
