package pgsql

import (
	"context"
	"errors"

	portsrepo "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BackendName identifies this store in logs and metrics.
const BackendName = "postgres"

// Store keeps the ledger tables in PostgreSQL. Every unit of work runs in
// one serializable transaction.
type Store struct {
	BaseRepository
}

var _ portsrepo.LedgerStore = (*Store)(nil)

// NewStore creates a ledger store on top of an open pool. Close closes the pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{BaseRepository: BaseRepository{Pool: pool}}
}

func (s *Store) Backend() string {
	return BackendName
}

func (s *Store) Close() error {
	s.Pool.Close()
	return nil
}

func (s *Store) Begin(ctx context.Context) (portsrepo.LedgerTx, error) {
	tx, err := s.BaseRepository.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &ledgerTx{tx: tx, lock: forUpdate}, nil
}

func (s *Store) BeginRead(ctx context.Context) (portsrepo.LedgerTx, error) {
	tx, err := s.BaseRepository.BeginReadOnly(ctx)
	if err != nil {
		return nil, err
	}
	return &ledgerTx{tx: tx}, nil
}

func (s *Store) Commit(ctx context.Context, tx portsrepo.LedgerTx) error {
	t, err := unwrap(tx)
	if err != nil {
		return err
	}
	return s.BaseRepository.Commit(ctx, t.tx)
}

func (s *Store) Rollback(ctx context.Context, tx portsrepo.LedgerTx) error {
	t, err := unwrap(tx)
	if err != nil {
		return err
	}
	return s.BaseRepository.Rollback(ctx, t.tx)
}

var errForeignTx = errors.New("transaction was not started by the postgres store")

func unwrap(tx portsrepo.LedgerTx) (*ledgerTx, error) {
	t, ok := tx.(*ledgerTx)
	if !ok {
		return nil, errForeignTx
	}
	return t, nil
}

// forUpdate is the row-lock clause appended to finds inside a unit of work.
// Read-only transactions cannot take row locks and leave it off.
const forUpdate = " FOR UPDATE"

// ledgerTx exposes one pgx transaction through the repository ports.
type ledgerTx struct {
	tx   pgx.Tx
	lock string
}

func (t *ledgerTx) Stats() portsrepo.StatsRepository {
	return &pgxStatsRepository{tx: t.tx, lock: t.lock}
}
func (t *ledgerTx) Symbols() portsrepo.SymbolRepository { return &pgxSymbolRepository{tx: t.tx} }
func (t *ledgerTx) Accounts() portsrepo.AccountRepository {
	return &pgxAccountRepository{tx: t.tx, lock: t.lock}
}
func (t *ledgerTx) Claims() portsrepo.ClaimRepository {
	return &pgxClaimRepository{tx: t.tx, lock: t.lock}
}
func (t *ledgerTx) Version() portsrepo.VersionRepository {
	return &pgxVersionRepository{tx: t.tx, lock: t.lock}
}
