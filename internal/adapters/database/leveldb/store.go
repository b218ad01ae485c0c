package leveldb

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/repositories"
	ldb "github.com/syndtr/goleveldb/leveldb"
	ldb_errors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// BackendName identifies this store in logs and metrics.
const BackendName = "leveldb"

// Store keeps the ledger tables in one embedded LevelDB database.
// Each unit of work is a LevelDB transaction; at most one is open at a time.
// Reads run on snapshots and do not wait for it.
type Store struct {
	db *ldb.DB
}

var _ portsrepo.LedgerStore = (*Store)(nil)

// Open opens or creates the database at path, recovering the manifest if it is corrupted.
func Open(path string) (*Store, error) {
	opt := &ldb_opt.Options{ErrorIfExist: false}

	db, err := ldb.OpenFile(path, opt)
	if ldb_errors.IsCorrupted(err) {
		db, err = ldb.RecoverFile(path, opt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// OpenMemory creates a store backed by memory only.
func OpenMemory() (*Store, error) {
	db, err := ldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory leveldb: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Backend() string {
	return BackendName
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Begin opens a LevelDB transaction. It blocks while another transaction is open.
func (s *Store) Begin(ctx context.Context) (portsrepo.LedgerTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tr, err := s.db.OpenTransaction()
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	return &ledgerTx{r: tr, tr: tr}, nil
}

// BeginRead takes a snapshot of the database. It does not block writers.
func (s *Store) BeginRead(ctx context.Context) (portsrepo.LedgerTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap, err := s.db.GetSnapshot()
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to take snapshot", err)
	}
	return &ledgerTx{r: snap, snap: snap}, nil
}

// Commit commits a transaction
func (s *Store) Commit(ctx context.Context, tx portsrepo.LedgerTx) error {
	t, err := unwrap(tx)
	if err != nil {
		return err
	}
	if t.tr == nil {
		return errReadOnly
	}
	if err := t.tr.Commit(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// Rollback discards a transaction or releases a snapshot. Doing so twice has no effect.
func (s *Store) Rollback(ctx context.Context, tx portsrepo.LedgerTx) error {
	t, err := unwrap(tx)
	if err != nil {
		return err
	}
	if t.snap != nil {
		t.snap.Release()
		return nil
	}
	t.tr.Discard()
	return nil
}

var (
	errForeignTx = errors.New("transaction was not started by the leveldb store")
	errReadOnly  = apperrors.NewAppError(http.StatusInternalServerError, "write on a read-only snapshot", nil)
)

func unwrap(tx portsrepo.LedgerTx) (*ledgerTx, error) {
	t, ok := tx.(*ledgerTx)
	if !ok {
		return nil, errForeignTx
	}
	return t, nil
}

// reader is the read side shared by *ldb.Transaction and *ldb.Snapshot.
type reader interface {
	Get(key []byte, ro *ldb_opt.ReadOptions) ([]byte, error)
	Has(key []byte, ro *ldb_opt.ReadOptions) (bool, error)
	NewIterator(slice *ldb_util.Range, ro *ldb_opt.ReadOptions) iterator.Iterator
}

// ledgerTx exposes one LevelDB transaction, or a read-only snapshot, through
// the repository ports. Exactly one of tr and snap is set.
type ledgerTx struct {
	r    reader
	tr   *ldb.Transaction
	snap *ldb.Snapshot
}

func (t *ledgerTx) Stats() portsrepo.StatsRepository     { return statsRepo{t} }
func (t *ledgerTx) Symbols() portsrepo.SymbolRepository  { return symbolRepo{t} }
func (t *ledgerTx) Accounts() portsrepo.AccountRepository { return accountRepo{t} }
func (t *ledgerTx) Claims() portsrepo.ClaimRepository     { return claimRepo{t} }
func (t *ledgerTx) Version() portsrepo.VersionRepository  { return versionRepo{t} }
