package leveldb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	"github.com/SscSPs/loyalty_token_ledger/internal/models"
	"github.com/SscSPs/loyalty_token_ledger/internal/utils/mapping"
	ldb "github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// get decodes the row at key into dst. A missing key returns found == false.
func (t *ledgerTx) get(key []byte, dst any) (bool, error) {
	raw, err := t.r.Get(key, nil)
	if errors.Is(err, ldb.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, storageError("read", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, storageError("decode", err)
	}
	return true, nil
}

func (t *ledgerTx) put(key []byte, row any) error {
	if t.tr == nil {
		return errReadOnly
	}
	raw, err := json.Marshal(row)
	if err != nil {
		return storageError("encode", err)
	}
	if err := t.tr.Put(key, raw, nil); err != nil {
		return storageError("write", err)
	}
	return nil
}

func (t *ledgerTx) has(key []byte) (bool, error) {
	ok, err := t.r.Has(key, nil)
	if err != nil {
		return false, storageError("read", err)
	}
	return ok, nil
}

func (t *ledgerTx) delete(key []byte) error {
	if t.tr == nil {
		return errReadOnly
	}
	if err := t.tr.Delete(key, nil); err != nil {
		return storageError("delete", err)
	}
	return nil
}

// scan decodes every row in r, in key order, handing each to fn until fn returns false.
func scan[T any](t *ledgerTx, r *ldb_util.Range, fn func(key []byte, row T) bool) error {
	iter := t.r.NewIterator(r, nil)
	defer iter.Release()

	for iter.Next() {
		var row T
		if err := json.Unmarshal(iter.Value(), &row); err != nil {
			return storageError("decode", err)
		}
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		if !fn(key, row) {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return storageError("iterate", err)
	}
	return nil
}

// insert writes a new row, failing with ErrDuplicate when the key exists.
func (t *ledgerTx) insert(key []byte, row any) error {
	exists, err := t.has(key)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: key %q", apperrors.ErrDuplicate, key)
	}
	return t.put(key, row)
}

// update overwrites an existing row, failing with ErrNotFound when the key is absent.
func (t *ledgerTx) update(key []byte, row any) error {
	exists, err := t.has(key)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: key %q", apperrors.ErrNotFound, key)
	}
	return t.put(key, row)
}

func storageError(op string, err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, "leveldb "+op+" failed", err)
}

type statsRepo struct{ t *ledgerTx }

func (r statsRepo) FindStats(ctx context.Context, code string) (domain.CurrencyStats, bool, error) {
	var m models.TokenStats
	found, err := r.t.get(statsKey(code), &m)
	if err != nil || !found {
		return domain.CurrencyStats{}, found, err
	}
	return mapping.ToDomainStats(m), true, nil
}

func (r statsRepo) InsertStats(ctx context.Context, stats domain.CurrencyStats) error {
	m := mapping.ToModelStats(stats)
	return r.t.insert(statsKey(m.SymbolCode), m)
}

func (r statsRepo) UpdateSupply(ctx context.Context, supply domain.Asset) error {
	key := statsKey(supply.Symbol.Code)
	var m models.TokenStats
	found, err := r.t.get(key, &m)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: stats %s", apperrors.ErrNotFound, supply.Symbol.Code)
	}
	m.Supply = supply.Amount
	return r.t.put(key, m)
}

func (r statsRepo) DeleteStats(ctx context.Context, code string) error {
	return r.t.delete(statsKey(code))
}

type symbolRepo struct{ t *ledgerTx }

func (r symbolRepo) InsertSymbol(ctx context.Context, entry domain.SymbolEntry) error {
	m := mapping.ToModelSymbol(entry)
	return r.t.insert(symbolKey(m.SymbolCode), m)
}

func (r symbolRepo) ListSymbols(ctx context.Context) ([]domain.SymbolEntry, error) {
	var rows []models.TokenSymbol
	err := scan(r.t, ldb_util.BytesPrefix([]byte{prefixSymbol}), func(_ []byte, m models.TokenSymbol) bool {
		rows = append(rows, m)
		return true
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSymbolSlice(rows), nil
}

func (r symbolRepo) DeleteAllSymbols(ctx context.Context) (int, error) {
	var keys [][]byte
	err := scan(r.t, ldb_util.BytesPrefix([]byte{prefixSymbol}), func(key []byte, _ models.TokenSymbol) bool {
		keys = append(keys, key)
		return true
	})
	if err != nil {
		return 0, err
	}
	for _, k := range keys {
		if err := r.t.delete(k); err != nil {
			return 0, err
		}
	}
	return len(keys), nil
}

type accountRepo struct{ t *ledgerTx }

func (r accountRepo) FindAccount(ctx context.Context, owner domain.Name, code string) (domain.Account, bool, error) {
	var m models.TokenAccount
	found, err := r.t.get(accountKey(owner, code), &m)
	if err != nil || !found {
		return domain.Account{}, found, err
	}
	return mapping.ToDomainAccount(m), true, nil
}

func (r accountRepo) ListAccounts(ctx context.Context, owner domain.Name) ([]domain.Account, error) {
	var rows []models.TokenAccount
	err := scan(r.t, ldb_util.BytesPrefix(scanPrefix(prefixAccount, owner.String())), func(_ []byte, m models.TokenAccount) bool {
		rows = append(rows, m)
		return true
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAccountSlice(rows), nil
}

func (r accountRepo) InsertAccount(ctx context.Context, account domain.Account) error {
	return r.t.insert(accountKey(account.Owner, account.Code()), mapping.ToModelAccount(account))
}

func (r accountRepo) UpdateAccount(ctx context.Context, account domain.Account) error {
	return r.t.update(accountKey(account.Owner, account.Code()), mapping.ToModelAccount(account))
}

func (r accountRepo) DeleteAccount(ctx context.Context, owner domain.Name, code string) error {
	return r.t.delete(accountKey(owner, code))
}

type claimRepo struct{ t *ledgerTx }

func (r claimRepo) FindClaim(ctx context.Context, key domain.ClaimKey) (domain.Claim, bool, error) {
	var m models.TokenClaim
	found, err := r.t.get(claimKey(key), &m)
	if err != nil || !found {
		return domain.Claim{}, found, err
	}
	return mapping.ToDomainClaim(m), true, nil
}

func (r claimRepo) ListClaimsByHolder(ctx context.Context, holder domain.Name, after *domain.ClaimKey, limit int) ([]domain.Claim, error) {
	rng := ldb_util.BytesPrefix(scanPrefix(prefixClaim, holder.String()))
	if after != nil {
		// Smallest key strictly greater than the cursor.
		rng.Start = append(claimKey(domain.ClaimKey{Holder: holder, Beneficiary: after.Beneficiary, Code: after.Code}), sep)
	}

	var rows []models.TokenClaim
	err := scan(r.t, rng, func(_ []byte, m models.TokenClaim) bool {
		rows = append(rows, m)
		return limit <= 0 || len(rows) < limit
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainClaimSlice(rows), nil
}

func (r claimRepo) InsertClaim(ctx context.Context, claim domain.Claim) error {
	return r.t.insert(claimKey(claim.ClaimKey), mapping.ToModelClaim(claim))
}

func (r claimRepo) UpdateClaim(ctx context.Context, claim domain.Claim) error {
	return r.t.update(claimKey(claim.ClaimKey), mapping.ToModelClaim(claim))
}

func (r claimRepo) DeleteClaim(ctx context.Context, key domain.ClaimKey) error {
	return r.t.delete(claimKey(key))
}

func (r claimRepo) DeleteClaimsByHolder(ctx context.Context, holder domain.Name) (int, error) {
	var keys [][]byte
	err := scan(r.t, ldb_util.BytesPrefix(scanPrefix(prefixClaim, holder.String())), func(key []byte, _ models.TokenClaim) bool {
		keys = append(keys, key)
		return true
	})
	if err != nil {
		return 0, err
	}
	for _, k := range keys {
		if err := r.t.delete(k); err != nil {
			return 0, err
		}
	}
	return len(keys), nil
}

type versionRepo struct{ t *ledgerTx }

func (r versionRepo) LoadVersion(ctx context.Context) (domain.VersionState, bool, error) {
	var m models.LedgerState
	found, err := r.t.get(stateKey, &m)
	if err != nil || !found {
		return domain.VersionState{}, found, err
	}
	return mapping.ToDomainState(m), true, nil
}

func (r versionRepo) SaveVersion(ctx context.Context, state domain.VersionState) error {
	return r.t.put(stateKey, mapping.ToModelState(state))
}

func (r versionRepo) DeleteVersion(ctx context.Context) error {
	return r.t.delete(stateKey)
}
