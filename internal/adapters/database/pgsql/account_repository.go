package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/loyalty_token_ledger/internal/models"
	"github.com/SscSPs/loyalty_token_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type pgxAccountRepository struct {
	tx   pgx.Tx
	lock string
}

var _ portsrepo.AccountRepository = (*pgxAccountRepository)(nil)

// FindAccount returns the (owner, code) row, locking it inside a unit of work.
func (r *pgxAccountRepository) FindAccount(ctx context.Context, owner domain.Name, code string) (domain.Account, bool, error) {
	query := `
		SELECT owner, symbol_code, precision, balance, blocked, payer
		FROM token_accounts
		WHERE owner = $1 AND symbol_code = $2
	`
	rows, err := r.tx.Query(ctx, query+r.lock, owner.String(), code)
	if err != nil {
		return domain.Account{}, false, fmt.Errorf("failed to query account %s/%s: %w", owner, code, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.TokenAccount])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, false, nil
		}
		return domain.Account{}, false, fmt.Errorf("failed to scan account %s/%s: %w", owner, code, err)
	}
	return mapping.ToDomainAccount(m), true, nil
}

// ListAccounts returns every row of owner ordered by symbol code.
func (r *pgxAccountRepository) ListAccounts(ctx context.Context, owner domain.Name) ([]domain.Account, error) {
	query := `
		SELECT owner, symbol_code, precision, balance, blocked, payer
		FROM token_accounts
		WHERE owner = $1
		ORDER BY symbol_code;
	`
	rows, err := r.tx.Query(ctx, query, owner.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts of %s: %w", owner, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TokenAccount])
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts of %s: %w", owner, err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

func (r *pgxAccountRepository) InsertAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO token_accounts (owner, symbol_code, precision, balance, blocked, payer)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.tx.Exec(ctx, query, m.Owner, m.SymbolCode, m.Precision, m.Balance, m.Blocked, m.Payer)
	if err != nil {
		return translateWriteError(err, "account "+m.Owner+"/"+m.SymbolCode)
	}
	return nil
}

func (r *pgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE token_accounts
		SET precision = $3, balance = $4, blocked = $5, payer = $6
		WHERE owner = $1 AND symbol_code = $2;
	`
	tag, err := r.tx.Exec(ctx, query, m.Owner, m.SymbolCode, m.Precision, m.Balance, m.Blocked, m.Payer)
	if err != nil {
		return fmt.Errorf("failed to update account %s/%s: %w", m.Owner, m.SymbolCode, err)
	}
	return requireRow(tag, "account "+m.Owner+"/"+m.SymbolCode)
}

func (r *pgxAccountRepository) DeleteAccount(ctx context.Context, owner domain.Name, code string) error {
	query := `DELETE FROM token_accounts WHERE owner = $1 AND symbol_code = $2;`
	if _, err := r.tx.Exec(ctx, query, owner.String(), code); err != nil {
		return fmt.Errorf("failed to delete account %s/%s: %w", owner, code, err)
	}
	return nil
}

type pgxClaimRepository struct {
	tx   pgx.Tx
	lock string
}

var _ portsrepo.ClaimRepository = (*pgxClaimRepository)(nil)

func (r *pgxClaimRepository) FindClaim(ctx context.Context, key domain.ClaimKey) (domain.Claim, bool, error) {
	query := `
		SELECT holder, beneficiary, symbol_code, precision, quantity, payer
		FROM token_claims
		WHERE holder = $1 AND beneficiary = $2 AND symbol_code = $3
	`
	rows, err := r.tx.Query(ctx, query+r.lock, key.Holder.String(), key.Beneficiary.String(), key.Code)
	if err != nil {
		return domain.Claim{}, false, fmt.Errorf("failed to query claim: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.TokenClaim])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Claim{}, false, nil
		}
		return domain.Claim{}, false, fmt.Errorf("failed to scan claim: %w", err)
	}
	return mapping.ToDomainClaim(m), true, nil
}

// ListClaimsByHolder pages through holder's claims in (beneficiary, symbol_code)
// order, starting strictly after the given key.
func (r *pgxClaimRepository) ListClaimsByHolder(ctx context.Context, holder domain.Name, after *domain.ClaimKey, limit int) ([]domain.Claim, error) {
	query := `
		SELECT holder, beneficiary, symbol_code, precision, quantity, payer
		FROM token_claims
		WHERE holder = $1 AND ($2::boolean OR (beneficiary, symbol_code) > ($3, $4))
		ORDER BY beneficiary, symbol_code
		LIMIT $5;
	`
	var afterBeneficiary, afterCode string
	if after != nil {
		afterBeneficiary, afterCode = after.Beneficiary.String(), after.Code
	}
	// LIMIT NULL returns every row.
	var rowLimit *int
	if limit > 0 {
		rowLimit = &limit
	}

	rows, err := r.tx.Query(ctx, query, holder.String(), after == nil, afterBeneficiary, afterCode, rowLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query claims of %s: %w", holder, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TokenClaim])
	if err != nil {
		return nil, fmt.Errorf("failed to scan claims of %s: %w", holder, err)
	}
	return mapping.ToDomainClaimSlice(ms), nil
}

func (r *pgxClaimRepository) InsertClaim(ctx context.Context, claim domain.Claim) error {
	m := mapping.ToModelClaim(claim)
	query := `
		INSERT INTO token_claims (holder, beneficiary, symbol_code, precision, quantity, payer)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.tx.Exec(ctx, query, m.Holder, m.Beneficiary, m.SymbolCode, m.Precision, m.Quantity, m.Payer)
	if err != nil {
		return translateWriteError(err, "claim "+m.Holder+"->"+m.Beneficiary)
	}
	return nil
}

func (r *pgxClaimRepository) UpdateClaim(ctx context.Context, claim domain.Claim) error {
	m := mapping.ToModelClaim(claim)
	query := `
		UPDATE token_claims
		SET precision = $4, quantity = $5, payer = $6
		WHERE holder = $1 AND beneficiary = $2 AND symbol_code = $3;
	`
	tag, err := r.tx.Exec(ctx, query, m.Holder, m.Beneficiary, m.SymbolCode, m.Precision, m.Quantity, m.Payer)
	if err != nil {
		return fmt.Errorf("failed to update claim %s->%s: %w", m.Holder, m.Beneficiary, err)
	}
	return requireRow(tag, "claim "+m.Holder+"->"+m.Beneficiary)
}

func (r *pgxClaimRepository) DeleteClaim(ctx context.Context, key domain.ClaimKey) error {
	query := `DELETE FROM token_claims WHERE holder = $1 AND beneficiary = $2 AND symbol_code = $3;`
	if _, err := r.tx.Exec(ctx, query, key.Holder.String(), key.Beneficiary.String(), key.Code); err != nil {
		return fmt.Errorf("failed to delete claim %s->%s: %w", key.Holder, key.Beneficiary, err)
	}
	return nil
}

func (r *pgxClaimRepository) DeleteClaimsByHolder(ctx context.Context, holder domain.Name) (int, error) {
	tag, err := r.tx.Exec(ctx, `DELETE FROM token_claims WHERE holder = $1;`, holder.String())
	if err != nil {
		return 0, fmt.Errorf("failed to delete claims of %s: %w", holder, err)
	}
	return int(tag.RowsAffected()), nil
}
