package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/repositories"
)

// subBalance debits value from owner's spendable balance. A row debited to
// exactly zero is deleted; otherwise the row is re-attributed to payer.
func subBalance(ctx context.Context, accounts portsrepo.AccountRepository, owner domain.Name, value domain.Asset, payer domain.Name) error {
	acc, found, err := accounts.FindAccount(ctx, owner, value.Symbol.Code)
	if err != nil {
		return fmt.Errorf("failed to load account of %s: %w", owner, err)
	}
	if !found {
		return fmt.Errorf("%w: %s holds no %s", apperrors.ErrNoBalance, owner, value.Symbol.Code)
	}
	if !acc.Balance.SameSymbol(value) {
		return fmt.Errorf("%w: account holds %s, debit is %s", apperrors.ErrSymbolMismatch, acc.Balance.Symbol, value.Symbol)
	}
	if acc.Balance.Amount-acc.Blocked < value.Amount {
		return fmt.Errorf("%w: %s can spend %s", apperrors.ErrOverdrawn, owner, acc.Spendable())
	}

	if acc.Balance.Amount == value.Amount {
		return accounts.DeleteAccount(ctx, owner, value.Symbol.Code)
	}

	acc.Balance.Amount -= value.Amount
	acc.Payer = payer
	return accounts.UpdateAccount(ctx, acc)
}

// addBalance credits value to owner, creating the row attributed to payer
// when absent. An existing row keeps its payer and blocked amount.
func addBalance(ctx context.Context, accounts portsrepo.AccountRepository, owner domain.Name, value domain.Asset, payer domain.Name) error {
	acc, found, err := accounts.FindAccount(ctx, owner, value.Symbol.Code)
	if err != nil {
		return fmt.Errorf("failed to load account of %s: %w", owner, err)
	}
	if !found {
		return accounts.InsertAccount(ctx, domain.Account{
			Owner:   owner,
			Balance: value,
			Blocked: 0,
			Payer:   payer,
		})
	}
	if !acc.Balance.SameSymbol(value) {
		return fmt.Errorf("%w: account holds %s, credit is %s", apperrors.ErrSymbolMismatch, acc.Balance.Symbol, value.Symbol)
	}
	if acc.Balance.Amount > domain.MaxAmount-value.Amount {
		return fmt.Errorf("%w: balance of %s would overflow", apperrors.ErrSupplyExceeded, owner)
	}

	acc.Balance.Amount += value.Amount
	return accounts.UpdateAccount(ctx, acc)
}

func validateName(role string, n domain.Name) error {
	if !n.IsValid() {
		return fmt.Errorf("%w: %s %q", apperrors.ErrInvalidName, role, n)
	}
	return nil
}

func validateCode(code string) error {
	if !domain.IsValidSymbolCode(code) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidSymbol, code)
	}
	return nil
}

// validatePositive checks that q is well-formed and strictly positive.
func validatePositive(q domain.Asset) error {
	if !q.Symbol.IsValid() {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidSymbol, q.Symbol)
	}
	if !q.IsValid() || q.Amount <= 0 {
		return fmt.Errorf("%w: %s must be positive", apperrors.ErrInvalidQuantity, q)
	}
	return nil
}
