package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/repositories"
)

const maxMemoBytes = 256

// Create registers a new symbol. Only the ledger administrator may create.
func (s *ledgerService) Create(ctx context.Context, issuer domain.Name, maxSupply domain.Asset, info domain.StoreInfo) (*domain.CurrencyStats, error) {
	var created domain.CurrencyStats

	err := s.execute(ctx, domain.ActionCreate, func(ctx context.Context, uow *unitOfWork) error {
		if err := s.authorizer.RequireAuth(ctx, s.roles.Admin); err != nil {
			return err
		}

		sym := maxSupply.Symbol
		if !sym.IsValid() {
			return fmt.Errorf("%w: %s", apperrors.ErrInvalidSymbol, sym)
		}
		if !maxSupply.IsValid() {
			return fmt.Errorf("%w: %s", apperrors.ErrInvalidSupply, maxSupply)
		}
		if maxSupply.Amount <= 0 {
			return fmt.Errorf("%w: max-supply must be positive", apperrors.ErrInvalidSupply)
		}
		if err := validateName("issuer", issuer); err != nil {
			return err
		}

		_, exists, err := uow.tx.Stats().FindStats(ctx, sym.Code)
		if err != nil {
			return fmt.Errorf("failed to load stats for %s: %w", sym.Code, err)
		}
		if exists {
			return fmt.Errorf("%w: %s", apperrors.ErrSymbolExists, sym.Code)
		}

		created = domain.CurrencyStats{
			Supply:    domain.NewAsset(0, sym),
			MaxSupply: maxSupply,
			Issuer:    issuer,
			Info:      info,
		}
		if err := uow.tx.Stats().InsertStats(ctx, created); err != nil {
			return fmt.Errorf("failed to insert stats for %s: %w", sym.Code, err)
		}
		if err := uow.tx.Symbols().InsertSymbol(ctx, domain.SymbolEntry{Symbol: sym}); err != nil {
			return fmt.Errorf("failed to register symbol %s: %w", sym.Code, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Token created", slog.String("symbol", created.Symbol().String()), slog.String("issuer", issuer.String()))
	return &created, nil
}

// Issue mints quantity to an account. Only the symbol's issuer may issue.
func (s *ledgerService) Issue(ctx context.Context, to domain.Name, quantity domain.Asset, memo string) (*domain.CurrencyStats, error) {
	var updated domain.CurrencyStats

	err := s.execute(ctx, domain.ActionIssue, func(ctx context.Context, uow *unitOfWork) error {
		sym := quantity.Symbol
		if !sym.IsValid() {
			return fmt.Errorf("%w: %s", apperrors.ErrInvalidSymbol, sym)
		}
		if len(memo) > maxMemoBytes {
			return apperrors.ErrMemoTooLong
		}
		if err := validateName("recipient", to); err != nil {
			return err
		}

		st, found, err := uow.tx.Stats().FindStats(ctx, sym.Code)
		if err != nil {
			return fmt.Errorf("failed to load stats for %s: %w", sym.Code, err)
		}
		if !found {
			return fmt.Errorf("%w: create token %s before issue", apperrors.ErrSymbolNotFound, sym.Code)
		}

		if err := s.authorizer.RequireAuth(ctx, st.Issuer); err != nil {
			return err
		}
		if !quantity.IsValid() || quantity.Amount <= 0 {
			return fmt.Errorf("%w: must issue positive quantity", apperrors.ErrInvalidQuantity)
		}
		if !quantity.SameSymbol(st.Supply) {
			return fmt.Errorf("%w: token is %s, quantity is %s", apperrors.ErrSymbolMismatch, st.Supply.Symbol, sym)
		}
		if quantity.Amount > st.Available() {
			return fmt.Errorf("%w: %s remaining", apperrors.ErrSupplyExceeded, domain.NewAsset(st.Available(), sym))
		}

		st.Supply.Amount += quantity.Amount
		if err := uow.tx.Stats().UpdateSupply(ctx, st.Supply); err != nil {
			return fmt.Errorf("failed to update supply of %s: %w", sym.Code, err)
		}
		if err := addBalance(ctx, uow.tx.Accounts(), to, quantity, st.Issuer); err != nil {
			return err
		}
		updated = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Burn destroys value from owner's spendable balance. Only owner may burn.
func (s *ledgerService) Burn(ctx context.Context, owner domain.Name, value domain.Asset) (*domain.CurrencyStats, error) {
	var updated domain.CurrencyStats

	err := s.execute(ctx, domain.ActionBurn, func(ctx context.Context, uow *unitOfWork) error {
		if err := s.authorizer.RequireAuth(ctx, owner); err != nil {
			return err
		}
		if err := validatePositive(value); err != nil {
			return err
		}

		if err := subBalance(ctx, uow.tx.Accounts(), owner, value, owner); err != nil {
			return err
		}

		st, found, err := uow.tx.Stats().FindStats(ctx, value.Symbol.Code)
		if err != nil {
			return fmt.Errorf("failed to load stats for %s: %w", value.Symbol.Code, err)
		}
		if !found {
			return fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, value.Symbol.Code)
		}
		if !value.SameSymbol(st.Supply) {
			return fmt.Errorf("%w: token is %s, value is %s", apperrors.ErrSymbolMismatch, st.Supply.Symbol, value.Symbol)
		}

		if value.Amount > st.Supply.Amount {
			return fmt.Errorf("%w: burn of %s exceeds supply %s", apperrors.ErrSupplyExceeded, value, st.Supply)
		}

		st.Supply.Amount -= value.Amount
		if err := uow.tx.Stats().UpdateSupply(ctx, st.Supply); err != nil {
			return fmt.Errorf("failed to update supply of %s: %w", value.Symbol.Code, err)
		}
		updated = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ledgerService) GetSupply(ctx context.Context, code string) (*domain.Asset, error) {
	st, err := s.GetStats(ctx, code)
	if err != nil {
		return nil, err
	}
	return &st.Supply, nil
}

func (s *ledgerService) GetStats(ctx context.Context, code string) (*domain.CurrencyStats, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}

	var st domain.CurrencyStats
	err := s.query(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		stats, found, err := tx.Stats().FindStats(ctx, code)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, code)
		}
		st = stats
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *ledgerService) ListSymbols(ctx context.Context) ([]domain.SymbolEntry, error) {
	var entries []domain.SymbolEntry
	err := s.query(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		var err error
		entries, err = tx.Symbols().ListSymbols(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return []domain.SymbolEntry{}, nil
	}
	return entries, nil
}

// GetBalance returns the spendable amount, not the raw balance.
func (s *ledgerService) GetBalance(ctx context.Context, owner domain.Name, code string) (*domain.Asset, error) {
	acc, err := s.GetAccount(ctx, owner, code)
	if err != nil {
		return nil, err
	}
	spendable := acc.Spendable()
	return &spendable, nil
}

func (s *ledgerService) GetAccount(ctx context.Context, owner domain.Name, code string) (*domain.Account, error) {
	if err := validateName("owner", owner); err != nil {
		return nil, err
	}
	if err := validateCode(code); err != nil {
		return nil, err
	}

	var acc domain.Account
	err := s.query(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		row, found, err := tx.Accounts().FindAccount(ctx, owner, code)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s holds no %s", apperrors.ErrSymbolNotFound, owner, code)
		}
		acc = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
