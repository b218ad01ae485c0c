package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/loyalty_token_ledger/internal/utils/accounting"
	"github.com/SscSPs/loyalty_token_ledger/internal/utils/pagination"
)

const (
	defaultClaimPageSize = 20
	maxClaimPageSize     = 100
)

// AllowClaim places a hold of quantity on from's funds for to, or releases
// part of an existing hold when quantity is negative. Requires from and the exchange.
//
// Invariants kept: 0 <= blocked <= balance, and a holder's claims in a symbol
// never add up to more than its blocked amount.
func (s *ledgerService) AllowClaim(ctx context.Context, from, to domain.Name, quantity domain.Asset) (*domain.Claim, error) {
	key := domain.NewClaimKey(from, to, quantity)
	result := domain.Claim{ClaimKey: key, Quantity: domain.NewAsset(0, quantity.Symbol), Payer: from}

	err := s.execute(ctx, domain.ActionAllowClaim, func(ctx context.Context, uow *unitOfWork) error {
		if err := s.authorizer.RequireAuth(ctx, from); err != nil {
			return err
		}
		if err := s.authorizer.RequireAuth(ctx, s.roles.Exchange); err != nil {
			return err
		}
		if err := validateName("holder", from); err != nil {
			return err
		}
		if err := validateName("beneficiary", to); err != nil {
			return err
		}
		if !quantity.Symbol.IsValid() {
			return fmt.Errorf("%w: %s", apperrors.ErrInvalidSymbol, quantity.Symbol)
		}
		if !quantity.IsValid() || quantity.Amount == 0 {
			return fmt.Errorf("%w: hold must be non-zero", apperrors.ErrInvalidQuantity)
		}

		accounts, claims := uow.tx.Accounts(), uow.tx.Claims()

		acc, found, err := accounts.FindAccount(ctx, from, key.Code)
		if err != nil {
			return fmt.Errorf("failed to load account of %s: %w", from, err)
		}
		if !found {
			return fmt.Errorf("%w: %s holds no %s", apperrors.ErrSymbolNotFound, from, key.Code)
		}
		if !acc.Balance.SameSymbol(quantity) {
			return fmt.Errorf("%w: account holds %s, hold is %s", apperrors.ErrSymbolMismatch, acc.Balance.Symbol, quantity.Symbol)
		}

		existing, hasClaim, err := claims.FindClaim(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to load claim: %w", err)
		}
		newQuantity := quantity.Amount
		if hasClaim {
			if !existing.Quantity.SameSymbol(quantity) {
				return fmt.Errorf("%w: claim holds %s, hold is %s", apperrors.ErrSymbolMismatch, existing.Quantity.Symbol, quantity.Symbol)
			}
			newQuantity += existing.Quantity.Amount
		} else if quantity.Amount < 0 {
			return fmt.Errorf("%w: nothing to release for %s", apperrors.ErrNoClaim, to)
		}
		if newQuantity < 0 {
			return fmt.Errorf("%w: release exceeds the outstanding %s", apperrors.ErrOverdrawnClaim, existing.Quantity)
		}

		newBlocked := acc.Blocked + quantity.Amount
		if newBlocked > acc.Balance.Amount {
			return fmt.Errorf("%w: %s can hold at most %s", apperrors.ErrOverdrawn, from, acc.Spendable())
		}
		if newBlocked < 0 {
			return fmt.Errorf("%w: release exceeds blocked amount", apperrors.ErrOverdrawnClaim)
		}

		acc.Blocked = newBlocked
		acc.Payer = from
		if err := accounts.UpdateAccount(ctx, acc); err != nil {
			return fmt.Errorf("failed to update account of %s: %w", from, err)
		}

		result.Quantity = domain.NewAsset(newQuantity, quantity.Symbol)
		switch {
		case newQuantity == 0:
			err = claims.DeleteClaim(ctx, key)
		case hasClaim:
			err = claims.UpdateClaim(ctx, result)
		default:
			err = claims.InsertClaim(ctx, result)
		}
		if err != nil {
			return fmt.Errorf("failed to store claim: %w", err)
		}

		for _, recipient := range []domain.Name{from, to} {
			uow.notify(domain.Notification{
				Action:    string(domain.ActionAllowClaim),
				Recipient: recipient,
				From:      from,
				To:        to,
				Quantity:  quantity,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Claim allowance changed",
		slog.String("holder", from.String()),
		slog.String("beneficiary", to.String()),
		slog.String("delta", quantity.String()),
		slog.String("outstanding", result.Quantity.String()))
	return &result, nil
}

// Claim settles quantity of the hold from placed for to, moving the funds to to.
// Requires to and the exchange.
func (s *ledgerService) Claim(ctx context.Context, from, to domain.Name, quantity domain.Asset) (*domain.Account, error) {
	key := domain.NewClaimKey(from, to, quantity)
	var beneficiary domain.Account

	err := s.execute(ctx, domain.ActionClaim, func(ctx context.Context, uow *unitOfWork) error {
		if err := s.authorizer.RequireAuth(ctx, to); err != nil {
			return err
		}
		if err := s.authorizer.RequireAuth(ctx, s.roles.Exchange); err != nil {
			return err
		}
		if err := validateName("holder", from); err != nil {
			return err
		}
		if err := validateName("beneficiary", to); err != nil {
			return err
		}
		if err := validatePositive(quantity); err != nil {
			return err
		}

		accounts, claims := uow.tx.Accounts(), uow.tx.Claims()

		acc, found, err := accounts.FindAccount(ctx, from, key.Code)
		if err != nil {
			return fmt.Errorf("failed to load account of %s: %w", from, err)
		}
		if !found {
			return fmt.Errorf("%w: %s holds no %s", apperrors.ErrSymbolNotFound, from, key.Code)
		}
		if !acc.Balance.SameSymbol(quantity) {
			return fmt.Errorf("%w: account holds %s, claim is %s", apperrors.ErrSymbolMismatch, acc.Balance.Symbol, quantity.Symbol)
		}

		existing, hasClaim, err := claims.FindClaim(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to load claim: %w", err)
		}
		if !hasClaim {
			return fmt.Errorf("%w: %s placed no hold for %s", apperrors.ErrNoClaim, from, to)
		}
		if !existing.Quantity.SameSymbol(quantity) {
			return fmt.Errorf("%w: claim holds %s, claim is %s", apperrors.ErrSymbolMismatch, existing.Quantity.Symbol, quantity.Symbol)
		}
		if quantity.Amount > existing.Quantity.Amount {
			return fmt.Errorf("%w: outstanding is %s", apperrors.ErrOverdrawnClaim, existing.Quantity)
		}
		if acc.Blocked < quantity.Amount {
			return fmt.Errorf("%w: blocked is %s", apperrors.ErrOverdrawnClaim, domain.NewAsset(acc.Blocked, acc.Balance.Symbol))
		}

		acc.Blocked -= quantity.Amount
		acc.Payer = to
		if err := accounts.UpdateAccount(ctx, acc); err != nil {
			return fmt.Errorf("failed to update account of %s: %w", from, err)
		}

		if quantity.Amount == existing.Quantity.Amount {
			err = claims.DeleteClaim(ctx, key)
		} else {
			existing.Quantity.Amount -= quantity.Amount
			err = claims.UpdateClaim(ctx, existing)
		}
		if err != nil {
			return fmt.Errorf("failed to store claim: %w", err)
		}

		if err := subBalance(ctx, accounts, from, quantity, to); err != nil {
			return err
		}
		if err := addBalance(ctx, accounts, to, quantity, to); err != nil {
			return err
		}

		row, _, err := accounts.FindAccount(ctx, to, key.Code)
		if err != nil {
			return fmt.Errorf("failed to load account of %s: %w", to, err)
		}
		beneficiary = row
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Claim settled",
		slog.String("holder", from.String()),
		slog.String("beneficiary", to.String()),
		slog.String("quantity", quantity.String()))
	return &beneficiary, nil
}

func (s *ledgerService) GetClaim(ctx context.Context, key domain.ClaimKey) (*domain.Claim, error) {
	if err := validateName("holder", key.Holder); err != nil {
		return nil, err
	}
	if err := validateName("beneficiary", key.Beneficiary); err != nil {
		return nil, err
	}
	if err := validateCode(key.Code); err != nil {
		return nil, err
	}

	var claim domain.Claim
	err := s.query(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		row, found, err := tx.Claims().FindClaim(ctx, key)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s -> %s in %s", apperrors.ErrNoClaim, key.Holder, key.Beneficiary, key.Code)
		}
		claim = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// ListClaims pages through holder's claims ordered by beneficiary and symbol code.
func (s *ledgerService) ListClaims(ctx context.Context, holder domain.Name, pageToken string, limit int) (*domain.ClaimPage, error) {
	if err := validateName("holder", holder); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultClaimPageSize
	}
	if limit > maxClaimPageSize {
		limit = maxClaimPageSize
	}

	var after *domain.ClaimKey
	if pageToken != "" {
		beneficiary, code, err := pagination.DecodeClaimCursor(pageToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		after = &domain.ClaimKey{Holder: holder, Beneficiary: domain.Name(beneficiary), Code: code}
	}

	var claims []domain.Claim
	err := s.query(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		var err error
		// One extra row tells whether another page exists.
		claims, err = tx.Claims().ListClaimsByHolder(ctx, holder, after, limit+1)
		return err
	})
	if err != nil {
		return nil, err
	}

	page := &domain.ClaimPage{Claims: claims}
	if len(claims) > limit {
		page.Claims = claims[:limit]
		last := page.Claims[limit-1]
		page.NextPageToken = pagination.EncodeClaimCursor(last.Beneficiary.String(), last.Code)
	}
	if page.Claims == nil {
		page.Claims = []domain.Claim{}
	}
	return page, nil
}

// AuditHolder reconciles every balance row of holder with the claims it placed,
// reading both in one snapshot.
func (s *ledgerService) AuditHolder(ctx context.Context, holder domain.Name) (*domain.HolderAudit, error) {
	if err := validateName("holder", holder); err != nil {
		return nil, err
	}

	var audit domain.HolderAudit
	err := s.query(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		accounts, err := tx.Accounts().ListAccounts(ctx, holder)
		if err != nil {
			return fmt.Errorf("failed to list accounts of %s: %w", holder, err)
		}
		claims, err := tx.Claims().ListClaimsByHolder(ctx, holder, nil, 0)
		if err != nil {
			return fmt.Errorf("failed to list claims of %s: %w", holder, err)
		}
		audit, err = accounting.AuditHoldings(holder, accounts, claims)
		return err
	})
	if err != nil {
		s.LogWarn(ctx, err, "Escrow audit failed", slog.String("holder", holder.String()))
		return nil, err
	}
	return &audit, nil
}
