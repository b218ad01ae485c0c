package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/repositories"
)

// CleanState drops the version record at the end of the unit of work.
// Ledger tables are left untouched; SweepState wipes those.
func (s *ledgerService) CleanState(ctx context.Context) error {
	return s.execute(ctx, domain.ActionCleanState, func(ctx context.Context, uow *unitOfWork) error {
		if err := s.authorizer.RequireAuth(ctx, s.roles.Admin); err != nil {
			return err
		}
		uow.session.markForRemoval()
		return nil
	})
}

// SweepState deletes the stats of each listed code, the whole symbol registry,
// every row of each listed owner and every claim those owners hold.
func (s *ledgerService) SweepState(ctx context.Context, codes []string, owners []domain.Name) (*domain.SweepReport, error) {
	report := &domain.SweepReport{}

	err := s.execute(ctx, domain.ActionSweepState, func(ctx context.Context, uow *unitOfWork) error {
		if err := s.authorizer.RequireAuth(ctx, s.roles.Admin); err != nil {
			return err
		}
		for _, code := range codes {
			if err := validateCode(code); err != nil {
				return err
			}
		}
		for _, owner := range owners {
			if err := validateName("owner", owner); err != nil {
				return err
			}
		}

		for _, code := range codes {
			_, found, err := uow.tx.Stats().FindStats(ctx, code)
			if err != nil {
				return fmt.Errorf("failed to load stats for %s: %w", code, err)
			}
			if !found {
				continue
			}
			if err := uow.tx.Stats().DeleteStats(ctx, code); err != nil {
				return fmt.Errorf("failed to delete stats for %s: %w", code, err)
			}
			report.Stats++
		}

		removed, err := uow.tx.Symbols().DeleteAllSymbols(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear symbol registry: %w", err)
		}
		report.Symbols = removed

		for _, owner := range owners {
			rows, err := uow.tx.Accounts().ListAccounts(ctx, owner)
			if err != nil {
				return fmt.Errorf("failed to list accounts of %s: %w", owner, err)
			}
			for _, row := range rows {
				if err := uow.tx.Accounts().DeleteAccount(ctx, owner, row.Code()); err != nil {
					return fmt.Errorf("failed to delete account of %s: %w", owner, err)
				}
				report.Accounts++
			}

			n, err := uow.tx.Claims().DeleteClaimsByHolder(ctx, owner)
			if err != nil {
				return fmt.Errorf("failed to delete claims of %s: %w", owner, err)
			}
			report.Claims += n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Ledger state swept",
		slog.Int("stats", report.Stats),
		slog.Int("symbols", report.Symbols),
		slog.Int("accounts", report.Accounts),
		slog.Int("claims", report.Claims))
	return report, nil
}

// GetVersion returns the stored version record, or the running default when none is stored.
func (s *ledgerService) GetVersion(ctx context.Context) (*domain.VersionState, error) {
	state := s.defaultVersion
	err := s.query(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		stored, found, err := tx.Version().LoadVersion(ctx)
		if err != nil {
			return err
		}
		if found {
			state = stored
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}
