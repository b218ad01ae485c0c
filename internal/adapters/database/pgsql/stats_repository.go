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

type pgxStatsRepository struct {
	tx   pgx.Tx
	lock string
}

var _ portsrepo.StatsRepository = (*pgxStatsRepository)(nil)

// FindStats returns the stats row of code, locking it inside a unit of work.
func (r *pgxStatsRepository) FindStats(ctx context.Context, code string) (domain.CurrencyStats, bool, error) {
	query := `
		SELECT symbol_code, precision, supply, max_supply, issuer, info_name, info_url, info_logo_url
		FROM token_stats
		WHERE symbol_code = $1
	`
	rows, err := r.tx.Query(ctx, query+r.lock, code)
	if err != nil {
		return domain.CurrencyStats{}, false, fmt.Errorf("failed to query stats %s: %w", code, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.TokenStats])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CurrencyStats{}, false, nil
		}
		return domain.CurrencyStats{}, false, fmt.Errorf("failed to scan stats %s: %w", code, err)
	}
	return mapping.ToDomainStats(m), true, nil
}

func (r *pgxStatsRepository) InsertStats(ctx context.Context, stats domain.CurrencyStats) error {
	m := mapping.ToModelStats(stats)
	query := `
		INSERT INTO token_stats (symbol_code, precision, supply, max_supply, issuer, info_name, info_url, info_logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.tx.Exec(ctx, query,
		m.SymbolCode,
		m.Precision,
		m.Supply,
		m.MaxSupply,
		m.Issuer,
		m.InfoName,
		m.InfoURL,
		m.InfoLogoURL,
	)
	if err != nil {
		return translateWriteError(err, "stats "+m.SymbolCode)
	}
	return nil
}

func (r *pgxStatsRepository) UpdateSupply(ctx context.Context, supply domain.Asset) error {
	query := `UPDATE token_stats SET supply = $2 WHERE symbol_code = $1;`
	tag, err := r.tx.Exec(ctx, query, supply.Symbol.Code, supply.Amount)
	if err != nil {
		return fmt.Errorf("failed to update supply of %s: %w", supply.Symbol.Code, err)
	}
	return requireRow(tag, "stats "+supply.Symbol.Code)
}

func (r *pgxStatsRepository) DeleteStats(ctx context.Context, code string) error {
	if _, err := r.tx.Exec(ctx, `DELETE FROM token_stats WHERE symbol_code = $1;`, code); err != nil {
		return fmt.Errorf("failed to delete stats %s: %w", code, err)
	}
	return nil
}

type pgxSymbolRepository struct {
	tx pgx.Tx
}

var _ portsrepo.SymbolRepository = (*pgxSymbolRepository)(nil)

func (r *pgxSymbolRepository) InsertSymbol(ctx context.Context, entry domain.SymbolEntry) error {
	m := mapping.ToModelSymbol(entry)
	query := `INSERT INTO token_symbols (symbol_code, precision) VALUES ($1, $2);`
	if _, err := r.tx.Exec(ctx, query, m.SymbolCode, m.Precision); err != nil {
		return translateWriteError(err, "symbol "+m.SymbolCode)
	}
	return nil
}

func (r *pgxSymbolRepository) ListSymbols(ctx context.Context) ([]domain.SymbolEntry, error) {
	query := `
		SELECT symbol_code, precision
		FROM token_symbols
		ORDER BY symbol_code;
	`
	rows, err := r.tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TokenSymbol])
	if err != nil {
		return nil, fmt.Errorf("failed to scan symbols: %w", err)
	}
	return mapping.ToDomainSymbolSlice(ms), nil
}

func (r *pgxSymbolRepository) DeleteAllSymbols(ctx context.Context) (int, error) {
	tag, err := r.tx.Exec(ctx, `DELETE FROM token_symbols;`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete symbols: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

type pgxVersionRepository struct {
	tx   pgx.Tx
	lock string
}

var _ portsrepo.VersionRepository = (*pgxVersionRepository)(nil)

func (r *pgxVersionRepository) LoadVersion(ctx context.Context) (domain.VersionState, bool, error) {
	var m models.LedgerState
	err := r.tx.QueryRow(ctx, `SELECT version, hash FROM ledger_state WHERE id = 1`+r.lock).Scan(&m.Version, &m.Hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.VersionState{}, false, nil
		}
		return domain.VersionState{}, false, fmt.Errorf("failed to load version state: %w", err)
	}
	return mapping.ToDomainState(m), true, nil
}

func (r *pgxVersionRepository) SaveVersion(ctx context.Context, state domain.VersionState) error {
	m := mapping.ToModelState(state)
	query := `
		INSERT INTO ledger_state (id, version, hash)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			version = EXCLUDED.version,
			hash = EXCLUDED.hash;
	`
	if _, err := r.tx.Exec(ctx, query, m.Version, m.Hash); err != nil {
		return fmt.Errorf("failed to save version state: %w", err)
	}
	return nil
}

func (r *pgxVersionRepository) DeleteVersion(ctx context.Context) error {
	if _, err := r.tx.Exec(ctx, `DELETE FROM ledger_state WHERE id = 1;`); err != nil {
		return fmt.Errorf("failed to delete version state: %w", err)
	}
	return nil
}
