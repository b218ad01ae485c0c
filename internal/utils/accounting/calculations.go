package accounting

import (
	"fmt"
	"sort"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumClaims totals claim quantities per symbol code as exact decimals.
func SumClaims(claims []domain.Claim) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, c := range claims {
		sums[c.Code] = sums[c.Code].Add(c.Quantity.Decimal())
	}
	return sums
}

// AuditHoldings reconciles a holder's balance rows against the claims it placed.
// It fails with apperrors.ErrInvariant when a row is blocked outside
// [0, balance], when claims exist in a symbol the holder has no row for, or
// when the claims of a symbol do not add up to its blocked amount.
func AuditHoldings(holder domain.Name, accounts []domain.Account, claims []domain.Claim) (domain.HolderAudit, error) {
	audit := domain.HolderAudit{Holder: holder, Holdings: make([]domain.HoldingAudit, 0, len(accounts))}

	sums := SumClaims(claims)
	counts := make(map[string]int)
	for _, c := range claims {
		if c.Holder != holder {
			return audit, fmt.Errorf("%w: claim of %s listed for %s", apperrors.ErrInvariant, c.Holder, holder)
		}
		counts[c.Code]++
	}

	seen := make(map[string]bool, len(accounts))
	for _, acc := range accounts {
		code := acc.Code()
		seen[code] = true

		if acc.Blocked < 0 || acc.Blocked > acc.Balance.Amount {
			return audit, fmt.Errorf("%w: %s blocks %d of %s", apperrors.ErrInvariant, holder, acc.Blocked, acc.Balance)
		}
		blocked := domain.NewAsset(acc.Blocked, acc.Balance.Symbol)
		held := sums[code]
		if !held.Equal(blocked.Decimal()) {
			return audit, fmt.Errorf("%w: %s blocks %s but claims hold %s %s",
				apperrors.ErrInvariant, holder, blocked, held.StringFixed(int32(acc.Balance.Symbol.Precision)), code)
		}

		audit.Holdings = append(audit.Holdings, domain.HoldingAudit{
			Code:    code,
			Balance: acc.Balance,
			Blocked: blocked,
			Held:    blocked,
			Claims:  counts[code],
		})
	}

	for code := range sums {
		if !seen[code] {
			return audit, fmt.Errorf("%w: %s holds claims in %s without a balance row", apperrors.ErrInvariant, holder, code)
		}
	}

	sort.Slice(audit.Holdings, func(i, j int) bool {
		return audit.Holdings[i].Code < audit.Holdings[j].Code
	})
	return audit, nil
}
