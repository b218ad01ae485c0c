package domain

import (
	"fmt"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
)

// Action names a state-changing ledger operation.
type Action string

const (
	ActionCreate     Action = "create"
	ActionIssue      Action = "issue"
	ActionBurn       Action = "burn"
	ActionAllowClaim Action = "allowclaim"
	ActionClaim      Action = "claim"
	ActionCleanState Action = "cleanstate"
	ActionSweepState Action = "sweepstate"
)

// Actions is the static dispatch table of every action the ledger accepts.
var Actions = []Action{
	ActionCreate,
	ActionIssue,
	ActionBurn,
	ActionAllowClaim,
	ActionClaim,
	ActionCleanState,
	ActionSweepState,
}

// ParseAction resolves an action name against the dispatch table.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: unknown action %q", apperrors.ErrValidation, name)
}
