package dto

import (
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
)

// SweepStateRequest lists the symbols and owners whose rows are wiped.
type SweepStateRequest struct {
	Symbols []string `json:"symbols" binding:"omitempty,dive,symbolcode"`
	Owners  []string `json:"owners" binding:"omitempty,dive,ledgername"`
}

// SweepReportResponse counts the rows a sweep removed.
type SweepReportResponse struct {
	Stats    int `json:"stats"`
	Symbols  int `json:"symbols"`
	Accounts int `json:"accounts"`
	Claims   int `json:"claims"`
}

// VersionResponse is the ledger-wide version record.
type VersionResponse struct {
	Version string `json:"version"`
	Hash    string `json:"hash"`
}

// ActionResponse acknowledges an action that returns no data.
type ActionResponse struct {
	Action string `json:"action"`
	Status string `json:"status"`
}

// OwnerNames converts validated owner strings to ledger names.
func (r SweepStateRequest) OwnerNames() []domain.Name {
	names := make([]domain.Name, len(r.Owners))
	for i, o := range r.Owners {
		names[i] = domain.Name(o)
	}
	return names
}

// ToSweepReportResponse converts a sweep report to its response DTO
func ToSweepReportResponse(r *domain.SweepReport) SweepReportResponse {
	return SweepReportResponse{
		Stats:    r.Stats,
		Symbols:  r.Symbols,
		Accounts: r.Accounts,
		Claims:   r.Claims,
	}
}

// ToVersionResponse converts the version record to its response DTO
func ToVersionResponse(v *domain.VersionState) VersionResponse {
	return VersionResponse{Version: v.Version, Hash: v.Hash}
}
