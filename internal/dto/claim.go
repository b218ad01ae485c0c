package dto

import (
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
)

// AllowClaimRequest places (positive quantity) or releases (negative quantity) a hold.
type AllowClaimRequest struct {
	From     string `json:"from" binding:"required,ledgername"`
	To       string `json:"to" binding:"required,ledgername"`
	Quantity string `json:"quantity" binding:"required,asset" example:"-2.5000 PTS"`
}

// ClaimRequest settles part or all of a hold.
type ClaimRequest struct {
	From     string `json:"from" binding:"required,ledgername"`
	To       string `json:"to" binding:"required,ledgername"`
	Quantity string `json:"quantity" binding:"required,asset" example:"2.5000 PTS"`
}

// ListClaimsParams defines the query parameters for paging a holder's claims.
type ListClaimsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ClaimResponse defines the data returned for an outstanding claim.
type ClaimResponse struct {
	Holder      string `json:"holder"`
	Beneficiary string `json:"beneficiary"`
	Quantity    string `json:"quantity"`
	Payer       string `json:"payer"`
}

// ListClaimsResponse is one page of claims.
type ListClaimsResponse struct {
	Claims    []ClaimResponse `json:"claims"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToClaimResponse converts a domain claim to its response DTO
func ToClaimResponse(c *domain.Claim) ClaimResponse {
	return ClaimResponse{
		Holder:      c.Holder.String(),
		Beneficiary: c.Beneficiary.String(),
		Quantity:    c.Quantity.String(),
		Payer:       c.Payer.String(),
	}
}

// ToListClaimsResponse converts a claim page to its response DTO
func ToListClaimsResponse(page *domain.ClaimPage) ListClaimsResponse {
	res := ListClaimsResponse{Claims: make([]ClaimResponse, len(page.Claims))}
	for i := range page.Claims {
		res.Claims[i] = ToClaimResponse(&page.Claims[i])
	}
	if page.NextPageToken != "" {
		token := page.NextPageToken
		res.NextToken = &token
	}
	return res
}

// HoldingAuditResponse reconciles one balance row with its claims.
type HoldingAuditResponse struct {
	Code    string `json:"code"`
	Balance string `json:"balance"`
	Blocked string `json:"blocked"`
	Held    string `json:"held"`
	Claims  int    `json:"claims"`
}

// HolderAuditResponse is the escrow reconciliation of one owner.
type HolderAuditResponse struct {
	Holder   string                 `json:"holder"`
	Holdings []HoldingAuditResponse `json:"holdings"`
}

// ToHolderAuditResponse converts an audit report to its response DTO
func ToHolderAuditResponse(a *domain.HolderAudit) HolderAuditResponse {
	res := HolderAuditResponse{Holder: a.Holder.String(), Holdings: make([]HoldingAuditResponse, len(a.Holdings))}
	for i, h := range a.Holdings {
		res.Holdings[i] = HoldingAuditResponse{
			Code:    h.Code,
			Balance: h.Balance.String(),
			Blocked: h.Blocked.String(),
			Held:    h.Held.String(),
			Claims:  h.Claims,
		}
	}
	return res
}
