package dto

import (
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
)

// CreateTokenRequest defines the data needed to register a new symbol.
type CreateTokenRequest struct {
	Issuer        string `json:"issuer" binding:"required,ledgername"`
	MaximumSupply string `json:"maximumSupply" binding:"required,asset" example:"1000000.0000 PTS"`
	Name          string `json:"name" binding:"max=128"`
	URL           string `json:"url" binding:"omitempty,url"`
	LogoURL       string `json:"logoURL" binding:"omitempty,url"`
}

// IssueRequest defines the data needed to mint tokens to an account.
type IssueRequest struct {
	To       string `json:"to" binding:"required,ledgername"`
	Quantity string `json:"quantity" binding:"required,asset" example:"10.0000 PTS"`
	Memo     string `json:"memo"`
}

// BurnRequest defines the data needed to destroy tokens of an account.
type BurnRequest struct {
	Owner string `json:"owner" binding:"required,ledgername"`
	Value string `json:"value" binding:"required,asset" example:"5.0000 PTS"`
}

// StatsResponse defines the data returned for a symbol's stats.
type StatsResponse struct {
	Symbol    string    `json:"symbol" example:"4,PTS"`
	Supply    string    `json:"supply" example:"10.0000 PTS"`
	MaxSupply string    `json:"maxSupply" example:"1000000.0000 PTS"`
	Issuer    string    `json:"issuer"`
	Info      InfoBlock `json:"info"`
}

// InfoBlock is the descriptive metadata of a token.
type InfoBlock struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	LogoURL string `json:"logoURL"`
}

// AssetResponse is a quantity in both its canonical and decimal forms.
type AssetResponse struct {
	Quantity string `json:"quantity" example:"10.0000 PTS"`
	Amount   string `json:"amount" example:"10.0000"`
	Symbol   string `json:"symbol" example:"4,PTS"`
}

// SymbolResponse is one entry of the symbol registry.
type SymbolResponse struct {
	Code      string `json:"code"`
	Precision uint8  `json:"precision"`
}

// BalanceResponse is the spendable balance of one owner in one symbol.
type BalanceResponse struct {
	Owner string `json:"owner"`
	AssetResponse
}

// AccountResponse is the raw balance row of one owner in one symbol.
type AccountResponse struct {
	Owner     string `json:"owner"`
	Balance   string `json:"balance"`
	Blocked   string `json:"blocked"`
	Spendable string `json:"spendable"`
	Payer     string `json:"payer"`
}

// ToStatsResponse converts domain stats to a StatsResponse DTO
func ToStatsResponse(s *domain.CurrencyStats) StatsResponse {
	return StatsResponse{
		Symbol:    s.Symbol().String(),
		Supply:    s.Supply.String(),
		MaxSupply: s.MaxSupply.String(),
		Issuer:    s.Issuer.String(),
		Info: InfoBlock{
			Name:    s.Info.Name,
			URL:     s.Info.URL,
			LogoURL: s.Info.LogoURL,
		},
	}
}

// ToAssetResponse converts an asset to its response DTO
func ToAssetResponse(a domain.Asset) AssetResponse {
	return AssetResponse{
		Quantity: a.String(),
		Amount:   a.Decimal().StringFixed(int32(a.Symbol.Precision)),
		Symbol:   a.Symbol.String(),
	}
}

// ToListSymbolResponse converts registry entries to response DTOs
func ToListSymbolResponse(entries []domain.SymbolEntry) []SymbolResponse {
	res := make([]SymbolResponse, len(entries))
	for i, e := range entries {
		res[i] = SymbolResponse{Code: e.Symbol.Code, Precision: e.Symbol.Precision}
	}
	return res
}

// ToAccountResponse converts a balance row to its response DTO
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		Owner:     a.Owner.String(),
		Balance:   a.Balance.String(),
		Blocked:   domain.NewAsset(a.Blocked, a.Balance.Symbol).String(),
		Spendable: a.Spendable().String(),
		Payer:     a.Payer.String(),
	}
}
