package domain

// StoreInfo is free-form descriptive metadata for a token.
type StoreInfo struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	LogoURL string `json:"logoURL"`
}

// CurrencyStats is the issuance record of one symbol.
// Supply and MaxSupply always share the same symbol; MaxSupply never changes.
type CurrencyStats struct {
	Supply    Asset     `json:"supply"`
	MaxSupply Asset     `json:"maxSupply"`
	Issuer    Name      `json:"issuer"`
	Info      StoreInfo `json:"info"`
}

// Symbol returns the symbol the stats are kept for.
func (s CurrencyStats) Symbol() Symbol {
	return s.MaxSupply.Symbol
}

// Available returns how much can still be issued.
func (s CurrencyStats) Available() int64 {
	return s.MaxSupply.Amount - s.Supply.Amount
}

// SymbolEntry marks the existence of a symbol in the registry.
type SymbolEntry struct {
	Symbol Symbol `json:"symbol"`
}
