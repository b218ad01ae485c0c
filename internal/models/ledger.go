package models

// TokenStats is the persisted issuance record of one symbol.
type TokenStats struct {
	SymbolCode  string `db:"symbol_code" json:"symbolCode"` // Primary Key (e.g., "SYS")
	Precision   uint8  `db:"precision" json:"precision"`
	Supply      int64  `db:"supply" json:"supply"`
	MaxSupply   int64  `db:"max_supply" json:"maxSupply"`
	Issuer      string `db:"issuer" json:"issuer"`
	InfoName    string `db:"info_name" json:"infoName"`
	InfoURL     string `db:"info_url" json:"infoURL"`
	InfoLogoURL string `db:"info_logo_url" json:"infoLogoURL"`
}

// TokenSymbol is one entry of the symbol registry.
type TokenSymbol struct {
	SymbolCode string `db:"symbol_code" json:"symbolCode"` // Primary Key
	Precision  uint8  `db:"precision" json:"precision"`
}

// TokenAccount is the persisted balance row of (owner, symbol).
type TokenAccount struct {
	Owner      string `db:"owner" json:"owner"`
	SymbolCode string `db:"symbol_code" json:"symbolCode"`
	Precision  uint8  `db:"precision" json:"precision"`
	Balance    int64  `db:"balance" json:"balance"`
	Blocked    int64  `db:"blocked" json:"blocked"`
	Payer      string `db:"payer" json:"payer"`
}

// TokenClaim is the persisted hold of (holder, beneficiary, symbol).
type TokenClaim struct {
	Holder      string `db:"holder" json:"holder"`
	Beneficiary string `db:"beneficiary" json:"beneficiary"`
	SymbolCode  string `db:"symbol_code" json:"symbolCode"`
	Precision   uint8  `db:"precision" json:"precision"`
	Quantity    int64  `db:"quantity" json:"quantity"`
	Payer       string `db:"payer" json:"payer"`
}

// LedgerState is the persisted version singleton.
type LedgerState struct {
	Version string `db:"version" json:"version"`
	Hash    string `db:"hash" json:"hash"`
}
