package domain

// HoldingAudit reconciles one balance row of a holder with the claims it placed.
// Held is the sum of the holder's outstanding claims in the symbol and must
// equal Blocked.
type HoldingAudit struct {
	Code    string `json:"code"`
	Balance Asset  `json:"balance"`
	Blocked Asset  `json:"blocked"`
	Held    Asset  `json:"held"`
	Claims  int    `json:"claims"`
}

// HolderAudit is the escrow reconciliation report of one owner.
type HolderAudit struct {
	Holder   Name           `json:"holder"`
	Holdings []HoldingAudit `json:"holdings"`
}
