package domain

// ClaimKey identifies the outstanding hold a holder placed for a beneficiary
// in one symbol.
type ClaimKey struct {
	Holder      Name   `json:"holder"`
	Beneficiary Name   `json:"beneficiary"`
	Code        string `json:"code"`
}

// Claim is an escrow record pending settlement. Zero-quantity claims are never stored.
type Claim struct {
	ClaimKey
	Quantity Asset `json:"quantity"`
	Payer    Name  `json:"payer"`
}

// NewClaimKey builds the key for a hold of quantity from holder to beneficiary.
func NewClaimKey(holder, beneficiary Name, quantity Asset) ClaimKey {
	return ClaimKey{Holder: holder, Beneficiary: beneficiary, Code: quantity.Symbol.Code}
}
