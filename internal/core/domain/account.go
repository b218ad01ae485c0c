package domain

// Account is the balance row of one owner for one symbol.
// Blocked is the part of Balance under hold; 0 <= Blocked <= Balance.Amount.
// Payer is the identity whose storage quota backs the row.
type Account struct {
	Owner   Name  `json:"owner"`
	Balance Asset `json:"balance"`
	Blocked int64 `json:"blocked"`
	Payer   Name  `json:"payer"`
}

// Code returns the storage key of the row within the owner's accounts.
func (a Account) Code() string {
	return a.Balance.Symbol.Code
}

// Spendable returns the balance minus the blocked amount.
func (a Account) Spendable() Asset {
	return NewAsset(a.Balance.Amount-a.Blocked, a.Balance.Symbol)
}
