package domain

// ClaimPage is one page of a holder's outstanding claims.
// NextPageToken is empty on the last page.
type ClaimPage struct {
	Claims        []Claim `json:"claims"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

// SweepReport counts the rows removed by an eager state wipe.
type SweepReport struct {
	Stats    int `json:"stats"`
	Symbols  int `json:"symbols"`
	Accounts int `json:"accounts"`
	Claims   int `json:"claims"`
}
