package domain

// Notification tells an interested identity that an action touched it.
// It is an observer signal, not a state change.
type Notification struct {
	Action    string `json:"action"`
	Recipient Name   `json:"recipient"`
	From      Name   `json:"from"`
	To        Name   `json:"to"`
	Quantity  Asset  `json:"quantity"`
}
