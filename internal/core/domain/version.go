package domain

// VersionState is the ledger-wide schema/version record.
type VersionState struct {
	Version string `json:"version"`
	Hash    string `json:"hash"`
}
