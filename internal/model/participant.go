package model

// Participant is a member of the expense-sharing group.
// IDs are assigned monotonically by the ledger and never reused.
type Participant struct {
	ID   int    `json:"id"`
	Name string `json:"name"` // trimmed, non-empty
}
