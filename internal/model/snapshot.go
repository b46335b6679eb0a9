package model

// Snapshot is the full persisted state of a ledger. It is written whole
// after every mutation and read back verbatim on startup; there is no
// partial or delta persistence.
type Snapshot struct {
	Participants      []Participant `json:"participants"`
	Payments          []Payment     `json:"payments"`
	NextParticipantID int           `json:"nextParticipantId"`
	NextPaymentID     int           `json:"nextPaymentId"`
}

// EmptySnapshot returns the state of a brand-new ledger: no records,
// both id counters starting at 1.
func EmptySnapshot() Snapshot {
	return Snapshot{NextParticipantID: 1, NextPaymentID: 1}
}
