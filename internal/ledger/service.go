// Package ledger owns the authoritative participant and payment
// collections and every rule for mutating them. Balance and settlement
// math live in their own packages and are recomputed from this state on
// demand.
package ledger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fairshare-dev/fairshare/internal/balance"
	"github.com/fairshare-dev/fairshare/internal/model"
	"github.com/fairshare-dev/fairshare/internal/money"
)

// Service is the in-memory ledger. All mutations are serialized by a
// single mutex so the check-then-write rules (balance check before
// participant removal, referential check before payment removal) hold
// under concurrent callers.
type Service struct {
	mu                sync.Mutex
	participants      []model.Participant
	payments          []model.Payment
	nextParticipantID int
	nextPaymentID     int

	now func() time.Time
}

// NewService creates an empty ledger.
func NewService() *Service {
	return FromSnapshot(model.EmptySnapshot())
}

// FromSnapshot restores a ledger from persisted state.
func FromSnapshot(snap model.Snapshot) *Service {
	s := &Service{
		participants:      append([]model.Participant(nil), snap.Participants...),
		payments:          append([]model.Payment(nil), snap.Payments...),
		nextParticipantID: snap.NextParticipantID,
		nextPaymentID:     snap.NextPaymentID,
		now:               time.Now,
	}
	if s.nextParticipantID < 1 {
		s.nextParticipantID = 1
	}
	if s.nextPaymentID < 1 {
		s.nextPaymentID = 1
	}
	return s
}

// Snapshot returns a copy of the full ledger state for persistence.
func (s *Service) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.Snapshot{
		Participants:      append([]model.Participant(nil), s.participants...),
		Payments:          append([]model.Payment(nil), s.payments...),
		NextParticipantID: s.nextParticipantID,
		NextPaymentID:     s.nextPaymentID,
	}
}

// Participants returns a copy of the current participant collection in
// insertion order.
func (s *Service) Participants() []model.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Participant(nil), s.participants...)
}

// Payments returns a copy of the payment collection in insertion order.
func (s *Service) Payments() []model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Payment(nil), s.payments...)
}

// Participant looks up a current participant by id.
func (s *Service) Participant(id int) (model.Participant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findParticipant(id)
}

// Balances computes the current net position of every participant from a
// consistent view of the ledger. See the balance package for the rules.
func (s *Service) Balances() []balance.Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return balance.Compute(s.participants, s.payments)
}

// AddParticipant trims name, assigns the next id, and appends.
func (s *Service) AddParticipant(name string) (model.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Participant{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Participant{ID: s.nextParticipantID, Name: name}
	s.participants = append(s.participants, p)
	s.nextParticipantID++
	return p, nil
}

// RemoveParticipant deletes a participant, but only if their current net
// balance is settled (within epsilon of zero). Payments referencing the
// removed id are kept; payment removal enforces its own referential
// check. Removing an unknown id is a no-op.
func (s *Service) RemoveParticipant(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findParticipant(id); !ok {
		return false, nil
	}

	for _, b := range balance.Compute(s.participants, s.payments) {
		if b.ParticipantID != id {
			continue
		}
		direction := "owes"
		if b.Amount.IsPositive() {
			direction = "should receive"
		}
		return false, &ConflictError{
			Reason:    fmt.Sprintf("participant %d has an outstanding balance", id),
			Amount:    b.Amount.Abs(),
			Direction: direction,
		}
	}

	kept := s.participants[:0]
	for _, p := range s.participants {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.participants = kept
	return true, nil
}

// AddPaymentParams holds parameters for recording a shared expense.
type AddPaymentParams struct {
	PayerID     int
	Amount      decimal.Decimal
	InvolvedIDs []int
	Purpose     string
	Category    model.Category
}

// AddPayment validates, snapshots payer and involved names at this
// moment, rounds the amount, assigns the next id and today's date, and
// appends. An empty category defaults to General.
func (s *Service) AddPayment(params AddPaymentParams) (model.Payment, error) {
	if !params.Amount.IsPositive() {
		return model.Payment{}, &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if len(params.InvolvedIDs) == 0 {
		return model.Payment{}, &ValidationError{Field: "involved", Reason: "at least one participant must share the expense"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payer, ok := s.findParticipant(params.PayerID)
	if !ok {
		return model.Payment{}, &ValidationError{Field: "payer", Reason: fmt.Sprintf("participant %d does not exist", params.PayerID)}
	}

	involvedNames := make([]string, len(params.InvolvedIDs))
	for i, id := range params.InvolvedIDs {
		p, ok := s.findParticipant(id)
		if !ok {
			return model.Payment{}, &ValidationError{Field: "involved", Reason: fmt.Sprintf("participant %d does not exist", id)}
		}
		involvedNames[i] = p.Name
	}

	category := params.Category
	if category == "" {
		category = model.CategoryGeneral
	}

	payment := model.Payment{
		ID:            s.nextPaymentID,
		PayerID:       payer.ID,
		PayerName:     payer.Name,
		Amount:        money.Round2(params.Amount),
		InvolvedIDs:   append([]int(nil), params.InvolvedIDs...),
		InvolvedNames: involvedNames,
		Purpose:       params.Purpose,
		Category:      category,
		Date:          s.now(),
	}
	s.payments = append(s.payments, payment)
	s.nextPaymentID++
	return payment, nil
}

// RemovePayment deletes a payment, but only while the payer and every
// involved participant still exist; once any of them is deleted the
// payment becomes immutable history. Removing an unknown id is a no-op.
func (s *Service) RemovePayment(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.payments {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	payment := s.payments[idx]
	if _, ok := s.findParticipant(payment.PayerID); !ok {
		return false, &ConflictError{
			Reason: fmt.Sprintf("cannot delete payment %d: payer has been deleted", id),
		}
	}
	for _, involved := range payment.InvolvedIDs {
		if _, ok := s.findParticipant(involved); !ok {
			return false, &ConflictError{
				Reason: fmt.Sprintf("cannot delete payment %d: involved participant %d has been deleted", id, involved),
			}
		}
	}

	s.payments = append(s.payments[:idx], s.payments[idx+1:]...)
	return true, nil
}

// Clear wipes all records and resets both id counters.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants = nil
	s.payments = nil
	s.nextParticipantID = 1
	s.nextPaymentID = 1
}

// findParticipant must be called with the mutex held.
func (s *Service) findParticipant(id int) (model.Participant, bool) {
	for _, p := range s.participants {
		if p.ID == id {
			return p, true
		}
	}
	return model.Participant{}, false
}
