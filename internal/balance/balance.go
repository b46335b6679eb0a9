// Package balance derives per-participant net positions from the full
// payment history. Compute is a pure function: no caching, no state.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/fairshare-dev/fairshare/internal/model"
	"github.com/fairshare-dev/fairshare/internal/money"
)

// Balance is one participant's net position. Positive means the group
// owes them money, negative means they owe the group.
type Balance struct {
	ParticipantID int             `json:"participantId"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
}

// Compute walks payments in insertion order. For each payment the payer
// is credited the full amount and every involved participant is debited
// an even share, with rounding applied after every accumulation step so
// fractional-cent drift never compounds.
//
// Involved ids that no longer correspond to a current participant are
// skipped: their share is absorbed while the payer's credit stands in
// full. That asymmetry can break strict zero-sum conservation across the
// remaining balances; it is long-standing observed behavior and is kept
// as is.
//
// Participants whose final position is within epsilon of zero are
// excluded from the result. The result is ordered by the participant
// collection's insertion order, so downstream consumers see a stable
// ordering regardless of payment permutation.
func Compute(participants []model.Participant, payments []model.Payment) []Balance {
	amounts := make(map[int]decimal.Decimal, len(participants))
	for _, p := range participants {
		amounts[p.ID] = decimal.Zero
	}

	for _, payment := range payments {
		n := len(payment.InvolvedIDs)
		if n == 0 {
			continue
		}
		share := money.Round2(payment.Amount.Div(decimal.NewFromInt(int64(n))))

		if current, ok := amounts[payment.PayerID]; ok {
			amounts[payment.PayerID] = money.Round2(current.Add(payment.Amount))
		}
		for _, id := range payment.InvolvedIDs {
			if current, ok := amounts[id]; ok {
				amounts[id] = money.Round2(current.Sub(share))
			}
		}
	}

	var balances []Balance
	for _, p := range participants {
		amount := amounts[p.ID]
		if money.IsZero(amount) {
			continue
		}
		balances = append(balances, Balance{ParticipantID: p.ID, Name: p.Name, Amount: amount})
	}
	return balances
}
