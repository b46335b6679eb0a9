// Package settle turns net balances into a plan of pairwise transfers.
package settle

import (
	"github.com/shopspring/decimal"

	"github.com/fairshare-dev/fairshare/internal/balance"
	"github.com/fairshare-dev/fairshare/internal/money"
)

// Transfer is one directed payment in a settlement plan.
type Transfer struct {
	FromID   int             `json:"fromId"`
	FromName string          `json:"fromName"`
	ToID     int             `json:"toId"`
	ToName   string          `json:"toName"`
	Amount   decimal.Decimal `json:"amount"`
}

// Plan matches debtors against creditors with a greedy two-pointer walk.
// Both lists keep the incoming balance order rather than sorting by
// magnitude; for small groups this stays within min(#debtors,#creditors)
// transfers of optimal and keeps the plan stable across runs.
//
// Flow conservation holds by construction: the transfers emitted from a
// given debtor sum to that debtor's original debt, and likewise per
// creditor.
func Plan(balances []balance.Balance) []Transfer {
	type party struct {
		id     int
		name   string
		amount decimal.Decimal
	}

	var debtors, creditors []party
	for _, b := range balances {
		switch {
		case b.Amount.GreaterThan(money.Epsilon):
			creditors = append(creditors, party{id: b.ParticipantID, name: b.Name, amount: b.Amount})
		case b.Amount.LessThan(money.Epsilon.Neg()):
			debtors = append(debtors, party{id: b.ParticipantID, name: b.Name, amount: b.Amount.Neg()})
		}
	}

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := decimal.Min(debtors[i].amount, creditors[j].amount)

		transfers = append(transfers, Transfer{
			FromID:   debtors[i].id,
			FromName: debtors[i].name,
			ToID:     creditors[j].id,
			ToName:   creditors[j].name,
			Amount:   money.Round2(amount),
		})

		debtors[i].amount = debtors[i].amount.Sub(amount)
		creditors[j].amount = creditors[j].amount.Sub(amount)

		if debtors[i].amount.LessThan(money.Epsilon) {
			i++
		}
		if creditors[j].amount.LessThan(money.Epsilon) {
			j++
		}
	}
	return transfers
}
