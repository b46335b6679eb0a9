// Package report derives read-only expense summaries and free-text
// search results from the payment history.
package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fairshare-dev/fairshare/internal/model"
	"github.com/fairshare-dev/fairshare/internal/money"
)

// Summary aggregates payment totals. ByPayer is keyed by the payer name
// snapshot rather than id, so deleted participants still appear in
// historical reports.
type Summary struct {
	ByCategory map[model.Category]decimal.Decimal `json:"byCategory"`
	ByPayer    map[string]decimal.Decimal         `json:"byPayer"`
	GrandTotal decimal.Decimal                    `json:"grandTotal"`
}

// Summarize accumulates category, payer, and grand totals, rounding
// after every step.
func Summarize(payments []model.Payment) Summary {
	s := Summary{
		ByCategory: make(map[model.Category]decimal.Decimal),
		ByPayer:    make(map[string]decimal.Decimal),
		GrandTotal: decimal.Zero,
	}
	for _, p := range payments {
		s.ByCategory[p.Category] = money.Round2(s.ByCategory[p.Category].Add(p.Amount))
		s.ByPayer[p.PayerName] = money.Round2(s.ByPayer[p.PayerName].Add(p.Amount))
		s.GrandTotal = money.Round2(s.GrandTotal.Add(p.Amount))
	}
	return s
}

// Search returns the payments whose purpose or category contains term,
// case-insensitively. A blank or whitespace-only term matches everything.
func Search(payments []model.Payment, term string) []model.Payment {
	term = strings.TrimSpace(term)
	if term == "" {
		return append([]model.Payment(nil), payments...)
	}
	term = strings.ToLower(term)

	var matched []model.Payment
	for _, p := range payments {
		if strings.Contains(strings.ToLower(p.Purpose), term) ||
			strings.Contains(strings.ToLower(string(p.Category)), term) {
			matched = append(matched, p)
		}
	}
	return matched
}
