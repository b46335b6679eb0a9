package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a payment. The vocabulary is open to extension;
// these are the values the UI offers by default.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryStay          Category = "Stay"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategorySettlement    Category = "Settlement"
	CategoryTravel        Category = "Travel"
	CategoryGeneral       Category = "General"
)

// Categories lists the default vocabulary in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryStay,
		CategoryEntertainment,
		CategoryShopping,
		CategorySettlement,
		CategoryTravel,
		CategoryGeneral,
	}
}

// DateFormat is the calendar-date layout used everywhere a payment
// date is rendered.
const DateFormat = "2006-01-02"

// Payment is one shared expense: the payer fronted Amount, split evenly
// among InvolvedIDs. PayerName and InvolvedNames are snapshots taken at
// creation time so the record stays readable after a referenced
// participant is deleted.
type Payment struct {
	ID            int             `json:"id"`
	PayerID       int             `json:"payerId"`
	PayerName     string          `json:"payerName"`
	Amount        decimal.Decimal `json:"amount"` // > 0, rounded to 2 places
	InvolvedIDs   []int           `json:"involvedIds"`
	InvolvedNames []string        `json:"involvedNames"` // parallel to InvolvedIDs
	Purpose       string          `json:"purpose"`
	Category      Category        `json:"category"`
	Date          time.Time       `json:"date"`
}

// Involves reports whether the given participant id is part of the split.
func (p Payment) Involves(id int) bool {
	for _, involved := range p.InvolvedIDs {
		if involved == id {
			return true
		}
	}
	return false
}
