package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError rejects malformed input to a mutation before any state
// changes: empty names, non-positive amounts, empty splits, references to
// participants that do not exist.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError rejects a structurally valid request that would violate a
// ledger invariant. No partial mutation occurs. For balance conflicts,
// Amount and Direction describe the outstanding position.
type ConflictError struct {
	Reason    string
	Amount    decimal.Decimal // zero when not a balance conflict
	Direction string          // "should receive" or "owes"; empty otherwise
}

func (e *ConflictError) Error() string {
	if e.Direction != "" {
		return fmt.Sprintf("%s: %s %s", e.Reason, e.Direction, e.Amount.StringFixed(2))
	}
	return e.Reason
}
