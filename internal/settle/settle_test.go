package settle

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairshare-dev/fairshare/internal/balance"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func bal(id int, name, amount string) balance.Balance {
	return balance.Balance{ParticipantID: id, Name: name, Amount: dec(amount)}
}

func TestPlan_TwoDebtorsOneCreditor(t *testing.T) {
	balances := []balance.Balance{
		bal(1, "Alice", "20.00"),
		bal(2, "Bob", "-10.00"),
		bal(3, "Carol", "-10.00"),
	}

	transfers := Plan(balances)
	require.Len(t, transfers, 2)

	assert.Equal(t, 2, transfers[0].FromID)
	assert.Equal(t, 1, transfers[0].ToID)
	assert.Equal(t, "Bob", transfers[0].FromName)
	assert.Equal(t, "Alice", transfers[0].ToName)
	assert.True(t, transfers[0].Amount.Equal(dec("10.00")))

	assert.Equal(t, 3, transfers[1].FromID)
	assert.Equal(t, 1, transfers[1].ToID)
	assert.True(t, transfers[1].Amount.Equal(dec("10.00")))
}

func TestPlan_NoBalances(t *testing.T) {
	assert.Empty(t, Plan(nil))
	assert.Empty(t, Plan([]balance.Balance{}))
}

func TestPlan_EpsilonPositionsIgnored(t *testing.T) {
	// +0.01 / -0.01 sit exactly at the epsilon boundary: kept as
	// balances but below the creditor/debtor thresholds.
	balances := []balance.Balance{
		bal(1, "Alice", "0.01"),
		bal(2, "Bob", "-0.01"),
	}
	assert.Empty(t, Plan(balances))
}

func TestPlan_SplitsCreditAcrossDebtors(t *testing.T) {
	balances := []balance.Balance{
		bal(1, "Alice", "-7.00"),
		bal(2, "Bob", "12.00"),
		bal(3, "Carol", "-5.00"),
	}

	transfers := Plan(balances)
	require.Len(t, transfers, 2)
	assert.True(t, transfers[0].Amount.Equal(dec("7.00")))
	assert.Equal(t, 1, transfers[0].FromID)
	assert.True(t, transfers[1].Amount.Equal(dec("5.00")))
	assert.Equal(t, 3, transfers[1].FromID)
	assert.Equal(t, 2, transfers[1].ToID)
}

func TestPlan_FlowConservation(t *testing.T) {
	balances := []balance.Balance{
		bal(1, "Alice", "33.34"),
		bal(2, "Bob", "-12.01"),
		bal(3, "Carol", "8.88"),
		bal(4, "Dave", "-19.99"),
		bal(5, "Eve", "-10.22"),
	}

	transfers := Plan(balances)

	paidBy := make(map[int]decimal.Decimal)
	receivedBy := make(map[int]decimal.Decimal)
	for _, tr := range transfers {
		assert.True(t, tr.Amount.IsPositive(), "every transfer is positive")
		assert.True(t, tr.Amount.Equal(tr.Amount.Round(2)), "every transfer is rounded to 2 places")
		paidBy[tr.FromID] = paidBy[tr.FromID].Add(tr.Amount)
		receivedBy[tr.ToID] = receivedBy[tr.ToID].Add(tr.Amount)
	}

	eps := dec("0.01")
	for _, b := range balances {
		if b.Amount.GreaterThan(eps) {
			diff := receivedBy[b.ParticipantID].Sub(b.Amount).Abs()
			assert.True(t, diff.LessThan(eps), "creditor %d: received %s, credit %s",
				b.ParticipantID, receivedBy[b.ParticipantID], b.Amount)
		}
		if b.Amount.LessThan(eps.Neg()) {
			diff := paidBy[b.ParticipantID].Sub(b.Amount.Neg()).Abs()
			assert.True(t, diff.LessThan(eps), "debtor %d: paid %s, debt %s",
				b.ParticipantID, paidBy[b.ParticipantID], b.Amount.Neg())
		}
	}
}

func TestPlan_StableOrder(t *testing.T) {
	balances := []balance.Balance{
		bal(1, "Alice", "-5.00"),
		bal(2, "Bob", "-20.00"),
		bal(3, "Carol", "25.00"),
	}

	// Debtors are matched in incoming order, not by magnitude.
	transfers := Plan(balances)
	require.Len(t, transfers, 2)
	assert.Equal(t, 1, transfers[0].FromID)
	assert.True(t, transfers[0].Amount.Equal(dec("5.00")))
	assert.Equal(t, 2, transfers[1].FromID)
	assert.True(t, transfers[1].Amount.Equal(dec("20.00")))
}
