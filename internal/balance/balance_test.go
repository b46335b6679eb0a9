package balance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairshare-dev/fairshare/internal/model"
	"github.com/fairshare-dev/fairshare/internal/money"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var (
	alice = model.Participant{ID: 1, Name: "Alice"}
	bob   = model.Participant{ID: 2, Name: "Bob"}
	carol = model.Participant{ID: 3, Name: "Carol"}
)

func payment(id, payerID int, amount string, involved ...int) model.Payment {
	return model.Payment{
		ID:          id,
		PayerID:     payerID,
		Amount:      dec(amount),
		InvolvedIDs: involved,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func amounts(balances []Balance) map[int]decimal.Decimal {
	m := make(map[int]decimal.Decimal, len(balances))
	for _, b := range balances {
		m[b.ParticipantID] = b.Amount
	}
	return m
}

func TestCompute_EvenSplit(t *testing.T) {
	participants := []model.Participant{alice, bob, carol}
	payments := []model.Payment{payment(1, alice.ID, "30.00", 1, 2, 3)}

	balances := Compute(participants, payments)
	require.Len(t, balances, 3)

	// Ordered by participant insertion order.
	assert.Equal(t, 1, balances[0].ParticipantID)
	assert.Equal(t, "Alice", balances[0].Name)
	assert.True(t, balances[0].Amount.Equal(dec("20.00")), "Alice = %s", balances[0].Amount)
	assert.True(t, balances[1].Amount.Equal(dec("-10.00")), "Bob = %s", balances[1].Amount)
	assert.True(t, balances[2].Amount.Equal(dec("-10.00")), "Carol = %s", balances[2].Amount)
}

func TestCompute_SettledPositionsExcluded(t *testing.T) {
	participants := []model.Participant{alice, bob}
	payments := []model.Payment{
		payment(1, alice.ID, "10.00", 1, 2),
		payment(2, bob.ID, "10.00", 1, 2),
	}

	balances := Compute(participants, payments)
	assert.Empty(t, balances, "mutual payments settle to zero")
}

func TestCompute_RoundingLeakageGoesToPayer(t *testing.T) {
	participants := []model.Participant{alice, bob, carol}
	payments := []model.Payment{payment(1, alice.ID, "19.99", 1, 2, 3)}

	// share = round2(19.99/3) = 6.66; the residual cent stays with the
	// payer's net position.
	got := amounts(Compute(participants, payments))
	assert.True(t, got[alice.ID].Equal(dec("13.33")), "Alice = %s", got[alice.ID])
	assert.True(t, got[bob.ID].Equal(dec("-6.66")))
	assert.True(t, got[carol.ID].Equal(dec("-6.66")))
}

func TestCompute_Conservation(t *testing.T) {
	participants := []model.Participant{alice, bob, carol}
	payments := []model.Payment{
		payment(1, alice.ID, "30.00", 1, 2, 3),
		payment(2, bob.ID, "12.50", 2, 3),
		payment(3, carol.ID, "7.77", 1, 2, 3),
		payment(4, alice.ID, "0.05", 1, 2),
	}

	sum := decimal.Zero
	for _, b := range Compute(participants, payments) {
		sum = sum.Add(b.Amount)
	}
	assert.True(t, sum.Abs().LessThan(dec("0.01")), "net balances sum to %s", sum)
}

func TestCompute_PermutationInvariant(t *testing.T) {
	participants := []model.Participant{alice, bob, carol}
	payments := []model.Payment{
		payment(1, alice.ID, "19.99", 1, 2, 3),
		payment(2, bob.ID, "5.55", 1, 2),
		payment(3, carol.ID, "42.01", 2, 3),
	}
	want := Compute(participants, payments)

	permutations := [][]model.Payment{
		{payments[2], payments[0], payments[1]},
		{payments[1], payments[2], payments[0]},
		{payments[2], payments[1], payments[0]},
	}
	for _, perm := range permutations {
		got := Compute(participants, perm)
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].ParticipantID, got[i].ParticipantID)
			assert.True(t, want[i].Amount.Equal(got[i].Amount),
				"participant %d: %s vs %s", want[i].ParticipantID, want[i].Amount, got[i].Amount)
		}
	}
}

// A payment kept after some involved participants were deleted credits
// the payer in full while the deleted shares are absorbed. That can
// break zero-sum conservation across the remaining balances; the
// behavior is preserved deliberately.
func TestCompute_DeletedInvolvedParticipantSkipped(t *testing.T) {
	participants := []model.Participant{alice, bob} // Carol deleted
	payments := []model.Payment{payment(1, alice.ID, "30.00", 1, 2, 3)}

	got := amounts(Compute(participants, payments))
	assert.True(t, got[alice.ID].Equal(dec("20.00")), "payer credit stands in full")
	assert.True(t, got[bob.ID].Equal(dec("-10.00")))
	_, ok := got[carol.ID]
	assert.False(t, ok, "deleted participant has no balance")

	sum := got[alice.ID].Add(got[bob.ID])
	assert.True(t, sum.Equal(dec("10.00")), "conservation intentionally broken by %s", sum)
}

func TestCompute_DeletedPayerSkipped(t *testing.T) {
	participants := []model.Participant{bob, carol} // Alice deleted
	payments := []model.Payment{payment(1, alice.ID, "30.00", 2, 3)}

	got := amounts(Compute(participants, payments))
	assert.True(t, got[bob.ID].Equal(dec("-15.00")))
	assert.True(t, got[carol.ID].Equal(dec("-15.00")))
}

func TestCompute_EmptySplitIsNoOp(t *testing.T) {
	participants := []model.Participant{alice, bob}
	payments := []model.Payment{payment(1, alice.ID, "30.00")}

	assert.Empty(t, Compute(participants, payments))
}

func TestCompute_NearZeroFiltered(t *testing.T) {
	// Alice fronts 0.01 for Bob alone: Alice +0.01, Bob -0.01. Both are
	// exactly at epsilon and therefore kept.
	participants := []model.Participant{alice, bob}
	payments := []model.Payment{payment(1, alice.ID, "0.01", 2)}

	balances := Compute(participants, payments)
	require.Len(t, balances, 2)
	for _, b := range balances {
		assert.False(t, money.IsZero(b.Amount))
	}
}
