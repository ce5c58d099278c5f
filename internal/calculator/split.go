// Package calculator implements the monetary ledger core: split allocation,
// net-balance aggregation, greedy debt simplification, and balance
// summaries. It is purely computational and stateless; every function is a
// deterministic function of its inputs and safe to call concurrently.
package calculator

import (
	"sort"

	"github.com/expenseshare/expenseshare/internal/money"
)

// Allocation is one participant's computed share of an expense total.
// The slice returned by the allocators always sums to the total exactly.
type Allocation struct {
	UserID string

	// Amount is the authoritative share.
	Amount money.Money

	// Percentage is set only by AllocatePercentage: the percentage the
	// caller requested for this user, not back-computed from Amount.
	Percentage *money.Money
}

// AllocateEqual divides total evenly among userIDs, in list order. Each
// share is the half-up rounded quotient; the last participant receives
// total minus the sum of the preceding shares, so any rounding residual
// (at most len(userIDs)-1 cents) lands on the last participant and the
// allocations sum to total exactly.
func AllocateEqual(total money.Money, userIDs []string) ([]Allocation, error) {
	if len(userIDs) == 0 {
		return nil, validationErrorf("at least one participant required for split")
	}
	seen := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		if seen[id] {
			return nil, validationErrorf("duplicate participant %q", id)
		}
		seen[id] = true
	}

	share := total.DivShare(int64(len(userIDs)))
	allocations := make([]Allocation, len(userIDs))
	running := money.Zero
	for i, id := range userIDs {
		amount := share
		if i == len(userIDs)-1 {
			amount = total.Sub(running)
		}
		allocations[i] = Allocation{UserID: id, Amount: amount}
		running = running.Add(amount)
	}
	return allocations, nil
}

// AllocateExact turns caller-provided per-user amounts into allocations.
// The amounts must sum to total exactly; there is no tolerance. Results
// are ordered by ascending user ID so output is deterministic.
func AllocateExact(total money.Money, amounts map[string]money.Money) ([]Allocation, error) {
	if len(amounts) == 0 {
		return nil, validationErrorf("exact amounts required for EXACT split")
	}

	sum := money.Zero
	for _, amount := range amounts {
		sum = sum.Add(amount)
	}
	if sum.Cmp(total) != 0 {
		return nil, validationErrorf("exact amounts total (%s) must equal expense amount (%s)", sum, total)
	}

	allocations := make([]Allocation, 0, len(amounts))
	for _, id := range sortedKeys(amounts) {
		allocations = append(allocations, Allocation{UserID: id, Amount: amounts[id]})
	}
	return allocations, nil
}

// AllocatePercentage divides total by caller-provided percentages (values
// out of 100, up to two decimal places), which must sum to exactly 100.
// Users are processed in ascending user ID order; each share is the
// half-up rounded product except the last user, who receives total minus
// the running sum and thereby absorbs all rounding residue. The stated
// percentage is recorded on every allocation, including the last.
func AllocatePercentage(total money.Money, percentages map[string]money.Money) ([]Allocation, error) {
	if len(percentages) == 0 {
		return nil, validationErrorf("percentages required for PERCENTAGE split")
	}

	hundred := money.FromCents(100 * 100)
	sum := money.Zero
	for _, pct := range percentages {
		sum = sum.Add(pct)
	}
	if sum.Cmp(hundred) != 0 {
		return nil, validationErrorf("percentages must sum to 100, got: %s", sum)
	}

	userIDs := sortedKeys(percentages)
	allocations := make([]Allocation, len(userIDs))
	running := money.Zero
	for i, id := range userIDs {
		pct := percentages[id]
		var amount money.Money
		if i == len(userIDs)-1 {
			amount = total.Sub(running)
		} else {
			amount = total.MulPercent(pct)
			running = running.Add(amount)
		}
		allocations[i] = Allocation{UserID: id, Amount: amount, Percentage: &pct}
	}
	return allocations, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
