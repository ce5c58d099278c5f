package calculator

import (
	"sort"

	"github.com/expenseshare/expenseshare/internal/money"
)

// Transfer is a recommended payment from one user to another. Amount is
// always at least one cent.
type Transfer struct {
	FromUserID string
	ToUserID   string
	Amount     money.Money
}

// minTransfer is the smallest amount worth emitting: one cent, the minimum
// representable unit. Residue below it is dropped, never transferred.
var minTransfer = money.FromCents(1)

// Simplify reduces a net-balance map to a list of pairwise transfers that
// would zero every balance, using greedy largest-pair matching: the biggest
// debtor pays the biggest creditor, repeatedly.
//
// The output is a pure, deterministic function of the input. Creditors and
// debtors are each sorted by amount descending, ties broken by ascending
// user ID, so identical inputs always produce identical transfer lists.
//
// Greedy matching is not guaranteed to produce the theoretically minimal
// transfer count for multi-party cycles; it is a known quality limitation,
// accepted for its determinism and O(n log n) cost.
func Simplify(balances NetBalance) []Transfer {
	type position struct {
		userID    string
		remaining money.Money
	}

	var creditors, debtors []position
	for userID, balance := range balances {
		switch {
		case balance.IsPositive():
			creditors = append(creditors, position{userID: userID, remaining: balance})
		case balance.IsNegative():
			debtors = append(debtors, position{userID: userID, remaining: balance.Neg()})
		}
	}

	byAmountDesc := func(entries []position) func(a, b int) bool {
		return func(a, b int) bool {
			if c := entries[a].remaining.Cmp(entries[b].remaining); c != 0 {
				return c > 0
			}
			return entries[a].userID < entries[b].userID
		}
	}
	sort.Slice(creditors, byAmountDesc(creditors))
	sort.Slice(debtors, byAmountDesc(debtors))

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		settle := debtor.remaining.Min(creditor.remaining)
		if settle.Cmp(minTransfer) >= 0 {
			transfers = append(transfers, Transfer{
				FromUserID: debtor.userID,
				ToUserID:   creditor.userID,
				Amount:     settle,
			})
		}

		debtor.remaining = debtor.remaining.Sub(settle)
		creditor.remaining = creditor.remaining.Sub(settle)

		if debtor.remaining.Cmp(minTransfer) < 0 {
			i++
		}
		if creditor.remaining.Cmp(minTransfer) < 0 {
			j++
		}
	}

	return transfers
}
