package calculator

import "github.com/expenseshare/expenseshare/internal/money"

// Summary is one user's view of a set of simplified transfers: what they
// owe, what they are owed, and the itemized transfers on each side.
type Summary struct {
	UserID string

	// TotalOwed is the sum of Debts: money this user must pay out.
	TotalOwed money.Money

	// TotalOwing is the sum of Credits: money owed to this user.
	TotalOwing money.Money

	// NetBalance is TotalOwing - TotalOwed.
	NetBalance money.Money

	// Debts are transfers where this user is the payer.
	Debts []Transfer

	// Credits are transfers where this user is the recipient.
	Credits []Transfer
}

// IsSettled reports whether the user's net balance is exactly zero.
// No epsilon: money is integer cents, so equality is meaningful.
func (s Summary) IsSettled() bool {
	return s.NetBalance.IsZero()
}

// Summarize partitions transfers into the given user's debts and credits
// and totals each side. Transfer order is preserved, so summaries inherit
// the determinism of Simplify.
//
// For a multi-group view, pass the concatenation of each group's
// independently simplified transfers; groups are never merged into one
// ledger, so cross-group netting never happens.
func Summarize(userID string, transfers []Transfer) Summary {
	summary := Summary{UserID: userID}
	for _, transfer := range transfers {
		switch userID {
		case transfer.FromUserID:
			summary.Debts = append(summary.Debts, transfer)
			summary.TotalOwed = summary.TotalOwed.Add(transfer.Amount)
		case transfer.ToUserID:
			summary.Credits = append(summary.Credits, transfer)
			summary.TotalOwing = summary.TotalOwing.Add(transfer.Amount)
		}
	}
	summary.NetBalance = summary.TotalOwing.Sub(summary.TotalOwed)
	return summary
}

// BalanceBetween returns the net pairwise position of userA against userB
// within one set of simplified transfers: positive means userA owes userB,
// negative means userB owes userA.
func BalanceBetween(transfers []Transfer, userA, userB string) money.Money {
	net := money.Zero
	for _, transfer := range transfers {
		if transfer.FromUserID == userA && transfer.ToUserID == userB {
			net = net.Add(transfer.Amount)
		}
		if transfer.FromUserID == userB && transfer.ToUserID == userA {
			net = net.Sub(transfer.Amount)
		}
	}
	return net
}
