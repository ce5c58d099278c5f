package models

import "github.com/expenseshare/expenseshare/internal/money"

// Settlement represents a payment between group members to clear debts.
//
// Invariants: PayerID != PayeeID and Amount > 0, enforced when the
// settlement is recorded.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// PayerID is the user who paid (debtor settling up).
	PayerID string

	// PayeeID is the user who received payment (creditor being paid).
	PayeeID string

	// Amount is the payment amount. Always positive.
	Amount money.Money

	// Note is an optional description for the settlement.
	Note string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
