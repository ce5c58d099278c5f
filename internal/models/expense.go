package models

import "github.com/expenseshare/expenseshare/internal/money"

// SplitPolicy is the rule used to divide an expense's total among its
// participants.
type SplitPolicy string

const (
	// SplitEqual divides the total evenly; the last participant absorbs
	// any rounding residual.
	SplitEqual SplitPolicy = "EQUAL"

	// SplitExact uses caller-provided per-user amounts that must sum to
	// the total exactly.
	SplitExact SplitPolicy = "EXACT"

	// SplitPercentage divides the total by caller-provided percentages
	// that must sum to exactly 100.
	SplitPercentage SplitPolicy = "PERCENTAGE"
)

// Valid reports whether p is one of the known policies.
func (p SplitPolicy) Valid() bool {
	switch p {
	case SplitEqual, SplitExact, SplitPercentage:
		return true
	}
	return false
}

// Expense represents one shared expense paid by a single member and split
// among participants.
//
// Invariant: the amounts of Splits sum to exactly TotalAmount for every
// persisted expense. The split allocator guarantees this at creation time.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is the human-readable label (e.g., "Dinner", "Gas").
	Description string

	// TotalAmount is the full amount the payer paid.
	TotalAmount money.Money

	// PayerID is the user who paid the expense.
	PayerID string

	// SplitPolicy is how the total was divided among participants.
	SplitPolicy SplitPolicy

	// Splits are the per-participant shares. Always populated when the
	// expense is loaded for balance computation.
	Splits []Split

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Split is one participant's share of an expense.
type Split struct {
	// ExpenseID is the expense this split belongs to.
	ExpenseID string

	// UserID is the participant who owes this share.
	UserID string

	// Amount is the authoritative share. It is exact; Percentage is
	// informational only.
	Amount money.Money

	// Percentage is the percentage used for PERCENTAGE-policy splits
	// (out of 100, two decimal places). Nil for other policies.
	Percentage *money.Money
}
