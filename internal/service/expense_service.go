package service

import (
	"context"
	"log/slog"

	"github.com/expenseshare/expenseshare/internal/calculator"
	"github.com/expenseshare/expenseshare/internal/models"
	"github.com/expenseshare/expenseshare/internal/money"
	"github.com/expenseshare/expenseshare/internal/storage"
)

// NewExpense describes an expense to be recorded. Exactly one of
// EqualAmong, ExactAmounts, or Percentages must be set, matching Policy.
type NewExpense struct {
	GroupID     string
	Description string
	TotalAmount money.Money
	PayerID     string
	Policy      models.SplitPolicy

	// EqualAmong lists participant user IDs for EQUAL splits; shares are
	// assigned in list order, the last absorbing any rounding residual.
	EqualAmong []string

	// ExactAmounts maps userID to share for EXACT splits.
	ExactAmounts map[string]money.Money

	// Percentages maps userID to percentage (out of 100) for PERCENTAGE
	// splits.
	Percentages map[string]money.Money
}

// ExpenseService records and queries expenses.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage
// backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// RecordExpense validates the request, allocates splits under the chosen
// policy, and persists the expense with its splits atomically. The
// returned expense always satisfies sum(splits) == total.
func (s *ExpenseService) RecordExpense(ctx context.Context, req NewExpense) (*models.Expense, error) {
	group, err := s.store.GetGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(req.PayerID) {
		return nil, &calculator.ValidationError{Reason: "payer must be a member of the group"}
	}
	if !req.TotalAmount.IsPositive() {
		return nil, &calculator.ValidationError{Reason: "expense amount must be positive"}
	}

	allocations, err := AllocateSplits(req.TotalAmount, req.Policy, req.EqualAmong, req.ExactAmounts, req.Percentages)
	if err != nil {
		return nil, err
	}
	for _, allocation := range allocations {
		if !group.HasMember(allocation.UserID) {
			return nil, &calculator.ValidationError{Reason: "participant " + allocation.UserID + " is not a member of the group"}
		}
	}

	expense := &models.Expense{
		GroupID:     req.GroupID,
		Description: req.Description,
		TotalAmount: req.TotalAmount,
		PayerID:     req.PayerID,
		SplitPolicy: req.Policy,
		Splits:      toSplits(allocations),
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("RecordExpense failed", "group_id", req.GroupID, "error", err)
		return nil, err
	}

	slog.Info("Expense recorded",
		"expense_id", expense.ID,
		"group_id", expense.GroupID,
		"total", expense.TotalAmount,
		"policy", expense.SplitPolicy,
		"splits", len(expense.Splits),
	)
	return expense, nil
}

// AllocateSplits runs the split allocator for the given policy without
// persisting anything. Used both by RecordExpense and as a dry-run for
// clients previewing a split.
func AllocateSplits(
	total money.Money,
	policy models.SplitPolicy,
	equalAmong []string,
	exactAmounts map[string]money.Money,
	percentages map[string]money.Money,
) ([]calculator.Allocation, error) {
	switch policy {
	case models.SplitEqual:
		return calculator.AllocateEqual(total, equalAmong)
	case models.SplitExact:
		return calculator.AllocateExact(total, exactAmounts)
	case models.SplitPercentage:
		return calculator.AllocatePercentage(total, percentages)
	default:
		return nil, &calculator.ValidationError{Reason: "unknown split policy: " + string(policy)}
	}
}

// GetExpense retrieves an expense with splits populated.
func (s *ExpenseService) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	return s.store.GetExpense(ctx, expenseID)
}

// ListGroupExpenses retrieves all expenses for a group, splits populated.
func (s *ExpenseService) ListGroupExpenses(ctx context.Context, groupID string) ([]*models.Expense, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListExpensesByGroup(ctx, groupID)
}

// ListExpensesPaidBy retrieves all expenses paid by the user.
func (s *ExpenseService) ListExpensesPaidBy(ctx context.Context, userID string) ([]*models.Expense, error) {
	return s.store.ListExpensesByPayer(ctx, userID)
}

// DeleteExpense removes an expense and its splits.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expenseID, "error", err)
		return err
	}
	slog.Info("Expense deleted", "expense_id", expenseID)
	return nil
}

func toSplits(allocations []calculator.Allocation) []models.Split {
	splits := make([]models.Split, len(allocations))
	for i, allocation := range allocations {
		splits[i] = models.Split{
			UserID:     allocation.UserID,
			Amount:     allocation.Amount,
			Percentage: allocation.Percentage,
		}
	}
	return splits
}
