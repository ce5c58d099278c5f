package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expenseshare/expenseshare/internal/models"
	"github.com/expenseshare/expenseshare/internal/money"
	"github.com/expenseshare/expenseshare/internal/storage"
)

// CreateExpense persists an expense and its splits atomically.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, description, total_cents, payer_id, split_policy, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.Description,
		expense.TotalAmount.Cents(), expense.PayerID, string(expense.SplitPolicy), expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i := range expense.Splits {
		split := &expense.Splits[i]
		split.ExpenseID = expense.ID

		var pctCents sql.NullInt64
		if split.Percentage != nil {
			pctCents = sql.NullInt64{Int64: split.Percentage.Cents(), Valid: true}
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO expense_splits (expense_id, user_id, amount_cents, percentage_cents)
			 VALUES (?, ?, ?, ?)`,
			split.ExpenseID, split.UserID, split.Amount.Cents(), pctCents,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense with splits populated.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	var totalCents int64
	var policy string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, group_id, description, total_cents, payer_id, split_policy, created_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.GroupID, &expense.Description,
		&totalCents, &expense.PayerID, &policy, &expense.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	expense.TotalAmount = money.FromCents(totalCents)
	expense.SplitPolicy = models.SplitPolicy(policy)

	if err := s.loadSplits(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpensesByGroup retrieves a group's expenses, splits populated,
// newest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	return s.listExpensesWhere(ctx, "group_id = ?", groupID)
}

// ListExpensesByPayer retrieves all expenses paid by the user.
func (s *SQLiteStore) ListExpensesByPayer(ctx context.Context, payerID string) ([]*models.Expense, error) {
	return s.listExpensesWhere(ctx, "payer_id = ?", payerID)
}

func (s *SQLiteStore) listExpensesWhere(ctx context.Context, where string, arg any) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, description, total_cents, payer_id, split_policy, created_at
		 FROM expenses WHERE `+where+` ORDER BY created_at DESC, id`,
		arg,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var totalCents int64
		var policy string
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.Description,
			&totalCents, &expense.PayerID, &policy, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.TotalAmount = money.FromCents(totalCents)
		expense.SplitPolicy = models.SplitPolicy(policy)
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		if err := s.loadSplits(ctx, expense); err != nil {
			return nil, err
		}
	}
	return expenses, nil
}

func (s *SQLiteStore) loadSplits(ctx context.Context, expense *models.Expense) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, amount_cents, percentage_cents
		 FROM expense_splits WHERE expense_id = ? ORDER BY user_id`,
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		split := models.Split{ExpenseID: expense.ID}
		var amountCents int64
		var pctCents sql.NullInt64
		if err := rows.Scan(&split.UserID, &amountCents, &pctCents); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		split.Amount = money.FromCents(amountCents)
		if pctCents.Valid {
			pct := money.FromCents(pctCents.Int64)
			split.Percentage = &pct
		}
		expense.Splits = append(expense.Splits, split)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate splits: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense; its splits cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	return nil
}
