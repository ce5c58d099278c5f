package service

import (
	"context"
	"errors"
	"testing"

	"github.com/expenseshare/expenseshare/internal/calculator"
	"github.com/expenseshare/expenseshare/internal/models"
	"github.com/expenseshare/expenseshare/internal/money"
	"github.com/expenseshare/expenseshare/internal/storage"
)

func TestRecordExpensePersistsSplits(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	expense, err := f.expenses.RecordExpense(ctx, NewExpense{
		GroupID:     f.group.ID,
		Description: "Brunch",
		TotalAmount: money.MustParse("100.00"),
		PayerID:     f.alice.ID,
		Policy:      models.SplitPercentage,
		Percentages: map[string]money.Money{
			f.alice.ID: money.MustParse("33.33"),
			f.bob.ID:   money.MustParse("33.33"),
			f.carol.ID: money.MustParse("33.34"),
		},
	})
	if err != nil {
		t.Fatalf("RecordExpense failed: %v", err)
	}
	if expense.ID == "" || expense.CreatedAt == 0 {
		t.Error("expected ID and CreatedAt to be assigned")
	}

	stored, err := f.expenses.GetExpense(ctx, expense.ID)
	if err != nil {
		t.Fatalf("GetExpense failed: %v", err)
	}
	sum := money.Zero
	for _, split := range stored.Splits {
		sum = sum.Add(split.Amount)
		if split.Percentage == nil {
			t.Errorf("split for %s missing percentage", split.UserID)
		}
	}
	if sum.Cmp(stored.TotalAmount) != 0 {
		t.Errorf("persisted splits sum to %s, want %s", sum, stored.TotalAmount)
	}
}

func TestRecordExpenseValidation(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  NewExpense
	}{
		{
			name: "payer not in group",
			req: NewExpense{
				GroupID:     f.group.ID,
				TotalAmount: money.MustParse("10.00"),
				PayerID:     "stranger",
				Policy:      models.SplitEqual,
				EqualAmong:  []string{f.alice.ID},
			},
		},
		{
			name: "participant not in group",
			req: NewExpense{
				GroupID:     f.group.ID,
				TotalAmount: money.MustParse("10.00"),
				PayerID:     f.alice.ID,
				Policy:      models.SplitEqual,
				EqualAmong:  []string{f.alice.ID, "stranger"},
			},
		},
		{
			name: "non-positive amount",
			req: NewExpense{
				GroupID:     f.group.ID,
				TotalAmount: money.Zero,
				PayerID:     f.alice.ID,
				Policy:      models.SplitEqual,
				EqualAmong:  []string{f.alice.ID},
			},
		},
		{
			name: "exact amounts mismatch",
			req: NewExpense{
				GroupID:     f.group.ID,
				TotalAmount: money.MustParse("120.00"),
				PayerID:     f.alice.ID,
				Policy:      models.SplitExact,
				ExactAmounts: map[string]money.Money{
					f.alice.ID: money.MustParse("50.00"),
					f.bob.ID:   money.MustParse("40.00"),
					f.carol.ID: money.MustParse("29.00"),
				},
			},
		},
		{
			name: "unknown policy",
			req: NewExpense{
				GroupID:     f.group.ID,
				TotalAmount: money.MustParse("10.00"),
				PayerID:     f.alice.ID,
				Policy:      models.SplitPolicy("WEIRD"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.expenses.RecordExpense(ctx, tt.req)
			if !calculator.IsValidation(err) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestRecordExpenseUnknownGroup(t *testing.T) {
	f := newTestFixture(t)

	_, err := f.expenses.RecordExpense(context.Background(), NewExpense{
		GroupID:     "missing",
		TotalAmount: money.MustParse("10.00"),
		PayerID:     f.alice.ID,
		Policy:      models.SplitEqual,
		EqualAmong:  []string{f.alice.ID},
	})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRecordSettlementValidation(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  NewSettlement
	}{
		{
			name: "payer equals payee",
			req: NewSettlement{
				GroupID: f.group.ID,
				PayerID: f.alice.ID,
				PayeeID: f.alice.ID,
				Amount:  money.MustParse("5.00"),
			},
		},
		{
			name: "non-positive amount",
			req: NewSettlement{
				GroupID: f.group.ID,
				PayerID: f.alice.ID,
				PayeeID: f.bob.ID,
				Amount:  money.MustParse("-1.00"),
			},
		},
		{
			name: "payee not a member",
			req: NewSettlement{
				GroupID: f.group.ID,
				PayerID: f.alice.ID,
				PayeeID: "stranger",
				Amount:  money.MustParse("5.00"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.settlements.RecordSettlement(ctx, tt.req)
			if !calculator.IsValidation(err) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}
}
