// Package service implements the application services that sit between the
// HTTP layer and the calculator core. Services fetch immutable snapshots
// from storage, hand them to the calculator, and decorate the results with
// display data. They hold no state of their own; every query re-derives
// balances from the current snapshot.
package service

import (
	"context"
	"log/slog"

	"github.com/expenseshare/expenseshare/internal/calculator"
	"github.com/expenseshare/expenseshare/internal/models"
	"github.com/expenseshare/expenseshare/internal/money"
	"github.com/expenseshare/expenseshare/internal/storage"
)

// unknownUserName is shown when a referenced user no longer resolves.
const unknownUserName = "Unknown"

// Balance is one simplified debt with display names resolved.
type Balance struct {
	FromUserID   string      `json:"fromUserId"`
	FromUserName string      `json:"fromUserName"`
	ToUserID     string      `json:"toUserId"`
	ToUserName   string      `json:"toUserName"`
	Amount       money.Money `json:"amount"`
}

// Summary is one user's balance view: totals plus itemized debts and
// credits. For the overall view the itemized lists span groups but were
// simplified per group; debts in one group never net against credits in
// another.
type Summary struct {
	UserID     string      `json:"userId"`
	UserName   string      `json:"userName"`
	TotalOwed  money.Money `json:"totalOwed"`
	TotalOwing money.Money `json:"totalOwing"`
	NetBalance money.Money `json:"netBalance"`
	IsSettled  bool        `json:"isSettled"`
	Debts      []Balance   `json:"debts"`
	Credits    []Balance   `json:"credits"`
}

// BalanceService computes group balances and per-user summaries.
type BalanceService struct {
	store storage.Store
}

// NewBalanceService creates a new BalanceService with the given storage
// backend.
func NewBalanceService(store storage.Store) *BalanceService {
	return &BalanceService{store: store}
}

// ComputeGroupBalances returns the simplified debts for a group: the
// minimal-ish set of transfers that would settle everyone. The result is
// recomputed from the group's expenses and settlements on every call.
func (s *BalanceService) ComputeGroupBalances(ctx context.Context, groupID string) ([]Balance, error) {
	transfers, err := s.groupTransfers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return s.resolveNames(ctx, transfers), nil
}

// UserGroupSummary returns one user's balance summary within a group.
func (s *BalanceService) UserGroupSummary(ctx context.Context, userID, groupID string) (*Summary, error) {
	transfers, err := s.groupTransfers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return s.buildSummary(ctx, userID, transfers), nil
}

// UserOverallSummary returns a user's balance summary across every group
// they belong to. Each group's ledger is simplified independently and the
// itemized results concatenated; groups are never merged into one ledger.
func (s *BalanceService) UserOverallSummary(ctx context.Context, userID string) (*Summary, error) {
	groups, err := s.store.ListGroupsForUser(ctx, userID)
	if err != nil {
		slog.Error("UserOverallSummary: failed to list groups", "user_id", userID, "error", err)
		return nil, err
	}

	var transfers []calculator.Transfer
	for _, group := range groups {
		groupTransfers, err := s.groupTransfers(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, groupTransfers...)
	}
	return s.buildSummary(ctx, userID, transfers), nil
}

// BalanceBetween returns the net position of userA against userB within a
// group's simplified transfers: positive means userA owes userB.
func (s *BalanceService) BalanceBetween(ctx context.Context, groupID, userA, userB string) (money.Money, error) {
	transfers, err := s.groupTransfers(ctx, groupID)
	if err != nil {
		return money.Zero, err
	}
	return calculator.BalanceBetween(transfers, userA, userB), nil
}

// groupTransfers runs the full pipeline for one group: snapshot, aggregate,
// simplify.
func (s *BalanceService) groupTransfers(ctx context.Context, groupID string) ([]calculator.Transfer, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		slog.Error("groupTransfers: failed to list expenses", "group_id", groupID, "error", err)
		return nil, err
	}
	settlements, err := s.store.ListSettlementsByGroup(ctx, groupID)
	if err != nil {
		slog.Error("groupTransfers: failed to list settlements", "group_id", groupID, "error", err)
		return nil, err
	}

	balances := calculator.Aggregate(toExpenseViews(expenses), toSettlementViews(settlements))
	return calculator.Simplify(balances), nil
}

func (s *BalanceService) buildSummary(ctx context.Context, userID string, transfers []calculator.Transfer) *Summary {
	core := calculator.Summarize(userID, transfers)
	return &Summary{
		UserID:     core.UserID,
		UserName:   s.userName(ctx, userID),
		TotalOwed:  core.TotalOwed,
		TotalOwing: core.TotalOwing,
		NetBalance: core.NetBalance,
		IsSettled:  core.IsSettled(),
		Debts:      s.resolveNames(ctx, core.Debts),
		Credits:    s.resolveNames(ctx, core.Credits),
	}
}

// resolveNames decorates transfers with display names, caching lookups per
// call.
func (s *BalanceService) resolveNames(ctx context.Context, transfers []calculator.Transfer) []Balance {
	names := make(map[string]string)
	lookup := func(userID string) string {
		if name, ok := names[userID]; ok {
			return name
		}
		name := s.userName(ctx, userID)
		names[userID] = name
		return name
	}

	balances := make([]Balance, len(transfers))
	for i, transfer := range transfers {
		balances[i] = Balance{
			FromUserID:   transfer.FromUserID,
			FromUserName: lookup(transfer.FromUserID),
			ToUserID:     transfer.ToUserID,
			ToUserName:   lookup(transfer.ToUserID),
			Amount:       transfer.Amount,
		}
	}
	return balances
}

func (s *BalanceService) userName(ctx context.Context, userID string) string {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return unknownUserName
	}
	return user.Name
}

func toExpenseViews(expenses []*models.Expense) []calculator.ExpenseForBalance {
	views := make([]calculator.ExpenseForBalance, len(expenses))
	for i, expense := range expenses {
		splits := make([]calculator.SplitShare, len(expense.Splits))
		for j, split := range expense.Splits {
			splits[j] = calculator.SplitShare{UserID: split.UserID, Amount: split.Amount}
		}
		views[i] = calculator.ExpenseForBalance{PayerID: expense.PayerID, Splits: splits}
	}
	return views
}

func toSettlementViews(settlements []*models.Settlement) []calculator.SettlementForBalance {
	views := make([]calculator.SettlementForBalance, len(settlements))
	for i, settlement := range settlements {
		views[i] = calculator.SettlementForBalance{
			PayerID: settlement.PayerID,
			PayeeID: settlement.PayeeID,
			Amount:  settlement.Amount,
		}
	}
	return views
}
