package calculator

import "github.com/expenseshare/expenseshare/internal/money"

// ExpenseForBalance is an expense with the minimal information needed for
// balance aggregation.
type ExpenseForBalance struct {
	PayerID string
	Splits  []SplitShare
}

// SplitShare is one participant's share of an expense.
type SplitShare struct {
	UserID string
	Amount money.Money
}

// SettlementForBalance is a settlement with the minimal information needed
// for balance aggregation.
type SettlementForBalance struct {
	PayerID string
	PayeeID string
	Amount  money.Money
}

// NetBalance maps userID to that user's signed net position. Positive
// means the user is owed money; negative means the user owes money.
//
// For a closed set of expenses and settlements within one group, the
// values sum to exactly zero: money is neither created nor destroyed.
type NetBalance map[string]money.Money

// Aggregate folds expenses and settlements into a fresh NetBalance.
//
// For each expense split whose user is not the payer, the payer is owed
// the split amount and the split user owes it. A payer's own split is a
// no-op (you don't owe yourself). For each settlement, the payer's balance
// rises by the amount (their debt shrank) and the payee's falls (what they
// were owed shrank).
//
// Addition is commutative, so processing order never affects the result.
// The returned map is newly allocated on every call; there is no shared
// accumulator.
func Aggregate(expenses []ExpenseForBalance, settlements []SettlementForBalance) NetBalance {
	balances := make(NetBalance)

	for _, expense := range expenses {
		for _, split := range expense.Splits {
			if split.UserID == expense.PayerID {
				continue
			}
			balances[expense.PayerID] = balances[expense.PayerID].Add(split.Amount)
			balances[split.UserID] = balances[split.UserID].Sub(split.Amount)
		}
	}

	for _, settlement := range settlements {
		balances[settlement.PayerID] = balances[settlement.PayerID].Add(settlement.Amount)
		balances[settlement.PayeeID] = balances[settlement.PayeeID].Sub(settlement.Amount)
	}

	return balances
}
