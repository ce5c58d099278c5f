// Package models defines the core domain models for the expense-share
// backend.
//
// # Models
//
//   - User: registered account, referenced everywhere by ID
//   - Group: a set of members who share expenses
//   - Expense: one shared expense with its per-member splits
//   - Split: one member's share of an expense
//   - Settlement: a payment between two members that clears debt
//
// # Design Principles
//
//  1. **ID relations only**: models reference each other by ID strings,
//     never by pointers, so there are no object cycles and a model can be
//     handed to the calculator as a plain immutable snapshot.
//  2. **Exact money**: every monetary field is a money.Money (integer
//     cents), never a float. The invariant that an expense's splits sum
//     exactly to its total is enforced at allocation time and holds for
//     every persisted expense.
//  3. **Derived state is not stored**: net balances and simplified
//     transfers are recomputed from expenses and settlements on every
//     query; there is no cached ledger state to drift.
package models
