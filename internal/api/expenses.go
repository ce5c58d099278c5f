package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/expenseshare/expenseshare/internal/middleware"
	"github.com/expenseshare/expenseshare/internal/models"
	"github.com/expenseshare/expenseshare/internal/money"
	"github.com/expenseshare/expenseshare/internal/service"
)

type expenseRequest struct {
	Description string                 `json:"description"`
	TotalAmount money.Money            `json:"totalAmount"`
	PayerID     string                 `json:"payerId"`
	SplitPolicy models.SplitPolicy     `json:"splitPolicy"`
	EqualAmong  []string               `json:"equalAmong,omitempty"`
	Exact       map[string]money.Money `json:"exactAmounts,omitempty"`
	Percentages map[string]money.Money `json:"percentages,omitempty"`
}

type splitResponse struct {
	UserID     string       `json:"userId"`
	Amount     money.Money  `json:"amount"`
	Percentage *money.Money `json:"percentage,omitempty"`
}

type expenseResponse struct {
	ID          string             `json:"id"`
	GroupID     string             `json:"groupId"`
	Description string             `json:"description"`
	TotalAmount money.Money        `json:"totalAmount"`
	PayerID     string             `json:"payerId"`
	SplitPolicy models.SplitPolicy `json:"splitPolicy"`
	Splits      []splitResponse    `json:"splits"`
	CreatedAt   int64              `json:"createdAt"`
}

func toExpenseResponse(expense *models.Expense) expenseResponse {
	splits := make([]splitResponse, len(expense.Splits))
	for i, split := range expense.Splits {
		splits[i] = splitResponse{
			UserID:     split.UserID,
			Amount:     split.Amount,
			Percentage: split.Percentage,
		}
	}
	return expenseResponse{
		ID:          expense.ID,
		GroupID:     expense.GroupID,
		Description: expense.Description,
		TotalAmount: expense.TotalAmount,
		PayerID:     expense.PayerID,
		SplitPolicy: expense.SplitPolicy,
		Splits:      splits,
		CreatedAt:   expense.CreatedAt,
	}
}

func (a *API) handleRecordExpense(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireGroupMember(w, r); !ok {
		return
	}

	var req expenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	expense, err := a.expenses.RecordExpense(r.Context(), service.NewExpense{
		GroupID:      mux.Vars(r)["groupID"],
		Description:  req.Description,
		TotalAmount:  req.TotalAmount,
		PayerID:      req.PayerID,
		Policy:       req.SplitPolicy,
		EqualAmong:   req.EqualAmong,
		ExactAmounts: req.Exact,
		Percentages:  req.Percentages,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

func (a *API) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireGroupMember(w, r); !ok {
		return
	}

	expenses, err := a.expenses.ListGroupExpenses(r.Context(), mux.Vars(r)["groupID"])
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]expenseResponse, len(expenses))
	for i, expense := range expenses {
		resp[i] = toExpenseResponse(expense)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleListMyExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := a.expenses.ListExpensesPaidBy(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]expenseResponse, len(expenses))
	for i, expense := range expenses {
		resp[i] = toExpenseResponse(expense)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	expense, err := a.expenses.GetExpense(r.Context(), mux.Vars(r)["expenseID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseResponse(expense))
}

func (a *API) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := a.expenses.DeleteExpense(r.Context(), mux.Vars(r)["expenseID"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// handlePreviewSplit runs the allocator without persisting anything, so
// clients can show the resulting shares before the expense is saved.
func (a *API) handlePreviewSplit(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	allocations, err := service.AllocateSplits(req.TotalAmount, req.SplitPolicy, req.EqualAmong, req.Exact, req.Percentages)
	if err != nil {
		writeError(w, err)
		return
	}

	splits := make([]splitResponse, len(allocations))
	for i, allocation := range allocations {
		splits[i] = splitResponse{
			UserID:     allocation.UserID,
			Amount:     allocation.Amount,
			Percentage: allocation.Percentage,
		}
	}
	writeJSON(w, http.StatusOK, splits)
}
