package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/expenseshare/expenseshare/internal/middleware"
	"github.com/expenseshare/expenseshare/internal/money"
)

func (a *API) handleGroupBalances(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireGroupMember(w, r); !ok {
		return
	}

	balances, err := a.balances.ComputeGroupBalances(r.Context(), mux.Vars(r)["groupID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balances)
}

func (a *API) handleGroupSummary(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireGroupMember(w, r); !ok {
		return
	}

	summary, err := a.balances.UserGroupSummary(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["groupID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (a *API) handleOverallSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.balances.UserOverallSummary(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (a *API) handleBalanceBetween(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireGroupMember(w, r); !ok {
		return
	}

	vars := mux.Vars(r)
	net, err := a.balances.BalanceBetween(r.Context(), vars["groupID"], vars["userA"], vars["userB"])
	if err != nil {
		writeError(w, err)
		return
	}
	// Positive: userA owes userB. Negative: userB owes userA.
	writeJSON(w, http.StatusOK, map[string]money.Money{"net": net})
}
