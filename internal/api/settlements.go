package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/expenseshare/expenseshare/internal/middleware"
	"github.com/expenseshare/expenseshare/internal/models"
	"github.com/expenseshare/expenseshare/internal/money"
	"github.com/expenseshare/expenseshare/internal/service"
)

type settlementRequest struct {
	PayerID string      `json:"payerId"`
	PayeeID string      `json:"payeeId"`
	Amount  money.Money `json:"amount"`
	Note    string      `json:"note,omitempty"`
}

type settlementResponse struct {
	ID        string      `json:"id"`
	GroupID   string      `json:"groupId"`
	PayerID   string      `json:"payerId"`
	PayeeID   string      `json:"payeeId"`
	Amount    money.Money `json:"amount"`
	Note      string      `json:"note,omitempty"`
	CreatedAt int64       `json:"createdAt"`
}

func toSettlementResponse(settlement *models.Settlement) settlementResponse {
	return settlementResponse{
		ID:        settlement.ID,
		GroupID:   settlement.GroupID,
		PayerID:   settlement.PayerID,
		PayeeID:   settlement.PayeeID,
		Amount:    settlement.Amount,
		Note:      settlement.Note,
		CreatedAt: settlement.CreatedAt,
	}
}

func (a *API) handleRecordSettlement(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireGroupMember(w, r); !ok {
		return
	}

	var req settlementRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	settlement, err := a.settlements.RecordSettlement(r.Context(), service.NewSettlement{
		GroupID: mux.Vars(r)["groupID"],
		PayerID: req.PayerID,
		PayeeID: req.PayeeID,
		Amount:  req.Amount,
		Note:    req.Note,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSettlementResponse(settlement))
}

func (a *API) handleListSettlements(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireGroupMember(w, r); !ok {
		return
	}

	settlements, err := a.settlements.ListGroupSettlements(r.Context(), mux.Vars(r)["groupID"])
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]settlementResponse, len(settlements))
	for i, settlement := range settlements {
		resp[i] = toSettlementResponse(settlement)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleListMySettlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := a.settlements.ListUserSettlements(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]settlementResponse, len(settlements))
	for i, settlement := range settlements {
		resp[i] = toSettlementResponse(settlement)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleDeleteSettlement(w http.ResponseWriter, r *http.Request) {
	if err := a.settlements.DeleteSettlement(r.Context(), mux.Vars(r)["settlementID"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
