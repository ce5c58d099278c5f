package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/expenseshare/expenseshare/internal/middleware"
	"github.com/expenseshare/expenseshare/internal/models"
)

type groupRequest struct {
	Name      string   `json:"name"`
	MemberIDs []string `json:"memberIds"`
}

type groupResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MemberIDs []string `json:"memberIds"`
	CreatedBy string   `json:"createdBy"`
	CreatedAt int64    `json:"createdAt"`
}

func toGroupResponse(group *models.Group) groupResponse {
	return groupResponse{
		ID:        group.ID,
		Name:      group.Name,
		MemberIDs: group.MemberIDs,
		CreatedBy: group.CreatedBy,
		CreatedAt: group.CreatedAt,
	}
}

func (a *API) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	group, err := a.groups.CreateGroup(r.Context(), req.Name, middleware.GetUserID(r.Context()), req.MemberIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGroupResponse(group))
}

func (a *API) handleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := a.groups.ListGroupsForUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]groupResponse, len(groups))
	for i, group := range groups {
		resp[i] = toGroupResponse(group)
	}
	writeJSON(w, http.StatusOK, resp)
}

// requireGroupMember loads the {groupID} group and rejects requesters who
// are not members with 403. Every group-scoped handler goes through it, so
// group data is never visible outside the group.
func (a *API) requireGroupMember(w http.ResponseWriter, r *http.Request) (*models.Group, bool) {
	group, err := a.groups.GetGroup(r.Context(), mux.Vars(r)["groupID"])
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	if !group.HasMember(middleware.GetUserID(r.Context())) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "you must be a member of this group"})
		return nil, false
	}
	return group, true
}

func (a *API) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	group, ok := a.requireGroupMember(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponse(group))
}

func (a *API) handleUpdateGroup(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireGroupMember(w, r); !ok {
		return
	}

	var req groupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	group, err := a.groups.UpdateGroup(r.Context(), mux.Vars(r)["groupID"], req.Name, req.MemberIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponse(group))
}

func (a *API) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireGroupMember(w, r); !ok {
		return
	}

	if err := a.groups.DeleteGroup(r.Context(), mux.Vars(r)["groupID"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
