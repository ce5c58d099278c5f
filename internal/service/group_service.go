package service

import (
	"context"
	"log/slog"

	"github.com/expenseshare/expenseshare/internal/calculator"
	"github.com/expenseshare/expenseshare/internal/models"
	"github.com/expenseshare/expenseshare/internal/storage"
)

// GroupService manages groups and their membership.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage
// backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a new group. The creator is always a member.
func (s *GroupService) CreateGroup(ctx context.Context, name, createdBy string, memberIDs []string) (*models.Group, error) {
	if name == "" {
		return nil, &calculator.ValidationError{Reason: "group name required"}
	}

	members := dedupe(append([]string{createdBy}, memberIDs...))
	for _, userID := range members {
		if _, err := s.store.GetUser(ctx, userID); err != nil {
			return nil, err
		}
	}

	group := &models.Group{
		Name:      name,
		MemberIDs: members,
		CreatedBy: createdBy,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "name", name, "error", err)
		return nil, err
	}

	slog.Info("Group created", "group_id", group.ID, "name", group.Name, "members", len(group.MemberIDs))
	return group, nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.store.GetGroup(ctx, groupID)
}

// ListGroupsForUser retrieves all groups the user belongs to.
func (s *GroupService) ListGroupsForUser(ctx context.Context, userID string) ([]*models.Group, error) {
	return s.store.ListGroupsForUser(ctx, userID)
}

// UpdateGroup replaces a group's name and membership. Members carrying an
// outstanding balance are not blocked from removal here; their recorded
// splits and settlements still count toward the group ledger.
func (s *GroupService) UpdateGroup(ctx context.Context, groupID, name string, memberIDs []string) (*models.Group, error) {
	existing, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &calculator.ValidationError{Reason: "group name required"}
	}

	members := dedupe(memberIDs)
	if len(members) == 0 {
		return nil, &calculator.ValidationError{Reason: "group must have at least one member"}
	}
	for _, userID := range members {
		if _, err := s.store.GetUser(ctx, userID); err != nil {
			return nil, err
		}
	}

	group := &models.Group{
		ID:        groupID,
		Name:      name,
		MemberIDs: members,
		CreatedBy: existing.CreatedBy,
	}
	if err := s.store.UpdateGroup(ctx, group); err != nil {
		slog.Error("UpdateGroup failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Info("Group updated", "group_id", groupID, "members", len(members))
	return s.store.GetGroup(ctx, groupID)
}

// DeleteGroup removes a group and everything recorded in it.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID string) error {
	if err := s.store.DeleteGroup(ctx, groupID); err != nil {
		slog.Error("DeleteGroup failed", "group_id", groupID, "error", err)
		return err
	}
	slog.Info("Group deleted", "group_id", groupID)
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
