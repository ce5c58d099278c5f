package service

import (
	"context"
	"log/slog"

	"github.com/expenseshare/expenseshare/internal/calculator"
	"github.com/expenseshare/expenseshare/internal/models"
	"github.com/expenseshare/expenseshare/internal/money"
	"github.com/expenseshare/expenseshare/internal/storage"
)

// NewSettlement describes a settlement payment to be recorded.
type NewSettlement struct {
	GroupID string
	PayerID string
	PayeeID string
	Amount  money.Money
	Note    string
}

// SettlementService records and queries settlement payments.
type SettlementService struct {
	store storage.Store
}

// NewSettlementService creates a new SettlementService with the given
// storage backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

// RecordSettlement validates and persists a settlement payment.
// Payer and payee must differ, the amount must be positive, and both
// parties must be members of the group.
func (s *SettlementService) RecordSettlement(ctx context.Context, req NewSettlement) (*models.Settlement, error) {
	if req.PayerID == req.PayeeID {
		return nil, &calculator.ValidationError{Reason: "payer and payee cannot be the same"}
	}
	if !req.Amount.IsPositive() {
		return nil, &calculator.ValidationError{Reason: "settlement amount must be positive"}
	}

	group, err := s.store.GetGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(req.PayerID) {
		return nil, &calculator.ValidationError{Reason: "payer must be a member of the group"}
	}
	if !group.HasMember(req.PayeeID) {
		return nil, &calculator.ValidationError{Reason: "payee must be a member of the group"}
	}

	settlement := &models.Settlement{
		GroupID: req.GroupID,
		PayerID: req.PayerID,
		PayeeID: req.PayeeID,
		Amount:  req.Amount,
		Note:    req.Note,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		slog.Error("RecordSettlement failed", "group_id", req.GroupID, "error", err)
		return nil, err
	}

	slog.Info("Settlement recorded",
		"settlement_id", settlement.ID,
		"group_id", settlement.GroupID,
		"payer_id", settlement.PayerID,
		"payee_id", settlement.PayeeID,
		"amount", settlement.Amount,
	)
	return settlement, nil
}

// ListGroupSettlements retrieves all settlements for a group.
func (s *SettlementService) ListGroupSettlements(ctx context.Context, groupID string) ([]*models.Settlement, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListSettlementsByGroup(ctx, groupID)
}

// ListUserSettlements retrieves all settlements the user paid or received.
func (s *SettlementService) ListUserSettlements(ctx context.Context, userID string) ([]*models.Settlement, error) {
	return s.store.ListSettlementsByUser(ctx, userID)
}

// DeleteSettlement removes a settlement.
func (s *SettlementService) DeleteSettlement(ctx context.Context, settlementID string) error {
	if err := s.store.DeleteSettlement(ctx, settlementID); err != nil {
		slog.Error("DeleteSettlement failed", "settlement_id", settlementID, "error", err)
		return err
	}
	slog.Info("Settlement deleted", "settlement_id", settlementID)
	return nil
}
