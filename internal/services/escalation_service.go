package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/logger"
)

var (
	// ErrEscalationNotPending is returned when a review action targets an
	// escalation that does not exist or has already reached a terminal state.
	// A lost concurrent approve/deny race surfaces as this error on the
	// losing side.
	ErrEscalationNotPending = errors.New("escalation not found or not pending")

	// ErrNotAuthorizedToReview is returned when the acting employee's tier
	// does not grant escalation review.
	ErrNotAuthorizedToReview = errors.New("reviewer is not authorized to review escalations")
)

// EscalationService owns the manager-review state machine:
// pending -> approved | denied, terminal states immutable. Transitions are
// optimistic conditional updates (WHERE status = 'pending'), not locks.
type EscalationService struct {
	queries  db.Querier
	tiers    *TierService
	notifier *NotificationService
	logger   *zap.Logger
}

// NewEscalationService creates a new escalation service
func NewEscalationService(queries db.Querier, tiers *TierService, notifier *NotificationService) *EscalationService {
	return &EscalationService{
		queries:  queries,
		tiers:    tiers,
		notifier: notifier,
		logger:   logger.Log,
	}
}

// CreateEscalationParams contains parameters for opening a review case
type CreateEscalationParams struct {
	EmployeeID            uuid.UUID
	ProductID             uuid.UUID
	RequestedPct          float64
	MarginAfterPct        float64
	CommissionImpactCents int64
	Reason                string
}

// Create opens a pending review case for a denied-but-escalatable discount.
func (s *EscalationService) Create(ctx context.Context, params CreateEscalationParams) (db.DiscountEscalation, error) {
	if params.EmployeeID == uuid.Nil {
		return db.DiscountEscalation{}, fmt.Errorf("employee ID is required")
	}
	if params.ProductID == uuid.Nil {
		return db.DiscountEscalation{}, fmt.Errorf("product ID is required")
	}
	if params.Reason == "" {
		return db.DiscountEscalation{}, fmt.Errorf("reason is required")
	}

	esc, err := s.queries.CreateDiscountEscalation(ctx, db.CreateDiscountEscalationParams{
		EmployeeID:            params.EmployeeID,
		ProductID:             params.ProductID,
		RequestedPct:          params.RequestedPct,
		MarginAfterPct:        params.MarginAfterPct,
		CommissionImpactCents: params.CommissionImpactCents,
		Reason:                params.Reason,
	})
	if err != nil {
		s.logger.Error("Failed to create escalation",
			zap.String("employee_id", params.EmployeeID.String()),
			zap.Error(err))
		return db.DiscountEscalation{}, fmt.Errorf("failed to create escalation: %w", err)
	}

	s.logger.Info("Escalation opened",
		zap.String("escalation_id", esc.ID.String()),
		zap.String("employee_id", esc.EmployeeID.String()),
		zap.Float64("requested_pct", esc.RequestedPct),
		zap.String("reason", esc.Reason))

	s.notifyOpened(ctx, esc)

	return esc, nil
}

// notifyOpened sends the review-queue email. Notification failures never fail
// the escalation itself.
func (s *EscalationService) notifyOpened(ctx context.Context, esc db.DiscountEscalation) {
	if s.notifier == nil {
		return
	}

	var productName, employeeName string
	if product, err := s.queries.GetProduct(ctx, esc.ProductID); err == nil {
		productName = product.Name
	}
	if employee, err := s.queries.GetEmployee(ctx, esc.EmployeeID); err == nil {
		employeeName = employee.FullName
	}

	if err := s.notifier.EscalationOpened(ctx, esc, productName, employeeName); err != nil {
		s.logger.Warn("Escalation notification failed",
			zap.String("escalation_id", esc.ID.String()),
			zap.Error(err))
	}
}

// Approve transitions a pending escalation to approved. Approval does not
// apply the discount; it authorizes a subsequent apply-as-approved call.
func (s *EscalationService) Approve(ctx context.Context, escalationID, managerID uuid.UUID, notes string) (db.DiscountEscalation, error) {
	return s.resolve(ctx, escalationID, managerID, db.EscalationStatusApproved, notes)
}

// Deny transitions a pending escalation to denied. No discount is ever applied
// for a denied escalation.
func (s *EscalationService) Deny(ctx context.Context, escalationID, managerID uuid.UUID, reason string) (db.DiscountEscalation, error) {
	return s.resolve(ctx, escalationID, managerID, db.EscalationStatusDenied, reason)
}

func (s *EscalationService) resolve(ctx context.Context, escalationID, managerID uuid.UUID, status db.EscalationStatus, notes string) (db.DiscountEscalation, error) {
	if err := s.checkReviewer(ctx, managerID); err != nil {
		return db.DiscountEscalation{}, err
	}

	esc, err := s.queries.ResolveDiscountEscalation(ctx, db.ResolveDiscountEscalationParams{
		ID:          escalationID,
		Status:      status,
		ReviewedBy:  uuidFrom(managerID),
		ReviewNotes: textFrom(notes),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.DiscountEscalation{}, ErrEscalationNotPending
		}
		s.logger.Error("Failed to resolve escalation",
			zap.String("escalation_id", escalationID.String()),
			zap.String("status", string(status)),
			zap.Error(err))
		return db.DiscountEscalation{}, fmt.Errorf("failed to resolve escalation: %w", err)
	}

	s.logger.Info("Escalation resolved",
		zap.String("escalation_id", esc.ID.String()),
		zap.String("status", string(esc.Status)),
		zap.String("reviewed_by", managerID.String()))

	return esc, nil
}

// checkReviewer verifies the acting employee's tier grants escalation review.
func (s *EscalationService) checkReviewer(ctx context.Context, managerID uuid.UUID) error {
	manager, err := s.queries.GetEmployee(ctx, managerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotAuthorizedToReview
		}
		return fmt.Errorf("failed to load reviewer: %w", err)
	}

	tier, err := s.tiers.Resolve(ctx, manager.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotAuthorizedToReview
		}
		return fmt.Errorf("failed to resolve reviewer tier: %w", err)
	}

	if !tier.CanReviewEscalations {
		return ErrNotAuthorizedToReview
	}
	return nil
}

// Get returns a single escalation by id.
func (s *EscalationService) Get(ctx context.Context, escalationID uuid.UUID) (db.DiscountEscalation, error) {
	return s.queries.GetDiscountEscalation(ctx, escalationID)
}

// ListPending returns all escalations awaiting review, oldest first.
func (s *EscalationService) ListPending(ctx context.Context) ([]db.DiscountEscalation, error) {
	return s.queries.ListPendingDiscountEscalations(ctx)
}
