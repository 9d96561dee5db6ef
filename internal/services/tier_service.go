package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/logger"
)

// roleAliases maps generic identity-system role labels onto the tier vocabulary.
var roleAliases = map[string]string{
	"user":  "staff",
	"admin": "master",
}

// TierService resolves employee roles to authority tier policy records and
// handles administrative tier updates. Tier policy is a versioned configuration
// table read on every decision; it is never cached in process memory.
type TierService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewTierService creates a new tier service
func NewTierService(queries db.Querier) *TierService {
	return &TierService{
		queries: queries,
		logger:  logger.Log,
	}
}

// NormalizeRole maps a free-form role label into the tier vocabulary.
func NormalizeRole(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	if alias, ok := roleAliases[r]; ok {
		return alias
	}
	return r
}

// Resolve returns the authority tier for a role label. A missing tier surfaces
// as pgx.ErrNoRows; callers must treat that as deny-with-escalation, never allow.
func (s *TierService) Resolve(ctx context.Context, role string) (db.AuthorityTier, error) {
	return s.queries.GetAuthorityTierByRole(ctx, NormalizeRole(role))
}

// ListTiers returns all configured authority tiers.
func (s *TierService) ListTiers(ctx context.Context) ([]db.AuthorityTier, error) {
	return s.queries.ListAuthorityTiers(ctx)
}

// UpdateTierParams contains the fields an administrator may change on a tier.
// Nil fields are left at their current value.
type UpdateTierParams struct {
	MaxDiscountPctStandard         *float64
	MaxDiscountPctHighMargin       *float64
	HighMarginThresholdPct         *float64
	MinMarginFloorPct              *float64
	RequiresApprovalBelowMarginPct *float64
	ClearRequiresApproval          bool
	IsUnrestricted                 *bool
	CanReviewEscalations           *bool
	DefaultWeeklyBudgetCents       *int64
}

// UpdateTier merge-upserts an authority tier. Every write bumps the tier's
// version so concurrent readers can tell policy generations apart.
func (s *TierService) UpdateTier(ctx context.Context, role string, params UpdateTierParams) (db.AuthorityTier, error) {
	normalized := NormalizeRole(role)
	if normalized == "" {
		return db.AuthorityTier{}, fmt.Errorf("role is required")
	}

	existing, err := s.queries.GetAuthorityTierByRole(ctx, normalized)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("Failed to load tier for update",
			zap.String("role", normalized),
			zap.Error(err))
		return db.AuthorityTier{}, fmt.Errorf("failed to load tier: %w", err)
	}

	upsert := db.UpsertAuthorityTierParams{
		Role:                           normalized,
		MaxDiscountPctStandard:         existing.MaxDiscountPctStandard,
		MaxDiscountPctHighMargin:       existing.MaxDiscountPctHighMargin,
		HighMarginThresholdPct:         existing.HighMarginThresholdPct,
		MinMarginFloorPct:              existing.MinMarginFloorPct,
		RequiresApprovalBelowMarginPct: existing.RequiresApprovalBelowMarginPct,
		IsUnrestricted:                 existing.IsUnrestricted,
		CanReviewEscalations:           existing.CanReviewEscalations,
		DefaultWeeklyBudgetCents:       existing.DefaultWeeklyBudgetCents,
	}

	if params.MaxDiscountPctStandard != nil {
		upsert.MaxDiscountPctStandard = *params.MaxDiscountPctStandard
	}
	if params.MaxDiscountPctHighMargin != nil {
		upsert.MaxDiscountPctHighMargin = *params.MaxDiscountPctHighMargin
	}
	if params.HighMarginThresholdPct != nil {
		upsert.HighMarginThresholdPct = *params.HighMarginThresholdPct
	}
	if params.MinMarginFloorPct != nil {
		upsert.MinMarginFloorPct = *params.MinMarginFloorPct
	}
	if params.RequiresApprovalBelowMarginPct != nil {
		upsert.RequiresApprovalBelowMarginPct = pgtype.Float8{Float64: *params.RequiresApprovalBelowMarginPct, Valid: true}
	}
	if params.ClearRequiresApproval {
		upsert.RequiresApprovalBelowMarginPct = pgtype.Float8{}
	}
	if params.IsUnrestricted != nil {
		upsert.IsUnrestricted = *params.IsUnrestricted
	}
	if params.CanReviewEscalations != nil {
		upsert.CanReviewEscalations = *params.CanReviewEscalations
	}
	if params.DefaultWeeklyBudgetCents != nil {
		upsert.DefaultWeeklyBudgetCents = pgtype.Int8{Int64: *params.DefaultWeeklyBudgetCents, Valid: true}
	}

	tier, err := s.queries.UpsertAuthorityTier(ctx, upsert)
	if err != nil {
		s.logger.Error("Failed to upsert tier",
			zap.String("role", normalized),
			zap.Error(err))
		return db.AuthorityTier{}, fmt.Errorf("failed to update tier: %w", err)
	}

	s.logger.Info("Tier updated",
		zap.String("role", tier.Role),
		zap.Int32("version", tier.Version))

	return tier, nil
}
