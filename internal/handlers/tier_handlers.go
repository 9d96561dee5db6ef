package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/interfaces"
	"github.com/summitretail/pos-api/internal/services"
)

// TierHandler handles authority tier administration
type TierHandler struct {
	tierService interfaces.TierService
	logger      *zap.Logger
}

// NewTierHandler creates a handler with interface dependencies
func NewTierHandler(tierService interfaces.TierService, logger *zap.Logger) *TierHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &TierHandler{
		tierService: tierService,
		logger:      logger,
	}
}

// TierResponse represents an authority tier in API responses
type TierResponse struct {
	ID                             string   `json:"id"`
	Role                           string   `json:"role"`
	MaxDiscountPctStandard         float64  `json:"max_discount_pct_standard"`
	MaxDiscountPctHighMargin       float64  `json:"max_discount_pct_high_margin"`
	HighMarginThresholdPct         float64  `json:"high_margin_threshold_pct"`
	MinMarginFloorPct              float64  `json:"min_margin_floor_pct"`
	RequiresApprovalBelowMarginPct *float64 `json:"requires_approval_below_margin_pct,omitempty"`
	IsUnrestricted                 bool     `json:"is_unrestricted"`
	CanReviewEscalations           bool     `json:"can_review_escalations"`
	DefaultWeeklyBudgetCents       *int64   `json:"default_weekly_budget_cents,omitempty"`
	Version                        int32    `json:"version"`
}

// UpdateTierRequest represents the request body for updating a tier.
// Omitted fields keep their current values.
type UpdateTierRequest struct {
	MaxDiscountPctStandard         *float64 `json:"max_discount_pct_standard,omitempty"`
	MaxDiscountPctHighMargin       *float64 `json:"max_discount_pct_high_margin,omitempty"`
	HighMarginThresholdPct         *float64 `json:"high_margin_threshold_pct,omitempty"`
	MinMarginFloorPct              *float64 `json:"min_margin_floor_pct,omitempty"`
	RequiresApprovalBelowMarginPct *float64 `json:"requires_approval_below_margin_pct,omitempty"`
	ClearRequiresApproval          bool     `json:"clear_requires_approval,omitempty"`
	IsUnrestricted                 *bool    `json:"is_unrestricted,omitempty"`
	CanReviewEscalations           *bool    `json:"can_review_escalations,omitempty"`
	DefaultWeeklyBudgetCents       *int64   `json:"default_weekly_budget_cents,omitempty"`
}

func toTierResponse(t db.AuthorityTier) TierResponse {
	resp := TierResponse{
		ID:                       t.ID.String(),
		Role:                     t.Role,
		MaxDiscountPctStandard:   t.MaxDiscountPctStandard,
		MaxDiscountPctHighMargin: t.MaxDiscountPctHighMargin,
		HighMarginThresholdPct:   t.HighMarginThresholdPct,
		MinMarginFloorPct:        t.MinMarginFloorPct,
		IsUnrestricted:           t.IsUnrestricted,
		CanReviewEscalations:     t.CanReviewEscalations,
		Version:                  t.Version,
	}
	if t.RequiresApprovalBelowMarginPct.Valid {
		v := t.RequiresApprovalBelowMarginPct.Float64
		resp.RequiresApprovalBelowMarginPct = &v
	}
	if t.DefaultWeeklyBudgetCents.Valid {
		v := t.DefaultWeeklyBudgetCents.Int64
		resp.DefaultWeeklyBudgetCents = &v
	}
	return resp
}

// ListTiers godoc
// @Summary List all authority tiers
// @Tags tiers
// @Produce json
// @Success 200 {array} TierResponse
// @Router /tiers [get]
func (h *TierHandler) ListTiers(c *gin.Context) {
	tiers, err := h.tierService.ListTiers(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list tiers", err)
		return
	}

	responses := make([]TierResponse, 0, len(tiers))
	for _, t := range tiers {
		responses = append(responses, toTierResponse(t))
	}

	sendList(c, responses)
}

// UpdateTier godoc
// @Summary Create or update an authority tier
// @Description Merge-upserts the tier for a role and bumps its version
// @Tags tiers
// @Accept json
// @Produce json
// @Param role path string true "Role"
// @Success 200 {object} TierResponse
// @Failure 400 {object} ErrorResponse
// @Router /tiers/{role} [put]
func (h *TierHandler) UpdateTier(c *gin.Context) {
	role := c.Param("role")
	if role == "" {
		sendError(c, http.StatusBadRequest, "Role is required", nil)
		return
	}

	var req UpdateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	tier, err := h.tierService.UpdateTier(c.Request.Context(), role, services.UpdateTierParams{
		MaxDiscountPctStandard:         req.MaxDiscountPctStandard,
		MaxDiscountPctHighMargin:       req.MaxDiscountPctHighMargin,
		HighMarginThresholdPct:         req.HighMarginThresholdPct,
		MinMarginFloorPct:              req.MinMarginFloorPct,
		RequiresApprovalBelowMarginPct: req.RequiresApprovalBelowMarginPct,
		ClearRequiresApproval:          req.ClearRequiresApproval,
		IsUnrestricted:                 req.IsUnrestricted,
		CanReviewEscalations:           req.CanReviewEscalations,
		DefaultWeeklyBudgetCents:       req.DefaultWeeklyBudgetCents,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to update tier", err)
		return
	}

	sendSuccess(c, http.StatusOK, toTierResponse(tier))
}
