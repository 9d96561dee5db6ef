package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/interfaces"
	"github.com/summitretail/pos-api/internal/services"
)

// EscalationHandler handles the manager review queue
type EscalationHandler struct {
	escalationService interfaces.EscalationService
	logger            *zap.Logger
}

// NewEscalationHandler creates a handler with interface dependencies
func NewEscalationHandler(escalationService interfaces.EscalationService, logger *zap.Logger) *EscalationHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &EscalationHandler{
		escalationService: escalationService,
		logger:            logger,
	}
}

// EscalationResponse represents an escalation in API responses
type EscalationResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	ProductID             string  `json:"product_id"`
	RequestedPct          float64 `json:"requested_pct"`
	MarginAfterPct        float64 `json:"margin_after_pct"`
	CommissionImpactCents int64   `json:"commission_impact_cents"`
	Reason                string  `json:"reason"`
	Status                string  `json:"status"`
	ReviewedBy            *string `json:"reviewed_by,omitempty"`
	ReviewNotes           string  `json:"review_notes,omitempty"`
	CreatedAt             int64   `json:"created_at"`
	ReviewedAt            *int64  `json:"reviewed_at,omitempty"`
}

// ReviewEscalationRequest represents the request body for approving or denying an escalation
type ReviewEscalationRequest struct {
	ManagerID string `json:"manager_id" binding:"required"`
	Notes     string `json:"notes"`
}

func toEscalationResponse(e db.DiscountEscalation) EscalationResponse {
	resp := EscalationResponse{
		ID:                    e.ID.String(),
		EmployeeID:            e.EmployeeID.String(),
		ProductID:             e.ProductID.String(),
		RequestedPct:          e.RequestedPct,
		MarginAfterPct:        e.MarginAfterPct,
		CommissionImpactCents: e.CommissionImpactCents,
		Reason:                e.Reason,
		Status:                string(e.Status),
		ReviewNotes:           e.ReviewNotes.String,
		CreatedAt:             e.CreatedAt.Time.Unix(),
	}
	if e.ReviewedBy.Valid {
		id := uuid.UUID(e.ReviewedBy.Bytes).String()
		resp.ReviewedBy = &id
	}
	if e.ReviewedAt.Valid {
		t := e.ReviewedAt.Time.Unix()
		resp.ReviewedAt = &t
	}
	return resp
}

// CreateEscalationRequest represents the request body for opening an escalation directly
type CreateEscalationRequest struct {
	EmployeeID            string  `json:"employee_id" binding:"required"`
	ProductID             string  `json:"product_id" binding:"required"`
	RequestedPct          float64 `json:"requested_pct" binding:"required,gt=0,lte=100"`
	MarginAfterPct        float64 `json:"margin_after_pct"`
	CommissionImpactCents int64   `json:"commission_impact_cents"`
	Reason                string  `json:"reason" binding:"required"`
}

// CreateEscalation godoc
// @Summary Open a review case directly
// @Description Used when the register wants manager review without an apply attempt
// @Tags escalations
// @Accept json
// @Produce json
// @Success 201 {object} EscalationResponse
// @Failure 400 {object} ErrorResponse
// @Router /escalations [post]
func (h *EscalationHandler) CreateEscalation(c *gin.Context) {
	var req CreateEscalationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid employee ID format", err)
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid product ID format", err)
		return
	}

	escalation, err := h.escalationService.Create(c.Request.Context(), services.CreateEscalationParams{
		EmployeeID:            employeeID,
		ProductID:             productID,
		RequestedPct:          req.RequestedPct,
		MarginAfterPct:        req.MarginAfterPct,
		CommissionImpactCents: req.CommissionImpactCents,
		Reason:                req.Reason,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create escalation", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toEscalationResponse(escalation))
}

// ListPending godoc
// @Summary List escalations awaiting review
// @Tags escalations
// @Produce json
// @Success 200 {array} EscalationResponse
// @Router /escalations/pending [get]
func (h *EscalationHandler) ListPending(c *gin.Context) {
	escalations, err := h.escalationService.ListPending(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list escalations", err)
		return
	}

	responses := make([]EscalationResponse, 0, len(escalations))
	for _, e := range escalations {
		responses = append(responses, toEscalationResponse(e))
	}

	sendList(c, responses)
}

// GetEscalation godoc
// @Summary Get an escalation by ID
// @Tags escalations
// @Produce json
// @Param escalation_id path string true "Escalation ID"
// @Success 200 {object} EscalationResponse
// @Failure 404 {object} ErrorResponse
// @Router /escalations/{escalation_id} [get]
func (h *EscalationHandler) GetEscalation(c *gin.Context) {
	escalationID, ok := parseUUIDParam(c, "escalation_id")
	if !ok {
		return
	}

	escalation, err := h.escalationService.Get(c.Request.Context(), escalationID)
	if err != nil {
		handleDBError(c, err, "Escalation not found")
		return
	}

	sendSuccess(c, http.StatusOK, toEscalationResponse(escalation))
}

// ApproveEscalation godoc
// @Summary Approve a pending escalation
// @Description Approval authorizes a subsequent apply with the escalation ID; it does not apply the discount
// @Tags escalations
// @Accept json
// @Produce json
// @Success 200 {object} EscalationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /escalations/{escalation_id}/approve [post]
func (h *EscalationHandler) ApproveEscalation(c *gin.Context) {
	h.review(c, h.escalationService.Approve)
}

// DenyEscalation godoc
// @Summary Deny a pending escalation
// @Tags escalations
// @Accept json
// @Produce json
// @Success 200 {object} EscalationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /escalations/{escalation_id}/deny [post]
func (h *EscalationHandler) DenyEscalation(c *gin.Context) {
	h.review(c, h.escalationService.Deny)
}

type reviewFn func(ctx context.Context, escalationID, managerID uuid.UUID, notes string) (db.DiscountEscalation, error)

func (h *EscalationHandler) review(c *gin.Context, fn reviewFn) {
	escalationID, ok := parseUUIDParam(c, "escalation_id")
	if !ok {
		return
	}

	var req ReviewEscalationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	managerID, err := uuid.Parse(req.ManagerID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid manager ID format", err)
		return
	}

	escalation, err := fn(c.Request.Context(), escalationID, managerID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorizedToReview):
			sendError(c, http.StatusForbidden, "Not authorized to review escalations", err)
		case errors.Is(err, services.ErrEscalationNotPending):
			sendError(c, http.StatusConflict, "Escalation not found or already resolved", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to review escalation", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, toEscalationResponse(escalation))
}
