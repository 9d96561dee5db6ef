package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/interfaces"
	"github.com/summitretail/pos-api/internal/services"
)

// DiscountHandler handles discount validation and apply operations
type DiscountHandler struct {
	discountService interfaces.DiscountService
	queries         db.Querier
	logger          *zap.Logger
}

// NewDiscountHandler creates a handler with interface dependencies
func NewDiscountHandler(discountService interfaces.DiscountService, queries db.Querier, logger *zap.Logger) *DiscountHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &DiscountHandler{
		discountService: discountService,
		queries:         queries,
		logger:          logger,
	}
}

// ValidateDiscountRequest represents the request body for validating a discount
type ValidateDiscountRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required"`
	ProductID   string  `json:"product_id" binding:"required"`
	DiscountPct float64 `json:"discount_pct" binding:"required,gt=0,lte=100"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	CostCents   *int64  `json:"cost_cents,omitempty"`
}

// ApplyDiscountRequest represents the request body for applying a discount
type ApplyDiscountRequest struct {
	ValidateDiscountRequest
	EscalationID *string `json:"escalation_id,omitempty"`
}

// TransactionResponse represents a committed discount transaction in API responses
type TransactionResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	ProductID             string  `json:"product_id"`
	BudgetID              *string `json:"budget_id,omitempty"`
	OriginalPriceCents    int64   `json:"original_price_cents"`
	CostCents             int64   `json:"cost_cents"`
	DiscountPct           float64 `json:"discount_pct"`
	DiscountAmountCents   int64   `json:"discount_amount_cents"`
	FinalPriceCents       int64   `json:"final_price_cents"`
	MarginBeforePct       float64 `json:"margin_before_pct"`
	MarginAfterPct        float64 `json:"margin_after_pct"`
	CommissionImpactCents int64   `json:"commission_impact_cents"`
	ManagerApproved       bool    `json:"manager_approved"`
	ApprovedBy            *string `json:"approved_by,omitempty"`
	CreatedAt             int64   `json:"created_at"`
}

func toTransactionResponse(t db.DiscountTransaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                    t.ID.String(),
		EmployeeID:            t.EmployeeID.String(),
		ProductID:             t.ProductID.String(),
		OriginalPriceCents:    t.OriginalPriceCents,
		CostCents:             t.CostCents,
		DiscountPct:           t.DiscountPct,
		DiscountAmountCents:   t.DiscountAmountCents,
		FinalPriceCents:       t.FinalPriceCents,
		MarginBeforePct:       t.MarginBeforePct,
		MarginAfterPct:        t.MarginAfterPct,
		CommissionImpactCents: t.CommissionImpactCents,
		ManagerApproved:       t.ManagerApproved,
		CreatedAt:             t.CreatedAt.Time.Unix(),
	}
	if t.BudgetID.Valid {
		id := uuid.UUID(t.BudgetID.Bytes).String()
		resp.BudgetID = &id
	}
	if t.ApprovedBy.Valid {
		id := uuid.UUID(t.ApprovedBy.Bytes).String()
		resp.ApprovedBy = &id
	}
	return resp
}

func (r ValidateDiscountRequest) toParams(c *gin.Context) (services.ValidateDiscountParams, bool) {
	employeeID, err := uuid.Parse(r.EmployeeID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid employee ID format", err)
		return services.ValidateDiscountParams{}, false
	}
	productID, err := uuid.Parse(r.ProductID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid product ID format", err)
		return services.ValidateDiscountParams{}, false
	}
	return services.ValidateDiscountParams{
		EmployeeID:  employeeID,
		ProductID:   productID,
		DiscountPct: r.DiscountPct,
		PriceCents:  r.PriceCents,
		CostCents:   r.CostCents,
	}, true
}

// ValidateDiscount godoc
// @Summary Validate a proposed discount
// @Description Checks a discount against tier policy and budget without committing anything
// @Tags discounts
// @Accept json
// @Produce json
// @Success 200 {object} services.DiscountDecision
// @Failure 400 {object} ErrorResponse
// @Router /discounts/validate [post]
func (h *DiscountHandler) ValidateDiscount(c *gin.Context) {
	var req ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params, ok := req.toParams(c)
	if !ok {
		return
	}

	decision, err := h.discountService.ValidateDiscount(c.Request.Context(), params)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to validate discount", err)
		return
	}

	sendSuccess(c, http.StatusOK, decision)
}

// ApplyDiscount godoc
// @Summary Apply a discount
// @Description Validates and commits a discount, or opens an escalation when denied
// @Tags discounts
// @Accept json
// @Produce json
// @Success 200 {object} services.ApplyDiscountResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /discounts/apply [post]
func (h *DiscountHandler) ApplyDiscount(c *gin.Context) {
	var req ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params, ok := req.ValidateDiscountRequest.toParams(c)
	if !ok {
		return
	}

	applyParams := services.ApplyDiscountParams{ValidateDiscountParams: params}
	if req.EscalationID != nil {
		escalationID, err := uuid.Parse(*req.EscalationID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid escalation ID format", err)
			return
		}
		applyParams.EscalationID = &escalationID
	}

	result, err := h.discountService.ApplyDiscount(c.Request.Context(), applyParams)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEscalationNotApproved):
			sendError(c, http.StatusConflict, "Escalation is not approved", err)
		case errors.Is(err, services.ErrEscalationMismatch):
			sendError(c, http.StatusConflict, "Request does not match approved escalation", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to apply discount", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// ListTransactions godoc
// @Summary List discount transactions for an employee
// @Tags discounts
// @Produce json
// @Param employee_id query string true "Employee ID"
// @Success 200 {array} TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Router /discounts/transactions [get]
func (h *DiscountHandler) ListTransactions(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid employee ID format", err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	transactions, err := h.queries.ListDiscountTransactionsByEmployee(c.Request.Context(), db.ListDiscountTransactionsByEmployeeParams{
		EmployeeID: employeeID,
		Limit:      int32(limit),
		Offset:     int32(offset),
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list transactions", err)
		return
	}

	responses := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, toTransactionResponse(t))
	}

	sendList(c, responses)
}
