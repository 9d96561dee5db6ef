package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/interfaces"
	"github.com/summitretail/pos-api/internal/services"
)

// BudgetHandler handles weekly discount budget operations
type BudgetHandler struct {
	budgetService interfaces.BudgetService
	logger        *zap.Logger
}

// NewBudgetHandler creates a handler with interface dependencies
func NewBudgetHandler(budgetService interfaces.BudgetService, logger *zap.Logger) *BudgetHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// BudgetResponse represents a weekly budget in API responses
type BudgetResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	PeriodStart      string `json:"period_start"`
	PeriodEnd        string `json:"period_end"`
	TotalBudgetCents int64  `json:"total_budget_cents"`
	UsedAmountCents  int64  `json:"used_amount_cents"`
	RemainingCents   int64  `json:"remaining_cents"`
}

// InitializeBudgetRequest represents the request body for creating the current week's budget
type InitializeBudgetRequest struct {
	EmployeeID       string `json:"employee_id" binding:"required"`
	TotalBudgetCents *int64 `json:"total_budget_cents,omitempty"`
}

func toBudgetResponse(b db.DiscountBudget) BudgetResponse {
	return BudgetResponse{
		ID:               b.ID.String(),
		EmployeeID:       b.EmployeeID.String(),
		PeriodStart:      b.PeriodStart.Time.Format("2006-01-02"),
		PeriodEnd:        b.PeriodEnd.Time.Format("2006-01-02"),
		TotalBudgetCents: b.TotalBudgetCents,
		UsedAmountCents:  b.UsedAmountCents,
		RemainingCents:   services.Remaining(b),
	}
}

// GetCurrentBudget godoc
// @Summary Get an employee's budget for the current week
// @Tags budgets
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} BudgetResponse
// @Failure 404 {object} ErrorResponse
// @Router /budgets/{employee_id} [get]
func (h *BudgetHandler) GetCurrentBudget(c *gin.Context) {
	employeeID, ok := parseUUIDParam(c, "employee_id")
	if !ok {
		return
	}

	budget, err := h.budgetService.GetCurrent(c.Request.Context(), employeeID)
	if err != nil {
		handleDBError(c, err, "No budget for current period")
		return
	}

	sendSuccess(c, http.StatusOK, toBudgetResponse(budget))
}

// InitializeBudget godoc
// @Summary Create the current week's budget for an employee
// @Description Idempotent: an existing budget for the period is returned unchanged
// @Tags budgets
// @Accept json
// @Produce json
// @Success 200 {object} BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Router /budgets [post]
func (h *BudgetHandler) InitializeBudget(c *gin.Context) {
	var req InitializeBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid employee ID format", err)
		return
	}

	if req.TotalBudgetCents != nil && *req.TotalBudgetCents < 0 {
		sendError(c, http.StatusBadRequest, "Budget total must not be negative", nil)
		return
	}

	budget, err := h.budgetService.Initialize(c.Request.Context(), employeeID, req.TotalBudgetCents)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to initialize budget", err)
		return
	}

	sendSuccess(c, http.StatusOK, toBudgetResponse(budget))
}
