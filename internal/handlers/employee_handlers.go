package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/services"
)

// EmployeeHandler handles employee identity operations
type EmployeeHandler struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewEmployeeHandler creates a handler with interface dependencies
func NewEmployeeHandler(queries db.Querier, logger *zap.Logger) *EmployeeHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &EmployeeHandler{
		queries: queries,
		logger:  logger,
	}
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"created_at"`
}

// CreateEmployeeRequest represents the request body for creating an employee
type CreateEmployeeRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Active   bool   `json:"active"`
}

func toEmployeeResponse(e db.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID.String(),
		Email:     e.Email,
		FullName:  e.FullName,
		Role:      e.Role,
		Active:    e.Active,
		CreatedAt: e.CreatedAt.Time.Unix(),
	}
}

// GetEmployee godoc
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} EmployeeResponse
// @Failure 404 {object} ErrorResponse
// @Router /employees/{employee_id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employeeID, ok := parseUUIDParam(c, "employee_id")
	if !ok {
		return
	}

	employee, err := h.queries.GetEmployee(c.Request.Context(), employeeID)
	if err != nil {
		handleDBError(c, err, "Employee not found")
		return
	}

	sendSuccess(c, http.StatusOK, toEmployeeResponse(employee))
}

// CreateEmployee godoc
// @Summary Create an employee
// @Description Role labels are normalized into the tier vocabulary on write
// @Tags employees
// @Accept json
// @Produce json
// @Success 201 {object} EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	employee, err := h.queries.CreateEmployee(c.Request.Context(), db.CreateEmployeeParams{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     services.NormalizeRole(req.Role),
		Active:   req.Active,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create employee", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toEmployeeResponse(employee))
}
