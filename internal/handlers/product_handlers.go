package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/interfaces"
	"github.com/summitretail/pos-api/internal/services"
)

// ProductHandler handles catalog product operations
type ProductHandler struct {
	catalogService interfaces.CatalogService
	logger         *zap.Logger
}

// NewProductHandler creates a handler with interface dependencies
func NewProductHandler(catalogService interfaces.CatalogService, logger *zap.Logger) *ProductHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &ProductHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ProductResponse represents a catalog product in API responses
type ProductResponse struct {
	ID               string `json:"id"`
	Sku              string `json:"sku"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	PriceCents       *int64 `json:"price_cents,omitempty"`
	CostCents        *int64 `json:"cost_cents,omitempty"`
	RetailPriceCents *int64 `json:"retail_price_cents,omitempty"`
	MsrpCents        *int64 `json:"msrp_cents,omitempty"`
	Active           bool   `json:"active"`
	CreatedAt        int64  `json:"created_at"`
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Sku              string `json:"sku" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Category         string `json:"category" binding:"required"`
	PriceCents       *int64 `json:"price_cents,omitempty"`
	CostCents        *int64 `json:"cost_cents,omitempty"`
	RetailPriceCents *int64 `json:"retail_price_cents,omitempty"`
	MsrpCents        *int64 `json:"msrp_cents,omitempty"`
	Active           bool   `json:"active"`
}

func toProductResponse(p db.Product) ProductResponse {
	resp := ProductResponse{
		ID:        p.ID.String(),
		Sku:       p.Sku,
		Name:      p.Name,
		Category:  p.Category,
		Active:    p.Active,
		CreatedAt: p.CreatedAt.Time.Unix(),
	}
	if p.PriceCents.Valid {
		v := p.PriceCents.Int64
		resp.PriceCents = &v
	}
	if p.CostCents.Valid {
		v := p.CostCents.Int64
		resp.CostCents = &v
	}
	if p.RetailPriceCents.Valid {
		v := p.RetailPriceCents.Int64
		resp.RetailPriceCents = &v
	}
	if p.MsrpCents.Valid {
		v := p.MsrpCents.Int64
		resp.MsrpCents = &v
	}
	return resp
}

// GetProduct godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{product_id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		handleDBError(c, err, "Product not found")
		return
	}

	sendSuccess(c, http.StatusOK, toProductResponse(product))
}

// CreateProduct godoc
// @Summary Create a catalog product
// @Tags products
// @Accept json
// @Produce json
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), services.CreateProductParams{
		Sku:              req.Sku,
		Name:             req.Name,
		Category:         req.Category,
		PriceCents:       req.PriceCents,
		CostCents:        req.CostCents,
		RetailPriceCents: req.RetailPriceCents,
		MsrpCents:        req.MsrpCents,
		Active:           req.Active,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toProductResponse(product))
}

// ListProducts godoc
// @Summary List catalog products
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	products, err := h.catalogService.ListProducts(c.Request.Context(), int32(limit), int32(offset))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list products", err)
		return
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}

	sendList(c, responses)
}
