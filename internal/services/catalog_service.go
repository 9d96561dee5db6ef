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

// defaultCommissionRate applies when a category has no active commission rule.
const defaultCommissionRate = 0.05

// CatalogService handles product lookups and the pricing fallback chain used
// by the discount engine. Commission rates are reporting-only and never feed
// an allow/deny decision.
type CatalogService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(queries db.Querier) *CatalogService {
	return &CatalogService{
		queries: queries,
		logger:  logger.Log,
	}
}

// ProductPricing is the resolved price/cost pair for a product.
type ProductPricing struct {
	PriceCents int64
	CostCents  int64
}

// ResolvePricing resolves a product's selling price and cost, falling back
// through retail price and MSRP before treating a value as zero.
func ResolvePricing(p db.Product) ProductPricing {
	var pricing ProductPricing
	switch {
	case p.PriceCents.Valid:
		pricing.PriceCents = p.PriceCents.Int64
	case p.RetailPriceCents.Valid:
		pricing.PriceCents = p.RetailPriceCents.Int64
	case p.MsrpCents.Valid:
		pricing.PriceCents = p.MsrpCents.Int64
	}
	if p.CostCents.Valid {
		pricing.CostCents = p.CostCents.Int64
	}
	return pricing
}

// CommissionRate returns the commission rate for a product category,
// defaulting to 5% when no active rule is configured.
func (s *CatalogService) CommissionRate(ctx context.Context, category string) float64 {
	rule, err := s.queries.GetCommissionRuleByCategory(ctx, category)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("Failed to look up commission rule, using default rate",
				zap.String("category", category),
				zap.Error(err))
		}
		return defaultCommissionRate
	}
	return rule.Rate
}

// GetProduct retrieves a product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, productID uuid.UUID) (db.Product, error) {
	if productID == uuid.Nil {
		return db.Product{}, fmt.Errorf("product ID is required")
	}
	return s.queries.GetProduct(ctx, productID)
}

// CreateProductParams contains parameters for creating a product
type CreateProductParams struct {
	Sku              string
	Name             string
	Category         string
	PriceCents       *int64
	CostCents        *int64
	RetailPriceCents *int64
	MsrpCents        *int64
	Active           bool
}

// CreateProduct creates a new catalog product.
func (s *CatalogService) CreateProduct(ctx context.Context, params CreateProductParams) (db.Product, error) {
	if params.Sku == "" {
		return db.Product{}, fmt.Errorf("product sku is required")
	}
	if params.Name == "" {
		return db.Product{}, fmt.Errorf("product name is required")
	}
	if params.Category == "" {
		return db.Product{}, fmt.Errorf("product category is required")
	}

	product, err := s.queries.CreateProduct(ctx, db.CreateProductParams{
		Sku:              params.Sku,
		Name:             params.Name,
		Category:         params.Category,
		PriceCents:       int8From(params.PriceCents),
		CostCents:        int8From(params.CostCents),
		RetailPriceCents: int8From(params.RetailPriceCents),
		MsrpCents:        int8From(params.MsrpCents),
		Active:           params.Active,
	})
	if err != nil {
		s.logger.Error("Failed to create product",
			zap.String("sku", params.Sku),
			zap.Error(err))
		return db.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("sku", product.Sku))

	return product, nil
}

// ListProducts retrieves a page of catalog products.
func (s *CatalogService) ListProducts(ctx context.Context, limit, offset int32) ([]db.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.queries.ListProducts(ctx, db.ListProductsParams{
		Limit:  limit,
		Offset: offset,
	})
}
