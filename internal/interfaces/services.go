package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/services"
)

// DiscountService validates and applies line-item discounts.
type DiscountService interface {
	ValidateDiscount(ctx context.Context, params services.ValidateDiscountParams) (*services.DiscountDecision, error)
	ApplyDiscount(ctx context.Context, params services.ApplyDiscountParams) (*services.ApplyDiscountResult, error)
}

// TierService resolves and administers authority tier policy.
type TierService interface {
	Resolve(ctx context.Context, role string) (db.AuthorityTier, error)
	ListTiers(ctx context.Context) ([]db.AuthorityTier, error)
	UpdateTier(ctx context.Context, role string, params services.UpdateTierParams) (db.AuthorityTier, error)
}

// BudgetService manages weekly discount spending accounts.
type BudgetService interface {
	GetCurrent(ctx context.Context, employeeID uuid.UUID) (db.DiscountBudget, error)
	Initialize(ctx context.Context, employeeID uuid.UUID, totalCents *int64) (db.DiscountBudget, error)
}

// EscalationService owns the manager review queue.
type EscalationService interface {
	Create(ctx context.Context, params services.CreateEscalationParams) (db.DiscountEscalation, error)
	Approve(ctx context.Context, escalationID, managerID uuid.UUID, notes string) (db.DiscountEscalation, error)
	Deny(ctx context.Context, escalationID, managerID uuid.UUID, reason string) (db.DiscountEscalation, error)
	Get(ctx context.Context, escalationID uuid.UUID) (db.DiscountEscalation, error)
	ListPending(ctx context.Context) ([]db.DiscountEscalation, error)
}

// CatalogService handles product lookups and creation.
type CatalogService interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (db.Product, error)
	CreateProduct(ctx context.Context, params services.CreateProductParams) (db.Product, error)
	ListProducts(ctx context.Context, limit, offset int32) ([]db.Product, error)
}
