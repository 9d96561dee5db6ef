package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/mocks"
	"github.com/summitretail/pos-api/internal/services"
)

func TestResolvePricing(t *testing.T) {
	tests := []struct {
		name      string
		product   db.Product
		wantPrice int64
		wantCost  int64
	}{
		{
			name: "selling price wins",
			product: db.Product{
				PriceCents:       pgtype.Int8{Int64: 50000, Valid: true},
				RetailPriceCents: pgtype.Int8{Int64: 55000, Valid: true},
				MsrpCents:        pgtype.Int8{Int64: 60000, Valid: true},
				CostCents:        pgtype.Int8{Int64: 40000, Valid: true},
			},
			wantPrice: 50000,
			wantCost:  40000,
		},
		{
			name: "falls back to retail price",
			product: db.Product{
				RetailPriceCents: pgtype.Int8{Int64: 55000, Valid: true},
				MsrpCents:        pgtype.Int8{Int64: 60000, Valid: true},
			},
			wantPrice: 55000,
			wantCost:  0,
		},
		{
			name: "falls back to msrp",
			product: db.Product{
				MsrpCents: pgtype.Int8{Int64: 60000, Valid: true},
			},
			wantPrice: 60000,
			wantCost:  0,
		},
		{
			name:      "no pricing at all",
			product:   db.Product{},
			wantPrice: 0,
			wantCost:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pricing := services.ResolvePricing(tt.product)
			assert.Equal(t, tt.wantPrice, pricing.PriceCents)
			assert.Equal(t, tt.wantCost, pricing.CostCents)
		})
	}
}

func TestCatalogService_CommissionRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewCatalogService(mockQuerier)
	ctx := context.Background()

	mockQuerier.EXPECT().
		GetCommissionRuleByCategory(ctx, "appliances").
		Return(db.CommissionRule{Category: "appliances", Rate: 0.08, Active: true}, nil)
	assert.Equal(t, 0.08, service.CommissionRate(ctx, "appliances"))

	// No rule configured falls back to the default rate.
	mockQuerier.EXPECT().
		GetCommissionRuleByCategory(ctx, "accessories").
		Return(db.CommissionRule{}, pgx.ErrNoRows)
	assert.Equal(t, 0.05, service.CommissionRate(ctx, "accessories"))
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewCatalogService(mockQuerier)
	ctx := context.Background()

	_, err := service.CreateProduct(ctx, services.CreateProductParams{Name: "Fridge", Category: "appliances"})
	assert.ErrorContains(t, err, "sku is required")

	_, err = service.CreateProduct(ctx, services.CreateProductParams{Sku: "FR-100", Category: "appliances"})
	assert.ErrorContains(t, err, "name is required")

	_, err = service.CreateProduct(ctx, services.CreateProductParams{Sku: "FR-100", Name: "Fridge"})
	assert.ErrorContains(t, err, "category is required")
}

func TestCatalogService_CreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewCatalogService(mockQuerier)
	ctx := context.Background()

	mockQuerier.EXPECT().
		CreateProduct(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateProductParams) (db.Product, error) {
			assert.Equal(t, "FR-100", arg.Sku)
			assert.True(t, arg.PriceCents.Valid)
			assert.Equal(t, int64(89900), arg.PriceCents.Int64)
			assert.False(t, arg.MsrpCents.Valid)
			return db.Product{ID: uuid.New(), Sku: arg.Sku, Name: arg.Name, Category: arg.Category}, nil
		})

	price := int64(89900)
	cost := int64(62000)
	product, err := service.CreateProduct(ctx, services.CreateProductParams{
		Sku:        "FR-100",
		Name:       "Frost-Free Refrigerator",
		Category:   "appliances",
		PriceCents: &price,
		CostCents:  &cost,
		Active:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "FR-100", product.Sku)
}

func TestCatalogService_GetProduct_NilID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewCatalogService(mockQuerier)

	_, err := service.GetProduct(context.Background(), uuid.Nil)
	assert.ErrorContains(t, err, "product ID is required")
}
