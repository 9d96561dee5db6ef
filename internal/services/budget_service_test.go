package services_test

import (
	"context"
	"testing"
	"time"

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

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		wantStart string
		wantEnd   string
	}{
		{
			name:      "midweek",
			in:        time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC), // Wednesday
			wantStart: "2025-03-10",
			wantEnd:   "2025-03-16",
		},
		{
			name:      "monday maps to itself",
			in:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			wantStart: "2025-03-10",
			wantEnd:   "2025-03-16",
		},
		{
			name:      "sunday belongs to the preceding monday",
			in:        time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC),
			wantStart: "2025-03-10",
			wantEnd:   "2025-03-16",
		},
		{
			name:      "year boundary",
			in:        time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), // Wednesday
			wantStart: "2024-12-30",
			wantEnd:   "2025-01-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := services.WeekBounds(tt.in)
			assert.Equal(t, tt.wantStart, start.Format("2006-01-02"))
			assert.Equal(t, tt.wantEnd, end.Format("2006-01-02"))
		})
	}
}

func TestRemaining(t *testing.T) {
	b := db.DiscountBudget{TotalBudgetCents: 10000, UsedAmountCents: 9000}
	assert.Equal(t, int64(1000), services.Remaining(b))
}

func TestBudgetService_Initialize_ExplicitTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	tiers := services.NewTierService(mockQuerier)
	service := services.NewBudgetService(mockQuerier, tiers)
	ctx := context.Background()

	employeeID := uuid.New()
	start, end := services.WeekBounds(time.Now())

	mockQuerier.EXPECT().
		CreateDiscountBudget(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateDiscountBudgetParams) error {
			assert.Equal(t, employeeID, arg.EmployeeID)
			assert.Equal(t, start.Format("2006-01-02"), arg.PeriodStart.Time.Format("2006-01-02"))
			assert.Equal(t, end.Format("2006-01-02"), arg.PeriodEnd.Time.Format("2006-01-02"))
			assert.Equal(t, int64(50000), arg.TotalBudgetCents)
			return nil
		})
	mockQuerier.EXPECT().
		GetCurrentDiscountBudget(ctx, gomock.Any()).
		Return(db.DiscountBudget{
			ID:               uuid.New(),
			EmployeeID:       employeeID,
			TotalBudgetCents: 50000,
		}, nil)

	total := int64(50000)
	budget, err := service.Initialize(ctx, employeeID, &total)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), budget.TotalBudgetCents)
}

func TestBudgetService_Initialize_TierDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	tiers := services.NewTierService(mockQuerier)
	service := services.NewBudgetService(mockQuerier, tiers)
	ctx := context.Background()

	employeeID := uuid.New()

	mockQuerier.EXPECT().
		GetEmployee(ctx, employeeID).
		Return(db.Employee{ID: employeeID, Role: "senior"}, nil)
	mockQuerier.EXPECT().
		GetAuthorityTierByRole(ctx, "senior").
		Return(db.AuthorityTier{
			Role:                     "senior",
			DefaultWeeklyBudgetCents: pgtype.Int8{Int64: 25000, Valid: true},
		}, nil)
	mockQuerier.EXPECT().
		CreateDiscountBudget(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateDiscountBudgetParams) error {
			assert.Equal(t, int64(25000), arg.TotalBudgetCents)
			return nil
		})
	mockQuerier.EXPECT().
		GetCurrentDiscountBudget(ctx, gomock.Any()).
		Return(db.DiscountBudget{EmployeeID: employeeID, TotalBudgetCents: 25000}, nil)

	budget, err := service.Initialize(ctx, employeeID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(25000), budget.TotalBudgetCents)
}

func TestBudgetService_Initialize_FallbackWhenNoTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	tiers := services.NewTierService(mockQuerier)
	service := services.NewBudgetService(mockQuerier, tiers)
	ctx := context.Background()

	employeeID := uuid.New()

	mockQuerier.EXPECT().
		GetEmployee(ctx, employeeID).
		Return(db.Employee{ID: employeeID, Role: "contractor"}, nil)
	mockQuerier.EXPECT().
		GetAuthorityTierByRole(ctx, "contractor").
		Return(db.AuthorityTier{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().
		CreateDiscountBudget(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateDiscountBudgetParams) error {
			assert.Equal(t, int64(10000), arg.TotalBudgetCents)
			return nil
		})
	mockQuerier.EXPECT().
		GetCurrentDiscountBudget(ctx, gomock.Any()).
		Return(db.DiscountBudget{EmployeeID: employeeID, TotalBudgetCents: 10000}, nil)

	budget, err := service.Initialize(ctx, employeeID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), budget.TotalBudgetCents)
}

func TestBudgetService_Initialize_IdempotentReRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	tiers := services.NewTierService(mockQuerier)
	service := services.NewBudgetService(mockQuerier, tiers)
	ctx := context.Background()

	employeeID := uuid.New()

	// The insert is a conflict no-op; the re-read returns the original row
	// with its spending intact.
	existing := db.DiscountBudget{
		ID:               uuid.New(),
		EmployeeID:       employeeID,
		TotalBudgetCents: 10000,
		UsedAmountCents:  4200,
	}

	mockQuerier.EXPECT().CreateDiscountBudget(ctx, gomock.Any()).Return(nil)
	mockQuerier.EXPECT().GetCurrentDiscountBudget(ctx, gomock.Any()).Return(existing, nil)

	total := int64(99999)
	budget, err := service.Initialize(ctx, employeeID, &total)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, budget.ID)
	assert.Equal(t, int64(4200), budget.UsedAmountCents)
}

func TestBudgetService_Initialize_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	tiers := services.NewTierService(mockQuerier)
	service := services.NewBudgetService(mockQuerier, tiers)
	ctx := context.Background()

	_, err := service.Initialize(ctx, uuid.Nil, nil)
	assert.ErrorContains(t, err, "employee ID is required")

	negative := int64(-1)
	_, err = service.Initialize(ctx, uuid.New(), &negative)
	assert.ErrorContains(t, err, "must not be negative")
}
