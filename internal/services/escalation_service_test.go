package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/mocks"
	"github.com/summitretail/pos-api/internal/services"
)

func newEscalationService(mockQuerier *mocks.MockQuerier) *services.EscalationService {
	tiers := services.NewTierService(mockQuerier)
	return services.NewEscalationService(mockQuerier, tiers, nil)
}

func TestEscalationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newEscalationService(mockQuerier)
	ctx := context.Background()

	employeeID := uuid.New()
	productID := uuid.New()

	mockQuerier.EXPECT().
		CreateDiscountEscalation(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateDiscountEscalationParams) (db.DiscountEscalation, error) {
			assert.Equal(t, employeeID, arg.EmployeeID)
			assert.Equal(t, productID, arg.ProductID)
			assert.Equal(t, float64(15), arg.RequestedPct)
			assert.Equal(t, "exceeds tier limit", arg.Reason)
			return db.DiscountEscalation{
				ID:           uuid.New(),
				EmployeeID:   arg.EmployeeID,
				ProductID:    arg.ProductID,
				RequestedPct: arg.RequestedPct,
				Reason:       arg.Reason,
				Status:       db.EscalationStatusPending,
			}, nil
		})

	esc, err := service.Create(ctx, services.CreateEscalationParams{
		EmployeeID:   employeeID,
		ProductID:    productID,
		RequestedPct: 15,
		Reason:       "exceeds tier limit",
	})
	require.NoError(t, err)
	assert.Equal(t, db.EscalationStatusPending, esc.Status)
}

func TestEscalationService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newEscalationService(mockQuerier)
	ctx := context.Background()

	_, err := service.Create(ctx, services.CreateEscalationParams{ProductID: uuid.New(), Reason: "x"})
	assert.ErrorContains(t, err, "employee ID is required")

	_, err = service.Create(ctx, services.CreateEscalationParams{EmployeeID: uuid.New(), Reason: "x"})
	assert.ErrorContains(t, err, "product ID is required")

	_, err = service.Create(ctx, services.CreateEscalationParams{EmployeeID: uuid.New(), ProductID: uuid.New()})
	assert.ErrorContains(t, err, "reason is required")
}

func expectReviewer(mockQuerier *mocks.MockQuerier, managerID uuid.UUID, canReview bool) {
	mockQuerier.EXPECT().
		GetEmployee(gomock.Any(), managerID).
		Return(db.Employee{ID: managerID, Role: "manager"}, nil)
	mockQuerier.EXPECT().
		GetAuthorityTierByRole(gomock.Any(), "manager").
		Return(db.AuthorityTier{Role: "manager", CanReviewEscalations: canReview}, nil)
}

func TestEscalationService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newEscalationService(mockQuerier)
	ctx := context.Background()

	escalationID := uuid.New()
	managerID := uuid.New()

	expectReviewer(mockQuerier, managerID, true)
	mockQuerier.EXPECT().
		ResolveDiscountEscalation(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.ResolveDiscountEscalationParams) (db.DiscountEscalation, error) {
			assert.Equal(t, escalationID, arg.ID)
			assert.Equal(t, db.EscalationStatusApproved, arg.Status)
			assert.True(t, arg.ReviewedBy.Valid)
			assert.Equal(t, "price match ok", arg.ReviewNotes.String)
			return db.DiscountEscalation{ID: escalationID, Status: db.EscalationStatusApproved}, nil
		})

	esc, err := service.Approve(ctx, escalationID, managerID, "price match ok")
	require.NoError(t, err)
	assert.Equal(t, db.EscalationStatusApproved, esc.Status)
}

func TestEscalationService_Deny(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newEscalationService(mockQuerier)
	ctx := context.Background()

	escalationID := uuid.New()
	managerID := uuid.New()

	expectReviewer(mockQuerier, managerID, true)
	mockQuerier.EXPECT().
		ResolveDiscountEscalation(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.ResolveDiscountEscalationParams) (db.DiscountEscalation, error) {
			assert.Equal(t, db.EscalationStatusDenied, arg.Status)
			return db.DiscountEscalation{ID: escalationID, Status: db.EscalationStatusDenied}, nil
		})

	esc, err := service.Deny(ctx, escalationID, managerID, "margin too thin")
	require.NoError(t, err)
	assert.Equal(t, db.EscalationStatusDenied, esc.Status)
}

func TestEscalationService_Resolve_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newEscalationService(mockQuerier)
	ctx := context.Background()

	managerID := uuid.New()

	// The conditional update matched no pending row: another reviewer already
	// resolved it. The loser gets a typed error, never a second transition.
	expectReviewer(mockQuerier, managerID, true)
	mockQuerier.EXPECT().
		ResolveDiscountEscalation(ctx, gomock.Any()).
		Return(db.DiscountEscalation{}, pgx.ErrNoRows)

	_, err := service.Approve(ctx, uuid.New(), managerID, "")
	assert.ErrorIs(t, err, services.ErrEscalationNotPending)
}

func TestEscalationService_Resolve_UnauthorizedReviewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newEscalationService(mockQuerier)
	ctx := context.Background()

	managerID := uuid.New()
	mockQuerier.EXPECT().
		GetEmployee(ctx, managerID).
		Return(db.Employee{ID: managerID, Role: "staff"}, nil)
	mockQuerier.EXPECT().
		GetAuthorityTierByRole(ctx, "staff").
		Return(db.AuthorityTier{Role: "staff", CanReviewEscalations: false}, nil)

	_, err := service.Approve(ctx, uuid.New(), managerID, "")
	assert.ErrorIs(t, err, services.ErrNotAuthorizedToReview)
}

func TestEscalationService_Resolve_UnknownReviewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newEscalationService(mockQuerier)
	ctx := context.Background()

	managerID := uuid.New()
	mockQuerier.EXPECT().
		GetEmployee(ctx, managerID).
		Return(db.Employee{}, pgx.ErrNoRows)

	_, err := service.Deny(ctx, uuid.New(), managerID, "")
	assert.ErrorIs(t, err, services.ErrNotAuthorizedToReview)
}

func TestEscalationService_ListPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newEscalationService(mockQuerier)
	ctx := context.Background()

	mockQuerier.EXPECT().
		ListPendingDiscountEscalations(ctx).
		Return([]db.DiscountEscalation{
			{ID: uuid.New(), Status: db.EscalationStatusPending},
			{ID: uuid.New(), Status: db.EscalationStatusPending},
		}, nil)

	pending, err := service.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}
