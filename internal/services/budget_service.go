package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/logger"
)

// fallbackWeeklyBudgetCents is used when neither the caller nor the employee's
// tier specifies a weekly budget total.
const fallbackWeeklyBudgetCents int64 = 10_000

// BudgetService manages per-employee weekly discount spending accounts.
// Rows are created lazily on first use and mutated only inside the apply
// transaction, where the row is locked FOR UPDATE before the debit.
type BudgetService struct {
	queries db.Querier
	tiers   *TierService
	logger  *zap.Logger
}

// NewBudgetService creates a new budget service
func NewBudgetService(queries db.Querier, tiers *TierService) *BudgetService {
	return &BudgetService{
		queries: queries,
		tiers:   tiers,
		logger:  logger.Log,
	}
}

// WeekBounds returns the Monday and Sunday (UTC dates) of the week containing t.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// DateOf truncates a time to a pgtype date in UTC.
func DateOf(t time.Time) pgtype.Date {
	t = t.UTC()
	return pgtype.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

// GetCurrent returns the budget row whose period contains today.
// A missing row surfaces as pgx.ErrNoRows.
func (s *BudgetService) GetCurrent(ctx context.Context, employeeID uuid.UUID) (db.DiscountBudget, error) {
	return s.queries.GetCurrentDiscountBudget(ctx, db.GetCurrentDiscountBudgetParams{
		EmployeeID: employeeID,
		AsOf:       DateOf(time.Now()),
	})
}

// Remaining returns the unspent balance of a budget row.
func Remaining(b db.DiscountBudget) int64 {
	return b.TotalBudgetCents - b.UsedAmountCents
}

// Initialize lazily creates the current week's budget row for an employee.
// The insert is idempotent (ON CONFLICT DO NOTHING on employee/period) so
// concurrent calls never create duplicate rows; the row is re-read afterwards
// and the second caller sees the first caller's row unchanged.
// When totalCents is nil the total comes from the employee's tier default.
func (s *BudgetService) Initialize(ctx context.Context, employeeID uuid.UUID, totalCents *int64) (db.DiscountBudget, error) {
	if employeeID == uuid.Nil {
		return db.DiscountBudget{}, fmt.Errorf("employee ID is required")
	}

	total := fallbackWeeklyBudgetCents
	if totalCents != nil {
		total = *totalCents
	} else {
		tierTotal, err := s.defaultBudgetForEmployee(ctx, employeeID)
		if err != nil {
			return db.DiscountBudget{}, err
		}
		if tierTotal != nil {
			total = *tierTotal
		}
	}
	if total < 0 {
		return db.DiscountBudget{}, fmt.Errorf("budget total must not be negative")
	}

	start, end := WeekBounds(time.Now())
	err := s.queries.CreateDiscountBudget(ctx, db.CreateDiscountBudgetParams{
		EmployeeID:       employeeID,
		PeriodStart:      DateOf(start),
		PeriodEnd:        DateOf(end),
		TotalBudgetCents: total,
	})
	if err != nil {
		s.logger.Error("Failed to create discount budget",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err))
		return db.DiscountBudget{}, fmt.Errorf("failed to create budget: %w", err)
	}

	// The insert may have been a no-op on conflict; re-read either way so the
	// caller always gets the committed row for this period.
	budget, err := s.GetCurrent(ctx, employeeID)
	if err != nil {
		return db.DiscountBudget{}, fmt.Errorf("failed to read budget after create: %w", err)
	}

	return budget, nil
}

// defaultBudgetForEmployee resolves the tier default for the employee's role.
// Returns nil when no tier or no default is configured.
func (s *BudgetService) defaultBudgetForEmployee(ctx context.Context, employeeID uuid.UUID) (*int64, error) {
	employee, err := s.queries.GetEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("employee not found: %w", err)
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}

	tier, err := s.tiers.Resolve(ctx, employee.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve tier: %w", err)
	}

	if !tier.DefaultWeeklyBudgetCents.Valid {
		return nil, nil
	}
	v := tier.DefaultWeeklyBudgetCents.Int64
	return &v, nil
}
