package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/logger"
)

// Decision reasons surfaced to the point-of-sale UI. Policy denials are data,
// not errors; the reason plus the decision figures explain the refusal without
// a second round trip.
const (
	ReasonWithinAuthority  = "within discount authority"
	ReasonUnrestrictedTier = "unrestricted tier"
	ReasonManagerApproved  = "manager approved"
	ReasonNoTier           = "no tier configured for role"
	ReasonEmployeeNotFound = "employee not found"
	ReasonProductNotFound  = "product not found"
	ReasonBudgetExhausted  = "budget exhausted"
	ReasonBelowCostFloor   = "below cost floor"
	ReasonExceedsTierLimit = "exceeds tier limit"
	ReasonLowMargin        = "low margin - manager approval required"
)

var (
	// ErrEscalationNotApproved is returned by apply-as-approved when the
	// referenced escalation is not in the approved state.
	ErrEscalationNotApproved = errors.New("escalation is not approved")

	// ErrEscalationMismatch is returned when an apply-as-approved request does
	// not match the employee, product, or percentage the escalation was
	// approved for.
	ErrEscalationMismatch = errors.New("request does not match approved escalation")

	// errBudgetExhaustedInTx aborts the apply transaction when the locked
	// budget re-check fails.
	errBudgetExhaustedInTx = errors.New("budget exhausted")
)

// DiscountService is the discount authority engine: it validates proposed
// line-item discounts against tier policy and budget, and atomically commits
// approved ones (transaction record + budget debit in one unit of work).
type DiscountService struct {
	queries     db.Querier
	runner      TxRunner
	calc        *MarginCalculator
	tiers       *TierService
	budgets     *BudgetService
	catalog     *CatalogService
	escalations *EscalationService
	logger      *zap.Logger
}

// NewDiscountService creates a new discount service
func NewDiscountService(
	queries db.Querier,
	runner TxRunner,
	tiers *TierService,
	budgets *BudgetService,
	catalog *CatalogService,
	escalations *EscalationService,
) *DiscountService {
	return &DiscountService{
		queries:     queries,
		runner:      runner,
		calc:        NewMarginCalculator(),
		tiers:       tiers,
		budgets:     budgets,
		catalog:     catalog,
		escalations: escalations,
		logger:      logger.Log,
	}
}

// ValidateDiscountParams contains parameters for validating a discount
type ValidateDiscountParams struct {
	EmployeeID  uuid.UUID
	ProductID   uuid.UUID
	DiscountPct float64
	// PriceCents and CostCents override the catalog resolution when the caller
	// already negotiated a price (quote line overrides).
	PriceCents *int64
	CostCents  *int64
}

// DiscountDecision is the structured outcome of validating a discount.
// Money figures are reported in whole cents, percentages to one decimal place.
type DiscountDecision struct {
	Allowed               bool    `json:"allowed"`
	Reason                string  `json:"reason"`
	MarginBeforePct       float64 `json:"margin_before_pct"`
	MarginAfterPct        float64 `json:"margin_after_pct"`
	MaxAllowedPct         float64 `json:"max_allowed_pct"`
	DiscountAmountCents   int64   `json:"discount_amount_cents"`
	DiscountedPriceCents  int64   `json:"discounted_price_cents"`
	CommissionImpactCents int64   `json:"commission_impact_cents"`
	RemainingBudgetCents  *int64  `json:"remaining_budget_cents,omitempty"`
	EscalationRequired    bool    `json:"escalation_required"`
	EscalationReason      string  `json:"escalation_reason,omitempty"`
}

// ApplyDiscountParams contains parameters for applying a discount
type ApplyDiscountParams struct {
	ValidateDiscountParams
	// EscalationID references an approved escalation for apply-as-approved:
	// policy checks are bypassed, the budget debit is not.
	EscalationID *uuid.UUID
}

// ApplyDiscountResult is the outcome of an apply attempt.
type ApplyDiscountResult struct {
	Approved        bool             `json:"approved"`
	Decision        DiscountDecision `json:"decision"`
	TransactionID   *uuid.UUID       `json:"transaction_id,omitempty"`
	EscalationID    *uuid.UUID       `json:"escalation_id,omitempty"`
	ManagerApproved bool             `json:"manager_approved"`
}

// discountRequest is the resolved input to a decision.
type discountRequest struct {
	employee       db.Employee
	product        db.Product
	priceCents     int64
	costCents      int64
	commissionRate float64
}

// loadRequest resolves employee, product, pricing, and commission rate.
// Not-found conditions come back as a terminal (non-escalatable) decision.
func (s *DiscountService) loadRequest(ctx context.Context, params ValidateDiscountParams) (*discountRequest, *DiscountDecision, error) {
	employee, err := s.queries.GetEmployee(ctx, params.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &DiscountDecision{Allowed: false, Reason: ReasonEmployeeNotFound}, nil
		}
		return nil, nil, fmt.Errorf("failed to load employee: %w", err)
	}

	product, err := s.queries.GetProduct(ctx, params.ProductID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &DiscountDecision{Allowed: false, Reason: ReasonProductNotFound}, nil
		}
		return nil, nil, fmt.Errorf("failed to load product: %w", err)
	}

	pricing := ResolvePricing(product)
	if params.PriceCents != nil {
		pricing.PriceCents = *params.PriceCents
	}
	if params.CostCents != nil {
		pricing.CostCents = *params.CostCents
	}

	return &discountRequest{
		employee:       employee,
		product:        product,
		priceCents:     pricing.PriceCents,
		costCents:      pricing.CostCents,
		commissionRate: s.catalog.CommissionRate(ctx, product.Category),
	}, nil, nil
}

// ValidateDiscount runs the full authority check for a proposed discount.
// Check order is policy, not incident: budget and cost-floor violations are
// harder stops than percentage ceilings, so they are tested first.
func (s *DiscountService) ValidateDiscount(ctx context.Context, params ValidateDiscountParams) (*DiscountDecision, error) {
	req, terminal, err := s.loadRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	if terminal != nil {
		return terminal, nil
	}

	return s.validateLoaded(ctx, req, params)
}

// validateLoaded runs the policy checks for an already-resolved request.
func (s *DiscountService) validateLoaded(ctx context.Context, req *discountRequest, params ValidateDiscountParams) (*DiscountDecision, error) {
	tier, err := s.tiers.Resolve(ctx, req.employee.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			decision := s.computeFigures(req, params.DiscountPct)
			decision.Reason = ReasonNoTier
			decision.EscalationRequired = true
			decision.EscalationReason = ReasonNoTier
			return decision, nil
		}
		return nil, fmt.Errorf("failed to resolve tier: %w", err)
	}

	var remaining *int64
	budget, err := s.budgets.GetCurrent(ctx, params.EmployeeID)
	switch {
	case err == nil:
		r := Remaining(budget)
		remaining = &r
	case errors.Is(err, pgx.ErrNoRows):
		// No budget row: legacy behavior treats the employee as unlimited.
	default:
		return nil, fmt.Errorf("failed to read budget: %w", err)
	}

	decision := s.evaluate(tier, req, params.DiscountPct, remaining)

	s.logger.Debug("Discount validated",
		zap.String("employee_id", params.EmployeeID.String()),
		zap.String("product_id", params.ProductID.String()),
		zap.Float64("discount_pct", params.DiscountPct),
		zap.Bool("allowed", decision.Allowed),
		zap.String("reason", decision.Reason))

	return decision, nil
}

// computeFigures fills in the reporting numbers shared by every decision path.
func (s *DiscountService) computeFigures(req *discountRequest, discountPct float64) *DiscountDecision {
	pct := decimal.NewFromFloat(discountPct)
	discounted := s.calc.DiscountedPrice(req.priceCents, pct)
	commission := s.calc.CommissionImpact(decimal.NewFromInt(req.priceCents), discounted, req.commissionRate)

	// Amount is the complement of the rounded final price so the two always
	// sum to the original price exactly.
	discountedCents := RoundCents(discounted)
	return &DiscountDecision{
		MarginBeforePct:       RoundPct(s.calc.MarginBeforePct(req.priceCents, req.costCents)),
		MarginAfterPct:        RoundPct(s.calc.MarginAfterPct(req.priceCents, req.costCents, pct)),
		DiscountAmountCents:   req.priceCents - discountedCents,
		DiscountedPriceCents:  discountedCents,
		CommissionImpactCents: RoundCents(commission),
	}
}

// evaluate applies the ordered policy checks for a resolved tier.
func (s *DiscountService) evaluate(tier db.AuthorityTier, req *discountRequest, discountPct float64, remaining *int64) *DiscountDecision {
	decision := s.computeFigures(req, discountPct)
	decision.RemainingBudgetCents = remaining

	if tier.IsUnrestricted {
		decision.Allowed = true
		decision.Reason = ReasonUnrestrictedTier
		decision.MaxAllowedPct = 100
		return decision
	}

	pct := decimal.NewFromFloat(discountPct)
	marginBefore := s.calc.MarginBeforePct(req.priceCents, req.costCents)
	isHighMargin := marginBefore.GreaterThanOrEqual(decimal.NewFromFloat(tier.HighMarginThresholdPct))
	maxAllowed := tier.MaxDiscountPctStandard
	if isHighMargin {
		maxAllowed = tier.MaxDiscountPctHighMargin
	}
	decision.MaxAllowedPct = maxAllowed

	deny := func(reason string) *DiscountDecision {
		decision.Allowed = false
		decision.Reason = reason
		decision.EscalationRequired = true
		decision.EscalationReason = reason
		return decision
	}

	if remaining != nil && decision.DiscountAmountCents > *remaining {
		return deny(ReasonBudgetExhausted)
	}

	discounted := s.calc.DiscountedPrice(req.priceCents, pct)
	costFloor := s.calc.CostFloorPrice(req.costCents, tier.MinMarginFloorPct)
	if discounted.LessThan(costFloor) {
		return deny(ReasonBelowCostFloor)
	}

	if discountPct > maxAllowed {
		return deny(ReasonExceedsTierLimit)
	}

	if tier.RequiresApprovalBelowMarginPct.Valid {
		marginAfter := s.calc.MarginAfterPct(req.priceCents, req.costCents, pct)
		if marginAfter.LessThan(decimal.NewFromFloat(tier.RequiresApprovalBelowMarginPct.Float64)) {
			return deny(ReasonLowMargin)
		}
	}

	decision.Allowed = true
	decision.Reason = ReasonWithinAuthority
	return decision
}

// ApplyDiscount atomically turns an allowed decision into a persisted fact:
// one transaction locks the budget row, re-checks the remaining balance
// against the locked read, records the discount transaction, and debits the
// budget. A denial with escalation required opens a review case instead; a
// plain denial has no side effects.
func (s *DiscountService) ApplyDiscount(ctx context.Context, params ApplyDiscountParams) (*ApplyDiscountResult, error) {
	req, terminal, err := s.loadRequest(ctx, params.ValidateDiscountParams)
	if err != nil {
		return nil, err
	}
	if terminal != nil {
		return &ApplyDiscountResult{Approved: false, Decision: *terminal}, nil
	}

	var (
		decision        *DiscountDecision
		managerApproved bool
		approvedBy      pgtype.UUID
	)

	if params.EscalationID != nil {
		esc, err := s.queries.GetDiscountEscalation(ctx, *params.EscalationID)
		if err != nil {
			return nil, fmt.Errorf("failed to load escalation: %w", err)
		}
		if esc.Status != db.EscalationStatusApproved {
			return nil, ErrEscalationNotApproved
		}
		if esc.EmployeeID != params.EmployeeID || esc.ProductID != params.ProductID || esc.RequestedPct != params.DiscountPct {
			return nil, ErrEscalationMismatch
		}

		decision = s.computeFigures(req, params.DiscountPct)
		decision.Allowed = true
		decision.Reason = ReasonManagerApproved
		managerApproved = true
		approvedBy = esc.ReviewedBy
	} else {
		decision, err = s.validateLoaded(ctx, req, params.ValidateDiscountParams)
		if err != nil {
			return nil, err
		}
		if !decision.Allowed {
			return s.handleDenied(ctx, params.ValidateDiscountParams, decision)
		}
	}

	var txn db.DiscountTransaction
	errTx := s.runner.RunTx(ctx, func(q db.Querier) error {
		var budgetID pgtype.UUID

		budget, err := q.GetCurrentDiscountBudgetForUpdate(ctx, db.GetCurrentDiscountBudgetForUpdateParams{
			EmployeeID: params.EmployeeID,
			AsOf:       DateOf(time.Now()),
		})
		switch {
		case err == nil:
			// Re-check against the locked row: the decision may be stale by
			// the time we get here, and two concurrent applies must never
			// both pass a near-exhausted budget.
			if decision.DiscountAmountCents > Remaining(budget) {
				return errBudgetExhaustedInTx
			}
			budgetID = uuidFrom(budget.ID)
		case errors.Is(err, pgx.ErrNoRows):
			// No budget row: debit skipped, legacy unlimited behavior.
		default:
			return fmt.Errorf("failed to lock budget: %w", err)
		}

		txn, err = q.CreateDiscountTransaction(ctx, db.CreateDiscountTransactionParams{
			EmployeeID:            params.EmployeeID,
			ProductID:             params.ProductID,
			BudgetID:              budgetID,
			OriginalPriceCents:    req.priceCents,
			CostCents:             req.costCents,
			DiscountPct:           params.DiscountPct,
			DiscountAmountCents:   decision.DiscountAmountCents,
			FinalPriceCents:       decision.DiscountedPriceCents,
			MarginBeforePct:       decision.MarginBeforePct,
			MarginAfterPct:        decision.MarginAfterPct,
			CommissionImpactCents: decision.CommissionImpactCents,
			ManagerApproved:       managerApproved,
			ApprovedBy:            approvedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to record discount transaction: %w", err)
		}

		if budgetID.Valid {
			if _, err := q.AddToDiscountBudgetUsed(ctx, db.AddToDiscountBudgetUsedParams{
				ID:          budget.ID,
				AmountCents: decision.DiscountAmountCents,
			}); err != nil {
				return fmt.Errorf("failed to debit budget: %w", err)
			}
		}

		return nil
	})
	if errTx != nil {
		if errors.Is(errTx, errBudgetExhaustedInTx) {
			decision.Allowed = false
			decision.Reason = ReasonBudgetExhausted
			decision.EscalationRequired = true
			decision.EscalationReason = ReasonBudgetExhausted
			return s.handleDenied(ctx, params.ValidateDiscountParams, decision)
		}
		return nil, errTx
	}

	s.logger.Info("Discount applied",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("employee_id", params.EmployeeID.String()),
		zap.Float64("discount_pct", params.DiscountPct),
		zap.Int64("discount_amount_cents", decision.DiscountAmountCents),
		zap.Bool("manager_approved", managerApproved))

	txnID := txn.ID
	return &ApplyDiscountResult{
		Approved:        true,
		Decision:        *decision,
		TransactionID:   &txnID,
		ManagerApproved: managerApproved,
	}, nil
}

// handleDenied opens a review case for escalatable denials and returns the
// not-approved result. Plain denials return with no side effects.
func (s *DiscountService) handleDenied(ctx context.Context, params ValidateDiscountParams, decision *DiscountDecision) (*ApplyDiscountResult, error) {
	result := &ApplyDiscountResult{Approved: false, Decision: *decision}
	if !decision.EscalationRequired {
		return result, nil
	}

	esc, err := s.escalations.Create(ctx, CreateEscalationParams{
		EmployeeID:            params.EmployeeID,
		ProductID:             params.ProductID,
		RequestedPct:          params.DiscountPct,
		MarginAfterPct:        decision.MarginAfterPct,
		CommissionImpactCents: decision.CommissionImpactCents,
		Reason:                decision.Reason,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open escalation: %w", err)
	}

	escID := esc.ID
	result.EscalationID = &escID
	return result, nil
}
