package services

import (
	"github.com/shopspring/decimal"
)

// MarginCalculator handles all margin and pricing math for discount decisions.
// All methods are pure: money is carried as integer cents, intermediate values
// stay in decimal form and are only rounded at the reporting boundary
// (RoundCents / RoundPct) so chained calculations never compound rounding error.
type MarginCalculator struct{}

// NewMarginCalculator creates a new margin calculator
func NewMarginCalculator() *MarginCalculator {
	return &MarginCalculator{}
}

var oneHundred = decimal.NewFromInt(100)

// MarginBeforePct returns (price - cost) / price * 100.
// Defined as 0 when price is not positive.
func (mc *MarginCalculator) MarginBeforePct(priceCents, costCents int64) decimal.Decimal {
	if priceCents <= 0 {
		return decimal.Zero
	}
	price := decimal.NewFromInt(priceCents)
	cost := decimal.NewFromInt(costCents)
	return price.Sub(cost).Div(price).Mul(oneHundred)
}

// DiscountedPrice returns price * (1 - pct/100) in unrounded cents.
func (mc *MarginCalculator) DiscountedPrice(priceCents int64, pct decimal.Decimal) decimal.Decimal {
	price := decimal.NewFromInt(priceCents)
	return price.Mul(decimal.NewFromInt(1).Sub(pct.Div(oneHundred)))
}

// MarginAfterPct returns the margin of the discounted price, still normalized
// against the original price as denominator. Margin-after is measured relative
// to original price so floor comparisons stay consistent across discount sizes.
func (mc *MarginCalculator) MarginAfterPct(priceCents, costCents int64, pct decimal.Decimal) decimal.Decimal {
	if priceCents <= 0 {
		return decimal.Zero
	}
	price := decimal.NewFromInt(priceCents)
	cost := decimal.NewFromInt(costCents)
	discounted := mc.DiscountedPrice(priceCents, pct)
	return discounted.Sub(cost).Div(price).Mul(oneHundred)
}

// CostFloorPrice returns cost * (1 + minMarginFloorPct/100) in unrounded cents:
// the minimum sale price that keeps margin at or above the tier's floor.
func (mc *MarginCalculator) CostFloorPrice(costCents int64, minMarginFloorPct float64) decimal.Decimal {
	cost := decimal.NewFromInt(costCents)
	floor := decimal.NewFromFloat(minMarginFloorPct)
	return cost.Mul(decimal.NewFromInt(1).Add(floor.Div(oneHundred)))
}

// DiscountAmount returns price * pct/100 in unrounded cents.
func (mc *MarginCalculator) DiscountAmount(priceCents int64, pct decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(priceCents).Mul(pct.Div(oneHundred))
}

// CommissionImpact returns (priceAfter - priceBefore) * commissionRate:
// negative for a discount, since the commissionable amount shrinks.
func (mc *MarginCalculator) CommissionImpact(priceBefore, priceAfter decimal.Decimal, commissionRate float64) decimal.Decimal {
	return priceAfter.Sub(priceBefore).Mul(decimal.NewFromFloat(commissionRate))
}

// RoundCents rounds a decimal cent amount to whole cents for reporting.
func RoundCents(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// RoundPct rounds a percentage to one decimal place for reporting.
func RoundPct(d decimal.Decimal) float64 {
	f, _ := d.Round(1).Float64()
	return f
}
