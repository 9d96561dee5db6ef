package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/summitretail/pos-api/internal/logger"
	"github.com/summitretail/pos-api/internal/services"
)

func init() {
	logger.InitLogger("test")
}

func TestMarginCalculator_MarginBeforePct(t *testing.T) {
	mc := services.NewMarginCalculator()

	tests := []struct {
		name       string
		priceCents int64
		costCents  int64
		want       float64
	}{
		{name: "standard margin", priceCents: 50000, costCents: 40000, want: 20},
		{name: "high margin", priceCents: 50000, costCents: 25000, want: 50},
		{name: "zero cost", priceCents: 50000, costCents: 0, want: 100},
		{name: "zero price", priceCents: 0, costCents: 40000, want: 0},
		{name: "negative price", priceCents: -100, costCents: 40000, want: 0},
		{name: "cost above price", priceCents: 40000, costCents: 50000, want: -25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.RoundPct(mc.MarginBeforePct(tt.priceCents, tt.costCents))
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestMarginCalculator_DiscountedPrice(t *testing.T) {
	mc := services.NewMarginCalculator()

	got := mc.DiscountedPrice(50000, decimal.NewFromInt(15))
	assert.Equal(t, int64(42500), services.RoundCents(got))

	got = mc.DiscountedPrice(50000, decimal.NewFromInt(0))
	assert.Equal(t, int64(50000), services.RoundCents(got))

	got = mc.DiscountedPrice(50000, decimal.NewFromInt(100))
	assert.Equal(t, int64(0), services.RoundCents(got))
}

func TestMarginCalculator_MarginAfterPct(t *testing.T) {
	mc := services.NewMarginCalculator()

	// Margin after is normalized against the original price: a 20% discount
	// on a 50% margin item lands at 30%, not 37.5%.
	got := services.RoundPct(mc.MarginAfterPct(50000, 25000, decimal.NewFromInt(20)))
	assert.InDelta(t, 30.0, got, 0.001)

	// 15% discount on a 20% margin item leaves 5%.
	got = services.RoundPct(mc.MarginAfterPct(50000, 40000, decimal.NewFromInt(15)))
	assert.InDelta(t, 5.0, got, 0.001)

	// Discounting below cost goes negative.
	got = services.RoundPct(mc.MarginAfterPct(50000, 40000, decimal.NewFromInt(30)))
	assert.InDelta(t, -10.0, got, 0.001)

	assert.True(t, mc.MarginAfterPct(0, 100, decimal.NewFromInt(10)).IsZero())
}

func TestMarginCalculator_CostFloorPrice(t *testing.T) {
	mc := services.NewMarginCalculator()

	got := mc.CostFloorPrice(40000, 5)
	assert.Equal(t, int64(42000), services.RoundCents(got))

	got = mc.CostFloorPrice(40000, 0)
	assert.Equal(t, int64(40000), services.RoundCents(got))
}

func TestMarginCalculator_DiscountAmount(t *testing.T) {
	mc := services.NewMarginCalculator()

	got := mc.DiscountAmount(50000, decimal.NewFromInt(15))
	assert.Equal(t, int64(7500), services.RoundCents(got))
}

func TestMarginCalculator_CommissionImpact(t *testing.T) {
	mc := services.NewMarginCalculator()

	// A discount shrinks the commissionable amount, so impact is negative.
	got := mc.CommissionImpact(decimal.NewFromInt(50000), decimal.NewFromInt(42500), 0.05)
	assert.Equal(t, int64(-375), services.RoundCents(got))

	got = mc.CommissionImpact(decimal.NewFromInt(50000), decimal.NewFromInt(50000), 0.05)
	assert.Equal(t, int64(0), services.RoundCents(got))
}

func TestRoundPct(t *testing.T) {
	assert.InDelta(t, 33.3, services.RoundPct(decimal.NewFromInt(100).Div(decimal.NewFromInt(3))), 0.001)
	assert.InDelta(t, 20.0, services.RoundPct(decimal.NewFromInt(20)), 0.001)
}
