package cart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricing_ShippingBoundary(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		shipping int64
	}{
		{"empty cart pays flat fee", 0, 50},
		{"at threshold pays flat fee", 1000, 50},
		{"above threshold ships free", 1001, 0},
		{"well above", 5000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.shipping, DefaultPricing.Quote(tt.subtotal).Shipping)
		})
	}
}

func TestPricing_TaxRounding(t *testing.T) {
	tests := []struct {
		subtotal int64
		tax      int64
	}{
		{0, 0},
		{1000, 180},
		{3097, 557},
		{25, 5},     // 4.5 rounds up
		{24, 4},     // 4.32
		{1299, 234}, // 233.82
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tax, DefaultPricing.Tax(tt.subtotal), "subtotal %d", tt.subtotal)
	}
}

func TestPricing_TaxOnLargeSubtotal(t *testing.T) {
	assert.Equal(t, int64(180_000_000_000_000), DefaultPricing.Tax(MaxTotal))
	assert.Equal(t, int64(1_660_206_966_633_859_645), DefaultPricing.Tax(math.MaxInt64))
	assert.Equal(t, int64(-557), DefaultPricing.Tax(-3097))
	assert.Equal(t, int64(0), Pricing{TaxRateBasisPoints: 5000}.Tax(-1), "-0.5 rounds toward zero")
}

func TestPricing_Total(t *testing.T) {
	b := DefaultPricing.Quote(1000)
	assert.Equal(t, Breakdown{Subtotal: 1000, Shipping: 50, Tax: 180, Total: 1230}, b)
	assert.False(t, b.FreeShipping())

	custom := Pricing{FreeShippingThreshold: 500, FlatShippingFee: 99, TaxRateBasisPoints: 500}
	assert.Equal(t, Breakdown{Subtotal: 400, Shipping: 99, Tax: 20, Total: 519}, custom.Quote(400))
}
