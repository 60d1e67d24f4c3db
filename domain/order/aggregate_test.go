package order

import (
	"strings"
	"testing"
	"time"

	"storefront/domain/cart"
	"storefront/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() ShippingAddress {
	return ShippingAddress{
		FullName: "Asha Patil",
		Phone:    "9876543210",
		Address:  "12 MG Road",
		City:     "Pune",
		State:    "Maharashtra",
		Pincode:  "411001",
	}
}

func cartLines(t *testing.T) []cart.Line {
	t.Helper()
	c := cart.NewCart()
	require.NoError(t, c.Add(catalog.Product{ID: "1", Name: "Jute Tote", Price: 1299}, 2, cart.Variant{Size: "M"}))
	require.NoError(t, c.Add(catalog.Product{ID: "3", Name: "Cotton Pouch", Price: 499}, 1, cart.Variant{}))
	return c.Lines()
}

func TestNewOrder(t *testing.T) {
	placedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	o, err := NewOrder(PlaceOptions{
		UserID:        "user-1",
		Lines:         cartLines(t),
		Address:       validAddress(),
		PaymentMethod: PaymentUPI,
		Pricing:       cart.DefaultPricing,
		PlacedAt:      placedAt,
		DeliveryDays:  7,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(o.ID(), IDPrefix))
	assert.Equal(t, cart.Breakdown{Subtotal: 3097, Shipping: 0, Tax: 557, Total: 3654}, o.Breakdown())
	assert.Equal(t, "INR", o.Currency())
	assert.Equal(t, int64(3654), o.Total().Amount())
	assert.Equal(t, placedAt.AddDate(0, 0, 7), o.EstimatedDelivery())

	lines := o.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(2598), lines[0].Subtotal.Amount())
	assert.Equal(t, "M", lines[0].Size)

	events := o.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventOrderPlaced, events[0].EventName())
	assert.Equal(t, o.ID(), events[0].AggregateID())
	assert.Empty(t, o.PullEvents())
}

func TestNewOrder_Validation(t *testing.T) {
	base := PlaceOptions{
		UserID:        "user-1",
		Lines:         cartLines(t),
		Address:       validAddress(),
		PaymentMethod: PaymentCOD,
		Pricing:       cart.DefaultPricing,
	}

	tests := []struct {
		name   string
		mutate func(*PlaceOptions)
		want   error
	}{
		{"missing user", func(o *PlaceOptions) { o.UserID = "" }, ErrMissingUser},
		{"empty cart", func(o *PlaceOptions) { o.Lines = nil }, ErrEmptyCart},
		{"bad payment method", func(o *PlaceOptions) { o.PaymentMethod = "bitcoin" }, ErrInvalidPaymentMethod},
		{"blank city", func(o *PlaceOptions) { o.Address.City = " " }, ErrInvalidAddress},
		{"short pincode", func(o *PlaceOptions) { o.Address.Pincode = "4110" }, ErrInvalidAddress},
		{"letters in pincode", func(o *PlaceOptions) { o.Address.Pincode = "41100a" }, ErrInvalidAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			tt.mutate(&opts)
			_, err := NewOrder(opts)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod(" CARD ")
	require.NoError(t, err)
	assert.Equal(t, PaymentCard, m)
	assert.Equal(t, "Credit/Debit Card", m.Label())

	_, err = ParsePaymentMethod("cash")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}
