package checkout

import (
	"context"
	"strings"
	"testing"
	"time"

	appcart "storefront/application/cart"
	"storefront/domain/cart"
	"storefront/domain/catalog"
	"storefront/domain/order"
	"storefront/domain/shared"
	"storefront/infrastructure/persistence/memory"
	"storefront/infrastructure/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)

func address() order.ShippingAddress {
	return order.ShippingAddress{
		FullName: "Asha Rao",
		Phone:    "9876543210",
		Address:  "12 MG Road",
		City:     "Pune",
		State:    "Maharashtra",
		Pincode:  "411001",
	}
}

type fixture struct {
	svc    *ApplicationService
	stores *appcart.Registry
	events []shared.DomainEvent
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{stores: appcart.NewRegistry(memory.NewKVStore())}
	bus := shared.NewEventBus()
	bus.Subscribe(order.EventOrderPlaced, func(e shared.DomainEvent) error {
		f.events = append(f.events, e)
		return nil
	})
	f.svc = NewApplicationService(f.stores, session.Provider{}, bus, Config{Pricing: cart.DefaultPricing, Currency: "INR"})
	f.svc.now = func() time.Time { return placedAt }
	return f
}

func (f *fixture) fillCart(t *testing.T, ctx context.Context, owner string) {
	t.Helper()
	store := f.stores.For(ctx, owner)
	require.NoError(t, store.AddToCart(ctx, catalog.Product{ID: "1", Name: "Handwoven Tote", Price: 1299}, 2, cart.Variant{Color: "Indigo"}))
	require.NoError(t, store.AddToCart(ctx, catalog.Product{ID: "3", Name: "Cotton Pouch", Price: 499}, 1, cart.Variant{}))
}

func TestPlaceOrder(t *testing.T) {
	f := newFixture(t)
	ctx := session.ContextWithUserID(context.Background(), "user-1")
	f.fillCart(t, ctx, "user-1")

	conf, err := f.svc.PlaceOrder(ctx, "user-1", PlaceOrderRequest{ShippingAddress: address(), PaymentMethod: "UPI"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(conf.OrderID, "ORD-"))
	assert.Equal(t, "user-1", conf.UserID)
	assert.Equal(t, BreakdownResponse{Subtotal: 3097, Shipping: 0, Tax: 557, Total: 3654, FreeShipping: true}, conf.Breakdown)
	assert.Equal(t, "upi", conf.PaymentMethod)
	assert.Equal(t, "UPI Payment", conf.PaymentLabel)
	assert.Equal(t, placedAt.AddDate(0, 0, 7), conf.EstimatedDelivery)

	require.Len(t, conf.Items, 2)
	require.NotNil(t, conf.Items[0].Color)
	assert.Equal(t, "Indigo", *conf.Items[0].Color)
	assert.Nil(t, conf.Items[0].Size)
	assert.Equal(t, int64(2598), conf.Items[0].Subtotal)

	assert.Equal(t, 0, f.stores.For(ctx, "user-1").CartCount(), "cart is cleared")
	require.Len(t, f.events, 1)
	assert.Equal(t, conf.OrderID, f.events[0].AggregateID())
}

func TestPlaceOrder_Errors(t *testing.T) {
	f := newFixture(t)
	anon := context.Background()
	authed := session.ContextWithUserID(context.Background(), "user-1")

	_, err := f.svc.PlaceOrder(anon, "guest-1", PlaceOrderRequest{ShippingAddress: address(), PaymentMethod: "cod"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, shared.ErrUnauthorized)

	_, err = f.svc.PlaceOrder(authed, "user-1", PlaceOrderRequest{ShippingAddress: address(), PaymentMethod: "cod"})
	assert.ErrorIs(t, err, order.ErrEmptyCart)

	f.fillCart(t, authed, "user-1")

	_, err = f.svc.PlaceOrder(authed, "user-1", PlaceOrderRequest{ShippingAddress: address(), PaymentMethod: "bitcoin"})
	assert.ErrorIs(t, err, order.ErrInvalidPaymentMethod)

	bad := address()
	bad.Pincode = "4110"
	_, err = f.svc.PlaceOrder(authed, "user-1", PlaceOrderRequest{ShippingAddress: bad, PaymentMethod: "cod"})
	assert.ErrorIs(t, err, order.ErrInvalidAddress)

	assert.Equal(t, 3, f.stores.For(authed, "user-1").CartCount(), "a rejected order leaves the cart alone")
	assert.Empty(t, f.events)
}

func TestQuote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, BreakdownResponse{Shipping: 50, Total: 50}, f.svc.Quote(ctx, "guest-1"))

	require.NoError(t, f.stores.For(ctx, "guest-1").AddToCart(ctx, catalog.Product{ID: "4", Name: "Mini Coin Pouch", Price: 349}, 1, cart.Variant{}))
	assert.Equal(t, BreakdownResponse{Subtotal: 349, Shipping: 50, Tax: 63, Total: 462}, f.svc.Quote(ctx, "guest-1"))
}
