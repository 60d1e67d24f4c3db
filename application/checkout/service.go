/*
Package checkout Application Layer - turns a cart into an order confirmation

An order is priced from the cart's snapshot prices, announced on the event
bus and the cart is cleared. Orders are not stored and no payment is taken.
*/
package checkout

import (
	"context"
	"fmt"
	"time"

	appcart "storefront/application/cart"
	"storefront/domain/cart"
	"storefront/domain/order"
	"storefront/domain/shared"
	"storefront/pkg/logger"

	"go.uber.org/zap"
)

// ErrUnauthenticated checkout needs a signed-in user
var ErrUnauthenticated = fmt.Errorf("%w: sign in to place an order", shared.ErrUnauthorized)

// SessionProvider reports the authenticated user of a request
type SessionProvider interface {
	CurrentUserID(ctx context.Context) (string, bool)
}

// Config holds the checkout policy
type Config struct {
	Pricing      cart.Pricing
	Currency     string
	DeliveryDays int
}

// ApplicationService Checkout application service
type ApplicationService struct {
	stores   *appcart.Registry
	sessions SessionProvider
	bus      *shared.EventBus
	cfg      Config
	now      func() time.Time
}

func NewApplicationService(stores *appcart.Registry, sessions SessionProvider, bus *shared.EventBus, cfg Config) *ApplicationService {
	if cfg.DeliveryDays <= 0 {
		cfg.DeliveryDays = 7
	}
	if cfg.Currency == "" {
		cfg.Currency = shared.DefaultCurrency
	}
	return &ApplicationService{
		stores:   stores,
		sessions: sessions,
		bus:      bus,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Quote prices the owner's cart with the checkout pricing policy.
func (s *ApplicationService) Quote(ctx context.Context, owner string) BreakdownResponse {
	store := s.stores.For(ctx, owner)
	return toBreakdownResponse(s.cfg.Pricing.Quote(store.CartTotal()))
}

// PlaceOrder converts the owner's cart into an order and clears the cart.
func (s *ApplicationService) PlaceOrder(ctx context.Context, owner string, req PlaceOrderRequest) (*OrderConfirmation, error) {
	userID, ok := s.sessions.CurrentUserID(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	store := s.stores.For(ctx, owner)
	o, err := order.NewOrder(order.PlaceOptions{
		UserID:        userID,
		Lines:         store.CartLines(),
		Address:       req.ShippingAddress,
		PaymentMethod: order.PaymentMethod(req.PaymentMethod),
		Pricing:       s.cfg.Pricing,
		Currency:      s.cfg.Currency,
		PlacedAt:      s.now(),
		DeliveryDays:  s.cfg.DeliveryDays,
	})
	if err != nil {
		return nil, err
	}

	store.ClearCart(ctx)

	log := logger.FromContext(ctx)
	for _, event := range o.PullEvents() {
		if s.bus == nil {
			break
		}
		if err := s.bus.Publish(event); err != nil {
			log.Warn("Order event handler failed",
				zap.String("event", event.EventName()),
				zap.String("order_id", o.ID()),
				zap.Error(err),
			)
		}
	}

	log.Info("Order placed",
		zap.String("order_id", o.ID()),
		zap.String("user_id", userID),
		zap.Int64("total", o.Breakdown().Total),
		zap.String("payment_method", string(o.PaymentMethod())),
	)
	return toOrderConfirmation(o), nil
}
