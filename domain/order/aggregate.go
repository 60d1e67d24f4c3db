/*
Package order - the order a shopper places at checkout

An Order is built once from the cart lines and never changes afterwards.
There is no order repository: placing an order produces a confirmation and
an order.placed event, then the cart is cleared.
*/
package order

import (
	"fmt"
	"time"

	"storefront/domain/cart"
	"storefront/domain/shared"

	"github.com/google/uuid"
)

// IDPrefix starts every order id
const IDPrefix = "ORD-"

// Order aggregate root
type Order struct {
	id                string
	userID            string
	lines             []Line
	address           ShippingAddress
	paymentMethod     PaymentMethod
	breakdown         cart.Breakdown
	currency          string
	placedAt          time.Time
	estimatedDelivery time.Time

	events []shared.DomainEvent
}

// Line is an ordered product, copied from a cart line
type Line struct {
	ProductID string
	Name      string
	Size      string
	Color     string
	Quantity  int
	UnitPrice shared.Money
	Subtotal  shared.Money
}

// PlaceOptions are the inputs of NewOrder
type PlaceOptions struct {
	UserID        string
	Lines         []cart.Line
	Address       ShippingAddress
	PaymentMethod PaymentMethod
	Pricing       cart.Pricing
	Currency      string
	PlacedAt      time.Time
	DeliveryDays  int
}

// NewOrder validates opts and prices the lines. The caller supplies the
// clock so confirmations are reproducible in tests.
func NewOrder(opts PlaceOptions) (*Order, error) {
	if opts.UserID == "" {
		return nil, ErrMissingUser
	}
	if len(opts.Lines) == 0 {
		return nil, NewEmptyCartError()
	}
	method, err := ParsePaymentMethod(string(opts.PaymentMethod))
	if err != nil {
		return nil, err
	}
	if err := opts.Address.Validate(); err != nil {
		return nil, err
	}

	currency := opts.Currency
	if currency == "" {
		currency = shared.DefaultCurrency
	}

	subtotal := shared.Zero(currency)
	lines := make([]Line, len(opts.Lines))
	for i, l := range opts.Lines {
		unit := shared.NewMoney(l.UnitPrice(), currency)
		lineTotal, err := unit.Multiply(l.Quantity())
		if err != nil {
			return nil, fmt.Errorf("price line %s: %w", l.ProductID(), err)
		}
		if subtotal, err = subtotal.Add(lineTotal); err != nil {
			return nil, fmt.Errorf("price order: %w", err)
		}
		lines[i] = Line{
			ProductID: l.ProductID(),
			Name:      l.Snapshot().Name,
			Size:      l.Variant().Size,
			Color:     l.Variant().Color,
			Quantity:  l.Quantity(),
			UnitPrice: unit,
			Subtotal:  lineTotal,
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order ID: %w", err)
	}

	placedAt := opts.PlacedAt
	if placedAt.IsZero() {
		placedAt = time.Now()
	}

	o := &Order{
		id:                IDPrefix + id.String(),
		userID:            opts.UserID,
		lines:             lines,
		address:           opts.Address,
		paymentMethod:     method,
		breakdown:         opts.Pricing.Quote(subtotal.Amount()),
		currency:          currency,
		placedAt:          placedAt,
		estimatedDelivery: placedAt.AddDate(0, 0, opts.DeliveryDays),
	}
	o.events = append(o.events, &PlacedEvent{
		orderID:    o.id,
		userID:     o.userID,
		total:      shared.NewMoney(o.breakdown.Total, currency),
		method:     o.paymentMethod,
		occurredOn: placedAt,
	})
	return o, nil
}

func (o *Order) ID() string                   { return o.id }
func (o *Order) UserID() string               { return o.userID }
func (o *Order) Address() ShippingAddress     { return o.address }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) Breakdown() cart.Breakdown    { return o.breakdown }
func (o *Order) Currency() string             { return o.currency }
func (o *Order) PlacedAt() time.Time          { return o.placedAt }
func (o *Order) EstimatedDelivery() time.Time { return o.estimatedDelivery }
func (o *Order) Total() shared.Money          { return shared.NewMoney(o.breakdown.Total, o.currency) }

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// PullEvents returns the recorded events and clears them.
func (o *Order) PullEvents() []shared.DomainEvent {
	events := o.events
	o.events = nil
	return events
}
