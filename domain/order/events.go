package order

import (
	"time"

	"storefront/domain/shared"
)

// EventOrderPlaced is published once an order has been confirmed to the shopper
const EventOrderPlaced = "order.placed"

// PlacedEvent records a placed order
type PlacedEvent struct {
	orderID    string
	userID     string
	total      shared.Money
	method     PaymentMethod
	occurredOn time.Time
}

func (e *PlacedEvent) EventName() string            { return EventOrderPlaced }
func (e *PlacedEvent) OccurredOn() time.Time        { return e.occurredOn }
func (e *PlacedEvent) AggregateID() string          { return e.orderID }
func (e *PlacedEvent) UserID() string               { return e.userID }
func (e *PlacedEvent) Total() shared.Money          { return e.total }
func (e *PlacedEvent) PaymentMethod() PaymentMethod { return e.method }
