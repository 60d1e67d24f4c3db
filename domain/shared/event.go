package shared

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// DomainEvent is something that happened to an aggregate
type DomainEvent interface {
	EventName() string
	OccurredOn() time.Time
	AggregateID() string
}

// EventHandler reacts to a published event
type EventHandler func(DomainEvent) error

// ValidateEvent rejects events missing a name, aggregate id or time.
func ValidateEvent(event DomainEvent) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}
	if event.EventName() == "" {
		return errors.New("event name cannot be empty")
	}
	if event.AggregateID() == "" {
		return errors.New("aggregate ID cannot be empty")
	}
	if event.OccurredOn().IsZero() {
		return errors.New("occurred on time cannot be zero")
	}
	return nil
}

// EventBus is an in-process, synchronous publisher. Handlers run in
// subscription order on the publishing goroutine.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[string][]EventHandler)}
}

// Subscribe registers handler for eventName.
func (bus *EventBus) Subscribe(eventName string, handler EventHandler) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[eventName] = append(bus.handlers[eventName], handler)
}

// Publish runs every handler of the event and joins their errors.
func (bus *EventBus) Publish(event DomainEvent) error {
	if err := ValidateEvent(event); err != nil {
		return err
	}

	bus.mu.RLock()
	handlers := bus.handlers[event.EventName()]
	bus.mu.RUnlock()

	var errs []error
	for i, h := range handlers {
		if err := h(event); err != nil {
			errs = append(errs, fmt.Errorf("handler %d for %s: %w", i, event.EventName(), err))
		}
	}
	return errors.Join(errs...)
}
