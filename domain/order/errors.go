/*
Package order - checkout order errors

Sentinels are used with errors.Is(); constructors wrap them in a
shared.DomainError that records where the error was raised.
*/
package order

import (
	"errors"

	"storefront/domain/shared"
)

var (
	// ErrEmptyCart an order needs at least one line
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidPaymentMethod payment method is not one of cod, upi, card
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidAddress a required shipping address field is blank
	ErrInvalidAddress = errors.New("invalid shipping address")

	// ErrMissingUser orders are only placed by authenticated users
	ErrMissingUser = errors.New("user is required to place an order")
)

// NewEmptyCartError returns an ErrEmptyCart with a stack.
func NewEmptyCartError() error {
	return shared.NewValidationError("order", "lines", "cannot place an order for an empty cart", ErrEmptyCart)
}

// NewInvalidPaymentMethodError returns an ErrInvalidPaymentMethod for method.
func NewInvalidPaymentMethodError(method string) error {
	return shared.NewValidationError("order", "payment_method",
		"unsupported payment method: "+method, ErrInvalidPaymentMethod)
}

// NewInvalidAddressError returns an ErrInvalidAddress naming the blank field.
func NewInvalidAddressError(field string) error {
	return shared.NewValidationError("order", field, field+" is required", ErrInvalidAddress)
}
