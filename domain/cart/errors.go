package cart

import (
	"errors"
	"strconv"

	"storefront/domain/shared"
)

// ============================================================================
// Sentinel Errors
// ============================================================================

var (
	// ErrInvalidQuantity quantity must be a positive integer on add
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidProduct product has no id
	ErrInvalidProduct = errors.New("product id is required")

	// ErrQuantityOverflow a line would hold more than MaxLineQuantity units
	ErrQuantityOverflow = errors.New("quantity overflow")

	// ErrTotalOverflow the cart total would exceed MaxTotal
	ErrTotalOverflow = errors.New("cart total overflow")
)

// NewInvalidQuantityError returns an ErrInvalidQuantity carrying the offending value
func NewInvalidQuantityError(quantity int) error {
	return shared.NewValidationError("cart", "quantity",
		"quantity must be positive, got "+strconv.Itoa(quantity), ErrInvalidQuantity)
}

// NewInvalidProductError returns an ErrInvalidProduct
func NewInvalidProductError() error {
	return shared.NewValidationError("cart", "product_id", "product id is required", ErrInvalidProduct)
}

// NewQuantityOverflowError returns an ErrQuantityOverflow for adding quantity
// units to a line already holding current.
func NewQuantityOverflowError(current, quantity int) error {
	return shared.NewValidationError("cart", "quantity",
		"line quantity may not exceed "+strconv.Itoa(MaxLineQuantity)+
			", have "+strconv.Itoa(current)+", adding "+strconv.Itoa(quantity),
		ErrQuantityOverflow)
}
