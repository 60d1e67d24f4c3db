package errors

import (
	"fmt"
	"net/http"
	"testing"

	"storefront/domain/cart"
	"storefront/domain/catalog"
	"storefront/domain/order"
	"storefront/domain/shared"

	"github.com/stretchr/testify/assert"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   ErrorCode
		status int
	}{
		{"invalid quantity", cart.NewInvalidQuantityError(0), CodeInvalidQuantity, http.StatusBadRequest},
		{"invalid product", cart.NewInvalidProductError(), CodeInvalidProduct, http.StatusBadRequest},
		{"product not found", fmt.Errorf("lookup: %w", catalog.ErrProductNotFound), CodeProductNotFound, http.StatusNotFound},
		{"empty cart", order.NewEmptyCartError(), CodeEmptyCart, http.StatusUnprocessableEntity},
		{"payment method", order.NewInvalidPaymentMethodError("cash"), CodeInvalidPaymentMethod, http.StatusBadRequest},
		{"unauthorized", shared.ErrUnauthorized, CodeUnauthorized, http.StatusUnauthorized},
		{"unknown", fmt.Errorf("disk on fire"), CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := MapDomainError(tt.err)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.status, appErr.HTTPStatusCode())
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}

func TestMapDomainError_Passthrough(t *testing.T) {
	assert.Nil(t, MapDomainError(nil))

	orig := Validation("bad size")
	assert.Same(t, orig, MapDomainError(fmt.Errorf("wrapped: %w", orig)))
}

func TestInternalMessageIsHidden(t *testing.T) {
	appErr := MapDomainError(fmt.Errorf("dial tcp 10.0.0.1:3306: refused"))
	assert.Equal(t, "internal server error", appErr.Message)
	assert.True(t, Is(appErr, CodeInternal))
}
