package errors

import (
	"errors"
	"fmt"
	"net/http"

	"storefront/domain/cart"
	"storefront/domain/catalog"
	"storefront/domain/order"
	"storefront/domain/shared"
)

// ErrorCode is the machine readable error code returned to clients
type ErrorCode string

const (
	// generic codes
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	CodeForbidden      ErrorCode = "FORBIDDEN"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"

	// business codes
	CodeInvalidQuantity      ErrorCode = "INVALID_QUANTITY"
	CodeInvalidProduct       ErrorCode = "INVALID_PRODUCT"
	CodeProductNotFound      ErrorCode = "PRODUCT_NOT_FOUND"
	CodeEmptyCart            ErrorCode = "EMPTY_CART"
	CodeInvalidPaymentMethod ErrorCode = "INVALID_PAYMENT_METHOD"
	CodeInvalidAddress       ErrorCode = "INVALID_ADDRESS"
)

// AppError is an error with a client facing code and message
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatusCode returns the HTTP status for the code
func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidation, CodeInvalidQuantity, CodeInvalidProduct,
		CodeInvalidPaymentMethod, CodeInvalidAddress:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeProductNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeTooManyRequest:
		return http.StatusTooManyRequests
	case CodeEmptyCart:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequest, message)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// Is reports whether err carries code
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// MapDomainError maps domain sentinels to application errors. The domain
// message is kept for validation failures; anything unrecognised becomes
// an internal error whose message is not shown to clients.
func MapDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		return Wrap(err, CodeInvalidQuantity, err.Error())
	case errors.Is(err, cart.ErrQuantityOverflow), errors.Is(err, cart.ErrTotalOverflow):
		return Wrap(err, CodeInvalidQuantity, err.Error())
	case errors.Is(err, cart.ErrInvalidProduct):
		return Wrap(err, CodeInvalidProduct, err.Error())
	case errors.Is(err, catalog.ErrProductNotFound):
		return Wrap(err, CodeProductNotFound, err.Error())
	case errors.Is(err, order.ErrEmptyCart):
		return Wrap(err, CodeEmptyCart, err.Error())
	case errors.Is(err, order.ErrInvalidPaymentMethod):
		return Wrap(err, CodeInvalidPaymentMethod, err.Error())
	case errors.Is(err, order.ErrInvalidAddress):
		return Wrap(err, CodeInvalidAddress, err.Error())
	case errors.Is(err, order.ErrMissingUser), errors.Is(err, shared.ErrUnauthorized):
		return Wrap(err, CodeUnauthorized, "authentication required")
	case errors.Is(err, shared.ErrNotFound):
		return Wrap(err, CodeNotFound, err.Error())
	case errors.Is(err, shared.ErrInvalidInput):
		return Wrap(err, CodeValidation, err.Error())
	case errors.Is(err, shared.ErrConflict):
		return Wrap(err, CodeConflict, err.Error())
	default:
		return Wrap(err, CodeInternal, "internal server error")
	}
}
