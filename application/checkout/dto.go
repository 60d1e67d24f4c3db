package checkout

import (
	"time"

	"storefront/domain/order"
)

// PlaceOrderRequest Place order request DTO
type PlaceOrderRequest struct {
	ShippingAddress order.ShippingAddress `json:"shipping_address" binding:"required"`
	PaymentMethod   string                `json:"payment_method" binding:"required"`
}

// BreakdownResponse is the priced total of a cart or order.
type BreakdownResponse struct {
	Subtotal     int64 `json:"subtotal"`
	Shipping     int64 `json:"shipping"`
	Tax          int64 `json:"tax"`
	Total        int64 `json:"total"`
	FreeShipping bool  `json:"free_shipping"`
}

// OrderConfirmation is returned once an order is placed.
type OrderConfirmation struct {
	OrderID           string                `json:"order_id"`
	UserID            string                `json:"user_id"`
	Items             []OrderLineResponse   `json:"items"`
	Breakdown         BreakdownResponse     `json:"breakdown"`
	Currency          string                `json:"currency"`
	PaymentMethod     string                `json:"payment_method"`
	PaymentLabel      string                `json:"payment_label"`
	ShippingAddress   order.ShippingAddress `json:"shipping_address"`
	PlacedAt          time.Time             `json:"placed_at"`
	EstimatedDelivery time.Time             `json:"estimated_delivery"`
}

type OrderLineResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Size      *string `json:"size"`
	Color     *string `json:"color"`
	Quantity  int     `json:"quantity"`
	UnitPrice int64   `json:"unit_price"`
	Subtotal  int64   `json:"subtotal"`
}
