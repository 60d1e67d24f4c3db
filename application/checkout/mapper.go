package checkout

import (
	"storefront/domain/cart"
	"storefront/domain/order"
)

func toBreakdownResponse(b cart.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Subtotal:     b.Subtotal,
		Shipping:     b.Shipping,
		Tax:          b.Tax,
		Total:        b.Total,
		FreeShipping: b.FreeShipping(),
	}
}

func toOrderConfirmation(o *order.Order) *OrderConfirmation {
	lines := o.Lines()
	items := make([]OrderLineResponse, len(lines))
	for i, l := range lines {
		items[i] = OrderLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Size:      nullable(l.Size),
			Color:     nullable(l.Color),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.Amount(),
			Subtotal:  l.Subtotal.Amount(),
		}
	}
	return &OrderConfirmation{
		OrderID:           o.ID(),
		UserID:            o.UserID(),
		Items:             items,
		Breakdown:         toBreakdownResponse(o.Breakdown()),
		Currency:          o.Currency(),
		PaymentMethod:     string(o.PaymentMethod()),
		PaymentLabel:      o.PaymentMethod().Label(),
		ShippingAddress:   o.Address(),
		PlacedAt:          o.PlacedAt(),
		EstimatedDelivery: o.EstimatedDelivery(),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
