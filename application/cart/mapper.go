package cart

import (
	"storefront/domain/cart"
)

func toCartResponse(s *Store) *CartResponse {
	lines := s.CartLines()
	items := make([]CartItemResponse, len(lines))
	for i, l := range lines {
		snap := l.Snapshot()
		items[i] = CartItemResponse{
			ProductID:     l.ProductID(),
			Name:          snap.Name,
			Price:         snap.Price,
			OriginalPrice: snap.OriginalPrice,
			Images:        nonNil(snap.Images),
			Category:      snap.Category,
			Quantity:      l.Quantity(),
			SelectedSize:  nullable(l.Variant().Size),
			SelectedColor: nullable(l.Variant().Color),
			Subtotal:      l.Subtotal(),
			AddedAt:       l.AddedAt(),
		}
	}

	quote := s.Quote()
	return &CartResponse{
		Items: items,
		Count: s.CartCount(),
		Total: quote.Subtotal,
		Quote: toQuoteResponse(quote),
	}
}

func toQuoteResponse(b cart.Breakdown) QuoteResponse {
	return QuoteResponse{
		Subtotal:     b.Subtotal,
		Shipping:     b.Shipping,
		Tax:          b.Tax,
		Total:        b.Total,
		FreeShipping: b.FreeShipping(),
	}
}

func toWishlistResponse(s *Store) *WishlistResponse {
	entries := s.WishlistEntries()
	items := make([]WishlistItemResponse, len(entries))
	for i, e := range entries {
		snap := e.Snapshot()
		items[i] = WishlistItemResponse{
			ProductID:     e.ProductID(),
			Name:          snap.Name,
			Price:         snap.Price,
			OriginalPrice: snap.OriginalPrice,
			Images:        nonNil(snap.Images),
			Category:      snap.Category,
			AddedAt:       e.AddedAt(),
		}
	}
	return &WishlistResponse{Items: items, Count: len(items)}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
