package cart

import (
	"storefront/domain/cart"

	"go.uber.org/zap"
)

// Keys are the fixed storage keys of the two aggregates
type Keys struct {
	Cart     string
	Wishlist string
}

// DefaultKeys match the keys the storefront has always used.
var DefaultKeys = Keys{
	Cart:     "bagweavers_cart",
	Wishlist: "bagweavers_wishlist",
}

// Option configures a Store
type Option func(*Store)

// WithKeys overrides the storage keys. Empty fields keep their default.
func WithKeys(keys Keys) Option {
	return func(s *Store) {
		if keys.Cart != "" {
			s.keys.Cart = keys.Cart
		}
		if keys.Wishlist != "" {
			s.keys.Wishlist = keys.Wishlist
		}
	}
}

// WithLogger sets the logger used to report persistence failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithPricing sets the pricing policy used by Quote.
func WithPricing(p cart.Pricing) Option {
	return func(s *Store) {
		s.pricing = p
	}
}
