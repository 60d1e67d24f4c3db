/*
Package cart Application Layer - the cart store

Store owns one shopper's Cart and Wishlist aggregates for the lifetime of a
session and mirrors them to a key-value store. Every mutating operation is
two explicit steps: change the in-memory aggregate, then persist it whole.

A failed write is logged and swallowed; the in-memory aggregate stays the
source of truth for reads. Flush is the only operation that reports
persistence errors.
*/
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"storefront/domain/cart"
	"storefront/domain/catalog"
	"storefront/domain/shared"
	"storefront/pkg/logger"

	"go.uber.org/zap"
)

// Store is the cart store of a single owner. Safe for concurrent use;
// mutations are serialized and their writes are issued in the same order.
type Store struct {
	mu       sync.Mutex
	kv       shared.KVStore
	keys     Keys
	pricing  cart.Pricing
	log      *zap.Logger
	cart     *cart.Cart
	wishlist *cart.Wishlist
	// pending is set while a failed write leaves the KV store behind
	pending bool
}

// NewStore builds a store on kv and loads both aggregates. A missing key
// yields an empty aggregate; so does an unreadable one, which is logged.
func NewStore(ctx context.Context, kv shared.KVStore, opts ...Option) *Store {
	s := &Store{
		kv:      kv,
		keys:    DefaultKeys,
		pricing: cart.DefaultPricing,
		log:     logger.With(zap.String("component", "cart_store")),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cart = s.loadCart(ctx)
	s.wishlist = s.loadWishlist(ctx)
	return s
}

func (s *Store) loadCart(ctx context.Context) *cart.Cart {
	data, ok, err := s.kv.Get(ctx, s.keys.Cart)
	if err != nil {
		s.log.Warn("load cart failed, starting empty", zap.String("key", s.keys.Cart), zap.Error(err))
		return cart.NewCart()
	}
	if !ok {
		return cart.NewCart()
	}
	c, err := decodeCart(data)
	if err != nil {
		s.log.Warn("decode cart failed, starting empty", zap.String("key", s.keys.Cart), zap.Error(err))
		return cart.NewCart()
	}
	return c
}

func (s *Store) loadWishlist(ctx context.Context) *cart.Wishlist {
	data, ok, err := s.kv.Get(ctx, s.keys.Wishlist)
	if err != nil {
		s.log.Warn("load wishlist failed, starting empty", zap.String("key", s.keys.Wishlist), zap.Error(err))
		return cart.NewWishlist()
	}
	if !ok {
		return cart.NewWishlist()
	}
	w, err := decodeWishlist(data)
	if err != nil {
		s.log.Warn("decode wishlist failed, starting empty", zap.String("key", s.keys.Wishlist), zap.Error(err))
		return cart.NewWishlist()
	}
	return w
}

// ============================================================================
// Cart operations
// ============================================================================

// AddToCart adds quantity units of product in the given variant, merging
// into an existing line with the same key.
func (s *Store) AddToCart(ctx context.Context, product catalog.Product, quantity int, variant cart.Variant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.Add(product, quantity, variant); err != nil {
		return err
	}
	s.persistCart(ctx)
	return nil
}

// RemoveFromCart removes the line with the given key. Absent keys are a no-op.
func (s *Store) RemoveFromCart(ctx context.Context, productID string, variant cart.Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Remove(productID, variant) {
		s.persistCart(ctx)
	}
}

// UpdateQuantity sets a line's quantity; quantity <= 0 removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, variant cart.Variant, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed, err := s.cart.SetQuantity(productID, variant, quantity)
	if err != nil {
		return err
	}
	if changed {
		s.persistCart(ctx)
	}
	return nil
}

// ClearCart empties the cart and persists the empty state.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.persistCart(ctx)
}

func (s *Store) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// CartLines returns a copy of the lines in insertion order.
func (s *Store) CartLines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// Quote prices the current cart.
func (s *Store) Quote() cart.Breakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pricing.Quote(s.cart.Total())
}

// ============================================================================
// Wishlist operations
// ============================================================================

// AddToWishlist saves product; adding it twice leaves one entry.
func (s *Store) AddToWishlist(ctx context.Context, product catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := s.wishlist.Add(product)
	if err != nil {
		return err
	}
	if added {
		s.persistWishlist(ctx)
	}
	return nil
}

// RemoveFromWishlist unsaves productID and reports whether it was saved.
func (s *Store) RemoveFromWishlist(ctx context.Context, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.wishlist.Remove(productID) {
		return false
	}
	s.persistWishlist(ctx)
	return true
}

// ToggleWishlist removes product if saved, otherwise saves it, and returns
// whether it is saved afterwards.
func (s *Store) ToggleWishlist(ctx context.Context, product catalog.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in, err := s.wishlist.Toggle(product)
	if err != nil {
		return false, err
	}
	s.persistWishlist(ctx)
	return in, nil
}

func (s *Store) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(productID)
}

func (s *Store) WishlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Count()
}

func (s *Store) WishlistEntries() []cart.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Entries()
}

// ============================================================================
// Persistence
// ============================================================================

// Flush writes both aggregates and reports any failure.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.flushLocked(ctx)
}

// flushPending is Flush for a store whose last write failed; a store whose
// writes all landed is left alone.
func (s *Store) flushPending(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pending {
		return nil
	}
	return s.flushLocked(ctx)
}

func (s *Store) flushLocked(ctx context.Context) error {
	err := errors.Join(s.writeCart(ctx), s.writeWishlist(ctx))
	s.pending = err != nil
	return err
}

// persistCart must be called with mu held. Errors are logged only.
func (s *Store) persistCart(ctx context.Context) {
	if err := s.writeCart(ctx); err != nil {
		s.pending = true
		s.log.Warn("persist cart failed", zap.String("key", s.keys.Cart), zap.Error(err))
	}
}

func (s *Store) persistWishlist(ctx context.Context) {
	if err := s.writeWishlist(ctx); err != nil {
		s.pending = true
		s.log.Warn("persist wishlist failed", zap.String("key", s.keys.Wishlist), zap.Error(err))
	}
}

func (s *Store) writeCart(ctx context.Context) error {
	data, err := encodeCart(s.cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.kv.Set(ctx, s.keys.Cart, data); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

func (s *Store) writeWishlist(ctx context.Context) error {
	data, err := encodeWishlist(s.wishlist)
	if err != nil {
		return fmt.Errorf("encode wishlist: %w", err)
	}
	if err := s.kv.Set(ctx, s.keys.Wishlist, data); err != nil {
		return fmt.Errorf("write wishlist: %w", err)
	}
	return nil
}
