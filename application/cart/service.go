package cart

import (
	"context"
	"errors"

	"storefront/domain/cart"
	"storefront/domain/catalog"
)

// ApplicationService Cart application service - resolves products from the
// catalog and applies cart and wishlist operations to the owner's store.
type ApplicationService struct {
	stores   *Registry
	products catalog.Repository
}

// NewApplicationService Create cart application service
func NewApplicationService(stores *Registry, products catalog.Repository) *ApplicationService {
	return &ApplicationService{stores: stores, products: products}
}

// Store returns the owner's cart store.
func (s *ApplicationService) Store(ctx context.Context, owner string) *Store {
	return s.stores.For(ctx, owner)
}

// ============================================================================
// Cart
// ============================================================================

func (s *ApplicationService) GetCart(ctx context.Context, owner string) *CartResponse {
	return toCartResponse(s.stores.For(ctx, owner))
}

// AddItem adds a catalog product to the owner's cart.
func (s *ApplicationService) AddItem(ctx context.Context, owner string, req AddItemRequest) (*CartResponse, error) {
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity <= 0 {
		return nil, cart.NewInvalidQuantityError(quantity)
	}

	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	store := s.stores.For(ctx, owner)
	if err := store.AddToCart(ctx, product, quantity, cart.Variant{Size: req.Size, Color: req.Color}); err != nil {
		return nil, err
	}
	return toCartResponse(store), nil
}

// UpdateItem sets a line's quantity. Unknown lines are left alone.
func (s *ApplicationService) UpdateItem(ctx context.Context, owner string, req UpdateItemRequest) (*CartResponse, error) {
	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	store := s.stores.For(ctx, owner)
	if err := store.UpdateQuantity(ctx, req.ProductID, cart.Variant{Size: req.Size, Color: req.Color}, quantity); err != nil {
		return nil, err
	}
	return toCartResponse(store), nil
}

func (s *ApplicationService) RemoveItem(ctx context.Context, owner string, req RemoveItemRequest) *CartResponse {
	store := s.stores.For(ctx, owner)
	store.RemoveFromCart(ctx, req.ProductID, cart.Variant{Size: req.Size, Color: req.Color})
	return toCartResponse(store)
}

func (s *ApplicationService) ClearCart(ctx context.Context, owner string) *CartResponse {
	store := s.stores.For(ctx, owner)
	store.ClearCart(ctx)
	return toCartResponse(store)
}

func (s *ApplicationService) GetQuote(ctx context.Context, owner string) QuoteResponse {
	return toQuoteResponse(s.stores.For(ctx, owner).Quote())
}

// ============================================================================
// Wishlist
// ============================================================================

func (s *ApplicationService) GetWishlist(ctx context.Context, owner string) *WishlistResponse {
	return toWishlistResponse(s.stores.For(ctx, owner))
}

func (s *ApplicationService) AddToWishlist(ctx context.Context, owner, productID string) (*WishlistResponse, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	store := s.stores.For(ctx, owner)
	if err := store.AddToWishlist(ctx, product); err != nil {
		return nil, err
	}
	return toWishlistResponse(store), nil
}

// RemoveFromWishlist does not consult the catalog, so products that have
// since left it can still be removed.
func (s *ApplicationService) RemoveFromWishlist(ctx context.Context, owner, productID string) *WishlistResponse {
	store := s.stores.For(ctx, owner)
	store.RemoveFromWishlist(ctx, productID)
	return toWishlistResponse(store)
}

// ToggleWishlist flips membership as one store operation. A product gone
// from the catalog can still be unsaved but not saved.
func (s *ApplicationService) ToggleWishlist(ctx context.Context, owner, productID string) (*MembershipResponse, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil && !errors.Is(err, catalog.ErrProductNotFound) {
		return nil, err
	}

	store := s.stores.For(ctx, owner)
	in := false
	if err != nil {
		if !store.RemoveFromWishlist(ctx, productID) {
			return nil, err
		}
	} else if in, err = store.ToggleWishlist(ctx, product); err != nil {
		return nil, err
	}
	return &MembershipResponse{ProductID: productID, InWishlist: in, Count: store.WishlistCount()}, nil
}

func (s *ApplicationService) InWishlist(ctx context.Context, owner, productID string) *MembershipResponse {
	store := s.stores.For(ctx, owner)
	return &MembershipResponse{
		ProductID:  productID,
		InWishlist: store.IsInWishlist(productID),
		Count:      store.WishlistCount(),
	}
}
