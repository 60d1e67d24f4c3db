package cart

import "time"

// AddItemRequest adds a product to the cart. Quantity defaults to 1 when
// omitted; an explicit zero or negative quantity is rejected.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// UpdateItemRequest sets a line's quantity; zero or less removes the line.
type UpdateItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// RemoveItemRequest identifies the line to remove.
type RemoveItemRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
	Size      string `json:"size" form:"size"`
	Color     string `json:"color" form:"color"`
}

// CartResponse is the cart as returned to clients.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int                `json:"count"`
	Total int64              `json:"total"`
	Quote QuoteResponse      `json:"quote"`
}

// CartItemResponse is one cart line. SelectedSize and SelectedColor are null
// when nothing was selected.
type CartItemResponse struct {
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"original_price"`
	Images        []string  `json:"images"`
	Category      string    `json:"category"`
	Quantity      int       `json:"quantity"`
	SelectedSize  *string   `json:"selected_size"`
	SelectedColor *string   `json:"selected_color"`
	Subtotal      int64     `json:"subtotal"`
	AddedAt       time.Time `json:"added_at"`
}

// QuoteResponse is the pricing breakdown of a cart.
type QuoteResponse struct {
	Subtotal     int64 `json:"subtotal"`
	Shipping     int64 `json:"shipping"`
	Tax          int64 `json:"tax"`
	Total        int64 `json:"total"`
	FreeShipping bool  `json:"free_shipping"`
}

// WishlistResponse lists the saved products.
type WishlistResponse struct {
	Items []WishlistItemResponse `json:"items"`
	Count int                    `json:"count"`
}

type WishlistItemResponse struct {
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"original_price"`
	Images        []string  `json:"images"`
	Category      string    `json:"category"`
	AddedAt       time.Time `json:"added_at"`
}

// MembershipResponse reports whether a product is in the wishlist.
type MembershipResponse struct {
	ProductID  string `json:"product_id"`
	InWishlist bool   `json:"in_wishlist"`
	Count      int    `json:"count"`
}
