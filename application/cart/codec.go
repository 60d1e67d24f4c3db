package cart

import (
	"encoding/json"
	"time"

	"storefront/domain/cart"
)

// lineRecord is the stored form of a cart line: the product fields at
// add-time plus quantity and the selected variant (null when unselected).
type lineRecord struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"originalPrice,omitempty"`
	Images        []string  `json:"images,omitempty"`
	Category      string    `json:"category,omitempty"`
	Quantity      int       `json:"quantity"`
	SelectedSize  *string   `json:"selectedSize"`
	SelectedColor *string   `json:"selectedColor"`
	AddedAt       time.Time `json:"addedAt"`
}

type entryRecord struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"originalPrice,omitempty"`
	Images        []string  `json:"images,omitempty"`
	Category      string    `json:"category,omitempty"`
	AddedAt       time.Time `json:"addedAt"`
}

func encodeCart(c *cart.Cart) ([]byte, error) {
	lines := c.Lines()
	records := make([]lineRecord, len(lines))
	for i, l := range lines {
		snap := l.Snapshot()
		records[i] = lineRecord{
			ID:            l.ProductID(),
			Name:          snap.Name,
			Price:         snap.Price,
			OriginalPrice: snap.OriginalPrice,
			Images:        snap.Images,
			Category:      snap.Category,
			Quantity:      l.Quantity(),
			SelectedSize:  nullable(l.Variant().Size),
			SelectedColor: nullable(l.Variant().Color),
			AddedAt:       l.AddedAt(),
		}
	}
	return json.Marshal(records)
}

func decodeCart(data []byte) (*cart.Cart, error) {
	var records []lineRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	lines := make([]cart.Line, len(records))
	for i, r := range records {
		lines[i] = cart.RebuildLine(cart.LineReconstructionDTO{
			ProductID: r.ID,
			Size:      deref(r.SelectedSize),
			Color:     deref(r.SelectedColor),
			Quantity:  r.Quantity,
			Snapshot: cart.Snapshot{
				Name:          r.Name,
				Price:         r.Price,
				OriginalPrice: r.OriginalPrice,
				Images:        r.Images,
				Category:      r.Category,
			},
			AddedAt: r.AddedAt,
		})
	}
	return cart.Rebuild(lines), nil
}

func encodeWishlist(w *cart.Wishlist) ([]byte, error) {
	entries := w.Entries()
	records := make([]entryRecord, len(entries))
	for i, e := range entries {
		snap := e.Snapshot()
		records[i] = entryRecord{
			ID:            e.ProductID(),
			Name:          snap.Name,
			Price:         snap.Price,
			OriginalPrice: snap.OriginalPrice,
			Images:        snap.Images,
			Category:      snap.Category,
			AddedAt:       e.AddedAt(),
		}
	}
	return json.Marshal(records)
}

func decodeWishlist(data []byte) (*cart.Wishlist, error) {
	var records []entryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	entries := make([]cart.WishlistEntry, len(records))
	for i, r := range records {
		entries[i] = cart.RebuildEntry(cart.EntryReconstructionDTO{
			ProductID: r.ID,
			Snapshot: cart.Snapshot{
				Name:          r.Name,
				Price:         r.Price,
				OriginalPrice: r.OriginalPrice,
				Images:        r.Images,
				Category:      r.Category,
			},
			AddedAt: r.AddedAt,
		})
	}
	return cart.RebuildWishlist(entries), nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
