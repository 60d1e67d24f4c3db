package cart

import (
	"time"

	"storefront/domain/catalog"
)

// WishlistEntry is a product saved for later, unique by product id
type WishlistEntry struct {
	productID string
	snapshot  Snapshot
	addedAt   time.Time
}

// EntryReconstructionDTO rebuilds a WishlistEntry from persisted data.
type EntryReconstructionDTO struct {
	ProductID string
	Snapshot  Snapshot
	AddedAt   time.Time
}

// RebuildEntry reconstructs a WishlistEntry from a DTO.
func RebuildEntry(dto EntryReconstructionDTO) WishlistEntry {
	return WishlistEntry{
		productID: dto.ProductID,
		snapshot:  dto.Snapshot.clone(),
		addedAt:   dto.AddedAt,
	}
}

func (e WishlistEntry) ProductID() string  { return e.productID }
func (e WishlistEntry) Snapshot() Snapshot { return e.snapshot.clone() }
func (e WishlistEntry) AddedAt() time.Time { return e.addedAt }

// Wishlist aggregate root - a set of products keyed by id
type Wishlist struct {
	entries []WishlistEntry
	now     func() time.Time
}

// NewWishlist returns an empty wishlist.
func NewWishlist() *Wishlist {
	return &Wishlist{now: time.Now}
}

// RebuildWishlist reconstructs a wishlist, dropping duplicate product ids.
func RebuildWishlist(entries []WishlistEntry) *Wishlist {
	w := NewWishlist()
	for _, e := range entries {
		if e.productID == "" || w.indexOf(e.productID) >= 0 {
			continue
		}
		e.snapshot = e.snapshot.clone()
		w.entries = append(w.entries, e)
	}
	return w
}

// Add saves product. It is a no-op if the product is already present and
// reports whether the wishlist changed.
func (w *Wishlist) Add(product catalog.Product) (bool, error) {
	if product.ID == "" {
		return false, NewInvalidProductError()
	}
	if w.indexOf(product.ID) >= 0 {
		return false, nil
	}
	w.entries = append(w.entries, WishlistEntry{
		productID: product.ID,
		snapshot:  SnapshotOf(product),
		addedAt:   w.now(),
	})
	return true, nil
}

// Remove deletes the entry for productID and reports whether it existed.
func (w *Wishlist) Remove(productID string) bool {
	i := w.indexOf(productID)
	if i < 0 {
		return false
	}
	w.entries = append(w.entries[:i], w.entries[i+1:]...)
	return true
}

// Toggle removes product if present, otherwise adds it. It returns whether
// the product is in the wishlist afterwards.
func (w *Wishlist) Toggle(product catalog.Product) (bool, error) {
	if w.Remove(product.ID) {
		return false, nil
	}
	if _, err := w.Add(product); err != nil {
		return false, err
	}
	return true, nil
}

func (w *Wishlist) Contains(productID string) bool { return w.indexOf(productID) >= 0 }
func (w *Wishlist) Count() int                     { return len(w.entries) }

// Entries returns a copy of the entries in insertion order
func (w *Wishlist) Entries() []WishlistEntry {
	entries := make([]WishlistEntry, len(w.entries))
	for i, e := range w.entries {
		e.snapshot = e.snapshot.clone()
		entries[i] = e
	}
	return entries
}

func (w *Wishlist) indexOf(productID string) int {
	for i, e := range w.entries {
		if e.productID == productID {
			return i
		}
	}
	return -1
}
