package cart

import (
	"time"

	"storefront/domain/catalog"
)

// Variant is the (size, color) selection of a line. An empty string means
// nothing was selected; it is a distinct value from any named size or color.
type Variant struct {
	Size  string
	Color string
}

// LineKey identifies a cart line. No two lines of a cart share a key.
type LineKey struct {
	ProductID string
	Variant   Variant
}

// Snapshot holds the product display fields captured when a line or entry
// was added. It is never refreshed from the catalog.
type Snapshot struct {
	Name          string
	Price         int64
	OriginalPrice int64
	Images        []string
	Category      string
}

// SnapshotOf copies the display fields of p.
func SnapshotOf(p catalog.Product) Snapshot {
	var images []string
	if p.Images != nil {
		images = make([]string, len(p.Images))
		copy(images, p.Images)
	}
	return Snapshot{
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Images:        images,
		Category:      p.Category,
	}
}

func (s Snapshot) clone() Snapshot {
	c := s
	if s.Images != nil {
		c.Images = make([]string, len(s.Images))
		copy(c.Images, s.Images)
	}
	return c
}

// Line is one cart entry - an entity inside the Cart aggregate.
// It can only be changed through the Cart.
type Line struct {
	key      LineKey
	quantity int
	snapshot Snapshot
	addedAt  time.Time
}

// LineReconstructionDTO rebuilds a Line from persisted data.
// Only the persistence codec should use it.
type LineReconstructionDTO struct {
	ProductID string
	Size      string
	Color     string
	Quantity  int
	Snapshot  Snapshot
	AddedAt   time.Time
}

// RebuildLine reconstructs a Line from a DTO.
func RebuildLine(dto LineReconstructionDTO) Line {
	return Line{
		key: LineKey{
			ProductID: dto.ProductID,
			Variant:   Variant{Size: dto.Size, Color: dto.Color},
		},
		quantity: dto.Quantity,
		snapshot: dto.Snapshot.clone(),
		addedAt:  dto.AddedAt,
	}
}

func (l Line) Key() LineKey       { return l.key }
func (l Line) ProductID() string  { return l.key.ProductID }
func (l Line) Variant() Variant   { return l.key.Variant }
func (l Line) Quantity() int      { return l.quantity }
func (l Line) Snapshot() Snapshot { return l.snapshot.clone() }
func (l Line) UnitPrice() int64   { return l.snapshot.Price }
func (l Line) AddedAt() time.Time { return l.addedAt }
func (l Line) Subtotal() int64 {
	sub, _ := l.checkedSubtotal()
	return sub
}

func (l Line) checkedSubtotal() (int64, bool) {
	price, qty := l.snapshot.Price, int64(l.quantity)
	if price < 0 || qty < 0 {
		return 0, false
	}
	if price != 0 && qty > MaxTotal/price {
		return 0, false
	}
	return price * qty, true
}
