package po

import (
	"strings"
	"time"

	"storefront/domain/catalog"
)

// ProductPO Product persistence object. List fields are stored as
// newline-separated text so both dialects can hold them without JSON columns.
type ProductPO struct {
	ID            string    `gorm:"primaryKey;size:64"`
	Name          string    `gorm:"size:255;not null"`
	Price         int64     `gorm:"not null;index"`
	OriginalPrice int64     `gorm:"not null;default:0"`
	Images        string    `gorm:"type:text"`
	Category      string    `gorm:"size:64;index"`
	InStock       bool      `gorm:"not null;default:true"`
	Sizes         string    `gorm:"type:text"`
	Colors        string    `gorm:"type:text"`
	Description   string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (ProductPO) TableName() string {
	return "products"
}

// FromProduct converts a catalog product to its persistence object
func FromProduct(p catalog.Product) *ProductPO {
	return &ProductPO{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Images:        joinList(p.Images),
		Category:      p.Category,
		InStock:       p.InStock,
		Sizes:         joinList(p.Sizes),
		Colors:        joinList(p.Colors),
		Description:   p.Description,
	}
}

// ToDomain converts the persistence object back to a catalog product
func (p *ProductPO) ToDomain() catalog.Product {
	return catalog.Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Images:        splitList(p.Images),
		Category:      p.Category,
		InStock:       p.InStock,
		Sizes:         splitList(p.Sizes),
		Colors:        splitList(p.Colors),
		Description:   p.Description,
	}
}

func joinList(items []string) string {
	return strings.Join(items, "\n")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
