/*
Package catalog - read-only product catalog

The catalog is a collaborator of the cart: the cart takes snapshots of
products when they are added and never writes back.
*/
package catalog

import (
	"errors"
	"strings"
)

// ErrProductNotFound is returned by repositories when an id is unknown.
// Use errors.Is(err, ErrProductNotFound).
var ErrProductNotFound = errors.New("product not found")

// Product is a catalog record. Price and OriginalPrice are in the catalog's
// base currency unit; OriginalPrice is zero when the product is not discounted.
type Product struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Price         int64    `json:"price" yaml:"price"`
	OriginalPrice int64    `json:"original_price,omitempty" yaml:"original_price"`
	Images        []string `json:"images" yaml:"images"`
	Category      string   `json:"category" yaml:"category"`
	InStock       bool     `json:"in_stock" yaml:"in_stock"`
	Sizes         []string `json:"sizes,omitempty" yaml:"sizes"`
	Colors        []string `json:"colors,omitempty" yaml:"colors"`
	Description   string   `json:"description,omitempty" yaml:"description"`
}

// DiscountPercent returns the rounded-down discount against OriginalPrice,
// or 0 when there is none.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 || p.OriginalPrice <= p.Price {
		return 0
	}
	return int((p.OriginalPrice - p.Price) * 100 / p.OriginalPrice)
}

// Clone returns a deep copy so callers cannot alias the slices.
func (p Product) Clone() Product {
	c := p
	c.Images = cloneStrings(p.Images)
	c.Sizes = cloneStrings(p.Sizes)
	c.Colors = cloneStrings(p.Colors)
	return c
}

// Validate checks the fields a catalog record must carry.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("product id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("product name is required")
	}
	if p.Price < 0 {
		return errors.New("product price must not be negative")
	}
	return nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
