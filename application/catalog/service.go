/*
Package catalog Application Layer - product lookup for the storefront
*/
package catalog

import (
	"context"
	"strings"

	"storefront/domain/catalog"
	"storefront/domain/shared"
)

// Filter narrows a product listing. Zero fields are ignored.
type Filter struct {
	Category    string `form:"category"`
	InStockOnly bool   `form:"in_stock"`
	MinPrice    int64  `form:"min_price" binding:"min=0"`
	MaxPrice    int64  `form:"max_price" binding:"min=0"`
	Query       string `form:"q"`
}

// Specification combines the filter's criteria. nil matches every product.
func (f Filter) Specification() shared.Specification[catalog.Product] {
	var specs []shared.Specification[catalog.Product]
	if c := strings.TrimSpace(f.Category); c != "" {
		specs = append(specs, catalog.NewByCategorySpecification(c))
	}
	if f.InStockOnly {
		specs = append(specs, catalog.NewInStockSpecification())
	}
	if f.MinPrice > 0 || f.MaxPrice > 0 {
		specs = append(specs, catalog.PriceRangeSpecification{Min: f.MinPrice, Max: f.MaxPrice})
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		specs = append(specs, catalog.NameContainsSpecification{Query: q})
	}
	return shared.AllOf(specs...)
}

// ProductResponse Product response DTO
type ProductResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           int64    `json:"price"`
	OriginalPrice   int64    `json:"original_price,omitempty"`
	DiscountPercent int      `json:"discount_percent,omitempty"`
	Images          []string `json:"images"`
	Category        string   `json:"category"`
	InStock         bool     `json:"in_stock"`
	Sizes           []string `json:"sizes,omitempty"`
	Colors          []string `json:"colors,omitempty"`
	Description     string   `json:"description,omitempty"`
}

// ApplicationService Catalog application service
type ApplicationService struct {
	products catalog.Repository
}

func NewApplicationService(products catalog.Repository) *ApplicationService {
	return &ApplicationService{products: products}
}

// GetProduct returns catalog.ErrProductNotFound for unknown ids.
func (s *ApplicationService) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// ListProducts returns the products matching filter.
func (s *ApplicationService) ListProducts(ctx context.Context, filter Filter) ([]ProductResponse, error) {
	if filter.MinPrice > 0 && filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice {
		return nil, shared.NewValidationError("catalog", "min_price", "min_price must not exceed max_price", shared.ErrInvalidInput)
	}
	products, err := s.products.List(ctx, filter.Specification())
	if err != nil {
		return nil, err
	}
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out, nil
}

func toProductResponse(p catalog.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent(),
		Images:          images,
		Category:        p.Category,
		InStock:         p.InStock,
		Sizes:           p.Sizes,
		Colors:          p.Colors,
		Description:     p.Description,
	}
}
