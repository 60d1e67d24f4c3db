package catalog

import (
	"context"
	"strings"

	"storefront/domain/shared"
)

// ByCategorySpecification filters products by category (case-insensitive)
type ByCategorySpecification struct {
	Category string
}

func (spec ByCategorySpecification) IsSatisfiedBy(ctx context.Context, p Product) bool {
	return strings.EqualFold(p.Category, spec.Category)
}

// InStockSpecification keeps products that are in stock
type InStockSpecification struct{}

func (InStockSpecification) IsSatisfiedBy(ctx context.Context, p Product) bool {
	return p.InStock
}

// PriceRangeSpecification filters by price; a zero bound is ignored
type PriceRangeSpecification struct {
	Min int64
	Max int64
}

func (spec PriceRangeSpecification) IsSatisfiedBy(ctx context.Context, p Product) bool {
	if spec.Min > 0 && p.Price < spec.Min {
		return false
	}
	if spec.Max > 0 && p.Price > spec.Max {
		return false
	}
	return true
}

// NameContainsSpecification matches a case-insensitive substring of the name
type NameContainsSpecification struct {
	Query string
}

func (spec NameContainsSpecification) IsSatisfiedBy(ctx context.Context, p Product) bool {
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(spec.Query))
}

// Helper functions for common specifications

func NewByCategorySpecification(category string) shared.Specification[Product] {
	return ByCategorySpecification{Category: category}
}

func NewInStockSpecification() shared.Specification[Product] {
	return InStockSpecification{}
}

func NewPriceRangeSpecification(min, max int64) shared.Specification[Product] {
	return PriceRangeSpecification{Min: min, Max: max}
}

func NewNameContainsSpecification(query string) shared.Specification[Product] {
	return NameContainsSpecification{Query: query}
}
