package catalog

import (
	"context"

	"storefront/domain/shared"
)

// Repository Product catalog repository interface
type Repository interface {
	// FindByID returns ErrProductNotFound when id is unknown
	FindByID(ctx context.Context, id string) (Product, error)

	// List returns the products satisfying spec; a nil spec lists everything
	List(ctx context.Context, spec shared.Specification[Product]) ([]Product, error)

	// Save inserts or replaces a product (used by catalog seeding)
	Save(ctx context.Context, product Product) error
}
