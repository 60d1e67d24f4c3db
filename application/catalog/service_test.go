package catalog

import (
	"context"
	"testing"

	"storefront/domain/catalog"
	"storefront/domain/shared"
	"storefront/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *ApplicationService {
	return NewApplicationService(memory.NewProductRepository(
		catalog.Product{ID: "1", Name: "Handwoven Tote", Price: 1299, OriginalPrice: 2499, Category: "totes", InStock: true},
		catalog.Product{ID: "2", Name: "Jute Sling Bag", Price: 999, OriginalPrice: 1899, Category: "slings", InStock: true},
		catalog.Product{ID: "3", Name: "Cotton Pouch", Price: 499, OriginalPrice: 899, Category: "pouches"},
		catalog.Product{ID: "4", Name: "Mini Coin Pouch", Price: 349, OriginalPrice: 699, Category: "pouches", InStock: true},
	))
}

func ids(ps []ProductResponse) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestGetProduct(t *testing.T) {
	svc := newTestService()

	p, err := svc.GetProduct(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Handwoven Tote", p.Name)
	assert.Equal(t, 48, p.DiscountPercent)
	assert.NotNil(t, p.Images)

	_, err = svc.GetProduct(context.Background(), "9")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestListProducts(t *testing.T) {
	svc := newTestService()
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter", Filter{}, []string{"1", "2", "3", "4"}},
		{"category", Filter{Category: "pouches"}, []string{"3", "4"}},
		{"in stock pouches", Filter{Category: "pouches", InStockOnly: true}, []string{"4"}},
		{"max price", Filter{MaxPrice: 500}, []string{"3", "4"}},
		{"min price", Filter{MinPrice: 1000}, []string{"1"}},
		{"query", Filter{Query: " sling "}, []string{"2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListProducts(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestListProducts_InvertedRange(t *testing.T) {
	_, err := newTestService().ListProducts(context.Background(), Filter{MinPrice: 900, MaxPrice: 100})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestFilter_EmptySpecification(t *testing.T) {
	assert.Nil(t, Filter{Category: "  "}.Specification())
}
