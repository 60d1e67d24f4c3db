package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"storefront/domain/catalog"
	"storefront/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore(t *testing.T) {
	ctx := context.Background()
	kv := NewKVStore()

	_, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte("hello")
	require.NoError(t, kv.Set(ctx, "k", value))
	value[0] = 'j'

	got, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", string(got), "stored value must not alias the caller's slice")

	got[0] = 'y'
	again, _, _ := kv.Get(ctx, "k")
	assert.Equal(t, "hello", string(again))

	require.NoError(t, kv.Set(ctx, "empty", nil))
	empty, ok, err := kv.Get(ctx, "empty")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, empty)
	assert.Equal(t, 2, kv.Len())

	require.NoError(t, kv.Delete(ctx, "k"))
	require.NoError(t, kv.Delete(ctx, "k"))
	assert.Equal(t, 1, kv.Len())
}

func TestKVStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	kv := NewKVStore()

	assert.ErrorIs(t, kv.Set(ctx, "k", []byte("v")), context.Canceled)
	_, _, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, kv.Len())
}

const seedYAML = `
products:
  - id: "2"
    name: Jute Sling Bag
    price: 999
    original_price: 1899
    images: [/img/sling.jpg]
    category: slings
    in_stock: true
  - id: "1"
    name: Handwoven Tote
    price: 1299
    original_price: 2499
    images: [/img/tote.jpg]
    category: totes
    in_stock: true
    colors: [Natural, Indigo]
`

func TestParseSeed(t *testing.T) {
	products, err := ParseSeed([]byte(seedYAML))
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "1", products[0].ID, "seed is sorted by id")
	assert.Equal(t, int64(2499), products[0].OriginalPrice)
	assert.Equal(t, []string{"Natural", "Indigo"}, products[0].Colors)
	assert.True(t, products[1].InStock)
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "products: ["},
		{"missing name", "products:\n  - id: \"1\"\n    price: 10\n"},
		{"negative price", "products:\n  - id: \"1\"\n    name: x\n    price: -1\n"},
		{"duplicate", "products:\n  - id: \"1\"\n    name: a\n  - id: \"1\"\n    name: b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	products, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(
		catalog.Product{ID: "3", Name: "Cotton Pouch", Price: 499, Category: "pouches"},
		catalog.Product{ID: "1", Name: "Handwoven Tote", Price: 1299, Category: "totes", InStock: true, Images: []string{"/img/tote.jpg"}},
	)

	p, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	p.Images[0] = "changed"
	again, _ := repo.FindByID(ctx, "1")
	assert.Equal(t, "/img/tote.jpg", again.Images[0])

	_, err = repo.FindByID(ctx, "42")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "3", all[0].ID, "insertion order is kept")

	inStock, err := repo.List(ctx, catalog.NewInStockSpecification())
	require.NoError(t, err)
	require.Len(t, inStock, 1)
	assert.Equal(t, "1", inStock[0].ID)

	require.NoError(t, repo.Save(ctx, catalog.Product{ID: "3", Name: "Cotton Pouch", Price: 449, Category: "pouches"}))
	p, _ = repo.FindByID(ctx, "3")
	assert.Equal(t, int64(449), p.Price)
	all, _ = repo.List(ctx, shared.Specification[catalog.Product](nil))
	assert.Len(t, all, 2)

	assert.Error(t, repo.Save(ctx, catalog.Product{ID: "9"}))
}
