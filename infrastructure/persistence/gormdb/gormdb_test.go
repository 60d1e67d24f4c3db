package gormdb

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/domain/catalog"
	"storefront/domain/shared"
	"storefront/infrastructure/persistence"
	"storefront/infrastructure/persistence/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(config.DatabaseConfig{Type: "sqlite", SQLitePath: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(context.Background(), db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func testRetry() retry.Config {
	cfg := retry.DefaultConfig
	cfg.JitterEnabled = false
	return cfg
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(config.DatabaseConfig{
		Host: "db", Port: "3306", Username: "shop", Password: "pw", Database: "storefront",
	})
	assert.Contains(t, dsn, "shop:pw@tcp(db:3306)/storefront?")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Type: "postgres"})
	assert.Error(t, err)
}

func TestKVStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	kv := NewKVStore(openTestDB(t), testRetry())

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "guest-1:bagweavers_cart", []byte(`[{"id":"1"}]`)))
	v, ok, err := kv.Get(ctx, "guest-1:bagweavers_cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, string(v))

	// second Set on the same key is an upsert
	require.NoError(t, kv.Set(ctx, "guest-1:bagweavers_cart", []byte(`[]`)))
	v, _, err = kv.Get(ctx, "guest-1:bagweavers_cart")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(v))

	require.NoError(t, kv.Delete(ctx, "guest-1:bagweavers_cart"))
	_, ok, err = kv.Get(ctx, "guest-1:bagweavers_cart")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting an absent key is not an error
	assert.NoError(t, kv.Delete(ctx, "guest-1:bagweavers_cart"))
}

func TestKVStore_Namespaced(t *testing.T) {
	ctx := context.Background()
	kv := NewKVStore(openTestDB(t), testRetry())
	alice := shared.NewNamespaced(kv, "user-alice")
	bob := shared.NewNamespaced(kv, "user-bob")

	require.NoError(t, alice.Set(ctx, "bagweavers_wishlist", []byte("a")))
	_, ok, err := bob.Get(ctx, "bagweavers_wishlist")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := kv.Get(ctx, "user-alice:bagweavers_wishlist")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", string(v))
}

func TestKVStore_UsesTransactionFromContext(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	kv := NewKVStore(db, testRetry())

	err := db.Transaction(func(tx *gorm.DB) error {
		txCtx := persistence.ContextWithTx(ctx, tx)
		require.NoError(t, kv.Set(txCtx, "k", []byte("v")))
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "rolled back write must not be visible")
}

func seedProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "1", Name: "Handwoven Tote", Price: 1299, OriginalPrice: 2499, Images: []string{"/img/tote-1.jpg", "/img/tote-2.jpg"}, Category: "totes", InStock: true, Colors: []string{"Natural", "Indigo"}},
		{ID: "2", Name: "Jute Sling Bag", Price: 999, OriginalPrice: 1899, Images: []string{"/img/sling.jpg"}, Category: "slings", InStock: true},
		{ID: "3", Name: "Cotton Pouch", Price: 499, OriginalPrice: 899, Images: []string{"/img/pouch.jpg"}, Category: "pouches", InStock: false},
		{ID: "4", Name: "Mini Coin Pouch", Price: 349, OriginalPrice: 699, Category: "pouches", InStock: true},
	}
}

func TestProductRepository_SeedAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(openTestDB(t), testRetry())
	require.NoError(t, repo.Seed(ctx, seedProducts()))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	p, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Handwoven Tote", p.Name)
	assert.Equal(t, []string{"/img/tote-1.jpg", "/img/tote-2.jpg"}, p.Images)
	assert.Equal(t, []string{"Natural", "Indigo"}, p.Colors)
	assert.Nil(t, p.Sizes)

	_, err = repo.FindByID(ctx, "99")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// reseeding replaces rows instead of failing on the primary key
	updated := seedProducts()
	updated[0].Price = 1199
	require.NoError(t, repo.Seed(ctx, updated))
	p, err = repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1199), p.Price)
}

func TestProductRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(openTestDB(t), testRetry())
	require.NoError(t, repo.Seed(ctx, seedProducts()))

	ids := func(ps []catalog.Product) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.ID
		}
		return out
	}

	tests := []struct {
		name string
		spec shared.Specification[catalog.Product]
		want []string
	}{
		{"all", nil, []string{"1", "2", "3", "4"}},
		{"category", catalog.NewByCategorySpecification("Pouches"), []string{"3", "4"}},
		{"in stock pouches", shared.AllOf(catalog.NewByCategorySpecification("pouches"), catalog.NewInStockSpecification()), []string{"4"}},
		{"price range", catalog.PriceRangeSpecification{Min: 400, Max: 1000}, []string{"2", "3"}},
		{"name", catalog.NameContainsSpecification{Query: "pouch"}, []string{"3", "4"}},
		{"not in stock", shared.Not(catalog.NewInStockSpecification()), []string{"3"}},
		{"or", shared.Or(catalog.NewByCategorySpecification("totes"), catalog.NewByCategorySpecification("slings")), []string{"1", "2"}},
		// a LIKE wildcard in the query falls back to in-memory filtering
		{"untranslatable", catalog.NameContainsSpecification{Query: "100%"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestProductRepository_SaveRejectsInvalid(t *testing.T) {
	repo := NewProductRepository(openTestDB(t), testRetry())
	err := repo.Save(context.Background(), catalog.Product{ID: "5"})
	assert.Error(t, err)
}
