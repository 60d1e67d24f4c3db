package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadDefaultsOnly(t)
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.App.Name)
	assert.Equal(t, "memory", cfg.Database.Type)
	assert.Equal(t, int64(1000), cfg.Pricing.FreeShippingThreshold)
	assert.Equal(t, int64(50), cfg.Pricing.FlatShippingFee)
	assert.Equal(t, int64(1800), cfg.Pricing.TaxRateBasisPoints)
	assert.Equal(t, "bagweavers_cart", cfg.Storage.CartKey)
	assert.Equal(t, "bagweavers_wishlist", cfg.Storage.WishlistKey)
	assert.Equal(t, "bw_preferences", cfg.Storage.PreferencesKey)
	assert.Equal(t, 10000, cfg.Storage.MaxLoadedOwners)
	assert.Equal(t, 7, cfg.Checkout.DeliveryDays)
	assert.Equal(t, 24*time.Hour, cfg.Session.TokenTTL)
	assert.NoError(t, cfg.Validate())
}

func loadDefaultsOnly(t *testing.T) (*Config, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  name: storefront\n"), 0o600))
	return Load(path)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "database:\n  type: sqlite\npricing:\n  flat_shipping_fee: 80\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("STOREFRONT_SERVER_PORT", "9090")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, int64(80), cfg.Pricing.FlatShippingFee)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	cfg, err := loadDefaultsOnly(t)
	require.NoError(t, err)

	cfg.Database.Type = "postgres"
	assert.Error(t, cfg.Validate())

	cfg.Database.Type = "memory"
	cfg.App.Env = "production"
	assert.Error(t, cfg.Validate(), "dev secret in production")

	cfg.Session.JWTSecret = "s3cret"
	assert.NoError(t, cfg.Validate())

	cfg.Storage.MaxLoadedOwners = -1
	assert.Error(t, cfg.Validate())
}
