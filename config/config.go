package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. STOREFRONT_SERVER_PORT
const EnvPrefix = "STOREFRONT"

// Config Application Configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Session  SessionConfig  `mapstructure:"session"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
}

// AppConfig Application Configuration
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"` // development, staging, production
}

// ServerConfig Server Configuration
type ServerConfig struct {
	Port            string          `mapstructure:"port"`
	ReadTimeout     time.Duration   `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration   `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig Rate Limiting Configuration
type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Rate    float64 `mapstructure:"rate"`  // Requests per second
	Burst   int     `mapstructure:"burst"` // Burst capacity
}

// DatabaseConfig Database Configuration
type DatabaseConfig struct {
	Type            string        `mapstructure:"type"` // memory, mysql, sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LogLevel        string        `mapstructure:"log_level"`
	Retry           RetryConfig   `mapstructure:"retry"`
}

// RetryConfig Retry configuration for transient write failures
type RetryConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	MaxAttempts        int           `mapstructure:"max_attempts"`
	InitialDelay       time.Duration `mapstructure:"initial_delay"`
	MaxDelay           time.Duration `mapstructure:"max_delay"`
	BackoffFactor      float64       `mapstructure:"backoff_factor"`
	JitterEnabled      bool          `mapstructure:"jitter_enabled"`
	RetryOnDeadlock    bool          `mapstructure:"retry_on_deadlock"`
	RetryOnLockTimeout bool          `mapstructure:"retry_on_lock_timeout"`
	RetryOnBusy        bool          `mapstructure:"retry_on_busy"`
}

// LogConfig Log Configuration
type LogConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // json, console
	Output     string `mapstructure:"output"` // stdout, file
	FilePath   string `mapstructure:"file_path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// CORSConfig CORS Configuration
type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// SessionConfig Session Configuration - JWT verification and the guest cookie
type SessionConfig struct {
	JWTSecret    string        `mapstructure:"jwt_secret"`
	Issuer       string        `mapstructure:"issuer"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
	GuestCookie  string        `mapstructure:"guest_cookie"`
	CookieMaxAge time.Duration `mapstructure:"cookie_max_age"`
	SecureCookie bool          `mapstructure:"secure_cookie"`
}

// PricingConfig Pricing Configuration - amounts in the base currency unit
type PricingConfig struct {
	Currency              string `mapstructure:"currency"`
	FreeShippingThreshold int64  `mapstructure:"free_shipping_threshold"`
	FlatShippingFee       int64  `mapstructure:"flat_shipping_fee"`
	TaxRateBasisPoints    int64  `mapstructure:"tax_rate_bps"`
}

// StorageConfig Storage Configuration - key-value keys of the cart aggregates
type StorageConfig struct {
	CartKey        string `mapstructure:"cart_key"`
	WishlistKey    string `mapstructure:"wishlist_key"`
	PreferencesKey string `mapstructure:"preferences_key"`
	// MaxLoadedOwners bounds the cart stores held in memory; 0 means no limit
	MaxLoadedOwners int `mapstructure:"max_loaded_owners"`
}

// CatalogConfig Catalog Configuration
type CatalogConfig struct {
	SeedFile string `mapstructure:"seed_file"`
}

// CheckoutConfig Checkout Configuration
type CheckoutConfig struct {
	DeliveryDays int `mapstructure:"delivery_days"`
}

// IsDevelopment Whether it's development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction Whether it's production environment
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	var errs []error
	switch c.Database.Type {
	case "memory", "mysql", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("database.type %q is not one of memory, mysql, sqlite", c.Database.Type))
	}
	if c.IsProduction() && c.Session.JWTSecret == DevJWTSecret {
		errs = append(errs, errors.New("session.jwt_secret must be set in production"))
	}
	if c.Pricing.TaxRateBasisPoints < 0 || c.Pricing.FlatShippingFee < 0 {
		errs = append(errs, errors.New("pricing amounts must not be negative"))
	}
	if c.Storage.MaxLoadedOwners < 0 {
		errs = append(errs, errors.New("storage.max_loaded_owners must not be negative"))
	}
	if c.Checkout.DeliveryDays < 0 {
		errs = append(errs, errors.New("checkout.delivery_days must not be negative"))
	}
	return errors.Join(errs...)
}

// Load Load Configuration
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Use default values when config file doesn't exist
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// DevJWTSecret is the default signing secret; production refuses to start with it.
const DevJWTSecret = "storefront-dev-secret"

// setDefaults Set default configuration
func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "storefront")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.env", "development")

	// Server
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.rate_limit.enabled", true)
	v.SetDefault("server.rate_limit.rate", 100)
	v.SetDefault("server.rate_limit.burst", 200)

	// Database
	v.SetDefault("database.type", "memory")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "storefront")
	v.SetDefault("database.sqlite_path", "data/storefront.db")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.log_level", "warn")

	// Retry
	v.SetDefault("database.retry.enabled", true)
	v.SetDefault("database.retry.max_attempts", 3)
	v.SetDefault("database.retry.initial_delay", "100ms")
	v.SetDefault("database.retry.max_delay", "2s")
	v.SetDefault("database.retry.backoff_factor", 2.0)
	v.SetDefault("database.retry.jitter_enabled", true)
	v.SetDefault("database.retry.retry_on_deadlock", true)
	v.SetDefault("database.retry.retry_on_lock_timeout", true)
	v.SetDefault("database.retry.retry_on_busy", true)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file_path", "logs/app.log")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 7)
	v.SetDefault("log.compress", true)

	// CORS
	v.SetDefault("cors.allow_origins", []string{"http://localhost:5173"})
	v.SetDefault("cors.allow_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "Accept-Language"})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", 86400)

	// Session
	v.SetDefault("session.jwt_secret", DevJWTSecret)
	v.SetDefault("session.issuer", "storefront")
	v.SetDefault("session.token_ttl", "24h")
	v.SetDefault("session.guest_cookie", "bw_cart_id")
	v.SetDefault("session.cookie_max_age", "720h")
	v.SetDefault("session.secure_cookie", false)

	// Pricing
	v.SetDefault("pricing.currency", "INR")
	v.SetDefault("pricing.free_shipping_threshold", 1000)
	v.SetDefault("pricing.flat_shipping_fee", 50)
	v.SetDefault("pricing.tax_rate_bps", 1800)

	// Storage
	v.SetDefault("storage.cart_key", "bagweavers_cart")
	v.SetDefault("storage.wishlist_key", "bagweavers_wishlist")
	v.SetDefault("storage.preferences_key", "bw_preferences")
	v.SetDefault("storage.max_loaded_owners", 10000)

	// Catalog
	v.SetDefault("catalog.seed_file", "config/catalog.yaml")

	// Checkout
	v.SetDefault("checkout.delivery_days", 7)
}
