package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"storefront/api"
	apicart "storefront/api/cart"
	apicatalog "storefront/api/catalog"
	apicheckout "storefront/api/checkout"
	"storefront/api/health"
	apiprefs "storefront/api/preferences"
	"storefront/api/wishlist"
	appcart "storefront/application/cart"
	catalogapp "storefront/application/catalog"
	checkoutapp "storefront/application/checkout"
	prefapp "storefront/application/preferences"
	"storefront/config"
	"storefront/domain/cart"
	"storefront/domain/catalog"
	"storefront/domain/order"
	"storefront/domain/shared"
	"storefront/infrastructure/persistence/gormdb"
	"storefront/infrastructure/persistence/memory"
	"storefront/infrastructure/persistence/retry"
	"storefront/infrastructure/session"
	"storefront/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppBuilder builds an App from configuration. Storage defaults to what
// database.type selects and can be replaced with WithStorage.
type AppBuilder struct {
	cfg      *config.Config
	kv       shared.KVStore
	products catalog.Repository
	checks   map[string]health.CheckFunc
	handlers map[string][]shared.EventHandler
}

// NewBuilder creates a new AppBuilder
func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{
		cfg:      cfg,
		checks:   map[string]health.CheckFunc{},
		handlers: map[string][]shared.EventHandler{},
	}
}

// WithStorage uses kv and products instead of opening the configured database
func (b *AppBuilder) WithStorage(kv shared.KVStore, products catalog.Repository) *AppBuilder {
	b.kv = kv
	b.products = products
	return b
}

// WithHealthCheck adds a named readiness probe
func (b *AppBuilder) WithHealthCheck(name string, fn health.CheckFunc) *AppBuilder {
	b.checks[name] = fn
	return b
}

// WithEventHandler subscribes handler to eventName on the app's event bus
func (b *AppBuilder) WithEventHandler(eventName string, handler shared.EventHandler) *AppBuilder {
	b.handlers[eventName] = append(b.handlers[eventName], handler)
	return b
}

// Build creates the App instance
func (b *AppBuilder) Build(ctx context.Context) (*App, error) {
	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	var db *gorm.DB
	if b.kv == nil || b.products == nil {
		var err error
		db, err = b.initStorage(ctx)
		if err != nil {
			return nil, err
		}
	}

	pricing := pricingFromConfig(b.cfg.Pricing)
	stores := appcart.NewBoundedRegistry(b.kv, b.cfg.Storage.MaxLoadedOwners,
		appcart.WithKeys(appcart.Keys{Cart: b.cfg.Storage.CartKey, Wishlist: b.cfg.Storage.WishlistKey}),
		appcart.WithPricing(pricing),
		appcart.WithLogger(logger.With(zap.String("component", "cart"))),
	)

	bus := shared.NewEventBus()
	bus.Subscribe(order.EventOrderPlaced, logOrderPlaced)
	for name, handlers := range b.handlers {
		for _, h := range handlers {
			bus.Subscribe(name, h)
		}
	}

	cartService := appcart.NewApplicationService(stores, b.products)
	checkoutService := checkoutapp.NewApplicationService(stores, session.Provider{}, bus, checkoutapp.Config{
		Pricing:      pricing,
		Currency:     b.cfg.Pricing.Currency,
		DeliveryDays: b.cfg.Checkout.DeliveryDays,
	})

	router := api.NewRouter(b.cfg, session.FromConfig(b.cfg.Session), api.Controllers{
		Health:      health.NewController(b.cfg, b.checks),
		Catalog:     apicatalog.NewController(catalogapp.NewApplicationService(b.products)),
		Cart:        apicart.NewController(cartService),
		Wishlist:    wishlist.NewController(cartService),
		Checkout:    apicheckout.NewController(checkoutService),
		Preferences: apiprefs.NewController(prefapp.NewApplicationService(b.kv, b.cfg.Storage.PreferencesKey)),
	})
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + b.cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
	}

	return &App{
		config: b.cfg,
		router: router,
		server: server,
		db:     db,
		stores: stores,
	}, nil
}

// initStorage wires the key-value store and the catalog for database.type.
func (b *AppBuilder) initStorage(ctx context.Context) (*gorm.DB, error) {
	if b.cfg.Database.Type == "memory" {
		logger.Info("Using in-memory persistence layer")
		products, err := loadSeedIfPresent(b.cfg.Catalog.SeedFile)
		if err != nil {
			return nil, err
		}
		b.kv = memory.NewKVStore()
		b.products = memory.NewProductRepository(products...)
		return nil, nil
	}

	db, err := gormdb.Open(b.cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := gormdb.Ping(ctx, db); err != nil {
		_ = gormdb.Close(db)
		return nil, err
	}

	// sqlite files are created on demand, so their schema is too
	if b.cfg.IsDevelopment() || b.cfg.Database.Type == "sqlite" {
		if err := gormdb.AutoMigrate(ctx, db); err != nil {
			_ = gormdb.Close(db)
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	retryCfg := retry.FromAppConfig(b.cfg.Database.Retry)
	products := gormdb.NewProductRepository(db, retryCfg)
	if err := seedIfEmpty(ctx, products, b.cfg.Catalog.SeedFile); err != nil {
		_ = gormdb.Close(db)
		return nil, err
	}

	b.kv = gormdb.NewKVStore(db, retryCfg)
	b.products = products
	b.checks["database"] = func(ctx context.Context) error { return gormdb.Ping(ctx, db) }
	return db, nil
}

// loadSeedIfPresent reads the seed file, treating a missing file as an
// empty catalog.
func loadSeedIfPresent(path string) ([]catalog.Product, error) {
	if path == "" {
		return nil, nil
	}
	products, err := memory.LoadSeed(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn("Catalog seed file not found, starting with an empty catalog", zap.String("path", path))
		return nil, nil
	}
	return products, err
}

func seedIfEmpty(ctx context.Context, products *gormdb.ProductRepository, path string) error {
	n, err := products.Count(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if n > 0 {
		return nil
	}
	seed, err := loadSeedIfPresent(path)
	if err != nil || len(seed) == 0 {
		return err
	}
	return products.Seed(ctx, seed)
}

func pricingFromConfig(cfg config.PricingConfig) cart.Pricing {
	return cart.Pricing{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		FlatShippingFee:       cfg.FlatShippingFee,
		TaxRateBasisPoints:    cfg.TaxRateBasisPoints,
	}
}

func logOrderPlaced(event shared.DomainEvent) error {
	placed, ok := event.(*order.PlacedEvent)
	if !ok {
		return fmt.Errorf("unexpected event %T", event)
	}
	logger.Info("Order placed",
		zap.String("order_id", placed.AggregateID()),
		zap.String("user_id", placed.UserID()),
		zap.Int64("total", placed.Total().Amount()),
		zap.String("currency", placed.Total().Currency()),
		zap.String("payment_method", string(placed.PaymentMethod())),
		zap.Time("occurred_on", placed.OccurredOn()))
	return nil
}
