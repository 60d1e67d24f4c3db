package api

import (
	"net/http"

	"storefront/api/cart"
	"storefront/api/catalog"
	"storefront/api/checkout"
	"storefront/api/health"
	"storefront/api/middleware"
	"storefront/api/preferences"
	"storefront/api/wishlist"
	"storefront/config"
	"storefront/infrastructure/session"

	"github.com/gin-gonic/gin"
)

// Controllers are the route groups served under /api/v1
type Controllers struct {
	Health      *health.Controller
	Catalog     *catalog.Controller
	Cart        *cart.Controller
	Wishlist    *wishlist.Controller
	Checkout    *checkout.Controller
	Preferences *preferences.Controller
}

// Router Route configuration
type Router struct {
	engine      *gin.Engine
	config      *config.Config
	tokens      *session.TokenManager
	controllers Controllers
}

// NewRouter builds the engine with the global middleware chain.
func NewRouter(cfg *config.Config, tokens *session.TokenManager, controllers Controllers) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// order matters: the request id must exist before anything logs
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))

	return &Router{
		engine:      engine,
		config:      cfg,
		tokens:      tokens,
		controllers: controllers,
	}
}

// SetupRoutes registers every route. Shopper routes resolve the cart owner
// from the session token or the guest cookie.
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.controllers.Health.RegisterRoutes(apiGroup)
		r.controllers.Catalog.RegisterRoutes(apiGroup)

		shopper := apiGroup.Group("",
			middleware.AuthMiddleware(r.tokens),
			middleware.OwnerMiddleware(&r.config.Session),
		)
		r.controllers.Cart.RegisterRoutes(shopper)
		r.controllers.Wishlist.RegisterRoutes(shopper)
		r.controllers.Checkout.RegisterRoutes(shopper)
		r.controllers.Preferences.RegisterRoutes(shopper)
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
		})
	})
}

// GetEngine returns the gin engine, used as the http.Server handler
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
