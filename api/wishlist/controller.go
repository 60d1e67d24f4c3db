/*
Package wishlist - wishlist API controller
*/
package wishlist

import (
	"storefront/api/ctxutil"
	"storefront/api/middleware"
	"storefront/api/response"
	cartapp "storefront/application/cart"

	"github.com/gin-gonic/gin"
)

// Controller Wishlist controller. The wishlist lives in the cart store, so
// it shares the cart application service.
type Controller struct {
	cartService *cartapp.ApplicationService
}

func NewController(cartService *cartapp.ApplicationService) *Controller {
	return &Controller{cartService: cartService}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	wishlist := router.Group("/wishlist")
	{
		wishlist.GET("", c.GetWishlist)
		wishlist.GET("/:productId", c.Contains)
		wishlist.POST("/:productId", c.Add)
		wishlist.DELETE("/:productId", c.Remove)
		wishlist.POST("/:productId/toggle", c.Toggle)
	}
}

// GetWishlist GET /api/v1/wishlist
func (c *Controller) GetWishlist(ctx *gin.Context) {
	w := c.cartService.GetWishlist(ctxutil.WithRequestID(ctx), middleware.Owner(ctx))
	response.HandleSuccess(ctx, w, "wishlist retrieved")
}

// Contains GET /api/v1/wishlist/:productId
func (c *Controller) Contains(ctx *gin.Context) {
	m := c.cartService.InWishlist(ctxutil.WithRequestID(ctx), middleware.Owner(ctx), ctx.Param("productId"))
	response.HandleSuccess(ctx, m, "wishlist membership retrieved")
}

// Add POST /api/v1/wishlist/:productId
func (c *Controller) Add(ctx *gin.Context) {
	w, err := c.cartService.AddToWishlist(ctxutil.WithRequestID(ctx), middleware.Owner(ctx), ctx.Param("productId"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, w, "added to wishlist")
}

// Remove DELETE /api/v1/wishlist/:productId
func (c *Controller) Remove(ctx *gin.Context) {
	w := c.cartService.RemoveFromWishlist(ctxutil.WithRequestID(ctx), middleware.Owner(ctx), ctx.Param("productId"))
	response.HandleSuccess(ctx, w, "removed from wishlist")
}

// Toggle POST /api/v1/wishlist/:productId/toggle
func (c *Controller) Toggle(ctx *gin.Context) {
	m, err := c.cartService.ToggleWishlist(ctxutil.WithRequestID(ctx), middleware.Owner(ctx), ctx.Param("productId"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, m, "wishlist toggled")
}
