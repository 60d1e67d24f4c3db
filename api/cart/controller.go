/*
Package cart - cart API controller

Every route works on the cart of the owner resolved by the owner
middleware: the signed-in user or the guest cookie.
*/
package cart

import (
	"storefront/api/ctxutil"
	"storefront/api/middleware"
	"storefront/api/response"
	cartapp "storefront/application/cart"

	"github.com/gin-gonic/gin"
)

// Controller Cart controller
type Controller struct {
	cartService *cartapp.ApplicationService
}

func NewController(cartService *cartapp.ApplicationService) *Controller {
	return &Controller{cartService: cartService}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	cartGroup := router.Group("/cart")
	{
		cartGroup.GET("", c.GetCart)
		cartGroup.DELETE("", c.ClearCart)
		cartGroup.GET("/quote", c.GetQuote)
		cartGroup.POST("/items", c.AddItem)
		cartGroup.PUT("/items", c.UpdateItem)
		cartGroup.DELETE("/items", c.RemoveItem)
	}
}

// GetCart GET /api/v1/cart
func (c *Controller) GetCart(ctx *gin.Context) {
	cart := c.cartService.GetCart(ctxutil.WithRequestID(ctx), middleware.Owner(ctx))
	response.HandleSuccess(ctx, cart, "cart retrieved")
}

// AddItem POST /api/v1/cart/items
func (c *Controller) AddItem(ctx *gin.Context) {
	var req cartapp.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindError(ctx, err)
		return
	}

	cart, err := c.cartService.AddItem(ctxutil.WithRequestID(ctx), middleware.Owner(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, cart, "item added to cart")
}

// UpdateItem PUT /api/v1/cart/items - a quantity of zero or less removes the line
func (c *Controller) UpdateItem(ctx *gin.Context) {
	var req cartapp.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindError(ctx, err)
		return
	}

	cart, err := c.cartService.UpdateItem(ctxutil.WithRequestID(ctx), middleware.Owner(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, cart, "cart updated")
}

// RemoveItem DELETE /api/v1/cart/items?product_id=&size=&color=
func (c *Controller) RemoveItem(ctx *gin.Context) {
	var req cartapp.RemoveItemRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.HandleBindError(ctx, err)
		return
	}

	cart := c.cartService.RemoveItem(ctxutil.WithRequestID(ctx), middleware.Owner(ctx), req)
	response.HandleSuccess(ctx, cart, "item removed from cart")
}

// ClearCart DELETE /api/v1/cart
func (c *Controller) ClearCart(ctx *gin.Context) {
	cart := c.cartService.ClearCart(ctxutil.WithRequestID(ctx), middleware.Owner(ctx))
	response.HandleSuccess(ctx, cart, "cart cleared")
}

// GetQuote GET /api/v1/cart/quote
func (c *Controller) GetQuote(ctx *gin.Context) {
	quote := c.cartService.GetQuote(ctxutil.WithRequestID(ctx), middleware.Owner(ctx))
	response.HandleSuccess(ctx, quote, "quote calculated")
}
