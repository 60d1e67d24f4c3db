/*
Package checkout - checkout API controller
*/
package checkout

import (
	"storefront/api/ctxutil"
	"storefront/api/middleware"
	"storefront/api/response"
	checkoutapp "storefront/application/checkout"

	"github.com/gin-gonic/gin"
)

// Controller Checkout controller
type Controller struct {
	checkoutService *checkoutapp.ApplicationService
}

func NewController(checkoutService *checkoutapp.ApplicationService) *Controller {
	return &Controller{checkoutService: checkoutService}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	checkout := router.Group("/checkout")
	{
		checkout.GET("/quote", c.Quote)
		checkout.POST("/orders", middleware.RequireAuth(), c.PlaceOrder)
	}
}

// Quote GET /api/v1/checkout/quote
func (c *Controller) Quote(ctx *gin.Context) {
	quote := c.checkoutService.Quote(ctxutil.WithRequestID(ctx), middleware.Owner(ctx))
	response.HandleSuccess(ctx, quote, "quote calculated")
}

// PlaceOrder POST /api/v1/checkout/orders
func (c *Controller) PlaceOrder(ctx *gin.Context) {
	var req checkoutapp.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindError(ctx, err)
		return
	}

	confirmation, err := c.checkoutService.PlaceOrder(ctxutil.WithRequestID(ctx), middleware.Owner(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, confirmation, "order placed")
}
