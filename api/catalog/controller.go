/*
Package catalog - product API controller
*/
package catalog

import (
	"storefront/api/ctxutil"
	"storefront/api/response"
	catalogapp "storefront/application/catalog"

	"github.com/gin-gonic/gin"
)

// Controller Product controller
type Controller struct {
	catalogService *catalogapp.ApplicationService
}

func NewController(catalogService *catalogapp.ApplicationService) *Controller {
	return &Controller{catalogService: catalogService}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.GET("/:id", c.GetProduct)
	}
}

// ListProducts GET /api/v1/products?category=&in_stock=&min_price=&max_price=&q=
func (c *Controller) ListProducts(ctx *gin.Context) {
	var filter catalogapp.Filter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		response.HandleBindError(ctx, err)
		return
	}

	products, err := c.catalogService.ListProducts(ctxutil.WithRequestID(ctx), filter)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, products, "products retrieved")
}

// GetProduct GET /api/v1/products/:id
func (c *Controller) GetProduct(ctx *gin.Context) {
	product, err := c.catalogService.GetProduct(ctxutil.WithRequestID(ctx), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, product, "product retrieved")
}
