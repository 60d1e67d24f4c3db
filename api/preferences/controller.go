/*
Package preferences - display preferences and translation API controller
*/
package preferences

import (
	"strconv"

	"storefront/api/ctxutil"
	"storefront/api/middleware"
	"storefront/api/response"
	prefapp "storefront/application/preferences"
	"storefront/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller Preferences controller
type Controller struct {
	prefService *prefapp.ApplicationService
}

func NewController(prefService *prefapp.ApplicationService) *Controller {
	return &Controller{prefService: prefService}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences")
	{
		prefs.GET("", c.Get)
		prefs.PUT("", c.Update)
		prefs.GET("/format", c.Format)
	}
	router.GET("/i18n/:key", c.Translate)
}

func acceptLanguage(ctx *gin.Context) string {
	return ctx.GetHeader("Accept-Language")
}

// Get GET /api/v1/preferences
func (c *Controller) Get(ctx *gin.Context) {
	p := c.prefService.Get(ctxutil.WithRequestID(ctx), middleware.Owner(ctx), acceptLanguage(ctx))
	response.HandleSuccess(ctx, p, "preferences retrieved")
}

// Update PUT /api/v1/preferences
func (c *Controller) Update(ctx *gin.Context) {
	var req prefapp.UpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindError(ctx, err)
		return
	}

	p, err := c.prefService.Update(ctxutil.WithRequestID(ctx), middleware.Owner(ctx), acceptLanguage(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, p, "preferences updated")
}

// Format GET /api/v1/preferences/format?amount=1299
func (c *Controller) Format(ctx *gin.Context) {
	amount, err := strconv.ParseInt(ctx.Query("amount"), 10, 64)
	if err != nil {
		response.HandleAppError(ctx, errors.Validation("amount must be an integer"))
		return
	}
	f := c.prefService.Format(ctxutil.WithRequestID(ctx), middleware.Owner(ctx), acceptLanguage(ctx), amount)
	response.HandleSuccess(ctx, f, "amount formatted")
}

// Translate GET /api/v1/i18n/:key
func (c *Controller) Translate(ctx *gin.Context) {
	t := c.prefService.Translate(ctxutil.WithRequestID(ctx), middleware.Owner(ctx), acceptLanguage(ctx), ctx.Param("key"))
	response.HandleSuccess(ctx, t, "translation retrieved")
}
