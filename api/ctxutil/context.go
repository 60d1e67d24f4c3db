// Package ctxutil carries request scoped values from gin into service calls
package ctxutil

import (
	"context"

	"storefront/api/response"
	"storefront/infrastructure/persistence"

	"github.com/gin-gonic/gin"
)

// WithRequestID returns the request context carrying the request id.
func WithRequestID(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if persistence.RequestIDFromContext(ctx) != "" {
		return ctx
	}
	return persistence.ContextWithRequestID(ctx, response.GetRequestID(c))
}
