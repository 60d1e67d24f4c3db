package middleware

import (
	"net/http"

	"storefront/api/response"
	"storefront/config"
	"storefront/infrastructure/session"
	"storefront/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// UserIDKey gin context key of the authenticated user id
	UserIDKey = "user_id"

	// OwnerKey gin context key of the cart owner
	OwnerKey = "owner"

	userOwnerPrefix  = "user:"
	guestOwnerPrefix = "guest:"
)

// AuthMiddleware verifies an optional bearer token. Requests without one
// continue as guests; a present but invalid token is rejected with 401.
func AuthMiddleware(tokens *session.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token, ok := session.BearerToken(header)
		if !ok {
			response.HandleAppError(c, errors.Unauthorized("authorization header must be a bearer token"))
			return
		}
		claims, err := tokens.Verify(token)
		if err != nil {
			response.HandleAppError(c, errors.Wrap(err, errors.CodeUnauthorized, "invalid or expired session token"))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(session.ContextWithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RequireAuth rejects requests that AuthMiddleware did not authenticate.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.UserIDFromContext(c.Request.Context()); !ok {
			response.HandleAppError(c, errors.Unauthorized("authentication required"))
			return
		}
		c.Next()
	}
}

// OwnerMiddleware resolves whose cart the request works on: the signed-in
// user, otherwise the guest id in the cookie. A guest without a valid
// cookie is issued a new id.
func OwnerMiddleware(cfg *config.SessionConfig) gin.HandlerFunc {
	maxAge := int(cfg.CookieMaxAge.Seconds())

	return func(c *gin.Context) {
		if userID, ok := session.UserIDFromContext(c.Request.Context()); ok {
			c.Set(OwnerKey, userOwnerPrefix+userID)
			c.Next()
			return
		}

		guestID, err := c.Cookie(cfg.GuestCookie)
		if err != nil || uuid.Validate(guestID) != nil {
			guestID = uuid.NewString()
		}
		// refresh the expiry on every visit
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.GuestCookie, guestID, maxAge, "/", "", cfg.SecureCookie, true)

		c.Set(OwnerKey, guestOwnerPrefix+guestID)
		c.Next()
	}
}

// Owner returns the owner OwnerMiddleware resolved.
func Owner(c *gin.Context) string {
	return c.GetString(OwnerKey)
}
