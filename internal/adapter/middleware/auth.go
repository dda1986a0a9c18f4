package middleware

import (
	"net/http"
	"strings"

	"temple-membership-backend/internal/domain/user"
	"temple-membership-backend/pkg/token"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// JWTAuth validates the bearer token and stores the caller as a
// user.Principal on the request context. Handlers never read auth state from
// anywhere else.
func JWTAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authorization header format"})
			}
			claims, err := token.Parse(secret, parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set(principalContextKey, user.Principal{
				UserID:   claims.Subject,
				Email:    claims.Email,
				FullName: claims.FullName,
				Phone:    claims.Phone,
			})
			return next(c)
		}
	}
}

func PrincipalFrom(c echo.Context) (user.Principal, bool) {
	p, ok := c.Get(principalContextKey).(user.Principal)
	return p, ok
}
