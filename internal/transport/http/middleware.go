package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

const (
	contextActorKey = "auth.actor"
	contextRoleKey  = "auth.role"
)

// RequireAdmin guards the portal routes. The token is the one issued by the
// login endpoint; its subject becomes the actor name audit entries carry.
func RequireAdmin(tokens *util.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if strings.TrimSpace(authHeader) == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("missing authorization header"))
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid authorization header"))
			}
			claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid or expired token"))
			}
			if claims.Role != "admin" {
				return c.JSON(http.StatusForbidden, util.Error("admin privileges required"))
			}
			c.Set(contextActorKey, claims.Subject)
			c.Set(contextRoleKey, claims.Role)
			return next(c)
		}
	}
}

// CurrentActor returns the authenticated operator's name, or "unknown" when
// called outside a guarded route.
func CurrentActor(c echo.Context) string {
	if actor, ok := c.Get(contextActorKey).(string); ok && actor != "" {
		return actor
	}
	return "unknown"
}
