package middleware

import (
	"net/http"

	"go-jobboard-backend/internal/authz"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route on the authorization policy: the resolved
// identity's role must be in the allowed set (admin always passes). Must run
// after AuthMiddleware. Ownership checks stay in the usecases, where the
// target resource is loaded.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := authz.Identity{
			ID:   c.GetString(string(domain.KeyUserID)),
			Role: c.GetString(string(domain.KeyUserRole)),
		}
		if !authz.HasRole(actor, allowed...) {
			response.Error(c, http.StatusForbidden, "User role not authorized to access this route", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
