package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer credential to an identity once per
// request. The role always comes from the database, never from the token, so
// a stale token cannot carry an outdated role.
func AuthMiddleware(tokens *auth.TokenService, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Not authorized, no token", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Validate(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Not authorized, token failed", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetProfile(c.Request.Context(), userID)
		if err != nil {
			// A missing user is 401; a store failure is not the client's
			// fault and surfaces as 500 through the error middleware.
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code == http.StatusUnauthorized {
				response.Error(c, http.StatusUnauthorized, appErr.Message, nil)
			} else {
				c.Error(err)
			}
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}
