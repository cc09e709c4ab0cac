package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/response"
	"github.com/solucioning/fleetforms/types"
)

// RequireRole gates an endpoint on an allow-list of roles. Role is the sole
// authorization dimension; ownership checks happen in the services.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsVal, exists := c.Get("claims")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, ok := claimsVal.(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
	}
}
