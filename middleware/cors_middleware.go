package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/solucioning/fleetforms/config"
)

// OriginAllowed matches an origin against the configured list. Entries may
// carry a single '*' wildcard ("https://*.example.com").
func OriginAllowed(origin string) bool {
	for _, allowed := range config.CorsOrigins {
		if allowed == origin {
			return true
		}
		if strings.Contains(allowed, "*") {
			pattern := strings.Replace(allowed, "*", "", 1)
			if pattern != "" && strings.Contains(origin, pattern) {
				return true
			}
		}
	}
	return false
}

func CORSMiddleware() gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOriginFunc:  OriginAllowed,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	corsHandler := cors.New(corsConfig)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.ToLower(upgrade) == "websocket" {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
