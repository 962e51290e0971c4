package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds security-related headers to all responses.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Next()
	}
}

// CORS allows the demo storefronts to call the API. Origins come from the
// ALLOWED_ORIGINS env var, comma separated, with localhost fallbacks.
func CORS() gin.HandlerFunc {
	allowedEnv := os.Getenv("ALLOWED_ORIGINS")
	var allowed []string
	if allowedEnv == "*" {
		allowed = []string{"*"}
	} else if allowedEnv != "" {
		for _, o := range strings.Split(allowedEnv, ",") {
			allowed = append(allowed, strings.TrimSpace(strings.TrimSuffix(o, "/")))
		}
	} else {
		allowed = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	allowAll := len(allowed) == 1 && allowed[0] == "*"

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			c.Next()
			return
		}

		normalized := strings.TrimSuffix(origin, "/")
		permitted := allowAll
		if !permitted {
			for _, a := range allowed {
				if a == normalized {
					permitted = true
					break
				}
			}
		}

		if !permitted {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Origin not allowed"})
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Vary", "Origin")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
