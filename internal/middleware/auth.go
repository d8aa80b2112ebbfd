package middleware

import (
	"strings"

	"quizdeck_backend/internal/config"
	"quizdeck_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates the request once per invocation by parsing
// the bearer token; claims land in the gin context for the handlers.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
