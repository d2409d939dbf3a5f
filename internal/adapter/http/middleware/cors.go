package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows every origin unless allowedOrigins is set.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		return cors.Default()
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = allowedOrigins
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Accept-Language", RequestIDHeader)
	cfg.ExposeHeaders = []string{RequestIDHeader}
	return cors.New(cfg)
}
