package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/studypilot/server/internal/config"
	"github.com/studypilot/server/internal/logger"
)

// per-IP request budget for the whole API surface
const rateLimitFormat = "120-M"

// configures cross-origin access for the web client
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else if cfg.IsProduction() {
		corsConfig.AllowOrigins = []string{cfg.BaseURL}
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}

	return cors.New(corsConfig)
}

// applies a per-IP rate limit backed by an in-memory store
func RateLimitMiddleware() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(rateLimitFormat)
	if err != nil {
		logger.Fatal("invalid rate limit format", "format", rateLimitFormat, "error", err)
	}

	store := memory.NewStore()

	return mgin.NewMiddleware(limiter.New(store, rate))
}
