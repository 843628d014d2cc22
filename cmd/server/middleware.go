package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// tags every request with an id, honoring one supplied by a proxy
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}

// configures CORS for browser clients; credentials must be allowed
// because the session rides a cookie
func CORSMiddleware(environment string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if environment == "production" {
		cfg.AllowOrigins = []string{"https://indigenousconnect.app"}
	} else {
		cfg.AllowOrigins = []string{"http://localhost:3000", "http://localhost:8080"}
	}

	return cors.New(cfg)
}
