package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/session"
	"github.com/indigenous-connect/server/internal/upstream"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// credential endpoints allow 10 attempts per minute per IP
var loginRate = limiter.Rate{
	Period: time.Minute,
	Limit:  10,
}

// registers authentication and account routes
func RegisterRoutes(router *gin.Engine, mgr *session.Manager, client *upstream.Client) {
	rateLimit := mgin.NewMiddleware(limiter.New(memory.NewStore(), loginRate))

	router.POST("/login", rateLimit, LoginHandler(mgr))
	router.POST("/logout", LogoutHandler(mgr))
	router.GET("/me", MeHandler())

	router.POST("/register", rateLimit, RegisterHandler(client))
	router.POST("/forgot-password", rateLimit, ForgotPasswordHandler(client))
	router.POST("/reset-password/:token", rateLimit, ResetPasswordHandler(client))
}
