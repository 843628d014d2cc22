package main

import (
	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/api/rest/admin"
	"github.com/indigenous-connect/server/api/rest/auth"
	"github.com/indigenous-connect/server/api/rest/blogs"
	"github.com/indigenous-connect/server/api/rest/comments"
	"github.com/indigenous-connect/server/api/rest/health"
	"github.com/indigenous-connect/server/api/rest/pages"
	"github.com/indigenous-connect/server/internal/gate"
	"github.com/indigenous-connect/server/internal/metrics"
)

// sets up all routes and middleware. The gate runs on every request but
// only ever redirects within the /admin and /blog families.
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(RequestIDMiddleware())
	router.Use(metrics.Middleware())
	router.Use(CORSMiddleware(server.config.Environment))
	router.Use(gate.Middleware(server.sessionMgr))

	router.GET("/health", health.Handler)
	router.GET("/api/v1/ping", health.PingHandler)
	router.GET("/metrics", metrics.Handler())

	auth.RegisterRoutes(router, server.sessionMgr, server.upstream)
	pages.RegisterRoutes(router, server.upstream)
	blogs.RegisterRoutes(router, server.upstream)
	comments.RegisterRoutes(router, server.upstream)
	admin.RegisterRoutes(router, server.upstream)
}
