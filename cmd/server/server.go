package main

import (
	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/config"
	"github.com/indigenous-connect/server/internal/metrics"
	"github.com/indigenous-connect/server/internal/session"
	"github.com/indigenous-connect/server/internal/upstream"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	upstreamClient := upstream.NewClient(cfg.APIURL)
	sessionMgr := session.NewManager(cfg.SessionSecret, cfg.Environment, upstreamClient)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Init()

	router := gin.Default()

	server := &Server{
		config:     cfg,
		sessionMgr: sessionMgr,
		upstream:   upstreamClient,
		router:     router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
