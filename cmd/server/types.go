package main

import (
	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/config"
	"github.com/indigenous-connect/server/internal/session"
	"github.com/indigenous-connect/server/internal/upstream"
)

// holds all dependencies and state for the application server
type Server struct {
	config     *config.Config
	sessionMgr *session.Manager
	upstream   *upstream.Client
	router     *gin.Engine
}
