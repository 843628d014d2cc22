package pages

import (
	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/upstream"
)

// registers the public page routes
func RegisterRoutes(router *gin.Engine, client *upstream.Client) {
	router.GET("/", HomeHandler(client))
	router.GET("/login", LoginPageHandler())
	router.GET("/pending", PendingPageHandler())
	router.GET("/projects", ProjectsHandler(client))
	router.GET("/projects/:id", ProjectDetailHandler(client))
	router.GET("/skills", SkillsHandler(client))
	router.POST("/contact", ContactHandler(client))
}
