package comments

import (
	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/upstream"
)

// registers comment routes under the member-gated blog prefix
func RegisterRoutes(router *gin.Engine, client *upstream.Client) {
	router.GET("/blog/:id/comments", ListHandler(client))
	router.POST("/blog/:id/comments", CreateHandler(client))
}
