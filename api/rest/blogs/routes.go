package blogs

import (
	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/upstream"
)

// registers the member-facing blog routes; access is enforced by the
// gate middleware on the /blog prefix
func RegisterRoutes(router *gin.Engine, client *upstream.Client) {
	blog := router.Group("/blog")
	{
		blog.GET("", ListHandler(client))
		blog.GET("/:id", DetailHandler(client))
	}
}
