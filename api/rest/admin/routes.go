package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/upstream"
)

// registers the admin area. The gate middleware enforces the admin role
// on the whole /admin prefix (except the sign-in entry) before any of
// these handlers run.
func RegisterRoutes(router *gin.Engine, client *upstream.Client) {
	adminGroup := router.Group("/admin")
	{
		adminGroup.GET("/login", LoginPageHandler())
		adminGroup.GET("/dashboard", DashboardHandler(client))

		adminGroup.GET("/blog", ListPostsHandler(client))
		adminGroup.POST("/blog", CreatePostHandler(client))
		adminGroup.PUT("/blog/:id", UpdatePostHandler(client))
		adminGroup.DELETE("/blog/:id", DeletePostHandler(client))

		adminGroup.GET("/comments", ListCommentsHandler(client))
		adminGroup.PUT("/comments/:id/approve", ApproveCommentHandler(client))
		adminGroup.PUT("/comments/:id/disapprove", DisapproveCommentHandler(client))
		adminGroup.DELETE("/comments/:id", DeleteCommentHandler(client))

		adminGroup.GET("/users", ListUsersHandler(client))
		adminGroup.PUT("/users/:id/role", UpdateUserRoleHandler(client))
		adminGroup.PUT("/users/:id/status", UpdateUserStatusHandler(client))
		adminGroup.DELETE("/users/:id", DeleteUserHandler(client))
	}
}
