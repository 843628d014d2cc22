package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/errors"
	"github.com/indigenous-connect/server/internal/gate"
	"github.com/indigenous-connect/server/internal/logger"
	"github.com/indigenous-connect/server/internal/upstream"
)

// default window for the visits chart
const visitChartDays = 30

// bearerToken pulls the session's upstream credential; the gate has
// already established that only an active admin reaches these handlers
func bearerToken(c *gin.Context) (string, bool) {
	claims := gate.ClaimsFromContext(c)
	if claims == nil {
		errors.Unauthorized(c, "")
		return "", false
	}
	return claims.APIToken, true
}

// LoginPageHandler godoc
// @Summary Admin sign-in entry
// @Tags admin
// @Produce json
// @Success 200 {object} LoginPageResponse
// @Router /admin/login [get]
func LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, LoginPageResponse{Message: "sign in to continue"})
	}
}

// DashboardHandler godoc
// @Summary Dashboard analytics
// @Description Overview cards plus the 30-day visit chart and per-country chart
// @Tags admin
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/dashboard [get]
func DashboardHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()

		overview, err := client.GetOverview(ctx, token)
		if err != nil {
			errors.UpstreamError(c, "failed to fetch analytics overview", err)
			return
		}

		response := DashboardResponse{Overview: *overview}

		end := time.Now()
		start := end.AddDate(0, 0, -visitChartDays)

		// charts degrade independently of the top cards
		visits, err := client.GetVisitStats(ctx, token,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
		if err != nil {
			logger.ErrorErr(err, "failed to fetch visit stats")
		} else {
			response.Visits = visits
		}

		country, err := client.GetCountryStats(ctx, token)
		if err != nil {
			logger.ErrorErr(err, "failed to fetch country stats")
		} else {
			response.Country = country
		}

		c.JSON(http.StatusOK, response)
	}
}

// blog management

// ListPostsHandler godoc
// @Summary List posts for management
// @Tags admin
// @Produce json
// @Success 200 {array} upstream.BlogPost
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/blog [get]
func ListPostsHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := client.ListPosts(c.Request.Context())
		if err != nil {
			errors.UpstreamError(c, "failed to fetch blog posts", err)
			return
		}

		c.JSON(http.StatusOK, posts)
	}
}

// CreatePostHandler godoc
// @Summary Create a post
// @Tags admin
// @Accept json
// @Produce json
// @Param request body PostRequest true "Post"
// @Success 201 {object} upstream.BlogPost
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/blog [post]
func CreatePostHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		var req PostRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		post, err := client.CreatePost(c.Request.Context(), token, upstream.BlogPostInput{
			Title:   req.Title,
			Content: req.Content,
			Image:   req.Image,
		})
		if err != nil {
			errors.UpstreamError(c, "failed to create post", err)
			return
		}

		c.JSON(http.StatusCreated, post)
	}
}

// UpdatePostHandler godoc
// @Summary Update a post
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body PostRequest true "Post"
// @Success 200 {object} upstream.BlogPost
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/blog/{id} [put]
func UpdatePostHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		var req PostRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		post, err := client.UpdatePost(c.Request.Context(), token, c.Param("id"), upstream.BlogPostInput{
			Title:   req.Title,
			Content: req.Content,
			Image:   req.Image,
		})
		if err != nil {
			errors.UpstreamError(c, "failed to update post", err)
			return
		}

		c.JSON(http.StatusOK, post)
	}
}

// DeletePostHandler godoc
// @Summary Delete a post
// @Tags admin
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} MessageResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/blog/{id} [delete]
func DeletePostHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		if err := client.DeletePost(c.Request.Context(), token, c.Param("id")); err != nil {
			errors.UpstreamError(c, "failed to delete post", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "post deleted"})
	}
}

// comment moderation

// ListCommentsHandler godoc
// @Summary All comments including unapproved
// @Tags admin
// @Produce json
// @Success 200 {array} upstream.Comment
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/comments [get]
func ListCommentsHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		comments, err := client.ListAllComments(c.Request.Context(), token)
		if err != nil {
			errors.UpstreamError(c, "failed to fetch comments", err)
			return
		}

		c.JSON(http.StatusOK, comments)
	}
}

// ApproveCommentHandler godoc
// @Summary Approve a comment
// @Tags admin
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} MessageResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/comments/{id}/approve [put]
func ApproveCommentHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		if err := client.ApproveComment(c.Request.Context(), token, c.Param("id")); err != nil {
			errors.UpstreamError(c, "failed to approve comment", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "comment approved"})
	}
}

// DisapproveCommentHandler godoc
// @Summary Disapprove a comment
// @Tags admin
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} MessageResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/comments/{id}/disapprove [put]
func DisapproveCommentHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		if err := client.DisapproveComment(c.Request.Context(), token, c.Param("id")); err != nil {
			errors.UpstreamError(c, "failed to disapprove comment", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "comment disapproved"})
	}
}

// DeleteCommentHandler godoc
// @Summary Delete a comment
// @Tags admin
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} MessageResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/comments/{id} [delete]
func DeleteCommentHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		if err := client.DeleteComment(c.Request.Context(), token, c.Param("id")); err != nil {
			errors.UpstreamError(c, "failed to delete comment", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "comment deleted"})
	}
}

// user management

// ListUsersHandler godoc
// @Summary List user accounts
// @Tags admin
// @Produce json
// @Success 200 {array} upstream.User
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/users [get]
func ListUsersHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		users, err := client.ListUsers(c.Request.Context(), token)
		if err != nil {
			errors.UpstreamError(c, "failed to fetch users", err)
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// UpdateUserRoleHandler godoc
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateRoleRequest true "Role"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/users/{id}/role [put]
func UpdateUserRoleHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		var req UpdateRoleRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if err := client.UpdateUserRole(c.Request.Context(), token, c.Param("id"), req.Role); err != nil {
			errors.UpstreamError(c, "failed to update user role", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "role updated"})
	}
}

// UpdateUserStatusHandler godoc
// @Summary Change a user's account status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateStatusRequest true "Status"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/users/{id}/status [put]
func UpdateUserStatusHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		var req UpdateStatusRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if err := client.UpdateUserStatus(c.Request.Context(), token, c.Param("id"), req.Status); err != nil {
			errors.UpstreamError(c, "failed to update user status", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "status updated"})
	}
}

// DeleteUserHandler godoc
// @Summary Delete a user account
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/users/{id} [delete]
func DeleteUserHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		if err := client.DeleteUser(c.Request.Context(), token, c.Param("id")); err != nil {
			errors.UpstreamError(c, "failed to delete user", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "user deleted"})
	}
}
