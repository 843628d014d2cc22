package comments

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/errors"
	"github.com/indigenous-connect/server/internal/gate"
	"github.com/indigenous-connect/server/internal/upstream"
)

// ListHandler godoc
// @Summary Approved comments for a post
// @Tags comments
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {array} upstream.Comment
// @Failure 502 {object} errors.ErrorResponse
// @Router /blog/{id}/comments [get]
func ListHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		comments, err := client.ListComments(c.Request.Context(), c.Param("id"))
		if err != nil {
			errors.UpstreamError(c, "failed to fetch comments", err)
			return
		}

		c.JSON(http.StatusOK, comments)
	}
}

// CreateHandler godoc
// @Summary Comment on a post
// @Description Submitted comments await moderation before they appear
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body CreateCommentRequest true "Comment"
// @Success 201 {object} upstream.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /blog/{id}/comments [post]
func CreateHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := gate.ClaimsFromContext(c)
		if claims == nil {
			errors.Unauthorized(c, "")
			return
		}

		var req CreateCommentRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		comment, err := client.AddComment(c.Request.Context(), claims.APIToken, upstream.CommentInput{
			BlogPostID: c.Param("id"),
			Content:    req.Content,
		})
		if err != nil {
			errors.UpstreamError(c, "failed to submit comment", err)
			return
		}

		c.JSON(http.StatusCreated, comment)
	}
}
