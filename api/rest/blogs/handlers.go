package blogs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/errors"
	"github.com/indigenous-connect/server/internal/logger"
	"github.com/indigenous-connect/server/internal/upstream"
)

// ListHandler godoc
// @Summary Blog feed
// @Description Member-only blog feed; anonymous visitors are redirected to /login by the gate
// @Tags blog
// @Produce json
// @Success 200 {array} upstream.BlogPost
// @Failure 502 {object} errors.ErrorResponse
// @Router /blog [get]
func ListHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := client.ListPosts(c.Request.Context())
		if err != nil {
			errors.UpstreamError(c, "failed to fetch blog posts", err)
			return
		}

		c.JSON(http.StatusOK, posts)
	}
}

// DetailHandler godoc
// @Summary Blog post with comments
// @Tags blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} PostDetailResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /blog/{id} [get]
func DetailHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		post, err := client.GetPost(c.Request.Context(), id)
		if err != nil {
			errors.UpstreamError(c, "failed to fetch blog post", err)
			return
		}

		// comments degrade independently of the post body
		comments, err := client.ListComments(c.Request.Context(), id)
		if err != nil {
			logger.ErrorErr(err, "failed to fetch comments", "post_id", id)
			comments = []upstream.Comment{}
		}

		c.JSON(http.StatusOK, PostDetailResponse{
			Post:     *post,
			Comments: comments,
		})
	}
}
