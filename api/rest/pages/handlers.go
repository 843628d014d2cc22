package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/errors"
	"github.com/indigenous-connect/server/internal/gate"
	"github.com/indigenous-connect/server/internal/logger"
	"github.com/indigenous-connect/server/internal/upstream"
)

// number of posts featured on the landing page
const recentPostCount = 3

// HomeHandler godoc
// @Summary Landing page payload
// @Description Recent posts, projects and skills for the public home page
// @Tags pages
// @Produce json
// @Success 200 {object} HomeResponse
// @Router / [get]
func HomeHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		response := HomeResponse{}

		// each section degrades independently; an empty list beats a
		// broken landing page
		posts, err := client.ListPosts(ctx)
		if err != nil {
			logger.ErrorErr(err, "failed to fetch posts for home page")
		} else if len(posts) > recentPostCount {
			response.RecentPosts = posts[:recentPostCount]
		} else {
			response.RecentPosts = posts
		}

		projects, err := client.ListProjects(ctx)
		if err != nil {
			logger.ErrorErr(err, "failed to fetch projects for home page")
		} else {
			response.Projects = projects
		}

		skills, err := client.ListSkills(ctx)
		if err != nil {
			logger.ErrorErr(err, "failed to fetch skills for home page")
		} else {
			response.Skills = skills
		}

		c.JSON(http.StatusOK, response)
	}
}

// LoginPageHandler godoc
// @Summary Sign-in page payload
// @Tags pages
// @Produce json
// @Param from query string false "Path to return to after sign-in"
// @Success 200 {object} LoginPageResponse
// @Router /login [get]
func LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := LoginPageResponse{From: c.Query("from")}

		if claims := gate.ClaimsFromContext(c); claims != nil {
			view := claims.View()
			response.User = &view
		}

		c.JSON(http.StatusOK, response)
	}
}

// PendingPageHandler godoc
// @Summary Account-under-review notice
// @Tags pages
// @Produce json
// @Success 200 {object} PendingPageResponse
// @Router /pending [get]
func PendingPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := PendingPageResponse{
			Message: "your account is awaiting administrator review",
		}

		if claims := gate.ClaimsFromContext(c); claims != nil {
			view := claims.View()
			response.User = &view
		}

		c.JSON(http.StatusOK, response)
	}
}

// ProjectsHandler godoc
// @Summary List projects
// @Tags pages
// @Produce json
// @Success 200 {array} upstream.Project
// @Failure 502 {object} errors.ErrorResponse
// @Router /projects [get]
func ProjectsHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := client.ListProjects(c.Request.Context())
		if err != nil {
			errors.UpstreamError(c, "failed to fetch projects", err)
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

// ProjectDetailHandler godoc
// @Summary Get one project
// @Tags pages
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} upstream.Project
// @Failure 502 {object} errors.ErrorResponse
// @Router /projects/{id} [get]
func ProjectDetailHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := client.GetProject(c.Request.Context(), c.Param("id"))
		if err != nil {
			errors.UpstreamError(c, "failed to fetch project", err)
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

// SkillsHandler godoc
// @Summary List skills
// @Tags pages
// @Produce json
// @Success 200 {array} upstream.Skill
// @Failure 502 {object} errors.ErrorResponse
// @Router /skills [get]
func SkillsHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		skills, err := client.ListSkills(c.Request.Context())
		if err != nil {
			errors.UpstreamError(c, "failed to fetch skills", err)
			return
		}

		c.JSON(http.StatusOK, skills)
	}
}

// ContactHandler godoc
// @Summary Submit the contact form
// @Tags pages
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Message"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /contact [post]
func ContactHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		err := client.SendContactMessage(c.Request.Context(), upstream.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			errors.UpstreamError(c, "failed to send message", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "message sent"})
	}
}
