package auth

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/indigenous-connect/server/internal/errors"
	"github.com/indigenous-connect/server/internal/gate"
	"github.com/indigenous-connect/server/internal/logger"
	"github.com/indigenous-connect/server/internal/session"
	"github.com/indigenous-connect/server/internal/upstream"
)

// avatar uploads larger than this are rejected before forwarding
const maxAvatarBytes = 2 << 20

// LoginHandler godoc
// @Summary Sign in with credentials
// @Description Exchange email and password for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func LoginHandler(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		claims, err := mgr.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			// transport detail stays in the log; the client sees one
			// generic failure either way
			logger.Debug("credential exchange failed", "error", err)
			errors.AuthFailed(c)
			return
		}

		token, err := mgr.Mint(claims)
		if err != nil {
			errors.InternalError(c, "failed to create session", err)
			return
		}

		if err := mgr.IssueCookie(c.Writer, c.Request, token); err != nil {
			errors.InternalError(c, "failed to store session", err)
			return
		}

		c.JSON(http.StatusOK, LoginResponse{User: claims.View()})
	}
}

// LogoutHandler godoc
// @Summary Sign out
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /logout [post]
func LogoutHandler(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := mgr.ClearCookie(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to clear session cookie")
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}

// MeHandler godoc
// @Summary Get current session
// @Description Returns the signed-in identity without the upstream bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := gate.ClaimsFromContext(c)

		if claims == nil {
			errors.Unauthorized(c, "")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: claims.View()})
	}
}

// RegisterHandler godoc
// @Summary Register a new account
// @Description Forward a sign-up with optional avatar upload to the content API. New accounts start in pending status.
// @Tags auth
// @Accept mpfd
// @Produce json
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /register [post]
func RegisterHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := upstream.RegisterInput{
			Fullname: c.PostForm("fullname"),
			Email:    c.PostForm("email"),
			Password: c.PostForm("password"),
			Whatsapp: c.PostForm("whatsapp"),
		}

		if input.Fullname == "" || input.Email == "" || input.Password == "" {
			errors.BadRequest(c, "fullname, email and password are required", nil)
			return
		}

		if file, err := c.FormFile("avatar"); err == nil {
			if file.Size > maxAvatarBytes {
				errors.BadRequest(c, "avatar exceeds 2MB", nil)
				return
			}

			f, err := file.Open()
			if err != nil {
				errors.InternalError(c, "failed to read avatar upload", err)
				return
			}
			defer f.Close() //nolint:errcheck

			data, err := io.ReadAll(f)
			if err != nil {
				errors.InternalError(c, "failed to read avatar upload", err)
				return
			}

			input.Avatar = data
			input.AvatarFilename = file.Filename
		}

		if err := client.Register(c.Request.Context(), input); err != nil {
			errors.UpstreamError(c, "registration failed", err)
			return
		}

		c.JSON(http.StatusCreated, MessageResponse{Message: "account created, awaiting review"})
	}
}

// ForgotPasswordHandler godoc
// @Summary Start a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /forgot-password [post]
func ForgotPasswordHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ForgotPasswordRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if err := client.ForgotPassword(c.Request.Context(), req.Email); err != nil {
			// same response regardless of outcome so addresses cannot be probed
			logger.ErrorErr(err, "forgot-password forwarding failed")
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "if the address exists, a reset mail has been sent"})
	}
}

// ResetPasswordHandler godoc
// @Summary Complete a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param request body ResetPasswordRequest true "New password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /reset-password/{token} [post]
func ResetPasswordHandler(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetPasswordRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if err := client.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
			errors.UpstreamError(c, "password reset failed", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "password updated"})
	}
}
