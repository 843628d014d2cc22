package auth

import "github.com/indigenous-connect/server/internal/session"

// LoginRequest carries the credential pair; validation beyond presence
// is delegated to the content API
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returned after a successful credential exchange
type LoginResponse struct {
	User session.View `json:"user"`
}

// UserResponse wraps the session view
type UserResponse struct {
	User session.View `json:"user"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}

// ForgotPasswordRequest starts a password reset
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest completes a password reset
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}
