package pages

import (
	"github.com/indigenous-connect/server/internal/session"
	"github.com/indigenous-connect/server/internal/upstream"
)

// HomeResponse is the landing page payload
type HomeResponse struct {
	RecentPosts []upstream.BlogPost `json:"recentPosts"`
	Projects    []upstream.Project  `json:"projects"`
	Skills      []upstream.Skill    `json:"skills"`
}

// LoginPageResponse is the sign-in page payload. From echoes the path
// the visitor was redirected away from, for post-login navigation.
type LoginPageResponse struct {
	From string        `json:"from,omitempty"`
	User *session.View `json:"user,omitempty"`
}

// PendingPageResponse is the account-under-review notice payload
type PendingPageResponse struct {
	Message string        `json:"message"`
	User    *session.View `json:"user,omitempty"`
}

// ContactRequest is a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
