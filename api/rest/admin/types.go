package admin

import "github.com/indigenous-connect/server/internal/upstream"

// DashboardResponse feeds the top cards and both charts
type DashboardResponse struct {
	Overview upstream.Overview      `json:"overview"`
	Visits   []upstream.VisitStat   `json:"visits"`
	Country  []upstream.CountryStat `json:"country"`
}

// UpdateRoleRequest changes a user's role
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user moderator admin"`
}

// UpdateStatusRequest changes a user's account status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive pending suspended"`
}

// PostRequest creates or updates a blog post
type PostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image" binding:"max=500"`
}

// LoginPageResponse is the admin sign-in entry payload; the gate bounces
// authenticated visitors to the dashboard before this handler runs
type LoginPageResponse struct {
	Message string `json:"message"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
