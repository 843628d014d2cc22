package comments

// CreateCommentRequest is a member's comment submission
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
