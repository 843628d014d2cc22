package upstream

import (
	"context"
	"net/http"
)

// fetches approved comments for a blog post
func (c *Client) ListComments(ctx context.Context, blogPostID string) ([]Comment, error) {
	var comments []Comment
	if err := c.doJSON(ctx, http.MethodGet, "/comments/"+blogPostID, "", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// submits a comment on a blog post
func (c *Client) AddComment(ctx context.Context, token string, input CommentInput) (*Comment, error) {
	var comment Comment
	if err := c.doJSON(ctx, http.MethodPost, "/comments", token, input, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// fetches every comment, including unapproved ones, for moderation
func (c *Client) ListAllComments(ctx context.Context, token string) ([]Comment, error) {
	var comments []Comment
	if err := c.doJSON(ctx, http.MethodGet, "/comments/all", token, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// marks a comment as approved
func (c *Client) ApproveComment(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodPut, "/comments/"+id+"/approve", token, nil, nil)
}

// marks a comment as not approved
func (c *Client) DisapproveComment(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodPut, "/comments/"+id+"/disapprove", token, nil, nil)
}

// removes a comment
func (c *Client) DeleteComment(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/comments/"+id, token, nil, nil)
}
