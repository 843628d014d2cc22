package upstream

import (
	"context"
	"net/http"
)

// fetches the blog feed
func (c *Client) ListPosts(ctx context.Context) ([]BlogPost, error) {
	var posts []BlogPost
	if err := c.doJSON(ctx, http.MethodGet, "/blog", "", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// fetches a single post by id
func (c *Client) GetPost(ctx context.Context, id string) (*BlogPost, error) {
	var post BlogPost
	if err := c.doJSON(ctx, http.MethodGet, "/blog/"+id, "", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// creates a post; requires the caller's bearer token
func (c *Client) CreatePost(ctx context.Context, token string, input BlogPostInput) (*BlogPost, error) {
	var post BlogPost
	if err := c.doJSON(ctx, http.MethodPost, "/blog", token, input, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// updates a post; requires the caller's bearer token
func (c *Client) UpdatePost(ctx context.Context, token, id string, input BlogPostInput) (*BlogPost, error) {
	var post BlogPost
	if err := c.doJSON(ctx, http.MethodPut, "/blog/"+id, token, input, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// deletes a post; requires the caller's bearer token
func (c *Client) DeletePost(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/blog/"+id, token, nil, nil)
}
