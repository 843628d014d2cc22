package upstream

import (
	"context"
	"net/http"
)

// fetches all user accounts for the admin user table
func (c *Client) ListUsers(ctx context.Context, token string) ([]User, error) {
	var users []User
	if err := c.doJSON(ctx, http.MethodGet, "/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// changes a user's role
func (c *Client) UpdateUserRole(ctx context.Context, token, id, role string) error {
	return c.doJSON(ctx, http.MethodPut, "/users/"+id+"/role", token, map[string]string{
		"role": role,
	}, nil)
}

// changes a user's account status
func (c *Client) UpdateUserStatus(ctx context.Context, token, id, status string) error {
	return c.doJSON(ctx, http.MethodPut, "/users/"+id+"/status", token, map[string]string{
		"status": status,
	}, nil)
}

// removes a user account
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/users/"+id, token, nil, nil)
}
