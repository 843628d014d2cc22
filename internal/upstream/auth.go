package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// exchanges credentials for an identity at POST /auth/login.
// one attempt, no retry; the caller decides how to surface failure.
func (c *Client) Login(ctx context.Context, email, password string) (*Identity, error) {
	var identity Identity

	err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", loginRequest{
		Email:    email,
		Password: password,
	}, &identity)
	if err != nil {
		return nil, err
	}

	return &identity, nil
}

// submits a new account registration at POST /auth/register.
// the API expects multipart form data because of the avatar upload.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	if err := apiRateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"fullname": input.Fullname,
		"email":    input.Email,
		"password": input.Password,
		"whatsapp": input.Whatsapp,
	}

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}

	if len(input.Avatar) > 0 {
		part, err := w.CreateFormFile("avatar", input.AvatarFilename)
		if err != nil {
			return fmt.Errorf("failed to create avatar part: %w", err)
		}
		if _, err := part.Write(input.Avatar); err != nil {
			return fmt.Errorf("failed to write avatar: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/register", &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body) //nolint:errcheck

		apiErr := &APIError{StatusCode: resp.StatusCode}

		var errBody apiErrorBody
		if err := json.Unmarshal(data, &errBody); err == nil && errBody.Message != "" {
			apiErr.Message = errBody.Message
		}

		return apiErr
	}

	return nil
}

// requests a password reset mail at POST /auth/forgot-password
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", "", map[string]string{
		"email": email,
	}, nil)
}

// completes a password reset at POST /auth/reset-password
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/reset-password", "", map[string]string{
		"token":    token,
		"password": password,
	}, nil)
}
