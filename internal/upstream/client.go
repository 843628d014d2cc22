package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// default timeout for calls to the content API
const requestTimeout = 10 * time.Second

// keeps outbound pressure on the content API bounded
var apiRateLimiter = rate.NewLimiter(50, 10)

// manages HTTP requests to the remote content API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// creates a new content API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// APIError is a non-OK response from the content API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// error body shape used by the content API
type apiErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// performs one JSON request against the content API.
// token, when non-empty, is attached as a bearer credential.
// out may be nil for calls whose response body is irrelevant.
func (c *Client) doJSON(ctx context.Context, method, path, token string, payload, out any) error {
	if err := apiRateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var errBody apiErrorBody
		if err := json.Unmarshal(data, &errBody); err == nil {
			if errBody.Message != "" {
				apiErr.Message = errBody.Message
			} else {
				apiErr.Message = errBody.Error
			}
		}

		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
