// Package api is the HTTP client for the LiftLog API server. All business
// logic lives on the server; this client only shapes requests and decodes
// responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource yields the current bearer token. The session's token store
// satisfies this; the token is read fresh on every authenticated call
// rather than cached inside the client.
type TokenSource interface {
	Token() (string, error)
}

// Error is a failed API call. Message carries the server's own message
// verbatim when the response body had one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Client calls the LiftLog API server. Every endpoint, including
// analytics, is rooted at the one configured base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a Client targeting the given base URL. tokens may be
// nil when only unauthenticated endpoints are used.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// do sends a request and decodes the JSON response into out (when non-nil).
// Authenticated requests carry "Authorization: Bearer <token>".
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, out any, authenticated bool) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		tok, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("api: read token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: serverMessage(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("api: decode %s: %w", path, err)
		}
	}
	return nil
}

// serverMessage pulls the human-readable message out of an error body.
// The server uses {"message": ...}; some middleware errors use {"error": ...}.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Err
}

// GetUser fetches the user record for id.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile submits edited profile fields and returns the server's
// confirmation message.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/users/profile", nil, update, &resp, true); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// VerifyEmail confirms an email verification token. Unauthenticated.
func (c *Client) VerifyEmail(ctx context.Context, verifyToken string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodGet, "/api/users/verify-email/"+url.PathEscape(verifyToken), nil, nil, &resp, false)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// CreateWorkout records a new workout entry.
func (c *Client) CreateWorkout(ctx context.Context, entry WorkoutEntry) error {
	return c.do(ctx, http.MethodPost, "/api/workouts", nil, entry, nil, true)
}

// ListWorkouts fetches the user's full workout history.
func (c *Client) ListWorkouts(ctx context.Context) ([]WorkoutRecord, error) {
	var records []WorkoutRecord
	if err := c.do(ctx, http.MethodGet, "/api/workouts", nil, nil, &records, true); err != nil {
		return nil, err
	}
	return records, nil
}

// GetAnalytics fetches the per-date workout records for one exercise.
func (c *Client) GetAnalytics(ctx context.Context, exercise string) ([]WorkoutRecord, error) {
	params := url.Values{}
	params.Set("exercise", exercise)

	var records []WorkoutRecord
	if err := c.do(ctx, http.MethodGet, "/api/workouts/analytics", params, nil, &records, true); err != nil {
		return nil, err
	}
	return records, nil
}
