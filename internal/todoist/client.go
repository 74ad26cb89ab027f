// Package todoist is the HTTP wrapper for the Todoist REST v2 API.
//
// The gateway is read-only: the client exposes exactly the two list
// calls the tools need and never mutates upstream state. No responses
// are cached — every call hits the API, so concurrent callers see
// whatever upstream returns at that moment.
package todoist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the Todoist REST v2 endpoint.
const DefaultBaseURL = "https://api.todoist.com/rest/v2"

// Upstream failure taxonomy. The client never retries; callers surface
// these immediately and the remote caller decides whether to retry.
var (
	// ErrAuthRejected means the token was rejected (expired or invalid).
	ErrAuthRejected = errors.New("todoist: authentication rejected")

	// ErrRateLimited means upstream signalled throttling.
	ErrRateLimited = errors.New("todoist: rate limited")

	// ErrUnavailable covers transport failures and upstream 5xx responses.
	ErrUnavailable = errors.New("todoist: upstream unavailable")
)

// Client is an authenticated Todoist REST v2 client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Todoist client. An empty baseURL selects the
// public API; timeout bounds each request end to end.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListTasks fetches all active tasks via GET /tasks.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.get(ctx, "/tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListProjects fetches all projects via GET /projects.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.get(ctx, "/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// get performs one authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: calling %s: %v", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status %d on %s", ErrAuthRejected, resp.StatusCode, path)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d on %s", ErrRateLimited, resp.StatusCode, path)
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d on %s: %s", ErrUnavailable, resp.StatusCode, path, raw)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// ---- API types scoped to this package ----

// Task is the Todoist task object, trimmed to the fields the gateway
// reshapes. Priority runs 1–4 with 4 the highest.
type Task struct {
	ID          int64    `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description,omitempty"`
	Due         *Due     `json:"due,omitempty"`
	Priority    int      `json:"priority"`
	Labels      []string `json:"labels,omitempty"`
	ProjectID   int64    `json:"project_id"`
}

// Due is a task due date. Date is always set; Datetime only when the
// task carries a time of day.
type Due struct {
	Date     string `json:"date"`
	Datetime string `json:"datetime,omitempty"`
}

// Project is the Todoist project object.
type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
