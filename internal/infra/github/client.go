// Package github provides an issue client for the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/runoshun/issue-butler/internal/domain"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// Ensure Client implements domain.IssueClient.
var _ domain.IssueClient = (*Client)(nil)

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures the client.
type Config struct {
	BaseURL string // Defaults to DefaultBaseURL
	Token   string // Bearer token; may be empty for public repositories
}

// Client fetches issues from GitHub.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	token      string
}

// NewClient creates a new GitHub client.
func NewClient(cfg Config, httpClient HTTPClient) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      cfg.Token,
	}
}

// GetIssue fetches GET /repos/{owner}/{repo}/issues/{number}.
func (c *Client) GetIssue(ctx context.Context, owner string, ref domain.IssueReference) (*domain.RemoteIssue, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/issues/%d",
		c.baseURL, url.PathEscape(owner), url.PathEscape(ref.Repo), ref.ID)

	var issue githubIssue
	if err := c.doRequest(ctx, endpoint, &issue); err != nil {
		return nil, fmt.Errorf("get issue %s/%s: %w", owner, ref, err)
	}
	return issue.toDomain(), nil
}

// StatusError is returned for non-200 responses.
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Message)
}

// doRequest performs an authenticated GET and decodes the JSON body into result.
func (c *Client) doRequest(ctx context.Context, endpoint string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the "message" field of a GitHub error body.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}

// githubIssue is the subset of the issue payload we need.
type githubIssue struct {
	Body   *string       `json:"body"`
	Title  string        `json:"title"`
	Labels []githubLabel `json:"labels"`
	ID     int64         `json:"id"`
	Number int           `json:"number"`
}

type githubLabel struct {
	Description *string `json:"description"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	ID          int64   `json:"id"`
}

func (i githubIssue) toDomain() *domain.RemoteIssue {
	issue := &domain.RemoteIssue{
		ID:     i.ID,
		Number: i.Number,
		Title:  i.Title,
		Labels: make([]domain.Label, 0, len(i.Labels)),
	}
	if i.Body != nil {
		issue.Body = *i.Body
	}
	for _, l := range i.Labels {
		label := domain.Label{ID: l.ID, Name: l.Name, Color: l.Color}
		if l.Description != nil {
			label.Description = *l.Description
		}
		issue.Labels = append(issue.Labels, label)
	}
	return issue
}
