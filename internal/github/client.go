// Package github fetches public repository listings from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"devconnector/internal/model"
)

// ErrNotFound is returned for any non-200 answer from GitHub.
var ErrNotFound = errors.New("github: user not found")

const (
	defaultBaseURL = "https://api.github.com"
	reposPerPage   = "5"
	requestTimeout = 10 * time.Second
)

// Client calls the GitHub REST API. It authenticates with a token when one is
// configured, otherwise with the OAuth app client id and secret.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	token        string
	http         *http.Client
}

// NewClient builds a GitHub client. An empty baseURL targets api.github.com.
func NewClient(baseURL, clientID, clientSecret, token string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		token:        token,
		http:         &http.Client{Timeout: requestTimeout},
	}
}

// RecentRepos returns the user's five oldest public repositories, ordered by
// creation date.
func (c *Client) RecentRepos(ctx context.Context, username string) ([]model.GithubRepo, error) {
	q := url.Values{}
	q.Set("per_page", reposPerPage)
	q.Set("sort", "created")
	q.Set("direction", "asc")
	if c.token == "" && c.clientID != "" {
		q.Set("client_id", c.clientID)
		q.Set("client_secret", c.clientSecret)
	}
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build github request: %w", err)
	}
	req.Header.Set("User-Agent", "devconnector")
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call github: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNotFound
	}

	repos := []model.GithubRepo{}
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}
	return repos, nil
}
