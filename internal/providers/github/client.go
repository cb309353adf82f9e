package github

import (
	"context"
	"fmt"
	"time"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
)

// Repo is the subset of the repository record the indexer consumes
type Repo struct {
	FullName   string    `json:"full_name"`
	Stars      int       `json:"stargazers_count"`
	Forks      int       `json:"forks_count"`
	Language   string    `json:"language"`
	OpenIssues int       `json:"open_issues_count"`
	Archived   bool      `json:"archived"`
	PushedAt   time.Time `json:"pushed_at"`
}

// Client defines the interface for GitHub client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/github_client.go -package=mocks -mock_names=Client=MockGithubClient
type Client interface {
	// GetRepo fetches the repository record for owner/repo
	GetRepo(ctx context.Context, owner, repo string) (*Repo, error)
}

// GithubClient implements the GitHub client
type GithubClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	token      string
	json       adapter.JSON
}

// NewClient creates a new GitHub client. An empty token falls back to
// unauthenticated requests with their lower rate limit.
func NewClient(httpClient adapter.HTTPClient, apiURL, token string, json adapter.JSON) Client {
	return &GithubClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		token:      token,
		json:       json,
	}
}

// GetRepo fetches the repository record for owner/repo
func (c *GithubClient) GetRepo(ctx context.Context, owner, repo string) (*Repo, error) {
	headers := map[string]string{
		"Accept": "application/vnd.github+json",
	}
	if c.token != "" {
		headers["Authorization"] = fmt.Sprintf("Bearer %s", c.token)
	}

	respBody, err := c.httpClient.GetBytes(ctx, fmt.Sprintf("%s/repos/%s/%s", c.apiURL, owner, repo), headers)
	if err != nil {
		return nil, fmt.Errorf("failed to call GitHub API: %w", err)
	}

	var r Repo
	if err := c.json.Unmarshal(respBody, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GitHub repo: %w", err)
	}

	return &r, nil
}
