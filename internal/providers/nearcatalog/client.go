package nearcatalog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
)

// Image holds a profile image reference
type Image struct {
	URL string `json:"url"`
}

// Profile holds the registry's descriptive fields for a project
type Profile struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Image   Image  `json:"image"`
	// Tags maps tag slug to tag display name; the first tag drives category assignment
	Tags map[string]string `json:"tags"`
	// Dapp is the project's main application URL
	Dapp string `json:"dapp"`
	// Linktree holds external links keyed by kind (github, website, twitter)
	Linktree map[string]string `json:"linktree"`
}

// Project is one registry listing entry
type Project struct {
	Slug    string  `json:"slug"`
	Profile Profile `json:"profile"`
}

// ProjectDetail is the full registry record for one project
type ProjectDetail struct {
	Slug    string  `json:"slug"`
	Profile Profile `json:"profile"`
	// Contracts lists the project's known on-chain account ids
	Contracts []string `json:"contracts"`
}

// Client defines the interface for NEAR Catalog client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/nearcatalog_client.go -package=mocks -mock_names=Client=MockNearCatalogClient
type Client interface {
	// ListProjects fetches the full registry listing keyed by project slug
	ListProjects(ctx context.Context) (map[string]Project, error)
	// GetProject fetches the full registry record for one project
	GetProject(ctx context.Context, slug string) (*ProjectDetail, error)
}

// CatalogClient implements the NEAR Catalog client
type CatalogClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	json       adapter.JSON
}

// NewClient creates a new NEAR Catalog client
func NewClient(httpClient adapter.HTTPClient, apiURL string, json adapter.JSON) Client {
	return &CatalogClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		json:       json,
	}
}

// ListProjects fetches the full registry listing keyed by project slug
func (c *CatalogClient) ListProjects(ctx context.Context) (map[string]Project, error) {
	respBody, err := c.httpClient.GetBytes(ctx, fmt.Sprintf("%s/projects", c.apiURL), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call NEAR Catalog API: %w", err)
	}

	var projects map[string]Project
	if err := c.json.Unmarshal(respBody, &projects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal NEAR Catalog listing: %w", err)
	}

	return projects, nil
}

// GetProject fetches the full registry record for one project
func (c *CatalogClient) GetProject(ctx context.Context, slug string) (*ProjectDetail, error) {
	endpoint := fmt.Sprintf("%s/project?pid=%s", c.apiURL, url.QueryEscape(slug))
	respBody, err := c.httpClient.GetBytes(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call NEAR Catalog API: %w", err)
	}

	var detail ProjectDetail
	if err := c.json.Unmarshal(respBody, &detail); err != nil {
		return nil, fmt.Errorf("failed to unmarshal NEAR Catalog project: %w", err)
	}

	return &detail, nil
}
