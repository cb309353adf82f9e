package pikespeak

import (
	"context"
	"fmt"
	"net/url"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
)

// WealthEntry is one asset position in the account wealth breakdown
type WealthEntry struct {
	Contract string  `json:"contract"`
	Symbol   string  `json:"symbol"`
	Amount   float64 `json:"amount"`
	USDValue float64 `json:"usdValue"`
}

// AccountWealth is the analytics summary for one account
type AccountWealth struct {
	AccountID string        `json:"account"`
	TotalUSD  float64       `json:"totalUsd"`
	Balances  []WealthEntry `json:"balances"`
}

// Client defines the interface for Pikespeak client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/pikespeak_client.go -package=mocks -mock_names=Client=MockPikespeakClient
type Client interface {
	// GetAccountWealth fetches the wealth breakdown for an account
	GetAccountWealth(ctx context.Context, accountID string) (*AccountWealth, error)
	// GetTxCount fetches the account's transaction count
	GetTxCount(ctx context.Context, accountID string) (int64, error)
}

// PikespeakClient implements the Pikespeak client
type PikespeakClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	apiKey     string
	json       adapter.JSON
}

// NewClient creates a new Pikespeak client
func NewClient(httpClient adapter.HTTPClient, apiURL, apiKey string, json adapter.JSON) Client {
	return &PikespeakClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		apiKey:     apiKey,
		json:       json,
	}
}

func (c *PikespeakClient) headers() map[string]string {
	return map[string]string{"x-api-key": c.apiKey}
}

// GetAccountWealth fetches the wealth breakdown for an account
func (c *PikespeakClient) GetAccountWealth(ctx context.Context, accountID string) (*AccountWealth, error) {
	endpoint := fmt.Sprintf("%s/account/wealth/%s", c.apiURL, url.PathEscape(accountID))
	respBody, err := c.httpClient.GetBytes(ctx, endpoint, c.headers())
	if err != nil {
		return nil, fmt.Errorf("failed to call Pikespeak API: %w", err)
	}

	var wealth AccountWealth
	if err := c.json.Unmarshal(respBody, &wealth); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Pikespeak wealth: %w", err)
	}

	return &wealth, nil
}

// GetTxCount fetches the account's transaction count
func (c *PikespeakClient) GetTxCount(ctx context.Context, accountID string) (int64, error) {
	endpoint := fmt.Sprintf("%s/account/tx-count/%s", c.apiURL, url.PathEscape(accountID))
	respBody, err := c.httpClient.GetBytes(ctx, endpoint, c.headers())
	if err != nil {
		return 0, fmt.Errorf("failed to call Pikespeak API: %w", err)
	}

	var count int64
	if err := c.json.Unmarshal(respBody, &count); err != nil {
		return 0, fmt.Errorf("failed to unmarshal Pikespeak tx count: %w", err)
	}

	return count, nil
}
