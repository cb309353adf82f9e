package nearblocks

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
)

// Account is the subset of the account record the indexer consumes
type Account struct {
	AccountID      string `json:"account_id"`
	Amount         string `json:"amount"`
	BlockTimestamp string `json:"block_timestamp"`
}

type accountResponse struct {
	Account []Account `json:"account"`
}

type txnCountResponse struct {
	Txns []struct {
		// Nearblocks serializes the count as a decimal string
		Count string `json:"count"`
	} `json:"txns"`
}

// Client defines the interface for Nearblocks client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/nearblocks_client.go -package=mocks -mock_names=Client=MockNearblocksClient
type Client interface {
	// GetAccount fetches the account record, nil when the account does not exist
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	// GetTxnCount fetches the account's lifetime transaction count
	GetTxnCount(ctx context.Context, accountID string) (int64, error)
}

// NearblocksClient implements the Nearblocks client
type NearblocksClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	apiKey     string
	json       adapter.JSON
}

// NewClient creates a new Nearblocks client
func NewClient(httpClient adapter.HTTPClient, apiURL, apiKey string, json adapter.JSON) Client {
	return &NearblocksClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		apiKey:     apiKey,
		json:       json,
	}
}

func (c *NearblocksClient) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"Authorization": fmt.Sprintf("Bearer %s", c.apiKey)}
}

// GetAccount fetches the account record, nil when the account does not exist
func (c *NearblocksClient) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	endpoint := fmt.Sprintf("%s/account/%s", c.apiURL, url.PathEscape(accountID))
	respBody, err := c.httpClient.GetBytes(ctx, endpoint, c.headers())
	if err != nil {
		return nil, fmt.Errorf("failed to call Nearblocks API: %w", err)
	}

	var resp accountResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Nearblocks account: %w", err)
	}

	if len(resp.Account) == 0 {
		return nil, nil
	}
	return &resp.Account[0], nil
}

// GetTxnCount fetches the account's lifetime transaction count
func (c *NearblocksClient) GetTxnCount(ctx context.Context, accountID string) (int64, error) {
	endpoint := fmt.Sprintf("%s/account/%s/txns/count", c.apiURL, url.PathEscape(accountID))
	respBody, err := c.httpClient.GetBytes(ctx, endpoint, c.headers())
	if err != nil {
		return 0, fmt.Errorf("failed to call Nearblocks API: %w", err)
	}

	var resp txnCountResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return 0, fmt.Errorf("failed to unmarshal Nearblocks txn count: %w", err)
	}

	if len(resp.Txns) == 0 {
		return 0, nil
	}
	count, err := strconv.ParseInt(resp.Txns[0].Count, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse Nearblocks txn count %q: %w", resp.Txns[0].Count, err)
	}
	return count, nil
}
