package fastnear

import (
	"context"
	"fmt"
	"net/url"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
)

// AccountState holds the on-chain state summary for an account
type AccountState struct {
	Balance      string `json:"balance"`
	StorageBytes int64  `json:"storage_bytes"`
}

// TokenBalance is one fungible token position held by the account
type TokenBalance struct {
	ContractID string `json:"contract_id"`
	Balance    string `json:"balance"`
}

// AccountInfo is the full account snapshot from the FastNear indexer.
// State is nil when the account does not exist on chain.
type AccountInfo struct {
	AccountID string         `json:"account_id"`
	State     *AccountState  `json:"state"`
	Tokens    []TokenBalance `json:"tokens"`
}

// Exists reports whether the account is present on chain
func (a AccountInfo) Exists() bool {
	return a.State != nil
}

// Client defines the interface for FastNear client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/fastnear_client.go -package=mocks -mock_names=Client=MockFastNearClient
type Client interface {
	// GetAccount fetches the full account snapshot including token balances
	GetAccount(ctx context.Context, accountID string) (*AccountInfo, error)
}

// FastNearClient implements the FastNear client
type FastNearClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	json       adapter.JSON
}

// NewClient creates a new FastNear client
func NewClient(httpClient adapter.HTTPClient, apiURL string, json adapter.JSON) Client {
	return &FastNearClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		json:       json,
	}
}

// GetAccount fetches the full account snapshot including token balances
func (c *FastNearClient) GetAccount(ctx context.Context, accountID string) (*AccountInfo, error) {
	endpoint := fmt.Sprintf("%s/account/%s/full", c.apiURL, url.PathEscape(accountID))
	respBody, err := c.httpClient.GetBytes(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call FastNear API: %w", err)
	}

	var info AccountInfo
	if err := c.json.Unmarshal(respBody, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal FastNear account: %w", err)
	}

	return &info, nil
}
