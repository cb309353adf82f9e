package mintbase

import (
	"context"
	"fmt"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
)

// StoreResponse represents the GraphQL response for a store lookup
type StoreResponse struct {
	Data struct {
		NFTContracts []NFTContract `json:"nft_contracts"`
		TokenCount   struct {
			Aggregate struct {
				Count int64 `json:"count"`
			} `json:"aggregate"`
		} `json:"mb_views_nft_tokens_aggregate"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// NFTContract represents a store contract on Mintbase
type NFTContract struct {
	ID         string  `json:"id"`
	Name       *string `json:"name"`
	OwnerID    *string `json:"owner_id"`
	IsMintbase bool    `json:"is_mintbase"`
}

// StoreStats is a store contract together with its minted token count
type StoreStats struct {
	Contract   NFTContract
	TokenCount int64
}

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query         string      `json:"query"`
	Variables     interface{} `json:"variables"`
	OperationName string      `json:"operationName"`
}

// Client defines the interface for Mintbase client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/mintbase_client.go -package=mocks -mock_names=Client=MockMintbaseClient
type Client interface {
	// GetStore fetches a store contract and its minted token count, nil when absent
	GetStore(ctx context.Context, contractID string) (*StoreStats, error)
}

// MintbaseClient implements the Mintbase client
type MintbaseClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	apiKey     string
	json       adapter.JSON
}

// NewClient creates a new Mintbase client
func NewClient(httpClient adapter.HTTPClient, apiURL, apiKey string, json adapter.JSON) Client {
	return &MintbaseClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		apiKey:     apiKey,
		json:       json,
	}
}

// GetStore fetches a store contract and its minted token count using GraphQL
func (c *MintbaseClient) GetStore(ctx context.Context, contractID string) (*StoreStats, error) {
	// Construct the GraphQL query
	query := `query GetStore($id: String!) {
  nft_contracts(where: {id: {_eq: $id}}) {
    id
    name
    owner_id
    is_mintbase
  }
  mb_views_nft_tokens_aggregate(where: {nft_contract_id: {_eq: $id}}) {
    aggregate {
      count
    }
  }
}`

	request := GraphQLRequest{
		Query:         query,
		Variables:     map[string]string{"id": contractID},
		OperationName: "GetStore",
	}

	requestBody, err := c.json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	headers := map[string]string{"Content-Type": "application/json"}
	if c.apiKey != "" {
		headers["mb-api-key"] = c.apiKey
	}

	responseBody, err := c.httpClient.PostBytes(ctx, c.apiURL, headers, requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to call Mintbase API: %w", err)
	}

	var response StoreResponse
	if err := c.json.Unmarshal(responseBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Mintbase response: %w", err)
	}

	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("Mintbase GraphQL error: %s", response.Errors[0].Message)
	}

	if len(response.Data.NFTContracts) == 0 {
		return nil, nil
	}

	return &StoreStats{
		Contract:   response.Data.NFTContracts[0],
		TokenCount: response.Data.TokenCount.Aggregate.Count,
	}, nil
}
