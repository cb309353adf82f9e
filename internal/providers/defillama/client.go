package defillama

import (
	"context"
	"fmt"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
)

// ChainNear is the chain key DefiLlama uses for NEAR in per-chain TVL maps
const ChainNear = "Near"

// Protocol is one entry in the DefiLlama protocol listing
type Protocol struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Category string   `json:"category"`
	Chains   []string `json:"chains"`
	// TVL is the protocol's total value locked across all chains in USD
	TVL float64 `json:"tvl"`
	// ChainTVLs breaks TVL down per chain, keyed by DefiLlama chain name
	ChainTVLs map[string]float64 `json:"chainTvls"`
}

// NearTVL returns the protocol's TVL on NEAR, falling back to the
// cross-chain total when no per-chain breakdown is published.
func (p Protocol) NearTVL() float64 {
	if v, ok := p.ChainTVLs[ChainNear]; ok {
		return v
	}
	return p.TVL
}

// OnNear reports whether the protocol is deployed on NEAR
func (p Protocol) OnNear() bool {
	for _, chain := range p.Chains {
		if chain == ChainNear {
			return true
		}
	}
	return false
}

// Client defines the interface for DefiLlama client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/defillama_client.go -package=mocks -mock_names=Client=MockDefiLlamaClient
type Client interface {
	// ListProtocols fetches the full protocol listing with per-chain TVL
	ListProtocols(ctx context.Context) ([]Protocol, error)
}

// LlamaClient implements the DefiLlama client
type LlamaClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	json       adapter.JSON
}

// NewClient creates a new DefiLlama client
func NewClient(httpClient adapter.HTTPClient, apiURL string, json adapter.JSON) Client {
	return &LlamaClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		json:       json,
	}
}

// ListProtocols fetches the full protocol listing with per-chain TVL
func (c *LlamaClient) ListProtocols(ctx context.Context) ([]Protocol, error) {
	respBody, err := c.httpClient.GetBytes(ctx, fmt.Sprintf("%s/protocols", c.apiURL), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call DefiLlama API: %w", err)
	}

	var protocols []Protocol
	if err := c.json.Unmarshal(respBody, &protocols); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DefiLlama protocols: %w", err)
	}

	return protocols, nil
}
