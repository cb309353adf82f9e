package astrodao

import (
	"context"
	"fmt"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/nearrpc"
)

// FactoryAccountID is the Sputnik DAO factory contract on mainnet
const FactoryAccountID = "sputnik-dao.near"

// Policy is the subset of the DAO policy the indexer consumes
type Policy struct {
	Roles []Role `json:"roles"`
}

// Role is one role entry in a DAO policy
type Role struct {
	Name string `json:"name"`
}

// DAOStats aggregates governance view call results for one DAO
type DAOStats struct {
	DAOID          string
	LastProposalID int64
	RoleCount      int
}

// Client defines the interface for Sputnik DAO view calls to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/astrodao_client.go -package=mocks -mock_names=Client=MockAstroDAOClient
type Client interface {
	// ListDAOs pages through the factory's registered DAO account ids
	ListDAOs(ctx context.Context, fromIndex, limit int64) ([]string, error)
	// GetDAOStats fetches proposal and policy counters for one DAO contract
	GetDAOStats(ctx context.Context, daoID string) (*DAOStats, error)
}

// AstroDAOClient implements the Sputnik DAO client over NEAR JSON-RPC view calls
type AstroDAOClient struct {
	rpc  nearrpc.Client
	json adapter.JSON
}

// NewClient creates a new Sputnik DAO client
func NewClient(rpc nearrpc.Client, json adapter.JSON) Client {
	return &AstroDAOClient{
		rpc:  rpc,
		json: json,
	}
}

// ListDAOs pages through the factory's registered DAO account ids
func (c *AstroDAOClient) ListDAOs(ctx context.Context, fromIndex, limit int64) ([]string, error) {
	args, err := c.json.Marshal(map[string]int64{
		"from_index": fromIndex,
		"limit":      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal get_daos args: %w", err)
	}

	raw, err := c.rpc.CallFunction(ctx, FactoryAccountID, "get_daos", args)
	if err != nil {
		return nil, fmt.Errorf("failed to call get_daos on %s: %w", FactoryAccountID, err)
	}

	var daos []string
	if err := c.json.Unmarshal(raw, &daos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal get_daos result: %w", err)
	}

	return daos, nil
}

// GetDAOStats fetches proposal and policy counters for one DAO contract
func (c *AstroDAOClient) GetDAOStats(ctx context.Context, daoID string) (*DAOStats, error) {
	raw, err := c.rpc.CallFunction(ctx, daoID, "get_last_proposal_id", []byte("{}"))
	if err != nil {
		return nil, fmt.Errorf("failed to call get_last_proposal_id on %s: %w", daoID, err)
	}

	var lastProposalID int64
	if err := c.json.Unmarshal(raw, &lastProposalID); err != nil {
		return nil, fmt.Errorf("failed to unmarshal get_last_proposal_id result: %w", err)
	}

	raw, err = c.rpc.CallFunction(ctx, daoID, "get_policy", []byte("{}"))
	if err != nil {
		return nil, fmt.Errorf("failed to call get_policy on %s: %w", daoID, err)
	}

	var policy Policy
	if err := c.json.Unmarshal(raw, &policy); err != nil {
		return nil, fmt.Errorf("failed to unmarshal get_policy result: %w", err)
	}

	return &DAOStats{
		DAOID:          daoID,
		LastProposalID: lastProposalID,
		RoleCount:      len(policy.Roles),
	}, nil
}
