package nearrpc

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
)

// request is a NEAR JSON-RPC request envelope
type request struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

// queryParams are the params of a call_function view query
type queryParams struct {
	RequestType string `json:"request_type"`
	Finality    string `json:"finality"`
	AccountID   string `json:"account_id"`
	MethodName  string `json:"method_name"`
	ArgsBase64  string `json:"args_base64"`
}

// response is a NEAR JSON-RPC response envelope
type response struct {
	Result *callResult `json:"result"`
	Error  *rpcError   `json:"error"`
}

// callResult holds the view-call output. The node encodes the contract's return
// value as a JSON array of byte values, not a base64 string.
type callResult struct {
	Result      []int    `json:"result"`
	Logs        []string `json:"logs"`
	BlockHeight uint64   `json:"block_height"`
}

// rpcError is the JSON-RPC error object
type rpcError struct {
	Name    string `json:"name"`
	Cause   any    `json:"cause"`
	Message string `json:"message"`
}

// Client defines the interface for NEAR RPC view calls to enable mocking
//
//go:generate mockgen -source=client.go -destination=../mocks/nearrpc_client.go -package=mocks -mock_names=Client=MockNearRPCClient
type Client interface {
	// CallFunction performs a read-only call_function query against a contract and
	// returns the raw JSON the contract method produced
	CallFunction(ctx context.Context, accountID, methodName string, args []byte) ([]byte, error)
}

// NearClient implements Client against a NEAR JSON-RPC node
type NearClient struct {
	httpClient adapter.HTTPClient
	rpcURL     string
	json       adapter.JSON
}

// NewClient creates a new NEAR RPC client
func NewClient(httpClient adapter.HTTPClient, rpcURL string, json adapter.JSON) Client {
	return &NearClient{
		httpClient: httpClient,
		rpcURL:     rpcURL,
		json:       json,
	}
}

// CallFunction performs a read-only call_function query against a contract
func (c *NearClient) CallFunction(ctx context.Context, accountID, methodName string, args []byte) ([]byte, error) {
	if len(args) == 0 {
		args = []byte("{}")
	}

	req := request{
		JSONRPC: "2.0",
		ID:      "dontcare",
		Method:  "query",
		Params: queryParams{
			RequestType: "call_function",
			Finality:    "final",
			AccountID:   accountID,
			MethodName:  methodName,
			ArgsBase64:  base64.StdEncoding.EncodeToString(args),
		},
	}

	requestBody, err := c.json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal RPC request: %w", err)
	}

	responseBody, err := c.httpClient.PostBytes(ctx, c.rpcURL, nil, requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to call NEAR RPC: %w", err)
	}

	var resp response
	if err := c.json.Unmarshal(responseBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RPC response: %w", err)
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("NEAR RPC error: %s: %s", resp.Error.Name, resp.Error.Message)
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("NEAR RPC returned no result")
	}

	raw := make([]byte, len(resp.Result.Result))
	for i, b := range resp.Result.Result {
		raw[i] = byte(b)
	}

	return raw, nil
}
