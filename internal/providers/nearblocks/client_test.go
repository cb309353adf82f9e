package nearblocks_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/mocks"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/nearblocks"
)

const (
	NEARBLOCKS_API_URL = "https://api.nearblocks.io/v1"
	NEARBLOCKS_API_KEY = "test-key"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var authHeaders = map[string]string{"Authorization": "Bearer " + NEARBLOCKS_API_KEY}

// TestClient_GetAccount_Success tests successful account retrieval with mock
func TestClient_GetAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	client := nearblocks.NewClient(mockHTTPClient, NEARBLOCKS_API_URL, NEARBLOCKS_API_KEY, jsonAdapter)

	ctx := context.Background()

	response := `{
		"account": [
			{
				"account_id": "v2.ref-finance.near",
				"amount": "104061602528017659296490694",
				"block_timestamp": "1756500000000000000"
			}
		]
	}`

	mockHTTPClient.EXPECT().
		GetBytes(ctx, NEARBLOCKS_API_URL+"/account/v2.ref-finance.near", authHeaders).
		Return([]byte(response), nil).
		Times(1)

	account, err := client.GetAccount(ctx, "v2.ref-finance.near")

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "v2.ref-finance.near", account.AccountID)
	assert.Equal(t, "104061602528017659296490694", account.Amount)
}

// TestClient_GetAccount_NotFound tests that a missing account returns nil without error
func TestClient_GetAccount_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	client := nearblocks.NewClient(mockHTTPClient, NEARBLOCKS_API_URL, NEARBLOCKS_API_KEY, jsonAdapter)

	ctx := context.Background()

	mockHTTPClient.EXPECT().
		GetBytes(ctx, NEARBLOCKS_API_URL+"/account/missing.near", authHeaders).
		Return([]byte(`{"account": []}`), nil).
		Times(1)

	account, err := client.GetAccount(ctx, "missing.near")

	require.NoError(t, err)
	assert.Nil(t, account)
}

// TestClient_GetAccount_NoAPIKey tests that no Authorization header is sent without a key
func TestClient_GetAccount_NoAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	client := nearblocks.NewClient(mockHTTPClient, NEARBLOCKS_API_URL, "", jsonAdapter)

	ctx := context.Background()

	mockHTTPClient.EXPECT().
		GetBytes(ctx, NEARBLOCKS_API_URL+"/account/app.near", nil).
		Return([]byte(`{"account": []}`), nil).
		Times(1)

	_, err := client.GetAccount(ctx, "app.near")

	require.NoError(t, err)
}

// TestClient_GetTxnCount_Success tests successful transaction count retrieval with mock
func TestClient_GetTxnCount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	client := nearblocks.NewClient(mockHTTPClient, NEARBLOCKS_API_URL, NEARBLOCKS_API_KEY, jsonAdapter)

	ctx := context.Background()

	mockHTTPClient.EXPECT().
		GetBytes(ctx, NEARBLOCKS_API_URL+"/account/v2.ref-finance.near/txns/count", authHeaders).
		Return([]byte(`{"txns": [{"count": "18329412"}]}`), nil).
		Times(1)

	count, err := client.GetTxnCount(ctx, "v2.ref-finance.near")

	require.NoError(t, err)
	assert.Equal(t, int64(18329412), count)
}

// TestClient_GetTxnCount_EmptyResponse tests that an empty txns list yields zero
func TestClient_GetTxnCount_EmptyResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	client := nearblocks.NewClient(mockHTTPClient, NEARBLOCKS_API_URL, NEARBLOCKS_API_KEY, jsonAdapter)

	ctx := context.Background()

	mockHTTPClient.EXPECT().
		GetBytes(ctx, NEARBLOCKS_API_URL+"/account/quiet.near/txns/count", authHeaders).
		Return([]byte(`{"txns": []}`), nil).
		Times(1)

	count, err := client.GetTxnCount(ctx, "quiet.near")

	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// TestClient_GetTxnCount_MalformedCount tests error handling for a non-numeric count
func TestClient_GetTxnCount_MalformedCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	client := nearblocks.NewClient(mockHTTPClient, NEARBLOCKS_API_URL, NEARBLOCKS_API_KEY, jsonAdapter)

	ctx := context.Background()

	mockHTTPClient.EXPECT().
		GetBytes(ctx, NEARBLOCKS_API_URL+"/account/app.near/txns/count", authHeaders).
		Return([]byte(`{"txns": [{"count": "not-a-number"}]}`), nil).
		Times(1)

	count, err := client.GetTxnCount(ctx, "app.near")

	assert.Error(t, err)
	assert.Equal(t, int64(0), count)
	assert.Contains(t, err.Error(), "failed to parse Nearblocks txn count")
}

// TestClient_GetTxnCount_HTTPError tests error handling when HTTP client returns an error
func TestClient_GetTxnCount_HTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	client := nearblocks.NewClient(mockHTTPClient, NEARBLOCKS_API_URL, NEARBLOCKS_API_KEY, jsonAdapter)

	ctx := context.Background()

	mockHTTPClient.EXPECT().
		GetBytes(ctx, NEARBLOCKS_API_URL+"/account/app.near/txns/count", authHeaders).
		Return(nil, errors.New("rate limited")).
		Times(1)

	count, err := client.GetTxnCount(ctx, "app.near")

	assert.Error(t, err)
	assert.Equal(t, int64(0), count)
	assert.Contains(t, err.Error(), "failed to call Nearblocks API")
}
