package astrodao_test

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
	"github.com/voidlabs/ecosystem-indexer/internal/providers/astrodao"
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

// TestClient_ListDAOs_Success tests successful DAO listing through the factory contract
func TestClient_ListDAOs_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRPC := mocks.NewMockNearRPCClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	client := astrodao.NewClient(mockRPC, jsonAdapter)

	ctx := context.Background()

	mockRPC.EXPECT().
		CallFunction(ctx, astrodao.FactoryAccountID, "get_daos", gomock.Any()).
		DoAndReturn(func(ctx context.Context, accountID, methodName string, args []byte) ([]byte, error) {
			assert.JSONEq(t, `{"from_index": 0, "limit": 100}`, string(args))
			return []byte(`["ndc.sputnik-dao.near", "marketing.sputnik-dao.near"]`), nil
		}).
		Times(1)

	daos, err := client.ListDAOs(ctx, 0, 100)

	require.NoError(t, err)
	assert.Equal(t, []string{"ndc.sputnik-dao.near", "marketing.sputnik-dao.near"}, daos)
}

// TestClient_ListDAOs_RPCError tests error handling when the view call fails
func TestClient_ListDAOs_RPCError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRPC := mocks.NewMockNearRPCClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	client := astrodao.NewClient(mockRPC, jsonAdapter)

	ctx := context.Background()

	mockRPC.EXPECT().
		CallFunction(ctx, astrodao.FactoryAccountID, "get_daos", gomock.Any()).
		Return(nil, errors.New("rpc unavailable")).
		Times(1)

	daos, err := client.ListDAOs(ctx, 0, 100)

	assert.Error(t, err)
	assert.Nil(t, daos)
	assert.Contains(t, err.Error(), "failed to call get_daos on sputnik-dao.near")
	assert.Contains(t, err.Error(), "rpc unavailable")
}

// TestClient_GetDAOStats_Success tests aggregating the two governance view calls
func TestClient_GetDAOStats_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRPC := mocks.NewMockNearRPCClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	client := astrodao.NewClient(mockRPC, jsonAdapter)

	ctx := context.Background()
	daoID := "ndc.sputnik-dao.near"

	mockRPC.EXPECT().
		CallFunction(ctx, daoID, "get_last_proposal_id", []byte("{}")).
		Return([]byte("184"), nil).
		Times(1)

	mockRPC.EXPECT().
		CallFunction(ctx, daoID, "get_policy", []byte("{}")).
		Return([]byte(`{"roles": [{"name": "all"}, {"name": "council"}]}`), nil).
		Times(1)

	stats, err := client.GetDAOStats(ctx, daoID)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, daoID, stats.DAOID)
	assert.Equal(t, int64(184), stats.LastProposalID)
	assert.Equal(t, 2, stats.RoleCount)
}

// TestClient_GetDAOStats_ProposalCallError tests that a failed first call aborts the lookup
func TestClient_GetDAOStats_ProposalCallError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRPC := mocks.NewMockNearRPCClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	client := astrodao.NewClient(mockRPC, jsonAdapter)

	ctx := context.Background()
	daoID := "ndc.sputnik-dao.near"

	mockRPC.EXPECT().
		CallFunction(ctx, daoID, "get_last_proposal_id", []byte("{}")).
		Return(nil, errors.New("contract panic")).
		Times(1)

	stats, err := client.GetDAOStats(ctx, daoID)

	assert.Error(t, err)
	assert.Nil(t, stats)
	assert.Contains(t, err.Error(), "failed to call get_last_proposal_id on ndc.sputnik-dao.near")
}

// TestClient_GetDAOStats_MalformedPolicy tests error handling for a malformed policy result
func TestClient_GetDAOStats_MalformedPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRPC := mocks.NewMockNearRPCClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	client := astrodao.NewClient(mockRPC, jsonAdapter)

	ctx := context.Background()
	daoID := "ndc.sputnik-dao.near"

	mockRPC.EXPECT().
		CallFunction(ctx, daoID, "get_last_proposal_id", []byte("{}")).
		Return([]byte("7"), nil).
		Times(1)

	mockRPC.EXPECT().
		CallFunction(ctx, daoID, "get_policy", []byte("{}")).
		Return([]byte("not json"), nil).
		Times(1)

	stats, err := client.GetDAOStats(ctx, daoID)

	assert.Error(t, err)
	assert.Nil(t, stats)
	assert.Contains(t, err.Error(), "failed to unmarshal get_policy result")
}
