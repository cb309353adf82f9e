package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/mocks"
	"github.com/voidlabs/ecosystem-indexer/internal/pipeline"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/fastnear"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// TestFastNearStage_Run_MarksLiveness tests that an existing account marks the
// project active and a missing one marks it inactive, both with provider
// attribution
func TestFastNearStage_Run_MarksLiveness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClient := mocks.NewMockFastNearClient(ctrl)
	mockPacer := mocks.NewMockPacer(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(testNow).AnyTimes()

	stage := pipeline.NewFastNearStage(mockStore, mockClient, mockPacer, mockClock, time.Second)

	ctx := context.Background()

	projects := []schema.Project{
		{
			ID:   10,
			Slug: "ref-finance",
			Name: "Ref Finance",
			RawData: map[string]interface{}{
				"nearcatalog": map[string]interface{}{
					"contracts": []interface{}{"v2.ref-finance.near"},
				},
			},
		},
		{
			ID:   11,
			Slug: "ghost-town",
			Name: "Ghost Town",
			RawData: map[string]interface{}{
				"fastnear": map[string]interface{}{"account_id": "ghost.near"},
			},
		},
		{ID: 12, Slug: "no-account", Name: "No Account"},
	}
	mockStore.EXPECT().
		ListProjects(ctx).
		Return(projects, nil).
		Times(1)

	mockClient.EXPECT().
		GetAccount(gomock.Any(), "v2.ref-finance.near").
		Return(&fastnear.AccountInfo{
			AccountID: "v2.ref-finance.near",
			State:     &fastnear.AccountState{Balance: "8021000000000000000000000", StorageBytes: 1_048_576},
			Tokens: []fastnear.TokenBalance{
				{ContractID: "token.v2.ref-finance.near", Balance: "12000000"},
			},
		}, nil).
		Times(1)
	mockClient.EXPECT().
		GetAccount(gomock.Any(), "ghost.near").
		Return(&fastnear.AccountInfo{AccountID: "ghost.near"}, nil).
		Times(1)

	mockStore.EXPECT().
		UpdateProjectActivity(ctx, int64(10), true, domain.ProviderFastNear).
		Return(nil).
		Times(1)
	mockStore.EXPECT().
		UpdateProjectActivity(ctx, int64(11), false, domain.ProviderFastNear).
		Return(nil).
		Times(1)

	mockStore.EXPECT().
		SetProjectFragment(ctx, int64(10), domain.ProviderFastNear, map[string]interface{}{
			"account_id":    "v2.ref-finance.near",
			"exists":        true,
			"token_count":   1,
			"balance":       "8021000000000000000000000",
			"storage_bytes": int64(1_048_576),
			"synced_at":     "2026-08-30T12:00:00Z",
		}).
		Return(nil).
		Times(1)
	mockStore.EXPECT().
		SetProjectFragment(ctx, int64(11), domain.ProviderFastNear, map[string]interface{}{
			"account_id":  "ghost.near",
			"exists":      false,
			"token_count": 0,
			"synced_at":   "2026-08-30T12:00:00Z",
		}).
		Return(nil).
		Times(1)

	mockPacer.EXPECT().Wait(ctx).Return(nil).Times(2)

	result := stage.Run(ctx, "run-1")

	assert.Equal(t, domain.StageStatusOK, result.Status)
	assert.Equal(t, 2, result.Enriched)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 3, result.Total)
}

// TestFastNearStage_Run_PacerCancellation tests that a canceled context during
// pacing stops the pass with the partial counts preserved
func TestFastNearStage_Run_PacerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClient := mocks.NewMockFastNearClient(ctrl)
	mockPacer := mocks.NewMockPacer(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(testNow).AnyTimes()

	stage := pipeline.NewFastNearStage(mockStore, mockClient, mockPacer, mockClock, time.Second)

	ctx := context.Background()

	projects := []schema.Project{
		{
			ID:   20,
			Slug: "first",
			Name: "First",
			RawData: map[string]interface{}{
				"fastnear": map[string]interface{}{"account_id": "first.near"},
			},
		},
		{
			ID:   21,
			Slug: "second",
			Name: "Second",
			RawData: map[string]interface{}{
				"fastnear": map[string]interface{}{"account_id": "second.near"},
			},
		},
	}
	mockStore.EXPECT().
		ListProjects(ctx).
		Return(projects, nil).
		Times(1)

	mockClient.EXPECT().
		GetAccount(gomock.Any(), "first.near").
		Return(&fastnear.AccountInfo{AccountID: "first.near", State: &fastnear.AccountState{}}, nil).
		Times(1)
	mockStore.EXPECT().
		UpdateProjectActivity(ctx, int64(20), true, domain.ProviderFastNear).
		Return(nil).
		Times(1)
	mockStore.EXPECT().
		SetProjectFragment(ctx, int64(20), domain.ProviderFastNear, gomock.Any()).
		Return(nil).
		Times(1)

	mockPacer.EXPECT().Wait(ctx).Return(context.Canceled).Times(1)

	result := stage.Run(ctx, "run-1")

	assert.Equal(t, 1, result.Enriched)
	assert.Equal(t, context.Canceled.Error(), result.Error)
}
