package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidlabs/ecosystem-indexer/internal/mocks"
	"github.com/voidlabs/ecosystem-indexer/internal/pipeline"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// TestCategoryReconciler_Run_UpsertsWholeCatalog tests that every catalog
// entry is upserted and nothing is removed when the database matches
func TestCategoryReconciler_Run_UpsertsWholeCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	reconciler := pipeline.NewCategoryReconciler(mockStore)

	ctx := context.Background()

	for _, category := range pipeline.Catalog {
		mockStore.EXPECT().
			UpsertCategory(ctx, category).
			Return(nil).
			Times(1)
	}

	existing := make([]schema.Category, 0, len(pipeline.Catalog))
	for i, category := range pipeline.Catalog {
		existing = append(existing, schema.Category{ID: int64(i + 1), Slug: category.Slug, Name: category.Name})
	}
	mockStore.EXPECT().
		ListCategories(ctx).
		Return(existing, nil).
		Times(1)

	result, err := reconciler.Run(ctx, "run-1")

	require.NoError(t, err)
	assert.Equal(t, len(pipeline.Catalog), result.Total)
	assert.Equal(t, len(pipeline.Catalog), result.Upserted)
	assert.Equal(t, 0, result.Removed)
}

// TestCategoryReconciler_Run_RemovesObsolete tests the removal cascade for a
// category the catalog no longer names
func TestCategoryReconciler_Run_RemovesObsolete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	reconciler := pipeline.NewCategoryReconciler(mockStore)

	ctx := context.Background()

	mockStore.EXPECT().
		UpsertCategory(ctx, gomock.Any()).
		Return(nil).
		Times(len(pipeline.Catalog))

	existing := []schema.Category{
		{ID: 1, Slug: "defi", Name: "DeFi"},
		{ID: 99, Slug: "metaverse", Name: "Metaverse"},
	}
	mockStore.EXPECT().
		ListCategories(ctx).
		Return(existing, nil).
		Times(1)

	mockStore.EXPECT().
		RemoveCategory(ctx, "metaverse").
		Return(true, nil).
		Times(1)

	result, err := reconciler.Run(ctx, "run-1")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Removed)
}

// TestCategoryReconciler_Run_UpsertError tests that an upsert failure aborts
// reconciliation before any removal is attempted
func TestCategoryReconciler_Run_UpsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	reconciler := pipeline.NewCategoryReconciler(mockStore)

	ctx := context.Background()

	mockStore.EXPECT().
		UpsertCategory(ctx, gomock.Any()).
		Return(errors.New("db down")).
		Times(1)

	_, err := reconciler.Run(ctx, "run-1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert category")
	assert.Contains(t, err.Error(), "db down")
}

// TestCategoryReconciler_RemoveObsoleteCategories_AlreadyGone tests that a
// removal racing another writer does not count as removed
func TestCategoryReconciler_RemoveObsoleteCategories_AlreadyGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	reconciler := pipeline.NewCategoryReconciler(mockStore)

	ctx := context.Background()

	mockStore.EXPECT().
		ListCategories(ctx).
		Return([]schema.Category{{ID: 99, Slug: "metaverse"}}, nil).
		Times(1)

	mockStore.EXPECT().
		RemoveCategory(ctx, "metaverse").
		Return(false, nil).
		Times(1)

	removed, err := reconciler.RemoveObsoleteCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}
