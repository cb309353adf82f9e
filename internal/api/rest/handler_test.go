package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidlabs/ecosystem-indexer/internal/api/rest"
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/mocks"
	"github.com/voidlabs/ecosystem-indexer/internal/pipeline"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

func testContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, recorder
}

// TestHandler_TriggerManualSync_Success tests the trigger envelope on a
// completed run
func TestHandler_TriggerManualSync_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockRunner := mocks.NewMockRunner(ctrl)
	handler := rest.NewHandler(mockStore, mockRunner)

	results := &pipeline.Results{
		Categories:    domain.CategoryResult{Upserted: 12, Total: 12},
		Ecosystem:     domain.StageResult{Status: domain.StageStatusOK, Enriched: 40, Total: 40},
		Opportunities: domain.OpportunityResult{Created: 2, Updated: 10, Total: 12},
	}
	mockRunner.EXPECT().
		Run(gomock.Any(), domain.SyncSourceManual).
		Return(results, nil).
		Times(1)

	c, recorder := testContext(http.MethodPost, "/api/v1/sync/run")
	handler.TriggerManualSync(c)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.JSONEq(t, "true", string(body["success"]))

	var gotResults pipeline.Results
	require.NoError(t, json.Unmarshal(body["results"], &gotResults))
	assert.Equal(t, *results, gotResults)
}

// TestHandler_TriggerCronSync_RunInProgress tests the 409 on a concurrent run
func TestHandler_TriggerCronSync_RunInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockRunner := mocks.NewMockRunner(ctrl)
	handler := rest.NewHandler(mockStore, mockRunner)

	mockRunner.EXPECT().
		Run(gomock.Any(), domain.SyncSourceScheduler).
		Return(nil, domain.ErrRunInProgress).
		Times(1)

	c, recorder := testContext(http.MethodPost, "/api/v1/sync/cron")
	handler.TriggerCronSync(c)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "conflict")
	assert.Contains(t, recorder.Body.String(), "already in progress")
}

// TestHandler_TriggerManualSync_RunError tests the 500 on a failed run
func TestHandler_TriggerManualSync_RunError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockRunner := mocks.NewMockRunner(ctrl)
	handler := rest.NewHandler(mockStore, mockRunner)

	mockRunner.EXPECT().
		Run(gomock.Any(), domain.SyncSourceManual).
		Return(nil, errors.New("db down")).
		Times(1)

	c, recorder := testContext(http.MethodPost, "/api/v1/sync/run")
	handler.TriggerManualSync(c)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "internal_error")
	// The underlying error is logged, never leaked to the client
	assert.NotContains(t, recorder.Body.String(), "db down")
}

// TestHandler_ListOpportunities tests listing with the default limit
func TestHandler_ListOpportunities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockRunner := mocks.NewMockRunner(ctrl)
	handler := rest.NewHandler(mockStore, mockRunner)

	opportunities := []schema.Opportunity{
		{
			ID:                1,
			CategoryID:        4,
			Title:             "AI Agents gap on NEAR",
			GapScore:          88,
			DemandScore:       0,
			CompetitionLevel:  domain.CompetitionLow,
			Difficulty:        domain.DifficultyAdvanced,
			SuggestedFeatures: []byte(`["Agent wallets with spend limits"]`),
		},
	}
	mockStore.EXPECT().
		ListOpportunities(gomock.Any(), 20).
		Return(opportunities, nil).
		Times(1)

	c, recorder := testContext(http.MethodGet, "/api/v1/opportunities")
	handler.ListOpportunities(c)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "AI Agents gap on NEAR")
	assert.Contains(t, recorder.Body.String(), `"gap_score":88`)
	assert.Contains(t, recorder.Body.String(), "Agent wallets with spend limits")
}

// TestHandler_ListOpportunities_LimitClamping tests the limit query parameter
// parsing rules
func TestHandler_ListOpportunities_LimitClamping(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		expected int
	}{
		{name: "default", query: "", expected: 20},
		{name: "explicit", query: "?limit=5", expected: 5},
		{name: "above_max", query: "?limit=5000", expected: 100},
		{name: "zero", query: "?limit=0", expected: 20},
		{name: "negative", query: "?limit=-3", expected: 20},
		{name: "garbage", query: "?limit=abc", expected: 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			mockRunner := mocks.NewMockRunner(ctrl)
			handler := rest.NewHandler(mockStore, mockRunner)

			mockStore.EXPECT().
				ListOpportunities(gomock.Any(), tc.expected).
				Return([]schema.Opportunity{}, nil).
				Times(1)

			c, recorder := testContext(http.MethodGet, "/api/v1/opportunities"+tc.query)
			handler.ListOpportunities(c)

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

// TestHandler_GetProject tests project retrieval by slug
func TestHandler_GetProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockRunner := mocks.NewMockRunner(ctrl)
	handler := rest.NewHandler(mockStore, mockRunner)

	project := &schema.Project{
		ID:     10,
		Slug:   "ref-finance",
		Name:   "Ref Finance",
		TVLUSD: 92_000_000,
		RawData: map[string]interface{}{
			"defillama": map[string]interface{}{"protocol_slug": "ref-finance"},
		},
		UpdatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	mockStore.EXPECT().
		GetProjectBySlug(gomock.Any(), "ref-finance").
		Return(project, nil).
		Times(1)

	c, recorder := testContext(http.MethodGet, "/api/v1/projects/ref-finance")
	c.Params = gin.Params{{Key: "slug", Value: "ref-finance"}}
	handler.GetProject(c)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"slug":"ref-finance"`)
	assert.Contains(t, recorder.Body.String(), `"tvl_usd":92000000`)
	assert.Contains(t, recorder.Body.String(), `"protocol_slug":"ref-finance"`)
}

// TestHandler_GetProject_NotFound tests the 404 for an unknown slug
func TestHandler_GetProject_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockRunner := mocks.NewMockRunner(ctrl)
	handler := rest.NewHandler(mockStore, mockRunner)

	mockStore.EXPECT().
		GetProjectBySlug(gomock.Any(), "no-such-project").
		Return(nil, nil).
		Times(1)

	c, recorder := testContext(http.MethodGet, "/api/v1/projects/no-such-project")
	c.Params = gin.Params{{Key: "slug", Value: "no-such-project"}}
	handler.GetProject(c)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "not_found")
}

// TestHandler_ListSyncLogs tests the audit listing
func TestHandler_ListSyncLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockRunner := mocks.NewMockRunner(ctrl)
	handler := rest.NewHandler(mockStore, mockRunner)

	logs := []schema.SyncLog{
		{
			RunID:            "run-1",
			Source:           domain.SyncSourceScheduler,
			Status:           schema.SyncStatusCompleted,
			RecordsProcessed: 57,
			StartedAt:        time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
		},
	}
	mockStore.EXPECT().
		ListSyncLogs(gomock.Any(), 20).
		Return(logs, nil).
		Times(1)

	c, recorder := testContext(http.MethodGet, "/api/v1/sync/logs")
	handler.ListSyncLogs(c)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"run_id":"run-1"`)
	assert.Contains(t, recorder.Body.String(), `"records_processed":57`)
}

// TestHandler_ListCategories_StoreError tests the 500 on a listing failure
func TestHandler_ListCategories_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockRunner := mocks.NewMockRunner(ctrl)
	handler := rest.NewHandler(mockStore, mockRunner)

	mockStore.EXPECT().
		ListCategories(gomock.Any()).
		Return(nil, errors.New("db down")).
		Times(1)

	c, recorder := testContext(http.MethodGet, "/api/v1/categories")
	handler.ListCategories(c)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

// TestHandler_HealthCheck tests the health endpoint
func TestHandler_HealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockRunner := mocks.NewMockRunner(ctrl)
	handler := rest.NewHandler(mockStore, mockRunner)

	c, recorder := testContext(http.MethodGet, "/health")
	handler.HealthCheck(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status": "ok"}`, recorder.Body.String())
}
