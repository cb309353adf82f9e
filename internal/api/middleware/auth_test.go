package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/voidlabs/ecosystem-indexer/internal/api/middleware"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
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

func runGuarded(guard gin.HandlerFunc, headers map[string]string) (*httptest.ResponseRecorder, bool) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/sync/run", nil)
	for key, value := range headers {
		c.Request.Header.Set(key, value)
	}

	passed := false
	guard(c)
	if !c.IsAborted() {
		passed = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
	return recorder, passed
}

func TestSyncAuth(t *testing.T) {
	cfg := middleware.AuthConfig{SyncSecret: "s3cret"}

	testCases := []struct {
		name     string
		headers  map[string]string
		expected bool
	}{
		{name: "valid_bearer", headers: map[string]string{"Authorization": "Bearer s3cret"}, expected: true},
		{name: "case_insensitive_scheme", headers: map[string]string{"Authorization": "bearer s3cret"}, expected: true},
		{name: "wrong_secret", headers: map[string]string{"Authorization": "Bearer wrong"}, expected: false},
		{name: "no_header", headers: nil, expected: false},
		{name: "not_bearer", headers: map[string]string{"Authorization": "Basic s3cret"}, expected: false},
		{name: "bare_token", headers: map[string]string{"Authorization": "s3cret"}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder, passed := runGuarded(middleware.SyncAuth(cfg), tc.headers)
			assert.Equal(t, tc.expected, passed)
			if !tc.expected {
				assert.Equal(t, http.StatusUnauthorized, recorder.Code)
				assert.Contains(t, recorder.Body.String(), "unauthorized")
			}
		})
	}
}

// TestSyncAuth_NoSecretConfigured tests that a missing secret fails closed
func TestSyncAuth_NoSecretConfigured(t *testing.T) {
	recorder, passed := runGuarded(
		middleware.SyncAuth(middleware.AuthConfig{}),
		map[string]string{"Authorization": "Bearer anything"},
	)

	assert.False(t, passed)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCronAuth_WithSecret(t *testing.T) {
	cfg := middleware.AuthConfig{CronSecret: "cr0n", TrustedCronHeader: "X-Cloudscheduler"}

	_, passed := runGuarded(middleware.CronAuth(cfg), map[string]string{"Authorization": "Bearer cr0n"})
	assert.True(t, passed)

	// With a secret configured, the trusted header alone is not enough
	recorder, passed := runGuarded(middleware.CronAuth(cfg), map[string]string{"X-Cloudscheduler": "true"})
	assert.False(t, passed)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCronAuth_TrustedHeaderFallback(t *testing.T) {
	cfg := middleware.AuthConfig{TrustedCronHeader: "X-Cloudscheduler"}

	_, passed := runGuarded(middleware.CronAuth(cfg), map[string]string{"X-Cloudscheduler": "true"})
	assert.True(t, passed)

	recorder, passed := runGuarded(middleware.CronAuth(cfg), nil)
	assert.False(t, passed)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

// TestCronAuth_NothingConfigured tests that no secret and no trusted header
// fails closed
func TestCronAuth_NothingConfigured(t *testing.T) {
	recorder, passed := runGuarded(middleware.CronAuth(middleware.AuthConfig{}), nil)

	assert.False(t, passed)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
