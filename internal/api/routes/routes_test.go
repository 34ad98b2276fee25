package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"match-tracker-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:       "development",
		Port:              "7010",
		AllowedOrigins:    []string{"http://localhost:3000"},
		AdminRedirectPath: "/dashboard/admin",
	}
}

// setAuthEnv provides the session provider credentials through the
// environment, the way a deployment without a config/auth.yaml runs.
func setAuthEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "routes-test-signing-key")
	t.Setenv("AUTH_REDIRECT_URL", "http://localhost:3000")
	t.Setenv("GITHUB_APP_CLIENT_ID", "test-client-id")
	t.Setenv("GITHUB_APP_CLIENT_SECRET", "test-client-secret")
}

// clearAuthEnv blanks the credentials so values leaking in from the outer
// environment cannot mask the failure path.
func clearAuthEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("AUTH_REDIRECT_URL", "")
	t.Setenv("GITHUB_APP_CLIENT_ID", "")
	t.Setenv("GITHUB_APP_CLIENT_SECRET", "")
}

// TestSetupRoutesFailsWithoutAuthConfig tests that route setup refuses to
// produce a router when the session provider cannot be configured. Serving
// the mutation routes without their gate is not a fallback.
func TestSetupRoutesFailsWithoutAuthConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clearAuthEnv(t)

	router, err := SetupRoutes(nil, testConfig())

	assert.Error(t, err)
	assert.Nil(t, router)
	assert.Contains(t, err.Error(), "auth config")
}

// TestMutationsGatedOnFreshRouter tests that every mutation route on a router
// built by SetupRoutes rejects anonymous requests before any handler runs.
// The nil DB makes the test fail loudly if a request ever slips past the
// gate into the persistence path.
func TestMutationsGatedOnFreshRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setAuthEnv(t)

	router, err := SetupRoutes(nil, testConfig())
	require.NoError(t, err)
	require.NotNil(t, router)

	id := uuid.New().String()
	mutations := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/participants"},
		{http.MethodPut, "/api/v1/participants/" + id},
		{http.MethodDelete, "/api/v1/participants/" + id},
		{http.MethodPost, "/api/v1/matches"},
		{http.MethodPut, "/api/v1/matches/" + id},
		{http.MethodDelete, "/api/v1/matches/" + id},
	}

	for _, m := range mutations {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(m.method, m.path, nil)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "%s %s", m.method, m.path)
	}
}

// TestUnknownRouteReturnsNotFound tests the catch-all JSON 404
func TestUnknownRouteReturnsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setAuthEnv(t)

	router, err := SetupRoutes(nil, testConfig())
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nonexistent", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
