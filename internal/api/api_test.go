package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	w := performRequest(router, "GET", "/api/health", nil)
	require.Equal(t, 200, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Forkful API is running", body["message"])

	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}

func TestRouteNotFound(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	w := performRequest(router, "GET", "/api/nope", nil)
	require.Equal(t, 404, w.Code)
	assert.JSONEq(t, `{"error": "Route not found"}`, w.Body.String())
}

func TestCORSAllowedOrigin(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	req := httptest.NewRequest("GET", "/api/recipes", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSDisallowedOrigin(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	req := httptest.NewRequest("GET", "/api/recipes", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// gin-contrib/cors rejects origins outside the allow list outright
	assert.Equal(t, 403, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
