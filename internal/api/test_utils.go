package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forkful/backend/config"
	"github.com/forkful/backend/internal/middleware"
	"github.com/forkful/backend/internal/model"
)

// testConfig returns a config suitable for handler tests. lookupURL points
// the generate handler at a fake lookup server; empty leaves the key unset.
func testConfig(lookupURL string) *config.Config {
	cfg := &config.Config{
		SpoonacularAPIURL: "http://unused.invalid",
		AllowedOrigins:    []string{"http://localhost:5173"},
	}
	if lookupURL != "" {
		cfg.SpoonacularAPIKey = "test-key"
		cfg.SpoonacularAPIURL = lookupURL
	}
	return cfg
}

// setupTestRouter builds the full route tree over a sqlite in-memory store
func setupTestRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Recipe{}))

	router := gin.New()
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	RegisterRoutes(router, db, cfg)

	return router, db
}

// performRequest runs one request through the router and records the response
func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// validRecipePayload builds a minimal payload that passes validation
func validRecipePayload() map[string]interface{} {
	return map[string]interface{}{
		"title":   "Tomato Pasta",
		"cuisine": "Italian",
		"ingredients": []map[string]string{
			{"name": "pasta", "quantity": "200 g"},
			{"name": "tomato", "quantity": "2"},
		},
		"steps": []string{"Boil pasta", "Add sauce"},
	}
}

// createTestRecipe posts a recipe and returns the decoded response body
func createTestRecipe(t *testing.T, router *gin.Engine, payload map[string]interface{}) map[string]interface{} {
	w := performRequest(router, "POST", "/api/recipes", payload)
	require.Equal(t, 201, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Contains(t, created, "id")
	return created
}
