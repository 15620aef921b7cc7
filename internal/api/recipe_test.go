package api

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipe(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	created := createTestRecipe(t, router, validRecipePayload())

	assert.Equal(t, "Tomato Pasta", created["title"])
	assert.Equal(t, "Italian", created["cuisine"])
	assert.Equal(t, "user", created["source"])
	assert.Equal(t, "guest", created["createdBy"])
	assert.Equal(t, true, created["isPublic"])
	assert.Equal(t, "", created["imageUrl"])
	assert.NotEmpty(t, created["createdAt"])
	assert.NotEmpty(t, created["updatedAt"])

	_, err := uuid.Parse(created["id"].(string))
	assert.NoError(t, err)
}

func TestCreateRecipeValidation(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"missing title", func(p map[string]interface{}) { delete(p, "title") }},
		{"missing cuisine", func(p map[string]interface{}) { delete(p, "cuisine") }},
		{"empty ingredients", func(p map[string]interface{}) { p["ingredients"] = []map[string]string{} }},
		{"empty steps", func(p map[string]interface{}) { p["steps"] = []string{} }},
		{"ingredient missing quantity", func(p map[string]interface{}) {
			p["ingredients"] = []map[string]string{{"name": "pasta"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validRecipePayload()
			tt.mutate(payload)

			w := performRequest(router, "POST", "/api/recipes", payload)
			assert.Equal(t, 400, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body, "error")
		})
	}
}

func TestListRecipesExcludesPrivate(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	createTestRecipe(t, router, validRecipePayload())

	private := validRecipePayload()
	private["title"] = "Secret Pasta"
	private["isPublic"] = false
	createTestRecipe(t, router, private)

	w := performRequest(router, "GET", "/api/recipes", nil)
	require.Equal(t, 200, w.Code)

	var summaries []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Tomato Pasta", summaries[0]["title"])

	// Summaries carry the reduced shape only
	assert.Contains(t, summaries[0], "id")
	assert.Contains(t, summaries[0], "cuisine")
	assert.Contains(t, summaries[0], "imageUrl")
	assert.Contains(t, summaries[0], "createdAt")
	assert.Contains(t, summaries[0], "source")
	assert.NotContains(t, summaries[0], "ingredients")
	assert.NotContains(t, summaries[0], "steps")
}

func TestGetRecipe(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	created := createTestRecipe(t, router, validRecipePayload())

	w := performRequest(router, "GET", "/api/recipes/"+created["id"].(string), nil)
	require.Equal(t, 200, w.Code)

	var recipe map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, created["id"], recipe["id"])
	assert.Equal(t, "Tomato Pasta", recipe["title"])
	assert.Len(t, recipe["ingredients"], 2)
	assert.Len(t, recipe["steps"], 2)
}

func TestGetPrivateRecipeForbidden(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	payload := validRecipePayload()
	payload["isPublic"] = false
	created := createTestRecipe(t, router, payload)

	w := performRequest(router, "GET", "/api/recipes/"+created["id"].(string), nil)
	assert.Equal(t, 403, w.Code)
	assert.Contains(t, w.Body.String(), "private")
}

func TestGetUnknownRecipe(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	w := performRequest(router, "GET", "/api/recipes/"+uuid.NewString(), nil)
	assert.Equal(t, 404, w.Code)

	// Unparseable id behaves the same as an absent one
	w = performRequest(router, "GET", "/api/recipes/not-a-uuid", nil)
	assert.Equal(t, 404, w.Code)
}

func TestUpdateRecipeClearsImage(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	payload := validRecipePayload()
	payload["imageUrl"] = "http://example.com/pasta.jpg"
	created := createTestRecipe(t, router, payload)

	w := performRequest(router, "PUT", "/api/recipes/"+created["id"].(string),
		map[string]interface{}{"imageUrl": ""})
	require.Equal(t, 200, w.Code)

	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "", updated["imageUrl"])
	assert.Equal(t, "Tomato Pasta", updated["title"])
	assert.Len(t, updated["ingredients"], 2)
	assert.Len(t, updated["steps"], 2)
}

func TestUpdateUnknownRecipe(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	w := performRequest(router, "PUT", "/api/recipes/"+uuid.NewString(),
		map[string]interface{}{"title": "New Title"})
	assert.Equal(t, 404, w.Code)
}

func TestDeleteThenGetRecipe(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	created := createTestRecipe(t, router, validRecipePayload())
	id := created["id"].(string)

	w := performRequest(router, "DELETE", "/api/recipes/"+id, nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "deleted")

	w = performRequest(router, "GET", "/api/recipes/"+id, nil)
	assert.Equal(t, 404, w.Code)
}

func TestDeleteUnknownRecipe(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(""))

	w := performRequest(router, "DELETE", "/api/recipes/"+uuid.NewString(), nil)
	assert.Equal(t, 404, w.Code)
}
