package types

import (
	"time"

	"github.com/forkful/backend/internal/model"
	"github.com/google/uuid"
)

// RecipeSummary is the reduced shape returned by the listing endpoint
type RecipeSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Cuisine   string    `json:"cuisine"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	Source    string    `json:"source"`
}

// CreateRecipeRequest is the payload for creating a recipe. IsPublic is a
// pointer so an omitted value can default to true while an explicit false
// is preserved.
type CreateRecipeRequest struct {
	Title       string             `json:"title"`
	Cuisine     string             `json:"cuisine"`
	Ingredients []model.Ingredient `json:"ingredients"`
	Steps       []string           `json:"steps"`
	ImageURL    string             `json:"imageUrl"`
	Source      string             `json:"source"`
	IsPublic    *bool              `json:"isPublic"`
}

// UpdateRecipeRequest is the partial payload for updating a recipe. Pointer
// fields distinguish an omitted key from an explicit zero value; only the
// supplied fields replace the stored ones.
type UpdateRecipeRequest struct {
	Title       string             `json:"title"`
	Cuisine     string             `json:"cuisine"`
	Ingredients []model.Ingredient `json:"ingredients"`
	Steps       []string           `json:"steps"`
	ImageURL    *string            `json:"imageUrl"`
	IsPublic    *bool              `json:"isPublic"`
}

// GeneratedRecipe is the transient result of the ingredient lookup. It is
// never persisted directly; the client resubmits it through Create.
type GeneratedRecipe struct {
	Title       string             `json:"title"`
	Cuisine     string             `json:"cuisine"`
	Ingredients []model.Ingredient `json:"ingredients"`
	Steps       []string           `json:"steps"`
	ImageURL    string             `json:"imageUrl"`
}
