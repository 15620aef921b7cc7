package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkful/backend/internal/model"
	"github.com/forkful/backend/internal/types"
)

// RecipeService handles recipe operations against the store. It is the only
// component that touches store query syntax; handlers see typed methods and
// sentinel errors.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListPublic returns summaries of all public recipes, newest first.
func (s *RecipeService) ListPublic(ctx context.Context) ([]types.RecipeSummary, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]types.RecipeSummary, len(recipes))
	for i, r := range recipes {
		summaries[i] = types.RecipeSummary{
			ID:        r.ID,
			Title:     r.Title,
			Cuisine:   r.Cuisine,
			ImageURL:  r.ImageURL,
			CreatedAt: r.CreatedAt,
			Source:    r.Source,
		}
	}
	return summaries, nil
}

// Get retrieves a recipe by ID. Private recipes are reported as
// ErrRecipePrivate so the handler can tell 403 from 404.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if !recipe.IsPublic {
		return nil, ErrRecipePrivate
	}

	return &recipe, nil
}

// Create validates the payload, applies defaults and persists a new recipe.
func (s *RecipeService) Create(ctx context.Context, req *types.CreateRecipeRequest) (*model.Recipe, error) {
	recipe := model.Recipe{
		Title:       req.Title,
		Cuisine:     req.Cuisine,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		ImageURL:    req.ImageURL,
		Source:      req.Source,
		IsPublic:    true,
	}
	if req.IsPublic != nil {
		recipe.IsPublic = *req.IsPublic
	}
	recipe.ApplyDefaults()

	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update replaces only the supplied fields of an existing recipe. Array
// fields replace the stored ones wholesale and only when non-empty; imageUrl
// applies whenever the key is present, including an explicit empty string.
func (s *RecipeService) Update(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Cuisine != "" {
		recipe.Cuisine = req.Cuisine
	}
	if len(req.Ingredients) > 0 {
		recipe.Ingredients = req.Ingredients
	}
	if len(req.Steps) > 0 {
		recipe.Steps = req.Steps
	}
	if req.ImageURL != nil {
		recipe.ImageURL = *req.ImageURL
	}
	if req.IsPublic != nil {
		recipe.IsPublic = *req.IsPublic
	}

	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Delete removes a recipe by ID.
func (s *RecipeService) Delete(ctx context.Context, id uuid.UUID) error {
	// First check if the recipe exists
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error
}
