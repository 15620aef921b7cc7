package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRecipe() Recipe {
	return Recipe{
		Title:   "Test Recipe",
		Cuisine: "Italian",
		Ingredients: IngredientList{
			{Name: "pasta", Quantity: "200 g"},
			{Name: "tomato", Quantity: "2"},
		},
		Steps:  JSONBStringArray{"Boil pasta", "Add sauce"},
		Source: SourceUser,
	}
}

func TestValidate(t *testing.T) {
	recipe := validRecipe()
	assert.NoError(t, recipe.Validate())
}

func TestValidateMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Recipe)
	}{
		{"missing title", func(r *Recipe) { r.Title = "" }},
		{"missing cuisine", func(r *Recipe) { r.Cuisine = "" }},
		{"nil ingredients", func(r *Recipe) { r.Ingredients = nil }},
		{"nil steps", func(r *Recipe) { r.Steps = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := validRecipe()
			tt.mutate(&recipe)

			err := recipe.Validate()
			assert.Error(t, err)
			assert.IsType(t, &ValidationError{}, err)
			assert.Contains(t, err.Error(), "Missing required fields")
		})
	}
}

func TestValidateEmptyIngredients(t *testing.T) {
	recipe := validRecipe()
	recipe.Ingredients = IngredientList{}

	err := recipe.Validate()
	assert.Error(t, err)
	assert.Equal(t, "Ingredients must be a non-empty array", err.Error())
}

func TestValidateEmptySteps(t *testing.T) {
	recipe := validRecipe()
	recipe.Steps = JSONBStringArray{}

	err := recipe.Validate()
	assert.Error(t, err)
	assert.Equal(t, "Steps must be a non-empty array", err.Error())
}

func TestValidateIngredientMissingNameOrQuantity(t *testing.T) {
	recipe := validRecipe()
	recipe.Ingredients = IngredientList{{Name: "pasta", Quantity: ""}}

	err := recipe.Validate()
	assert.Error(t, err)
	assert.Equal(t, "Each ingredient must have name and quantity", err.Error())

	recipe.Ingredients = IngredientList{{Name: "", Quantity: "200 g"}}
	err = recipe.Validate()
	assert.Error(t, err)
	assert.Equal(t, "Each ingredient must have name and quantity", err.Error())
}

func TestValidateBadSource(t *testing.T) {
	recipe := validRecipe()
	recipe.Source = "robot"

	err := recipe.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Source")
}

func TestApplyDefaults(t *testing.T) {
	recipe := Recipe{}
	recipe.ApplyDefaults()

	assert.Equal(t, SourceUser, recipe.Source)
	assert.Equal(t, DefaultCreator, recipe.CreatedBy)
}

func TestApplyDefaultsKeepsExistingSource(t *testing.T) {
	recipe := Recipe{Source: SourceAIGenerated}
	recipe.ApplyDefaults()

	assert.Equal(t, SourceAIGenerated, recipe.Source)
}
