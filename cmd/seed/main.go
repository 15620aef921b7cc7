package main

import (
	"context"
	"log"

	"github.com/forkful/backend/config"
	"github.com/forkful/backend/internal/database"
	"github.com/forkful/backend/internal/model"
	"github.com/forkful/backend/internal/service"
	"github.com/forkful/backend/internal/types"
)

var seedRecipes = []types.CreateRecipeRequest{
	{
		Title:   "Tomato Basil Pasta",
		Cuisine: "Italian",
		Ingredients: []model.Ingredient{
			{Name: "spaghetti", Quantity: "400 g"},
			{Name: "tomatoes", Quantity: "500 g"},
			{Name: "basil", Quantity: "1 bunch"},
			{Name: "olive oil", Quantity: "3 tbsp"},
			{Name: "garlic", Quantity: "2 cloves"},
		},
		Steps: []string{
			"Cook the spaghetti in salted boiling water until al dente.",
			"Saute the garlic in olive oil, add chopped tomatoes and simmer for 10 minutes.",
			"Toss the pasta with the sauce and torn basil leaves.",
		},
	},
	{
		Title:   "Chicken Fried Rice",
		Cuisine: "Chinese",
		Ingredients: []model.Ingredient{
			{Name: "cooked rice", Quantity: "3 cups"},
			{Name: "chicken breast", Quantity: "300 g"},
			{Name: "eggs", Quantity: "2"},
			{Name: "soy sauce", Quantity: "2 tbsp"},
			{Name: "spring onions", Quantity: "3"},
		},
		Steps: []string{
			"Dice the chicken and stir-fry over high heat until cooked through.",
			"Push to one side, scramble the eggs in the same pan.",
			"Add the rice and soy sauce, toss until heated, finish with sliced spring onions.",
		},
	},
	{
		Title:   "Shakshuka",
		Cuisine: "Middle Eastern",
		Ingredients: []model.Ingredient{
			{Name: "eggs", Quantity: "4"},
			{Name: "canned tomatoes", Quantity: "800 g"},
			{Name: "red pepper", Quantity: "1"},
			{Name: "onion", Quantity: "1"},
			{Name: "cumin", Quantity: "1 tsp"},
		},
		Steps: []string{
			"Soften the onion and pepper, then add the tomatoes and cumin and reduce.",
			"Make wells in the sauce and crack in the eggs.",
			"Cover and cook until the whites are set but the yolks are still runny.",
		},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	recipeService := service.NewRecipeService(db)
	ctx := context.Background()

	for i := range seedRecipes {
		recipe, err := recipeService.Create(ctx, &seedRecipes[i])
		if err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", seedRecipes[i].Title, err)
		}
		log.Printf("Seeded recipe %s (%s)", recipe.Title, recipe.ID)
	}

	log.Printf("Seeded %d recipes", len(seedRecipes))
}
