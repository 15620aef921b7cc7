package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/forkful/backend/config"
	"github.com/forkful/backend/internal/model"
	"github.com/forkful/backend/internal/types"
)

// Cuisine reported when the lookup service lists none
const fallbackCuisine = "International"

// Single placeholder step when the lookup service has no instructions
const fallbackStep = "No instructions available"

// SpoonacularService translates an ingredient list into one GeneratedRecipe
// via the Spoonacular API. It performs no persistence; the caller submits
// the result through the recipe Create operation to make it durable.
type SpoonacularService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewSpoonacularService creates a new SpoonacularService instance
func NewSpoonacularService(cfg *config.Config) *SpoonacularService {
	return &SpoonacularService{
		apiKey: cfg.SpoonacularAPIKey,
		apiURL: strings.TrimRight(cfg.SpoonacularAPIURL, "/"),
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// searchResult is one match from the findByIngredients endpoint
type searchResult struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// recipeInfo is the detail response for a single recipe
type recipeInfo struct {
	Title               string   `json:"title"`
	Image               string   `json:"image"`
	Cuisines            []string `json:"cuisines"`
	ExtendedIngredients []struct {
		Name     string `json:"name"`
		Measures struct {
			Metric struct {
				Amount    float64 `json:"amount"`
				UnitShort string  `json:"unitShort"`
			} `json:"metric"`
		} `json:"measures"`
	} `json:"extendedIngredients"`
	AnalyzedInstructions []struct {
		Steps []struct {
			Number int    `json:"number"`
			Step   string `json:"step"`
		} `json:"steps"`
	} `json:"analyzedInstructions"`
}

// GenerateFromIngredients runs the two-step lookup pipeline: search for the
// single best match, fetch its detail, and normalize into a GeneratedRecipe.
// The two calls are sequential and not retried; a failure anywhere aborts
// the whole operation with nothing written.
func (s *SpoonacularService) GenerateFromIngredients(ctx context.Context, ingredients string) (*types.GeneratedRecipe, error) {
	if strings.TrimSpace(ingredients) == "" {
		return nil, ErrIngredientsRequired
	}

	if s.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	match, err := s.findByIngredients(ctx, ingredients)
	if err != nil {
		return nil, err
	}

	info, err := s.recipeInformation(ctx, match.ID)
	if err != nil {
		return nil, err
	}

	return normalize(info), nil
}

// findByIngredients asks for exactly one match, ranked to maximize used
// ingredients and ignoring pantry staples.
func (s *SpoonacularService) findByIngredients(ctx context.Context, ingredients string) (*searchResult, error) {
	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("ingredients", ingredients)
	params.Set("number", "1")
	params.Set("ranking", "2")
	params.Set("ignorePantry", "true")

	var results []searchResult
	if err := s.get(ctx, "/recipes/findByIngredients", params, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, ErrNoRecipesFound
	}
	return &results[0], nil
}

// recipeInformation fetches the full detail for a matched recipe
func (s *SpoonacularService) recipeInformation(ctx context.Context, id int) (*recipeInfo, error) {
	params := url.Values{}
	params.Set("apiKey", s.apiKey)

	var info recipeInfo
	path := fmt.Sprintf("/recipes/%d/information", id)
	if err := s.get(ctx, path, params, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// get performs one API call and decodes the JSON response into out. A 402
// maps to ErrQuotaExceeded; any other non-success status becomes an
// UpstreamError carrying the upstream status and message.
func (s *SpoonacularService) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build lookup request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("lookup service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		return ErrQuotaExceeded
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode lookup response: %w", err)
	}
	return nil
}

// upstreamMessage extracts the service's message field from an error body
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return "Failed to fetch recipe from lookup service"
}

// normalize maps the detail response into the application's recipe shape
func normalize(info *recipeInfo) *types.GeneratedRecipe {
	cuisine := fallbackCuisine
	if len(info.Cuisines) > 0 {
		cuisine = info.Cuisines[0]
	}

	ingredients := make([]model.Ingredient, len(info.ExtendedIngredients))
	for i, ing := range info.ExtendedIngredients {
		ingredients[i] = model.Ingredient{
			Name:     ing.Name,
			Quantity: formatQuantity(ing.Measures.Metric.Amount, ing.Measures.Metric.UnitShort),
		}
	}

	steps := []string{fallbackStep}
	if len(info.AnalyzedInstructions) > 0 && len(info.AnalyzedInstructions[0].Steps) > 0 {
		steps = make([]string, len(info.AnalyzedInstructions[0].Steps))
		for i, step := range info.AnalyzedInstructions[0].Steps {
			steps[i] = step.Step
		}
	}

	return &types.GeneratedRecipe{
		Title:       info.Title,
		Cuisine:     cuisine,
		Ingredients: ingredients,
		Steps:       steps,
		ImageURL:    info.Image,
	}
}

// formatQuantity renders a metric measure as "amount unit", e.g. "2.5 tbsp"
func formatQuantity(amount float64, unit string) string {
	q := strconv.FormatFloat(amount, 'f', -1, 64)
	if unit != "" {
		q += " " + unit
	}
	return q
}
