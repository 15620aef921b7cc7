package service

import (
	"errors"
	"fmt"
)

// Recipe store errors
var (
	// ErrRecipeNotFound indicates the requested recipe does not exist
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrRecipePrivate indicates the recipe exists but is not public
	ErrRecipePrivate = errors.New("recipe is private")
)

// Lookup service errors
var (
	// ErrIngredientsRequired indicates the caller supplied no ingredient list
	ErrIngredientsRequired = errors.New("ingredients must be a non-empty comma-separated string")

	// ErrAPIKeyMissing indicates the lookup service credentials are not configured
	ErrAPIKeyMissing = errors.New("lookup service API key not configured")

	// ErrNoRecipesFound indicates the lookup service returned zero matches
	ErrNoRecipesFound = errors.New("no recipes found with those ingredients")

	// ErrQuotaExceeded indicates the lookup service rejected the request for billing reasons
	ErrQuotaExceeded = errors.New("lookup service quota exceeded")
)

// UpstreamError carries a non-success response from the lookup service that
// has no dedicated mapping, so the handler can propagate its status.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("lookup service returned %d: %s", e.StatusCode, e.Message)
}
