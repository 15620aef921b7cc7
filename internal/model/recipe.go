package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe source values
const (
	SourceUser        = "user"
	SourceAIGenerated = "ai-generated"
)

// DefaultCreator is the fixed creator identifier while the app has no accounts
const DefaultCreator = "guest"

// Ingredient is a single recipe ingredient with a free-form quantity
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// IngredientList is a custom type for handling ingredient arrays in JSONB
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is the persisted recipe record. JSON field names are the wire
// contract consumed by the frontend, so they stay camelCase.
type Recipe struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time        `gorm:"index:idx_recipes_public_created,priority:2,sort:desc" json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Cuisine     string           `gorm:"size:100;not null" json:"cuisine"`
	Ingredients IngredientList   `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	ImageURL    string           `gorm:"size:512" json:"imageUrl"`
	Source      string           `gorm:"size:20;not null" json:"source"`
	CreatedBy   string           `gorm:"size:100;not null;index" json:"createdBy"`
	IsPublic    bool             `gorm:"not null;default:true;index:idx_recipes_public_created,priority:1" json:"isPublic"`
}

// BeforeCreate assigns the recipe ID so the same code path works on
// postgres and the sqlite test store.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ValidationError reports a recipe payload that cannot be persisted
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ApplyDefaults fills the optional fields the client may omit. isPublic is
// defaulted by the caller, which can tell an omitted value from false.
func (r *Recipe) ApplyDefaults() {
	if r.Source == "" {
		r.Source = SourceUser
	}
	if r.CreatedBy == "" {
		r.CreatedBy = DefaultCreator
	}
}

// Validate checks the invariants every persisted recipe must hold.
func (r *Recipe) Validate() error {
	if r.Title == "" || r.Cuisine == "" || r.Ingredients == nil || r.Steps == nil {
		return &ValidationError{Message: "Missing required fields: title, cuisine, ingredients, steps"}
	}

	if len(r.Ingredients) == 0 {
		return &ValidationError{Message: "Ingredients must be a non-empty array"}
	}

	if len(r.Steps) == 0 {
		return &ValidationError{Message: "Steps must be a non-empty array"}
	}

	for _, ing := range r.Ingredients {
		if ing.Name == "" || ing.Quantity == "" {
			return &ValidationError{Message: "Each ingredient must have name and quantity"}
		}
	}

	if r.Source != SourceUser && r.Source != SourceAIGenerated {
		return &ValidationError{Message: "Source must be either 'user' or 'ai-generated'"}
	}

	return nil
}
