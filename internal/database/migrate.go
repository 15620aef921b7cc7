package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/forkful/backend/internal/model"
)

// Migrate brings the schema up to date. The recipe table carries a composite
// index on (is_public, created_at) for the public listing query and an index
// on created_by for per-user queries.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes: %w", err)
	}
	return nil
}
