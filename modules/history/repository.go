package history

import (
	"fmt"

	"gorm.io/gorm"
)

// Repository provides history storage backed by GORM + SQLite. It is used
// when a database path is configured; otherwise the module falls back to the
// in-memory store.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new history repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Append records a calculation.
func (r *Repository) Append(c *Calculation) error {
	if err := r.db.Create(c).Error; err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}
	return nil
}

// List returns all recorded calculations in insertion order.
func (r *Repository) List() ([]*Calculation, error) {
	var calculations []*Calculation
	if err := r.db.Order("created_at").Find(&calculations).Error; err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	return calculations, nil
}

// Clear removes all recorded calculations.
func (r *Repository) Clear() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&Calculation{})
	if err := result.Error; err != nil {
		return 0, fmt.Errorf("failed to clear calculations: %w", err)
	}
	return result.RowsAffected, nil
}
