package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/beesaferoot/hotel-booking/internal/hotel"
)

// Meals is the read-only meal menu.
type Meals struct {
	db *gorm.DB
}

func NewMeals(db *gorm.DB) *Meals {
	return &Meals{db: db}
}

// WithTx returns a menu bound to the given transaction.
func (m *Meals) WithTx(tx *gorm.DB) *Meals {
	return &Meals{db: tx}
}

// List returns the menu in its fixed order.
func (m *Meals) List(ctx context.Context) ([]hotel.Meal, error) {
	var meals []hotel.Meal
	if err := m.db.WithContext(ctx).Order("id").Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	return meals, nil
}

// Find looks a meal up by name, ignoring case.
func (m *Meals) Find(ctx context.Context, name string) (*hotel.Meal, error) {
	var meal hotel.Meal
	err := m.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("meal %q: %w", name, hotel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find meal %q: %w", name, err)
	}
	return &meal, nil
}
