// Package catalog holds the room and meal catalogs of a booking session.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/beesaferoot/hotel-booking/internal/hotel"
)

// Rooms is the room catalog. Rooms are listed in the order they were added.
type Rooms struct {
	db *gorm.DB
}

func NewRooms(db *gorm.DB) *Rooms {
	return &Rooms{db: db}
}

// WithTx returns a catalog bound to the given transaction.
func (r *Rooms) WithTx(tx *gorm.DB) *Rooms {
	return &Rooms{db: tx}
}

// Add inserts a new room, available and not under maintenance. Room
// numbers are unique.
func (r *Rooms) Add(ctx context.Context, number int, category hotel.RoomCategory, price float64) (*hotel.Room, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown room category %d", hotel.ErrValidation, category)
	}
	if !hotel.ValidAmount(price) {
		return nil, fmt.Errorf("%w: price per night must be a non-negative amount, got %v", hotel.ErrValidation, price)
	}

	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&hotel.Room{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check room %d: %w", number, err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: room %d already exists", hotel.ErrValidation, number)
	}

	room := &hotel.Room{
		Number:        number,
		Category:      category,
		PricePerNight: price,
		Available:     true,
	}
	if err := db.Create(room).Error; err != nil {
		return nil, fmt.Errorf("failed to add room %d: %w", number, err)
	}
	return room, nil
}

// Find returns the room with the given number regardless of its flags.
func (r *Rooms) Find(ctx context.Context, number int) (*hotel.Room, error) {
	var room hotel.Room
	err := r.db.WithContext(ctx).Where("number = ?", number).Order("id").First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("room %d: %w", number, hotel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find room %d: %w", number, err)
	}
	return &room, nil
}

// FindBookable returns the room with the given number if it is available
// and not under maintenance.
func (r *Rooms) FindBookable(ctx context.Context, number int) (*hotel.Room, error) {
	var room hotel.Room
	err := r.bookable(ctx).Where("number = ?", number).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("bookable room %d: %w", number, hotel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find room %d: %w", number, err)
	}
	return &room, nil
}

// ListBookable returns every room that can take a reservation.
func (r *Rooms) ListBookable(ctx context.Context) ([]hotel.Room, error) {
	var rooms []hotel.Room
	if err := r.bookable(ctx).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookable rooms: %w", err)
	}
	return rooms, nil
}

// List returns every room in the catalog.
func (r *Rooms) List(ctx context.Context) ([]hotel.Room, error) {
	var rooms []hotel.Room
	if err := r.db.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// SetMaintenance puts a room under maintenance or takes it out again.
func (r *Rooms) SetMaintenance(ctx context.Context, number int, on bool) error {
	return r.update(ctx, number, "under_maintenance", on)
}

// Occupy marks a room as unavailable.
func (r *Rooms) Occupy(ctx context.Context, number int) error {
	return r.update(ctx, number, "available", false)
}

// Release marks a room as available again.
func (r *Rooms) Release(ctx context.Context, number int) error {
	return r.update(ctx, number, "available", true)
}

func (r *Rooms) bookable(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("available = ? AND under_maintenance = ?", true, false).
		Order("id")
}

func (r *Rooms) update(ctx context.Context, number int, column string, value bool) error {
	result := r.db.WithContext(ctx).Model(&hotel.Room{}).Where("number = ?", number).Update(column, value)
	if result.Error != nil {
		return fmt.Errorf("failed to update room %d: %w", number, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("room %d: %w", number, hotel.ErrNotFound)
	}
	return nil
}
