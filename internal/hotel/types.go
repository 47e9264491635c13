package hotel

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
)

// RoomCategory is the kind of room on offer
type RoomCategory uint

const (
	SingleBed RoomCategory = iota + 1
	DoubleBed
	Deluxe
)

// CategoryFromChoice maps the 1..3 menu choice onto a RoomCategory.
func CategoryFromChoice(choice int) (RoomCategory, error) {
	c := RoomCategory(choice)
	if choice < 1 || !c.Valid() {
		return 0, fmt.Errorf("%w: room category must be 1, 2 or 3, got %d", ErrValidation, choice)
	}
	return c, nil
}

func (c RoomCategory) Valid() bool {
	return c >= SingleBed && c <= Deluxe
}

func (c RoomCategory) String() string {
	switch c {
	case SingleBed:
		return "Single Bed"
	case DoubleBed:
		return "Double Bed"
	case Deluxe:
		return "Deluxe Room"
	default:
		return "Unknown"
	}
}

// Room represents a bookable hotel room
type Room struct {
	gorm.Model
	Number           int          `gorm:"uniqueIndex;not null"`
	Category         RoomCategory `gorm:"not null"`
	PricePerNight    float64      `gorm:"not null"`
	Available        bool
	UnderMaintenance bool
}

// Bookable reports whether the room can take a new reservation.
func (r Room) Bookable() bool {
	return r.Available && !r.UnderMaintenance
}

// Meal represents an orderable item on the meal menu
type Meal struct {
	gorm.Model
	Name        string  `gorm:"uniqueIndex;not null"`
	Price       float64 `gorm:"not null"`
	Description string
	Items       string
}

// Dishes splits the comma separated item list.
func (m Meal) Dishes() []string {
	if m.Items == "" {
		return nil
	}
	parts := strings.Split(m.Items, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Customer is a contact record kept in the registry
type Customer struct {
	gorm.Model
	Name       string `gorm:"not null"`
	Phone      string
	Email      string
	RoomNumber int `gorm:"index"`
}

// CustomerInfo is the copy of a customer's details held by a reservation.
type CustomerInfo struct {
	Name       string
	Phone      string
	Email      string
	RoomNumber int
}

// Reservation is an open booking in the ledger. Closing a reservation
// deletes the row, so it carries no soft delete column.
type Reservation struct {
	ID          uint         `gorm:"primaryKey"`
	Reference   string       `gorm:"uniqueIndex;not null"`
	RoomNumber  int          `gorm:"index;not null"`
	Customer    CustomerInfo `gorm:"embedded;embeddedPrefix:customer_"`
	Nights      int
	RoomCharges float64
	MealCharges float64
	TotalBill   float64
	Meals       []ReservationMeal `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReservationMeal is one meal ordered against a reservation
type ReservationMeal struct {
	ID            uint `gorm:"primaryKey"`
	ReservationID uint `gorm:"index;not null"`
	Seq           int  `gorm:"not null"`
	Name          string
	Price         float64
	CreatedAt     time.Time
}

// Models lists every table of a booking session.
func Models() []interface{} {
	return []interface{}{
		&Room{},
		&Meal{},
		&Customer{},
		&Reservation{},
		&ReservationMeal{},
	}
}

// ValidAmount reports whether v can be billed: finite and not negative.
func ValidAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// FormatAmount renders a currency amount the way bills are printed.
func FormatAmount(currency string, amount float64) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}
