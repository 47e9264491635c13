// Package ledger records open reservations and their bills.
//
// A reservation is open while its row exists. Closing it reports the final
// bill, releases the room and deletes the row together with its meal lines.
// The ledger does not check whether a room is bookable before opening a
// reservation on it; that is the caller's job.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"github.com/beesaferoot/hotel-booking/internal/hotel"
	"github.com/beesaferoot/hotel-booking/internal/hotel/catalog"
)

type Ledger struct {
	db    *gorm.DB
	rooms *catalog.Rooms
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db, rooms: catalog.NewRooms(db)}
}

// WithTx returns a ledger bound to the given transaction.
func (l *Ledger) WithTx(tx *gorm.DB) *Ledger {
	return &Ledger{db: tx, rooms: l.rooms.WithTx(tx)}
}

// NewReference returns a short booking reference such as RES-1A2B3C4D.
func NewReference() string {
	return "RES-" + strings.ToUpper(uuid.New().String()[:8])
}

// Open starts a reservation for customer on room with an empty bill.
func (l *Ledger) Open(ctx context.Context, customer *hotel.Customer, room *hotel.Room) (*hotel.Reservation, error) {
	res := &hotel.Reservation{
		Reference:  NewReference(),
		RoomNumber: room.Number,
	}
	if err := copier.Copy(&res.Customer, customer); err != nil {
		return nil, fmt.Errorf("failed to copy customer details: %w", err)
	}
	res.Customer.RoomNumber = room.Number

	if err := l.db.WithContext(ctx).Create(res).Error; err != nil {
		return nil, fmt.Errorf("failed to open reservation for room %d: %w", room.Number, err)
	}
	return res, nil
}

// AddMealCharge appends meal to the reservation's orders and adds its price
// to the bill.
func (l *Ledger) AddMealCharge(ctx context.Context, res *hotel.Reservation, meal hotel.Meal) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq int64
		if err := tx.Model(&hotel.ReservationMeal{}).Where("reservation_id = ?", res.ID).Count(&seq).Error; err != nil {
			return fmt.Errorf("failed to count meals of %s: %w", res.Reference, err)
		}

		line := hotel.ReservationMeal{
			ReservationID: res.ID,
			Seq:           int(seq) + 1,
			Name:          meal.Name,
			Price:         meal.Price,
		}
		if err := tx.Create(&line).Error; err != nil {
			return fmt.Errorf("failed to add meal to %s: %w", res.Reference, err)
		}

		if err := l.charge(tx, res, chargeDelta{meal: meal.Price}); err != nil {
			return err
		}
		res.Meals = append(res.Meals, line)
		return nil
	})
}

// AddRoomCharge bills the room's nightly price for the given nights.
func (l *Ledger) AddRoomCharge(ctx context.Context, res *hotel.Reservation, nights int) error {
	if nights <= 0 {
		return fmt.Errorf("%w: nights must be positive, got %d", hotel.ErrValidation, nights)
	}

	room, err := l.rooms.Find(ctx, res.RoomNumber)
	if err != nil {
		return err
	}

	return l.charge(l.db.WithContext(ctx), res, chargeDelta{
		room:   room.PricePerNight * float64(nights),
		nights: nights,
	})
}

// AddComboCharge bills a flat meal rate for the given nights. The charge is
// counted as a meal charge but no meal line is recorded.
func (l *Ledger) AddComboCharge(ctx context.Context, res *hotel.Reservation, rate float64, nights int) error {
	if nights <= 0 {
		return fmt.Errorf("%w: nights must be positive, got %d", hotel.ErrValidation, nights)
	}
	if !hotel.ValidAmount(rate) {
		return fmt.Errorf("%w: combo rate must be a non-negative amount, got %v", hotel.ErrValidation, rate)
	}
	return l.charge(l.db.WithContext(ctx), res, chargeDelta{meal: rate * float64(nights)})
}

// Find returns the first open reservation on the given room.
func (l *Ledger) Find(ctx context.Context, roomNumber int) (*hotel.Reservation, error) {
	var res hotel.Reservation
	err := l.withMeals(ctx).Where("room_number = ?", roomNumber).Order("id").First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("open reservation for room %d: %w", roomNumber, hotel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find reservation for room %d: %w", roomNumber, err)
	}
	return &res, nil
}

// List returns every open reservation in the order they were opened.
func (l *Ledger) List(ctx context.Context) ([]hotel.Reservation, error) {
	var reservations []hotel.Reservation
	if err := l.withMeals(ctx).Order("id").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// Close ends the first open reservation on the given room. It returns the
// reservation as it stood when closed; on ErrNotFound nothing changes.
func (l *Ledger) Close(ctx context.Context, roomNumber int) (*hotel.Reservation, error) {
	var closed *hotel.Reservation
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txl := l.WithTx(tx)

		res, err := txl.Find(ctx, roomNumber)
		if err != nil {
			return err
		}
		if err := txl.rooms.Release(ctx, roomNumber); err != nil {
			return err
		}
		if err := tx.Where("reservation_id = ?", res.ID).Delete(&hotel.ReservationMeal{}).Error; err != nil {
			return fmt.Errorf("failed to delete meals of %s: %w", res.Reference, err)
		}
		if err := tx.Delete(&hotel.Reservation{}, res.ID).Error; err != nil {
			return fmt.Errorf("failed to close %s: %w", res.Reference, err)
		}
		closed = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

func (l *Ledger) withMeals(ctx context.Context) *gorm.DB {
	return l.db.WithContext(ctx).Preload("Meals", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq")
	})
}

type chargeDelta struct {
	room   float64
	meal   float64
	nights int
}

// charge raises the bill; res is updated only once the row is.
func (l *Ledger) charge(db *gorm.DB, res *hotel.Reservation, c chargeDelta) error {
	nights := res.Nights + c.nights
	roomCharges := res.RoomCharges + c.room
	mealCharges := res.MealCharges + c.meal
	total := roomCharges + mealCharges

	err := db.Model(&hotel.Reservation{}).Where("id = ?", res.ID).Updates(map[string]interface{}{
		"nights":       nights,
		"room_charges": roomCharges,
		"meal_charges": mealCharges,
		"total_bill":   total,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to charge %s: %w", res.Reference, err)
	}

	res.Nights = nights
	res.RoomCharges = roomCharges
	res.MealCharges = mealCharges
	res.TotalBill = total
	return nil
}
