// Package booking is the entry point of a booking session: it finds rooms,
// opens reservations with their room and meal charges, takes meal orders
// and checks guests out.
package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/beesaferoot/hotel-booking/internal/config"
	"github.com/beesaferoot/hotel-booking/internal/hotel"
	"github.com/beesaferoot/hotel-booking/internal/hotel/catalog"
	"github.com/beesaferoot/hotel-booking/internal/hotel/ledger"
	"github.com/beesaferoot/hotel-booking/internal/hotel/registry"
)

// Service owns the catalogs, registry and ledger of one session
type Service struct {
	db        *gorm.DB
	rooms     *catalog.Rooms
	meals     *catalog.Meals
	customers *registry.Customers
	ledger    *ledger.Ledger
	comboRate float64
	log       *zap.Logger
}

// NewService creates a Service over a migrated session database
func NewService(db *gorm.DB, cfg *config.Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		db:        db,
		rooms:     catalog.NewRooms(db),
		meals:     catalog.NewMeals(db),
		customers: registry.NewCustomers(db),
		ledger:    ledger.New(db),
		comboRate: cfg.ComboRate,
		log:       log,
	}
}

// ComboRate is the flat meal charge added per night.
func (s *Service) ComboRate() float64 {
	return s.comboRate
}

func (s *Service) ListBookableRooms(ctx context.Context) ([]RoomSummary, error) {
	rooms, err := s.rooms.ListBookable(ctx)
	if err != nil {
		return nil, err
	}
	return roomSummaries(rooms), nil
}

func (s *Service) ListRooms(ctx context.Context) ([]RoomSummary, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	return roomSummaries(rooms), nil
}

func (s *Service) ListMeals(ctx context.Context) ([]MealSummary, error) {
	meals, err := s.meals.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]MealSummary, 0, len(meals))
	for _, meal := range meals {
		summary, err := newMealSummary(meal)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize meal %q: %w", meal.Name, err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *Service) ListCustomers(ctx context.Context) ([]hotel.Customer, error) {
	return s.customers.List(ctx)
}

// ListReservations returns the running bill of every open reservation.
func (s *Service) ListReservations(ctx context.Context) ([]Bill, error) {
	reservations, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	bills := make([]Bill, 0, len(reservations))
	for i := range reservations {
		bill, err := newBill(&reservations[i])
		if err != nil {
			return nil, fmt.Errorf("failed to build bill for %s: %w", reservations[i].Reference, err)
		}
		bills = append(bills, *bill)
	}
	return bills, nil
}

// AddRoom adds a room to the catalog.
func (s *Service) AddRoom(ctx context.Context, req AddRoomRequest) (*RoomSummary, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	category, err := hotel.CategoryFromChoice(req.CategoryChoice)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.Add(ctx, req.Number, category, req.Price)
	if err != nil {
		return nil, err
	}

	s.log.Info("room added",
		zap.Int("room", room.Number),
		zap.Stringer("category", room.Category),
		zap.Float64("price", room.PricePerNight))

	summary := newRoomSummary(*room)
	return &summary, nil
}

// SetMaintenance puts a room under maintenance or back into service.
func (s *Service) SetMaintenance(ctx context.Context, roomNumber int, on bool) error {
	if err := s.rooms.SetMaintenance(ctx, roomNumber, on); err != nil {
		return err
	}
	s.log.Info("room maintenance changed", zap.Int("room", roomNumber), zap.Bool("under_maintenance", on))
	return nil
}

// Reserve books a bookable room for the given nights. The bill is the
// nightly room price plus the flat combo rate for every night, whether or
// not meals are ordered. Nothing is recorded unless every step succeeds.
func (s *Service) Reserve(ctx context.Context, req ReserveRequest) (*BookingSummary, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var summary *BookingSummary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rooms := s.rooms.WithTx(tx)
		l := s.ledger.WithTx(tx)

		room, err := rooms.FindBookable(ctx, req.RoomNumber)
		if errors.Is(err, hotel.ErrNotFound) {
			return fmt.Errorf("room %d: %w", req.RoomNumber, hotel.ErrRoomUnavailable)
		}
		if err != nil {
			return err
		}

		customer, err := s.customers.WithTx(tx).Register(ctx, hotel.CustomerInfo{
			Name:       req.Name,
			Phone:      req.Phone,
			Email:      req.Email,
			RoomNumber: room.Number,
		})
		if err != nil {
			return err
		}

		res, err := l.Open(ctx, customer, room)
		if err != nil {
			return err
		}
		if err := l.AddRoomCharge(ctx, res, req.Nights); err != nil {
			return err
		}
		if err := l.AddComboCharge(ctx, res, s.comboRate, req.Nights); err != nil {
			return err
		}

		if err := rooms.Occupy(ctx, room.Number); err != nil {
			return err
		}
		room.Available = false

		summary = &BookingSummary{
			Reference:    res.Reference,
			Customer:     res.Customer,
			Room:         newRoomSummary(*room),
			Nights:       res.Nights,
			RoomSubtotal: res.RoomCharges,
			MealSubtotal: res.MealCharges,
			GrandTotal:   res.TotalBill,
		}
		return nil
	})
	if err != nil {
		s.log.Warn("reservation failed", zap.Int("room", req.RoomNumber), zap.Error(err))
		return nil, err
	}

	s.log.Info("room reserved",
		zap.String("reference", summary.Reference),
		zap.Int("room", summary.Room.Number),
		zap.Int("nights", summary.Nights),
		zap.Float64("total", summary.GrandTotal))
	return summary, nil
}

// OrderMeal adds a meal from the menu to the open reservation on a room.
func (s *Service) OrderMeal(ctx context.Context, roomNumber int, mealName string) (*Bill, error) {
	var bill *Bill
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		meal, err := s.meals.WithTx(tx).Find(ctx, mealName)
		if err != nil {
			return err
		}

		l := s.ledger.WithTx(tx)
		res, err := l.Find(ctx, roomNumber)
		if err != nil {
			return err
		}
		if err := l.AddMealCharge(ctx, res, *meal); err != nil {
			return err
		}

		bill, err = newBill(res)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("meal ordered",
		zap.String("reference", bill.Reference),
		zap.String("meal", mealName),
		zap.Float64("total", bill.TotalBill))
	return bill, nil
}

// Checkout closes the open reservation on a room and returns its final
// bill. The room becomes available again.
func (s *Service) Checkout(ctx context.Context, roomNumber int) (*Bill, error) {
	res, err := s.ledger.Close(ctx, roomNumber)
	if err != nil {
		return nil, err
	}

	bill, err := newBill(res)
	if err != nil {
		return nil, fmt.Errorf("failed to build bill for %s: %w", res.Reference, err)
	}

	s.log.Info("checked out",
		zap.String("reference", bill.Reference),
		zap.Int("room", roomNumber),
		zap.Float64("total", bill.TotalBill))
	return bill, nil
}

func roomSummaries(rooms []hotel.Room) []RoomSummary {
	summaries := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		summaries = append(summaries, newRoomSummary(room))
	}
	return summaries
}
