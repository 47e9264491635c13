package booking

import (
	"github.com/jinzhu/copier"

	"github.com/beesaferoot/hotel-booking/internal/hotel"
)

// RoomSummary is a room as shown to the operator
type RoomSummary struct {
	Number           int
	Category         string
	PricePerNight    float64
	Available        bool
	UnderMaintenance bool
}

// MealSummary is a meal menu entry
type MealSummary struct {
	Name        string
	Price       float64
	Description string
	Dishes      []string
}

// BookingSummary is returned by a successful reservation
type BookingSummary struct {
	Reference    string
	Customer     hotel.CustomerInfo
	Room         RoomSummary
	Nights       int
	RoomSubtotal float64
	MealSubtotal float64
	GrandTotal   float64
}

// Bill is the running or final bill of a reservation
type Bill struct {
	Reference    string
	RoomNumber   int
	Customer     hotel.CustomerInfo
	Nights       int
	RoomCharges  float64
	MealCharges  float64
	TotalBill    float64
	MealsOrdered []string
}

func newRoomSummary(room hotel.Room) RoomSummary {
	return RoomSummary{
		Number:           room.Number,
		Category:         room.Category.String(),
		PricePerNight:    room.PricePerNight,
		Available:        room.Available,
		UnderMaintenance: room.UnderMaintenance,
	}
}

func newMealSummary(meal hotel.Meal) (MealSummary, error) {
	var summary MealSummary
	if err := copier.Copy(&summary, &meal); err != nil {
		return MealSummary{}, err
	}
	summary.Dishes = meal.Dishes()
	return summary, nil
}

func newBill(res *hotel.Reservation) (*Bill, error) {
	bill := &Bill{}
	if err := copier.Copy(bill, res); err != nil {
		return nil, err
	}
	for _, meal := range res.Meals {
		bill.MealsOrdered = append(bill.MealsOrdered, meal.Name)
	}
	return bill, nil
}
