package booking_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/beesaferoot/hotel-booking/internal/config"
	"github.com/beesaferoot/hotel-booking/internal/hotel"
	"github.com/beesaferoot/hotel-booking/internal/hotel/booking"
	"github.com/beesaferoot/hotel-booking/internal/store"
)

func newTestService(t *testing.T) (*booking.Service, *gorm.DB) {
	cfg := &config.Config{ComboRate: config.DefaultComboRate, SeedCatalog: true}
	db, err := store.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(db) })
	return booking.NewService(db, cfg, zap.NewNop()), db
}

func bookableNumbers(t *testing.T, svc *booking.Service) []int {
	rooms, err := svc.ListBookableRooms(context.Background())
	require.NoError(t, err)
	numbers := make([]int, 0, len(rooms))
	for _, room := range rooms {
		numbers = append(numbers, room.Number)
	}
	return numbers
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func alice(room, nights int) booking.ReserveRequest {
	return booking.ReserveRequest{RoomNumber: room, Name: "Alice", Phone: "555", Email: "a@x.com", Nights: nights}
}

func TestService_ReserveAndCheckoutScenario(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	assert.Equal(t, float64(550), svc.ComboRate())

	summary, err := svc.Reserve(ctx, alice(101, 2))
	require.NoError(t, err)
	assert.Equal(t, float64(5000), summary.RoomSubtotal)
	assert.Equal(t, float64(1100), summary.MealSubtotal)
	assert.Equal(t, float64(6100), summary.GrandTotal)
	assert.Equal(t, 2, summary.Nights)
	assert.Equal(t, "Single Bed", summary.Room.Category)
	assert.False(t, summary.Room.Available)
	assert.Equal(t, hotel.CustomerInfo{Name: "Alice", Phone: "555", Email: "a@x.com", RoomNumber: 101}, summary.Customer)
	assert.NotContains(t, bookableNumbers(t, svc), 101)

	open, err := svc.ListReservations(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, 101, open[0].RoomNumber)
	assert.Equal(t, summary.Reference, open[0].Reference)

	bill, err := svc.Checkout(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, float64(6100), bill.TotalBill)
	assert.Equal(t, summary.Reference, bill.Reference)
	assert.Contains(t, bookableNumbers(t, svc), 101)
	assert.Zero(t, count(t, db, &hotel.Reservation{}))

	_, err = svc.Checkout(ctx, 101)
	assert.ErrorIs(t, err, hotel.ErrNotFound)

	// the customer record outlives the reservation
	customers, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Alice", customers[0].Name)
}

func TestService_ReserveTotal(t *testing.T) {
	rooms := map[int]float64{101: 2500, 201: 4000, 301: 6000}

	for room, price := range rooms {
		for _, nights := range []int{1, 2, 7, 30} {
			svc, _ := newTestService(t)
			summary, err := svc.Reserve(context.Background(), alice(room, nights))
			require.NoError(t, err)
			assert.Equal(t, price*float64(nights)+550*float64(nights), summary.GrandTotal, "room %d, %d nights", room, nights)
			assert.Equal(t, summary.RoomSubtotal+summary.MealSubtotal, summary.GrandTotal)
		}
	}
}

func TestService_ReserveExactlyOneOpenReservation(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	_, err := svc.Reserve(ctx, alice(202, 1))
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&hotel.Reservation{}).Where("room_number = ?", 202).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	// a second booking of the same room is refused and records nothing
	_, err = svc.Reserve(ctx, booking.ReserveRequest{RoomNumber: 202, Name: "Bob", Nights: 1})
	assert.ErrorIs(t, err, hotel.ErrRoomUnavailable)
	require.NoError(t, db.Model(&hotel.Reservation{}).Where("room_number = ?", 202).Count(&n).Error)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, int64(1), count(t, db, &hotel.Customer{}))
}

func TestService_ReserveUnavailableRoom(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	require.NoError(t, svc.SetMaintenance(ctx, 301, true))

	for _, room := range []int{999, 301} {
		_, err := svc.Reserve(ctx, alice(room, 2))
		assert.ErrorIs(t, err, hotel.ErrRoomUnavailable, room)
	}

	assert.Zero(t, count(t, db, &hotel.Customer{}))
	assert.Zero(t, count(t, db, &hotel.Reservation{}))
}

func TestService_ReserveValidation(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	tests := []struct {
		name string
		req  booking.ReserveRequest
	}{
		{name: "zero nights", req: alice(101, 0)},
		{name: "negative nights", req: alice(101, -3)},
		{name: "missing name", req: booking.ReserveRequest{RoomNumber: 101, Nights: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Reserve(ctx, tt.req)
			assert.ErrorIs(t, err, hotel.ErrValidation)
		})
	}

	assert.Contains(t, bookableNumbers(t, svc), 101)
	assert.Zero(t, count(t, db, &hotel.Customer{}))
	assert.Zero(t, count(t, db, &hotel.Reservation{}))
}

func TestService_CheckoutWithoutReservation(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	_, err := svc.Reserve(ctx, alice(102, 1))
	require.NoError(t, err)
	before := bookableNumbers(t, svc)

	for _, room := range []int{101, 999} {
		_, err := svc.Checkout(ctx, room)
		assert.ErrorIs(t, err, hotel.ErrNotFound)
	}

	assert.Equal(t, before, bookableNumbers(t, svc))
	assert.Equal(t, int64(1), count(t, db, &hotel.Reservation{}))
}

func TestService_CheckoutKeepsMaintenance(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Reserve(ctx, alice(201, 1))
	require.NoError(t, err)
	require.NoError(t, svc.SetMaintenance(ctx, 201, true))

	_, err = svc.Checkout(ctx, 201)
	require.NoError(t, err)
	assert.NotContains(t, bookableNumbers(t, svc), 201)

	rooms, err := svc.ListRooms(ctx)
	require.NoError(t, err)
	for _, room := range rooms {
		if room.Number == 201 {
			assert.True(t, room.Available)
			assert.True(t, room.UnderMaintenance)
		}
	}

	require.NoError(t, svc.SetMaintenance(ctx, 201, false))
	assert.Contains(t, bookableNumbers(t, svc), 201)
}

func TestService_OrderMeal(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	summary, err := svc.Reserve(ctx, alice(301, 1))
	require.NoError(t, err)
	assert.Equal(t, float64(6550), summary.GrandTotal)

	bill, err := svc.OrderMeal(ctx, 301, "Dinner")
	require.NoError(t, err)
	assert.Equal(t, float64(8550), bill.TotalBill)

	bill, err = svc.OrderMeal(ctx, 301, "breakfast")
	require.NoError(t, err)
	assert.Equal(t, float64(9750), bill.TotalBill)
	assert.Equal(t, []string{"Dinner", "Breakfast"}, bill.MealsOrdered)
	assert.Equal(t, float64(550+2000+1200), bill.MealCharges)

	_, err = svc.OrderMeal(ctx, 301, "Brunch")
	assert.ErrorIs(t, err, hotel.ErrNotFound)
	_, err = svc.OrderMeal(ctx, 101, "Lunch")
	assert.ErrorIs(t, err, hotel.ErrNotFound)

	final, err := svc.Checkout(ctx, 301)
	require.NoError(t, err)
	assert.Equal(t, float64(9750), final.TotalBill)
	assert.Equal(t, []string{"Dinner", "Breakfast"}, final.MealsOrdered)
}

func TestService_AddRoom(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	room, err := svc.AddRoom(ctx, booking.AddRoomRequest{Number: 401, CategoryChoice: 3, Price: 7500})
	require.NoError(t, err)
	assert.Equal(t, "Deluxe Room", room.Category)
	assert.True(t, room.Available)

	assert.Equal(t, []int{101, 102, 201, 202, 301, 302, 401}, bookableNumbers(t, svc))

	tests := []struct {
		name string
		req  booking.AddRoomRequest
	}{
		{name: "category too low", req: booking.AddRoomRequest{Number: 402, CategoryChoice: 0, Price: 100}},
		{name: "category too high", req: booking.AddRoomRequest{Number: 402, CategoryChoice: 4, Price: 100}},
		{name: "negative price", req: booking.AddRoomRequest{Number: 402, CategoryChoice: 1, Price: -5}},
		{name: "zero room number", req: booking.AddRoomRequest{Number: 0, CategoryChoice: 1, Price: 100}},
		{name: "negative room number", req: booking.AddRoomRequest{Number: -7, CategoryChoice: 1, Price: 100}},
		{name: "infinite price", req: booking.AddRoomRequest{Number: 500, CategoryChoice: 1, Price: math.Inf(1)}},
		{name: "NaN price", req: booking.AddRoomRequest{Number: 500, CategoryChoice: 1, Price: math.NaN()}},
		{name: "duplicate number", req: booking.AddRoomRequest{Number: 101, CategoryChoice: 1, Price: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddRoom(ctx, tt.req)
			assert.ErrorIs(t, err, hotel.ErrValidation)
		})
	}

	summary, err := svc.Reserve(ctx, alice(401, 2))
	require.NoError(t, err)
	assert.Equal(t, float64(7500*2+550*2), summary.GrandTotal)

	// rejected prices never reach the catalog
	assert.NotContains(t, bookableNumbers(t, svc), 500)
}

func TestService_ListMeals(t *testing.T) {
	svc, _ := newTestService(t)

	meals, err := svc.ListMeals(context.Background())
	require.NoError(t, err)
	require.Len(t, meals, 4)

	names := make([]string, 0, len(meals))
	for _, meal := range meals {
		names = append(names, meal.Name)
	}
	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner", "Breakfast & Dinner Combo"}, names)
	assert.Equal(t, "Chef's special dinner", meals[2].Description)
	assert.Contains(t, meals[2].Dishes, "Pasta")
	assert.Equal(t, float64(550), meals[3].Price)
}

func TestService_ComboRateFromConfig(t *testing.T) {
	cfg := &config.Config{ComboRate: 0, SeedCatalog: true}
	db, err := store.Open(cfg)
	require.NoError(t, err)
	defer store.Close(db)

	svc := booking.NewService(db, cfg, nil)
	assert.Zero(t, svc.ComboRate())
	summary, err := svc.Reserve(context.Background(), alice(101, 3))
	require.NoError(t, err)
	assert.Equal(t, float64(7500), summary.GrandTotal)
	assert.Zero(t, summary.MealSubtotal)
}
