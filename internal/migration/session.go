package migration

import (
	"gorm.io/gorm"

	"github.com/beesaferoot/hotel-booking/internal/hotel"
)

// SeedRooms is the room catalog every session starts with.
var SeedRooms = []hotel.Room{
	{Number: 101, Category: hotel.SingleBed, PricePerNight: 2500},
	{Number: 102, Category: hotel.SingleBed, PricePerNight: 2500},
	{Number: 201, Category: hotel.DoubleBed, PricePerNight: 4000},
	{Number: 202, Category: hotel.DoubleBed, PricePerNight: 4000},
	{Number: 301, Category: hotel.Deluxe, PricePerNight: 6000},
	{Number: 302, Category: hotel.Deluxe, PricePerNight: 6000},
}

// SeedMeals is the fixed meal menu.
var SeedMeals = []hotel.Meal{
	{Name: "Breakfast", Price: 1200, Description: "Continental breakfast", Items: "Juice, Coffee, Tea, Cake, Pancakes, Fruits"},
	{Name: "Lunch", Price: 1500, Description: "Full course meal", Items: "Rice, Curry, Salad, Bread, Chicken, Fish"},
	{Name: "Dinner", Price: 2000, Description: "Chef's special dinner", Items: "Soup, Grilled Meat, Vegetables, Pasta, Dessert"},
	{Name: "Breakfast & Dinner Combo", Price: 550, Description: "Special discounted package", Items: "Juice, Coffee, Tea, Cake, Pancakes, Fruits, Soup, Grilled Meat, Vegetables, Pasta, Dessert"},
}

// CreateTables creates the booking session tables.
func CreateTables() *Migration {
	return &Migration{
		Version: "20240315000001",
		Name:    "create_booking_tables",
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(hotel.Models()...)
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(hotel.Models()...)
		},
	}
}

// SeedRoomCatalog inserts SeedRooms, all available and out of maintenance.
func SeedRoomCatalog() *Migration {
	return &Migration{
		Version: "20240315000002",
		Name:    "seed_room_catalog",
		Up: func(db *gorm.DB) error {
			rooms := make([]hotel.Room, len(SeedRooms))
			copy(rooms, SeedRooms)
			for i := range rooms {
				rooms[i].Available = true
			}
			return db.Create(&rooms).Error
		},
		Down: func(db *gorm.DB) error {
			numbers := make([]int, 0, len(SeedRooms))
			for _, room := range SeedRooms {
				numbers = append(numbers, room.Number)
			}
			return db.Unscoped().Where("number IN ?", numbers).Delete(&hotel.Room{}).Error
		},
	}
}

// SeedMealMenu inserts SeedMeals.
func SeedMealMenu() *Migration {
	return &Migration{
		Version: "20240315000003",
		Name:    "seed_meal_menu",
		Up: func(db *gorm.DB) error {
			meals := make([]hotel.Meal, len(SeedMeals))
			copy(meals, SeedMeals)
			return db.Create(&meals).Error
		},
		Down: func(db *gorm.DB) error {
			names := make([]string, 0, len(SeedMeals))
			for _, meal := range SeedMeals {
				names = append(names, meal.Name)
			}
			return db.Unscoped().Where("name IN ?", names).Delete(&hotel.Meal{}).Error
		},
	}
}

// Session returns the migrations that prepare a booking session. The meal
// menu is always seeded; the room catalog only when seedRooms is set.
func Session(seedRooms bool) []*Migration {
	migrations := []*Migration{CreateTables()}
	if seedRooms {
		migrations = append(migrations, SeedRoomCatalog())
	}
	return append(migrations, SeedMealMenu())
}
