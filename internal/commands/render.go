package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/beesaferoot/hotel-booking/internal/hotel"
	"github.com/beesaferoot/hotel-booking/internal/hotel/booking"
)

func roomStatus(room booking.RoomSummary) string {
	status := "Available"
	if !room.Available {
		status = "Occupied"
	}
	if room.UnderMaintenance {
		status += " (Under Maintenance)"
	}
	return status
}

func printRooms(w io.Writer, currency string, rooms []booking.RoomSummary, withStatus bool) {
	if len(rooms) == 0 {
		fmt.Fprintln(w, "No rooms available.")
		return
	}
	for _, room := range rooms {
		line := fmt.Sprintf("Room %d - %s - %s per night", room.Number, room.Category, hotel.FormatAmount(currency, room.PricePerNight))
		if withStatus {
			line += " - " + roomStatus(room)
		}
		fmt.Fprintln(w, line)
	}
}

func printMeals(w io.Writer, currency string, meals []booking.MealSummary) {
	fmt.Fprintln(w, "Meal Menu:")
	for i, meal := range meals {
		fmt.Fprintf(w, "%d. %s - %s\n", i+1, meal.Name, hotel.FormatAmount(currency, meal.Price))
		if meal.Description != "" {
			fmt.Fprintf(w, "   %s\n", meal.Description)
		}
		if len(meal.Dishes) > 0 {
			fmt.Fprintf(w, "   Includes: %s\n", strings.Join(meal.Dishes, ", "))
		}
	}
}

func printBookingSummary(w io.Writer, currency string, summary *booking.BookingSummary, comboRate float64) {
	fmt.Fprintln(w, "\n--- Reservation Details ---")
	fmt.Fprintf(w, "Reference: %s\n", summary.Reference)
	fmt.Fprintf(w, "Name: %s\n", summary.Customer.Name)
	fmt.Fprintf(w, "Phone: %s\n", summary.Customer.Phone)
	fmt.Fprintf(w, "Email: %s\n", summary.Customer.Email)
	fmt.Fprintf(w, "Room Number: %d (%s)\n", summary.Room.Number, summary.Room.Category)
	fmt.Fprintf(w, "Room Charges for %d days: %s\n", summary.Nights, hotel.FormatAmount(currency, summary.RoomSubtotal))
	fmt.Fprintf(w, "Meal Charges for %d days: %s (Breakfast & Dinner Combo at %s per day)\n",
		summary.Nights, hotel.FormatAmount(currency, summary.MealSubtotal), hotel.FormatAmount(currency, comboRate))
	fmt.Fprintf(w, "Total Bill: %s\n", hotel.FormatAmount(currency, summary.GrandTotal))
	fmt.Fprintln(w, "-----------------------------")
}

func printBill(w io.Writer, currency string, bill *booking.Bill) {
	fmt.Fprintf(w, "Reference: %s\n", bill.Reference)
	fmt.Fprintf(w, "Customer: %s\n", bill.Customer.Name)
	fmt.Fprintf(w, "Phone: %s\n", bill.Customer.Phone)
	fmt.Fprintf(w, "Email: %s\n", bill.Customer.Email)
	fmt.Fprintf(w, "Room: %d\n", bill.RoomNumber)
	fmt.Fprintf(w, "Nights: %d\n", bill.Nights)
	if len(bill.MealsOrdered) > 0 {
		fmt.Fprintf(w, "Meals Ordered: %s\n", strings.Join(bill.MealsOrdered, ", "))
	}
	fmt.Fprintf(w, "Room Charges: %s\n", hotel.FormatAmount(currency, bill.RoomCharges))
	fmt.Fprintf(w, "Meal Charges: %s\n", hotel.FormatAmount(currency, bill.MealCharges))
	fmt.Fprintf(w, "Total Bill: %s\n", hotel.FormatAmount(currency, bill.TotalBill))
}
