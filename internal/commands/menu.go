package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/hotel-booking/internal/hotel"
	"github.com/beesaferoot/hotel-booking/internal/hotel/booking"
)

// RunMenu is the RunE of the interactive menu, shared by the root command
// and the menu subcommand.
func RunMenu(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	m := &menu{
		ctx:      cmd.Context(),
		svc:      s.svc,
		currency: s.cfg.Currency,
		in:       bufio.NewScanner(cmd.InOrStdin()),
		out:      cmd.OutOrStdout(),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	return m.run()
}

func MenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive booking menu",
		RunE:  RunMenu,
	}
}

var errInvalidNumber = errors.New("invalid number")

type menu struct {
	ctx      context.Context
	svc      *booking.Service
	currency string
	in       *bufio.Scanner
	out      io.Writer
}

// run shows the main menu until the operator exits or input ends.
func (m *menu) run() error {
	for {
		fmt.Fprintln(m.out, "\nHotel Management System:")
		fmt.Fprintln(m.out, "1. Admin Menu")
		fmt.Fprintln(m.out, "2. Customer Menu")
		fmt.Fprintln(m.out, "3. Exit")

		choice, err := m.prompt("Enter choice: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case "1":
			err = m.admin()
		case "2":
			err = m.customer()
		case "3":
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Try again.")
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (m *menu) admin() error {
	for {
		fmt.Fprintln(m.out, "\nAdmin Menu:")
		fmt.Fprintln(m.out, "1. Add Room")
		fmt.Fprintln(m.out, "2. Check Out Customer")
		fmt.Fprintln(m.out, "3. View Available Rooms")
		fmt.Fprintln(m.out, "4. Set Room Maintenance")
		fmt.Fprintln(m.out, "5. View Open Reservations")
		fmt.Fprintln(m.out, "6. Exit")

		choice, err := m.prompt("Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.addRoom()
		case "2":
			err = m.checkout()
		case "3":
			err = m.showRooms()
		case "4":
			err = m.setMaintenance()
		case "5":
			err = m.showReservations()
		case "6":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) customer() error {
	for {
		fmt.Fprintln(m.out, "\nCustomer Menu:")
		fmt.Fprintln(m.out, "1. Reserve Room")
		fmt.Fprintln(m.out, "2. View Meal Menu")
		fmt.Fprintln(m.out, "3. View Available Rooms")
		fmt.Fprintln(m.out, "4. Order Meal")
		fmt.Fprintln(m.out, "5. Exit")

		choice, err := m.prompt("Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.reserve()
		case "2":
			err = m.showMeals()
		case "3":
			err = m.showRooms()
		case "4":
			err = m.orderMeal()
		case "5":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) addRoom() error {
	number, err := m.promptInt("Enter Room Number: ")
	if err != nil {
		return m.report(err)
	}
	category, err := m.promptInt("Select Room Type (1: Single Bed, 2: Double Bed, 3: Deluxe Room): ")
	if err != nil {
		return m.report(err)
	}
	if category < 1 || category > 3 {
		fmt.Fprintln(m.out, "Invalid room type selected!")
		return nil
	}
	price, err := m.promptFloat("Enter Price Per Night: ")
	if err != nil {
		return m.report(err)
	}

	if _, err := m.svc.AddRoom(m.ctx, booking.AddRoomRequest{Number: number, CategoryChoice: category, Price: price}); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Room added successfully!")
	return nil
}

func (m *menu) checkout() error {
	number, err := m.promptInt("Enter Room Number for Checkout: ")
	if err != nil {
		return m.report(err)
	}

	bill, err := m.svc.Checkout(m.ctx, number)
	if errors.Is(err, hotel.ErrNotFound) {
		fmt.Fprintln(m.out, "No reservation found for this room.")
		return nil
	}
	if err != nil {
		return err
	}

	printBill(m.out, m.currency, bill)
	fmt.Fprintf(m.out, "Final Bill: %s\n", hotel.FormatAmount(m.currency, bill.TotalBill))
	fmt.Fprintln(m.out, "Checkout successful!")
	return nil
}

func (m *menu) showRooms() error {
	rooms, err := m.svc.ListBookableRooms(m.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\nAvailable Rooms:")
	printRooms(m.out, m.currency, rooms, false)
	return nil
}

func (m *menu) setMaintenance() error {
	number, err := m.promptInt("Enter Room Number: ")
	if err != nil {
		return m.report(err)
	}
	answer, err := m.prompt("Under maintenance? (y/n): ")
	if err != nil {
		return err
	}

	var on bool
	switch strings.ToLower(answer) {
	case "y", "yes":
		on = true
	case "n", "no":
	default:
		fmt.Fprintln(m.out, "Invalid choice! Try again.")
		return nil
	}

	if err := m.svc.SetMaintenance(m.ctx, number, on); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Room updated successfully!")
	return nil
}

func (m *menu) showReservations() error {
	bills, err := m.svc.ListReservations(m.ctx)
	if err != nil {
		return err
	}
	if len(bills) == 0 {
		fmt.Fprintln(m.out, "No open reservations.")
		return nil
	}
	for i := range bills {
		fmt.Fprintln(m.out)
		printBill(m.out, m.currency, &bills[i])
	}
	return nil
}

func (m *menu) reserve() error {
	if err := m.showRooms(); err != nil {
		return err
	}

	number, err := m.promptInt("Enter Room Number to Reserve: ")
	if err != nil {
		return m.report(err)
	}
	bookable, err := m.isBookable(number)
	if err != nil {
		return err
	}
	if !bookable {
		fmt.Fprintln(m.out, "Room not available!")
		return nil
	}

	fmt.Fprintln(m.out, "Enter Customer Details")
	req := booking.ReserveRequest{RoomNumber: number}
	if req.Name, err = m.prompt("Name: "); err != nil {
		return err
	}
	if req.Phone, err = m.prompt("Phone: "); err != nil {
		return err
	}
	if req.Email, err = m.prompt("Email: "); err != nil {
		return err
	}
	if req.Nights, err = m.promptInt("Number of Days: "); err != nil {
		return m.report(err)
	}

	summary, err := m.svc.Reserve(m.ctx, req)
	if err != nil {
		return m.report(err)
	}
	printBookingSummary(m.out, m.currency, summary, m.svc.ComboRate())
	return nil
}

func (m *menu) isBookable(number int) (bool, error) {
	rooms, err := m.svc.ListBookableRooms(m.ctx)
	if err != nil {
		return false, err
	}
	for _, room := range rooms {
		if room.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (m *menu) showMeals() error {
	meals, err := m.svc.ListMeals(m.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out)
	printMeals(m.out, m.currency, meals)
	return nil
}

func (m *menu) orderMeal() error {
	number, err := m.promptInt("Enter Room Number: ")
	if err != nil {
		return m.report(err)
	}
	name, err := m.prompt("Meal Name: ")
	if err != nil {
		return err
	}

	bill, err := m.svc.OrderMeal(m.ctx, number, name)
	if errors.Is(err, hotel.ErrNotFound) {
		fmt.Fprintln(m.out, "No reservation or meal found with those details.")
		return nil
	}
	if err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Meal ordered successfully!")
	fmt.Fprintf(m.out, "Total Bill: %s\n", hotel.FormatAmount(m.currency, bill.TotalBill))
	return nil
}

// report prints recoverable errors and passes everything else up.
func (m *menu) report(err error) error {
	switch {
	case errors.Is(err, errInvalidNumber):
		fmt.Fprintln(m.out, "Invalid input! Please enter a number.")
	case errors.Is(err, hotel.ErrRoomUnavailable):
		fmt.Fprintln(m.out, "Room not available!")
	case errors.Is(err, hotel.ErrValidation):
		fmt.Fprintf(m.out, "Invalid input: %v\n", err)
	case errors.Is(err, hotel.ErrNotFound):
		fmt.Fprintf(m.out, "Not found: %v\n", err)
	default:
		return err
	}
	return nil
}

func (m *menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *menu) promptInt(label string) (int, error) {
	text, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, errInvalidNumber)
	}
	return n, nil
}

func (m *menu) promptFloat(label string) (float64, error) {
	text, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q: %w", text, errInvalidNumber)
	}
	return f, nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
