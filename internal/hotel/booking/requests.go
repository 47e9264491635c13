package booking

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/beesaferoot/hotel-booking/internal/hotel"
)

// ReserveRequest carries the details the operator enters to book a room
type ReserveRequest struct {
	RoomNumber int
	Name       string `validate:"required"`
	Phone      string
	Email      string
	Nights     int `validate:"min=1"`
}

// AddRoomRequest adds a room to the catalog. CategoryChoice is the 1..3
// menu choice: Single Bed, Double Bed, Deluxe Room.
type AddRoomRequest struct {
	Number         int     `validate:"min=1"`
	CategoryChoice int     `validate:"min=1,max=3"`
	Price          float64 `validate:"amount"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		return hotel.ValidAmount(fl.Field().Float())
	})
	return v
}

func validateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", hotel.ErrValidation, err)
	}
	return nil
}
