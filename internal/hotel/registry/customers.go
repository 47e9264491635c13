// Package registry keeps the append-only log of customer contact records.
// Records are never updated or removed, so a customer's details remain
// after checkout.
package registry

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/beesaferoot/hotel-booking/internal/hotel"
)

type Customers struct {
	db *gorm.DB
}

func NewCustomers(db *gorm.DB) *Customers {
	return &Customers{db: db}
}

// WithTx returns a registry bound to the given transaction.
func (c *Customers) WithTx(tx *gorm.DB) *Customers {
	return &Customers{db: tx}
}

// Register appends a customer record.
func (c *Customers) Register(ctx context.Context, info hotel.CustomerInfo) (*hotel.Customer, error) {
	customer := &hotel.Customer{
		Name:       info.Name,
		Phone:      info.Phone,
		Email:      info.Email,
		RoomNumber: info.RoomNumber,
	}
	if err := c.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to register customer %q: %w", info.Name, err)
	}
	return customer, nil
}

// List returns every registered customer in registration order.
func (c *Customers) List(ctx context.Context) ([]hotel.Customer, error) {
	var customers []hotel.Customer
	if err := c.db.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
