// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"planta/internal/domain/entity"
	"planta/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order-related database operations.
// The order and its details form one aggregate: Create persists them as a
// single unit and Delete removes the details together with the order.
type OrderRepository interface {
	// Create persists a new order together with all of its details.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its details by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByUser retrieves all orders placed by a specific user.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Order, error)

	// FindAll retrieves every order.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus sets the status of an order.
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error

	// Delete removes an order and its details.
	Delete(ctx context.Context, id int64) error
}
