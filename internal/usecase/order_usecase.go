package usecase

import (
	"context"

	"planta/internal/domain/entity"
)

// --- Input DTOs ---

// OrderLineInput is a single requested line item at checkout.
type OrderLineInput struct {
	PlantID  int64 `json:"plantId" validate:"required"`
	Quantity int   `json:"quantity" validate:"required"`
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	UserID int64            `json:"userId" validate:"required"`
	Items  []OrderLineInput `json:"items" validate:"required,dive"`
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	// CreateOrder resolves the user and every plant reference, snapshots the
	// plants' current prices into the line items, computes the total and
	// persists the order with its details atomically.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order with its details.
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)

	// ListOrdersByUser retrieves all orders placed by a user.
	ListOrdersByUser(ctx context.Context, userID int64) ([]*entity.Order, error)

	// ListOrders retrieves every order.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus advances the order through its state machine.
	UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error)

	// DeleteOrder removes an order together with its details.
	DeleteOrder(ctx context.Context, id int64) error
}
