// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"fmt"
	"time"

	"planta/internal/domain/entity"
	domainerrors "planta/internal/domain/errors"
	"planta/internal/domain/repository"
	"planta/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type orderService struct {
	orderRepo repository.OrderRepository
	plantRepo repository.PlantRepository
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	plantRepo repository.PlantRepository,
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		plantRepo: plantRepo,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

// CreateOrder builds the Order aggregate from the requested line items.
// Every reference is resolved and every quantity validated before anything is
// written; each line's price is the plant's current price at this moment and
// never changes afterwards.
func (s *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrReferenceNotFound.WithDetails(
				fmt.Sprintf("user %d does not exist", input.UserID))
		}

		return nil, errors.Wrap(err, "failed to resolve order user")
	}

	details := make([]entity.OrderDetail, 0, len(input.Items))
	total := decimal.Zero
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, domainerrors.ErrInvalidQuantity.WithDetails(
				fmt.Sprintf("plant %d requested with quantity %d", item.PlantID, item.Quantity))
		}

		plant, err := s.plantRepo.FindByID(ctx, item.PlantID)
		if err != nil {
			if errors.Is(err, repository.ErrPlantNotFound) {
				return nil, domainerrors.ErrReferenceNotFound.WithDetails(
					fmt.Sprintf("plant %d does not exist", item.PlantID))
			}

			return nil, errors.Wrap(err, "failed to resolve order plant")
		}

		detail := entity.OrderDetail{
			PlantID:  plant.ID,
			Quantity: item.Quantity,
			Price:    plant.Price,
		}
		details = append(details, detail)
		total = total.Add(detail.LineTotal())
	}

	order := &entity.Order{
		UserID:     input.UserID,
		Status:     entity.OrderPending,
		TotalPrice: total,
		CreatedAt:  time.Now().UTC(),
		Details:    details,
	}

	// The order and its details are one aggregate: they are persisted inside
	// a single transaction so the order is never observed partially written.
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewOrderRepository().Create(ctx, order)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	return order, nil
}

// GetOrder retrieves an order with its details
func (s *orderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return order, nil
}

// ListOrdersByUser retrieves all orders placed by a user
func (s *orderService) ListOrdersByUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return orders, nil
}

// ListOrders retrieves every order
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateStatus advances an order through its state machine. The requested
// status must be a known state and the (current, requested) pair must be in
// the transition table.
func (s *orderService) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error) {
	next, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, domainerrors.ErrInvalidEnumValue.WithDetails(
			fmt.Sprintf("status: %q is not a known order status", status))
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("order %d cannot move from %s to %s", id, order.Status, next))
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, next); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order.Status = next

	return order, nil
}

// DeleteOrder removes an order and its details
func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}
