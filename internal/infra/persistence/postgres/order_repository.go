// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"planta/internal/domain/entity"
	domainerrors "planta/internal/domain/errors"
	"planta/internal/domain/repository"
	"planta/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with all of its details. GORM walks
// the Details association, so the order row and every order_details row go
// in with one Create call.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("order references a missing user or plant")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i := range orderM.Details {
		order.Details[i].ID = orderM.Details[i].ID
		order.Details[i].OrderID = orderM.Details[i].OrderID
	}

	return nil
}

// FindByID retrieves an order with its details by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Details").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves all orders placed by a specific user.
func (repo *orderRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Details").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindAll retrieves every order.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Details").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus sets the status of an order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order and its details. The order_details rows fall with
// the order via ON DELETE CASCADE.
func (repo *orderRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	details := make([]entity.OrderDetail, 0, len(data.Details))
	for _, detailM := range data.Details {
		details = append(details, entity.OrderDetail{
			ID:       detailM.ID,
			OrderID:  detailM.OrderID,
			PlantID:  detailM.PlantID,
			Quantity: detailM.Quantity,
			Price:    detailM.Price,
		})
	}

	return &entity.Order{
		ID:         data.ID,
		UserID:     data.UserID,
		Status:     entity.OrderStatus(data.Status),
		TotalPrice: data.TotalPrice,
		CreatedAt:  data.CreatedAt,
		Details:    details,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	details := make([]model.OrderDetailModel, 0, len(data.Details))
	for _, detail := range data.Details {
		details = append(details, model.OrderDetailModel{
			ID:       detail.ID,
			OrderID:  detail.OrderID,
			PlantID:  detail.PlantID,
			Quantity: detail.Quantity,
			Price:    detail.Price,
		})
	}

	return &model.OrderModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Status:     data.Status.String(),
		TotalPrice: data.TotalPrice,
		CreatedAt:  data.CreatedAt,
		Details:    details,
	}
}
