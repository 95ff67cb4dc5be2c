package impl

import (
	"context"
	"testing"

	"planta/internal/domain/entity"
	domainerrors "planta/internal/domain/errors"
	"planta/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	svc       usecase.OrderUsecase
	orderRepo *fakeOrderRepo
	plantRepo *fakePlantRepo
	userRepo  *fakeUserRepo
}

func newOrderFixture() *orderFixture {
	orderRepo := newFakeOrderRepo()
	plantRepo := newFakePlantRepo()
	userRepo := newFakeUserRepo()
	tx := &fakeTxManager{orderRepo: orderRepo, plantRepo: plantRepo}

	return &orderFixture{
		svc:       NewOrderService(orderRepo, plantRepo, userRepo, tx),
		orderRepo: orderRepo,
		plantRepo: plantRepo,
		userRepo:  userRepo,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	fx := newOrderFixture()
	user := fx.userRepo.add("Alice", "alice@example.com")
	monstera := fx.plantRepo.add("Monstera", "19.99")
	cactus := fx.plantRepo.add("Cactus", "7.50")

	order, err := fx.svc.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		UserID: user.ID,
		Items: []usecase.OrderLineInput{
			{PlantID: monstera.ID, Quantity: 3},
			{PlantID: cactus.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPending, order.Status)
	require.Len(t, order.Details, 2)
	assert.Equal(t, "19.99", order.Details[0].Price.StringFixed(2))
	assert.Equal(t, "59.97", order.Details[0].LineTotal().StringFixed(2))

	// 19.99*3 + 7.50*2
	assert.Equal(t, "74.97", order.TotalPrice.StringFixed(2))
	assert.Len(t, fx.orderRepo.orders, 1)
}

func TestOrderService_CreateOrder_PriceSnapshotIsStable(t *testing.T) {
	fx := newOrderFixture()
	user := fx.userRepo.add("Alice", "alice@example.com")
	plant := fx.plantRepo.add("Monstera", "19.99")

	order, err := fx.svc.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		UserID: user.ID,
		Items:  []usecase.OrderLineInput{{PlantID: plant.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// A later catalog price change must not touch the stored snapshot.
	stored := fx.plantRepo.plants[plant.ID]
	stored.Price = stored.Price.Add(stored.Price)

	reloaded, err := fx.svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "19.99", reloaded.Details[0].Price.StringFixed(2))
	assert.Equal(t, "19.99", reloaded.TotalPrice.StringFixed(2))
}

func TestOrderService_CreateOrder_Rejections(t *testing.T) {
	fx := newOrderFixture()
	user := fx.userRepo.add("Alice", "alice@example.com")
	plant := fx.plantRepo.add("Monstera", "19.99")

	tests := []struct {
		name     string
		input    *usecase.CreateOrderInput
		wantCode int
	}{
		{
			name:     "no items",
			input:    &usecase.CreateOrderInput{UserID: user.ID},
			wantCode: 400,
		},
		{
			name: "unknown user",
			input: &usecase.CreateOrderInput{
				UserID: 999,
				Items:  []usecase.OrderLineInput{{PlantID: plant.ID, Quantity: 1}},
			},
			wantCode: 422,
		},
		{
			name: "unknown plant",
			input: &usecase.CreateOrderInput{
				UserID: user.ID,
				Items:  []usecase.OrderLineInput{{PlantID: 999, Quantity: 1}},
			},
			wantCode: 422,
		},
		{
			name: "zero quantity",
			input: &usecase.CreateOrderInput{
				UserID: user.ID,
				Items:  []usecase.OrderLineInput{{PlantID: plant.ID, Quantity: 0}},
			},
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.svc.CreateOrder(context.Background(), tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.HTTPCode())

			// Nothing may be written on a rejected order.
			assert.Empty(t, fx.orderRepo.orders)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	fx := newOrderFixture()
	user := fx.userRepo.add("Alice", "alice@example.com")
	plant := fx.plantRepo.add("Monstera", "19.99")

	order, err := fx.svc.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		UserID: user.ID,
		Items:  []usecase.OrderLineInput{{PlantID: plant.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := fx.svc.UpdateStatus(context.Background(), order.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, updated.Status)

	// confirmed -> delivered skips shipped
	_, err = fx.svc.UpdateStatus(context.Background(), order.ID, "delivered")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := newOrderFixture()

	_, err := fx.svc.UpdateStatus(context.Background(), 1, "teleported")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	fx := newOrderFixture()

	_, err := fx.svc.UpdateStatus(context.Background(), 5, "confirmed")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	fx := newOrderFixture()
	user := fx.userRepo.add("Alice", "alice@example.com")
	plant := fx.plantRepo.add("Monstera", "19.99")

	order, err := fx.svc.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		UserID: user.ID,
		Items:  []usecase.OrderLineInput{{PlantID: plant.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteOrder(context.Background(), order.ID))
	assert.Empty(t, fx.orderRepo.orders)

	err = fx.svc.DeleteOrder(context.Background(), order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
