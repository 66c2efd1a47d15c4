package usecase

import (
	"context"
	"testing"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCartItem_InvalidQuantity(t *testing.T) {
	uc := NewOrderUC(nil, nil, nil, nil, nil, logger.NewSlogLogger())

	for _, qty := range []int32{0, -1} {
		_, err := uc.AddCartItem(context.Background(), &AddCartItemReq{UserID: 1, ProductID: 2, Quantity: qty})
		assert.ErrorIs(t, err, e.ErrInvalidQuantity)
	}
}

func TestAddCartItem_InactiveProduct(t *testing.T) {
	productRepo := &fakeProductRepo{
		getActiveByIDFn: func(_ context.Context, _ int64) (*domain.Product, error) {
			return nil, e.ErrProductNotFound
		},
	}

	uc := NewOrderUC(nil, nil, productRepo, nil, nil, logger.NewSlogLogger())

	_, err := uc.AddCartItem(context.Background(), &AddCartItemReq{UserID: 1, ProductID: 2, Quantity: 1})
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestGetOrder_OwnershipCheck(t *testing.T) {
	orderRepo := &fakeOrderRepo{
		getByIDFn: func(_ context.Context, id int64) (*domain.Order, error) {
			return &domain.Order{ID: id, UserID: 1, Status: domain.OrderPending}, nil
		},
	}

	uc := NewOrderUC(nil, orderRepo, nil, nil, nil, logger.NewSlogLogger())

	owner := &domain.User{ID: 1, Role: domain.RoleCustomer}
	stranger := &domain.User{ID: 2, Role: domain.RoleCustomer}
	admin := &domain.User{ID: 3, Role: domain.RoleAdmin}

	order, err := uc.GetOrder(context.Background(), owner, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.UserID)

	_, err = uc.GetOrder(context.Background(), stranger, 10)
	assert.ErrorIs(t, err, e.ErrForbidden)

	_, err = uc.GetOrder(context.Background(), admin, 10)
	assert.NoError(t, err)
}

func TestUpdateOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		wantErr bool
	}{
		{"pending to paid", domain.OrderPending, domain.OrderPaid, false},
		{"pending to cancelled", domain.OrderPending, domain.OrderCancelled, false},
		{"pending to delivered", domain.OrderPending, domain.OrderDelivered, true},
		{"paid to shipped", domain.OrderPaid, domain.OrderShipped, false},
		{"shipped to delivered", domain.OrderShipped, domain.OrderDelivered, false},
		{"delivered is terminal", domain.OrderDelivered, domain.OrderShipped, true},
		{"cancelled is terminal", domain.OrderCancelled, domain.OrderPaid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := &fakeOrderRepo{
				getByIDFn: func(_ context.Context, id int64) (*domain.Order, error) {
					return &domain.Order{ID: id, UserID: 1, Status: tt.current}, nil
				},
			}

			uc := NewOrderUC(nil, orderRepo, nil, nil, nil, logger.NewSlogLogger())

			order, err := uc.UpdateOrderStatus(context.Background(), 1, tt.next)
			if tt.wantErr {
				assert.ErrorIs(t, err, e.ErrInvalidOrderStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, order.Status)
		})
	}
}

func TestPriceFor_CurrencySelection(t *testing.T) {
	uc := NewOrderUC(nil, nil, nil, nil, nil, logger.NewSlogLogger())

	inv := &domain.Inventory{
		PriceUSD: decimal.NewFromFloat(19.99),
		PriceBS:  decimal.NewFromFloat(730.50),
	}

	assert.True(t, uc.priceFor(inv, "BS").Equal(decimal.NewFromFloat(730.50)))
	assert.True(t, uc.priceFor(inv, "USD").Equal(decimal.NewFromFloat(19.99)))
	assert.True(t, uc.priceFor(inv, "").Equal(decimal.NewFromFloat(19.99)))
}
