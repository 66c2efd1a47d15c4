package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заказа
const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Order описывает заказ
type Order struct {
	ID            int64
	UserID        int64
	TotalAmount   decimal.Decimal
	Currency      string
	Status        string
	PaymentMethod string
	Active        bool
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// OrderItem описывает позицию заказа со снимком цены на момент оформления
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int32
	UnitPrice decimal.Decimal
}

// CanTransitionTo проверяет допустимость перехода статуса заказа.
func (o *Order) CanTransitionTo(status string) bool {
	switch o.Status {
	case OrderPending:
		return status == OrderPaid || status == OrderCancelled
	case OrderPaid:
		return status == OrderShipped || status == OrderCancelled
	case OrderShipped:
		return status == OrderDelivered
	default:
		return false
	}
}
