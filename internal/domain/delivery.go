package domain

import "time"

// Статусы доставки
const (
	DeliveryPending   = "pending"
	DeliveryInTransit = "in_transit"
	DeliveryDelivered = "delivered"
	DeliveryCancelled = "cancelled"
)

// Delivery описывает доставку заказа
type Delivery struct {
	ID               int64
	OrderID          int64
	Address          string
	Status           string
	TrackingInfo     string
	EstimatedArrival string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}
