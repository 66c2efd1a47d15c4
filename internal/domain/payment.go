package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы платежа
const (
	PaymentInitiated = "initiated"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment описывает платёж по заказу
type Payment struct {
	ID            int64
	OrderID       int64
	Amount        decimal.Decimal
	Method        string // qr, paypal, stripe
	Status        string
	TransactionID string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
