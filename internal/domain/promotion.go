package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion описывает акцию со скидкой на набор товаров
type Promotion struct {
	ID                 int64
	Title              string
	Description        string
	DiscountPercentage decimal.Decimal
	StartDate          time.Time
	EndDate            time.Time
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// PromotionProduct связывает акцию и товар
type PromotionProduct struct {
	ID          int64
	PromotionID int64
	ProductID   int64
	CreatedAt   time.Time
}
