package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory описывает складской остаток и цены товара
type Inventory struct {
	ID        int64
	ProductID int64
	Stock     int32
	PriceUSD  decimal.Decimal
	PriceBS   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt *time.Time
}
