package domain

import "time"

// ShoppingCart описывает корзину пользователя
type ShoppingCart struct {
	ID        int64
	UserID    int64
	Active    bool
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// CartItem описывает позицию корзины
type CartItem struct {
	ID        int64
	CartID    int64
	ProductID int64
	Quantity  int32
	CreatedAt time.Time
	UpdatedAt *time.Time
}
