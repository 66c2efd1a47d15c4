package domain

import "time"

// Feedback описывает отзыв пользователя по заказу
type Feedback struct {
	ID        int64
	OrderID   int64
	UserID    int64
	Rating    int32 // 1..5
	Comment   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
