package domain

import "time"

// Warranty описывает гарантию, привязанную к бренду
type Warranty struct {
	ID             int64
	BrandID        int64
	Name           string
	Description    string
	DurationMonths int32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
