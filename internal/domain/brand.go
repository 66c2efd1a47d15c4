package domain

import "time"

// Brand описывает бренд товара
type Brand struct {
	ID        int64
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewBrand(name string) *Brand {
	return &Brand{
		Name:   name,
		Active: true,
	}
}
