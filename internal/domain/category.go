package domain

import "time"

// Category описывает категорию товара
type Category struct {
	ID        int64
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCategory(name string) *Category {
	return &Category{
		Name:   name,
		Active: true,
	}
}
