package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID                      int64
	UUID                    string // внешний идентификатор, ключ записи в векторном индексе
	BrandID                 int64
	CategoryID              *int64
	WarrantyID              *int64
	Name                    string
	Description             string
	Active                  bool // мягкое удаление: false — товар не попадает в выдачи
	ImageURL                string
	Model3DURL              string
	ARURL                   string
	TechnicalSpecifications string
	CreatedAt               time.Time
	UpdatedAt               *time.Time
}

func NewProduct(uuid string, brandID int64, categoryID *int64, name, description string) *Product {
	return &Product{
		UUID:        uuid,
		BrandID:     brandID,
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Active:      true,
	}
}

// EmbeddingText возвращает текст для векторизации: имя и описание через пробел.
// Пустые части не опускаются, разделитель сохраняется всегда.
func (p *Product) EmbeddingText() string {
	return p.Name + " " + p.Description
}
