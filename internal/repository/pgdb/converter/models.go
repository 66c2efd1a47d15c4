package converter

import (
	"time"

	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
)

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID                      int64      `db:"id"`
	UUID                    string     `db:"uuid"`
	BrandID                 int64      `db:"brand_id"`
	CategoryID              *int64     `db:"category_id"`
	WarrantyID              *int64     `db:"warranty_id"`
	Name                    string     `db:"name"`
	Description             string     `db:"description"`
	Active                  bool       `db:"active"`
	ImageURL                string     `db:"image_url"`
	Model3DURL              string     `db:"model_3d_url"`
	ARURL                   string     `db:"ar_url"`
	TechnicalSpecifications string     `db:"technical_specifications"`
	CreatedAt               time.Time  `db:"created_at"`
	UpdatedAt               *time.Time `db:"updated_at"`
}

// BrandModel представляет запись таблицы brands в PostgreSQL.
type BrandModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Active    bool       `db:"active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Active    bool       `db:"active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	ProductID   int64                   `db:"product_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
