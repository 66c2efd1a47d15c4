package converter

import "time"

// ProductRedisModel — JSON-представление товара в кэше Redis.
type ProductRedisModel struct {
	ID                      int64      `json:"id"`
	UUID                    string     `json:"uuid"`
	BrandID                 int64      `json:"brand_id"`
	Brand                   string     `json:"brand"`
	CategoryID              *int64     `json:"category_id,omitempty"`
	Category                string     `json:"category,omitempty"`
	Name                    string     `json:"name"`
	Description             string     `json:"description,omitempty"`
	Active                  bool       `json:"active"`
	ImageURL                string     `json:"image_url,omitempty"`
	Model3DURL              string     `json:"model_3d_url,omitempty"`
	ARURL                   string     `json:"ar_url,omitempty"`
	TechnicalSpecifications string     `json:"technical_specifications,omitempty"`
	Warranty                string     `json:"warranty,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               *time.Time `json:"updated_at,omitempty"`
}
