package usecase

import (
	"time"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// PAGINATION

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageParams — параметры пагинации списковых запросов.
type PageParams struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string // asc | desc
}

// Normalize приводит параметры к допустимым границам.
func (p *PageParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	if p.SortOrder != "desc" {
		p.SortOrder = "asc"
	}
}

func (p *PageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page — страница результата с метаданными пагинации.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Pages    int   `json:"pages"`
	HasNext  bool  `json:"has_next"`
	HasPrev  bool  `json:"has_prev"`
}

func NewPage[T any](items []T, total int64, params *PageParams) *Page[T] {
	pages := int((total + int64(params.PageSize) - 1) / int64(params.PageSize))

	return &Page[T]{
		Items:    items,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		Pages:    pages,
		HasNext:  params.Page < pages,
		HasPrev:  params.Page > 1,
	}
}

// PRODUCT USECASE

// CreateProductReq — запрос на создание товара.
type CreateProductReq struct {
	BrandID                 int64
	CategoryID              *int64
	WarrantyID              *int64
	Name                    string
	Description             string
	Model3DURL              string
	ARURL                   string
	TechnicalSpecifications string
	Images                  []ProductImage
}

// UpdateProductReq — запрос на обновление товара.
type UpdateProductReq struct {
	ID                      int64
	BrandID                 int64
	CategoryID              *int64
	WarrantyID              *int64
	Name                    string
	Description             string
	Model3DURL              string
	ARURL                   string
	TechnicalSpecifications string
}

// ListProductsReq — запрос списка товаров с фильтрами каталога.
type ListProductsReq struct {
	Page     PageParams
	BrandID  *int64
	Category string
	Search   string
}

// ProductResponse — DTO товара для внешнего использования.
type ProductResponse struct {
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

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

// RECOMMENDATIONS

// VectorQueryReq — запрос ближайших соседей к векторному индексу.
type VectorQueryReq struct {
	Vector   []float32
	TopK     int
	Filter   *domain.FieldFilter // нативный фильтр индекса
	Keywords []string            // keyword-постфильтр на клиенте
}

// RecommendByProductReq — запрос рекомендаций, похожих на товар.
type RecommendByProductReq struct {
	ProductID   int64
	TopK        int
	BrandFilter string
	Keywords    []string
}

// RecommendByTextReq — запрос рекомендаций по произвольному тексту.
type RecommendByTextReq struct {
	Text        string
	TopK        int
	BrandFilter string
	Keywords    []string
}

// AUTH

// RegisterUserReq — запрос на регистрацию пользователя.
type RegisterUserReq struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginReq struct {
	Email    string
	Password string
}

// TokenPair — пара выпущенных JWT-токенов.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UserResponse — DTO пользователя без хэша пароля.
type UserResponse struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	Role      string     `json:"role"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ORDERS

// AddCartItemReq — запрос добавления позиции в корзину.
type AddCartItemReq struct {
	UserID    int64
	ProductID int64
	Quantity  int32
}

// CheckoutReq — запрос оформления заказа из активной корзины.
type CheckoutReq struct {
	UserID        int64
	Currency      string
	PaymentMethod string
}

// CreatePaymentReq — запрос регистрации платежа по заказу.
type CreatePaymentReq struct {
	OrderID int64
	UserID  int64
	Amount  decimal.Decimal
	Method  string
}

// CreateDeliveryReq — запрос создания доставки заказа.
type CreateDeliveryReq struct {
	OrderID          int64
	Address          string
	EstimatedArrival string
}

// CreateFeedbackReq — запрос создания отзыва по заказу.
type CreateFeedbackReq struct {
	OrderID int64
	UserID  int64
	Rating  int32
	Comment string
}

// PROMOTIONS

type CreatePromotionReq struct {
	Title              string
	Description        string
	DiscountPercentage decimal.Decimal
	StartDate          time.Time
	EndDate            time.Time
}

// CHATBOT

type AppendMessageReq struct {
	SessionToken string
	Sender       string
	Message      string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ProductCreated     OutboxEventType = "product.created"
	ProductUpdated     OutboxEventType = "product.updated"
	ProductDeactivated OutboxEventType = "product.deactivated"
)

// OutboxEvent — событие изменения каталога, записанное в одной транзакции
// с изменением товара и публикуемое в Kafka фоновым worker'ом.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// ProductEventPayload — JSON-содержимое события изменения товара.
type ProductEventPayload struct {
	EventID     string          `json:"event_id"`
	EventType   OutboxEventType `json:"event_type"`
	ProductID   int64           `json:"product_id"`
	ProductUUID string          `json:"product_uuid"`
	OccurredAt  int64           `json:"occurred_at"`
}

type WriteRawMessageReq struct {
	ProductID int64
	Payload   []byte
}

// MAPPERS

func NewWriteRawMessageReq(productID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUserResponse(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
