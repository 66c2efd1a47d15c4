package usecase

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Deactivate(ctx context.Context, id int64) (*domain.Product, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, req *ListProductsReq) ([]ProductResponse, int64, error)
	// GetActiveByUUIDs возвращает гидрированные активные товары по множеству UUID.
	// excludeID, если задан, исключает товар с данным внутренним идентификатором.
	GetActiveByUUIDs(ctx context.Context, uuids []string, excludeID *int64) ([]ProductResponse, error)
}

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	Deactivate(ctx context.Context, id int64) error
	GetActiveByID(ctx context.Context, id int64) (*domain.Brand, error)
	List(ctx context.Context, page *PageParams) ([]domain.Brand, int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Deactivate(ctx context.Context, id int64) error
	GetActiveByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context, page *PageParams) ([]domain.Category, int64, error)
}

type WarrantyRepository interface {
	Create(ctx context.Context, warranty *domain.Warranty) (*domain.Warranty, error)
	GetByID(ctx context.Context, id int64) (*domain.Warranty, error)
	List(ctx context.Context, page *PageParams) ([]domain.Warranty, int64, error)
	Delete(ctx context.Context, id int64) error
}

type InventoryRepository interface {
	Upsert(ctx context.Context, inv *domain.Inventory) (*domain.Inventory, error)
	GetByProductID(ctx context.Context, productID int64) (*domain.Inventory, error)
	AdjustStock(ctx context.Context, productID int64, delta int32) (*domain.Inventory, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Deactivate(ctx context.Context, id int64) error
	GetActiveByID(ctx context.Context, id int64) (*domain.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, page *PageParams) ([]domain.User, int64, error)
}

type CartRepository interface {
	GetOrCreateActive(ctx context.Context, userID int64) (*domain.ShoppingCart, error)
	GetActiveByUser(ctx context.Context, userID int64) (*domain.ShoppingCart, error)
	UpsertItem(ctx context.Context, cartID, productID int64, quantity int32) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, cartID, productID int64) error
	Clear(ctx context.Context, cartID int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64, page *PageParams) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status, transactionID string) (*domain.Payment, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *domain.Delivery) (*domain.Delivery, error)
	GetByOrderID(ctx context.Context, orderID int64) (*domain.Delivery, error)
	UpdateStatus(ctx context.Context, id int64, status, trackingInfo string) (*domain.Delivery, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Feedback, error)
	Delete(ctx context.Context, id int64) error
}

type PromotionRepository interface {
	Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error)
	Deactivate(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	List(ctx context.Context, page *PageParams) ([]domain.Promotion, int64, error)
	AddProduct(ctx context.Context, promotionID, productID int64) error
	RemoveProduct(ctx context.Context, promotionID, productID int64) error
	ListProducts(ctx context.Context, promotionID int64) ([]int64, error)
}

type ChatRepository interface {
	CreateSession(ctx context.Context, session *domain.ChatSession) (*domain.ChatSession, error)
	GetSessionByToken(ctx context.Context, token string) (*domain.ChatSession, error)
	CloseSession(ctx context.Context, id int64) error
	AppendMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error)
	ListMessages(ctx context.Context, sessionID int64, page *PageParams) ([]domain.ChatMessage, int64, error)
}

// EmbeddingRepository — клиент векторного индекса.
type EmbeddingRepository interface {
	Upsert(ctx context.Context, vectors []domain.Embedding) error
	// Query возвращает до topK ближайших записей, лучшие первыми. Нативный фильтр
	// применяется индексом до усечения, keyword-фильтр — на клиенте после.
	Query(ctx context.Context, req *VectorQueryReq) ([]domain.VectorMatch, error)
	Delete(ctx context.Context, ids []string) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductResponse, error)
	SetProducts(ctx context.Context, products []ProductResponse) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
