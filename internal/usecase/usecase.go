package usecase

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
)

type ProductUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductResponse, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*ProductResponse, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetProduct(ctx context.Context, id int64) (*ProductResponse, error)
	ListProducts(ctx context.Context, req *ListProductsReq) (*Page[ProductResponse], error)
}

type RecommendationUC interface {
	RecommendByProduct(ctx context.Context, req *RecommendByProductReq) ([]ProductResponse, error)
	RecommendByText(ctx context.Context, req *RecommendByTextReq) ([]ProductResponse, error)
}

type AuthUC interface {
	Register(ctx context.Context, req *RegisterUserReq) (*UserResponse, error)
	Login(ctx context.Context, req *LoginReq) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*UserResponse, error)
	ListUsers(ctx context.Context, page *PageParams) (*Page[UserResponse], error)
	DeactivateUser(ctx context.Context, id int64) error
}

type CatalogUC interface {
	CreateBrand(ctx context.Context, name string) (*domain.Brand, error)
	UpdateBrand(ctx context.Context, id int64, name string) (*domain.Brand, error)
	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
	ListBrands(ctx context.Context, page *PageParams) (*Page[domain.Brand], error)
	DeactivateBrand(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context, page *PageParams) (*Page[domain.Category], error)
	DeactivateCategory(ctx context.Context, id int64) error

	CreateWarranty(ctx context.Context, warranty *domain.Warranty) (*domain.Warranty, error)
	GetWarranty(ctx context.Context, id int64) (*domain.Warranty, error)
	ListWarranties(ctx context.Context, page *PageParams) (*Page[domain.Warranty], error)
	DeleteWarranty(ctx context.Context, id int64) error

	UpsertInventory(ctx context.Context, inv *domain.Inventory) (*domain.Inventory, error)
	GetInventory(ctx context.Context, productID int64) (*domain.Inventory, error)
}

type OrderUC interface {
	GetCart(ctx context.Context, userID int64) (*domain.ShoppingCart, error)
	AddCartItem(ctx context.Context, req *AddCartItemReq) (*domain.ShoppingCart, error)
	RemoveCartItem(ctx context.Context, userID, productID int64) error
	Checkout(ctx context.Context, req *CheckoutReq) (*domain.Order, error)
	GetOrder(ctx context.Context, user *domain.User, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64, page *PageParams) (*Page[domain.Order], error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
}

type FulfillmentUC interface {
	CreatePayment(ctx context.Context, req *CreatePaymentReq) (*domain.Payment, error)
	GetPayment(ctx context.Context, orderID int64) (*domain.Payment, error)
	CreateDelivery(ctx context.Context, req *CreateDeliveryReq) (*domain.Delivery, error)
	GetDelivery(ctx context.Context, orderID int64) (*domain.Delivery, error)
	UpdateDeliveryStatus(ctx context.Context, orderID int64, status, trackingInfo string) (*domain.Delivery, error)
	CreateFeedback(ctx context.Context, req *CreateFeedbackReq) (*domain.Feedback, error)
	ListFeedback(ctx context.Context, orderID int64) ([]domain.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) error
}

type PromotionUC interface {
	CreatePromotion(ctx context.Context, req *CreatePromotionReq) (*domain.Promotion, error)
	UpdatePromotion(ctx context.Context, id int64, req *CreatePromotionReq) (*domain.Promotion, error)
	GetPromotion(ctx context.Context, id int64) (*domain.Promotion, error)
	ListPromotions(ctx context.Context, page *PageParams) (*Page[domain.Promotion], error)
	DeactivatePromotion(ctx context.Context, id int64) error
	AddProduct(ctx context.Context, promotionID, productID int64) error
	RemoveProduct(ctx context.Context, promotionID, productID int64) error
	ListProducts(ctx context.Context, promotionID int64) ([]ProductResponse, error)
}

type ChatbotUC interface {
	StartSession(ctx context.Context, userID *int64) (*domain.ChatSession, error)
	AppendMessage(ctx context.Context, req *AppendMessageReq) (*domain.ChatMessage, error)
	ListMessages(ctx context.Context, sessionToken string, page *PageParams) (*Page[domain.ChatMessage], error)
	CloseSession(ctx context.Context, sessionToken string) error
}
