package http

import (
	"time"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// DTO для сущностей, у которых нет готового usecase-представления.
// Доменные структуры наружу не отдаются.

// mapPage переводит страницу доменных сущностей в страницу DTO,
// сохраняя метаданные пагинации.
func mapPage[T, U any](page *usecase.Page[T], fn func(*T) *U) *usecase.Page[U] {
	items := make([]U, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *fn(&page.Items[i]))
	}

	return &usecase.Page[U]{
		Items:    items,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Pages:    page.Pages,
		HasNext:  page.HasNext,
		HasPrev:  page.HasPrev,
	}
}

type BrandResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewBrandResponse(b *domain.Brand) *BrandResponse {
	return &BrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type CategoryResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewCategoryResponse(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type WarrantyResponse struct {
	ID             int64      `json:"id"`
	BrandID        int64      `json:"brand_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	DurationMonths int32      `json:"duration_months"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func NewWarrantyResponse(w *domain.Warranty) *WarrantyResponse {
	return &WarrantyResponse{
		ID:             w.ID,
		BrandID:        w.BrandID,
		Name:           w.Name,
		Description:    w.Description,
		DurationMonths: w.DurationMonths,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

type InventoryResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Stock     int32           `json:"stock"`
	PriceUSD  decimal.Decimal `json:"price_usd"`
	PriceBS   decimal.Decimal `json:"price_bs"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

func NewInventoryResponse(inv *domain.Inventory) *InventoryResponse {
	return &InventoryResponse{
		ID:        inv.ID,
		ProductID: inv.ProductID,
		Stock:     inv.Stock,
		PriceUSD:  inv.PriceUSD,
		PriceBS:   inv.PriceBS,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

type CartItemResponse struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

type CartResponse struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	Items     []CartItemResponse `json:"items"`
	CreatedAt time.Time          `json:"created_at"`
}

func NewCartResponse(cart *domain.ShoppingCart) *CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &CartResponse{
		ID:        cart.ID,
		UserID:    cart.UserID,
		Items:     items,
		CreatedAt: cart.CreatedAt,
	}
}

type OrderItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderResponse struct {
	ID            int64               `json:"id"`
	UserID        int64               `json:"user_id"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Currency      string              `json:"currency"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     *time.Time          `json:"updated_at,omitempty"`
}

func NewOrderResponse(order *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		TotalAmount:   order.TotalAmount,
		Currency:      order.Currency,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		Items:         items,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

func NewOrderResponses(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		res = append(res, *NewOrderResponse(&orders[i]))
	}
	return res
}

type PaymentResponse struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

func NewPaymentResponse(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		Method:        p.Method,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}

type DeliveryResponse struct {
	ID               int64      `json:"id"`
	OrderID          int64      `json:"order_id"`
	Address          string     `json:"address"`
	Status           string     `json:"status"`
	TrackingInfo     string     `json:"tracking_info,omitempty"`
	EstimatedArrival string     `json:"estimated_arrival,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

func NewDeliveryResponse(d *domain.Delivery) *DeliveryResponse {
	return &DeliveryResponse{
		ID:               d.ID,
		OrderID:          d.OrderID,
		Address:          d.Address,
		Status:           d.Status,
		TrackingInfo:     d.TrackingInfo,
		EstimatedArrival: d.EstimatedArrival,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type FeedbackResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	UserID    int64     `json:"user_id"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewFeedbackResponse(f *domain.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:        f.ID,
		OrderID:   f.OrderID,
		UserID:    f.UserID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}

func NewFeedbackResponses(feedback []domain.Feedback) []FeedbackResponse {
	res := make([]FeedbackResponse, 0, len(feedback))
	for i := range feedback {
		res = append(res, *NewFeedbackResponse(&feedback[i]))
	}
	return res
}

type PromotionResponse struct {
	ID                 int64           `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description,omitempty"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	Active             bool            `json:"active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          *time.Time      `json:"updated_at,omitempty"`
}

func NewPromotionResponse(p *domain.Promotion) *PromotionResponse {
	return &PromotionResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		DiscountPercentage: p.DiscountPercentage,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		Active:             p.Active,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

type ChatSessionResponse struct {
	ID           int64     `json:"id"`
	UserID       *int64    `json:"user_id,omitempty"`
	SessionToken string    `json:"session_token"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewChatSessionResponse(s *domain.ChatSession) *ChatSessionResponse {
	return &ChatSessionResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		SessionToken: s.SessionToken,
		Active:       s.Active,
		CreatedAt:    s.CreatedAt,
	}
}

type ChatMessageResponse struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewChatMessageResponse(m *domain.ChatMessage) *ChatMessageResponse {
	return &ChatMessageResponse{
		ID:        m.ID,
		SessionID: m.SessionID,
		Sender:    m.Sender,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
