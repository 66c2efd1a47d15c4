package usecase

import (
	"context"
	"errors"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
)

var errFakeNotFound = errors.New("fake: not found")

type fakeProductRepo struct {
	createFn           func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	updateFn           func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	deactivateFn       func(ctx context.Context, id int64) (*domain.Product, error)
	getActiveByIDFn    func(ctx context.Context, id int64) (*domain.Product, error)
	listFn             func(ctx context.Context, req *ListProductsReq) ([]ProductResponse, int64, error)
	getActiveByUUIDsFn func(ctx context.Context, uuids []string, excludeID *int64) ([]ProductResponse, error)
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return f.createFn(ctx, product)
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return f.updateFn(ctx, product)
}

func (f *fakeProductRepo) Deactivate(ctx context.Context, id int64) (*domain.Product, error) {
	return f.deactivateFn(ctx, id)
}

func (f *fakeProductRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Product, error) {
	if f.getActiveByIDFn == nil {
		return nil, errFakeNotFound
	}
	return f.getActiveByIDFn(ctx, id)
}

func (f *fakeProductRepo) List(ctx context.Context, req *ListProductsReq) ([]ProductResponse, int64, error) {
	return f.listFn(ctx, req)
}

func (f *fakeProductRepo) GetActiveByUUIDs(ctx context.Context, uuids []string, excludeID *int64) ([]ProductResponse, error) {
	return f.getActiveByUUIDsFn(ctx, uuids, excludeID)
}

type fakeBrandRepo struct {
	getActiveByIDFn func(ctx context.Context, id int64) (*domain.Brand, error)
}

func (f *fakeBrandRepo) Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	return brand, nil
}

func (f *fakeBrandRepo) Update(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	return brand, nil
}

func (f *fakeBrandRepo) Deactivate(ctx context.Context, id int64) error {
	return nil
}

func (f *fakeBrandRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Brand, error) {
	if f.getActiveByIDFn == nil {
		return nil, errFakeNotFound
	}
	return f.getActiveByIDFn(ctx, id)
}

func (f *fakeBrandRepo) List(ctx context.Context, page *PageParams) ([]domain.Brand, int64, error) {
	return nil, 0, nil
}

type fakeCategoryRepo struct {
	getActiveByIDFn func(ctx context.Context, id int64) (*domain.Category, error)
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	return category, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	return category, nil
}

func (f *fakeCategoryRepo) Deactivate(ctx context.Context, id int64) error {
	return nil
}

func (f *fakeCategoryRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Category, error) {
	if f.getActiveByIDFn == nil {
		return nil, errFakeNotFound
	}
	return f.getActiveByIDFn(ctx, id)
}

func (f *fakeCategoryRepo) List(ctx context.Context, page *PageParams) ([]domain.Category, int64, error) {
	return nil, 0, nil
}

type fakeWarrantyRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Warranty, error)
}

func (f *fakeWarrantyRepo) Create(ctx context.Context, warranty *domain.Warranty) (*domain.Warranty, error) {
	return warranty, nil
}

func (f *fakeWarrantyRepo) GetByID(ctx context.Context, id int64) (*domain.Warranty, error) {
	if f.getByIDFn == nil {
		return nil, errFakeNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeWarrantyRepo) List(ctx context.Context, page *PageParams) ([]domain.Warranty, int64, error) {
	return nil, 0, nil
}

func (f *fakeWarrantyRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

type fakeCacheRepo struct {
	getProductsFn func(ctx context.Context, ids []int64) (map[int64]ProductResponse, error)
	setProductsFn func(ctx context.Context, products []ProductResponse) error
	deleted       []int64
}

func (f *fakeCacheRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]ProductResponse, error) {
	if f.getProductsFn == nil {
		return nil, errFakeNotFound
	}
	return f.getProductsFn(ctx, ids)
}

func (f *fakeCacheRepo) SetProducts(ctx context.Context, products []ProductResponse) error {
	if f.setProductsFn == nil {
		return nil
	}
	return f.setProductsFn(ctx, products)
}

func (f *fakeCacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	f.deleted = append(f.deleted, ids...)
	return nil
}

type fakeEmbedder struct {
	embedFn    func(ctx context.Context, text string) ([]float32, error)
	dimensions int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.embedFn(ctx, text)
}

func (f *fakeEmbedder) Dimensions() int {
	return f.dimensions
}

type fakeEmbeddingRepo struct {
	upsertFn func(ctx context.Context, vectors []domain.Embedding) error
	queryFn  func(ctx context.Context, req *VectorQueryReq) ([]domain.VectorMatch, error)
	deleteFn func(ctx context.Context, ids []string) error
}

func (f *fakeEmbeddingRepo) Upsert(ctx context.Context, vectors []domain.Embedding) error {
	return f.upsertFn(ctx, vectors)
}

func (f *fakeEmbeddingRepo) Query(ctx context.Context, req *VectorQueryReq) ([]domain.VectorMatch, error) {
	return f.queryFn(ctx, req)
}

func (f *fakeEmbeddingRepo) Delete(ctx context.Context, ids []string) error {
	return f.deleteFn(ctx, ids)
}

type fakeUserRepo struct {
	createFn           func(ctx context.Context, user *domain.User) (*domain.User, error)
	getActiveByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	getActiveByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (f *fakeUserRepo) Deactivate(ctx context.Context, id int64) error {
	return nil
}

func (f *fakeUserRepo) GetActiveByID(ctx context.Context, id int64) (*domain.User, error) {
	if f.getActiveByIDFn == nil {
		return nil, errFakeNotFound
	}
	return f.getActiveByIDFn(ctx, id)
}

func (f *fakeUserRepo) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getActiveByEmailFn == nil {
		return nil, errFakeNotFound
	}
	return f.getActiveByEmailFn(ctx, email)
}

func (f *fakeUserRepo) List(ctx context.Context, page *PageParams) ([]domain.User, int64, error) {
	return nil, 0, nil
}

type fakeOrderRepo struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.Order, error)
	updateStatusFn func(ctx context.Context, id int64, status string) (*domain.Order, error)
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	return order, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID int64, page *PageParams) ([]domain.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	if f.updateStatusFn == nil {
		order, err := f.getByIDFn(ctx, id)
		if err != nil {
			return nil, err
		}
		order.Status = status
		return order, nil
	}
	return f.updateStatusFn(ctx, id, status)
}

type fakePromotionRepo struct {
	createFn  func(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.Promotion, error)
}

func (f *fakePromotionRepo) Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	if f.createFn == nil {
		return promotion, nil
	}
	return f.createFn(ctx, promotion)
}

func (f *fakePromotionRepo) Update(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	return promotion, nil
}

func (f *fakePromotionRepo) Deactivate(ctx context.Context, id int64) error {
	return nil
}

func (f *fakePromotionRepo) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	if f.getByIDFn == nil {
		return nil, errFakeNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakePromotionRepo) List(ctx context.Context, page *PageParams) ([]domain.Promotion, int64, error) {
	return nil, 0, nil
}

func (f *fakePromotionRepo) AddProduct(ctx context.Context, promotionID, productID int64) error {
	return nil
}

func (f *fakePromotionRepo) RemoveProduct(ctx context.Context, promotionID, productID int64) error {
	return nil
}

func (f *fakePromotionRepo) ListProducts(ctx context.Context, promotionID int64) ([]int64, error) {
	return nil, nil
}

type fakeChatRepo struct {
	sessions map[string]*domain.ChatSession
	messages []domain.ChatMessage
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{sessions: make(map[string]*domain.ChatSession)}
}

func (f *fakeChatRepo) CreateSession(ctx context.Context, session *domain.ChatSession) (*domain.ChatSession, error) {
	session.ID = int64(len(f.sessions) + 1)
	f.sessions[session.SessionToken] = session
	return session, nil
}

func (f *fakeChatRepo) GetSessionByToken(ctx context.Context, token string) (*domain.ChatSession, error) {
	session, ok := f.sessions[token]
	if !ok {
		return nil, errFakeNotFound
	}
	return session, nil
}

func (f *fakeChatRepo) CloseSession(ctx context.Context, id int64) error {
	for _, session := range f.sessions {
		if session.ID == id {
			session.Active = false
			return nil
		}
	}
	return errFakeNotFound
}

func (f *fakeChatRepo) AppendMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	message.ID = int64(len(f.messages) + 1)
	f.messages = append(f.messages, *message)
	return message, nil
}

func (f *fakeChatRepo) ListMessages(ctx context.Context, sessionID int64, page *PageParams) ([]domain.ChatMessage, int64, error) {
	var out []domain.ChatMessage
	for _, m := range f.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, int64(len(out)), nil
}
