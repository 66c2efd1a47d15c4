package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductUC(productRepo ProductRepository, brandRepo BrandRepository, categoryRepo CategoryRepository, warrantyRepo WarrantyRepository, cacheRepo CacheRepository) *ProductUseCase {
	return NewProductUC(
		productRepo,
		brandRepo,
		categoryRepo,
		warrantyRepo,
		nil,
		nil,
		nil,
		nil,
		nil,
		cacheRepo,
		logger.NewSlogLogger(),
	)
}

func TestCreateProduct_EmptyNameRejectedBeforeAnyIO(t *testing.T) {
	uc := newProductUC(nil, nil, nil, nil, nil)

	_, err := uc.CreateProduct(context.Background(), &CreateProductReq{Name: "   ", BrandID: 1})

	require.ErrorIs(t, err, e.ErrProductNameRequired)
}

func TestGetProduct_CacheHitSkipsDatabase(t *testing.T) {
	dbTouched := false
	productRepo := &fakeProductRepo{
		getActiveByIDFn: func(ctx context.Context, id int64) (*domain.Product, error) {
			dbTouched = true
			return nil, errFakeNotFound
		},
	}
	cacheRepo := &fakeCacheRepo{
		getProductsFn: func(ctx context.Context, ids []int64) (map[int64]ProductResponse, error) {
			require.Equal(t, []int64{42}, ids)
			return map[int64]ProductResponse{42: {ID: 42, Name: "ZenBook 14"}}, nil
		},
	}
	uc := newProductUC(productRepo, nil, nil, nil, cacheRepo)

	resp, err := uc.GetProduct(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "ZenBook 14", resp.Name)
	assert.False(t, dbTouched)
}

func TestGetProduct_CacheMissHydratesAndCachesInBackground(t *testing.T) {
	productRepo := &fakeProductRepo{
		getActiveByIDFn: func(ctx context.Context, id int64) (*domain.Product, error) {
			return &domain.Product{ID: 42, UUID: "uuid-42", BrandID: 3, Name: "ZenBook 14", Active: true}, nil
		},
	}
	brandRepo := &fakeBrandRepo{
		getActiveByIDFn: func(ctx context.Context, id int64) (*domain.Brand, error) {
			require.EqualValues(t, 3, id)
			return &domain.Brand{ID: 3, Name: "Asus", Active: true}, nil
		},
	}
	cachedCh := make(chan []ProductResponse, 1)
	cacheRepo := &fakeCacheRepo{
		getProductsFn: func(ctx context.Context, ids []int64) (map[int64]ProductResponse, error) {
			return map[int64]ProductResponse{}, nil
		},
		setProductsFn: func(ctx context.Context, products []ProductResponse) error {
			cachedCh <- products
			return nil
		},
	}
	uc := newProductUC(productRepo, brandRepo, &fakeCategoryRepo{}, &fakeWarrantyRepo{}, cacheRepo)

	resp, err := uc.GetProduct(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "Asus", resp.Brand)
	assert.Empty(t, resp.Category)

	select {
	case cached := <-cachedCh:
		require.Len(t, cached, 1)
		assert.Equal(t, resp.ID, cached[0].ID)
	case <-time.After(time.Second):
		t.Fatal("product was not cached in background")
	}
}

func TestGetProduct_ResolvesWarrantyName(t *testing.T) {
	warrantyID := int64(4)
	productRepo := &fakeProductRepo{
		getActiveByIDFn: func(ctx context.Context, id int64) (*domain.Product, error) {
			return &domain.Product{ID: 42, BrandID: 3, WarrantyID: &warrantyID, Name: "ZenBook 14", Active: true}, nil
		},
	}
	brandRepo := &fakeBrandRepo{
		getActiveByIDFn: func(ctx context.Context, id int64) (*domain.Brand, error) {
			return &domain.Brand{ID: 3, Name: "Asus", Active: true}, nil
		},
	}
	warrantyRepo := &fakeWarrantyRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Warranty, error) {
			require.EqualValues(t, 4, id)
			return &domain.Warranty{ID: 4, Name: "2 года официальной гарантии"}, nil
		},
	}
	cacheRepo := &fakeCacheRepo{
		getProductsFn: func(ctx context.Context, ids []int64) (map[int64]ProductResponse, error) {
			return map[int64]ProductResponse{}, nil
		},
	}
	uc := newProductUC(productRepo, brandRepo, &fakeCategoryRepo{}, warrantyRepo, cacheRepo)

	resp, err := uc.GetProduct(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "2 года официальной гарантии", resp.Warranty)
}

func TestGetProduct_UnknownCategoryIsFatal(t *testing.T) {
	categoryID := int64(9)
	productRepo := &fakeProductRepo{
		getActiveByIDFn: func(ctx context.Context, id int64) (*domain.Product, error) {
			return &domain.Product{ID: 42, BrandID: 3, CategoryID: &categoryID, Name: "ZenBook 14", Active: true}, nil
		},
	}
	brandRepo := &fakeBrandRepo{
		getActiveByIDFn: func(ctx context.Context, id int64) (*domain.Brand, error) {
			return &domain.Brand{ID: 3, Name: "Asus", Active: true}, nil
		},
	}
	cacheRepo := &fakeCacheRepo{
		getProductsFn: func(ctx context.Context, ids []int64) (map[int64]ProductResponse, error) {
			return map[int64]ProductResponse{}, nil
		},
	}
	uc := newProductUC(productRepo, brandRepo, &fakeCategoryRepo{}, &fakeWarrantyRepo{}, cacheRepo)

	_, err := uc.GetProduct(context.Background(), 42)

	require.ErrorIs(t, err, errFakeNotFound)
}

func TestSyncProductIndex_RepeatedSyncKeepsSinglePointPerProduct(t *testing.T) {
	points := map[string][]float32{}
	embeddingRepo := &fakeEmbeddingRepo{
		upsertFn: func(_ context.Context, vectors []domain.Embedding) error {
			for _, v := range vectors {
				points[v.ID] = v.Vector
			}
			return nil
		},
	}

	embedCalls := 0
	embedder := &fakeEmbedder{
		embedFn: func(_ context.Context, _ string) ([]float32, error) {
			embedCalls++
			return []float32{float32(embedCalls)}, nil
		},
	}

	uc := NewProductUC(nil, nil, nil, nil, nil, embedder, embeddingRepo, nil, nil, nil, logger.NewSlogLogger())
	product := &domain.Product{ID: 1, UUID: "uuid-p", Name: "Pixel 9", Description: "smartphone"}

	require.NoError(t, uc.syncProductIndex(context.Background(), product, "Google", "Смартфоны"))
	require.NoError(t, uc.syncProductIndex(context.Background(), product, "Google", "Смартфоны"))

	// повторная индексация перезаписывает точку по UUID, а не добавляет вторую
	require.Len(t, points, 1)
	assert.Equal(t, []float32{2}, points["uuid-p"])
}

func TestListProducts_NormalizesPageBeforeRepoCall(t *testing.T) {
	productRepo := &fakeProductRepo{
		listFn: func(ctx context.Context, req *ListProductsReq) ([]ProductResponse, int64, error) {
			require.EqualValues(t, 1, req.Page.Page)
			require.EqualValues(t, defaultPageSize, req.Page.PageSize)
			return []ProductResponse{{ID: 1}, {ID: 2}}, 12, nil
		},
	}
	uc := newProductUC(productRepo, nil, nil, nil, nil)

	page, err := uc.ListProducts(context.Background(), &ListProductsReq{Page: PageParams{Page: -3, PageSize: 0}})

	require.NoError(t, err)
	assert.EqualValues(t, 12, page.Total)
	assert.Len(t, page.Items, 2)
}
