package usecase

import (
	"context"
	"testing"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendByProduct_ResortsByIndexRankAndExcludesSource(t *testing.T) {
	source := &domain.Product{ID: 7, UUID: "uuid-src", Name: "Laptop", Description: "thin and light"}

	var gotUUIDs []string
	var gotExclude *int64

	productRepo := &fakeProductRepo{
		getActiveByIDFn: func(_ context.Context, id int64) (*domain.Product, error) {
			require.Equal(t, int64(7), id)
			return source, nil
		},
		getActiveByUUIDsFn: func(_ context.Context, uuids []string, excludeID *int64) ([]ProductResponse, error) {
			gotUUIDs = uuids
			gotExclude = excludeID
			// выборка по множеству не сохраняет порядок
			return []ProductResponse{
				{ID: 3, UUID: "uuid-c"},
				{ID: 1, UUID: "uuid-a"},
				{ID: 2, UUID: "uuid-b"},
			}, nil
		},
	}

	embedder := &fakeEmbedder{
		embedFn: func(_ context.Context, text string) ([]float32, error) {
			assert.Equal(t, "Laptop thin and light", text)
			return []float32{0.1, 0.2}, nil
		},
	}

	embeddingRepo := &fakeEmbeddingRepo{
		queryFn: func(_ context.Context, req *VectorQueryReq) ([]domain.VectorMatch, error) {
			assert.Equal(t, 3, req.TopK)
			return []domain.VectorMatch{
				{ID: "uuid-a", Score: 0.97},
				{ID: "uuid-b", Score: 0.91},
				{ID: "uuid-c", Score: 0.85},
			}, nil
		},
	}

	uc := NewRecommendationUC(productRepo, embedder, embeddingRepo, logger.NewSlogLogger())

	got, err := uc.RecommendByProduct(context.Background(), &RecommendByProductReq{ProductID: 7, TopK: 3})
	require.NoError(t, err)

	require.NotNil(t, gotExclude)
	assert.Equal(t, int64(7), *gotExclude)
	assert.Equal(t, []string{"uuid-a", "uuid-b", "uuid-c"}, gotUUIDs)

	// порядок восстановлен по рангу индекса
	require.Len(t, got, 3)
	assert.Equal(t, "uuid-a", got[0].UUID)
	assert.Equal(t, "uuid-b", got[1].UUID)
	assert.Equal(t, "uuid-c", got[2].UUID)
}

func TestRecommendByProduct_InvalidTopK(t *testing.T) {
	productRepo := &fakeProductRepo{
		getActiveByIDFn: func(_ context.Context, _ int64) (*domain.Product, error) {
			t.Fatal("repository must not be called on invalid top_k")
			return nil, nil
		},
	}

	uc := NewRecommendationUC(productRepo, &fakeEmbedder{}, &fakeEmbeddingRepo{}, logger.NewSlogLogger())

	for _, topK := range []int{0, -5} {
		_, err := uc.RecommendByProduct(context.Background(), &RecommendByProductReq{ProductID: 1, TopK: topK})
		assert.ErrorIs(t, err, e.ErrTopKMustBePositive)
	}
}

func TestRecommendByProduct_StaleIndexEntriesDropped(t *testing.T) {
	productRepo := &fakeProductRepo{
		getActiveByIDFn: func(_ context.Context, _ int64) (*domain.Product, error) {
			return &domain.Product{ID: 1, UUID: "uuid-src", Name: "Phone"}, nil
		},
		getActiveByUUIDsFn: func(_ context.Context, uuids []string, _ *int64) ([]ProductResponse, error) {
			// uuid-stale остался в индексе, но товар деактивирован
			return []ProductResponse{{ID: 5, UUID: "uuid-live"}}, nil
		},
	}

	embedder := &fakeEmbedder{
		embedFn: func(_ context.Context, _ string) ([]float32, error) { return []float32{1}, nil },
	}
	embeddingRepo := &fakeEmbeddingRepo{
		queryFn: func(_ context.Context, _ *VectorQueryReq) ([]domain.VectorMatch, error) {
			return []domain.VectorMatch{
				{ID: "uuid-stale", Score: 0.99},
				{ID: "uuid-live", Score: 0.87},
			}, nil
		},
	}

	uc := NewRecommendationUC(productRepo, embedder, embeddingRepo, logger.NewSlogLogger())

	got, err := uc.RecommendByProduct(context.Background(), &RecommendByProductReq{ProductID: 1, TopK: 5})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "uuid-live", got[0].UUID)
}

func TestRecommendByProduct_ResultBoundedByTopK(t *testing.T) {
	productRepo := &fakeProductRepo{
		getActiveByIDFn: func(_ context.Context, _ int64) (*domain.Product, error) {
			return &domain.Product{ID: 1, UUID: "uuid-src", Name: "Tablet"}, nil
		},
		getActiveByUUIDsFn: func(_ context.Context, uuids []string, _ *int64) ([]ProductResponse, error) {
			products := make([]ProductResponse, 0, len(uuids))
			for i, id := range uuids {
				products = append(products, ProductResponse{ID: int64(i + 2), UUID: id})
			}
			return products, nil
		},
	}

	embedder := &fakeEmbedder{
		embedFn: func(_ context.Context, _ string) ([]float32, error) { return []float32{0.3}, nil },
	}
	embeddingRepo := &fakeEmbeddingRepo{
		queryFn: func(_ context.Context, _ *VectorQueryReq) ([]domain.VectorMatch, error) {
			// индекс вернул больше соседей, чем запрошено
			return []domain.VectorMatch{
				{ID: "uuid-a", Score: 0.95},
				{ID: "uuid-b", Score: 0.90},
				{ID: "uuid-c", Score: 0.85},
				{ID: "uuid-d", Score: 0.80},
				{ID: "uuid-e", Score: 0.75},
			}, nil
		},
	}

	uc := NewRecommendationUC(productRepo, embedder, embeddingRepo, logger.NewSlogLogger())

	got, err := uc.RecommendByProduct(context.Background(), &RecommendByProductReq{ProductID: 1, TopK: 2})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "uuid-a", got[0].UUID)
	assert.Equal(t, "uuid-b", got[1].UUID)
}

func TestRecommendByText_EmptyTextRejectedBeforeProviderCall(t *testing.T) {
	embedder := &fakeEmbedder{
		embedFn: func(_ context.Context, _ string) ([]float32, error) {
			t.Fatal("provider must not be called for empty text")
			return nil, nil
		},
	}

	uc := NewRecommendationUC(&fakeProductRepo{}, embedder, &fakeEmbeddingRepo{}, logger.NewSlogLogger())

	_, err := uc.RecommendByText(context.Background(), &RecommendByTextReq{Text: "   ", TopK: 3})
	assert.ErrorIs(t, err, e.ErrQueryTextRequired)
}

func TestRecommendByText_BrandFilterAndKeywordsForwarded(t *testing.T) {
	var gotReq *VectorQueryReq

	embedder := &fakeEmbedder{
		embedFn: func(_ context.Context, _ string) ([]float32, error) { return []float32{0.5}, nil },
	}
	embeddingRepo := &fakeEmbeddingRepo{
		queryFn: func(_ context.Context, req *VectorQueryReq) ([]domain.VectorMatch, error) {
			gotReq = req
			return nil, nil
		},
	}
	productRepo := &fakeProductRepo{
		getActiveByUUIDsFn: func(_ context.Context, _ []string, excludeID *int64) ([]ProductResponse, error) {
			assert.Nil(t, excludeID, "text search has no source product to exclude")
			return []ProductResponse{}, nil
		},
	}

	uc := NewRecommendationUC(productRepo, embedder, embeddingRepo, logger.NewSlogLogger())

	got, err := uc.RecommendByText(context.Background(), &RecommendByTextReq{
		Text:        "gaming laptop",
		TopK:        4,
		BrandFilter: "Asus",
		Keywords:    []string{"RTX", "OLED"},
	})
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NotNil(t, gotReq)
	assert.Equal(t, 4, gotReq.TopK)
	assert.Equal(t, []string{"RTX", "OLED"}, gotReq.Keywords)

	require.NotNil(t, gotReq.Filter)
	assert.Equal(t, domain.PayloadBrand, gotReq.Filter.Field)
	assert.Equal(t, domain.FilterEq, gotReq.Filter.Kind)
	assert.Equal(t, "Asus", gotReq.Filter.Eq)
}

func TestRecommendByText_ProviderFailureIsFatal(t *testing.T) {
	embedder := &fakeEmbedder{
		embedFn: func(_ context.Context, _ string) ([]float32, error) {
			return nil, e.ErrEmbeddingProvider
		},
	}

	uc := NewRecommendationUC(&fakeProductRepo{}, embedder, &fakeEmbeddingRepo{}, logger.NewSlogLogger())

	_, err := uc.RecommendByText(context.Background(), &RecommendByTextReq{Text: "q", TopK: 1})
	assert.ErrorIs(t, err, e.ErrEmbeddingProvider)
}
