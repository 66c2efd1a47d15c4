package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
)

// DefaultTopK — число рекомендаций по умолчанию.
const DefaultTopK = 3

// RecommendationUseCase отвечает на запросы «похожие на товар» и «похожие на текст».
// Состояния нет, каждый вызов самодостаточен: вектор запроса -> поиск соседей ->
// гидрация строк каталога с восстановлением порядка по рангу индекса.
type RecommendationUseCase struct {
	productRepo   ProductRepository
	embedder      EmbeddingProvider
	embeddingRepo EmbeddingRepository
	logger        logger.Logger
}

func NewRecommendationUC(
	productRepo ProductRepository,
	embedder EmbeddingProvider,
	embeddingRepo EmbeddingRepository,
	logger logger.Logger,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		productRepo:   productRepo,
		embedder:      embedder,
		embeddingRepo: embeddingRepo,
		logger:        logger,
	}
}

// RecommendByProduct возвращает товары, похожие на указанный. Собственный вектор
// товара обычно оказывается лучшим совпадением, поэтому товар исключается из выдачи.
func (r *RecommendationUseCase) RecommendByProduct(ctx context.Context, req *RecommendByProductReq) ([]ProductResponse, error) {
	const op = "RecommendationUseCase.RecommendByProduct"

	if err := validateTopK(req.TopK); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := r.productRepo.GetActiveByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	matches, err := r.queryIndex(ctx, product.EmbeddingText(), req.TopK, req.BrandFilter, req.Keywords)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return r.hydrate(ctx, matches, &product.ID, req.TopK)
}

// RecommendByText возвращает товары, похожие на произвольный текст запроса.
// Исходного товара нет, самоисключение не применяется.
func (r *RecommendationUseCase) RecommendByText(ctx context.Context, req *RecommendByTextReq) ([]ProductResponse, error) {
	const op = "RecommendationUseCase.RecommendByText"

	if err := validateTopK(req.TopK); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Пустой текст отклоняется до обращения к провайдеру.
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, e.Wrap(op, e.ErrQueryTextRequired)
	}

	matches, err := r.queryIndex(ctx, req.Text, req.TopK, req.BrandFilter, req.Keywords)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return r.hydrate(ctx, matches, nil, req.TopK)
}

// queryIndex векторизует текст и запрашивает ближайших соседей.
// Сбой провайдера или индекса фатален для запроса: сломанный индекс
// не маскируется под «нет рекомендаций».
func (r *RecommendationUseCase) queryIndex(ctx context.Context, text string, topK int, brandFilter string, keywords []string) ([]domain.VectorMatch, error) {
	vector, err := r.embedder.Embed(ctx, text)
	if err != nil {
		return nil, e.Wrap("embed query text", err)
	}

	var filter *domain.FieldFilter
	if brandFilter != "" {
		filter = domain.NewBrandEqFilter(brandFilter)
	}

	return r.embeddingRepo.Query(ctx, &VectorQueryReq{
		Vector:   vector,
		TopK:     topK,
		Filter:   filter,
		Keywords: keywords,
	})
}

// hydrate разрешает UUID совпадений в строки каталога. Выборка по множеству UUID
// не сохраняет порядок, поэтому результат пересортировывается по рангу индекса
// и обрезается до topK: размер выдачи ограничен запросом, а не индексом.
func (r *RecommendationUseCase) hydrate(ctx context.Context, matches []domain.VectorMatch, excludeID *int64, topK int) ([]ProductResponse, error) {
	const op = "RecommendationUseCase.hydrate"

	if len(matches) == 0 {
		return []ProductResponse{}, nil
	}

	rank := make(map[string]int, len(matches))
	uuids := make([]string, 0, len(matches))
	for i, match := range matches {
		if _, ok := rank[match.ID]; ok {
			continue
		}
		rank[match.ID] = i
		uuids = append(uuids, match.ID)
	}

	// Неактивные товары отфильтровываются здесь даже при живой записи в индексе.
	products, err := r.productRepo.GetActiveByUUIDs(ctx, uuids, excludeID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return rank[products[i].UUID] < rank[products[j].UUID]
	})

	if len(products) > topK {
		products = products[:topK]
	}

	return products, nil
}

func validateTopK(topK int) error {
	if topK <= 0 {
		return e.ErrTopKMustBePositive
	}

	return nil
}
