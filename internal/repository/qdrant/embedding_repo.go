package qdrant

import (
	"context"
	"errors"

	"github.com/AVTech-ve/ecommerce-backend/internal/cfg"
	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/qdrant/go-client/qdrant"
)

// EmbeddingRepo репозиторий для работы с embedding-векторами в Qdrant
type EmbeddingRepo struct {
	client *qdrant.Client
	cfg    *cfg.QdrantCfg
}

func NewEmbeddingRepo(client *qdrant.Client, cfg *cfg.QdrantCfg) *EmbeddingRepo {
	return &EmbeddingRepo{
		client: client,
		cfg:    cfg,
	}
}

// Upsert сохраняет или обновляет embedding-векторы в коллекции Qdrant.
// Повторный upsert по тому же UUID перезаписывает вектор и payload целиком.
func (q *EmbeddingRepo) Upsert(ctx context.Context, vectors []domain.Embedding) error {
	reqVectors := make([]*qdrant.PointStruct, 0, len(vectors))
	for _, vector := range vectors {
		reqVectors = append(reqVectors, &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(vector.ID),
			Vectors: qdrant.NewVectors(vector.Vector...),
			Payload: qdrant.NewValueMap(toValueMap(vector.Payload)),
		})
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Points:         reqVectors,
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrVectorIndex, err))
	}

	return nil
}

// Query возвращает до TopK ближайших векторов, лучшие первыми. Нативный
// фильтр по payload применяется индексом до усечения выдачи, keyword-фильтр
// выполняется на клиенте и может вернуть меньше TopK записей.
func (q *EmbeddingRepo) Query(ctx context.Context, req *usecase.VectorQueryReq) ([]domain.VectorMatch, error) {
	query := &qdrant.QueryPoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Query:          qdrant.NewQuery(req.Vector...),
		Limit:          qdrant.PtrOf(uint64(req.TopK)),
		WithPayload:    qdrant.NewWithPayload(true),
	}

	if req.Filter != nil {
		query.Filter = &qdrant.Filter{
			Must: []*qdrant.Condition{toCondition(req.Filter)},
		}
	}

	points, err := q.client.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrVectorIndex, err))
	}

	matches := make([]domain.VectorMatch, 0, len(points))
	for _, point := range points {
		matches = append(matches, domain.VectorMatch{
			ID:      point.GetId().GetUuid(),
			Score:   point.GetScore(),
			Payload: fromValueMap(point.GetPayload()),
		})
	}

	return domain.FilterMatchesByKeywords(matches, req.Keywords), nil
}

// Delete удаляет векторы по идентификаторам. Отсутствующие ID Qdrant
// игнорирует, поэтому повторное удаление не является ошибкой.
func (q *EmbeddingRepo) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	pointIDs := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		pointIDs = append(pointIDs, qdrant.NewIDUUID(id))
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Points:         qdrant.NewPointsSelector(pointIDs...),
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrVectorIndex, err))
	}

	return nil
}

func toCondition(filter *domain.FieldFilter) *qdrant.Condition {
	if filter.Kind == domain.FilterIn {
		return qdrant.NewMatchKeywords(filter.Field, filter.In...)
	}

	return qdrant.NewMatch(filter.Field, filter.Eq)
}

func toValueMap(payload domain.Payload) map[string]any {
	values := make(map[string]any, len(payload))
	for k, v := range payload {
		values[k] = v
	}

	return values
}

func fromValueMap(values map[string]*qdrant.Value) domain.Payload {
	payload := make(domain.Payload, len(values))
	for k, v := range values {
		payload[k] = v.GetStringValue()
	}

	return payload
}
