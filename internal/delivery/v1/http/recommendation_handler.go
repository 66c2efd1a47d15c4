package http

import (
	"net/http"

	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
)

const defaultTopK = 5

type RecommendationHandler struct {
	recUsecase usecase.RecommendationUC
	logger     logger.Logger
}

func NewRecommendationHandler(recUsecase usecase.RecommendationUC, logger logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{recUsecase: recUsecase, logger: logger}
}

// recommendByProduct
//
//	@Summary		Товары, похожие на заданный
//	@Description	Векторный поиск ближайших соседей по embedding'у товара
//	@Tags			recommendations
//	@Produce		json
//	@Param			id			path		integer	true	"ID исходного товара"
//	@Param			top_k		query		integer	false	"Количество рекомендаций"
//	@Param			brand		query		string	false	"Нативный фильтр по бренду"
//	@Param			keyword		query		string	false	"Keyword-фильтр (можно несколько)"
//	@Success		200			{array}		usecase.ProductResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/products/{id}/recommendations [get]
func (h *RecommendationHandler) recommendByProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	req := &usecase.RecommendByProductReq{
		ProductID:   id,
		TopK:        queryTopK(r, defaultTopK),
		BrandFilter: r.URL.Query().Get("brand"),
		Keywords:    queryKeywords(r),
	}

	products, err := h.recUsecase.RecommendByProduct(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

// recommendByText
//
//	@Summary		Семантический поиск товаров по тексту
//	@Tags			recommendations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recommendByTextRequest	true	"Поисковый запрос"
//	@Success		200		{array}		usecase.ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/recommendations/search [post]
func (h *RecommendationHandler) recommendByText(w http.ResponseWriter, r *http.Request) {
	var body recommendByTextRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	topK := body.TopK
	if topK == 0 {
		topK = defaultTopK
	}

	products, err := h.recUsecase.RecommendByText(r.Context(), &usecase.RecommendByTextReq{
		Text:        body.Text,
		TopK:        topK,
		BrandFilter: body.Brand,
		Keywords:    body.Keywords,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

type recommendByTextRequest struct {
	Text     string   `json:"text"`
	TopK     int      `json:"top_k"`
	Brand    string   `json:"brand"`
	Keywords []string `json:"keywords"`
}
