package http

import (
	"net/http"
	"time"

	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type PromotionHandler struct {
	promotionUsecase usecase.PromotionUC
	logger           logger.Logger
}

func NewPromotionHandler(promotionUsecase usecase.PromotionUC, logger logger.Logger) *PromotionHandler {
	return &PromotionHandler{promotionUsecase: promotionUsecase, logger: logger}
}

// createPromotion
//
//	@Summary	Создание акции
//	@Tags		promotions
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		promotionRequest	true	"Данные акции"
//	@Success	201		{object}	PromotionResponse
//	@Failure	400		{object}	ErrorResponse	"Невалидная скидка или даты"
//	@Router		/promotions [post]
func (h *PromotionHandler) createPromotion(w http.ResponseWriter, r *http.Request) {
	req, err := decodePromotionRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	promotion, err := h.promotionUsecase.CreatePromotion(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewPromotionResponse(promotion))
}

func (h *PromotionHandler) updatePromotion(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := decodePromotionRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	promotion, err := h.promotionUsecase.UpdatePromotion(r.Context(), id, req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewPromotionResponse(promotion))
}

func (h *PromotionHandler) getPromotion(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	promotion, err := h.promotionUsecase.GetPromotion(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewPromotionResponse(promotion))
}

// listPromotions
//
//	@Summary	Список акций
//	@Tags		promotions
//	@Produce	json
//	@Success	200	{object}	usecase.Page[PromotionResponse]
//	@Router		/promotions [get]
func (h *PromotionHandler) listPromotions(w http.ResponseWriter, r *http.Request) {
	page, err := h.promotionUsecase.ListPromotions(r.Context(), parsePageParams(r))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, mapPage(page, NewPromotionResponse))
}

func (h *PromotionHandler) deactivatePromotion(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.promotionUsecase.DeactivatePromotion(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// addProduct
//
//	@Summary	Добавление товара в акцию
//	@Tags		promotions
//	@Security	BearerAuth
//	@Param		id			path	integer	true	"ID акции"
//	@Param		productID	path	integer	true	"ID товара"
//	@Success	204
//	@Router		/promotions/{id}/products/{productID} [post]
func (h *PromotionHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	promotionID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.promotionUsecase.AddProduct(r.Context(), promotionID, productID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

func (h *PromotionHandler) removeProduct(w http.ResponseWriter, r *http.Request) {
	promotionID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.promotionUsecase.RemoveProduct(r.Context(), promotionID, productID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// listProducts
//
//	@Summary	Товары акции
//	@Tags		promotions
//	@Produce	json
//	@Param		id	path		integer	true	"ID акции"
//	@Success	200	{array}		usecase.ProductResponse
//	@Router		/promotions/{id}/products [get]
func (h *PromotionHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	promotionID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	products, err := h.promotionUsecase.ListProducts(r.Context(), promotionID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

type promotionRequest struct {
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	StartDate          string          `json:"start_date"` // RFC 3339
	EndDate            string          `json:"end_date"`   // RFC 3339
}

func decodePromotionRequest(r *http.Request) (*usecase.CreatePromotionReq, error) {
	var body promotionRequest
	if err := decodeJSON(r, &body); err != nil {
		return nil, err
	}

	startDate, err := time.Parse(time.RFC3339, body.StartDate)
	if err != nil {
		return nil, e.Wrap("start_date", e.ErrStatusBadRequest)
	}
	endDate, err := time.Parse(time.RFC3339, body.EndDate)
	if err != nil {
		return nil, e.Wrap("end_date", e.ErrStatusBadRequest)
	}

	return &usecase.CreatePromotionReq{
		Title:              body.Title,
		Description:        body.Description,
		DiscountPercentage: body.DiscountPercentage,
		StartDate:          startDate,
		EndDate:            endDate,
	}, nil
}
