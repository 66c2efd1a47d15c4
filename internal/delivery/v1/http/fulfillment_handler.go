package http

import (
	"net/http"

	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// FulfillmentHandler обслуживает платежи, доставки и отзывы по заказам.
type FulfillmentHandler struct {
	fulfillmentUsecase usecase.FulfillmentUC
	logger             logger.Logger
}

func NewFulfillmentHandler(fulfillmentUsecase usecase.FulfillmentUC, logger logger.Logger) *FulfillmentHandler {
	return &FulfillmentHandler{fulfillmentUsecase: fulfillmentUsecase, logger: logger}
}

// createPayment
//
//	@Summary		Оплата заказа
//	@Description	Регистрирует платёж и переводит заказ в статус paid
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		integer			true	"ID заказа"
//	@Param			request	body		paymentRequest	true	"Сумма и способ оплаты"
//	@Success		201		{object}	PaymentResponse
//	@Failure		400		{object}	ErrorResponse	"Сумма не совпадает с заказом"
//	@Router			/orders/{id}/payment [post]
func (h *FulfillmentHandler) createPayment(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	orderID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body paymentRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	payment, err := h.fulfillmentUsecase.CreatePayment(r.Context(), &usecase.CreatePaymentReq{
		OrderID: orderID,
		UserID:  user.ID,
		Amount:  body.Amount,
		Method:  body.Method,
	})
	if err != nil {
		h.logger.Warnf("payment failed for order %d: %s", orderID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewPaymentResponse(payment))
}

func (h *FulfillmentHandler) getPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	payment, err := h.fulfillmentUsecase.GetPayment(r.Context(), orderID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewPaymentResponse(payment))
}

// createDelivery
//
//	@Summary	Создание доставки оплаченного заказа
//	@Tags		deliveries
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		integer			true	"ID заказа"
//	@Param		request	body		deliveryRequest	true	"Адрес доставки"
//	@Success	201		{object}	DeliveryResponse
//	@Router		/orders/{id}/delivery [post]
func (h *FulfillmentHandler) createDelivery(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body deliveryRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	delivery, err := h.fulfillmentUsecase.CreateDelivery(r.Context(), &usecase.CreateDeliveryReq{
		OrderID:          orderID,
		Address:          body.Address,
		EstimatedArrival: body.EstimatedArrival,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewDeliveryResponse(delivery))
}

func (h *FulfillmentHandler) getDelivery(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	delivery, err := h.fulfillmentUsecase.GetDelivery(r.Context(), orderID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewDeliveryResponse(delivery))
}

// updateDeliveryStatus
//
//	@Summary		Смена статуса доставки (admin)
//	@Description	При статусе delivered заказ также переводится в delivered
//	@Tags			deliveries
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		integer					true	"ID заказа"
//	@Param			request	body		deliveryStatusRequest	true	"Статус и трекинг"
//	@Success		200		{object}	DeliveryResponse
//	@Router			/orders/{id}/delivery/status [patch]
func (h *FulfillmentHandler) updateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body deliveryStatusRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	delivery, err := h.fulfillmentUsecase.UpdateDeliveryStatus(r.Context(), orderID, body.Status, body.TrackingInfo)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewDeliveryResponse(delivery))
}

// createFeedback
//
//	@Summary	Отзыв по заказу
//	@Tags		feedback
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		integer			true	"ID заказа"
//	@Param		request	body		feedbackRequest	true	"Оценка и комментарий"
//	@Success	201		{object}	FeedbackResponse
//	@Failure	409		{object}	ErrorResponse	"Отзыв уже оставлен"
//	@Router		/orders/{id}/feedback [post]
func (h *FulfillmentHandler) createFeedback(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	orderID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body feedbackRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	feedback, err := h.fulfillmentUsecase.CreateFeedback(r.Context(), &usecase.CreateFeedbackReq{
		OrderID: orderID,
		UserID:  user.ID,
		Rating:  body.Rating,
		Comment: body.Comment,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewFeedbackResponse(feedback))
}

func (h *FulfillmentHandler) listFeedback(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	feedback, err := h.fulfillmentUsecase.ListFeedback(r.Context(), orderID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewFeedbackResponses(feedback))
}

func (h *FulfillmentHandler) deleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "feedbackID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.fulfillmentUsecase.DeleteFeedback(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

type paymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
}

type deliveryRequest struct {
	Address          string `json:"address"`
	EstimatedArrival string `json:"estimated_arrival"`
}

type deliveryStatusRequest struct {
	Status       string `json:"status"`
	TrackingInfo string `json:"tracking_info"`
}

type feedbackRequest struct {
	Rating  int32  `json:"rating"`
	Comment string `json:"comment"`
}
