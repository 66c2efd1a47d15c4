package http

import (
	"net/http"

	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
)

// OrderHandler обслуживает корзину и заказы текущего пользователя.
type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// getCart
//
//	@Summary	Активная корзина пользователя
//	@Tags		cart
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	CartResponse
//	@Router		/cart [get]
func (h *OrderHandler) getCart(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	cart, err := h.orderUsecase.GetCart(r.Context(), user.ID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(cart))
}

// addCartItem
//
//	@Summary	Добавление позиции в корзину
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		addCartItemRequest	true	"Товар и количество"
//	@Success	200		{object}	CartResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/cart/items [post]
func (h *OrderHandler) addCartItem(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	var body addCartItemRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	cart, err := h.orderUsecase.AddCartItem(r.Context(), &usecase.AddCartItemReq{
		UserID:    user.ID,
		ProductID: body.ProductID,
		Quantity:  body.Quantity,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(cart))
}

// removeCartItem
//
//	@Summary	Удаление позиции из корзины
//	@Tags		cart
//	@Security	BearerAuth
//	@Param		productID	path	integer	true	"ID товара"
//	@Success	204
//	@Router		/cart/items/{productID} [delete]
func (h *OrderHandler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.orderUsecase.RemoveCartItem(r.Context(), user.ID, productID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// checkout
//
//	@Summary		Оформление заказа из активной корзины
//	@Description	Резервирует остатки, фиксирует цены и очищает корзину в одной транзакции
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		checkoutRequest	true	"Валюта и способ оплаты"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse	"Корзина пуста или не хватает остатков"
//	@Router			/orders/checkout [post]
func (h *OrderHandler) checkout(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	var body checkoutRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.orderUsecase.Checkout(r.Context(), &usecase.CheckoutReq{
		UserID:        user.ID,
		Currency:      body.Currency,
		PaymentMethod: body.PaymentMethod,
	})
	if err != nil {
		h.logger.Warnf("checkout failed for user %d: %s", user.ID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewOrderResponse(order))
}

// getOrder
//
//	@Summary	Получение заказа
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		integer	true	"ID заказа"
//	@Success	200	{object}	OrderResponse
//	@Failure	403	{object}	ErrorResponse	"Чужой заказ"
//	@Router		/orders/{id} [get]
func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.orderUsecase.GetOrder(r.Context(), user, id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewOrderResponse(order))
}

// listOrders
//
//	@Summary	Заказы текущего пользователя
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	usecase.Page[OrderResponse]
//	@Router		/orders [get]
func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	page, err := h.orderUsecase.ListOrders(r.Context(), user.ID, parsePageParams(r))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, mapPage(page, NewOrderResponse))
}

// updateOrderStatus
//
//	@Summary	Смена статуса заказа (admin)
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		integer				true	"ID заказа"
//	@Param		request	body		orderStatusRequest	true	"Новый статус"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse	"Недопустимый переход"
//	@Router		/orders/{id}/status [patch]
func (h *OrderHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body orderStatusRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.orderUsecase.UpdateOrderStatus(r.Context(), id, body.Status)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewOrderResponse(order))
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

type checkoutRequest struct {
	Currency      string `json:"currency"`
	PaymentMethod string `json:"payment_method"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}
