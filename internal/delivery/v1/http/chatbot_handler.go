package http

import (
	"net/http"

	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// ChatbotHandler обслуживает сессии и журнал сообщений чат-бота.
// Сессии доступны и анонимным пользователям.
type ChatbotHandler struct {
	chatbotUsecase usecase.ChatbotUC
	logger         logger.Logger
}

func NewChatbotHandler(chatbotUsecase usecase.ChatbotUC, logger logger.Logger) *ChatbotHandler {
	return &ChatbotHandler{chatbotUsecase: chatbotUsecase, logger: logger}
}

// startSession
//
//	@Summary	Открытие сессии чат-бота
//	@Tags		chatbot
//	@Produce	json
//	@Success	201	{object}	ChatSessionResponse
//	@Router		/chat/sessions [post]
func (h *ChatbotHandler) startSession(w http.ResponseWriter, r *http.Request) {
	var userID *int64
	if user, err := userFromContext(r.Context()); err == nil {
		userID = &user.ID
	}

	session, err := h.chatbotUsecase.StartSession(r.Context(), userID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewChatSessionResponse(session))
}

// appendMessage
//
//	@Summary	Запись сообщения в журнал сессии
//	@Tags		chatbot
//	@Accept		json
//	@Produce	json
//	@Param		token	path		string				true	"Токен сессии"
//	@Param		request	body		chatMessageRequest	true	"Отправитель и текст"
//	@Success	201		{object}	ChatMessageResponse
//	@Failure	404		{object}	ErrorResponse	"Сессия не найдена или закрыта"
//	@Router		/chat/sessions/{token}/messages [post]
func (h *ChatbotHandler) appendMessage(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var body chatMessageRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	message, err := h.chatbotUsecase.AppendMessage(r.Context(), &usecase.AppendMessageReq{
		SessionToken: token,
		Sender:       body.Sender,
		Message:      body.Message,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewChatMessageResponse(message))
}

// listMessages
//
//	@Summary	История сообщений сессии
//	@Tags		chatbot
//	@Produce	json
//	@Param		token	path		string	true	"Токен сессии"
//	@Success	200		{object}	usecase.Page[ChatMessageResponse]
//	@Router		/chat/sessions/{token}/messages [get]
func (h *ChatbotHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	page, err := h.chatbotUsecase.ListMessages(r.Context(), token, parsePageParams(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, mapPage(page, NewChatMessageResponse))
}

// closeSession
//
//	@Summary	Закрытие сессии чат-бота
//	@Tags		chatbot
//	@Param		token	path	string	true	"Токен сессии"
//	@Success	204
//	@Router		/chat/sessions/{token} [delete]
func (h *ChatbotHandler) closeSession(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if err := h.chatbotUsecase.CloseSession(r.Context(), token); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

type chatMessageRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}
