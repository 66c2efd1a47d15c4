package http

import (
	"net/http"

	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

// register
//
//	@Summary	Регистрация пользователя
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		registerRequest	true	"Данные регистрации"
//	@Success	201		{object}	usecase.UserResponse
//	@Failure	409		{object}	ErrorResponse	"Email уже занят"
//	@Router		/auth/register [post]
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &usecase.RegisterUserReq{
		Email:     body.Email,
		Password:  body.Password,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, user)
}

// login
//
//	@Summary	Вход по email и паролю
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		loginRequest	true	"Учетные данные"
//	@Success	200		{object}	usecase.TokenPair
//	@Failure	401		{object}	ErrorResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &usecase.LoginReq{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		h.logger.Warnf("login failed for %s: %s", body.Email, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, tokens)
}

// refresh
//
//	@Summary	Обновление пары токенов по refresh-токену
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		refreshRequest	true	"Refresh-токен"
//	@Success	200		{object}	usecase.TokenPair
//	@Failure	401		{object}	ErrorResponse
//	@Router		/auth/refresh [post]
func (h *AuthHandler) refresh(w http.ResponseWriter, r *http.Request) {
	var body refreshRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	tokens, err := h.authUsecase.Refresh(r.Context(), body.RefreshToken)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, tokens)
}

// me
//
//	@Summary	Профиль текущего пользователя
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	usecase.UserResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/users/me [get]
func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, usecase.NewUserResponse(user))
}

// getUser
//
//	@Summary	Получение пользователя по ID
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		integer	true	"ID пользователя"
//	@Success	200	{object}	usecase.UserResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/users/{id} [get]
func (h *AuthHandler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.authUsecase.GetUser(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, user)
}

// listUsers
//
//	@Summary	Список пользователей
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page		query		integer	false	"Номер страницы"
//	@Param		page_size	query		integer	false	"Размер страницы"
//	@Success	200			{object}	usecase.Page[usecase.UserResponse]
//	@Router		/users [get]
func (h *AuthHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.authUsecase.ListUsers(r.Context(), parsePageParams(r))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, page)
}

// deactivateUser
//
//	@Summary	Деактивация пользователя
//	@Tags		users
//	@Security	BearerAuth
//	@Param		id	path	integer	true	"ID пользователя"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/users/{id} [delete]
func (h *AuthHandler) deactivateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.authUsecase.DeactivateUser(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
