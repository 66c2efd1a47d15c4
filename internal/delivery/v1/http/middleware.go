package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
)

type ctxKey int

const userCtxKey ctxKey = iota

// AuthMiddleware проверяет Bearer-токен и кладёт пользователя в контекст запроса.
type AuthMiddleware struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthMiddleware(authUsecase usecase.AuthUC, logger logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase, logger: logger}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			WriteError(w, err)
			return
		}

		user, err := m.authUsecase.Authenticate(r.Context(), token)
		if err != nil {
			m.logger.Warnf("authentication failed: %s", err.Error())
			WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithUser(r.Context(), user)))
	})
}

// RequireAdmin пропускает только пользователей с ролью admin.
// Должен стоять после Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := userFromContext(r.Context())
		if err != nil || !user.IsAdmin() {
			WriteError(w, e.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// OptionalAuth кладёт пользователя в контекст, если токен есть и валиден,
// но не отклоняет анонимные запросы.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.authUsecase.Authenticate(r.Context(), token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithUser(r.Context(), user)))
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", e.ErrInvalidToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", e.ErrInvalidToken
	}
	return parts[1], nil
}

func contextWithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

func userFromContext(ctx context.Context) (*domain.User, error) {
	user, ok := ctx.Value(userCtxKey).(*domain.User)
	if !ok || user == nil {
		return nil, e.ErrInvalidToken
	}
	return user, nil
}
