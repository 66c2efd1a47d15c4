package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AVTech-ve/ecommerce-backend/internal/cfg"
	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// TokenClaims — полезная нагрузка JWT-токена.
type TokenClaims struct {
	UserID    int64  `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// AuthUseCase реализует регистрацию, аутентификацию и управление пользователями.
type AuthUseCase struct {
	userRepo UserRepository
	cfg      *cfg.AuthCfg
	logger   logger.Logger
}

func NewAuthUC(userRepo UserRepository, cfg *cfg.AuthCfg, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger,
	}
}

// Register создаёт пользователя с bcrypt-хэшем пароля и ролью customer.
func (a *AuthUseCase) Register(ctx context.Context, req *RegisterUserReq) (*UserResponse, error) {
	const op = "AuthUseCase.Register"

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	if existing, err := a.userRepo.GetActiveByEmail(ctx, email); err == nil && existing != nil {
		return nil, e.Wrap(op, e.ErrEmailTaken)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := a.userRepo.Create(ctx, domain.NewUser(email, string(passwordHash), req.FirstName, req.LastName, domain.RoleCustomer))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewUserResponse(user), nil
}

// Login проверяет учётные данные и выпускает пару токенов.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*TokenPair, error) {
	const op = "AuthUseCase.Login"

	user, err := a.userRepo.GetActiveByEmail(ctx, strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		// Не раскрываем, существует ли пользователь
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	return a.issueTokens(user)
}

// Refresh выпускает новую пару токенов по действительному refresh-токену.
func (a *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	const op = "AuthUseCase.Refresh"

	claims, err := a.parseToken(refreshToken)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if claims.TokenType != tokenTypeRefresh {
		return nil, e.Wrap(op, e.ErrInvalidToken)
	}

	user, err := a.userRepo.GetActiveByID(ctx, claims.UserID)
	if err != nil {
		return nil, e.Wrap(op, e.ErrInvalidToken)
	}

	return a.issueTokens(user)
}

// Authenticate проверяет access-токен и возвращает активного пользователя.
func (a *AuthUseCase) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	const op = "AuthUseCase.Authenticate"

	claims, err := a.parseToken(accessToken)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if claims.TokenType != tokenTypeAccess {
		return nil, e.Wrap(op, e.ErrInvalidToken)
	}

	user, err := a.userRepo.GetActiveByID(ctx, claims.UserID)
	if err != nil {
		return nil, e.Wrap(op, e.ErrInvalidToken)
	}

	return user, nil
}

// GetUser возвращает пользователя по идентификатору.
func (a *AuthUseCase) GetUser(ctx context.Context, id int64) (*UserResponse, error) {
	const op = "AuthUseCase.GetUser"

	user, err := a.userRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewUserResponse(user), nil
}

// ListUsers возвращает страницу пользователей.
func (a *AuthUseCase) ListUsers(ctx context.Context, page *PageParams) (*Page[UserResponse], error) {
	const op = "AuthUseCase.ListUsers"

	page.Normalize()

	users, total, err := a.userRepo.List(ctx, page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, *NewUserResponse(&users[i]))
	}

	return NewPage(items, total, page), nil
}

// DeactivateUser мягко удаляет пользователя.
func (a *AuthUseCase) DeactivateUser(ctx context.Context, id int64) error {
	const op = "AuthUseCase.DeactivateUser"

	if err := a.userRepo.Deactivate(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (a *AuthUseCase) issueTokens(user *domain.User) (*TokenPair, error) {
	accessToken, err := a.signToken(user, tokenTypeAccess, a.cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := a.signToken(user, tokenTypeRefresh, a.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(a.cfg.AccessTokenTTL.Seconds()),
	}, nil
}

func (a *AuthUseCase) signToken(user *domain.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := &TokenClaims{
		UserID:    user.ID,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.cfg.SecretKey))
}

func (a *AuthUseCase) parseToken(tokenStr string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, e.ErrInvalidToken
		}
		return []byte(a.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, e.ErrTokenExpired
		}
		return nil, e.ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, e.ErrInvalidToken
	}

	return claims, nil
}
