package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/AVTech-ve/ecommerce-backend/internal/cfg"
	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthCfg() *cfg.AuthCfg {
	return &cfg.AuthCfg{
		SecretKey:       "test-secret",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_NormalizesEmailAndHashesPassword(t *testing.T) {
	var created *domain.User

	userRepo := &fakeUserRepo{
		createFn: func(_ context.Context, user *domain.User) (*domain.User, error) {
			user.ID = 1
			created = user
			return user, nil
		},
	}

	uc := NewAuthUC(userRepo, testAuthCfg(), logger.NewSlogLogger())

	got, err := uc.Register(context.Background(), &RegisterUserReq{
		Email:    "  Alice@Example.COM ",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, domain.RoleCustomer, got.Role)
	assert.True(t, got.Active)

	require.NotNil(t, created)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret")))
}

func TestRegister_EmailTaken(t *testing.T) {
	userRepo := &fakeUserRepo{
		getActiveByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		},
	}

	uc := NewAuthUC(userRepo, testAuthCfg(), logger.NewSlogLogger())

	_, err := uc.Register(context.Background(), &RegisterUserReq{Email: "taken@example.com", Password: "pw"})
	assert.ErrorIs(t, err, e.ErrEmailTaken)
}

func TestRegister_MissingFields(t *testing.T) {
	uc := NewAuthUC(&fakeUserRepo{}, testAuthCfg(), logger.NewSlogLogger())

	_, err := uc.Register(context.Background(), &RegisterUserReq{Email: "", Password: "pw"})
	assert.ErrorIs(t, err, e.ErrMissingFields)

	_, err = uc.Register(context.Background(), &RegisterUserReq{Email: "a@b.c", Password: ""})
	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestLogin_TokenRoundTrip(t *testing.T) {
	user := &domain.User{
		ID:           42,
		Email:        "bob@example.com",
		PasswordHash: hashPassword(t, "valid-password"),
		Role:         domain.RoleCustomer,
		Active:       true,
	}

	userRepo := &fakeUserRepo{
		getActiveByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if email != user.Email {
				return nil, errFakeNotFound
			}
			return user, nil
		},
		getActiveByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
			if id != user.ID {
				return nil, errFakeNotFound
			}
			return user, nil
		},
	}

	uc := NewAuthUC(userRepo, testAuthCfg(), logger.NewSlogLogger())

	pair, err := uc.Login(context.Background(), &LoginReq{Email: "Bob@Example.com", Password: "valid-password"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)
	assert.Equal(t, int64((30 * time.Minute).Seconds()), pair.ExpiresIn)

	// access-токен аутентифицирует
	got, err := uc.Authenticate(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// refresh-токен не проходит как access
	_, err = uc.Authenticate(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, e.ErrInvalidToken)

	// refresh выпускает новую пару
	newPair, err := uc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, newPair.AccessToken)

	// access-токен не годится для refresh
	_, err = uc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, e.ErrInvalidToken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	user := &domain.User{
		ID:           1,
		Email:        "bob@example.com",
		PasswordHash: hashPassword(t, "right"),
	}

	userRepo := &fakeUserRepo{
		getActiveByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if email != user.Email {
				return nil, errFakeNotFound
			}
			return user, nil
		},
	}

	uc := NewAuthUC(userRepo, testAuthCfg(), logger.NewSlogLogger())

	// неизвестный email и неверный пароль неразличимы для клиента
	_, err := uc.Login(context.Background(), &LoginReq{Email: "nobody@example.com", Password: "right"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), &LoginReq{Email: "bob@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	user := &domain.User{ID: 9, Email: "old@example.com", Role: domain.RoleCustomer}

	expiredCfg := &cfg.AuthCfg{
		SecretKey:       "test-secret",
		AccessTokenTTL:  -time.Minute,
		RefreshTokenTTL: -time.Minute,
	}

	uc := NewAuthUC(&fakeUserRepo{}, expiredCfg, logger.NewSlogLogger())

	pair, err := uc.issueTokens(user)
	require.NoError(t, err)

	_, err = uc.Authenticate(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, e.ErrTokenExpired)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	uc := NewAuthUC(&fakeUserRepo{}, testAuthCfg(), logger.NewSlogLogger())

	_, err := uc.Authenticate(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, e.ErrInvalidToken)
}
