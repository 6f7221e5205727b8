package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/config"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/models"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestAuthService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAuthService(t *testing.T) (service.AuthService, *mocks.MockUserRepository, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTTTL:    8 * time.Hour,
	}

	svc := service.NewAuthService(repoMock, logger, cfg, clock)
	return svc, repoMock, clock
}

func TestRegister_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Do(func(_ context.Context, user *models.User) {
			assert.Equal(t, "user@example.com", user.Email)
			assert.NotEqual(t, uuid.Nil, user.ID)
			// Хэш должен соответствовать исходному паролю
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		}).Return(nil).Times(1)

	// Действие: email нормализуется к нижнему регистру
	user, err := svc.Register(ctx, "  User@Example.com ", "secret123")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestRegister_InvalidEmail(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	user, err := svc.Register(ctx, "not-an-email", "secret123")

	// Проверки
	require.ErrorIs(t, err, service.ErrInvalidEmail)
	assert.Nil(t, user)
}

func TestRegister_PasswordTooShort(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	user, err := svc.Register(ctx, "user@example.com", "12345")

	// Проверки
	require.ErrorIs(t, err, service.ErrPasswordTooShort)
	assert.Nil(t, user)
}

func TestRegister_EmailTaken(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(service.ErrEmailTaken).
		Times(1)

	// Действие
	user, err := svc.Register(ctx, "user@example.com", "secret123")

	// Проверки
	require.ErrorIs(t, err, service.ErrEmailTaken)
	assert.Nil(t, user)
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, clock := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	existing := &models.User{
		ID:           userID,
		Email:        "user@example.com",
		PasswordHash: string(hash),
	}

	// Ожидания
	repoMock.EXPECT().GetUserByEmail(ctx, "user@example.com").Return(existing, nil).Times(1)

	// Действие
	token, err := svc.Login(ctx, "User@Example.com", "secret123")

	// Проверки
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(clock.Now))
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "user@example.com", claims["email"])
	assert.Equal(t, "bridgeaid-api", claims["iss"])
	assert.Equal(t, float64(clock.Now().Add(8*time.Hour).Unix()), claims["exp"])
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания: пользователь не найден (nil, nil)
	repoMock.EXPECT().GetUserByEmail(ctx, "ghost@example.com").Return(nil, nil).Times(1)

	// Действие
	token, err := svc.Login(ctx, "ghost@example.com", "secret123")

	// Проверки
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	existing := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: string(hash),
	}

	// Ожидания
	repoMock.EXPECT().GetUserByEmail(ctx, "user@example.com").Return(existing, nil).Times(1)

	// Действие
	token, err := svc.Login(ctx, "user@example.com", "wrong-password")

	// Проверки
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_RepositoryError(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("connection refused")

	// Ожидания
	repoMock.EXPECT().GetUserByEmail(ctx, "user@example.com").Return(nil, dbError).Times(1)

	// Действие
	token, err := svc.Login(ctx, "user@example.com", "secret123")

	// Проверки
	require.Error(t, err)
	assert.Empty(t, token)
	assert.ErrorContains(t, err, "could not get user")
}

func TestGetUser_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &models.User{ID: userID, Email: "user@example.com"}

	// Ожидания
	repoMock.EXPECT().GetUserByID(ctx, userID).Return(existing, nil).Times(1)

	// Действие
	user, err := svc.GetUser(ctx, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, existing, user)
}

func TestGetUser_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetUserByID(ctx, userID).Return(nil, nil).Times(1)

	// Действие
	user, err := svc.GetUser(ctx, userID)

	// Проверки
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Nil(t, user)
}
