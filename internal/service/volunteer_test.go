package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/models"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestVolunteerService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestVolunteerService(t *testing.T) (service.VolunteerService, *mocks.MockVolunteerRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockVolunteerRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return service.NewVolunteerService(repoMock, logger), repoMock
}

func TestRegisterVolunteer_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestVolunteerService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		CreateVolunteer(ctx, gomock.Any()).
		Do(func(_ context.Context, volunteer *models.Volunteer) {
			assert.Equal(t, userID, volunteer.UserID)
			assert.Equal(t, "Jordan Lee", volunteer.LegalName)
			assert.Equal(t, "Food Bank Volunteer", volunteer.Category)
		}).Return(nil).Times(1)

	// Действие: имя и локация приходят с лишними пробелами
	volunteer, err := svc.RegisterVolunteer(ctx, userID, "jordan@example.com", " Jordan Lee ", " Toronto ", "Food Bank Volunteer")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Toronto", volunteer.Location)
	assert.NotEqual(t, uuid.Nil, volunteer.ID)
}

func TestRegisterVolunteer_InvalidCategory(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestVolunteerService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().CreateVolunteer(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	volunteer, err := svc.RegisterVolunteer(ctx, uuid.New(), "jordan@example.com", "Jordan Lee", "Toronto", "Astronaut")

	// Проверки
	require.ErrorIs(t, err, service.ErrInvalidVolunteerCategory)
	assert.Nil(t, volunteer)
}

func TestRegisterVolunteer_Duplicate(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestVolunteerService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		CreateVolunteer(ctx, gomock.Any()).
		Return(service.ErrVolunteerExists).
		Times(1)

	// Действие
	volunteer, err := svc.RegisterVolunteer(ctx, uuid.New(), "jordan@example.com", "Jordan Lee", "Toronto", "Shelter Volunteer")

	// Проверки
	require.ErrorIs(t, err, service.ErrVolunteerExists)
	assert.Nil(t, volunteer)
}

func TestListVolunteers_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestVolunteerService(t)
	ctx := context.Background()
	expected := []*models.Volunteer{
		{ID: uuid.New(), LegalName: "Jordan Lee", Category: "Food Bank Volunteer"},
		{ID: uuid.New(), LegalName: "Sam Okafor", Category: "Disaster Relief Volunteer"},
	}

	// Ожидания
	repoMock.EXPECT().ListVolunteers(ctx).Return(expected, nil).Times(1)

	// Действие
	volunteers, err := svc.ListVolunteers(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, volunteers)
}

func TestListVolunteers_RepositoryError(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestVolunteerService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("connection refused")

	// Ожидания
	repoMock.EXPECT().ListVolunteers(ctx).Return(nil, dbError).Times(1)

	// Действие
	volunteers, err := svc.ListVolunteers(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, volunteers)
	assert.ErrorContains(t, err, "could not list volunteers")
}
