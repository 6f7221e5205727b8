package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/config"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/models"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service/mocks"
	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testJWTSecret = "test-secret"

type testMocks struct {
	incident  *mocks.MockIncidentService
	auth      *mocks.MockAuthService
	volunteer *mocks.MockVolunteerService
	aid       *mocks.MockAidService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		incident:  mocks.NewMockIncidentService(ctrl),
		auth:      mocks.NewMockAuthService(ctrl),
		volunteer: mocks.NewMockVolunteerService(ctrl),
		aid:       mocks.NewMockAidService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		JWTSecret:              testJWTSecret,
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(m.incident, m.auth, m.volunteer, m.aid, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// bearerHeader подписывает валидный токен для защищенных маршрутов
func bearerHeader(t *testing.T, userID uuid.UUID, email string) map[string]string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + signed}
}

func TestRegister_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := RegisterRequest{Email: "user@example.com", Password: "secret123"}

	m.auth.EXPECT().
		Register(gomock.Any(), reqBody.Email, reqBody.Password).
		Return(&models.User{ID: uuid.New(), Email: reqBody.Email}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"registered"`)
}

func TestRegister_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBufferString(`{"email": "user`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestRegister_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := RegisterRequest{Email: "not-an-email", Password: "secret123"}

	m.auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Email' failed on the 'email' tag")
}

func TestRegister_EmailTaken(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := RegisterRequest{Email: "user@example.com", Password: "secret123"}

	m.auth.EXPECT().
		Register(gomock.Any(), reqBody.Email, reqBody.Password).
		Return(nil, service.ErrEmailTaken).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "user@example.com", Password: "secret123"}

	m.auth.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return("signed-token", nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp TokenResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "user@example.com", Password: "wrong"}

	m.auth.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return("", service.ErrInvalidCredentials).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_Success(t *testing.T) {
	_, _, router := newTestHandler(t)
	userID := uuid.New()

	w := makeRequest(router, "GET", "/api/v1/auth/me", nil, bearerHeader(t, userID, "user@example.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"user@example.com"`)
}

func TestMe_MissingToken(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/auth/me", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestMe_InvalidToken(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/auth/me", nil, map[string]string{"Authorization": "Bearer not-a-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestListIncidentTypes_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incident.EXPECT().ListIncidentTypes().Return(models.IncidentTypes).Times(1)

	// Маршрут публичный - токен не нужен
	w := makeRequest(router, "GET", "/api/v1/incidents/types", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentTypesResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp.IncidentTypes, "Flooding")
}

func TestReportIncident_Success_NotConfirmed(t *testing.T) {
	_, m, router := newTestHandler(t)
	userID := uuid.New()
	reportID := uuid.New()
	reqBody := ReportIncidentRequest{Type: "Flooding", Address: "123 Main St"}

	m.incident.EXPECT().
		SubmitReport(gomock.Any(), userID, reqBody.Type, reqBody.Address).
		Return(&service.SubmitResult{
			Report: &models.Report{
				ID:        reportID,
				Address:   "123 Main St, Toronto",
				Latitude:  43.6532,
				Longitude: -79.3832,
			},
			Cluster: &models.IncidentCluster{ID: uuid.New(), ReportCount: 1, Confirmed: false},
		}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents/report", bytes.NewBuffer(bodyBytes), bearerHeader(t, userID, "user@example.com"))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ReportIncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "report accepted", resp.Message)
	assert.Equal(t, reportID, resp.ReportID)
	assert.False(t, resp.Confirmed)
	assert.Nil(t, resp.ConfirmedEntry)
}

func TestReportIncident_Success_Confirmed(t *testing.T) {
	_, m, router := newTestHandler(t)
	userID := uuid.New()
	clusterID := uuid.New()
	reqBody := ReportIncidentRequest{Type: "Wildfire", Address: "125 Main St"}
	lastReport := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	m.incident.EXPECT().
		SubmitReport(gomock.Any(), userID, reqBody.Type, reqBody.Address).
		Return(&service.SubmitResult{
			Report: &models.Report{ID: uuid.New(), Address: "125 Main St", Latitude: 43.65, Longitude: -79.38},
			Cluster: &models.IncidentCluster{
				ID:           clusterID,
				IncidentType: "Wildfire",
				Latitude:     43.65,
				Longitude:    -79.38,
				ReportCount:  3,
				Confirmed:    true,
				LastReportAt: lastReport,
			},
			NewlyConfirmed: true,
		}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents/report", bytes.NewBuffer(bodyBytes), bearerHeader(t, userID, "user@example.com"))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ReportIncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Confirmed)
	require.NotNil(t, resp.ConfirmedEntry)
	assert.Equal(t, clusterID, resp.ConfirmedEntry.IncidentID)
	assert.Equal(t, "Wildfire", resp.ConfirmedEntry.Incident)
	assert.Equal(t, 3, resp.ConfirmedEntry.ReportCount)
}

func TestReportIncident_Throttled(t *testing.T) {
	_, m, router := newTestHandler(t)
	userID := uuid.New()
	reqBody := ReportIncidentRequest{Type: "Flooding", Address: "123 Main St"}

	m.incident.EXPECT().
		SubmitReport(gomock.Any(), userID, reqBody.Type, reqBody.Address).
		Return(nil, service.ErrReportThrottled).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents/report", bytes.NewBuffer(bodyBytes), bearerHeader(t, userID, "user@example.com"))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "cooldown")
}

func TestReportIncident_InvalidType(t *testing.T) {
	_, m, router := newTestHandler(t)
	userID := uuid.New()
	reqBody := ReportIncidentRequest{Type: "Meteor Strike", Address: "123 Main St"}

	m.incident.EXPECT().
		SubmitReport(gomock.Any(), userID, reqBody.Type, reqBody.Address).
		Return(nil, service.ErrInvalidIncidentType).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents/report", bytes.NewBuffer(bodyBytes), bearerHeader(t, userID, "user@example.com"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportIncident_MissingToken(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{Type: "Flooding", Address: "123 Main St"}

	m.incident.EXPECT().SubmitReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents/report", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReportIncident_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{Type: "Flooding"} // Отсутствует Address

	m.incident.EXPECT().SubmitReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents/report", bytes.NewBuffer(bodyBytes), bearerHeader(t, uuid.New(), "user@example.com"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Address' failed on the 'required' tag")
}

func TestListConfirmed_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	clusterID := uuid.New()

	m.incident.EXPECT().
		ListConfirmed(gomock.Any()).
		Return(&service.ConfirmedFeed{
			Confirmed: []*models.IncidentCluster{
				{ID: clusterID, IncidentType: "Flooding", ReportCount: 3, Confirmed: true},
			},
			TotalReports: 9,
		}, nil).
		Times(1)

	// Публичная лента - токен не нужен
	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ConfirmedListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Confirmed, 1)
	assert.Equal(t, clusterID, resp.Confirmed[0].IncidentID)
	assert.Equal(t, 9, resp.Totals.Reports)
	assert.Equal(t, 1, resp.Totals.Confirmed)
}

func TestListConfirmed_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	serviceError := errors.New("failed to list confirmed incidents")

	m.incident.EXPECT().ListConfirmed(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetStats_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incident.EXPECT().
		GetStats(gomock.Any()).
		Return(&models.IncidentStats{ReportCount: 42, ConfirmedCount: 4, ReporterCount: 17}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil, bearerHeader(t, uuid.New(), "user@example.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 42, resp.ReportCount)
	assert.Equal(t, 4, resp.ConfirmedCount)
	assert.Equal(t, 17, resp.ReporterCount)
}

func TestRegisterVolunteer_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	userID := uuid.New()
	reqBody := RegisterVolunteerRequest{LegalName: "Jordan Lee", Location: "Toronto", Category: "Food Bank Volunteer"}

	m.volunteer.EXPECT().
		RegisterVolunteer(gomock.Any(), userID, "user@example.com", reqBody.LegalName, reqBody.Location, reqBody.Category).
		Return(&models.Volunteer{
			ID:        uuid.New(),
			UserID:    userID,
			Email:     "user@example.com",
			LegalName: reqBody.LegalName,
			Location:  reqBody.Location,
			Category:  reqBody.Category,
		}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/volunteers/register", bytes.NewBuffer(bodyBytes), bearerHeader(t, userID, "user@example.com"))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"volunteer registered"`)
}

func TestRegisterVolunteer_Duplicate(t *testing.T) {
	_, m, router := newTestHandler(t)
	userID := uuid.New()
	reqBody := RegisterVolunteerRequest{LegalName: "Jordan Lee", Location: "Toronto", Category: "Food Bank Volunteer"}

	m.volunteer.EXPECT().
		RegisterVolunteer(gomock.Any(), userID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrVolunteerExists).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/volunteers/register", bytes.NewBuffer(bodyBytes), bearerHeader(t, userID, "user@example.com"))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListVolunteers_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.volunteer.EXPECT().
		ListVolunteers(gomock.Any()).
		Return([]*models.Volunteer{
			{ID: uuid.New(), LegalName: "Jordan Lee", Category: "Food Bank Volunteer"},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/volunteers", nil, bearerHeader(t, uuid.New(), "user@example.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp VolunteersListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.Volunteers, 1)
}

func TestSubmitAidRequest_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	userID := uuid.New()
	reqBody := AidRequestRequest{
		Name:    "Jordan Lee",
		Contact: "555-0100",
		Address: "123 Main St",
		AidType: "Food",
		Urgency: "high",
	}

	m.aid.EXPECT().
		SubmitAidRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *models.AidRequest) error {
			assert.Equal(t, userID, request.UserID)
			assert.Equal(t, "high", request.Urgency)
			request.ID = uuid.New()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/aid/request", bytes.NewBuffer(bodyBytes), bearerHeader(t, userID, "user@example.com"))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"aid request submitted"`)
}

func TestSubmitAidRequest_InvalidUrgency(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := AidRequestRequest{
		Name:    "Jordan Lee",
		Contact: "555-0100",
		Address: "123 Main St",
		AidType: "Food",
		Urgency: "critical",
	}

	// Невалидная срочность отсекается валидатором до сервиса
	m.aid.EXPECT().SubmitAidRequest(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/aid/request", bytes.NewBuffer(bodyBytes), bearerHeader(t, uuid.New(), "user@example.com"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Urgency' failed on the 'oneof' tag")
}

func TestListAidRequests_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.aid.EXPECT().
		ListAidRequests(gomock.Any()).
		Return([]*models.AidRequest{
			{ID: uuid.New(), Urgency: "high"},
			{ID: uuid.New(), Urgency: "low"},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/aid/requests", nil, bearerHeader(t, uuid.New(), "user@example.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AidRequestsListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.Requests, 2)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
