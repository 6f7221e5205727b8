package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse DTO с выданным JWT
// @Description DTO с выданным JWT
type TokenResponse struct {
	Token string `json:"token"`
}

// ReportIncidentRequest DTO для сообщения об инциденте
// @Description DTO для сообщения об инциденте
type ReportIncidentRequest struct {
	Type    string `json:"type" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// ConfirmedEntryResponse DTO подтвержденного кластера для карты
// @Description DTO подтвержденного кластера для карты
type ConfirmedEntryResponse struct {
	IncidentID  uuid.UUID `json:"incident_id"`
	Incident    string    `json:"incident"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	ReportCount int       `json:"report_count"`
	Timestamp   time.Time `json:"timestamp"`
}

// ReportIncidentResponse DTO для ответа на принятое сообщение
// @Description DTO для ответа на принятое сообщение
type ReportIncidentResponse struct {
	Message        string                  `json:"message"`
	ReportID       uuid.UUID               `json:"report_id"`
	Address        string                  `json:"address"`
	Lat            float64                 `json:"lat"`
	Lng            float64                 `json:"lng"`
	Confirmed      bool                    `json:"confirmed"`
	ConfirmedEntry *ConfirmedEntryResponse `json:"confirmed_entry,omitempty"`
}

// TotalsResponse DTO с итогами ленты
// @Description DTO с итогами ленты
type TotalsResponse struct {
	Reports   int `json:"reports"`
	Confirmed int `json:"confirmed"`
}

// ConfirmedListResponse DTO публичной ленты подтвержденных инцидентов
// @Description DTO публичной ленты подтвержденных инцидентов
type ConfirmedListResponse struct {
	Confirmed []*ConfirmedEntryResponse `json:"confirmed"`
	Totals    TotalsResponse            `json:"totals"`
}

// IncidentTypesResponse DTO со списком типов инцидентов
// @Description DTO со списком типов инцидентов
type IncidentTypesResponse struct {
	IncidentTypes []string `json:"incident_types"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	ReportCount    int `json:"report_count"`
	ConfirmedCount int `json:"confirmed_count"`
	ReporterCount  int `json:"reporter_count"`
}

// RegisterVolunteerRequest DTO для регистрации волонтера
// @Description DTO для регистрации волонтера
type RegisterVolunteerRequest struct {
	LegalName string `json:"legal_name" validate:"required,min=2,max=255"`
	Location  string `json:"location" validate:"required"`
	Category  string `json:"category" validate:"required"`
}

// VolunteerResponse DTO волонтера
// @Description DTO волонтера
type VolunteerResponse struct {
	Email     string `json:"email"`
	LegalName string `json:"legal_name"`
	Location  string `json:"location"`
	Category  string `json:"category"`
}

// VolunteersListResponse DTO списка волонтеров
// @Description DTO списка волонтеров
type VolunteersListResponse struct {
	Volunteers []*VolunteerResponse `json:"volunteers"`
}

// AidRequestRequest DTO для запроса помощи
// @Description DTO для запроса помощи
type AidRequestRequest struct {
	Name          string `json:"name" validate:"required"`
	Contact       string `json:"contact" validate:"required"`
	Address       string `json:"address" validate:"required"`
	AidType       string `json:"aid_type" validate:"required"`
	Description   string `json:"description,omitempty"`
	Urgency       string `json:"urgency,omitempty" validate:"omitempty,oneof=low medium high"`
	HouseholdSize int    `json:"household_size,omitempty" validate:"omitempty,gte=1"`
}

// AidRequestResponse DTO запроса помощи
// @Description DTO запроса помощи
type AidRequestResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Contact       string    `json:"contact"`
	Address       string    `json:"address"`
	AidType       string    `json:"aid_type"`
	Description   string    `json:"description,omitempty"`
	Urgency       string    `json:"urgency"`
	HouseholdSize int       `json:"household_size,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AidRequestsListResponse DTO списка запросов помощи
// @Description DTO списка запросов помощи
type AidRequestsListResponse struct {
	Requests []*AidRequestResponse `json:"requests"`
}
