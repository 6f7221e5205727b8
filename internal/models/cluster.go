package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentCluster - группа сообщений, описывающих одно реальное событие.
// Центроид фиксируется координатами первого сообщения; принадлежность
// проверяется по радиусу CLUSTER_RADIUS_METERS от центроида.
type IncidentCluster struct {
	ID           uuid.UUID `json:"cluster_id"`
	IncidentType string    `json:"incident_type"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	ReportCount  int       `json:"report_count"` // количество уникальных репортеров
	Confirmed    bool      `json:"confirmed"`
	CreatedAt    time.Time `json:"created_at"`
	LastReportAt time.Time `json:"last_report_at"`
}

// ClusterCandidate - кластер-кандидат из поиска по близости,
// с расстоянием от точки нового сообщения до центроида
type ClusterCandidate struct {
	Cluster        *IncidentCluster
	DistanceMeters float64
}

// IncidentStats - агрегированная статистика для админского эндпоинта
type IncidentStats struct {
	ReportCount    int `json:"report_count"`
	ConfirmedCount int `json:"confirmed_count"`
	ReporterCount  int `json:"reporter_count"`
}
