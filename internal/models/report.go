package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentTypes - фиксированный набор типов инцидентов для клиентского dropdown
var IncidentTypes = []string{
	"Power Outage",
	"Flooding",
	"Wildfire",
	"Road Blocked",
	"Bridge Damage",
	"Building Collapse",
	"Medical Emergency",
	"Gas Leak",
	"Landslide",
	"Storm Damage",
	"Water Contamination",
	"Communication Outage",
}

// IsValidIncidentType проверяет, входит ли тип в допустимый набор
func IsValidIncidentType(incidentType string) bool {
	for _, t := range IncidentTypes {
		if t == incidentType {
			return true
		}
	}
	return false
}

// Report представляет одно неизменяемое сообщение о происшествии.
// Запись никогда не редактируется, только вытесняется новой.
type Report struct {
	ID           uuid.UUID `json:"id"`
	ReporterID   uuid.UUID `json:"reporter_id"`
	IncidentType string    `json:"incident_type"`
	Address      string    `json:"address"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
