package models

import (
	"time"

	"github.com/google/uuid"
)

// RateLimitEntry - маркер кулдауна для пары (репортер, тип инцидента) в
// пределах пространственной ячейки. Повторное сообщение с тем же ключом
// до expires_at отклоняется со статусом 429.
type RateLimitEntry struct {
	ReporterID   uuid.UUID `json:"reporter_id"`
	IncidentType string    `json:"incident_type"`
	Bucket       string    `json:"bucket"`
	ExpiresAt    time.Time `json:"expires_at"`
}
