package models

import (
	"time"

	"github.com/google/uuid"
)

// AidUrgencies - допустимые уровни срочности запроса помощи
var AidUrgencies = []string{"low", "medium", "high"}

// IsValidAidUrgency проверяет уровень срочности
func IsValidAidUrgency(urgency string) bool {
	for _, u := range AidUrgencies {
		if u == urgency {
			return true
		}
	}
	return false
}

// AidRequest - запрос помощи, отправленный аутентифицированным пользователем
type AidRequest struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	Contact       string    `json:"contact"`
	Address       string    `json:"address"`
	AidType       string    `json:"aid_type"`
	Description   string    `json:"description,omitempty"`
	Urgency       string    `json:"urgency"`
	HouseholdSize int       `json:"household_size,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
