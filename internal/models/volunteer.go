package models

import (
	"time"

	"github.com/google/uuid"
)

// VolunteerCategories - допустимые категории волонтеров
var VolunteerCategories = []string{
	"Food Bank Volunteer",
	"Disaster Relief Volunteer",
	"Shelter Volunteer",
}

// IsValidVolunteerCategory проверяет категорию волонтера
func IsValidVolunteerCategory(category string) bool {
	for _, c := range VolunteerCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Volunteer - регистрация волонтера, не более одной на пользователя
type Volunteer struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	LegalName string    `json:"legal_name"`
	Location  string    `json:"location"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
