package models

import (
	"time"

	"github.com/google/uuid"
)

// User представляет зарегистрированного пользователя
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
