package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a fan or DJ account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
