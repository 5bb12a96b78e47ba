package user

import (
	"context"

	"github.com/google/uuid"
)

// User is an operator account allowed to sign in and read contact messages.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}
