package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Message is a public contact-form submission. It is independent of any profile.
type Message struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Subject  *string   `json:"subject"`
	Body     string    `json:"message"`
	SentAt   time.Time `json:"sent_date"`
	IsRead   bool      `json:"is_read"`
	Response *string   `json:"response"`
}

type Repository interface {
	Save(ctx context.Context, m *Message) error
	// ListAll orders by sent time, newest first.
	ListAll(ctx context.Context) ([]*Message, error)
	CountUnread(ctx context.Context) (int64, error)
}
