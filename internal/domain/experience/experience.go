package experience

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Experience is a work record owned by one profile. IsCurrent conventionally
// implies EndDate is nil, but nothing enforces it.
type Experience struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Description  string     `json:"description"`
	Technologies string     `json:"technologies"`
	IsCurrent    bool       `json:"is_current"`
	CreatedAt    time.Time  `json:"created_at"`
}

var ErrStartDateRequired = errors.New("start date is required")

func (e *Experience) Validate() error {
	if e.StartDate.IsZero() {
		return ErrStartDateRequired
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	// ListByOwner orders by start date, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Experience, error)
	ListCurrentByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Experience, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}
