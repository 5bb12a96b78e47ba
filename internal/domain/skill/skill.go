package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ProficiencyLevel string    `json:"proficiency_level"`
	YearsExperience  int       `json:"years_experience"`
	IsFeatured       bool      `json:"is_featured"`
	CreatedAt        time.Time `json:"created_at"`
}

var ErrNameRequired = errors.New("skill name is required")

func (s *Skill) Validate() error {
	if s.Name == "" {
		return ErrNameRequired
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, s *Skill) error
	// ListByOwner orders by category, then name.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Skill, error)
	// ListFeaturedByOwner uses the same ordering as ListByOwner.
	ListFeaturedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Skill, error)
	ListCategoriesByOwner(ctx context.Context, ownerID uuid.UUID) ([]string, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}
