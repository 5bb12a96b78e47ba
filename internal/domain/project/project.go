package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Technologies string     `json:"technologies"`
	GithubURL    *string    `json:"github_url"`
	LiveURL      *string    `json:"live_url"`
	ImageURL     *string    `json:"image_url"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	CreatedAt    time.Time  `json:"created_at"`
}

var ErrNameRequired = errors.New("project name is required")

func (p *Project) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	// ListByOwner orders by start date, newest first; undated projects last.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Project, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}
