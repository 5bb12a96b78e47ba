package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Profile is the portfolio owner's record. It carries no dependent collections;
// those are fetched separately and joined by the caller.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone"`
	Bio          *string   `json:"bio"`
	ProfileImage *string   `json:"profile_image"`
	ResumeURL    *string   `json:"resume_url"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Update is the set of fields a profile owner may change after registration.
// Email is deliberately absent.
type Update struct {
	FullName     string
	Phone        *string
	Bio          *string
	ProfileImage *string
	ResumeURL    *string
}

var (
	ErrFullNameRequired = errors.New("full name is required")
	ErrEmailRequired    = errors.New("email is required")
	// ErrAnotherActive is the cause carried by a Conflict when a second profile
	// would become active.
	ErrAnotherActive = errors.New("another profile is already active")
)

func (p *Profile) Validate() error {
	if p.FullName == "" {
		return ErrFullNameRequired
	}
	if p.Email == "" {
		return ErrEmailRequired
	}
	return nil
}

// Apply copies the mutable fields onto p and stamps UpdatedAt. The stamp never
// moves backwards, even if the wall clock does.
func (u Update) Apply(p *Profile, now time.Time) {
	p.FullName = u.FullName
	p.Phone = u.Phone
	p.Bio = u.Bio
	p.ProfileImage = u.ProfileImage
	p.ResumeURL = u.ResumeURL
	if !now.After(p.UpdatedAt) {
		now = p.UpdatedAt.Add(time.Microsecond)
	}
	p.UpdatedAt = now
}

type Repository interface {
	Save(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	// FindActive returns the earliest-created active profile.
	FindActive(ctx context.Context) (*Profile, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Activate marks id as the only active profile.
	Activate(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
