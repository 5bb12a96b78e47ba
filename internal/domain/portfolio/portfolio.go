package portfolio

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/domain/profile"
)

// Summary is the public headline view of the active profile.
type Summary struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Bio             *string `json:"bio"`
	ProfileImage    *string `json:"profile_image"`
	ExperienceCount int     `json:"experience_count"`
	ProjectCount    int     `json:"project_count"`
	SkillCount      int     `json:"skill_count"`
	EducationCount  int     `json:"education_count"`
}

// Cache holds derived read models. A miss is reported as (nil, nil).
//
// Every Invalidate bumps the generation. Setters take the generation read
// before the store was queried and drop the write if it has moved since.
type Cache interface {
	Generation(ctx context.Context) (int64, error)
	GetSummary(ctx context.Context) (*Summary, error)
	SetSummary(ctx context.Context, gen int64, s *Summary) error
	GetActiveProfile(ctx context.Context) (*profile.Profile, error)
	SetActiveProfile(ctx context.Context, gen int64, p *profile.Profile) error
	Invalidate(ctx context.Context) error
	Ping(ctx context.Context) error
}
