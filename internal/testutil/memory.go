// Package testutil provides in-memory repositories and fakes that mirror the
// ordering and constraint behaviour of the Postgres adapters.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/contact"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// ProfileRepo enforces unique email and a single active profile.
type ProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]profile.Profile
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{profiles: make(map[uuid.UUID]profile.Profile)}
}

func (r *ProfileRepo) Save(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.profiles {
		if existing.Email == p.Email {
			return apperror.NewConflict("profile", "email", p.Email)
		}
		if p.IsActive && existing.IsActive {
			return apperror.NewAppError(apperror.ErrConflict, "profile conflict", "an active profile already exists", profile.ErrAnotherActive)
		}
	}
	r.profiles[p.ID] = *p
	return nil
}

func (r *ProfileRepo) Update(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.profiles[p.ID]
	if !ok {
		return apperror.NewNotFound("profile", p.ID.String())
	}
	existing.FullName = p.FullName
	existing.Phone = p.Phone
	existing.Bio = p.Bio
	existing.ProfileImage = p.ProfileImage
	existing.ResumeURL = p.ResumeURL
	existing.UpdatedAt = p.UpdatedAt
	r.profiles[p.ID] = existing
	return nil
}

func (r *ProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, apperror.NewNotFound("profile", id.String())
	}
	return &p, nil
}

func (r *ProfileRepo) FindActive(_ context.Context) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found *profile.Profile
	for _, p := range r.profiles {
		if !p.IsActive {
			continue
		}
		if found == nil || p.CreatedAt.Before(found.CreatedAt) ||
			(p.CreatedAt.Equal(found.CreatedAt) && p.ID.String() < found.ID.String()) {
			cp := p
			found = &cp
		}
	}
	if found == nil {
		return nil, apperror.NewNotFound("active profile", "is_active=true")
	}
	return found, nil
}

func (r *ProfileRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *ProfileRepo) Activate(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	target, ok := r.profiles[id]
	if !ok {
		return apperror.NewNotFound("profile", id.String())
	}
	now := time.Now().UTC()
	for pid, p := range r.profiles {
		if p.IsActive && pid != id {
			p.IsActive = false
			p.UpdatedAt = now
			r.profiles[pid] = p
		}
	}
	target.IsActive = true
	target.UpdatedAt = now
	r.profiles[id] = target
	return nil
}

func (r *ProfileRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.profiles)), nil
}

// Put stores p without any constraint checks.
func (r *ProfileRepo) Put(p *profile.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = *p
}

type ExperienceRepo struct {
	mu    sync.Mutex
	items []experience.Experience
}

func NewExperienceRepo() *ExperienceRepo { return &ExperienceRepo{} }

func (r *ExperienceRepo) Save(_ context.Context, e *experience.Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *e)
	return nil
}

func (r *ExperienceRepo) list(ownerID uuid.UUID, currentOnly bool) []*experience.Experience {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*experience.Experience, 0)
	for _, e := range r.items {
		if e.OwnerID == ownerID && (!currentOnly || e.IsCurrent) {
			cp := e
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.After(b.StartDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return out
}

func (r *ExperienceRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return r.list(ownerID, false), nil
}

func (r *ExperienceRepo) ListCurrentByOwner(_ context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return r.list(ownerID, true), nil
}

func (r *ExperienceRepo) CountByOwner(_ context.Context, ownerID uuid.UUID) (int, error) {
	return len(r.list(ownerID, false)), nil
}

type ProjectRepo struct {
	mu    sync.Mutex
	items []project.Project
}

func NewProjectRepo() *ProjectRepo { return &ProjectRepo{} }

func (r *ProjectRepo) Save(_ context.Context, p *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *p)
	return nil
}

func (r *ProjectRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*project.Project, 0)
	for _, p := range r.items {
		if p.OwnerID == ownerID {
			cp := p
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := compareDatesDescNullsLast(a.StartDate, b.StartDate); c != 0 {
			return c < 0
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return out, nil
}

func (r *ProjectRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	list, _ := r.ListByOwner(ctx, ownerID)
	return len(list), nil
}

type SkillRepo struct {
	mu    sync.Mutex
	items []skill.Skill
}

func NewSkillRepo() *SkillRepo { return &SkillRepo{} }

func (r *SkillRepo) Save(_ context.Context, s *skill.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *s)
	return nil
}

func (r *SkillRepo) list(ownerID uuid.UUID, featuredOnly bool) []*skill.Skill {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*skill.Skill, 0)
	for _, s := range r.items {
		if s.OwnerID == ownerID && (!featuredOnly || s.IsFeatured) {
			cp := s
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID.String() < b.ID.String()
	})
	return out
}

func (r *SkillRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	return r.list(ownerID, false), nil
}

func (r *SkillRepo) ListFeaturedByOwner(_ context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	return r.list(ownerID, true), nil
}

func (r *SkillRepo) ListCategoriesByOwner(_ context.Context, ownerID uuid.UUID) ([]string, error) {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, s := range r.list(ownerID, false) {
		if seen[s.Category] {
			continue
		}
		seen[s.Category] = true
		out = append(out, s.Category)
	}
	sort.Strings(out)
	return out, nil
}

func (r *SkillRepo) CountByOwner(_ context.Context, ownerID uuid.UUID) (int, error) {
	return len(r.list(ownerID, false)), nil
}

type EducationRepo struct {
	mu    sync.Mutex
	items []education.Education
}

func NewEducationRepo() *EducationRepo { return &EducationRepo{} }

func (r *EducationRepo) Save(_ context.Context, e *education.Education) error {
	e.NormalizeGPA()
	if err := e.Validate(); err != nil {
		return apperror.NewInvalidInput(err.Error(), err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *e)
	return nil
}

func (r *EducationRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*education.Education, 0)
	for _, e := range r.items {
		if e.OwnerID == ownerID {
			cp := e
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := compareDatesDescNullsLast(a.StartDate, b.StartDate); c != 0 {
			return c < 0
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return out, nil
}

func (r *EducationRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	list, _ := r.ListByOwner(ctx, ownerID)
	return len(list), nil
}

type ContactRepo struct {
	mu    sync.Mutex
	items []contact.Message
}

func NewContactRepo() *ContactRepo { return &ContactRepo{} }

func (r *ContactRepo) Save(_ context.Context, m *contact.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *m)
	return nil
}

func (r *ContactRepo) ListAll(_ context.Context) ([]*contact.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*contact.Message, 0, len(r.items))
	for _, m := range r.items {
		cp := m
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SentAt.Equal(out[j].SentAt) {
			return out[i].SentAt.After(out[j].SentAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *ContactRepo) CountUnread(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, m := range r.items {
		if !m.IsRead {
			n++
		}
	}
	return n, nil
}

type UserRepo struct {
	mu    sync.Mutex
	users map[string]user.User
}

func NewUserRepo(users ...*user.User) *UserRepo {
	r := &UserRepo{users: make(map[string]user.User)}
	for _, u := range users {
		r.users[u.Email] = *u
	}
	return r
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, apperror.NewNotFound("user", email)
	}
	return &u, nil
}

// compareDatesDescNullsLast orders later dates first and nil dates after all others.
func compareDatesDescNullsLast(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.After(*b):
		return -1
	case b.After(*a):
		return 1
	}
	return 0
}

// Store bundles one of each in-memory repository.
type Store struct {
	Profiles    *ProfileRepo
	Experiences *ExperienceRepo
	Projects    *ProjectRepo
	Skills      *SkillRepo
	Educations  *EducationRepo
	Contacts    *ContactRepo
}

func NewStore() *Store {
	return &Store{
		Profiles:    NewProfileRepo(),
		Experiences: NewExperienceRepo(),
		Projects:    NewProjectRepo(),
		Skills:      NewSkillRepo(),
		Educations:  NewEducationRepo(),
		Contacts:    NewContactRepo(),
	}
}
