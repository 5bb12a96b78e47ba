package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("profile_usecase")

// FullProfile is a profile joined with its four dependent collections. A nil
// collection was not loaded; an empty one was loaded and had no rows.
type FullProfile struct {
	Profile     *profile.Profile
	Experiences []*experience.Experience
	Projects    []*project.Project
	Skills      []*skill.Skill
	Educations  []*education.Education
}

type ProfileUseCase struct {
	profileRepo    profile.Repository
	experienceRepo experience.Repository
	projectRepo    project.Repository
	skillRepo      skill.Repository
	educationRepo  education.Repository
	cache          portfolio.Cache
	publisher      service.EventPublisher
	logger         logger.Logger
	now            func() time.Time
}

func NewProfileUseCase(
	profileRepo profile.Repository,
	experienceRepo experience.Repository,
	projectRepo project.Repository,
	skillRepo skill.Repository,
	educationRepo education.Repository,
	cache portfolio.Cache,
	publisher service.EventPublisher,
	log logger.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo:    profileRepo,
		experienceRepo: experienceRepo,
		projectRepo:    projectRepo,
		skillRepo:      skillRepo,
		educationRepo:  educationRepo,
		cache:          cache,
		publisher:      publisher,
		logger:         log,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (uc *ProfileUseCase) GetActiveProfile(ctx context.Context) (*profile.Profile, error) {
	ctx, span := tracer.Start(ctx, "GetActiveProfile")
	defer span.End()

	cached, err := uc.cache.GetActiveProfile(ctx)
	if err != nil {
		uc.logger.Warn("Active profile cache read failed", zap.Error(err))
	} else if cached != nil {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return cached, nil
	}

	// taken before the store read so a concurrent invalidation wins
	gen, genErr := uc.cache.Generation(ctx)

	p, err := uc.profileRepo.FindActive(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if genErr != nil {
		return p, nil
	}
	if err := uc.cache.SetActiveProfile(ctx, gen, p); err != nil {
		uc.logger.Warn("Active profile cache write failed", zap.Error(err))
	}
	return p, nil
}

func (uc *ProfileUseCase) GetProfileByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	ctx, span := tracer.Start(ctx, "GetProfileByID")
	defer span.End()
	span.SetAttributes(attribute.String("profile_id", id.String()))

	return uc.profileRepo.FindByID(ctx, id)
}

// GetFullProfileByID always loads all four collections, so a profile without
// dependents comes back with empty, non-nil slices.
func (uc *ProfileUseCase) GetFullProfileByID(ctx context.Context, id uuid.UUID) (*FullProfile, error) {
	ctx, span := tracer.Start(ctx, "GetFullProfileByID")
	defer span.End()
	span.SetAttributes(attribute.String("profile_id", id.String()))

	p, err := uc.profileRepo.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	full := &FullProfile{Profile: p}
	if full.Experiences, err = uc.experienceRepo.ListByOwner(ctx, id); err != nil {
		return nil, err
	}
	if full.Projects, err = uc.projectRepo.ListByOwner(ctx, id); err != nil {
		return nil, err
	}
	if full.Skills, err = uc.skillRepo.ListByOwner(ctx, id); err != nil {
		return nil, err
	}
	if full.Educations, err = uc.educationRepo.ListByOwner(ctx, id); err != nil {
		return nil, err
	}
	return full, nil
}

func (uc *ProfileUseCase) EmailExists(ctx context.Context, email string) (bool, error) {
	return uc.profileRepo.ExistsByEmail(ctx, strings.TrimSpace(email))
}

type CreateProfileInput struct {
	FullName     string
	Email        string
	Phone        *string
	Bio          *string
	ProfileImage *string
	ResumeURL    *string
}

// CreateProfile stores a new profile. The first profile created while none is
// active becomes the active one.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, input CreateProfileInput) (*profile.Profile, error) {
	ctx, span := tracer.Start(ctx, "CreateProfile")
	defer span.End()

	now := uc.now()
	p := &profile.Profile{
		ID:           uuid.New(),
		FullName:     strings.TrimSpace(input.FullName),
		Email:        strings.TrimSpace(input.Email),
		Phone:        input.Phone,
		Bio:          input.Bio,
		ProfileImage: input.ProfileImage,
		ResumeURL:    input.ResumeURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	exists, err := uc.profileRepo.ExistsByEmail(ctx, p.Email)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflict("profile", "email", p.Email)
	}

	_, err = uc.profileRepo.FindActive(ctx)
	switch {
	case apperror.IsNotFound(err):
		p.IsActive = true
	case err != nil:
		span.RecordError(err)
		return nil, err
	}

	err = uc.profileRepo.Save(ctx, p)
	if errors.Is(err, profile.ErrAnotherActive) {
		// lost the race for activation; keep the profile as inactive
		p.IsActive = false
		err = uc.profileRepo.Save(ctx, p)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.logger.Info("Profile created", zap.String("profile_id", p.ID.String()), zap.Bool("is_active", p.IsActive))
	uc.afterWrite(ctx, service.NewProfileEvent(service.EventProfileCreated, p.ID))
	return p, nil
}

// UpdateProfile applies the restricted field set. Email cannot change here.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, id uuid.UUID, upd profile.Update) (*profile.Profile, error) {
	ctx, span := tracer.Start(ctx, "UpdateProfile")
	defer span.End()
	span.SetAttributes(attribute.String("profile_id", id.String()))

	p, err := uc.profileRepo.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	upd.FullName = strings.TrimSpace(upd.FullName)
	upd.Apply(p, uc.now())
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.afterWrite(ctx, service.NewProfileEvent(service.EventProfileUpdated, p.ID))
	return p, nil
}

// ActivateProfile makes id the only active profile.
func (uc *ProfileUseCase) ActivateProfile(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	ctx, span := tracer.Start(ctx, "ActivateProfile")
	defer span.End()
	span.SetAttributes(attribute.String("profile_id", id.String()))

	if err := uc.profileRepo.Activate(ctx, id); err != nil {
		span.RecordError(err)
		return nil, err
	}

	p, err := uc.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Profile activated", zap.String("profile_id", id.String()))
	uc.afterWrite(ctx, service.NewProfileEvent(service.EventProfileActivated, id))
	return p, nil
}

// afterWrite drops cached read models and announces the change. Neither step
// can fail the request.
func (uc *ProfileUseCase) afterWrite(ctx context.Context, evt service.PortfolioEvent) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate portfolio cache", zap.Error(err))
	}

	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.publisher.Publish(pubCtx, evt); err != nil {
			uc.logger.Error("Failed to publish Kafka event", err, zap.String("event_type", string(evt.EventType)))
		}
	}()
}
