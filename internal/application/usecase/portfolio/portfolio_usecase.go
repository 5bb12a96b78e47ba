package portfolio

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("portfolio_usecase")

// SiteInfo describes the deployment for the feed and the actuator info endpoint.
type SiteInfo struct {
	Name         string
	Version      string
	Author       string
	SupportEmail string
	SiteURL      string
}

func NewSiteInfo(cfg config.Config) SiteInfo {
	return SiteInfo{
		Name:         cfg.App.Name,
		Version:      cfg.App.Version,
		Author:       cfg.Portfolio.Author,
		SupportEmail: cfg.Portfolio.SupportEmail,
		SiteURL:      cfg.Portfolio.SiteURL,
	}
}

// PortfolioUseCase serves the public, read-only side of the portfolio.
type PortfolioUseCase struct {
	profileRepo    profile.Repository
	experienceRepo experience.Repository
	projectRepo    project.Repository
	skillRepo      skill.Repository
	educationRepo  education.Repository
	cache          portfolio.Cache
	site           SiteInfo
	logger         logger.Logger
}

func NewPortfolioUseCase(
	profileRepo profile.Repository,
	experienceRepo experience.Repository,
	projectRepo project.Repository,
	skillRepo skill.Repository,
	educationRepo education.Repository,
	cache portfolio.Cache,
	site SiteInfo,
	log logger.Logger,
) *PortfolioUseCase {
	return &PortfolioUseCase{
		profileRepo:    profileRepo,
		experienceRepo: experienceRepo,
		projectRepo:    projectRepo,
		skillRepo:      skillRepo,
		educationRepo:  educationRepo,
		cache:          cache,
		site:           site,
		logger:         log,
	}
}

func (uc *PortfolioUseCase) ListExperiences(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	ctx, span := tracer.Start(ctx, "ListExperiences")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", ownerID.String()))

	return uc.experienceRepo.ListByOwner(ctx, ownerID)
}

func (uc *PortfolioUseCase) ListCurrentExperiences(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	ctx, span := tracer.Start(ctx, "ListCurrentExperiences")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", ownerID.String()))

	return uc.experienceRepo.ListCurrentByOwner(ctx, ownerID)
}

func (uc *PortfolioUseCase) ListProjects(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	ctx, span := tracer.Start(ctx, "ListProjects")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", ownerID.String()))

	return uc.projectRepo.ListByOwner(ctx, ownerID)
}

func (uc *PortfolioUseCase) ListSkills(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	ctx, span := tracer.Start(ctx, "ListSkills")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", ownerID.String()))

	return uc.skillRepo.ListByOwner(ctx, ownerID)
}

func (uc *PortfolioUseCase) ListFeaturedSkills(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	ctx, span := tracer.Start(ctx, "ListFeaturedSkills")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", ownerID.String()))

	return uc.skillRepo.ListFeaturedByOwner(ctx, ownerID)
}

func (uc *PortfolioUseCase) ListSkillCategories(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	ctx, span := tracer.Start(ctx, "ListSkillCategories")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", ownerID.String()))

	return uc.skillRepo.ListCategoriesByOwner(ctx, ownerID)
}

func (uc *PortfolioUseCase) ListEducation(ctx context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	ctx, span := tracer.Start(ctx, "ListEducation")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", ownerID.String()))

	return uc.educationRepo.ListByOwner(ctx, ownerID)
}

// GetSummary returns the active profile's headline plus its collection sizes.
func (uc *PortfolioUseCase) GetSummary(ctx context.Context) (*portfolio.Summary, error) {
	ctx, span := tracer.Start(ctx, "GetSummary")
	defer span.End()

	cached, err := uc.cache.GetSummary(ctx)
	if err != nil {
		uc.logger.Warn("Summary cache read failed", zap.Error(err))
	} else if cached != nil {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return cached, nil
	}

	gen, genErr := uc.cache.Generation(ctx)

	s, err := uc.buildSummary(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if genErr != nil {
		return s, nil
	}
	if err := uc.cache.SetSummary(ctx, gen, s); err != nil {
		uc.logger.Warn("Summary cache write failed", zap.Error(err))
	}
	return s, nil
}

func (uc *PortfolioUseCase) buildSummary(ctx context.Context) (*portfolio.Summary, error) {
	p, err := uc.profileRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	s := &portfolio.Summary{
		Name:         p.FullName,
		Email:        p.Email,
		Bio:          p.Bio,
		ProfileImage: p.ProfileImage,
	}
	if s.ExperienceCount, err = uc.experienceRepo.CountByOwner(ctx, p.ID); err != nil {
		return nil, err
	}
	if s.ProjectCount, err = uc.projectRepo.CountByOwner(ctx, p.ID); err != nil {
		return nil, err
	}
	if s.SkillCount, err = uc.skillRepo.CountByOwner(ctx, p.ID); err != nil {
		return nil, err
	}
	if s.EducationCount, err = uc.educationRepo.CountByOwner(ctx, p.ID); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *PortfolioUseCase) Info() SiteInfo {
	return uc.site
}
