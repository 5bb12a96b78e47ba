package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/khoahotran/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// PortfolioHandler serves the public, read-only portfolio views.
type PortfolioHandler struct {
	portfolioUseCase *portfolioUC.PortfolioUseCase
	profileUseCase   *profileUC.ProfileUseCase
	logger           logger.Logger
}

func NewPortfolioHandler(puc *portfolioUC.PortfolioUseCase, profUC *profileUC.ProfileUseCase, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioUseCase: puc,
		profileUseCase:   profUC,
		logger:           log,
	}
}

func (h *PortfolioHandler) Health(c *gin.Context) {
	if !h.portfolioUseCase.HealthCheck(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, Response{
			Data:    HealthDTO{Status: "DOWN", Healthy: false},
			Message: "Service is unhealthy",
			Success: false,
			Error:   strPtr("unavailable"),
		})
		return
	}
	Success(c, http.StatusOK, HealthDTO{Status: "UP", Healthy: true}, "Service is healthy")
}

func (h *PortfolioHandler) GetSummary(c *gin.Context) {
	summary, err := h.portfolioUseCase.GetSummary(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	Success(c, http.StatusOK, ToSummaryDTO(summary), "Portfolio summary retrieved successfully")
}

func (h *PortfolioHandler) GetActiveProfile(c *gin.Context) {
	p, err := h.profileUseCase.GetActiveProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	Success(c, http.StatusOK, ToProfileDTO(p), "Active profile retrieved successfully")
}

func (h *PortfolioHandler) ListExperiences(c *gin.Context) {
	ownerID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	list, err := h.portfolioUseCase.ListExperiences(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	Success(c, http.StatusOK, nonNil(ToExperienceDTOs(list)), "Experiences retrieved successfully")
}

func (h *PortfolioHandler) ListCurrentExperiences(c *gin.Context) {
	ownerID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	list, err := h.portfolioUseCase.ListCurrentExperiences(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	Success(c, http.StatusOK, nonNil(ToExperienceDTOs(list)), "Current experiences retrieved successfully")
}

func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	ownerID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	list, err := h.portfolioUseCase.ListProjects(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	Success(c, http.StatusOK, nonNil(ToProjectDTOs(list)), "Projects retrieved successfully")
}

func (h *PortfolioHandler) ListSkills(c *gin.Context) {
	ownerID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	list, err := h.portfolioUseCase.ListSkills(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	Success(c, http.StatusOK, nonNil(ToSkillDTOs(list)), "Skills retrieved successfully")
}

func (h *PortfolioHandler) ListFeaturedSkills(c *gin.Context) {
	ownerID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	list, err := h.portfolioUseCase.ListFeaturedSkills(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	Success(c, http.StatusOK, nonNil(ToSkillDTOs(list)), "Featured skills retrieved successfully")
}

func (h *PortfolioHandler) ListSkillCategories(c *gin.Context) {
	ownerID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	categories, err := h.portfolioUseCase.ListSkillCategories(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	Success(c, http.StatusOK, nonNil(categories), "Skill categories retrieved successfully")
}

func (h *PortfolioHandler) ListEducation(c *gin.Context) {
	ownerID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	list, err := h.portfolioUseCase.ListEducation(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	Success(c, http.StatusOK, nonNil(ToEducationDTOs(list)), "Education retrieved successfully")
}

// ProjectFeed renders a profile's projects as RSS. It is not enveloped.
func (h *PortfolioHandler) ProjectFeed(c *gin.Context) {
	ownerID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	feed, err := h.portfolioUseCase.ProjectFeed(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	rss, err := feed.ToRss()
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}

// nonNil keeps list endpoints rendering [] rather than null.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func strPtr(s string) *string { return &s }
