package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

// parseUUIDParam reads a path parameter and pushes a validation error when it
// is not a UUID.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid "+name+": must be a UUID", err))
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.profileUseCase.GetProfileByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	Success(c, http.StatusOK, ToProfileDTO(p), "Profile retrieved successfully")
}

func (h *ProfileHandler) GetProfileDetails(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	full, err := h.profileUseCase.GetFullProfileByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	Success(c, http.StatusOK, ToFullProfileDTO(full), "Profile details retrieved successfully")
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	p, err := h.profileUseCase.UpdateProfile(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		c.Error(err)
		return
	}

	Success(c, http.StatusOK, ToProfileDTO(p), "Profile updated successfully")
}

func (h *ProfileHandler) ActivateProfile(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.profileUseCase.ActivateProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	userID, _ := GetUserIDFromGinContext(c)
	h.logger.Info("Profile activation requested",
		zap.String("profile_id", id.String()),
		zap.String("user_id", userID.String()),
	)
	Success(c, http.StatusOK, ToProfileDTO(p), "Profile activated successfully")
}
