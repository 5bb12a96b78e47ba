package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type AuthHandler struct {
	loginUseCase   *auth.LoginUseCase
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewAuthHandler(loginUC *auth.LoginUseCase, profileUseCase *profileUC.ProfileUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		loginUseCase:   loginUC,
		profileUseCase: profileUseCase,
		logger:         log,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("email and password are required", err))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	Success(c, http.StatusOK, LoginResponse{
		Token: output.AccessToken,
		Email: output.Email,
		Type:  "Bearer",
	}, "Login successful")
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for registration", err))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	p, err := h.profileUseCase.CreateProfile(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}

	Success(c, http.StatusCreated, ToProfileDTO(p), "Profile created successfully")
}

func (h *AuthHandler) CheckEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		c.Error(apperror.NewInvalidInput("query parameter 'email' is required", nil))
		return
	}

	exists, err := h.profileUseCase.EmailExists(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	Success(c, http.StatusOK, CheckEmailResponse{Email: email, Exists: exists}, "Email check completed")
}
