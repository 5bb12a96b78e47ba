package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/khoahotran/portfolio-api/internal/application/usecase/portfolio"
)

var features = []string{
	"profile-management",
	"portfolio-showcase",
	"contact-form",
	"project-feed",
	"media-upload",
}

type ActuatorHandler struct {
	portfolioUseCase *portfolioUC.PortfolioUseCase
}

func NewActuatorHandler(uc *portfolioUC.PortfolioUseCase) *ActuatorHandler {
	return &ActuatorHandler{portfolioUseCase: uc}
}

// Health reports every component. Only a DOWN database makes it 503.
func (h *ActuatorHandler) Health(c *gin.Context) {
	report := h.portfolioUseCase.Health(c.Request.Context())
	if report.Status == portfolioUC.StatusDown {
		c.JSON(http.StatusServiceUnavailable, Response{
			Data:    report,
			Message: "Service is down",
			Error:   strPtr("unavailable"),
		})
		return
	}
	Success(c, http.StatusOK, report, "Health report generated")
}

func (h *ActuatorHandler) Info(c *gin.Context) {
	site := h.portfolioUseCase.Info()
	Success(c, http.StatusOK, InfoDTO{
		Application:  site.Name,
		Version:      site.Version,
		Author:       site.Author,
		SupportEmail: site.SupportEmail,
		Features:     features,
	}, "Application info")
}
