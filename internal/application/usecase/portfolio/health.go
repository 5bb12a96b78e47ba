package portfolio

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	StatusUp       = "UP"
	StatusDown     = "DOWN"
	StatusDegraded = "DEGRADED"
)

type ComponentHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type HealthReport struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
}

// HealthCheck reports whether the database answers a trivial count query.
// It never panics outward.
func (uc *PortfolioUseCase) HealthCheck(ctx context.Context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("Health check panicked", fmt.Errorf("%v", r))
			ok = false
		}
	}()

	if _, err := uc.profileRepo.Count(ctx); err != nil {
		uc.logger.Warn("Health check failed", zap.Error(err))
		return false
	}
	return true
}

// Health reports per-component status. The cache is optional: losing it
// degrades the service but does not take it down.
func (uc *PortfolioUseCase) Health(ctx context.Context) HealthReport {
	report := HealthReport{Status: StatusUp, Components: make(map[string]ComponentHealth, 2)}

	if uc.HealthCheck(ctx) {
		report.Components["database"] = ComponentHealth{Status: StatusUp}
	} else {
		report.Components["database"] = ComponentHealth{Status: StatusDown, Error: "database unreachable"}
		report.Status = StatusDown
	}

	if err := uc.cache.Ping(ctx); err != nil {
		report.Components["cache"] = ComponentHealth{Status: StatusDown, Error: err.Error()}
		if report.Status == StatusUp {
			report.Status = StatusDegraded
		}
	} else {
		report.Components["cache"] = ComponentHealth{Status: StatusUp}
	}
	return report
}
