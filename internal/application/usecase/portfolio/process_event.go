package portfolio

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/contact"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// ProcessEventUseCase runs in the worker. Profile events refresh the cached
// read models; contact submissions produce an operator notification.
type ProcessEventUseCase struct {
	portfolioUC *PortfolioUseCase
	contactRepo contact.Repository
	logger      logger.Logger
}

func NewProcessEventUseCase(portfolioUC *PortfolioUseCase, contactRepo contact.Repository, log logger.Logger) *ProcessEventUseCase {
	return &ProcessEventUseCase{
		portfolioUC: portfolioUC,
		contactRepo: contactRepo,
		logger:      log,
	}
}

func (uc *ProcessEventUseCase) Execute(ctx context.Context, evt service.PortfolioEvent) error {
	ctx, span := tracer.Start(ctx, "ProcessEvent")
	defer span.End()

	switch evt.EventType {
	case service.EventProfileCreated, service.EventProfileUpdated, service.EventProfileActivated:
		return uc.refreshCache(ctx, evt)
	case service.EventContactSubmitted:
		return uc.notifyContact(ctx, evt)
	default:
		uc.logger.Warn("Unknown event type, skipping", zap.String("event_type", string(evt.EventType)))
		return nil
	}
}

func (uc *ProcessEventUseCase) refreshCache(ctx context.Context, evt service.PortfolioEvent) error {
	if err := uc.portfolioUC.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate cache for %s: %w", evt.EventType, err)
	}

	// re-warm; no active profile yet is a normal state
	if _, err := uc.portfolioUC.GetSummary(ctx); err != nil && !apperror.IsNotFound(err) {
		return fmt.Errorf("rebuild summary for %s: %w", evt.EventType, err)
	}

	uc.logger.Info("Portfolio cache refreshed", zap.String("event_type", string(evt.EventType)))
	return nil
}

func (uc *ProcessEventUseCase) notifyContact(ctx context.Context, evt service.PortfolioEvent) error {
	unread, err := uc.contactRepo.CountUnread(ctx)
	if err != nil {
		return fmt.Errorf("count unread messages: %w", err)
	}

	fields := []zap.Field{zap.Int64("unread_count", unread)}
	if evt.MessageID != nil {
		fields = append(fields, zap.String("message_id", evt.MessageID.String()))
	}
	if uc.portfolioUC.site.SupportEmail != "" {
		fields = append(fields, zap.String("notify", uc.portfolioUC.site.SupportEmail))
	}
	uc.logger.Info("New contact message received", fields...)
	return nil
}
