package contact

import (
	"context"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/contact"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("contact_usecase")

type ContactUseCase struct {
	contactRepo contact.Repository
	publisher   service.EventPublisher
	logger      logger.Logger
	now         func() time.Time

	mu       sync.Mutex
	lastSent time.Time
}

func NewContactUseCase(repo contact.Repository, publisher service.EventPublisher, log logger.Logger) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: repo,
		publisher:   publisher,
		logger:      log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Subject *string
	Message string
}

func (in SubmitMessageInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error("name is required"), validation.Length(1, 255)),
		validation.Field(&in.Email, validation.Required.Error("email is required"), is.EmailFormat.Error("invalid email format")),
		validation.Field(&in.Message, validation.Required.Error("message is required")),
	)
}

// SubmitMessage stores a public contact submission as unread. Sent times from
// one process are strictly increasing so listing order matches call order.
func (uc *ContactUseCase) SubmitMessage(ctx context.Context, input SubmitMessageInput) (*contact.Message, error) {
	ctx, span := tracer.Start(ctx, "SubmitMessage")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Message = strings.TrimSpace(input.Message)
	if err := input.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	m := &contact.Message{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Body:    input.Message,
		SentAt:  uc.nextSentAt(),
		IsRead:  false,
	}

	if err := uc.contactRepo.Save(ctx, m); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.logger.Info("Contact message stored", zap.String("message_id", m.ID.String()))

	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.publisher.Publish(pubCtx, service.NewContactEvent(m.ID)); err != nil {
			uc.logger.Error("Failed to publish Kafka 'contact.submitted' event", err, zap.String("message_id", m.ID.String()))
		}
	}()

	return m, nil
}

func (uc *ContactUseCase) nextSentAt() time.Time {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// microseconds: the precision Postgres keeps
	now := uc.now().Truncate(time.Microsecond)
	if !now.After(uc.lastSent) {
		now = uc.lastSent.Add(time.Microsecond)
	}
	uc.lastSent = now
	return now
}

func (uc *ContactUseCase) ListMessages(ctx context.Context) ([]*contact.Message, error) {
	ctx, span := tracer.Start(ctx, "ListMessages")
	defer span.End()

	return uc.contactRepo.ListAll(ctx)
}

func (uc *ContactUseCase) CountUnread(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "CountUnread")
	defer span.End()

	return uc.contactRepo.CountUnread(ctx)
}
