package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventProfileCreated   EventType = "profile.created"
	EventProfileUpdated   EventType = "profile.updated"
	EventProfileActivated EventType = "profile.activated"
	EventContactSubmitted EventType = "contact.submitted"
)

type PortfolioEvent struct {
	EventType  EventType  `json:"event_type"`
	ProfileID  *uuid.UUID `json:"profile_id,omitempty"`
	MessageID  *uuid.UUID `json:"message_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func NewProfileEvent(t EventType, profileID uuid.UUID) PortfolioEvent {
	return PortfolioEvent{EventType: t, ProfileID: &profileID, OccurredAt: time.Now().UTC()}
}

func NewContactEvent(messageID uuid.UUID) PortfolioEvent {
	return PortfolioEvent{EventType: EventContactSubmitted, MessageID: &messageID, OccurredAt: time.Now().UTC()}
}

type EventPublisher interface {
	Publish(ctx context.Context, e PortfolioEvent) error
}
