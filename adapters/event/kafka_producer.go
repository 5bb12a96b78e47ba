package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const TopicPortfolioEvents = "portfolio.events"

type KafkaProducerClient struct {
	EventsWriter *kafka.Writer
	logger       logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        TopicPortfolioEvents,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	log.Info("Initialize Kafka Producer successfully.", zap.String("topic", TopicPortfolioEvents), zap.Strings("brokers", brokers))

	return &KafkaProducerClient{EventsWriter: writer, logger: log}, nil
}

// Publish keys messages by the affected entity so events for one profile stay ordered.
func (c *KafkaProducerClient) Publish(ctx context.Context, e service.PortfolioEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", e.EventType, err)
	}

	if err := c.EventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(eventKey(e)),
		Value: payload,
		Time:  e.OccurredAt,
	}); err != nil {
		return fmt.Errorf("write %s event: %w", e.EventType, err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.EventsWriter != nil {
		if err := c.EventsWriter.Close(); err != nil {
			c.logger.Warn("Failed to close Kafka writer", zap.Error(err))
		}
	}
	c.logger.Info("Closed Kafka Producer")
}

func eventKey(e service.PortfolioEvent) string {
	switch {
	case e.ProfileID != nil:
		return e.ProfileID.String()
	case e.MessageID != nil:
		return e.MessageID.String()
	}
	return string(e.EventType)
}

// logPublisher stands in for Kafka when no brokers are configured.
type logPublisher struct {
	logger logger.Logger
}

func NewLogPublisher(log logger.Logger) service.EventPublisher {
	return &logPublisher{logger: log}
}

func (p *logPublisher) Publish(_ context.Context, e service.PortfolioEvent) error {
	p.logger.Debug("Event not published, Kafka disabled", zap.String("event_type", string(e.EventType)), zap.String("key", eventKey(e)))
	return nil
}

// DecodeEvent parses a message read from the portfolio.events topic.
func DecodeEvent(msg kafka.Message) (service.PortfolioEvent, error) {
	var e service.PortfolioEvent
	if err := json.Unmarshal(msg.Value, &e); err != nil {
		return e, fmt.Errorf("decode portfolio event: %w", err)
	}
	if e.EventType == "" {
		return e, fmt.Errorf("decode portfolio event: missing event_type")
	}
	return e, nil
}
