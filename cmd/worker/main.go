package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	portfolioUC "github.com/khoahotran/portfolio-api/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("FATAL: cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "portfolio-worker",
		Version: cfg.App.Version,
	})
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio Worker...")

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Kafka brokers are required for the worker", errors.New("kafka.brokers is empty"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	dbPool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Cache
	redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()
	cache := persistence.NewRedisPortfolioCache(redisClient, cfg.Cache.TTL)

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	contactRepo := persistence.NewPostgresContactRepo(dbPool, appLogger)

	// Worker Use Case
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(profileRepo, experienceRepo, projectRepo, skillRepo, educationRepo,
		cache, portfolioUC.NewSiteInfo(cfg), appLogger)
	processEventUC := portfolioUC.NewProcessEventUseCase(portfolioUseCase, contactRepo, appLogger)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPortfolioEvents,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicPortfolioEvents), zap.String("group_id", cfg.Kafka.GroupID))

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		evt, err := event.DecodeEvent(msg)
		if err != nil {
			appLogger.Error("Failed to decode event, skipping", err, zap.String("key", string(msg.Key)))
			commitMessage(ctx, consumer, msg, appLogger)
			continue
		}

		if err := processEventUC.Execute(ctx, evt); err != nil {
			appLogger.Error("Failed to process event", err,
				zap.String("event_type", string(evt.EventType)),
				zap.String("key", string(msg.Key)),
			)
			continue
		}

		commitMessage(ctx, consumer, msg, appLogger)
	}
}

func commitMessage(ctx context.Context, consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(ctx, msg); err != nil {
		log.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
	}
}
