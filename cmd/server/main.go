package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-api/adapters/http"
	"github.com/khoahotran/portfolio-api/adapters/media_storage"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	contactUC "github.com/khoahotran/portfolio-api/internal/application/usecase/contact"
	mediaUC "github.com/khoahotran/portfolio-api/internal/application/usecase/media"
	portfolioUC "github.com/khoahotran/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/tracing"
)

const serviceName = "portfolio-api"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("FATAL: cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: serviceName,
		Version: cfg.App.Version,
	})
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio API Server...", zap.String("env", cfg.App.Env), zap.String("version", cfg.App.Version))

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg, appLogger, serviceName)
	if err != nil {
		appLogger.Fatal("Failed to initialize tracing", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			appLogger.Error("Failed to shutdown tracer provider", err)
		}
	}()

	// Infrastructure
	dbPool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()
	cache := persistence.NewRedisPortfolioCache(redisClient, cfg.Cache.TTL)

	var publisher service.EventPublisher
	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Warn("Kafka not configured, events will only be logged", zap.Error(err))
		publisher = event.NewLogPublisher(appLogger)
	} else {
		defer kafkaClient.Close()
		publisher = kafkaClient
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	contactRepo := persistence.NewPostgresContactRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, experienceRepo, projectRepo, skillRepo, educationRepo,
		cache, publisher, appLogger)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(profileRepo, experienceRepo, projectRepo, skillRepo, educationRepo,
		cache, portfolioUC.NewSiteInfo(cfg), appLogger)
	contactUseCase := contactUC.NewContactUseCase(contactRepo, publisher, appLogger)

	// HTTP Handlers
	var mediaHandler *httpAdapter.MediaHandler
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("Cloudinary not configured, asset upload routes disabled", zap.Error(err))
	} else {
		mediaHandler = httpAdapter.NewMediaHandler(mediaUC.NewUploadProfileAssetUseCase(profileUseCase, uploader, appLogger), appLogger)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		Config:    cfg,
		Logger:    appLogger,
		JWT:       jwtSvc,
		Auth:      httpAdapter.NewAuthHandler(loginUseCase, profileUseCase, appLogger),
		Profile:   httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		Media:     mediaHandler,
		Portfolio: httpAdapter.NewPortfolioHandler(portfolioUseCase, profileUseCase, appLogger),
		Contact:   httpAdapter.NewContactHandler(contactUseCase, appLogger),
		Actuator:  httpAdapter.NewActuatorHandler(portfolioUseCase),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
	appLogger.Info("Server exited")
}
