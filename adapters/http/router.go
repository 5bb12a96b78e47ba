package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type RouterConfig struct {
	Config    config.Config
	Logger    logger.Logger
	JWT       *auth.JWTService
	Auth      *AuthHandler
	Profile   *ProfileHandler
	Media     *MediaHandler
	Portfolio *PortfolioHandler
	Contact   *ContactHandler
	Actuator  *ActuatorHandler
}

func NewRouter(rc RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestID(),
		RequestLogger(rc.Logger),
		Recovery(rc.Logger),
		CORSMiddleware(rc.Config),
		otelgin.Middleware(rc.Config.App.Name),
		ErrorMiddleware(rc.Logger),
	)

	authMiddleware := AuthMiddleware(rc.JWT)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", rc.Auth.Login)
			authGroup.POST("/register", rc.Auth.Register)
			authGroup.GET("/check-email", rc.Auth.CheckEmail)

			profiles := authGroup.Group("/profile")
			profiles.Use(authMiddleware)
			{
				profiles.GET("/:id", rc.Profile.GetProfile)
				profiles.PUT("/:id", rc.Profile.UpdateProfile)
				profiles.GET("/:id/details", rc.Profile.GetProfileDetails)
				profiles.PUT("/:id/activate", rc.Profile.ActivateProfile)
				if rc.Media != nil {
					profiles.POST("/:id/image", rc.Media.UploadProfileImage)
					profiles.POST("/:id/resume", rc.Media.UploadResume)
				}
			}
		}

		public := api.Group("/portfolio")
		{
			public.GET("/health", rc.Portfolio.Health)
			public.GET("/summary", rc.Portfolio.GetSummary)
			public.GET("/user/active", rc.Portfolio.GetActiveProfile)

			public.GET("/experience/:userId", rc.Portfolio.ListExperiences)
			public.GET("/experience/:userId/current", rc.Portfolio.ListCurrentExperiences)
			public.GET("/projects/:userId", rc.Portfolio.ListProjects)
			public.GET("/projects/:userId/feed", rc.Portfolio.ProjectFeed)
			public.GET("/skills/:userId", rc.Portfolio.ListSkills)
			public.GET("/skills/:userId/featured", rc.Portfolio.ListFeaturedSkills)
			public.GET("/skills/:userId/categories", rc.Portfolio.ListSkillCategories)
			public.GET("/education/:userId", rc.Portfolio.ListEducation)

			public.POST("/contact", rc.Contact.Submit)

			private := public.Group("/contact")
			private.Use(authMiddleware)
			{
				private.GET("/messages", rc.Contact.ListMessages)
				private.GET("/unread-count", rc.Contact.UnreadCount)
			}
		}

		actuator := api.Group("/actuator")
		{
			actuator.GET("/health", rc.Actuator.Health)
			actuator.GET("/info", rc.Actuator.Info)
		}
	}

	return router
}
