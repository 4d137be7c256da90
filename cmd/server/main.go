package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/inkwell/adapters/event"
	httpAdapter "github.com/khoahotran/inkwell/adapters/http"
	"github.com/khoahotran/inkwell/adapters/llm"
	"github.com/khoahotran/inkwell/adapters/persistence"
	"github.com/khoahotran/inkwell/internal/application/service"
	assistUC "github.com/khoahotran/inkwell/internal/application/usecase/assist"
	authUC "github.com/khoahotran/inkwell/internal/application/usecase/auth"
	"github.com/khoahotran/inkwell/internal/config"
	"github.com/khoahotran/inkwell/internal/domain/history"
	"github.com/khoahotran/inkwell/pkg/auth"
	"github.com/khoahotran/inkwell/pkg/logger"
	"github.com/khoahotran/inkwell/pkg/tracing"
)

func main() {
	fmt.Println("Start Inkwell API Server...")

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Tracing (optional)
	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "inkwell-api")
		if err != nil {
			appLogger.Fatal("Failed to initialize tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Completion API client. Without a key the server still starts; the
	// assist routes answer with a configuration error, as the original did.
	var llmSvc service.LLMService
	if cfg.OpenRouter.APIKey != "" {
		llmSvc, err = llm.NewOpenRouterAdapter(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize OpenRouter adapter", err)
		}
	} else {
		appLogger.Warn("OPENROUTER_API_KEY is not set. Completion calls will fail.")
	}

	// History store: Postgres when a DSN is configured, process memory
	// otherwise.
	var historyRepo history.Repository
	if cfg.DB.DSN != "" {
		dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Postgres", err)
		}
		defer dbPool.Close()
		historyRepo = persistence.NewPostgresHistoryRepo(dbPool, appLogger)
	} else {
		appLogger.Warn("DB_DSN is not set. History is kept in memory and lost on restart.")
		historyRepo = persistence.NewMemoryHistoryRepo()
	}

	// Completion cache (optional)
	var completionCache service.CompletionCache
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Redis", err)
		}
		defer redisClient.Close()
		completionCache = persistence.NewRedisCompletionCache(redisClient, cfg.Redis.CacheTTL, appLogger)
	}

	// Completion events (optional)
	var publisher service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	plotUseCase := assistUC.NewPlotUseCase(llmSvc, completionCache, historyRepo, publisher, appLogger, cfg.OpenRouter.PlotModel)
	nameUseCase := assistUC.NewNameUseCase(llmSvc, completionCache, historyRepo, publisher, appLogger, cfg.OpenRouter.NameModel)
	proofreadUseCase := assistUC.NewProofreadUseCase(llmSvc, completionCache, historyRepo, publisher, appLogger, cfg.OpenRouter.PlotModel)
	thesaurusUseCase := assistUC.NewThesaurusUseCase(llmSvc, completionCache, historyRepo, publisher, appLogger, cfg.OpenRouter.PlotModel)
	historyUseCase := assistUC.NewHistoryUseCase(historyRepo, appLogger)
	loginUseCase := authUC.NewLoginUseCase(cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash, jwtSvc, appLogger)

	// HTTP Handlers
	assistHandler := httpAdapter.NewAssistHandler(plotUseCase, nameUseCase, proofreadUseCase, thesaurusUseCase, appLogger)
	historyHandler := httpAdapter.NewHistoryHandler(historyUseCase, appLogger)
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(errorMiddleware)

	// Static frontend pages
	pages := router.Group("/", httpAdapter.StaticCacheMiddleware(cfg.App.Env))
	{
		pages.StaticFile("/", "./static/home.html")
		pages.StaticFile("/plot", "./static/index.html")
		pages.StaticFile("/history", "./static/history.html")
		pages.StaticFile("/proofread", "./static/proofread.html")
	}

	router.POST("/send_api", assistHandler.GeneratePlot)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "UP"}) })
		api.GET("/history", historyHandler.ListHistory)
		api.POST("/generate_name", assistHandler.GenerateName)
		api.POST("/proofread", assistHandler.Proofread)
		api.POST("/thesaurus", assistHandler.Thesaurus)

		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.DELETE("/history", historyHandler.ClearHistory)
			}
		}
	}

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
