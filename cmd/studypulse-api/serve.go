package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/studypulse/backend/internal/config"
	"github.com/studypulse/backend/internal/handlers"
	"github.com/studypulse/backend/internal/inference"
	"github.com/studypulse/backend/internal/inference/gemini"
	"github.com/studypulse/backend/internal/logger"
	"github.com/studypulse/backend/internal/middleware"
	"github.com/studypulse/backend/internal/repository"
	"github.com/studypulse/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting studypulse api server",
		logger.String("env", cfg.Server.Env),
		logger.String("database", cfg.Database.Path),
		logger.Any("ai_enabled", cfg.AIEnabled()),
	)

	// Open the SQLite store and apply the schema
	db, err := repository.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(db)
	performanceRepo := repository.NewPerformanceRepository(db)
	wellnessRepo := repository.NewWellnessRepository(db)
	aggregateRepo := repository.NewAggregateRepository(db)

	// The narrative service runs without a client when no API key is set
	var aiClient inference.Client
	if cfg.AIEnabled() {
		aiClient = gemini.NewClient(cfg.AI.GeminiAPIKey, cfg.AI.Model)
	}

	// Initialize services
	sessionService := service.NewSessionService(sessionRepo)
	performanceService := service.NewPerformanceService(performanceRepo)
	wellnessService := service.NewWellnessService(wellnessRepo)
	analyticsService := service.NewAnalyticsService(sessionRepo, aggregateRepo)
	patternService := service.NewPatternService(aggregateRepo)
	narrativeService := service.NewNarrativeService(sessionRepo, performanceRepo, wellnessRepo, aggregateRepo, aiClient)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionService)
	performanceHandler := handlers.NewPerformanceHandler(performanceService)
	wellnessHandler := handlers.NewWellnessHandler(wellnessService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, patternService)
	insightsHandler := handlers.NewInsightsHandler(narrativeService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders(cfg.Server.Env))
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Identity())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		code := 200
		if err := db.PingContext(c.Request.Context()); err != nil {
			status = "degraded"
			code = 503
		}
		c.JSON(code, gin.H{
			"status": status,
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/sessions", sessionHandler.ListSessions)
		v1.POST("/sessions", sessionHandler.CreateSession)
		v1.DELETE("/sessions/:id", sessionHandler.DeleteSession)

		v1.GET("/performance", performanceHandler.ListRecords)
		v1.POST("/performance", performanceHandler.CreateRecord)
		v1.DELETE("/performance/:id", performanceHandler.DeleteRecord)

		v1.GET("/wellness", wellnessHandler.ListEntries)
		v1.POST("/wellness", wellnessHandler.CreateEntry)
		v1.DELETE("/wellness/:id", wellnessHandler.DeleteEntry)

		v1.GET("/dashboard", analyticsHandler.GetDashboard)
		v1.GET("/charts/study-data", analyticsHandler.GetStudyChartData)
		v1.GET("/patterns", analyticsHandler.GetPatterns)
		v1.GET("/insights", insightsHandler.GetInsights)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
