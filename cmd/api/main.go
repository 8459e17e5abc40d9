package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SIDDARDHA2006/OpporLink/internal/api/handlers"
	"github.com/SIDDARDHA2006/OpporLink/internal/api/middleware"
	"github.com/SIDDARDHA2006/OpporLink/internal/api/routes"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/community"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/events"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/opportunities"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/skills"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/user"
	"github.com/SIDDARDHA2006/OpporLink/internal/infrastructure/persistence/memory"
	"github.com/SIDDARDHA2006/OpporLink/pkg/config"
	"github.com/SIDDARDHA2006/OpporLink/pkg/logger"
	"github.com/SIDDARDHA2006/OpporLink/pkg/security/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// @title           OpporLink API
// @version         1.0
// @description     A student opportunity hub serving events, internships, skill tracks and a community feed.

// @host      localhost:3001
// @BasePath

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("") // Empty string will make it search in default locations
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	log := logger.NewLoggerWithLevel(cfg.Logging.Level)
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	// Set up Gin
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	gin.DefaultWriter = os.Stdout

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: append(cfg.CORS.AllowedHeaders,
			"Accept-Encoding",
			"Content-Type",
			"Authorization",
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
			"X-Request-ID",
		},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	metrics := middleware.NewMetricsMiddleware()
	router.Use(metrics.CollectMetrics())

	// Add Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize the in-memory catalog store
	store := memory.NewStore()
	if cfg.Catalog.Seed {
		if err := store.Seed(); err != nil {
			log.Fatal("Failed to seed catalog", zap.Error(err))
		}
		log.Info("Catalog seeded with demo fixtures")
	}

	// Initialize logrus logger for the community service
	communityLogger := logrus.New()
	communityLogger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Server.Mode == "production" {
		communityLogger.SetLevel(logrus.InfoLevel)
	} else {
		communityLogger.SetLevel(logrus.DebugLevel)
	}

	// Initialize repositories
	eventRepo := memory.NewEventRepository(store)
	userRepo := memory.NewUserRepository(store)
	opportunityRepo := memory.NewOpportunityRepository(store)
	skillRepo := memory.NewSkillRepository(store)
	communityRepo := memory.NewCommunityRepository(store)

	// Initialize rate limiter
	rateLimiter := auth.NewMemoryRateLimiter(1*time.Minute, 1000)

	// Initialize services
	eventsService := events.NewService(eventRepo, userRepo, log.Logger)
	userService := user.NewService(userRepo, log.Logger)
	opportunitiesService := opportunities.NewService(opportunityRepo, log.Logger)
	skillsService := skills.NewService(skillRepo)
	communityService := community.NewService(communityRepo, communityLogger)

	// Initialize handlers
	eventsHandler := handlers.NewEventsHandler(eventsService)
	opportunitiesHandler := handlers.NewOpportunitiesHandler(opportunitiesService)
	skillsHandler := handlers.NewSkillsHandler(skillsService)
	communityHandler := handlers.NewCommunityHandler(communityService)
	searchHandler := handlers.NewSearchHandler(eventsService, opportunitiesService, skillsService, userService, communityService)

	log.Info("Registering routes...")

	// Health check routes (no /api prefix as these are system endpoints)
	routes.SetupHealthRoutes(router)
	log.Info("Registered health check routes at /health and /health/ready")

	eventsRoutes := routes.NewEventsRoutes(eventsHandler, cfg.Auth.JWTSecret, rateLimiter)
	eventsRoutes.RegisterRoutes(router)
	log.Info("Registered event routes at /api/events")

	opportunitiesRoutes := routes.NewOpportunitiesRoutes(opportunitiesHandler, rateLimiter)
	opportunitiesRoutes.RegisterRoutes(router)
	log.Info("Registered opportunity routes at /api/opportunities")

	skillsRoutes := routes.NewSkillsRoutes(skillsHandler, rateLimiter)
	skillsRoutes.RegisterRoutes(router)
	log.Info("Registered skill routes at /api/skills")

	communityRoutes := routes.NewCommunityRoutes(communityHandler, rateLimiter)
	communityRoutes.RegisterRoutes(router)
	log.Info("Registered community routes at /api/community")

	searchRoutes := routes.NewSearchRoutes(searchHandler, rateLimiter)
	searchRoutes.RegisterRoutes(router)
	log.Info("Registered search and stats routes at /api/search and /api/stats")

	// Start server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))

		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
