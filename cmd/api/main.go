package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tgmsites/site-engine/internal/api"
	"github.com/tgmsites/site-engine/internal/config"
	"github.com/tgmsites/site-engine/internal/middleware"
	"github.com/tgmsites/site-engine/internal/registry/static"
	"github.com/tgmsites/site-engine/internal/repository"
	"github.com/tgmsites/site-engine/internal/repository/postgres"
	"github.com/tgmsites/site-engine/internal/service"
	"github.com/tgmsites/site-engine/internal/service/cache"
	"github.com/tgmsites/site-engine/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	// The process stays up without a database: resolution runs off the
	// compiled-in binding table and content endpoints serve empty lists.
	var repo repository.Repository
	var registry service.DomainRegistry
	var tenants repository.TenantRepository
	var contentRepo repository.ContentRepository

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Warnf("Database unavailable, running on the static domain table: %v", err)
	} else {
		defer dbConnections.Close()
		repo = postgres.NewPostgresRepository(dbConnections)
		registry = repo.Binding()
		tenants = repo.Tenant()
		contentRepo = repo.Content()
		appLogger.Info("Database connections established - writer and reader connected")
	}

	staticRegistry := static.NewRegistry(static.DefaultBindings())

	resolver := service.NewTenantResolver(registry, staticRegistry, tenants, service.ResolverConfig{
		DefaultSiteName: cfg.DefaultSiteName,
		PortTenants:     cfg.PortTenants,
	}, appLogger)

	// Redis is optional too: without it there is no binding cache and the
	// rate limiters pass everything through.
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Warnf("Redis unavailable, binding cache and rate limiting disabled: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		resolver.SetBindingCache(cache.NewRedisBindingCache(redisClient, cfg.BindingCacheTTL, appLogger))
	}

	selector := service.NewContentSelector(contentRepo, appLogger)
	sitemapService := service.NewSitemapService(contentRepo, appLogger)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, appLogger)

	server := api.NewServer(
		resolver,
		selector,
		sitemapService,
		rateLimitMiddleware,
		cfg.GlobalRateLimit,
		appLogger,
	)

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	server.SetupRoutes(router)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
