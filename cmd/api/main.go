package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linksnip/linksnip/internal/config"
	"github.com/linksnip/linksnip/internal/handler"
	"github.com/linksnip/linksnip/internal/logger"
	"github.com/linksnip/linksnip/internal/middleware"
	mongoRepo "github.com/linksnip/linksnip/internal/repository/mongo"
	redisRepo "github.com/linksnip/linksnip/internal/repository/redis"
	"github.com/linksnip/linksnip/internal/service"
	"github.com/linksnip/linksnip/pkg/safety"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	loggerConfig := logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.OutputPath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}

	if err := logger.Initialize(loggerConfig); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	appLog := logger.Get()
	appLog.Info("Starting linksnip service",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	db, err := setupMongo(cfg)
	if err != nil {
		appLog.Error("Failed to setup mongo", "error", err)
		os.Exit(1)
	}

	redisClient, err := setupRedis(cfg)
	if err != nil {
		appLog.Error("Failed to setup redis", "error", err)
		os.Exit(1)
	}

	linkRepo := mongoRepo.NewLinkRepository(db)
	clickRepo := mongoRepo.NewClickRepository(db)
	linkCache := redisRepo.NewLinkCache(redisClient)

	if err := ensureIndexes(linkRepo, clickRepo); err != nil {
		appLog.Error("Failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	gate := safety.NewGate(cfg.Safety.Endpoint, cfg.Safety.APIKey, cfg.Safety.Timeout)

	shortenerService := service.NewShortenerService(linkRepo, gate)
	redirectService := service.NewRedirectService(linkRepo, clickRepo, linkCache, cfg.Redis.CacheTTL)
	analyticsService := service.NewAnalyticsService(linkRepo, clickRepo)

	shortenerHandler := handler.NewShortenerHandler(shortenerService, cfg.Server.BaseURL)
	redirectHandler := handler.NewRedirectHandler(redirectService, cfg.Server.NotFoundPage)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	router := setupRouter(shortenerHandler, redirectHandler, analyticsHandler, healthHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLog.Info("Server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	gracefulShutdown(srv, cfg.Server.ShutdownTimeout, db.Client(), redisClient, appLog)
}

func setupMongo(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return mongoRepo.Connect(ctx, cfg.Mongo)
}

func setupRedis(cfg *config.Config) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		MaxRetries:   cfg.Redis.MaxRetries,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return redisClient, nil
}

func ensureIndexes(linkRepo *mongoRepo.LinkRepository, clickRepo *mongoRepo.ClickRepository) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := linkRepo.EnsureIndexes(ctx); err != nil {
		return err
	}
	return clickRepo.EnsureIndexes(ctx)
}

func setupRouter(
	shortenerHandler *handler.ShortenerHandler,
	redirectHandler *handler.RedirectHandler,
	analyticsHandler *handler.AnalyticsHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	// health check
	router.GET("/healthz", healthHandler.Healthz)
	router.GET("/readyz", healthHandler.Readyz)

	api := router.Group("/api")
	{
		api.POST("/shorten", shortenerHandler.ShortenURL)
		api.GET("/links", shortenerHandler.ListLinks)
	}

	router.POST("/analysis/:shortCode/summary", analyticsHandler.Summary)

	router.GET("/:code", redirectHandler.Redirect)

	return router
}

func gracefulShutdown(srv *http.Server, timeout time.Duration, mongoClient *mongo.Client, redisClient *redis.Client, appLog *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	appLog.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("Forced shutdown", "error", err)
	}

	if err := mongoClient.Disconnect(ctx); err != nil {
		appLog.Error("Error closing Mongo", "error", err)
	} else {
		appLog.Info("Mongo connection closed")
	}

	if err := redisClient.Close(); err != nil {
		appLog.Error("Error closing Redis", "error", err)
	}

	appLog.Info("Graceful shutdown completed")
}
