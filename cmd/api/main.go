package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"hirewire/internal/app"
	"hirewire/internal/config"
	"hirewire/internal/database"
	apphttp "hirewire/internal/http"
	"hirewire/internal/http/handlers"
	"hirewire/internal/http/metrics"
	httpmw "hirewire/internal/http/middleware"
	"hirewire/internal/http/response"
	"hirewire/internal/integration/openrouter"
	"hirewire/internal/observability"
	"hirewire/internal/repository/postgres"
	"hirewire/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	postRepo := postgres.NewPostRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)
	assistantClient := openrouter.NewClient(cfg.OpenRouterBaseURL, cfg.OpenRouterAPIKey, cfg.OpenRouterModel, &http.Client{Timeout: 30 * time.Second})

	authService := app.NewAuthService(userRepo, jwtProvider, cfg.TokenTTL)
	jobService := app.NewJobService(jobRepo, applicationRepo, userRepo)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, userRepo)
	feedService := app.NewFeedService(postRepo, userRepo)

	var rateLimiter httpmw.Limiter
	if cfg.RedisAddr != "" {
		rateLimiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	} else {
		rateLimiter = httpmw.NewRateLimiter()
	}

	authHandler := handlers.NewAuthHandler(authService, rateLimiter)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, rateLimiter)
	feedHandler := handlers.NewFeedHandler(feedService, rateLimiter)
	assistantHandler := handlers.NewAssistantHandler(assistantClient, rateLimiter)
	middleware := httpmw.NewAuthMiddleware(jwtProvider)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        authHandler,
		JobHandler:         jobHandler,
		ApplicationHandler: applicationHandler,
		FeedHandler:        feedHandler,
		AssistantHandler:   assistantHandler,
		MetricsHandler:     handlers.NewMetricsHandler(collector),
		AuthMiddleware:     middleware,
		Metrics:            collector,
		Logger:             logger,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
