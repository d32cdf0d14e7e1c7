package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news-portal/internal/config"
	"news-portal/internal/handler"
	"news-portal/internal/identity"
	"news-portal/internal/infrastructure/database"
	"news-portal/internal/live"
	"news-portal/internal/logger"
	"news-portal/internal/metrics"
	"news-portal/internal/middleware"
	"news-portal/internal/repository"
	"news-portal/internal/service"
	"news-portal/internal/storage"
	"news-portal/internal/validator"
)

const liveRoute = "/api/v1/news/live"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLogger(logger.New(cfg.LogLevel))

	// Apply schema migrations
	if err := database.Migrate(cfg.MigrationsDir, cfg.DatabaseURL()); err != nil {
		logger.Fatal("Failed to apply migrations",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()
	metrics.LogHealthCheckMetrics(context.Background(), pool)

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	newsRepo := repository.NewPostgresNewsRepository(pool)
	authorRepo := repository.NewPostgresAuthorRepository(pool)
	publisherRepo := repository.NewPostgresPublisherRepository(pool)

	// Initialize blob storage and identity
	blobStore, err := storage.NewLocalStore(cfg.BlobDir, cfg.BlobBaseURL, cfg.MaxUploadBytes)
	if err != nil {
		logger.Fatal("Failed to open blob store",
			slog.String("error", err.Error()))
	}
	identityProvider := identity.NewTokenProvider(cfg.AuthTokens)
	if len(cfg.AuthTokens) == 0 {
		logger.Warn("No AUTH_TOKENS configured, write routes will reject every request")
	}

	// Start the live feed
	liveCtx, stopLive := context.WithCancel(context.Background())
	defer stopLive()
	feed := live.NewFeed(newsRepo)
	listener := live.NewListener(pool, feed, cfg.LiveReconnectDelay)
	go listener.Run(liveCtx)

	// Initialize services
	v := validator.NewValidator()
	directoryService := service.NewDirectoryService(authorRepo, publisherRepo)
	listingService := service.NewListingService(newsRepo, directoryService, feed)
	submissionService := service.NewSubmissionService(newsRepo, authorRepo, publisherRepo, blobStore, v, cfg.RedirectDelay)
	uploadService := service.NewUploadService(blobStore)

	// Initialize handlers
	newsHandler := handler.NewNewsHandler(submissionService, listingService)
	liveHandler := handler.NewLiveHandler(listingService)
	directoryHandler := handler.NewDirectoryHandler(directoryService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	contentHandler := handler.NewContentHandler(v)
	authHandler := handler.NewAuthHandler(identityProvider)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics(liveRoute))
	router.Use(gin.Logger())
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Blob retrieval, unless URLs point at another host
	if strings.HasPrefix(cfg.BlobBaseURL, "/") {
		router.StaticFS(cfg.BlobBaseURL, gin.Dir(blobStore.Root(), false))
	}

	requireAuth := middleware.Auth(identityProvider)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// News routes
		news := v1.Group("/news")
		{
			news.GET("", newsHandler.List)
			news.GET("/live", liveHandler.Stream)
			news.GET("/:id", newsHandler.Get)
			news.GET("/:id/form", newsHandler.Form)
			news.POST("", requireAuth, newsHandler.Create)
			news.PUT("/:id", requireAuth, newsHandler.Update)
			news.DELETE("/:id", requireAuth, newsHandler.Delete)
		}

		v1.GET("/authors", directoryHandler.Authors)
		v1.GET("/publishers", directoryHandler.Publishers)
		v1.POST("/uploads", requireAuth, uploadHandler.Upload)

		// Content preview routes
		contentRoutes := v1.Group("/content")
		{
			contentRoutes.POST("/render", contentHandler.Render)
			contentRoutes.GET("/embed", contentHandler.Embed)
		}

		// Identity routes
		auth := v1.Group("/auth", requireAuth)
		{
			auth.GET("/me", authHandler.Me)
			auth.POST("/signout", authHandler.SignOut)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop the live listener first so no refreshes run during shutdown
	logger.Info("Stopping live listener")
	stopLive()

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
