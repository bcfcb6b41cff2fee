package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"course-marketplace-api/internal/client"
	"course-marketplace-api/internal/config"
	"course-marketplace-api/internal/database"
	"course-marketplace-api/internal/job"
	"course-marketplace-api/internal/metrics"
	"course-marketplace-api/internal/repository"
	"course-marketplace-api/internal/router"
)

const dbStatsInterval = 15 * time.Second

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Course Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("db_driver", cfg.Database.Driver),
	)

	db, err := database.New(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)
	logger.Info("Database connected successfully")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to run database migrations", zap.Error(err))
		}
		if err := database.SeedRoles(context.Background(), db, database.DefaultRoles, logger); err != nil {
			logger.Fatal("Failed to seed roles", zap.Error(err))
		}
		logger.Info("Database migrations completed")
	}

	m := metrics.New(logger)
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	stopStats := database.StartDBStatsCollector(db, m, dbStatsInterval)
	defer close(stopStats)

	var rdb *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Addr != "" {
		rdb, err = database.NewRedis(context.Background(), database.RedisConfig{
			URL:      cfg.Redis.URL,
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			logger.Warn("Redis unavailable, media readiness will not be cached", zap.Error(err))
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	var media client.MediaClient
	if cfg.Media.APIKey != "" {
		media = client.NewMediaClient(cfg.Media.BaseURL, cfg.Media.APIKey, cfg.Media.Timeout, logger, m)
		logger.Info("Media client initialized", zap.String("base_url", cfg.Media.BaseURL))
	} else {
		logger.Warn("Media API key not configured, video creation and upload tokens are disabled")
	}

	scheduler := job.NewScheduler(logger)
	counter := job.NewRepositoryCounter(repository.NewRepositories(db))
	if err := scheduler.Schedule("business-metrics", cfg.Jobs.MetricsSchedule, job.NewBusinessMetricsJob(counter, m, logger)); err != nil {
		logger.Warn("Failed to schedule business metrics job", zap.Error(err))
	}
	scheduler.Start()

	r := router.Setup(router.Config{
		DB:            db,
		Logger:        logger,
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		BasePath:      cfg.Server.BasePath,
		Metrics:       m,
		Media:         media,
		Redis:         rdb,
		MediaCacheTTL: cfg.Media.ReadyCacheTTL,
		CORSOrigins:   cfg.CORS.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Course Service started successfully", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	scheduler.Stop(ctx)

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
