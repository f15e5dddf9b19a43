package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"baerstudio/api/routes"
	"baerstudio/internal/bookings"
	"baerstudio/internal/notifications"
	"baerstudio/internal/payments"
	"baerstudio/internal/shared/config"
	"baerstudio/internal/shared/middleware"
	"baerstudio/internal/shared/store"
	"baerstudio/pkg/logger"
	"baerstudio/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Connect the key-value store
	st, err := store.Connect(store.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Error("failed to connect to store", slog.Any("error", err))
		os.Exit(1)
	}

	// Preload slot-claim scripts (critical for booking concurrency)
	{
		locker := bookings.NewSlotLocker(st.Client())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := locker.PreloadScripts(ctx); err != nil {
			// Scripts load lazily on first use, so keep going.
			appLogger.Warn("failed to preload slot scripts", slog.Any("error", err))
		} else {
			appLogger.Info("Slot claim scripts preloaded")
		}
		cancel()
	}

	// Notification publisher: Kafka when brokers are configured,
	// log-only delivery otherwise.
	var notifier notifications.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaNotifier, err := notifications.NewKafkaPublisher(
			notifications.DefaultProducerConfig(cfg.Kafka.Brokers, cfg.Kafka.NotificationTopic))
		if err != nil {
			appLogger.Error("failed to create Kafka publisher, falling back to log-only notifications", slog.Any("error", err))
			notifier = notifications.NewLogPublisher(appLogger)
		} else {
			appLogger.Info("Kafka notification publisher initialized",
				slog.Any("brokers", cfg.Kafka.Brokers),
				slog.String("topic", cfg.Kafka.NotificationTopic))
			notifier = kafkaNotifier
		}
	} else {
		appLogger.Info("No Kafka brokers configured, notifications are log-only")
		notifier = notifications.NewLogPublisher(appLogger)
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			appLogger.Error("error closing notification publisher", slog.Any("error", err))
		}
	}()

	// Payment simulator (swappable for a real gateway integration)
	processor := payments.NewSimulator(cfg.Payment.ProcessingDelay, cfg.Payment.SuccessRate)

	// Rate limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = ratelimit.NewRateLimiter(st.Client(), &ratelimit.Config{
			Enabled:                 cfg.RateLimit.Enabled,
			WindowDuration:          cfg.RateLimit.WindowDuration,
			DefaultRequests:         cfg.RateLimit.DefaultRequests,
			PublicRequests:          cfg.RateLimit.PublicRequests,
			BookingRequests:         cfg.RateLimit.BookingRequests,
			BookingCriticalRequests: cfg.RateLimit.BookingCriticalRequests,
			HealthRequests:          cfg.RateLimit.HealthRequests,
			WhitelistedIPs:          cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests))
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	router := setupRouter(cfg, st, processor, notifier, rateLimiter, appLogger)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("version", Version),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", slog.Any("error", err))
	}
	appLogger.Info("Server exited")
}

func setupRouter(cfg *config.Config, st store.Store, processor payments.Processor, notifier notifications.Publisher, rateLimiter *ratelimit.RateLimiter, appLogger *logger.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(appLogger))
	engine.Use(middleware.CORS())
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	router := routes.NewRouter(cfg, st, processor, notifier, appLogger)
	router.SetupRoutes(engine)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return engine
}
