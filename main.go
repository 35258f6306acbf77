package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"ms-events/internal/analytics"
	analytics_api "ms-events/internal/analytics/api"
	"ms-events/internal/auth"
	"ms-events/internal/bookings"
	"ms-events/internal/bookings/booking_api"
	booking_db "ms-events/internal/bookings/db"
	"ms-events/internal/config"
	"ms-events/internal/events"
	"ms-events/internal/events/cache"
	event_db "ms-events/internal/events/db"
	"ms-events/internal/events/event_api"
	"ms-events/internal/kafka"
	"ms-events/internal/logger"
)

func connectPostgres(cfg *config.Config, logger *logger.Logger) *bun.DB {
	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		logger.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		sqldb, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			logger.Error("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
			time.Sleep(2 * time.Second)
			continue
		}

		err = sqldb.Ping()
		if err == nil {
			break
		}

		logger.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}

	if err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	logger.Info("DATABASE", "✅ PostgreSQL connection successful")
	return bun.NewDB(sqldb, pgdialect.New())
}

func connectRedis(ctx context.Context, cfg *config.Config, logger *logger.Logger) *redis.Client {
	if !cfg.Redis.Enabled {
		logger.Warn("REDIS", "Redis disabled, event reads will skip the cache")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("REDIS", fmt.Sprintf("Redis connection error, continuing without cache: %v", err))
		return nil
	}

	logger.Info("REDIS", fmt.Sprintf("✅ Redis connection successful to %s", cfg.Redis.Addr))
	return redisClient
}

func main() {
	logger := logger.NewLogger()
	defer logger.Close()

	logger.Info("APP", "Starting Event Service initialization")

	if err := godotenv.Load(); err != nil {
		logger.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		logger.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	ctx := context.Background()

	bunDB := connectPostgres(cfg, logger)
	defer bunDB.Close()

	redisClient := connectRedis(ctx, cfg, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	var kafkaProducer *kafka.Producer
	if cfg.Kafka.Enabled {
		kafkaProducer = kafka.NewProducer(cfg.Kafka.Brokers)
		defer kafkaProducer.Close()
		logger.Info("KAFKA", fmt.Sprintf("Kafka producer initialized for brokers %v", cfg.Kafka.Brokers))

		if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, kafka.Topics); err != nil {
			logger.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
		} else {
			logger.Info("KAFKA", "Required topics ensured successfully")
		}
	} else {
		logger.Warn("KAFKA", "Kafka disabled, write events will not be published")
	}

	var eventCache events.EventCache
	if redisClient != nil {
		eventCache = cache.NewCache(redisClient)
	}

	// Interfaces take nil implementations cleanly only through typed nils,
	// so wire the producer conditionally.
	var eventPublisher events.KafkaPublisher
	var bookingPublisher bookings.KafkaPublisher
	if kafkaProducer != nil {
		eventPublisher = kafkaProducer
		bookingPublisher = kafkaProducer
	}

	eventService := events.NewEventService(&event_db.DB{Bun: bunDB}, eventCache, eventPublisher)
	bookingService := bookings.NewBookingService(&booking_db.DB{Bun: bunDB}, bookingPublisher)
	analyticsService := analytics.NewService(bunDB)

	eventHandler := &event_api.Handler{
		EventService: eventService,
		Logger:       logger,
	}
	bookingHandler := &booking_api.Handler{
		BookingService: bookingService,
		Logger:         logger,
	}
	analyticsHandler := analytics_api.NewHandler(analyticsService, logger)

	logger.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()

	// --- Public Routes ---
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/api/events", eventHandler.ListEvents)
	r.Get("/api/events/slug/{slug}", eventHandler.GetEventBySlug)
	logger.Info("ROUTER", "Public event read endpoints registered under /api/events")

	// --- Protected Routes ---
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware())
		logger.Info("AUTH", "JWT middleware applied to protected API routes")

		r.Route("/api", func(r chi.Router) {
			r.Post("/events", eventHandler.CreateEvent)
			r.Put("/events/{eventId}", eventHandler.UpdateEvent)
			logger.Info("ROUTER", "Event write routes registered under /api/events")

			r.Post("/bookings", bookingHandler.CreateBooking)
			r.Get("/events/{eventId}/bookings", bookingHandler.ListBookingsByEvent)
			logger.Info("ROUTER", "Booking routes registered under /api/bookings")

			analyticsHandler.RegisterRoutes(r)
			logger.Info("ROUTER", "Analytics routes registered under /api/events/{eventId}/analytics")
		})
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP", fmt.Sprintf("🚀 Event Service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	logger.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		logger.Info("HTTP", "✅ Event Service shutdown complete")
	}
}
