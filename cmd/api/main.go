package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NiruddeshJatra/mentorship-platform/internal/adapter/handler"
	"github.com/NiruddeshJatra/mentorship-platform/internal/adapter/repository/postgres"
	"github.com/NiruddeshJatra/mentorship-platform/internal/core/services"
	"github.com/NiruddeshJatra/mentorship-platform/internal/platform/auth"
	"github.com/NiruddeshJatra/mentorship-platform/internal/platform/cache"
	"github.com/NiruddeshJatra/mentorship-platform/internal/platform/config"
	"github.com/NiruddeshJatra/mentorship-platform/internal/platform/database"
	"github.com/NiruddeshJatra/mentorship-platform/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// the logger is configured from cfg, so fall back to the default one
		logger.New(logger.Config{}).WithError(err).Fatal("invalid configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.WithError(err).Fatal("failed to apply schema")
		}
		log.Info("schema applied")
	}

	redisClient := cache.NewRedisClient(ctx, cache.Config{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, log)
	defer cache.Close(redisClient)

	store := postgres.NewStore(db)
	repos := store.Repositories()
	opts := []services.Option{services.WithSlotCacheTTL(cfg.SlotCacheTTL)}

	bookingService := services.NewBookingService(repos, store, redisClient, log, opts...)
	rescheduleService := services.NewRescheduleService(repos, store, log, opts...)
	reviewService := services.NewReviewService(repos, store, log, opts...)
	slotService := services.NewSlotService(repos, store, redisClient, log, opts...)
	expertiseService := services.NewExpertiseService(repos, log, opts...)

	rateLimit, err := handler.RateLimit(cfg.RateLimit, redisClient, log)
	if err != nil {
		log.WithError(err).WithField("rate", cfg.RateLimit).Fatal("invalid rate limit")
	}

	router := handler.NewRouter(handler.RouterDeps{
		Log:          log,
		Tokens:       auth.NewTokenManager(cfg.JWTSecret),
		RateLimit:    rateLimit,
		CORSOrigins:  cfg.CORSOrigins,
		Bookings:     handler.NewBookingHandler(bookingService, log),
		Reschedules:  handler.NewRescheduleHandler(rescheduleService, log),
		Reviews:      handler.NewReviewHandler(reviewService, log),
		Availability: handler.NewAvailabilityHandler(slotService, log),
		Expertise:    handler.NewExpertiseHandler(expertiseService, log),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server startup failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
		os.Exit(1)
	}

	log.Info("server exiting")
}
