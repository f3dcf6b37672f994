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
	"github.com/linskybing/creative-desk/internal/api/handlers"
	"github.com/linskybing/creative-desk/internal/api/middleware"
	"github.com/linskybing/creative-desk/internal/api/routes"
	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/internal/clock"
	"github.com/linskybing/creative-desk/internal/config"
	"github.com/linskybing/creative-desk/internal/config/db"
	"github.com/linskybing/creative-desk/internal/cron"
	"github.com/linskybing/creative-desk/internal/realtime"
	"github.com/linskybing/creative-desk/internal/repository"
	"github.com/linskybing/creative-desk/pkg/logger"
	"github.com/linskybing/creative-desk/pkg/storage"
)

// @title Creative Request Desk API
// @version 1.0
// @description REST backend for submitting, approving and tracking creative requests.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	logger.New(config.AppEnv)

	middleware.Init()

	db.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store storage.ObjectStore
	if ms, err := storage.NewMinioStore(ctx); err != nil {
		logger.Log.Warn().Err(err).Msg("object storage unavailable, attachments disabled")
	} else {
		store = ms
	}

	repos := repository.New()
	hub := realtime.NewHub()
	svcs := application.New(repos, store, hub, clock.NewSystem())

	seed, err := config.LoadSeed(config.SeedFile)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to load seed file")
	}
	if err := svcs.Bootstrap.Run(config.ReservedAdminUsername, config.AdminPassword, seed); err != nil {
		logger.Log.Fatal().Err(err).Msg("bootstrap failed")
	}

	if config.RunHousekeeping {
		cron.StartReminderTask(ctx, svcs.Housekeeping, time.Duration(config.ReminderIntervalMinutes)*time.Minute)
		cron.StartNotificationCleanup(ctx, svcs.Housekeeping, config.NotificationRetentionDays)
	}

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.MaxMultipartMemory = 8 << 20

	routes.RegisterRoutes(router, handlers.New(svcs, hub), repos)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info().Str("addr", srv.Addr).Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal().Err(err).Msg("failed to start")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	logger.Log.Info().Msg("shutdown signal")
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 15*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
