package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/internal/clock"
	"github.com/linskybing/creative-desk/internal/config"
	"github.com/linskybing/creative-desk/internal/config/db"
	"github.com/linskybing/creative-desk/internal/cron"
	"github.com/linskybing/creative-desk/internal/repository"
	"github.com/linskybing/creative-desk/pkg/logger"
)

// housekeeper runs the reminder and cleanup sweeps without serving HTTP, for
// deployments that start the API with RUN_HOUSEKEEPING=false. Reminders it sends
// are stored but not pushed live, since it holds no websocket connections.
func main() {
	config.LoadConfig()
	logger.New(config.AppEnv)

	db.Init()

	repos := repository.New()
	svcs := application.New(repos, nil, nil, clock.NewSystem())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cron.StartReminderTask(ctx, svcs.Housekeeping, time.Duration(config.ReminderIntervalMinutes)*time.Minute)
	cron.StartNotificationCleanup(ctx, svcs.Housekeeping, config.NotificationRetentionDays)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	logger.Log.Info().Msg("shutdown signal")
}
