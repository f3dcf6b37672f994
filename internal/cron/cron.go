package cron

import (
	"context"
	"time"

	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/pkg/logger"
)

// every runs fn immediately and then on each tick until ctx is cancelled.
func every(ctx context.Context, name string, interval time.Duration, fn func()) {
	go func() {
		logger.Log.Info().Str("task", name).Dur("interval", interval).Msg("starting background task")
		fn()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Log.Info().Str("task", name).Msg("background task stopped")
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
}

// StartReminderTask sends overdue reminders every interval.
func StartReminderTask(ctx context.Context, svc *application.HousekeepingService, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	every(ctx, "overdue-reminders", interval, func() {
		sent, err := svc.SendOverdueReminders()
		if err != nil {
			logger.Log.Error().Err(err).Msg("overdue reminder sweep failed")
			return
		}
		if sent > 0 {
			logger.Log.Info().Int("sent", sent).Msg("overdue reminders sent")
		}
	})
}

// StartNotificationCleanup removes read notifications older than retentionDays once a day.
func StartNotificationCleanup(ctx context.Context, svc *application.HousekeepingService, retentionDays int) {
	if retentionDays <= 0 {
		logger.Log.Info().Msg("notification cleanup disabled")
		return
	}
	every(ctx, "notification-cleanup", 24*time.Hour, func() {
		n, err := svc.CleanupNotifications(retentionDays)
		if err != nil {
			logger.Log.Error().Err(err).Msg("failed to clean up read notifications")
			return
		}
		logger.Log.Info().Int64("deleted", n).Int("retention_days", retentionDays).Msg("notification cleanup completed")
	})
}
