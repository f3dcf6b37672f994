package application

import (
	"fmt"
	"time"

	"github.com/linskybing/creative-desk/internal/clock"
	"github.com/linskybing/creative-desk/internal/domain/notification"
	"github.com/linskybing/creative-desk/internal/repository"
	"github.com/linskybing/creative-desk/pkg/logger"
)

// ReminderCooldown is the minimum gap between two overdue reminders for one ticket.
const ReminderCooldown = 24 * time.Hour

type HousekeepingService struct {
	Repos         *repository.Repos
	notifications *NotificationService
	notifier      *Notifier
	clock         clock.Clock
}

func NewHousekeepingService(repos *repository.Repos, notifications *NotificationService, notifier *Notifier, clk clock.Clock) *HousekeepingService {
	return &HousekeepingService{Repos: repos, notifications: notifications, notifier: notifier, clock: clk}
}

// SendOverdueReminders notifies the assignee (or the requester when unassigned) of
// every open overdue ticket not reminded within ReminderCooldown. Failures on one
// ticket do not stop the sweep.
func (s *HousekeepingService) SendOverdueReminders() (int, error) {
	now := s.clock.Now()
	due, err := s.Repos.Ticket.ListDueForReminder(now, now.Add(-ReminderCooldown))
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range due {
		t := due[i]
		recipient := t.RequesterID
		if t.AssigneeID != nil {
			recipient = *t.AssigneeID
		}
		message := fmt.Sprintf("%q is overdue (due %s)", t.Title, t.DueDate.UTC().Format("2006-01-02"))

		var staged []notification.Notification
		err := s.Repos.ExecTx(func(r *repository.Repos) error {
			var err error
			staged, err = s.notifier.Stage(r, []uint{recipient}, 0, &t.ID, notification.TypeOverdue, message)
			if err != nil {
				return err
			}
			return r.Ticket.MarkReminded(t.ID, now)
		})
		if err != nil {
			logger.Log.Error().Err(err).Uint("ticket_id", t.ID).Msg("failed to send overdue reminder")
			continue
		}
		s.notifier.Deliver(staged)
		sent++
	}
	return sent, nil
}

func (s *HousekeepingService) CleanupNotifications(retentionDays int) (int64, error) {
	return s.notifications.CleanupRead(s.clock.Now(), retentionDays)
}
