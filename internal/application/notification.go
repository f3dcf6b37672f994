package application

import (
	"errors"
	"time"

	"github.com/linskybing/creative-desk/internal/domain/notification"
	"github.com/linskybing/creative-desk/internal/realtime"
	"github.com/linskybing/creative-desk/internal/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notifier persists notifications inside the caller's transaction and pushes them
// to live connections once that transaction has committed.
type Notifier struct {
	publisher realtime.Publisher
}

func NewNotifier(publisher realtime.Publisher) *Notifier {
	return &Notifier{publisher: publisher}
}

// Stage writes one notification per recipient, skipping the actor and duplicates.
func (n *Notifier) Stage(repos *repository.Repos, recipients []uint, actorID uint, ticketID *uint, typ, message string) ([]notification.Notification, error) {
	seen := map[uint]bool{actorID: true}
	var list []notification.Notification
	for _, uid := range recipients {
		if uid == 0 || seen[uid] {
			continue
		}
		seen[uid] = true
		list = append(list, notification.Notification{
			UserID:   uid,
			TicketID: ticketID,
			Type:     typ,
			Message:  message,
		})
	}
	if len(list) == 0 {
		return nil, nil
	}
	if err := repos.Notification.CreateNotifications(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Deliver pushes staged notifications. Safe to call with a nil publisher.
func (n *Notifier) Deliver(list []notification.Notification) {
	if n == nil || n.publisher == nil {
		return
	}
	for _, item := range list {
		n.publisher.Publish(item.UserID, realtime.Event{Type: "notification", Data: item})
	}
}

type NotificationService struct {
	Repos *repository.Repos
}

func NewNotificationService(repos *repository.Repos) *NotificationService {
	return &NotificationService{Repos: repos}
}

func (s *NotificationService) ListNotifications(userID uint, params notification.ListParams) ([]notification.Notification, error) {
	return s.Repos.Notification.ListNotifications(userID, params)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.Repos.Notification.CountUnread(userID)
}

func (s *NotificationService) MarkRead(userID, id uint) error {
	ok, err := s.Repos.Notification.MarkRead(userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(userID uint) (int64, error) {
	return s.Repos.Notification.MarkAllRead(userID)
}

// CleanupRead removes read notifications older than retentionDays.
func (s *NotificationService) CleanupRead(now time.Time, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	return s.Repos.Notification.DeleteReadBefore(now.AddDate(0, 0, -retentionDays))
}
