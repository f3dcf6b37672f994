package repository

import (
	"time"

	"github.com/linskybing/creative-desk/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	CreateNotifications(list []notification.Notification) error
	ListNotifications(userID uint, params notification.ListParams) ([]notification.Notification, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(userID uint, id uint) (bool, error)
	MarkAllRead(userID uint) (int64, error)
	DeleteReadBefore(cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{db: db}
}

func (r *DBNotificationRepo) CreateNotifications(list []notification.Notification) error {
	if len(list) == 0 {
		return nil
	}
	return r.db.Create(&list).Error
}

func (r *DBNotificationRepo) ListNotifications(userID uint, params notification.ListParams) ([]notification.Notification, error) {
	var list []notification.Notification
	q := r.db.Where("user_id = ?", userID)
	if params.UnreadOnly {
		q = q.Where("read = ?", false)
	}
	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	err := q.Order("created_at desc, id desc").Limit(limit).Find(&list).Error
	return list, err
}

func (r *DBNotificationRepo) CountUnread(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&notification.Notification{}).Where("user_id = ? AND read = ?", userID, false).Count(&n).Error
	return n, err
}

// MarkRead reports false when the notification does not belong to userID.
func (r *DBNotificationRepo) MarkRead(userID uint, id uint) (bool, error) {
	res := r.db.Model(&notification.Notification{}).Where("id = ? AND user_id = ?", id, userID).Update("read", true)
	return res.RowsAffected > 0, res.Error
}

func (r *DBNotificationRepo) MarkAllRead(userID uint) (int64, error) {
	res := r.db.Model(&notification.Notification{}).Where("user_id = ? AND read = ?", userID, false).Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *DBNotificationRepo) DeleteReadBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("read = ? AND created_at < ?", true, cutoff).Delete(&notification.Notification{})
	return res.RowsAffected, res.Error
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{db: tx}
}
