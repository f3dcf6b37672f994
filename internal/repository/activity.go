package repository

import (
	"github.com/linskybing/creative-desk/internal/domain/activity"
	"gorm.io/gorm"
)

type ActivityRepo interface {
	CreateActivity(a *activity.Activity) error
	ListByTicket(ticketID uint) ([]activity.Activity, error)
	ListRecent(params activity.QueryParams) ([]activity.Activity, error)
	WithTx(tx *gorm.DB) ActivityRepo
}

type DBActivityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) *DBActivityRepo {
	return &DBActivityRepo{db: db}
}

func (r *DBActivityRepo) CreateActivity(a *activity.Activity) error {
	return r.db.Omit("Actor").Create(a).Error
}

func (r *DBActivityRepo) ListByTicket(ticketID uint) ([]activity.Activity, error) {
	var list []activity.Activity
	err := r.db.Where("ticket_id = ?", ticketID).Preload("Actor").Order("created_at asc, id asc").Find(&list).Error
	return list, err
}

// ListRecent returns the newest entries. A nil TicketIDs slice means no restriction.
func (r *DBActivityRepo) ListRecent(params activity.QueryParams) ([]activity.Activity, error) {
	var list []activity.Activity
	if params.TicketIDs != nil && len(params.TicketIDs) == 0 {
		return list, nil
	}
	q := r.db.Model(&activity.Activity{}).Preload("Actor")
	if params.TicketIDs != nil {
		q = q.Where("ticket_id IN ?", params.TicketIDs)
	}
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	err := q.Order("created_at desc, id desc").Limit(limit).Find(&list).Error
	return list, err
}

func (r *DBActivityRepo) WithTx(tx *gorm.DB) ActivityRepo {
	if tx == nil {
		return r
	}
	return &DBActivityRepo{db: tx}
}
