package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"gorm.io/gorm"
)

// ErrVersionConflict is returned when an update was based on a stale ticket version.
var ErrVersionConflict = errors.New("ticket was modified by someone else")

type TicketRepo interface {
	CreateTicket(t *ticket.Ticket) error
	GetTicketByID(id uint) (ticket.Ticket, error)
	GetTicketDetail(id uint) (ticket.Ticket, error)
	ListTickets(f ticket.Filter) ([]ticket.Ticket, int64, error)
	ListVisibleTicketIDs(f ticket.Filter) ([]uint, error)
	UpdateTicket(t *ticket.Ticket, expectedVersion int) error
	DeleteTicket(id uint) error
	CountByStatus(f ticket.Filter) (map[ticket.Status]int64, error)
	CountOverdue(f ticket.Filter, now time.Time) (int64, error)
	ListDueForReminder(now time.Time, remindedBefore time.Time) ([]ticket.Ticket, error)
	MarkReminded(id uint, at time.Time) error
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	if t.Version == 0 {
		t.Version = 1
	}
	return r.db.Omit("Requester", "Assignee", "Department", "Product", "Comments", "Attachments", "Collaborators").Create(t).Error
}

// GetTicketByID loads a ticket with its collaborators, enough for permission checks.
func (r *DBTicketRepo) GetTicketByID(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Preload("Collaborators").First(&t, id).Error
	return t, err
}

func (r *DBTicketRepo) GetTicketDetail(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.
		Preload("Requester").
		Preload("Assignee").
		Preload("Department").
		Preload("Product").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Preload("Comments.Author").
		Preload("Attachments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Preload("Attachments.Uploader").
		Preload("Collaborators").
		Preload("Collaborators.User").
		First(&t, id).Error
	return t, err
}

const collaboratorSubquery = "tickets.id IN (SELECT ticket_id FROM collaborators WHERE user_id = ?)"

// scoped applies visibility, scope and field filters but not paging or sort.
func (r *DBTicketRepo) scoped(f ticket.Filter) *gorm.DB {
	q := r.db.Model(&ticket.Ticket{})

	if !f.ViewerAdmin {
		if f.ViewerElevated && f.ViewerDepartment != nil {
			q = q.Where("(tickets.department_id = ? OR tickets.requester_id = ? OR tickets.assignee_id = ? OR "+collaboratorSubquery+")",
				*f.ViewerDepartment, f.ViewerID, f.ViewerID, f.ViewerID)
		} else {
			q = q.Where("(tickets.requester_id = ? OR tickets.assignee_id = ? OR "+collaboratorSubquery+")",
				f.ViewerID, f.ViewerID, f.ViewerID)
		}
	}

	switch f.Scope {
	case ticket.ScopeMine:
		q = q.Where("tickets.requester_id = ?", f.ViewerID)
	case ticket.ScopeAssigned:
		q = q.Where("tickets.assignee_id = ?", f.ViewerID)
	case ticket.ScopeWatching:
		q = q.Where(collaboratorSubquery, f.ViewerID)
	case ticket.ScopeApprovals:
		q = q.Where("tickets.status = ?", ticket.StatusRequested)
		switch {
		case f.ViewerAdmin:
		case f.ViewerElevated && f.ViewerDepartment != nil:
			q = q.Where("tickets.department_id = ?", *f.ViewerDepartment)
		default:
			q = q.Where("1 = 0")
		}
	}

	if len(f.Statuses) > 0 {
		q = q.Where("tickets.status IN ?", f.Statuses)
	}
	if f.Priority != "" {
		q = q.Where("tickets.priority = ?", f.Priority)
	}
	if f.DepartmentID != nil {
		q = q.Where("tickets.department_id = ?", *f.DepartmentID)
	}
	if f.ProductID != nil {
		q = q.Where("tickets.product_id = ?", *f.ProductID)
	}
	if f.AssigneeID != nil {
		q = q.Where("tickets.assignee_id = ?", *f.AssigneeID)
	}
	if f.RequesterID != nil {
		q = q.Where("tickets.requester_id = ?", *f.RequesterID)
	}
	if s := strings.TrimSpace(f.Q); s != "" {
		p := "%" + s + "%"
		q = q.Where("(tickets.title ILIKE ? OR tickets.description ILIKE ?)", p, p)
	}
	return q.Session(&gorm.Session{})
}

func orderClause(f ticket.Filter) string {
	dir := "DESC"
	if f.Order == "asc" {
		dir = "ASC"
	}
	switch f.Sort {
	case "priority":
		return "CASE tickets.priority WHEN 'urgent' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END " + dir + ", tickets.id DESC"
	case "due_date":
		return "tickets.due_date " + dir + " NULLS LAST, tickets.id DESC"
	case "updated_at":
		return "tickets.updated_at " + dir + ", tickets.id DESC"
	default:
		return "tickets.created_at " + dir + ", tickets.id DESC"
	}
}

func (r *DBTicketRepo) ListTickets(f ticket.Filter) ([]ticket.Ticket, int64, error) {
	f.Normalize()
	base := r.scoped(f)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []ticket.Ticket
	err := base.
		Preload("Requester").
		Preload("Assignee").
		Preload("Department").
		Preload("Product").
		Order(orderClause(f)).
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *DBTicketRepo) ListVisibleTicketIDs(f ticket.Filter) ([]uint, error) {
	var ids []uint
	err := r.scoped(f).Pluck("tickets.id", &ids).Error
	return ids, err
}

// UpdateTicket writes all columns if the stored version still equals expectedVersion,
// and bumps the version.
func (r *DBTicketRepo) UpdateTicket(t *ticket.Ticket, expectedVersion int) error {
	t.Version = expectedVersion + 1
	res := r.db.Model(&ticket.Ticket{}).
		Where("id = ? AND version = ?", t.ID, expectedVersion).
		Select("*").
		Omit("id", "created_at", "deleted_at", "Requester", "Assignee", "Department", "Product", "Comments", "Attachments", "Collaborators").
		Updates(t)
	if res.Error != nil {
		t.Version = expectedVersion
		return res.Error
	}
	if res.RowsAffected == 0 {
		t.Version = expectedVersion
		return ErrVersionConflict
	}
	return nil
}

func (r *DBTicketRepo) DeleteTicket(id uint) error {
	return r.db.Delete(&ticket.Ticket{}, id).Error
}

func (r *DBTicketRepo) CountByStatus(f ticket.Filter) (map[ticket.Status]int64, error) {
	var rows []struct {
		Status ticket.Status
		Count  int64
	}
	err := r.scoped(f).Select("tickets.status AS status, COUNT(*) AS count").Group("tickets.status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[ticket.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *DBTicketRepo) CountOverdue(f ticket.Filter, now time.Time) (int64, error) {
	var n int64
	err := r.scoped(f).
		Where("tickets.due_date < ? AND tickets.status IN ?", now, ticket.OpenStatuses).
		Count(&n).Error
	return n, err
}

func (r *DBTicketRepo) ListDueForReminder(now time.Time, remindedBefore time.Time) ([]ticket.Ticket, error) {
	var list []ticket.Ticket
	err := r.db.
		Where("due_date < ? AND status IN ?", now, ticket.OpenStatuses).
		Where("last_reminded_at IS NULL OR last_reminded_at < ?", remindedBefore).
		Order("due_date asc").
		Find(&list).Error
	return list, err
}

func (r *DBTicketRepo) MarkReminded(id uint, at time.Time) error {
	return r.db.Model(&ticket.Ticket{}).Where("id = ?", id).UpdateColumn("last_reminded_at", at).Error
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{db: tx}
}
