package repository

import (
	"time"

	"github.com/linskybing/creative-desk/internal/domain/analytics"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"gorm.io/gorm"
)

type AnalyticsRepo interface {
	Summary(rg analytics.Range, now time.Time) (analytics.Summary, error)
	CountByStatus(rg analytics.Range) ([]analytics.Bucket, error)
	CountByPriority(rg analytics.Range) ([]analytics.Bucket, error)
	CountByDepartment(rg analytics.Range) ([]analytics.Bucket, error)
	CountByProduct(rg analytics.Range) ([]analytics.Bucket, error)
	Workload(rg analytics.Range, now time.Time) ([]analytics.WorkloadItem, error)
	Trend(rg analytics.Range, since time.Time) ([]analytics.TrendPoint, error)
	WithTx(tx *gorm.DB) AnalyticsRepo
}

type DBAnalyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) *DBAnalyticsRepo {
	return &DBAnalyticsRepo{db: db}
}

func (r *DBAnalyticsRepo) tickets(rg analytics.Range) *gorm.DB {
	q := r.db.Table("tickets t").Where("t.deleted_at IS NULL")
	if rg.From != nil {
		q = q.Where("t.created_at >= ?", *rg.From)
	}
	if rg.To != nil {
		q = q.Where("t.created_at < ?", *rg.To)
	}
	if rg.DepartmentID != nil {
		q = q.Where("t.department_id = ?", *rg.DepartmentID)
	}
	return q
}

func (r *DBAnalyticsRepo) Summary(rg analytics.Range, now time.Time) (analytics.Summary, error) {
	var s analytics.Summary
	err := r.tickets(rg).Select(`
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE t.status IN ?) AS open,
		COUNT(*) FILTER (WHERE t.status = ?) AS completed,
		COUNT(*) FILTER (WHERE t.status = ?) AS rejected,
		COUNT(*) FILTER (WHERE t.status = ?) AS cancelled,
		COUNT(*) FILTER (WHERE t.status IN ? AND t.due_date < ?) AS overdue,
		COUNT(*) FILTER (WHERE t.status = ?) AS pending_approvals,
		COUNT(*) FILTER (WHERE t.approved_at IS NOT NULL) AS approved_or_beyond,
		COUNT(*) FILTER (WHERE t.approved_at IS NOT NULL OR t.status = ?) AS reviewed_decisions,
		COALESCE(AVG(EXTRACT(EPOCH FROM (t.completed_at - t.created_at)) / 3600.0) FILTER (WHERE t.completed_at IS NOT NULL), 0) AS avg_turnaround_hrs`,
		ticket.OpenStatuses,
		ticket.StatusCompleted,
		ticket.StatusRejected,
		ticket.StatusCancelled,
		ticket.OpenStatuses, now,
		ticket.StatusRequested,
		ticket.StatusRejected,
	).Scan(&s).Error
	if err != nil {
		return s, err
	}
	s.Finalize()
	return s, nil
}

func (r *DBAnalyticsRepo) CountByStatus(rg analytics.Range) ([]analytics.Bucket, error) {
	var out []analytics.Bucket
	err := r.tickets(rg).
		Select("t.status AS key, t.status AS label, COUNT(*) AS count").
		Group("t.status").
		Order("count DESC").
		Scan(&out).Error
	return out, err
}

func (r *DBAnalyticsRepo) CountByPriority(rg analytics.Range) ([]analytics.Bucket, error) {
	var out []analytics.Bucket
	err := r.tickets(rg).
		Select("t.priority AS key, t.priority AS label, COUNT(*) AS count").
		Group("t.priority").
		Order("CASE t.priority WHEN 'urgent' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC").
		Scan(&out).Error
	return out, err
}

func (r *DBAnalyticsRepo) CountByDepartment(rg analytics.Range) ([]analytics.Bucket, error) {
	var out []analytics.Bucket
	err := r.tickets(rg).
		Joins("JOIN departments d ON d.id = t.department_id").
		Select("CAST(d.id AS TEXT) AS key, d.name AS label, COUNT(*) AS count").
		Group("d.id, d.name").
		Order("count DESC, d.name ASC").
		Scan(&out).Error
	return out, err
}

func (r *DBAnalyticsRepo) CountByProduct(rg analytics.Range) ([]analytics.Bucket, error) {
	var out []analytics.Bucket
	err := r.tickets(rg).
		Joins("LEFT JOIN products p ON p.id = t.product_id").
		Select("COALESCE(CAST(p.id AS TEXT), 'none') AS key, COALESCE(p.name, 'Unspecified') AS label, COUNT(*) AS count").
		Group("p.id, p.name").
		Order("count DESC").
		Scan(&out).Error
	return out, err
}

func (r *DBAnalyticsRepo) Workload(rg analytics.Range, now time.Time) ([]analytics.WorkloadItem, error) {
	var out []analytics.WorkloadItem
	err := r.tickets(rg).
		Joins("JOIN users u ON u.u_id = t.assignee_id").
		Where("t.status IN ?", ticket.OpenStatuses).
		Select("u.u_id AS assignee_id, u.username AS username, u.full_name AS full_name, COUNT(*) AS open, COUNT(*) FILTER (WHERE t.due_date < ?) AS overdue", now).
		Group("u.u_id, u.username, u.full_name").
		Order("open DESC, u.username ASC").
		Scan(&out).Error
	return out, err
}

// Trend returns raw per-day counts since the given instant, bucketed by UTC day.
// Days without tickets are absent.
func (r *DBAnalyticsRepo) Trend(rg analytics.Range, since time.Time) ([]analytics.TrendPoint, error) {
	type dayCount struct {
		Day   time.Time
		Count int64
	}
	var created, completed []dayCount

	scoped := analytics.Range{DepartmentID: rg.DepartmentID}
	if err := r.tickets(scoped).
		Where("t.created_at >= ?", since).
		Select("date_trunc('day', t.created_at AT TIME ZONE 'UTC') AS day, COUNT(*) AS count").
		Group("1").
		Scan(&created).Error; err != nil {
		return nil, err
	}
	if err := r.tickets(scoped).
		Where("t.completed_at >= ?", since).
		Select("date_trunc('day', t.completed_at AT TIME ZONE 'UTC') AS day, COUNT(*) AS count").
		Group("1").
		Scan(&completed).Error; err != nil {
		return nil, err
	}

	byDay := map[string]*analytics.TrendPoint{}
	var order []string
	point := func(d time.Time) *analytics.TrendPoint {
		k := d.UTC().Format("2006-01-02")
		if p, ok := byDay[k]; ok {
			return p
		}
		p := &analytics.TrendPoint{Day: d.UTC()}
		byDay[k] = p
		order = append(order, k)
		return p
	}
	for _, c := range created {
		point(c.Day).Created = c.Count
	}
	for _, c := range completed {
		point(c.Day).Completed = c.Count
	}

	out := make([]analytics.TrendPoint, 0, len(order))
	for _, k := range order {
		out = append(out, *byDay[k])
	}
	return out, nil
}

func (r *DBAnalyticsRepo) WithTx(tx *gorm.DB) AnalyticsRepo {
	if tx == nil {
		return r
	}
	return &DBAnalyticsRepo{db: tx}
}
