package analytics

import (
	"time"

	"github.com/linskybing/creative-desk/internal/domain/activity"
)

// Range bounds an aggregation by ticket creation time and optionally by department.
type Range struct {
	From         *time.Time
	To           *time.Time
	DepartmentID *uint
}

type Bucket struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type Summary struct {
	Total             int64   `json:"total"`
	Open              int64   `json:"open"`
	Completed         int64   `json:"completed"`
	Rejected          int64   `json:"rejected"`
	Cancelled         int64   `json:"cancelled"`
	Overdue           int64   `json:"overdue"`
	AvgTurnaroundHrs  float64 `json:"avg_turnaround_hours"`
	ApprovalRate      float64 `json:"approval_rate"`
	CompletionRate    float64 `json:"completion_rate"`
	PendingApprovals  int64   `json:"pending_approvals"`
	ApprovedOrBeyond  int64   `json:"-"`
	ReviewedDecisions int64   `json:"-"`
}

// Finalize derives the rate fields from the raw counts.
func (s *Summary) Finalize() {
	if s.ReviewedDecisions > 0 {
		s.ApprovalRate = round2(float64(s.ApprovedOrBeyond) / float64(s.ReviewedDecisions))
	}
	if s.Total > 0 {
		s.CompletionRate = round2(float64(s.Completed) / float64(s.Total))
	}
	s.AvgTurnaroundHrs = round2(s.AvgTurnaroundHrs)
}

type WorkloadItem struct {
	AssigneeID uint    `json:"assignee_id"`
	Username   string  `json:"username"`
	FullName   *string `json:"full_name"`
	Open       int64   `json:"open"`
	Overdue    int64   `json:"overdue"`
}

type TrendPoint struct {
	Day       time.Time `json:"day"`
	Created   int64     `json:"created"`
	Completed int64     `json:"completed"`
}

// FillTrend returns one point per day in [start, start+days), taking counts from raw.
func FillTrend(start time.Time, days int, raw []TrendPoint) []TrendPoint {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	byDay := make(map[string]TrendPoint, len(raw))
	for _, p := range raw {
		byDay[p.Day.UTC().Format("2006-01-02")] = p
	}
	out := make([]TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		p := byDay[day.Format("2006-01-02")]
		p.Day = day
		out = append(out, p)
	}
	return out
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

type Dashboard struct {
	MyRequests       []Bucket            `json:"my_requests"`
	AssignedToMe     []Bucket            `json:"assigned_to_me"`
	PendingApprovals int64               `json:"pending_approvals"`
	OverdueAssigned  int64               `json:"overdue_assigned"`
	UnreadCount      int64               `json:"unread_notifications"`
	RecentActivity   []activity.Activity `json:"recent_activity"`
}
