package application

import (
	"errors"
	"time"

	"github.com/linskybing/creative-desk/internal/clock"
	"github.com/linskybing/creative-desk/internal/domain/analytics"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/domain/user"
	"github.com/linskybing/creative-desk/internal/repository"
)

var ErrInvalidRange = errors.New("from must be before to")

const (
	DefaultTrendDays = 30
	MaxTrendDays     = 365
)

type AnalyticsService struct {
	Repos *repository.Repos
	clock clock.Clock
}

func NewAnalyticsService(repos *repository.Repos, clk clock.Clock) *AnalyticsService {
	return &AnalyticsService{Repos: repos, clock: clk}
}

// scope validates the range and pins managers to their own department.
func (s *AnalyticsService) scope(uid uint, rg analytics.Range) (analytics.Range, error) {
	if rg.From != nil && rg.To != nil && !rg.From.Before(*rg.To) {
		return rg, ErrInvalidRange
	}
	actor, _, err := loadActor(s.Repos, uid)
	if err != nil {
		return rg, err
	}
	if actor.IsAdmin() {
		return rg, nil
	}
	if actor.Role != string(user.RoleManager) {
		return rg, ErrForbidden
	}
	if actor.DepartmentID != nil {
		if rg.DepartmentID != nil && *rg.DepartmentID != *actor.DepartmentID {
			return rg, ErrForbidden
		}
		dept := *actor.DepartmentID
		rg.DepartmentID = &dept
	}
	return rg, nil
}

func (s *AnalyticsService) Summary(uid uint, rg analytics.Range) (analytics.Summary, error) {
	rg, err := s.scope(uid, rg)
	if err != nil {
		return analytics.Summary{}, err
	}
	return s.Repos.Analytics.Summary(rg, s.clock.Now())
}

// ByStatus returns one bucket per status, including empty ones, in workflow order.
func (s *AnalyticsService) ByStatus(uid uint, rg analytics.Range) ([]analytics.Bucket, error) {
	rg, err := s.scope(uid, rg)
	if err != nil {
		return nil, err
	}
	raw, err := s.Repos.Analytics.CountByStatus(rg)
	if err != nil {
		return nil, err
	}
	return fillBuckets(allStatuses(), raw), nil
}

func (s *AnalyticsService) ByPriority(uid uint, rg analytics.Range) ([]analytics.Bucket, error) {
	rg, err := s.scope(uid, rg)
	if err != nil {
		return nil, err
	}
	raw, err := s.Repos.Analytics.CountByPriority(rg)
	if err != nil {
		return nil, err
	}
	keys := []string{string(ticket.PriorityUrgent), string(ticket.PriorityHigh), string(ticket.PriorityMedium), string(ticket.PriorityLow)}
	return fillBuckets(keys, raw), nil
}

func (s *AnalyticsService) ByDepartment(uid uint, rg analytics.Range) ([]analytics.Bucket, error) {
	rg, err := s.scope(uid, rg)
	if err != nil {
		return nil, err
	}
	return nonNil(s.Repos.Analytics.CountByDepartment(rg))
}

func (s *AnalyticsService) ByProduct(uid uint, rg analytics.Range) ([]analytics.Bucket, error) {
	rg, err := s.scope(uid, rg)
	if err != nil {
		return nil, err
	}
	return nonNil(s.Repos.Analytics.CountByProduct(rg))
}

func (s *AnalyticsService) Workload(uid uint, rg analytics.Range) ([]analytics.WorkloadItem, error) {
	rg, err := s.scope(uid, rg)
	if err != nil {
		return nil, err
	}
	items, err := s.Repos.Analytics.Workload(rg, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []analytics.WorkloadItem{}
	}
	return items, nil
}

// Trend returns created/completed counts for each of the last days days, today included.
func (s *AnalyticsService) Trend(uid uint, days int, departmentID *uint) ([]analytics.TrendPoint, error) {
	if days <= 0 {
		days = DefaultTrendDays
	}
	if days > MaxTrendDays {
		days = MaxTrendDays
	}
	rg, err := s.scope(uid, analytics.Range{DepartmentID: departmentID})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	today := now.Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -(days - 1))

	raw, err := s.Repos.Analytics.Trend(rg, start)
	if err != nil {
		return nil, err
	}
	return analytics.FillTrend(start, days, raw), nil
}

func allStatuses() []string {
	return []string{
		string(ticket.StatusRequested), string(ticket.StatusApproved), string(ticket.StatusInProgress),
		string(ticket.StatusInReview), string(ticket.StatusCompleted), string(ticket.StatusRejected),
		string(ticket.StatusCancelled),
	}
}

// fillBuckets orders raw buckets by keys and adds zero buckets for missing keys.
func fillBuckets(keys []string, raw []analytics.Bucket) []analytics.Bucket {
	counts := make(map[string]int64, len(raw))
	for _, b := range raw {
		counts[b.Key] = b.Count
	}
	out := make([]analytics.Bucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, analytics.Bucket{Key: k, Label: k, Count: counts[k]})
	}
	return out
}

func nonNil(list []analytics.Bucket, err error) ([]analytics.Bucket, error) {
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []analytics.Bucket{}
	}
	return list, nil
}
