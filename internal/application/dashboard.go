package application

import (
	"github.com/linskybing/creative-desk/internal/clock"
	"github.com/linskybing/creative-desk/internal/domain/activity"
	"github.com/linskybing/creative-desk/internal/domain/analytics"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/repository"
)

const dashboardActivityLimit = 10

type DashboardService struct {
	Repos    *repository.Repos
	activity *ActivityService
	clock    clock.Clock
}

func NewDashboardService(repos *repository.Repos, activitySvc *ActivityService, clk clock.Clock) *DashboardService {
	return &DashboardService{Repos: repos, activity: activitySvc, clock: clk}
}

func statusBuckets(counts map[ticket.Status]int64, statuses []ticket.Status) []analytics.Bucket {
	out := make([]analytics.Bucket, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, analytics.Bucket{Key: string(st), Label: string(st), Count: counts[st]})
	}
	return out
}

// GetDashboard assembles the caller's home screen in one round trip so it can be polled cheaply.
func (s *DashboardService) GetDashboard(uid uint) (analytics.Dashboard, error) {
	actor, _, err := loadActor(s.Repos, uid)
	if err != nil {
		return analytics.Dashboard{}, err
	}
	base := viewerFilter(ticket.Filter{}, actor)

	mine := base
	mine.Scope = ticket.ScopeMine
	mine.Statuses = ticket.OpenStatuses
	myCounts, err := s.Repos.Ticket.CountByStatus(mine)
	if err != nil {
		return analytics.Dashboard{}, err
	}

	assigned := base
	assigned.Scope = ticket.ScopeAssigned
	assigned.Statuses = ticket.OpenStatuses
	assignedCounts, err := s.Repos.Ticket.CountByStatus(assigned)
	if err != nil {
		return analytics.Dashboard{}, err
	}

	overdue, err := s.Repos.Ticket.CountOverdue(assigned, s.clock.Now())
	if err != nil {
		return analytics.Dashboard{}, err
	}

	var pending int64
	if base.ViewerElevated {
		approvals := base
		approvals.Scope = ticket.ScopeApprovals
		counts, err := s.Repos.Ticket.CountByStatus(approvals)
		if err != nil {
			return analytics.Dashboard{}, err
		}
		pending = counts[ticket.StatusRequested]
	}

	unread, err := s.Repos.Notification.CountUnread(uid)
	if err != nil {
		return analytics.Dashboard{}, err
	}

	recent, err := s.activity.ListRecent(uid, dashboardActivityLimit)
	if err != nil {
		return analytics.Dashboard{}, err
	}
	if recent == nil {
		recent = []activity.Activity{}
	}

	return analytics.Dashboard{
		MyRequests:       statusBuckets(myCounts, ticket.OpenStatuses),
		AssignedToMe:     statusBuckets(assignedCounts, ticket.OpenStatuses),
		PendingApprovals: pending,
		OverdueAssigned:  overdue,
		UnreadCount:      unread,
		RecentActivity:   recent,
	}, nil
}
