package application

import (
	"github.com/linskybing/creative-desk/internal/domain/activity"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/repository"
)

type ActivityService struct {
	Repos *repository.Repos
}

func NewActivityService(repos *repository.Repos) *ActivityService {
	return &ActivityService{Repos: repos}
}

func (s *ActivityService) ListByTicket(uid, ticketID uint) ([]activity.Activity, error) {
	if _, _, _, err := loadVisibleTicket(s.Repos, uid, ticketID); err != nil {
		return nil, err
	}
	return s.Repos.Activity.ListByTicket(ticketID)
}

// ListRecent returns the newest entries across tickets the caller can see.
func (s *ActivityService) ListRecent(uid uint, limit int) ([]activity.Activity, error) {
	actor, _, err := loadActor(s.Repos, uid)
	if err != nil {
		return nil, err
	}

	params := activity.QueryParams{Limit: limit}
	if !actor.IsAdmin() {
		ids, err := s.Repos.Ticket.ListVisibleTicketIDs(viewerFilter(ticket.Filter{}, actor))
		if err != nil {
			return nil, err
		}
		if ids == nil {
			ids = []uint{}
		}
		params.TicketIDs = ids
	}
	return s.Repos.Activity.ListRecent(params)
}
