package application

import (
	"errors"
	"fmt"

	"github.com/linskybing/creative-desk/internal/domain/activity"
	"github.com/linskybing/creative-desk/internal/domain/notification"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCollaboratorExists   = errors.New("user is already a collaborator")
	ErrCollaboratorNotFound = errors.New("collaborator not found")
)

type CollaboratorService struct {
	Repos    *repository.Repos
	notifier *Notifier
}

func NewCollaboratorService(repos *repository.Repos, notifier *Notifier) *CollaboratorService {
	return &CollaboratorService{Repos: repos, notifier: notifier}
}

// canManageCollaborators is true for the requester, the assignee and department managers.
func canManageCollaborators(a ticket.Actor, t *ticket.Ticket) bool {
	return t.RequesterID == a.UserID || t.IsAssignee(a.UserID) || a.ManagesDepartment(t.DepartmentID)
}

func (s *CollaboratorService) ListCollaborators(uid, ticketID uint) ([]ticket.Collaborator, error) {
	if _, _, _, err := loadVisibleTicket(s.Repos, uid, ticketID); err != nil {
		return nil, err
	}
	return s.Repos.Collaborator.ListCollaborators(ticketID)
}

func (s *CollaboratorService) AddCollaborator(uid, ticketID uint, input ticket.AddCollaboratorDTO) (ticket.Collaborator, error) {
	t, actor, usr, err := loadVisibleTicket(s.Repos, uid, ticketID)
	if err != nil {
		return ticket.Collaborator{}, err
	}
	if !canManageCollaborators(actor, &t) {
		return ticket.Collaborator{}, ErrForbidden
	}

	target, err := s.Repos.User.GetUserByID(input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ticket.Collaborator{}, ErrUserNotFound
		}
		return ticket.Collaborator{}, err
	}
	if !target.Active {
		return ticket.Collaborator{}, ErrUserInactive
	}
	if t.HasCollaborator(target.UID) {
		return ticket.Collaborator{}, ErrCollaboratorExists
	}

	c := ticket.Collaborator{TicketID: ticketID, UserID: target.UID, AddedByID: uid}
	message := fmt.Sprintf("%s added %s as a collaborator on %q", usr.Username, target.Username, t.Title)

	var staged []notification.Notification
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		exists, err := r.Collaborator.IsCollaborator(ticketID, target.UID)
		if err != nil {
			return err
		}
		if exists {
			return ErrCollaboratorExists
		}
		if err := r.Collaborator.AddCollaborator(&c); err != nil {
			return err
		}
		if err := recordActivity(r, ticketID, uid, activity.ActionCollaboratorAdded, message,
			map[string]interface{}{"user_id": target.UID}); err != nil {
			return err
		}
		staged, err = s.notifier.Stage(r, []uint{target.UID}, uid, &t.ID, notification.TypeCollaborator,
			fmt.Sprintf("%s added you to %q", usr.Username, t.Title))
		return err
	})
	if err != nil {
		return ticket.Collaborator{}, err
	}
	s.notifier.Deliver(staged)

	c.User = &target
	return c, nil
}

// RemoveCollaborator lets managers of the ticket remove anyone and collaborators remove themselves.
func (s *CollaboratorService) RemoveCollaborator(uid, ticketID, userID uint) error {
	t, actor, usr, err := loadVisibleTicket(s.Repos, uid, ticketID)
	if err != nil {
		return err
	}
	if userID != uid && !canManageCollaborators(actor, &t) {
		return ErrForbidden
	}

	return s.Repos.ExecTx(func(r *repository.Repos) error {
		removed, err := r.Collaborator.RemoveCollaborator(ticketID, userID)
		if err != nil {
			return err
		}
		if !removed {
			return ErrCollaboratorNotFound
		}
		return recordActivity(r, ticketID, uid, activity.ActionCollaboratorRemoved,
			fmt.Sprintf("%s removed a collaborator", usr.Username), map[string]interface{}{"user_id": userID})
	})
}
