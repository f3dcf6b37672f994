package application

import (
	"encoding/json"
	"errors"

	"github.com/linskybing/creative-desk/internal/domain/activity"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/domain/user"
	"github.com/linskybing/creative-desk/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

// loadActor resolves the caller from the database so role and department changes
// take effect without waiting for a new token.
func loadActor(repos *repository.Repos, uid uint) (ticket.Actor, user.User, error) {
	usr, err := repos.User.GetUserByID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ticket.Actor{}, user.User{}, ErrUserNotFound
		}
		return ticket.Actor{}, user.User{}, err
	}
	if !usr.Active {
		return ticket.Actor{}, user.User{}, ErrUserInactive
	}
	return ticket.Actor{UserID: usr.UID, Role: usr.Role, DepartmentID: usr.DepartmentID}, usr, nil
}

// canView mirrors the list visibility rules for a single ticket.
func canView(a ticket.Actor, t *ticket.Ticket) bool {
	if a.ManagesDepartment(t.DepartmentID) {
		return true
	}
	return t.RequesterID == a.UserID || t.IsAssignee(a.UserID) || t.HasCollaborator(a.UserID)
}

// loadVisibleTicket fetches a ticket with collaborators and checks the caller may see it.
func loadVisibleTicket(repos *repository.Repos, uid, ticketID uint) (ticket.Ticket, ticket.Actor, user.User, error) {
	actor, usr, err := loadActor(repos, uid)
	if err != nil {
		return ticket.Ticket{}, ticket.Actor{}, user.User{}, err
	}
	t, err := repos.Ticket.GetTicketByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ticket.Ticket{}, ticket.Actor{}, user.User{}, ErrTicketNotFound
		}
		return ticket.Ticket{}, ticket.Actor{}, user.User{}, err
	}
	if !canView(actor, &t) {
		return ticket.Ticket{}, ticket.Actor{}, user.User{}, ErrForbidden
	}
	return t, actor, usr, nil
}

func viewerFilter(f ticket.Filter, a ticket.Actor) ticket.Filter {
	f.ViewerID = a.UserID
	f.ViewerAdmin = a.IsAdmin()
	f.ViewerElevated = a.Role == string(user.RoleAdmin) || a.Role == string(user.RoleManager)
	f.ViewerDepartment = a.DepartmentID
	return f
}

func recordActivity(repos *repository.Repos, ticketID, actorID uint, action, message string, details map[string]interface{}) error {
	entry := activity.Activity{
		TicketID: ticketID,
		ActorID:  actorID,
		Action:   action,
		Message:  message,
	}
	if len(details) > 0 {
		raw, err := json.Marshal(details)
		if err != nil {
			return err
		}
		entry.Details = datatypes.JSON(raw)
	}
	return repos.Activity.CreateActivity(&entry)
}
