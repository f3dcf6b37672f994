package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/creative-desk/internal/clock"
	"github.com/linskybing/creative-desk/internal/domain/activity"
	"github.com/linskybing/creative-desk/internal/domain/notification"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrVersionConflict    = repository.ErrVersionConflict
	ErrDepartmentInactive = errors.New("department is not accepting requests")
	ErrProductMismatch    = errors.New("product does not belong to the ticket's department")
	ErrReasonRequired     = errors.New("a reason is required to reject a ticket")
	ErrAssigneeRequired   = errors.New("assignee_id is required")
	ErrAssigneeNotFound   = errors.New("assignee not found or inactive")
	ErrTicketLocked       = errors.New("ticket can no longer be edited by you")
)

type TicketService struct {
	Repos    *repository.Repos
	notifier *Notifier
	clock    clock.Clock
}

func NewTicketService(repos *repository.Repos, notifier *Notifier, clk clock.Clock) *TicketService {
	return &TicketService{Repos: repos, notifier: notifier, clock: clk}
}

func (s *TicketService) checkProduct(departmentID uint, productID *uint) error {
	if productID == nil {
		return nil
	}
	p, err := s.Repos.Product.GetProductByID(*productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if p.DepartmentID != departmentID {
		return ErrProductMismatch
	}
	return nil
}

// detail loads the full ticket and decorates it for the given actor.
func (s *TicketService) detail(a ticket.Actor, id uint) (ticket.Detail, error) {
	t, err := s.Repos.Ticket.GetTicketDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ticket.Detail{}, ErrTicketNotFound
		}
		return ticket.Detail{}, err
	}
	return ticket.Detail{
		Ticket:           &t,
		AvailableActions: ticket.AvailableActions(a, &t),
		Overdue:          t.Overdue(s.clock.Now()),
	}, nil
}

func (s *TicketService) CreateTicket(uid uint, input ticket.CreateTicketDTO) (ticket.Detail, error) {
	actor, _, err := loadActor(s.Repos, uid)
	if err != nil {
		return ticket.Detail{}, err
	}

	dept, err := s.Repos.Department.GetDepartmentByID(input.DepartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ticket.Detail{}, ErrDepartmentNotFound
		}
		return ticket.Detail{}, err
	}
	if !dept.Active {
		return ticket.Detail{}, ErrDepartmentInactive
	}
	if err := s.checkProduct(input.DepartmentID, input.ProductID); err != nil {
		return ticket.Detail{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = ticket.PriorityMedium
	}
	t := ticket.Ticket{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		RequestType:  input.RequestType,
		Priority:     priority,
		Status:       ticket.StatusRequested,
		RequesterID:  uid,
		DepartmentID: input.DepartmentID,
		ProductID:    input.ProductID,
		DueDate:      input.DueDate,
		Version:      1,
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Ticket.CreateTicket(&t); err != nil {
			return err
		}
		return recordActivity(r, t.ID, uid, activity.ActionCreated, fmt.Sprintf("created ticket %q", t.Title), nil)
	})
	if err != nil {
		return ticket.Detail{}, err
	}
	return s.detail(actor, t.ID)
}

type TicketPage struct {
	Items []ticket.Ticket
	Total int64
	Page  int
	Limit int
}

func (s *TicketService) ListTickets(uid uint, f ticket.Filter) (TicketPage, error) {
	actor, _, err := loadActor(s.Repos, uid)
	if err != nil {
		return TicketPage{}, err
	}
	f = viewerFilter(f, actor)
	f.Normalize()

	items, total, err := s.Repos.Ticket.ListTickets(f)
	if err != nil {
		return TicketPage{}, err
	}
	if items == nil {
		items = []ticket.Ticket{}
	}
	return TicketPage{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (s *TicketService) GetTicket(uid, id uint) (ticket.Detail, error) {
	_, actor, _, err := loadVisibleTicket(s.Repos, uid, id)
	if err != nil {
		return ticket.Detail{}, err
	}
	return s.detail(actor, id)
}

func canEdit(a ticket.Actor, t *ticket.Ticket) bool {
	if a.ManagesDepartment(t.DepartmentID) {
		return !t.Status.Terminal()
	}
	if t.RequesterID == a.UserID {
		return t.Status == ticket.StatusRequested || t.Status == ticket.StatusRejected
	}
	return false
}

// conflict returns the current state of the ticket alongside ErrVersionConflict.
func (s *TicketService) conflict(a ticket.Actor, id uint) (ticket.Detail, error) {
	current, err := s.detail(a, id)
	if err != nil {
		return ticket.Detail{}, err
	}
	return current, ErrVersionConflict
}

// UpdateTicket applies a partial edit guarded by the client's version. On a stale
// version the current ticket is returned together with ErrVersionConflict.
func (s *TicketService) UpdateTicket(uid, id uint, input ticket.UpdateTicketDTO) (ticket.Detail, error) {
	t, actor, _, err := loadVisibleTicket(s.Repos, uid, id)
	if err != nil {
		return ticket.Detail{}, err
	}
	if !canEdit(actor, &t) {
		return ticket.Detail{}, ErrTicketLocked
	}
	if input.Version != t.Version {
		return s.conflict(actor, id)
	}

	changed := map[string]interface{}{}
	if input.Title != nil && strings.TrimSpace(*input.Title) != t.Title {
		t.Title = strings.TrimSpace(*input.Title)
		changed["title"] = t.Title
	}
	if input.Description != nil && *input.Description != t.Description {
		t.Description = *input.Description
		changed["description"] = true
	}
	if input.RequestType != nil && *input.RequestType != t.RequestType {
		t.RequestType = *input.RequestType
		changed["request_type"] = t.RequestType
	}
	if input.Priority != nil && *input.Priority != t.Priority {
		t.Priority = *input.Priority
		changed["priority"] = t.Priority
	}
	if input.ProductID != nil {
		if *input.ProductID == 0 {
			if t.ProductID != nil {
				t.ProductID = nil
				changed["product_id"] = nil
			}
		} else if t.ProductID == nil || *t.ProductID != *input.ProductID {
			if err := s.checkProduct(t.DepartmentID, input.ProductID); err != nil {
				return ticket.Detail{}, err
			}
			t.ProductID = input.ProductID
			changed["product_id"] = *input.ProductID
		}
	}
	if input.ClearDue {
		if t.DueDate != nil {
			t.DueDate = nil
			t.LastRemindedAt = nil
			changed["due_date"] = nil
		}
	} else if input.DueDate != nil {
		t.DueDate = input.DueDate
		t.LastRemindedAt = nil
		changed["due_date"] = input.DueDate
	}

	if len(changed) == 0 {
		return s.detail(actor, id)
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Ticket.UpdateTicket(&t, input.Version); err != nil {
			return err
		}
		return recordActivity(r, t.ID, uid, activity.ActionUpdated, "updated ticket details", changed)
	})
	if errors.Is(err, repository.ErrVersionConflict) {
		return s.conflict(actor, id)
	}
	if err != nil {
		return ticket.Detail{}, err
	}
	return s.detail(actor, id)
}

func (s *TicketService) DeleteTicket(id uint) error {
	if _, err := s.Repos.Ticket.GetTicketByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return err
	}
	return s.Repos.Ticket.DeleteTicket(id)
}

func actionMessage(a ticket.Action, t *ticket.Ticket, actorName string) string {
	switch a {
	case ticket.ActionApprove:
		return fmt.Sprintf("%s approved %q", actorName, t.Title)
	case ticket.ActionReject:
		return fmt.Sprintf("%s rejected %q: %s", actorName, t.Title, t.RejectionReason)
	case ticket.ActionResubmit:
		return fmt.Sprintf("%s resubmitted %q", actorName, t.Title)
	case ticket.ActionAssign:
		return fmt.Sprintf("%s assigned %q", actorName, t.Title)
	case ticket.ActionStart:
		return fmt.Sprintf("%s started work on %q", actorName, t.Title)
	case ticket.ActionSubmit:
		return fmt.Sprintf("%s submitted %q for review", actorName, t.Title)
	case ticket.ActionRequestChanges:
		return fmt.Sprintf("%s requested changes on %q", actorName, t.Title)
	case ticket.ActionComplete:
		return fmt.Sprintf("%s completed %q", actorName, t.Title)
	case ticket.ActionReopen:
		return fmt.Sprintf("%s reopened %q", actorName, t.Title)
	case ticket.ActionCancel:
		return fmt.Sprintf("%s cancelled %q", actorName, t.Title)
	}
	return fmt.Sprintf("%s updated %q", actorName, t.Title)
}

// ApplyAction moves a ticket through the workflow. A zero input.Version skips the
// staleness check; the write itself is always version guarded.
func (s *TicketService) ApplyAction(uid, id uint, action ticket.Action, input ticket.ActionDTO) (ticket.Detail, error) {
	actor, usr, err := loadActor(s.Repos, uid)
	if err != nil {
		return ticket.Detail{}, err
	}
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ticket.Detail{}, ErrTicketNotFound
		}
		return ticket.Detail{}, err
	}
	if !canView(actor, &t) {
		return ticket.Detail{}, ErrForbidden
	}
	if input.Version > 0 && input.Version != t.Version {
		return s.conflict(actor, id)
	}

	from := t.Status
	next, err := ticket.Next(from, action)
	if err != nil {
		return ticket.Detail{}, err
	}
	if !ticket.Permitted(actor, &t, action) {
		return ticket.Detail{}, ErrForbidden
	}

	now := s.clock.Now()
	details := map[string]interface{}{"action": string(action), "from": string(from), "to": string(next)}

	switch action {
	case ticket.ActionApprove:
		t.ApprovedByID = &uid
		t.ApprovedAt = &now
		t.RejectionReason = ""
	case ticket.ActionReject:
		reason := strings.TrimSpace(input.Reason)
		if reason == "" {
			return ticket.Detail{}, ErrReasonRequired
		}
		t.RejectionReason = reason
		details["reason"] = reason
	case ticket.ActionResubmit:
		t.ApprovedByID = nil
		t.ApprovedAt = nil
	case ticket.ActionAssign:
		if input.AssigneeID == nil || *input.AssigneeID == 0 {
			return ticket.Detail{}, ErrAssigneeRequired
		}
		assignee, err := s.Repos.User.GetUserByID(*input.AssigneeID)
		if err != nil || !assignee.Active {
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return ticket.Detail{}, err
			}
			return ticket.Detail{}, ErrAssigneeNotFound
		}
		if t.AssigneeID != nil {
			details["previous_assignee_id"] = *t.AssigneeID
		}
		t.AssigneeID = &assignee.UID
		details["assignee_id"] = assignee.UID
	case ticket.ActionStart:
		if t.AssigneeID == nil {
			return ticket.Detail{}, ErrAssigneeRequired
		}
		if t.StartedAt == nil {
			t.StartedAt = &now
		}
	case ticket.ActionComplete:
		t.CompletedAt = &now
	case ticket.ActionReopen:
		t.CompletedAt = nil
	}
	t.Status = next

	actorName := usr.Username
	message := actionMessage(action, &t, actorName)
	activityAction, notifyType := activity.ActionStatusChanged, notification.TypeStatusChanged
	if action == ticket.ActionAssign {
		activityAction, notifyType = activity.ActionAssigned, notification.TypeAssigned
	}

	var staged []notification.Notification
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Ticket.UpdateTicket(&t, t.Version); err != nil {
			return err
		}
		if err := recordActivity(r, t.ID, uid, activityAction, message, details); err != nil {
			return err
		}
		var err error
		staged, err = s.notifier.Stage(r, t.Participants(), uid, &t.ID, notifyType, message)
		return err
	})
	if errors.Is(err, repository.ErrVersionConflict) {
		return s.conflict(actor, id)
	}
	if err != nil {
		return ticket.Detail{}, err
	}
	s.notifier.Deliver(staged)

	return s.detail(actor, id)
}
