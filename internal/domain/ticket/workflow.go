package ticket

import "errors"

// Action is a workflow verb applied to a ticket.
type Action string

const (
	ActionApprove        Action = "approve"
	ActionReject         Action = "reject"
	ActionResubmit       Action = "resubmit"
	ActionAssign         Action = "assign"
	ActionStart          Action = "start"
	ActionSubmit         Action = "submit"
	ActionRequestChanges Action = "request_changes"
	ActionComplete       Action = "complete"
	ActionReopen         Action = "reopen"
	ActionCancel         Action = "cancel"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownAction     = errors.New("unknown workflow action")
)

// Actor captures who is attempting an action, relative to one ticket.
type Actor struct {
	UserID       uint
	Role         string
	DepartmentID *uint
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}

// ManagesDepartment is true for admins and for managers of the given department.
func (a Actor) ManagesDepartment(departmentID uint) bool {
	if a.IsAdmin() {
		return true
	}
	return a.Role == "manager" && a.DepartmentID != nil && *a.DepartmentID == departmentID
}

type rule struct {
	from []Status
	// to is empty when the action keeps the current status.
	to      Status
	allowed func(a Actor, t *Ticket) bool
}

func manager(a Actor, t *Ticket) bool {
	return a.ManagesDepartment(t.DepartmentID)
}

func requesterOrManager(a Actor, t *Ticket) bool {
	return a.UserID == t.RequesterID || manager(a, t)
}

func assigneeOrManager(a Actor, t *Ticket) bool {
	return t.IsAssignee(a.UserID) || manager(a, t)
}

var rules = map[Action]rule{
	ActionApprove:        {from: []Status{StatusRequested}, to: StatusApproved, allowed: manager},
	ActionReject:         {from: []Status{StatusRequested}, to: StatusRejected, allowed: manager},
	ActionResubmit:       {from: []Status{StatusRejected}, to: StatusRequested, allowed: func(a Actor, t *Ticket) bool { return a.UserID == t.RequesterID }},
	ActionAssign:         {from: []Status{StatusApproved, StatusInProgress, StatusInReview}, allowed: manager},
	ActionStart:          {from: []Status{StatusApproved}, to: StatusInProgress, allowed: assigneeOrManager},
	ActionSubmit:         {from: []Status{StatusInProgress}, to: StatusInReview, allowed: assigneeOrManager},
	ActionRequestChanges: {from: []Status{StatusInReview}, to: StatusInProgress, allowed: requesterOrManager},
	ActionComplete:       {from: []Status{StatusInReview}, to: StatusCompleted, allowed: requesterOrManager},
	ActionReopen:         {from: []Status{StatusCompleted}, to: StatusInProgress, allowed: manager},
	ActionCancel:         {from: OpenStatuses, to: StatusCancelled, allowed: requesterOrManager},
}

// ParseAction validates a verb taken from a URL.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := rules[a]; !ok {
		return "", ErrUnknownAction
	}
	return a, nil
}

// Next returns the status a ticket in status current moves to under action.
func Next(current Status, action Action) (Status, error) {
	r, ok := rules[action]
	if !ok {
		return "", ErrUnknownAction
	}
	for _, s := range r.from {
		if s == current {
			if r.to == "" {
				return current, nil
			}
			return r.to, nil
		}
	}
	return "", ErrInvalidTransition
}

// Permitted reports whether actor may apply action to t, ignoring the current status.
func Permitted(a Actor, t *Ticket, action Action) bool {
	r, ok := rules[action]
	if !ok {
		return false
	}
	return r.allowed(a, t)
}

// AvailableActions lists what actor can do to t right now, for rendering action buttons.
func AvailableActions(a Actor, t *Ticket) []Action {
	order := []Action{
		ActionApprove, ActionReject, ActionResubmit, ActionAssign, ActionStart,
		ActionSubmit, ActionRequestChanges, ActionComplete, ActionReopen, ActionCancel,
	}
	var out []Action
	for _, action := range order {
		if _, err := Next(t.Status, action); err != nil {
			continue
		}
		if action == ActionStart && t.AssigneeID == nil {
			continue
		}
		if Permitted(a, t, action) {
			out = append(out, action)
		}
	}
	return out
}
