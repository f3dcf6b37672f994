package ticket

import (
	"time"

	"github.com/linskybing/creative-desk/internal/domain/department"
	"github.com/linskybing/creative-desk/internal/domain/product"
	"github.com/linskybing/creative-desk/internal/domain/user"
	"gorm.io/gorm"
)

type Status string

const (
	StatusRequested  Status = "requested"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusInProgress Status = "in_progress"
	StatusInReview   Status = "in_review"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// OpenStatuses are the states in which work is still expected.
var OpenStatuses = []Status{StatusRequested, StatusApproved, StatusInProgress, StatusInReview}

func (s Status) Valid() bool {
	switch s {
	case StatusRequested, StatusApproved, StatusRejected, StatusInProgress,
		StatusInReview, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Ticket struct {
	ID              uint                   `gorm:"primaryKey" json:"id"`
	Title           string                 `gorm:"size:200;not null" json:"title"`
	Description     string                 `gorm:"type:text" json:"description"`
	RequestType     string                 `gorm:"size:50" json:"request_type"`
	Priority        Priority               `gorm:"size:10;default:'medium';not null;index" json:"priority"`
	Status          Status                 `gorm:"size:20;default:'requested';not null;index" json:"status"`
	RequesterID     uint                   `gorm:"not null;index" json:"requester_id"`
	AssigneeID      *uint                  `gorm:"index" json:"assignee_id"`
	DepartmentID    uint                   `gorm:"not null;index" json:"department_id"`
	ProductID       *uint                  `gorm:"index" json:"product_id"`
	DueDate         *time.Time             `json:"due_date"`
	RejectionReason string                 `gorm:"type:text" json:"rejection_reason,omitempty"`
	ApprovedByID    *uint                  `json:"approved_by_id,omitempty"`
	ApprovedAt      *time.Time             `json:"approved_at,omitempty"`
	StartedAt       *time.Time             `json:"started_at,omitempty"`
	CompletedAt     *time.Time             `json:"completed_at,omitempty"`
	LastRemindedAt  *time.Time             `json:"-"`
	Version         int                    `gorm:"not null;default:1" json:"version"`
	Requester       *user.User             `gorm:"foreignKey:RequesterID;references:UID" json:"requester,omitempty"`
	Assignee        *user.User             `gorm:"foreignKey:AssigneeID;references:UID" json:"assignee,omitempty"`
	Department      *department.Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Product         *product.Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Comments        []Comment              `gorm:"foreignKey:TicketID" json:"comments,omitempty"`
	Attachments     []Attachment           `gorm:"foreignKey:TicketID" json:"attachments,omitempty"`
	Collaborators   []Collaborator         `gorm:"foreignKey:TicketID" json:"collaborators,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	DeletedAt       gorm.DeletedAt         `gorm:"index" json:"-"`
}

// Participants returns the users who follow the ticket: requester, assignee and collaborators.
func (t *Ticket) Participants() []uint {
	seen := map[uint]bool{}
	var ids []uint
	add := func(id uint) {
		if id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	add(t.RequesterID)
	if t.AssigneeID != nil {
		add(*t.AssigneeID)
	}
	for _, c := range t.Collaborators {
		add(c.UserID)
	}
	return ids
}

func (t *Ticket) IsAssignee(uid uint) bool {
	return t.AssigneeID != nil && *t.AssigneeID == uid
}

func (t *Ticket) HasCollaborator(uid uint) bool {
	for _, c := range t.Collaborators {
		if c.UserID == uid {
			return true
		}
	}
	return false
}

// Overdue reports whether an open ticket is past its due date.
func (t *Ticket) Overdue(now time.Time) bool {
	if t.DueDate == nil || t.Status.Terminal() || t.Status == StatusRejected {
		return false
	}
	return now.After(*t.DueDate)
}

// Comment is a message on a ticket thread. Requester, assignee and managers can post.
type Comment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	TicketID  uint       `gorm:"index;not null" json:"ticket_id"`
	AuthorID  uint       `gorm:"not null" json:"author_id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Author    *user.User `gorm:"foreignKey:AuthorID;references:UID" json:"author,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Attachment is a file stored in object storage under ObjectKey.
type Attachment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	TicketID    uint       `gorm:"index;not null" json:"ticket_id"`
	UploaderID  uint       `gorm:"not null" json:"uploader_id"`
	FileName    string     `gorm:"size:255;not null" json:"file_name"`
	ContentType string     `gorm:"size:100" json:"content_type"`
	Size        int64      `json:"size"`
	ObjectKey   string     `gorm:"size:512;not null;uniqueIndex" json:"-"`
	Uploader    *user.User `gorm:"foreignKey:UploaderID;references:UID" json:"uploader,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Collaborator links a watching user to a ticket.
type Collaborator struct {
	TicketID  uint       `gorm:"primaryKey" json:"ticket_id"`
	UserID    uint       `gorm:"primaryKey" json:"user_id"`
	AddedByID uint       `json:"added_by_id"`
	User      *user.User `gorm:"foreignKey:UserID;references:UID" json:"user,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
