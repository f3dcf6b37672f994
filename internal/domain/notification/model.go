package notification

import "time"

const (
	TypeStatusChanged = "status_changed"
	TypeAssigned      = "assigned"
	TypeComment       = "comment"
	TypeAttachment    = "attachment"
	TypeCollaborator  = "collaborator"
	TypeOverdue       = "overdue"
)

// Notification is an alert surfaced to a user about activity on a ticket.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_notification_user_read;not null" json:"user_id"`
	TicketID  *uint     `gorm:"index" json:"ticket_id"`
	Type      string    `gorm:"size:30;not null" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Read      bool      `gorm:"index:idx_notification_user_read;default:false;not null" json:"read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

type ListParams struct {
	UnreadOnly bool
	Limit      int
}

type UnreadCount struct {
	Count int64 `json:"count"`
}
