package activity

import (
	"time"

	"github.com/linskybing/creative-desk/internal/domain/user"
	"gorm.io/datatypes"
)

const (
	ActionCreated             = "created"
	ActionUpdated             = "updated"
	ActionStatusChanged       = "status_changed"
	ActionAssigned            = "assigned"
	ActionCommented           = "commented"
	ActionCommentDeleted      = "comment_deleted"
	ActionAttachmentAdded     = "attachment_added"
	ActionAttachmentRemoved   = "attachment_removed"
	ActionCollaboratorAdded   = "collaborator_added"
	ActionCollaboratorRemoved = "collaborator_removed"
)

// Activity is one append-only entry in a ticket's history.
type Activity struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TicketID  uint           `gorm:"index;not null" json:"ticket_id"`
	ActorID   uint           `gorm:"index;not null" json:"actor_id"`
	Action    string         `gorm:"size:50;not null" json:"action"`
	Message   string         `gorm:"type:text" json:"message"`
	Details   datatypes.JSON `json:"details,omitempty" swaggertype:"object"`
	Actor     *user.User     `gorm:"foreignKey:ActorID;references:UID" json:"actor,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

// QueryParams filters recent-activity listings.
type QueryParams struct {
	TicketIDs []uint
	Limit     int
}
