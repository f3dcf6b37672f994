package ticket

import "time"

type CreateTicketDTO struct {
	Title        string     `json:"title" form:"title" binding:"required,max=200"`
	Description  string     `json:"description" form:"description"`
	RequestType  string     `json:"request_type" form:"request_type" binding:"max=50"`
	Priority     Priority   `json:"priority" form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DepartmentID uint       `json:"department_id" form:"department_id" binding:"required"`
	ProductID    *uint      `json:"product_id" form:"product_id"`
	DueDate      *time.Time `json:"due_date" form:"due_date" time_format:"2006-01-02T15:04:05Z07:00"`
}

// UpdateTicketDTO is a partial update. Version must match the stored version.
type UpdateTicketDTO struct {
	Version     int        `json:"version" binding:"required,min=1"`
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description"`
	RequestType *string    `json:"request_type" binding:"omitempty,max=50"`
	Priority    *Priority  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ProductID   *uint      `json:"product_id"`
	DueDate     *time.Time `json:"due_date"`
	ClearDue    bool       `json:"clear_due_date"`
}

// ActionDTO is the body accepted by workflow endpoints. Fields are action specific.
type ActionDTO struct {
	Version    int    `json:"version"`
	Reason     string `json:"reason"`
	AssigneeID *uint  `json:"assignee_id"`
}

type CreateCommentDTO struct {
	Content string `json:"content" form:"content" binding:"required,max=10000"`
}

type AddCollaboratorDTO struct {
	UserID uint `json:"user_id" form:"user_id" binding:"required"`
}

// Detail is a ticket plus the actions the caller may perform on it.
type Detail struct {
	*Ticket
	AvailableActions []Action `json:"available_actions"`
	Overdue          bool     `json:"overdue"`
}
