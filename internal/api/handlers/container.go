package handlers

import (
	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/internal/realtime"
)

type Handlers struct {
	User         *UserHandler
	Department   *DepartmentHandler
	Product      *ProductHandler
	Ticket       *TicketHandler
	Comment      *CommentHandler
	Attachment   *AttachmentHandler
	Collaborator *CollaboratorHandler
	Activity     *ActivityHandler
	Notification *NotificationHandler
	WS           *WSHandler
	Analytics    *AnalyticsHandler
	Dashboard    *DashboardHandler
}

func New(svc *application.Services, hub *realtime.Hub) *Handlers {
	return &Handlers{
		User:         NewUserHandler(svc.User),
		Department:   NewDepartmentHandler(svc.Department),
		Product:      NewProductHandler(svc.Product),
		Ticket:       NewTicketHandler(svc.Ticket),
		Comment:      NewCommentHandler(svc.Comment),
		Attachment:   NewAttachmentHandler(svc.Attachment),
		Collaborator: NewCollaboratorHandler(svc.Collaborator),
		Activity:     NewActivityHandler(svc.Activity),
		Notification: NewNotificationHandler(svc.Notification),
		WS:           NewWSHandler(hub),
		Analytics:    NewAnalyticsHandler(svc.Analytics),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
	}
}
