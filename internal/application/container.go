package application

import (
	"github.com/linskybing/creative-desk/internal/clock"
	"github.com/linskybing/creative-desk/internal/config"
	"github.com/linskybing/creative-desk/internal/realtime"
	"github.com/linskybing/creative-desk/internal/repository"
	"github.com/linskybing/creative-desk/pkg/storage"
)

type Services struct {
	User         *UserService
	Department   *DepartmentService
	Product      *ProductService
	Ticket       *TicketService
	Comment      *CommentService
	Attachment   *AttachmentService
	Collaborator *CollaboratorService
	Activity     *ActivityService
	Notification *NotificationService
	Analytics    *AnalyticsService
	Dashboard    *DashboardService
	Housekeeping *HousekeepingService
	Bootstrap    *BootstrapService
}

func New(repos *repository.Repos, store storage.ObjectStore, publisher realtime.Publisher, clk clock.Clock) *Services {
	notifier := NewNotifier(publisher)
	users := NewUserService(repos)
	activitySvc := NewActivityService(repos)
	notifications := NewNotificationService(repos)

	return &Services{
		User:         users,
		Department:   NewDepartmentService(repos),
		Product:      NewProductService(repos),
		Ticket:       NewTicketService(repos, notifier, clk),
		Comment:      NewCommentService(repos, notifier),
		Attachment:   NewAttachmentService(repos, store, notifier, config.MaxUploadMB<<20),
		Collaborator: NewCollaboratorService(repos, notifier),
		Activity:     activitySvc,
		Notification: notifications,
		Analytics:    NewAnalyticsService(repos, clk),
		Dashboard:    NewDashboardService(repos, activitySvc, clk),
		Housekeeping: NewHousekeepingService(repos, notifications, notifier, clk),
		Bootstrap:    NewBootstrapService(repos, users),
	}
}
