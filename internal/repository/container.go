package repository

import (
	"github.com/linskybing/creative-desk/internal/config/db"
	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Department   DepartmentRepo
	Product      ProductRepo
	Ticket       TicketRepo
	Comment      CommentRepo
	Attachment   AttachmentRepo
	Collaborator CollaboratorRepo
	Activity     ActivityRepo
	Notification NotificationRepo
	Analytics    AnalyticsRepo

	db *gorm.DB
}

// New wires repositories against the process-wide connection.
func New() *Repos {
	return NewRepositories(db.DB)
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Department:   NewDepartmentRepo(db),
		Product:      NewProductRepo(db),
		Ticket:       NewTicketRepo(db),
		Comment:      NewCommentRepo(db),
		Attachment:   NewAttachmentRepo(db),
		Collaborator: NewCollaboratorRepo(db),
		Activity:     NewActivityRepo(db),
		Notification: NewNotificationRepo(db),
		Analytics:    NewAnalyticsRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Department:   r.Department.WithTx(tx),
		Product:      r.Product.WithTx(tx),
		Ticket:       r.Ticket.WithTx(tx),
		Comment:      r.Comment.WithTx(tx),
		Attachment:   r.Attachment.WithTx(tx),
		Collaborator: r.Collaborator.WithTx(tx),
		Activity:     r.Activity.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		Analytics:    r.Analytics.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside a transaction. Without a database (unit tests with mocks) fn runs directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
