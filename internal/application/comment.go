package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/creative-desk/internal/domain/activity"
	"github.com/linskybing/creative-desk/internal/domain/notification"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyComment    = errors.New("comment content cannot be empty")
)

type CommentService struct {
	Repos    *repository.Repos
	notifier *Notifier
}

func NewCommentService(repos *repository.Repos, notifier *Notifier) *CommentService {
	return &CommentService{Repos: repos, notifier: notifier}
}

func (s *CommentService) ListComments(uid, ticketID uint) ([]ticket.Comment, error) {
	if _, _, _, err := loadVisibleTicket(s.Repos, uid, ticketID); err != nil {
		return nil, err
	}
	return s.Repos.Comment.ListComments(ticketID)
}

func (s *CommentService) AddComment(uid, ticketID uint, input ticket.CreateCommentDTO) (ticket.Comment, error) {
	t, _, usr, err := loadVisibleTicket(s.Repos, uid, ticketID)
	if err != nil {
		return ticket.Comment{}, err
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return ticket.Comment{}, ErrEmptyComment
	}

	c := ticket.Comment{TicketID: ticketID, AuthorID: uid, Content: content}
	message := fmt.Sprintf("%s commented on %q", usr.Username, t.Title)

	var staged []notification.Notification
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Comment.CreateComment(&c); err != nil {
			return err
		}
		if err := recordActivity(r, ticketID, uid, activity.ActionCommented, message, map[string]interface{}{"comment_id": c.ID}); err != nil {
			return err
		}
		var err error
		staged, err = s.notifier.Stage(r, t.Participants(), uid, &t.ID, notification.TypeComment, message)
		return err
	})
	if err != nil {
		return ticket.Comment{}, err
	}
	s.notifier.Deliver(staged)

	summary := usr
	c.Author = &summary
	return c, nil
}

// DeleteComment is allowed for the comment's author and for admins.
func (s *CommentService) DeleteComment(uid, ticketID, commentID uint) error {
	_, actor, usr, err := loadVisibleTicket(s.Repos, uid, ticketID)
	if err != nil {
		return err
	}
	c, err := s.Repos.Comment.GetComment(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if c.TicketID != ticketID {
		return ErrCommentNotFound
	}
	if c.AuthorID != uid && !actor.IsAdmin() {
		return ErrForbidden
	}

	return s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Comment.DeleteComment(commentID); err != nil {
			return err
		}
		return recordActivity(r, ticketID, uid, activity.ActionCommentDeleted,
			fmt.Sprintf("%s deleted a comment", usr.Username), map[string]interface{}{"comment_id": commentID})
	})
}
