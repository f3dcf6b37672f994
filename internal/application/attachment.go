package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/linskybing/creative-desk/internal/domain/activity"
	"github.com/linskybing/creative-desk/internal/domain/notification"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/repository"
	"github.com/linskybing/creative-desk/pkg/logger"
	"github.com/linskybing/creative-desk/pkg/storage"
	"gorm.io/gorm"
)

var (
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrFileTooLarge       = errors.New("file exceeds the upload size limit")
	ErrEmptyFile          = errors.New("file is empty")
	ErrStorageUnavailable = errors.New("attachment storage is not configured")
)

// Upload describes an incoming file.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type AttachmentService struct {
	Repos    *repository.Repos
	store    storage.ObjectStore
	notifier *Notifier
	maxBytes int64
}

func NewAttachmentService(repos *repository.Repos, store storage.ObjectStore, notifier *Notifier, maxBytes int64) *AttachmentService {
	return &AttachmentService{Repos: repos, store: store, notifier: notifier, maxBytes: maxBytes}
}

// MaxBytes is the largest accepted file, zero when uploads are unbounded.
func (s *AttachmentService) MaxBytes() int64 {
	return s.maxBytes
}

func (s *AttachmentService) ListAttachments(uid, ticketID uint) ([]ticket.Attachment, error) {
	if _, _, _, err := loadVisibleTicket(s.Repos, uid, ticketID); err != nil {
		return nil, err
	}
	return s.Repos.Attachment.ListAttachments(ticketID)
}

// UploadAttachment stores the object first and then the row; the object is removed
// again if the row cannot be written.
func (s *AttachmentService) UploadAttachment(ctx context.Context, uid, ticketID uint, up Upload) (ticket.Attachment, error) {
	if s.store == nil {
		return ticket.Attachment{}, ErrStorageUnavailable
	}
	t, _, usr, err := loadVisibleTicket(s.Repos, uid, ticketID)
	if err != nil {
		return ticket.Attachment{}, err
	}
	if up.Size <= 0 {
		return ticket.Attachment{}, ErrEmptyFile
	}
	if s.maxBytes > 0 && up.Size > s.maxBytes {
		return ticket.Attachment{}, ErrFileTooLarge
	}

	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	name := storage.SanitizeFileName(up.FileName)
	key := storage.AttachmentKey(ticketID, name)

	if err := s.store.PutObject(ctx, key, contentType, up.Body, up.Size); err != nil {
		return ticket.Attachment{}, fmt.Errorf("store attachment: %w", err)
	}

	a := ticket.Attachment{
		TicketID:    ticketID,
		UploaderID:  uid,
		FileName:    name,
		ContentType: contentType,
		Size:        up.Size,
		ObjectKey:   key,
	}
	message := fmt.Sprintf("%s attached %s to %q", usr.Username, name, t.Title)

	var staged []notification.Notification
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Attachment.CreateAttachment(&a); err != nil {
			return err
		}
		if err := recordActivity(r, ticketID, uid, activity.ActionAttachmentAdded, message,
			map[string]interface{}{"attachment_id": a.ID, "file_name": name, "size": up.Size}); err != nil {
			return err
		}
		var err error
		staged, err = s.notifier.Stage(r, t.Participants(), uid, &t.ID, notification.TypeAttachment, message)
		return err
	})
	if err != nil {
		if rmErr := s.store.RemoveObject(ctx, key); rmErr != nil {
			logger.Log.Error().Err(rmErr).Str("key", key).Msg("failed to remove orphaned attachment object")
		}
		return ticket.Attachment{}, err
	}
	s.notifier.Deliver(staged)

	uploader := usr
	a.Uploader = &uploader
	return a, nil
}

func (s *AttachmentService) findAttachment(ticketID, attachmentID uint) (ticket.Attachment, error) {
	a, err := s.Repos.Attachment.GetAttachment(attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ticket.Attachment{}, ErrAttachmentNotFound
		}
		return ticket.Attachment{}, err
	}
	if a.TicketID != ticketID {
		return ticket.Attachment{}, ErrAttachmentNotFound
	}
	return a, nil
}

// OpenAttachment returns the attachment row and a reader over its content. The caller closes the reader.
func (s *AttachmentService) OpenAttachment(ctx context.Context, uid, ticketID, attachmentID uint) (ticket.Attachment, io.ReadCloser, error) {
	if s.store == nil {
		return ticket.Attachment{}, nil, ErrStorageUnavailable
	}
	if _, _, _, err := loadVisibleTicket(s.Repos, uid, ticketID); err != nil {
		return ticket.Attachment{}, nil, err
	}
	a, err := s.findAttachment(ticketID, attachmentID)
	if err != nil {
		return ticket.Attachment{}, nil, err
	}
	body, info, err := s.store.GetObject(ctx, a.ObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return ticket.Attachment{}, nil, ErrAttachmentNotFound
		}
		return ticket.Attachment{}, nil, err
	}
	if info.Size > 0 {
		a.Size = info.Size
	}
	return a, body, nil
}

// DeleteAttachment is allowed for the uploader and for admins.
func (s *AttachmentService) DeleteAttachment(ctx context.Context, uid, ticketID, attachmentID uint) error {
	if s.store == nil {
		return ErrStorageUnavailable
	}
	_, actor, usr, err := loadVisibleTicket(s.Repos, uid, ticketID)
	if err != nil {
		return err
	}
	a, err := s.findAttachment(ticketID, attachmentID)
	if err != nil {
		return err
	}
	if a.UploaderID != uid && !actor.IsAdmin() {
		return ErrForbidden
	}

	if err := s.store.RemoveObject(ctx, a.ObjectKey); err != nil {
		return fmt.Errorf("remove attachment object: %w", err)
	}
	return s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Attachment.DeleteAttachment(a.ID); err != nil {
			return err
		}
		return recordActivity(r, ticketID, uid, activity.ActionAttachmentRemoved,
			fmt.Sprintf("%s removed %s", usr.Username, a.FileName), map[string]interface{}{"attachment_id": a.ID, "file_name": a.FileName})
	})
}
