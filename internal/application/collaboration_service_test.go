package application

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/creative-desk/internal/domain/activity"
	"github.com/linskybing/creative-desk/internal/domain/notification"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/domain/user"
	"github.com/linskybing/creative-desk/pkg/storage"
	storagemock "github.com/linskybing/creative-desk/pkg/storage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Comments ---------------------
func TestAddComment_NotifiesParticipants(t *testing.T) {
	repos, m := setupRepoMocks(t)
	pub := newPublisher(m)
	svc := NewCommentService(repos, NewNotifier(pub))

	tk := sampleTicket(ticket.StatusInProgress)
	tk.AssigneeID = ptrUint(designerUser.UID)
	m.expectActor(designerUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(tk, nil)
	m.Comment.EXPECT().CreateComment(gomock.Any()).DoAndReturn(func(c *ticket.Comment) error {
		assert.Equal(t, "Draft attached", c.Content)
		c.ID = 55
		return nil
	})
	m.Activity.EXPECT().CreateActivity(gomock.Any()).DoAndReturn(func(a *activity.Activity) error {
		assert.Equal(t, activity.ActionCommented, a.Action)
		return nil
	})
	m.Notification.EXPECT().CreateNotifications(gomock.Any()).DoAndReturn(func(list []notification.Notification) error {
		require.Len(t, list, 1)
		assert.Equal(t, requesterUser.UID, list[0].UserID)
		assert.Equal(t, notification.TypeComment, list[0].Type)
		return nil
	})
	pub.EXPECT().Publish(requesterUser.UID, gomock.Any())

	c, err := svc.AddComment(designerUser.UID, 100, ticket.CreateCommentDTO{Content: "  Draft attached "})
	require.NoError(t, err)
	assert.Equal(t, uint(55), c.ID)
	assert.Equal(t, "dana", c.Author.Username)
}

func TestAddComment_Empty(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewCommentService(repos, NewNotifier(nil))
	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)

	_, err := svc.AddComment(requesterUser.UID, 100, ticket.CreateCommentDTO{Content: "   "})
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestDeleteComment_OnlyAuthorOrAdmin(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewCommentService(repos, NewNotifier(nil))

	m.expectActor(managerUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)
	m.Comment.EXPECT().GetComment(uint(55)).Return(ticket.Comment{ID: 55, TicketID: 100, AuthorID: requesterUser.UID}, nil)

	assert.ErrorIs(t, svc.DeleteComment(managerUser.UID, 100, 55), ErrForbidden)
}

func TestDeleteComment_WrongTicket(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewCommentService(repos, NewNotifier(nil))

	m.expectActor(adminUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)
	m.Comment.EXPECT().GetComment(uint(55)).Return(ticket.Comment{ID: 55, TicketID: 101}, nil)

	assert.ErrorIs(t, svc.DeleteComment(adminUser.UID, 100, 55), ErrCommentNotFound)
}

func TestDeleteComment_ByAdmin(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewCommentService(repos, NewNotifier(nil))

	m.expectActor(adminUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)
	m.Comment.EXPECT().GetComment(uint(55)).Return(ticket.Comment{ID: 55, TicketID: 100, AuthorID: requesterUser.UID}, nil)
	m.Comment.EXPECT().DeleteComment(uint(55)).Return(nil)
	m.Activity.EXPECT().CreateActivity(gomock.Any()).Return(nil)

	assert.NoError(t, svc.DeleteComment(adminUser.UID, 100, 55))
}

// --------------------- Attachments ---------------------
func setupAttachmentService(t *testing.T, maxBytes int64) (*AttachmentService, *repoMocks, *storagemock.MockObjectStore) {
	repos, m := setupRepoMocks(t)
	store := storagemock.NewMockObjectStore(m.ctrl)
	return NewAttachmentService(repos, store, NewNotifier(nil), maxBytes), m, store
}

func TestUploadAttachment_TooLarge(t *testing.T) {
	svc, m, _ := setupAttachmentService(t, 10)
	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)

	_, err := svc.UploadAttachment(context.Background(), requesterUser.UID, 100, Upload{FileName: "a.png", Size: 11, Body: strings.NewReader("01234567890")})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadAttachment_Success(t *testing.T) {
	svc, m, store := setupAttachmentService(t, 1<<20)
	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)

	var storedKey string
	store.EXPECT().PutObject(gomock.Any(), gomock.Any(), "image/png", gomock.Any(), int64(4)).
		DoAndReturn(func(_ context.Context, key, _ string, _ io.Reader, _ int64) error {
			storedKey = key
			assert.True(t, strings.HasPrefix(key, "tickets/100/"))
			assert.True(t, strings.HasSuffix(key, "-brief.png"))
			return nil
		})
	m.Attachment.EXPECT().CreateAttachment(gomock.Any()).DoAndReturn(func(a *ticket.Attachment) error {
		assert.Equal(t, storedKey, a.ObjectKey)
		assert.Equal(t, "brief.png", a.FileName)
		a.ID = 9
		return nil
	})
	m.Activity.EXPECT().CreateActivity(gomock.Any()).Return(nil)

	a, err := svc.UploadAttachment(context.Background(), requesterUser.UID, 100, Upload{
		FileName:    "../brief.png",
		ContentType: "image/png",
		Size:        4,
		Body:        bytes.NewReader([]byte("data")),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), a.ID)
}

func TestUploadAttachment_RowFailureRemovesObject(t *testing.T) {
	svc, m, store := setupAttachmentService(t, 1<<20)
	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)
	store.EXPECT().PutObject(gomock.Any(), gomock.Any(), "application/octet-stream", gomock.Any(), int64(4)).Return(nil)
	m.Attachment.EXPECT().CreateAttachment(gomock.Any()).Return(errors.New("db down"))
	store.EXPECT().RemoveObject(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.UploadAttachment(context.Background(), requesterUser.UID, 100, Upload{FileName: "x.bin", Size: 4, Body: strings.NewReader("data")})
	assert.EqualError(t, err, "db down")
}

func TestOpenAttachment_MissingObject(t *testing.T) {
	svc, m, store := setupAttachmentService(t, 1<<20)
	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)
	m.Attachment.EXPECT().GetAttachment(uint(9)).Return(ticket.Attachment{ID: 9, TicketID: 100, ObjectKey: "k"}, nil)
	store.EXPECT().GetObject(gomock.Any(), "k").Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound)

	_, _, err := svc.OpenAttachment(context.Background(), requesterUser.UID, 100, 9)
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}

func TestDeleteAttachment_RemovesObjectThenRow(t *testing.T) {
	svc, m, store := setupAttachmentService(t, 1<<20)
	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)
	m.Attachment.EXPECT().GetAttachment(uint(9)).Return(ticket.Attachment{ID: 9, TicketID: 100, UploaderID: requesterUser.UID, ObjectKey: "k"}, nil)
	gomock.InOrder(
		store.EXPECT().RemoveObject(gomock.Any(), "k").Return(nil),
		m.Attachment.EXPECT().DeleteAttachment(uint(9)).Return(nil),
	)
	m.Activity.EXPECT().CreateActivity(gomock.Any()).Return(nil)

	assert.NoError(t, svc.DeleteAttachment(context.Background(), requesterUser.UID, 100, 9))
}

func TestDeleteAttachment_NotUploader(t *testing.T) {
	svc, m, _ := setupAttachmentService(t, 1<<20)
	tk := sampleTicket(ticket.StatusInProgress)
	tk.AssigneeID = ptrUint(designerUser.UID)
	m.expectActor(designerUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(tk, nil)
	m.Attachment.EXPECT().GetAttachment(uint(9)).Return(ticket.Attachment{ID: 9, TicketID: 100, UploaderID: requesterUser.UID}, nil)

	assert.ErrorIs(t, svc.DeleteAttachment(context.Background(), designerUser.UID, 100, 9), ErrForbidden)
}

func TestAttachment_NoStore(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	svc := NewAttachmentService(repos, nil, NewNotifier(nil), 0)

	_, err := svc.UploadAttachment(context.Background(), 1, 1, Upload{})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

// --------------------- Collaborators ---------------------
func TestAddCollaborator_Success(t *testing.T) {
	repos, m := setupRepoMocks(t)
	pub := newPublisher(m)
	svc := NewCollaboratorService(repos, NewNotifier(pub))

	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)
	m.User.EXPECT().GetUserByID(outsiderUser.UID).Return(outsiderUser, nil)
	m.Collaborator.EXPECT().IsCollaborator(uint(100), outsiderUser.UID).Return(false, nil)
	m.Collaborator.EXPECT().AddCollaborator(gomock.Any()).Return(nil)
	m.Activity.EXPECT().CreateActivity(gomock.Any()).Return(nil)
	m.Notification.EXPECT().CreateNotifications(gomock.Any()).DoAndReturn(func(list []notification.Notification) error {
		require.Len(t, list, 1)
		assert.Equal(t, notification.TypeCollaborator, list[0].Type)
		return nil
	})
	pub.EXPECT().Publish(outsiderUser.UID, gomock.Any())

	c, err := svc.AddCollaborator(requesterUser.UID, 100, ticket.AddCollaboratorDTO{UserID: outsiderUser.UID})
	require.NoError(t, err)
	assert.Equal(t, outsiderUser.UID, c.UserID)
}

func TestAddCollaborator_Duplicate(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewCollaboratorService(repos, NewNotifier(nil))

	tk := sampleTicket(ticket.StatusRequested)
	tk.Collaborators = []ticket.Collaborator{{TicketID: 100, UserID: outsiderUser.UID}}
	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(tk, nil)
	m.User.EXPECT().GetUserByID(outsiderUser.UID).Return(outsiderUser, nil)

	_, err := svc.AddCollaborator(requesterUser.UID, 100, ticket.AddCollaboratorDTO{UserID: outsiderUser.UID})
	assert.ErrorIs(t, err, ErrCollaboratorExists)
}

func TestAddCollaborator_CollaboratorCannotInvite(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewCollaboratorService(repos, NewNotifier(nil))

	tk := sampleTicket(ticket.StatusRequested)
	tk.Collaborators = []ticket.Collaborator{{TicketID: 100, UserID: outsiderUser.UID}}
	m.expectActor(outsiderUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(tk, nil)

	_, err := svc.AddCollaborator(outsiderUser.UID, 100, ticket.AddCollaboratorDTO{UserID: designerUser.UID})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAddCollaborator_UnknownUser(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewCollaboratorService(repos, NewNotifier(nil))

	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)
	m.User.EXPECT().GetUserByID(uint(77)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.AddCollaborator(requesterUser.UID, 100, ticket.AddCollaboratorDTO{UserID: 77})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemoveCollaborator_SelfRemoval(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewCollaboratorService(repos, NewNotifier(nil))

	tk := sampleTicket(ticket.StatusRequested)
	tk.Collaborators = []ticket.Collaborator{{TicketID: 100, UserID: outsiderUser.UID}}
	m.expectActor(outsiderUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(tk, nil)
	m.Collaborator.EXPECT().RemoveCollaborator(uint(100), outsiderUser.UID).Return(true, nil)
	m.Activity.EXPECT().CreateActivity(gomock.Any()).Return(nil)

	assert.NoError(t, svc.RemoveCollaborator(outsiderUser.UID, 100, outsiderUser.UID))
}

func TestRemoveCollaborator_NotFound(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewCollaboratorService(repos, NewNotifier(nil))

	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)
	m.Collaborator.EXPECT().RemoveCollaborator(uint(100), uint(77)).Return(false, nil)

	assert.ErrorIs(t, svc.RemoveCollaborator(requesterUser.UID, 100, 77), ErrCollaboratorNotFound)
}
