package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/creative-desk/internal/clock"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/domain/user"
	rtmock "github.com/linskybing/creative-desk/internal/realtime/mock"
	"github.com/linskybing/creative-desk/internal/repository"
	"github.com/linskybing/creative-desk/internal/repository/mock"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type repoMocks struct {
	ctrl         *gomock.Controller
	User         *mock.MockUserRepo
	Department   *mock.MockDepartmentRepo
	Product      *mock.MockProductRepo
	Ticket       *mock.MockTicketRepo
	Comment      *mock.MockCommentRepo
	Attachment   *mock.MockAttachmentRepo
	Collaborator *mock.MockCollaboratorRepo
	Activity     *mock.MockActivityRepo
	Notification *mock.MockNotificationRepo
	Analytics    *mock.MockAnalyticsRepo
}

func setupRepoMocks(t *testing.T) (*repository.Repos, *repoMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &repoMocks{
		ctrl:         ctrl,
		User:         mock.NewMockUserRepo(ctrl),
		Department:   mock.NewMockDepartmentRepo(ctrl),
		Product:      mock.NewMockProductRepo(ctrl),
		Ticket:       mock.NewMockTicketRepo(ctrl),
		Comment:      mock.NewMockCommentRepo(ctrl),
		Attachment:   mock.NewMockAttachmentRepo(ctrl),
		Collaborator: mock.NewMockCollaboratorRepo(ctrl),
		Activity:     mock.NewMockActivityRepo(ctrl),
		Notification: mock.NewMockNotificationRepo(ctrl),
		Analytics:    mock.NewMockAnalyticsRepo(ctrl),
	}
	repos := &repository.Repos{
		User:         m.User,
		Department:   m.Department,
		Product:      m.Product,
		Ticket:       m.Ticket,
		Comment:      m.Comment,
		Attachment:   m.Attachment,
		Collaborator: m.Collaborator,
		Activity:     m.Activity,
		Notification: m.Notification,
		Analytics:    m.Analytics,
	}
	return repos, m
}

// expectActor makes loadActor resolve uid to the given user.
func (m *repoMocks) expectActor(u user.User) {
	m.User.EXPECT().GetUserByID(u.UID).Return(u, nil)
}

func fixedClock() clock.Clock {
	return clock.NewFixed(testNow)
}

func newPublisher(m *repoMocks) *rtmock.MockPublisher {
	return rtmock.NewMockPublisher(m.ctrl)
}

func ptrString(s string) *string { return &s }
func ptrUint(v uint) *uint       { return &v }
func ptrBool(v bool) *bool       { return &v }

var (
	adminUser     = user.User{UID: 1, Username: "admin", Role: "admin", Active: true}
	managerUser   = user.User{UID: 2, Username: "maya", Role: "manager", DepartmentID: ptrUint(10), Active: true}
	requesterUser = user.User{UID: 3, Username: "rick", Role: "user", Active: true}
	designerUser  = user.User{UID: 4, Username: "dana", Role: "user", Active: true}
	outsiderUser  = user.User{UID: 5, Username: "otto", Role: "user", Active: true}
)

func sampleTicket(status ticket.Status) ticket.Ticket {
	return ticket.Ticket{
		ID:           100,
		Title:        "Spring campaign poster",
		Priority:     ticket.PriorityHigh,
		Status:       status,
		RequesterID:  requesterUser.UID,
		DepartmentID: 10,
		Version:      3,
	}
}
