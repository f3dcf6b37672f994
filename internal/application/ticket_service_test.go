package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/creative-desk/internal/domain/activity"
	"github.com/linskybing/creative-desk/internal/domain/department"
	"github.com/linskybing/creative-desk/internal/domain/notification"
	"github.com/linskybing/creative-desk/internal/domain/product"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/domain/user"
	rtmock "github.com/linskybing/creative-desk/internal/realtime/mock"
	"github.com/linskybing/creative-desk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTicketService(t *testing.T) (*TicketService, *repoMocks, *rtmock.MockPublisher) {
	repos, m := setupRepoMocks(t)
	pub := newPublisher(m)
	return NewTicketService(repos, NewNotifier(pub), fixedClock()), m, pub
}

// --------------------- CreateTicket ---------------------
func TestCreateTicket_Success(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(requesterUser)
	m.Department.EXPECT().GetDepartmentByID(uint(10)).Return(department.Department{ID: 10, Active: true}, nil)
	m.Product.EXPECT().GetProductByID(uint(7)).Return(product.Product{ID: 7, DepartmentID: 10}, nil)
	m.Ticket.EXPECT().CreateTicket(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		assert.Equal(t, ticket.StatusRequested, tk.Status)
		assert.Equal(t, ticket.PriorityMedium, tk.Priority)
		assert.Equal(t, requesterUser.UID, tk.RequesterID)
		assert.Equal(t, 1, tk.Version)
		tk.ID = 100
		return nil
	})
	m.Activity.EXPECT().CreateActivity(gomock.Any()).DoAndReturn(func(a *activity.Activity) error {
		assert.Equal(t, activity.ActionCreated, a.Action)
		assert.Equal(t, uint(100), a.TicketID)
		return nil
	})
	stored := sampleTicket(ticket.StatusRequested)
	m.Ticket.EXPECT().GetTicketDetail(uint(100)).Return(stored, nil)

	d, err := svc.CreateTicket(requesterUser.UID, ticket.CreateTicketDTO{
		Title:        "  Spring campaign poster ",
		DepartmentID: 10,
		ProductID:    ptrUint(7),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(100), d.ID)
	assert.Equal(t, []ticket.Action{ticket.ActionCancel}, d.AvailableActions)
}

func TestCreateTicket_InactiveDepartment(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(requesterUser)
	m.Department.EXPECT().GetDepartmentByID(uint(10)).Return(department.Department{ID: 10, Active: false}, nil)

	_, err := svc.CreateTicket(requesterUser.UID, ticket.CreateTicketDTO{Title: "x", DepartmentID: 10})
	assert.ErrorIs(t, err, ErrDepartmentInactive)
}

func TestCreateTicket_ProductFromOtherDepartment(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(requesterUser)
	m.Department.EXPECT().GetDepartmentByID(uint(10)).Return(department.Department{ID: 10, Active: true}, nil)
	m.Product.EXPECT().GetProductByID(uint(7)).Return(product.Product{ID: 7, DepartmentID: 11}, nil)

	_, err := svc.CreateTicket(requesterUser.UID, ticket.CreateTicketDTO{Title: "x", DepartmentID: 10, ProductID: ptrUint(7)})
	assert.ErrorIs(t, err, ErrProductMismatch)
}

func TestCreateTicket_UnknownDepartment(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(requesterUser)
	m.Department.EXPECT().GetDepartmentByID(uint(99)).Return(department.Department{}, gorm.ErrRecordNotFound)

	_, err := svc.CreateTicket(requesterUser.UID, ticket.CreateTicketDTO{Title: "x", DepartmentID: 99})
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

// --------------------- ListTickets ---------------------
func TestListTickets_AppliesViewerAndPaging(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(managerUser)
	m.Ticket.EXPECT().ListTickets(gomock.Any()).DoAndReturn(func(f ticket.Filter) ([]ticket.Ticket, int64, error) {
		assert.Equal(t, managerUser.UID, f.ViewerID)
		assert.True(t, f.ViewerElevated)
		assert.False(t, f.ViewerAdmin)
		assert.Equal(t, uint(10), *f.ViewerDepartment)
		assert.Equal(t, ticket.MaxLimit, f.Limit)
		assert.Equal(t, 2, f.Page)
		return nil, 0, nil
	})

	page, err := svc.ListTickets(managerUser.UID, ticket.Filter{Page: 2, Limit: 5000, ViewerAdmin: true})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, ticket.MaxLimit, page.Limit)
}

// --------------------- GetTicket ---------------------
func TestGetTicket_OutsiderForbidden(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(outsiderUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)

	_, err := svc.GetTicket(outsiderUser.UID, 100)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetTicket_CollaboratorCanView(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	tk := sampleTicket(ticket.StatusInProgress)
	tk.Collaborators = []ticket.Collaborator{{TicketID: 100, UserID: outsiderUser.UID}}
	due := testNow.Add(-time.Hour)
	tk.DueDate = &due

	m.expectActor(outsiderUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(tk, nil)
	m.Ticket.EXPECT().GetTicketDetail(uint(100)).Return(tk, nil)

	d, err := svc.GetTicket(outsiderUser.UID, 100)
	require.NoError(t, err)
	assert.True(t, d.Overdue)
	assert.Empty(t, d.AvailableActions)
}

func TestGetTicket_NotFound(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(404)).Return(ticket.Ticket{}, gorm.ErrRecordNotFound)

	_, err := svc.GetTicket(requesterUser.UID, 404)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

// --------------------- UpdateTicket ---------------------
func TestUpdateTicket_StaleVersionReturnsCurrent(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	current := sampleTicket(ticket.StatusRequested)
	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(current, nil)
	m.Ticket.EXPECT().GetTicketDetail(uint(100)).Return(current, nil)

	d, err := svc.UpdateTicket(requesterUser.UID, 100, ticket.UpdateTicketDTO{Version: 2, Title: ptrString("New")})
	assert.ErrorIs(t, err, ErrVersionConflict)
	require.NotNil(t, d.Ticket)
	assert.Equal(t, 3, d.Version)
	assert.Equal(t, "Spring campaign poster", d.Title)
}

func TestUpdateTicket_RequesterLockedAfterApproval(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusApproved), nil)

	_, err := svc.UpdateTicket(requesterUser.UID, 100, ticket.UpdateTicketDTO{Version: 3, Title: ptrString("New")})
	assert.ErrorIs(t, err, ErrTicketLocked)
}

func TestUpdateTicket_Success(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)

	urgent := ticket.PriorityUrgent
	m.Ticket.EXPECT().UpdateTicket(gomock.Any(), 3).DoAndReturn(func(tk *ticket.Ticket, v int) error {
		assert.Equal(t, "Summer poster", tk.Title)
		assert.Equal(t, ticket.PriorityUrgent, tk.Priority)
		tk.Version = v + 1
		return nil
	})
	m.Activity.EXPECT().CreateActivity(gomock.Any()).DoAndReturn(func(a *activity.Activity) error {
		assert.Equal(t, activity.ActionUpdated, a.Action)
		assert.Contains(t, string(a.Details), `"priority":"urgent"`)
		return nil
	})
	updated := sampleTicket(ticket.StatusRequested)
	updated.Title, updated.Version = "Summer poster", 4
	m.Ticket.EXPECT().GetTicketDetail(uint(100)).Return(updated, nil)

	d, err := svc.UpdateTicket(requesterUser.UID, 100, ticket.UpdateTicketDTO{
		Version:  3,
		Title:    ptrString("Summer poster"),
		Priority: &urgent,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, d.Version)
}

func TestUpdateTicket_ConcurrentWriteConflicts(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(managerUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusInProgress), nil)
	m.Ticket.EXPECT().UpdateTicket(gomock.Any(), 3).Return(repository.ErrVersionConflict)
	newer := sampleTicket(ticket.StatusInProgress)
	newer.Version = 4
	m.Ticket.EXPECT().GetTicketDetail(uint(100)).Return(newer, nil)

	d, err := svc.UpdateTicket(managerUser.UID, 100, ticket.UpdateTicketDTO{Version: 3, Description: ptrString("more")})
	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.Equal(t, 4, d.Version)
}

// --------------------- ApplyAction ---------------------
func TestApplyAction_ManagerApproves(t *testing.T) {
	svc, m, pub := setupTicketService(t)
	m.expectActor(managerUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)
	m.Ticket.EXPECT().UpdateTicket(gomock.Any(), 3).DoAndReturn(func(tk *ticket.Ticket, v int) error {
		assert.Equal(t, ticket.StatusApproved, tk.Status)
		assert.Equal(t, managerUser.UID, *tk.ApprovedByID)
		assert.Equal(t, testNow, *tk.ApprovedAt)
		return nil
	})
	m.Activity.EXPECT().CreateActivity(gomock.Any()).DoAndReturn(func(a *activity.Activity) error {
		assert.Equal(t, activity.ActionStatusChanged, a.Action)
		assert.Contains(t, string(a.Details), `"to":"approved"`)
		return nil
	})
	m.Notification.EXPECT().CreateNotifications(gomock.Any()).DoAndReturn(func(list []notification.Notification) error {
		require.Len(t, list, 1)
		assert.Equal(t, requesterUser.UID, list[0].UserID)
		assert.Equal(t, notification.TypeStatusChanged, list[0].Type)
		return nil
	})
	pub.EXPECT().Publish(requesterUser.UID, gomock.Any())
	approved := sampleTicket(ticket.StatusApproved)
	m.Ticket.EXPECT().GetTicketDetail(uint(100)).Return(approved, nil)

	d, err := svc.ApplyAction(managerUser.UID, 100, ticket.ActionApprove, ticket.ActionDTO{Version: 3})
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusApproved, d.Status)
}

func TestApplyAction_ManagerOfOtherDepartmentForbidden(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	other := managerUser
	other.DepartmentID = ptrUint(11)
	m.expectActor(other)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)

	_, err := svc.ApplyAction(other.UID, 100, ticket.ActionApprove, ticket.ActionDTO{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApplyAction_RequesterCannotApprove(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)

	_, err := svc.ApplyAction(requesterUser.UID, 100, ticket.ActionApprove, ticket.ActionDTO{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApplyAction_RejectNeedsReason(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(managerUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)

	_, err := svc.ApplyAction(managerUser.UID, 100, ticket.ActionReject, ticket.ActionDTO{Reason: "   "})
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestApplyAction_InvalidTransition(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(adminUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)

	_, err := svc.ApplyAction(adminUser.UID, 100, ticket.ActionComplete, ticket.ActionDTO{})
	assert.ErrorIs(t, err, ticket.ErrInvalidTransition)
}

func TestApplyAction_StaleVersion(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(adminUser)
	current := sampleTicket(ticket.StatusRequested)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(current, nil)
	m.Ticket.EXPECT().GetTicketDetail(uint(100)).Return(current, nil)

	d, err := svc.ApplyAction(adminUser.UID, 100, ticket.ActionApprove, ticket.ActionDTO{Version: 1})
	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.Equal(t, 3, d.Version)
}

func TestApplyAction_AssignNotifiesAssigneeAndRequester(t *testing.T) {
	svc, m, pub := setupTicketService(t)
	m.expectActor(managerUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusApproved), nil)
	m.User.EXPECT().GetUserByID(designerUser.UID).Return(designerUser, nil)
	m.Ticket.EXPECT().UpdateTicket(gomock.Any(), 3).DoAndReturn(func(tk *ticket.Ticket, v int) error {
		assert.Equal(t, ticket.StatusApproved, tk.Status)
		assert.Equal(t, designerUser.UID, *tk.AssigneeID)
		return nil
	})
	m.Activity.EXPECT().CreateActivity(gomock.Any()).DoAndReturn(func(a *activity.Activity) error {
		assert.Equal(t, activity.ActionAssigned, a.Action)
		return nil
	})
	m.Notification.EXPECT().CreateNotifications(gomock.Any()).DoAndReturn(func(list []notification.Notification) error {
		require.Len(t, list, 2)
		assert.Equal(t, notification.TypeAssigned, list[0].Type)
		return nil
	})
	pub.EXPECT().Publish(requesterUser.UID, gomock.Any())
	pub.EXPECT().Publish(designerUser.UID, gomock.Any())
	m.Ticket.EXPECT().GetTicketDetail(uint(100)).Return(sampleTicket(ticket.StatusApproved), nil)

	_, err := svc.ApplyAction(managerUser.UID, 100, ticket.ActionAssign, ticket.ActionDTO{AssigneeID: ptrUint(designerUser.UID)})
	require.NoError(t, err)
}

func TestApplyAction_AssignInactiveUser(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.expectActor(managerUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusApproved), nil)
	inactive := designerUser
	inactive.Active = false
	m.User.EXPECT().GetUserByID(designerUser.UID).Return(inactive, nil)

	_, err := svc.ApplyAction(managerUser.UID, 100, ticket.ActionAssign, ticket.ActionDTO{AssigneeID: ptrUint(designerUser.UID)})
	assert.ErrorIs(t, err, ErrAssigneeNotFound)
}

func TestApplyAction_AssigneeStartsWork(t *testing.T) {
	svc, m, pub := setupTicketService(t)
	tk := sampleTicket(ticket.StatusApproved)
	tk.AssigneeID = ptrUint(designerUser.UID)

	m.expectActor(designerUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(tk, nil)
	m.Ticket.EXPECT().UpdateTicket(gomock.Any(), 3).DoAndReturn(func(got *ticket.Ticket, v int) error {
		assert.Equal(t, ticket.StatusInProgress, got.Status)
		assert.Equal(t, testNow, *got.StartedAt)
		return nil
	})
	m.Activity.EXPECT().CreateActivity(gomock.Any()).Return(nil)
	m.Notification.EXPECT().CreateNotifications(gomock.Any()).Return(nil)
	pub.EXPECT().Publish(requesterUser.UID, gomock.Any())
	m.Ticket.EXPECT().GetTicketDetail(uint(100)).Return(tk, nil)

	_, err := svc.ApplyAction(designerUser.UID, 100, ticket.ActionStart, ticket.ActionDTO{})
	require.NoError(t, err)
}

func TestApplyAction_RequesterCompletesReview(t *testing.T) {
	svc, m, pub := setupTicketService(t)
	tk := sampleTicket(ticket.StatusInReview)
	tk.AssigneeID = ptrUint(designerUser.UID)

	m.expectActor(requesterUser)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(tk, nil)
	m.Ticket.EXPECT().UpdateTicket(gomock.Any(), 3).DoAndReturn(func(got *ticket.Ticket, v int) error {
		assert.Equal(t, ticket.StatusCompleted, got.Status)
		assert.Equal(t, testNow, *got.CompletedAt)
		return nil
	})
	m.Activity.EXPECT().CreateActivity(gomock.Any()).Return(nil)
	m.Notification.EXPECT().CreateNotifications(gomock.Any()).Return(nil)
	pub.EXPECT().Publish(designerUser.UID, gomock.Any())
	m.Ticket.EXPECT().GetTicketDetail(uint(100)).Return(tk, nil)

	_, err := svc.ApplyAction(requesterUser.UID, 100, ticket.ActionComplete, ticket.ActionDTO{})
	require.NoError(t, err)
}

func TestApplyAction_InactiveActor(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	inactive := user.User{UID: 8, Role: "admin", Active: false}
	m.expectActor(inactive)

	_, err := svc.ApplyAction(8, 100, ticket.ActionApprove, ticket.ActionDTO{})
	assert.ErrorIs(t, err, ErrUserInactive)
}

// --------------------- DeleteTicket ---------------------
func TestDeleteTicket(t *testing.T) {
	svc, m, _ := setupTicketService(t)
	m.Ticket.EXPECT().GetTicketByID(uint(100)).Return(sampleTicket(ticket.StatusRequested), nil)
	m.Ticket.EXPECT().DeleteTicket(uint(100)).Return(nil)
	assert.NoError(t, svc.DeleteTicket(100))

	m.Ticket.EXPECT().GetTicketByID(uint(101)).Return(ticket.Ticket{}, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.DeleteTicket(101), ErrTicketNotFound)
}
