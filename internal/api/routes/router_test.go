package routes_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/creative-desk/internal/api/middleware"
	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/internal/clock"
	"github.com/linskybing/creative-desk/internal/config"
	"github.com/linskybing/creative-desk/internal/domain/activity"
	"github.com/linskybing/creative-desk/internal/domain/department"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/domain/user"
	"github.com/linskybing/creative-desk/internal/repository"
	"github.com/linskybing/creative-desk/internal/repository/mock"
	"github.com/linskybing/creative-desk/internal/testutils"
	"github.com/linskybing/creative-desk/pkg/response"
	"github.com/linskybing/creative-desk/pkg/storage"
	storagemock "github.com/linskybing/creative-desk/pkg/storage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	testNow     = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	deptID      = uint(10)
	admin       = user.User{UID: 1, Username: "admin", Role: "admin", Active: true}
	manager     = user.User{UID: 2, Username: "maya", Role: "manager", DepartmentID: &deptID, Active: true}
	requester   = user.User{UID: 3, Username: "rick", Role: "user", Active: true}
	outsider    = user.User{UID: 5, Username: "otto", Role: "user", Active: true}
	errDatabase = errors.New("connection reset")
)

type apiEnv struct {
	router     *gin.Engine
	users      *mock.MockUserRepo
	depts      *mock.MockDepartmentRepo
	tickets    *mock.MockTicketRepo
	activities *mock.MockActivityRepo
	attach     *mock.MockAttachmentRepo
	store      *storagemock.MockObjectStore
}

func setupAPI(t *testing.T, withStore bool) *apiEnv {
	t.Helper()
	config.JwtSecret = "test-secret"
	config.TokenTTLHours = 1
	middleware.Init()

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	env := &apiEnv{
		users:      mock.NewMockUserRepo(ctrl),
		depts:      mock.NewMockDepartmentRepo(ctrl),
		tickets:    mock.NewMockTicketRepo(ctrl),
		activities: mock.NewMockActivityRepo(ctrl),
		attach:     mock.NewMockAttachmentRepo(ctrl),
	}
	repos := &repository.Repos{
		User:         env.users,
		Department:   env.depts,
		Product:      mock.NewMockProductRepo(ctrl),
		Ticket:       env.tickets,
		Comment:      mock.NewMockCommentRepo(ctrl),
		Attachment:   env.attach,
		Collaborator: mock.NewMockCollaboratorRepo(ctrl),
		Activity:     env.activities,
		Notification: mock.NewMockNotificationRepo(ctrl),
		Analytics:    mock.NewMockAnalyticsRepo(ctrl),
	}

	var store storage.ObjectStore
	if withStore {
		env.store = storagemock.NewMockObjectStore(ctrl)
		store = env.store
	}
	env.router = testutils.SetupRouter(repos, application.New(repos, store, nil, clock.NewFixed(testNow)), nil)
	return env
}

func (e *apiEnv) client(t *testing.T, u *user.User) *testutils.HTTPClient {
	t.Helper()
	if u == nil {
		return testutils.NewHTTPClient(e.router, "")
	}
	token, err := middleware.GenerateToken(u.UID, u.Username, u.Role, time.Hour)
	require.NoError(t, err)
	return testutils.NewHTTPClient(e.router, token)
}

func storedTicket(status ticket.Status) ticket.Ticket {
	return ticket.Ticket{
		ID:           100,
		Title:        "Spring campaign poster",
		Priority:     ticket.PriorityHigh,
		Status:       status,
		RequesterID:  requester.UID,
		DepartmentID: deptID,
		Version:      3,
	}
}

func decodeError(t *testing.T, resp *testutils.Response) string {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, resp.DecodeJSON(&body))
	return body.Error
}

// --------------------- public routes ---------------------
func TestHealthz(t *testing.T) {
	env := setupAPI(t, false)
	resp, err := env.client(t, nil).GET("/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_Success(t *testing.T) {
	env := setupAPI(t, false)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := requester
	stored.Password = string(hash)
	env.users.EXPECT().GetUserByUsername("rick").Return(stored, nil)

	resp, err := env.client(t, nil).POST("/login", map[string]string{"username": "rick", "password": "s3cret-pass"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body response.TokenResponse
	require.NoError(t, resp.DecodeJSON(&body))
	assert.Equal(t, requester.UID, body.UID)
	assert.Equal(t, "user", body.Role)
	assert.False(t, body.IsAdmin)
	assert.Contains(t, resp.Headers.Get("Set-Cookie"), "token=")

	claims, err := middleware.ParseToken(body.Token)
	require.NoError(t, err)
	assert.Equal(t, requester.UID, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := setupAPI(t, false)
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	stored := requester
	stored.Password = string(hash)
	env.users.EXPECT().GetUserByUsername("rick").Return(stored, nil)

	resp, err := env.client(t, nil).POST("/login", map[string]string{"username": "rick", "password": "nope-nope"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid username or password", decodeError(t, resp))
}

func TestLogin_InactiveAccount(t *testing.T) {
	env := setupAPI(t, false)
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	stored := requester
	stored.Password = string(hash)
	stored.Active = false
	env.users.EXPECT().GetUserByUsername("rick").Return(stored, nil)

	resp, err := env.client(t, nil).POST("/login", map[string]string{"username": "rick", "password": "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLogin_MissingFields(t *testing.T) {
	env := setupAPI(t, false)
	resp, err := env.client(t, nil).POST("/login", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "username is required")
}

// --------------------- auth gates ---------------------
func TestProtectedRoute_RequiresToken(t *testing.T) {
	env := setupAPI(t, false)
	resp, err := env.client(t, nil).GET("/tickets")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoute_RejectsForgedToken(t *testing.T) {
	env := setupAPI(t, false)
	resp, err := testutils.NewHTTPClient(env.router, "not.a.token").GET("/me")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutes_ForbiddenForUsers(t *testing.T) {
	env := setupAPI(t, false)
	env.users.EXPECT().GetUserByID(requester.UID).Return(requester, nil).AnyTimes()
	c := env.client(t, &requester)

	cases := []struct {
		name string
		do   func() (*testutils.Response, error)
	}{
		{"create department", func() (*testutils.Response, error) {
			return c.POST("/departments", map[string]string{"name": "Print"})
		}},
		{"delete user", func() (*testutils.Response, error) { return c.DELETE("/users/4") }},
		{"delete ticket", func() (*testutils.Response, error) { return c.DELETE("/tickets/100") }},
		{"analytics", func() (*testutils.Response, error) { return c.GET("/analytics/summary") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := tc.do()
			require.NoError(t, err)
			assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		})
	}
}

func TestAdminRoutes_StaleAdminToken(t *testing.T) {
	env := setupAPI(t, false)
	demoted := admin
	demoted.UID = 6
	demoted.Username = "ex-admin"
	demoted.Role = "user"
	env.users.EXPECT().GetUserByID(demoted.UID).Return(demoted, nil).AnyTimes()
	env.users.EXPECT().SaveUser(gomock.Any()).Times(0)

	// token still carries the admin role issued before the demotion
	token, err := middleware.GenerateToken(demoted.UID, demoted.Username, "admin", time.Hour)
	require.NoError(t, err)
	c := testutils.NewHTTPClient(env.router, token)

	resp, err := c.PUT("/users/7", map[string]any{"role": "admin", "active": true})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = c.POST("/users", map[string]string{"username": "mallory", "password": "secret123", "role": "admin"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminRoutes_DeactivatedAdminToken(t *testing.T) {
	env := setupAPI(t, false)
	disabled := admin
	disabled.Active = false
	env.users.EXPECT().GetUserByID(disabled.UID).Return(disabled, nil).AnyTimes()
	env.users.EXPECT().SaveUser(gomock.Any()).Times(0)
	c := env.client(t, &disabled)

	resp, err := c.PUT("/users/7", map[string]any{"role": "admin", "active": true})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = c.POST("/users", map[string]string{"username": "mallory", "password": "secret123"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Account disabled", decodeError(t, resp))
}

func TestDeleteUser_ReferencedByTickets(t *testing.T) {
	env := setupAPI(t, false)
	env.users.EXPECT().GetUserByID(admin.UID).Return(admin, nil)
	env.users.EXPECT().GetUserByID(requester.UID).Return(requester, nil)
	env.users.EXPECT().CountUserReferences(requester.UID).Return(int64(2), nil)
	env.users.EXPECT().DeleteUser(gomock.Any()).Times(0)

	resp, err := env.client(t, &admin).DELETE("/users/3")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "user is referenced by tickets, deactivate the account instead", decodeError(t, resp))
}

func TestAnalytics_ManagerOutsideDepartment(t *testing.T) {
	env := setupAPI(t, false)
	env.users.EXPECT().GetUserByID(manager.UID).Return(manager, nil).Times(2)

	resp, err := env.client(t, &manager).GET("/analytics/summary", map[string]string{"department_id": "11"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// --------------------- tickets ---------------------
func TestCreateTicket_Success(t *testing.T) {
	env := setupAPI(t, false)
	env.users.EXPECT().GetUserByID(requester.UID).Return(requester, nil)
	env.depts.EXPECT().GetDepartmentByID(deptID).Return(department.Department{ID: deptID, Name: "Marketing", Active: true}, nil)
	env.tickets.EXPECT().CreateTicket(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		assert.Equal(t, ticket.StatusRequested, tk.Status)
		assert.Equal(t, ticket.PriorityMedium, tk.Priority)
		assert.Equal(t, requester.UID, tk.RequesterID)
		tk.ID = 100
		return nil
	})
	env.activities.EXPECT().CreateActivity(gomock.Any()).DoAndReturn(func(a *activity.Activity) error {
		assert.Equal(t, activity.ActionCreated, a.Action)
		return nil
	})
	created := storedTicket(ticket.StatusRequested)
	created.Version = 1
	env.tickets.EXPECT().GetTicketDetail(uint(100)).Return(created, nil)

	resp, err := env.client(t, &requester).POST("/tickets", map[string]interface{}{
		"title":         "  Spring campaign poster ",
		"department_id": deptID,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, resp.DecodeJSON(&body))
	assert.Equal(t, float64(100), body["id"])
	assert.Equal(t, "requested", body["status"])
	assert.Contains(t, body, "available_actions")
}

func TestCreateTicket_ValidationMessage(t *testing.T) {
	env := setupAPI(t, false)
	resp, err := env.client(t, &requester).POST("/tickets", map[string]interface{}{"priority": "asap"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	msg := decodeError(t, resp)
	assert.Contains(t, msg, "title is required")
	assert.Contains(t, msg, "department_id is required")
}

func TestCreateTicket_InactiveDepartment(t *testing.T) {
	env := setupAPI(t, false)
	env.users.EXPECT().GetUserByID(requester.UID).Return(requester, nil)
	env.depts.EXPECT().GetDepartmentByID(deptID).Return(department.Department{ID: deptID, Active: false}, nil)

	resp, err := env.client(t, &requester).POST("/tickets", map[string]interface{}{"title": "Flyer", "department_id": deptID})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListTickets_InvalidStatus(t *testing.T) {
	env := setupAPI(t, false)
	resp, err := env.client(t, &requester).GET("/tickets", map[string]string{"status": "requested,lost"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid status: lost", decodeError(t, resp))
}

func TestListTickets_Page(t *testing.T) {
	env := setupAPI(t, false)
	env.users.EXPECT().GetUserByID(requester.UID).Return(requester, nil)
	env.tickets.EXPECT().ListTickets(gomock.Any()).DoAndReturn(func(f ticket.Filter) ([]ticket.Ticket, int64, error) {
		assert.Equal(t, requester.UID, f.ViewerID)
		assert.Equal(t, ticket.ScopeMine, f.Scope)
		assert.Equal(t, 2, f.Page)
		return []ticket.Ticket{storedTicket(ticket.StatusRequested)}, 21, nil
	})

	resp, err := env.client(t, &requester).GET("/tickets", map[string]string{"scope": "mine", "page": "2"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items []ticket.Ticket `json:"items"`
		Total int64           `json:"total"`
		Page  int             `json:"page"`
	}
	require.NoError(t, resp.DecodeJSON(&body))
	assert.Len(t, body.Items, 1)
	assert.Equal(t, int64(21), body.Total)
	assert.Equal(t, 2, body.Page)
}

func TestGetTicket_NotFound(t *testing.T) {
	env := setupAPI(t, false)
	env.users.EXPECT().GetUserByID(requester.UID).Return(requester, nil)
	env.tickets.EXPECT().GetTicketByID(uint(404)).Return(ticket.Ticket{}, gorm.ErrRecordNotFound)

	resp, err := env.client(t, &requester).GET("/tickets/404")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetTicket_InternalErrorIsMasked(t *testing.T) {
	env := setupAPI(t, false)
	env.users.EXPECT().GetUserByID(requester.UID).Return(requester, nil)
	env.tickets.EXPECT().GetTicketByID(uint(100)).Return(ticket.Ticket{}, errDatabase)

	resp, err := env.client(t, &requester).GET("/tickets/100")
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", decodeError(t, resp))
}

func TestUpdateTicket_StaleVersionReturnsCurrent(t *testing.T) {
	env := setupAPI(t, false)
	env.users.EXPECT().GetUserByID(requester.UID).Return(requester, nil)
	env.tickets.EXPECT().GetTicketByID(uint(100)).Return(storedTicket(ticket.StatusRequested), nil)
	env.tickets.EXPECT().GetTicketDetail(uint(100)).Return(storedTicket(ticket.StatusRequested), nil)

	resp, err := env.client(t, &requester).PUT("/tickets/100", map[string]interface{}{"version": 2, "title": "New title"})
	require.NoError(t, err)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body struct {
		Error   string `json:"error"`
		Current struct {
			ID      uint   `json:"id"`
			Title   string `json:"title"`
			Version int    `json:"version"`
		} `json:"current"`
	}
	require.NoError(t, resp.DecodeJSON(&body))
	assert.NotEmpty(t, body.Error)
	assert.Equal(t, 3, body.Current.Version)
	assert.Equal(t, "Spring campaign poster", body.Current.Title)
}

func TestUpdateTicket_MissingVersion(t *testing.T) {
	env := setupAPI(t, false)
	resp, err := env.client(t, &requester).PUT("/tickets/100", map[string]interface{}{"title": "New title"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "version is required")
}

func TestApplyAction_UnknownAction(t *testing.T) {
	env := setupAPI(t, false)
	resp, err := env.client(t, &manager).POST("/tickets/100/teleport", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApplyAction_InvisibleTicket(t *testing.T) {
	env := setupAPI(t, false)
	env.users.EXPECT().GetUserByID(outsider.UID).Return(outsider, nil)
	env.tickets.EXPECT().GetTicketByID(uint(100)).Return(storedTicket(ticket.StatusRequested), nil)

	resp, err := env.client(t, &outsider).POST("/tickets/100/approve", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestApplyAction_InvalidTransition(t *testing.T) {
	env := setupAPI(t, false)
	env.users.EXPECT().GetUserByID(manager.UID).Return(manager, nil)
	env.tickets.EXPECT().GetTicketByID(uint(100)).Return(storedTicket(ticket.StatusCompleted), nil)

	resp, err := env.client(t, &manager).POST("/tickets/100/approve", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestApplyAction_RejectNeedsReason(t *testing.T) {
	env := setupAPI(t, false)
	env.users.EXPECT().GetUserByID(manager.UID).Return(manager, nil)
	env.tickets.EXPECT().GetTicketByID(uint(100)).Return(storedTicket(ticket.StatusRequested), nil)

	resp, err := env.client(t, &manager).POST("/tickets/100/reject", map[string]interface{}{"version": 3, "reason": "  "})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// --------------------- attachments ---------------------
func TestUploadAttachment_StorageUnavailable(t *testing.T) {
	env := setupAPI(t, false)
	resp, err := env.client(t, &requester).POSTFile("/tickets/100/attachments", "file", "brief.png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestUploadAttachment_MissingFile(t *testing.T) {
	env := setupAPI(t, true)
	resp, err := env.client(t, &requester).POST("/tickets/100/attachments", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "file is required", decodeError(t, resp))
}

func TestUploadAttachment_BodyOverLimit(t *testing.T) {
	old := config.MaxUploadMB
	config.MaxUploadMB = 1
	t.Cleanup(func() { config.MaxUploadMB = old })

	env := setupAPI(t, true)
	env.store.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	payload := make([]byte, 3<<20)
	resp, err := env.client(t, &requester).POSTFile("/tickets/100/attachments", "file", "huge.psd", payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, "file exceeds the upload size limit", decodeError(t, resp))
}

func TestUploadAttachment_Success(t *testing.T) {
	env := setupAPI(t, true)
	env.users.EXPECT().GetUserByID(requester.UID).Return(requester, nil)
	env.tickets.EXPECT().GetTicketByID(uint(100)).Return(storedTicket(ticket.StatusInProgress), nil)
	env.store.EXPECT().PutObject(gomock.Any(), gomock.Any(), "application/octet-stream", gomock.Any(), int64(9)).
		DoAndReturn(func(_ context.Context, key, _ string, body io.Reader, _ int64) error {
			assert.True(t, strings.HasPrefix(key, "tickets/100/"))
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(data))
			return nil
		})
	env.attach.EXPECT().CreateAttachment(gomock.Any()).DoAndReturn(func(a *ticket.Attachment) error {
		a.ID = 7
		return nil
	})
	env.activities.EXPECT().CreateActivity(gomock.Any()).Return(nil)

	resp, err := env.client(t, &requester).POSTFile("/tickets/100/attachments", "file", "brief.png", []byte("png-bytes"))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body ticket.Attachment
	require.NoError(t, resp.DecodeJSON(&body))
	assert.Equal(t, uint(7), body.ID)
	assert.Equal(t, "brief.png", body.FileName)
	assert.Equal(t, int64(9), body.Size)
}

func TestDownloadAttachment_Streams(t *testing.T) {
	env := setupAPI(t, true)
	env.users.EXPECT().GetUserByID(requester.UID).Return(requester, nil)
	env.tickets.EXPECT().GetTicketByID(uint(100)).Return(storedTicket(ticket.StatusInProgress), nil)
	env.attach.EXPECT().GetAttachment(uint(7)).Return(ticket.Attachment{
		ID:          7,
		TicketID:    100,
		FileName:    "brief.png",
		ContentType: "image/png",
		Size:        9,
		ObjectKey:   "tickets/100/abc-brief.png",
	}, nil)
	env.store.EXPECT().GetObject(gomock.Any(), "tickets/100/abc-brief.png").
		Return(io.NopCloser(strings.NewReader("png-bytes")), storage.ObjectInfo{Size: 9, ContentType: "image/png"}, nil)

	resp, err := env.client(t, &requester).GET("/tickets/100/attachments/7/download")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "png-bytes", string(resp.Body))
	assert.Equal(t, "image/png", resp.Headers.Get("Content-Type"))
	assert.Contains(t, resp.Headers.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Headers.Get("Content-Disposition"), "brief.png")
}

func TestDownloadAttachment_OtherTicket(t *testing.T) {
	env := setupAPI(t, true)
	env.users.EXPECT().GetUserByID(requester.UID).Return(requester, nil)
	env.tickets.EXPECT().GetTicketByID(uint(100)).Return(storedTicket(ticket.StatusInProgress), nil)
	env.attach.EXPECT().GetAttachment(uint(7)).Return(ticket.Attachment{ID: 7, TicketID: 101}, nil)

	resp, err := env.client(t, &requester).GET("/tickets/100/attachments/7/download")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// --------------------- realtime ---------------------
func TestNotificationStream_WithoutHub(t *testing.T) {
	env := setupAPI(t, false)
	resp, err := env.client(t, &requester).GET("/ws/notifications")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestAuthStatus(t *testing.T) {
	env := setupAPI(t, false)
	resp, err := env.client(t, &admin).GET("/auth/status")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, resp.DecodeJSON(&body))
	assert.Equal(t, "valid", body["status"])
	assert.Equal(t, "admin", body["role"])
}
