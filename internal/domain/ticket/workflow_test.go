package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestNext(t *testing.T) {
	cases := []struct {
		from   Status
		action Action
		want   Status
		err    error
	}{
		{StatusRequested, ActionApprove, StatusApproved, nil},
		{StatusRequested, ActionReject, StatusRejected, nil},
		{StatusRejected, ActionResubmit, StatusRequested, nil},
		{StatusApproved, ActionAssign, StatusApproved, nil},
		{StatusInReview, ActionAssign, StatusInReview, nil},
		{StatusApproved, ActionStart, StatusInProgress, nil},
		{StatusInProgress, ActionSubmit, StatusInReview, nil},
		{StatusInReview, ActionRequestChanges, StatusInProgress, nil},
		{StatusInReview, ActionComplete, StatusCompleted, nil},
		{StatusCompleted, ActionReopen, StatusInProgress, nil},
		{StatusInProgress, ActionCancel, StatusCancelled, nil},
		{StatusApproved, ActionApprove, "", ErrInvalidTransition},
		{StatusCompleted, ActionCancel, "", ErrInvalidTransition},
		{StatusCancelled, ActionReopen, "", ErrInvalidTransition},
		{StatusRequested, ActionStart, "", ErrInvalidTransition},
		{StatusRequested, Action("explode"), "", ErrUnknownAction},
	}
	for _, tc := range cases {
		got, err := Next(tc.from, tc.action)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, "%s --%s-->", tc.from, tc.action)
			continue
		}
		require.NoError(t, err, "%s --%s-->", tc.from, tc.action)
		assert.Equal(t, tc.want, got)
	}
}

func TestPermitted(t *testing.T) {
	tk := &Ticket{RequesterID: 10, DepartmentID: 3, AssigneeID: uintPtr(20)}

	admin := Actor{UserID: 1, Role: "admin"}
	mgr := Actor{UserID: 2, Role: "manager", DepartmentID: uintPtr(3)}
	otherMgr := Actor{UserID: 4, Role: "manager", DepartmentID: uintPtr(9)}
	requester := Actor{UserID: 10, Role: "user"}
	assignee := Actor{UserID: 20, Role: "user"}
	stranger := Actor{UserID: 30, Role: "user"}

	assert.True(t, Permitted(admin, tk, ActionApprove))
	assert.True(t, Permitted(mgr, tk, ActionApprove))
	assert.False(t, Permitted(otherMgr, tk, ActionApprove))
	assert.False(t, Permitted(requester, tk, ActionApprove))

	assert.True(t, Permitted(requester, tk, ActionResubmit))
	assert.False(t, Permitted(mgr, tk, ActionResubmit))

	assert.True(t, Permitted(assignee, tk, ActionStart))
	assert.True(t, Permitted(assignee, tk, ActionSubmit))
	assert.False(t, Permitted(assignee, tk, ActionComplete))
	assert.True(t, Permitted(requester, tk, ActionComplete))

	assert.True(t, Permitted(requester, tk, ActionCancel))
	assert.False(t, Permitted(stranger, tk, ActionCancel))
	assert.False(t, Permitted(stranger, tk, Action("nope")))
}

func TestAvailableActions(t *testing.T) {
	mgr := Actor{UserID: 2, Role: "manager", DepartmentID: uintPtr(3)}
	requester := Actor{UserID: 10, Role: "user"}

	tk := &Ticket{RequesterID: 10, DepartmentID: 3, Status: StatusRequested}
	assert.Equal(t, []Action{ActionApprove, ActionReject, ActionCancel}, AvailableActions(mgr, tk))
	assert.Equal(t, []Action{ActionCancel}, AvailableActions(requester, tk))

	tk.Status = StatusApproved
	assert.Equal(t, []Action{ActionAssign, ActionCancel}, AvailableActions(mgr, tk), "start hidden until assigned")

	tk.AssigneeID = uintPtr(20)
	assert.Equal(t, []Action{ActionAssign, ActionStart, ActionCancel}, AvailableActions(mgr, tk))
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("request_changes")
	require.NoError(t, err)
	assert.Equal(t, ActionRequestChanges, a)

	_, err = ParseAction("delete")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestParticipants(t *testing.T) {
	tk := &Ticket{
		RequesterID:   1,
		AssigneeID:    uintPtr(2),
		Collaborators: []Collaborator{{UserID: 3}, {UserID: 1}},
	}
	assert.Equal(t, []uint{1, 2, 3}, tk.Participants())
	assert.True(t, tk.HasCollaborator(3))
	assert.False(t, tk.HasCollaborator(2))
}

func TestFilterNormalize(t *testing.T) {
	f := Filter{Page: 0, Limit: 1000, Sort: "drop table", Order: "sideways"}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, MaxLimit, f.Limit)
	assert.Equal(t, "created_at", f.Sort)
	assert.Equal(t, "desc", f.Order)
	assert.Equal(t, 0, f.Offset())

	f = Filter{Page: 3, Limit: 10, Sort: "priority", Order: "asc"}
	f.Normalize()
	assert.Equal(t, 20, f.Offset())
	assert.Equal(t, "priority", f.Sort)
	assert.Equal(t, "asc", f.Order)
}

func TestFilterNormalize_Limit(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, DefaultLimit},
		{-5, DefaultLimit},
		{1, 1},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
		{1000, MaxLimit},
	}
	for _, tc := range cases {
		f := Filter{Limit: tc.in}
		f.Normalize()
		assert.Equal(t, tc.want, f.Limit, "limit %d", tc.in)
	}
}
