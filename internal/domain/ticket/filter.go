package ticket

// Scope narrows a listing to the caller's relationship with tickets.
type Scope string

const (
	ScopeAll       Scope = ""
	ScopeMine      Scope = "mine"
	ScopeAssigned  Scope = "assigned"
	ScopeApprovals Scope = "approvals"
	ScopeWatching  Scope = "watching"
)

type Filter struct {
	Statuses     []Status
	Priority     string
	DepartmentID *uint
	ProductID    *uint
	AssigneeID   *uint
	RequesterID  *uint
	Q            string
	Scope        Scope
	Sort         string // created_at, updated_at, due_date, priority
	Order        string // asc|desc
	Page         int
	Limit        int

	// Visibility is set by the service, never by the client.
	ViewerID         uint
	ViewerElevated   bool
	ViewerAdmin      bool
	ViewerDepartment *uint
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Normalize clamps paging and sort inputs to supported values.
func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultLimit
	case f.Limit > MaxLimit:
		f.Limit = MaxLimit
	}
	switch f.Sort {
	case "created_at", "updated_at", "due_date", "priority":
	default:
		f.Sort = "created_at"
	}
	if f.Order != "asc" {
		f.Order = "desc"
	}
}

func (f *Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}
