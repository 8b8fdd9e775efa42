package models

// Clearance is an integer authorization tier attached to a user.
type Clearance int

const (
	// ClearanceNormal is assigned to self-registered users.
	ClearanceNormal Clearance = 1
	// ClearanceAdmin is assigned to administrator accounts.
	ClearanceAdmin Clearance = 5
)

// Minimum clearance required per kind of action.
const (
	ViewClearance   Clearance = 1
	InsertClearance Clearance = 2
	DeleteClearance Clearance = 3
	UpdateClearance Clearance = 4
	AdminClearance  Clearance = 5
)

// Session is the identity of a logged-in user. It is returned by login and
// passed explicitly to every gated operation.
type Session struct {
	// ID correlates log lines of one login.
	ID string
	// UserID references the logged-in user row.
	UserID int64
	// Username of the logged-in user.
	Username string
	// Clearance copied from the user row at login time.
	Clearance Clearance
}

// Valid reports whether the session belongs to a logged-in user.
func (s Session) Valid() bool {
	return s.UserID != 0 && s.Clearance > 0
}

// Can reports whether the session satisfies the required clearance.
func (s Session) Can(required Clearance) bool {
	return s.Valid() && s.Clearance >= required
}
