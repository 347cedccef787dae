package sessiongate

import (
	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/enums"
)

// State is the top-level navigational area a session is allowed into.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAwaitingProfile State = "awaiting_profile"
	StatePendingApproval State = "pending_approval"
	StateActive          State = "active"
	StateRejected        State = "rejected"
)

// Entry routes the mobile client redirects to when its current route group
// does not match the resolved state. Awaiting-profile is transient and has
// no canonical entry; the client stays put until the profile settles.
var entryRoutes = map[State]string{
	StateUnauthenticated: "/auth/login",
	StateAwaitingProfile: "",
	StatePendingApproval: "/pending-approval",
	StateActive:          "/home",
	StateRejected:        "/account-rejected",
}

// Profile is the subset of the user record the gate derives state from.
type Profile struct {
	UserID uuid.UUID
	Status enums.UserStatus
	Role   enums.UserRole
}

// Snapshot is the gate's externally visible derived state.
type Snapshot struct {
	State      State  `json:"state"`
	Loading    bool   `json:"loading"`
	IsAdmin    bool   `json:"is_admin"`
	EntryRoute string `json:"entry_route"`
}

// Resolve maps the most-recently-observed (identity, profile) pair to a
// state. profileObserved distinguishes "subscription still pending" from
// "record observed absent": an authenticated identity whose profile record
// is missing resolves to unauthenticated rather than staying put.
func Resolve(identityPresent, profileObserved bool, profile *Profile) State {
	if !identityPresent {
		return StateUnauthenticated
	}
	if !profileObserved {
		return StateAwaitingProfile
	}
	if profile == nil {
		return StateUnauthenticated
	}
	switch profile.Status {
	case enums.UserStatusPendingApproval:
		return StatePendingApproval
	case enums.UserStatusApproved, enums.UserStatusActive:
		return StateActive
	case enums.UserStatusRejected:
		return StateRejected
	}
	// Unrecognized status values never grant access.
	return StateUnauthenticated
}

// EntryRoute returns the canonical entry route for the state.
func EntryRoute(state State) string {
	return entryRoutes[state]
}
