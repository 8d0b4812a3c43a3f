package guard

import (
	"fmt"

	sessiondomain "github.com/ringside-club/ringside/app/modules/session/domain"
)

// LoginPath is where unauthenticated viewers are sent.
const LoginPath = "/login"

// AdminLandingPath is where admins land after authentication.
const AdminLandingPath = "/dashboard/list/tournaments"

// State is the guard's view of a session while deciding what to do with a
// protected page.
type State int

const (
	// StateChecking means the session is still being resolved; protected
	// content must not be shown yet.
	StateChecking State = iota
	// StateUnauthenticated means resolution finished with no identity.
	StateUnauthenticated
	// StateAuthenticated means resolution finished with an identity.
	StateAuthenticated
)

// StateOf classifies a session snapshot.
func StateOf(s *sessiondomain.Session) State {
	switch {
	case s == nil:
		return StateUnauthenticated
	case s.Checking:
		return StateChecking
	case s.Identity == nil:
		return StateUnauthenticated
	default:
		return StateAuthenticated
	}
}

// Action is what the guard does with the current navigation.
type Action int

const (
	// ActionRender lets the wrapped content through untouched.
	ActionRender Action = iota
	// ActionHold renders a loading placeholder and nothing else.
	ActionHold
	// ActionRedirect sends the viewer to Decision.Target.
	ActionRedirect
)

// Decision is the guard's verdict for one navigation. It is a pure function
// of the session, independently testable from the navigation itself.
type Decision struct {
	Action Action
	Target string
}

// Decide maps a session snapshot to a guard decision: still checking holds
// the page, no session redirects to login, a session renders the content.
func Decide(s *sessiondomain.Session) Decision {
	switch StateOf(s) {
	case StateChecking:
		return Decision{Action: ActionHold}
	case StateUnauthenticated:
		return Decision{Action: ActionRedirect, Target: LoginPath}
	default:
		return Decision{Action: ActionRender}
	}
}

// Landing is the role branch: the page an authenticated viewer is sent to
// from the dashboard root. Admins see the tournament list; players see their
// own profile. Unauthenticated viewers go to login.
func Landing(s *sessiondomain.Session) string {
	if !s.Authenticated() {
		return LoginPath
	}
	if s.Identity.Role == sessiondomain.RoleAdmin {
		return AdminLandingPath
	}
	return fmt.Sprintf("/dashboard/list/users/%d", s.Identity.ID)
}
