package sessiondomain

import "context"

// Role represents a user's role for authorization purposes.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RolePlayer Role = "PLAYER"
)

// IsValid checks if the role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePlayer:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// ParseRole normalizes the upstream API's role spellings ("ROLE_ADMIN",
// "ADMIN", "admin") into a Role. Unknown values parse as RolePlayer, the
// least privileged role.
func ParseRole(raw string) Role {
	switch raw {
	case "ADMIN", "ROLE_ADMIN", "admin":
		return RoleAdmin
	case "PLAYER", "ROLE_PLAYER", "player":
		return RolePlayer
	default:
		return RolePlayer
	}
}

// Identity is the authenticated user as reported by the upstream API.
type Identity struct {
	ID       int64
	Username string
	Name     string
	Email    string
	Role     Role
}

// Session is the client's view of the current authentication state. It is
// built fresh for every request; Checking is true only while the credential
// is still being resolved against the upstream API.
type Session struct {
	Checking   bool
	Identity   *Identity
	Credential string
}

// Anonymous is the resolved, unauthenticated session.
func Anonymous() *Session {
	return &Session{}
}

// Authenticated reports whether the session carries a verified identity.
func (s *Session) Authenticated() bool {
	return s != nil && !s.Checking && s.Identity != nil
}

// IsAdmin reports whether the session belongs to an admin.
func (s *Session) IsAdmin() bool {
	return s.Authenticated() && s.Identity.Role == RoleAdmin
}

type contextKey struct{}

// WithSession returns a context carrying the resolved session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext retrieves the session placed in the context by the route
// guard. The second return is false when no guard ran for this request.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}
