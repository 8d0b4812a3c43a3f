package sessionservice

import (
	"context"

	"github.com/ringside-club/ringside/app/modules/gateway"
	sessiondomain "github.com/ringside-club/ringside/app/modules/session/domain"
)

// AuthAPI is the slice of the gateway the session store depends on.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*gateway.LoginResult, error)
	Me(ctx context.Context) (*sessiondomain.Identity, error)
}

// Service owns every session mutation. All reads elsewhere consume the
// snapshot it returns; nothing else builds a Session.
type Service interface {
	// Resolve rehydrates a session from a persisted credential. An empty
	// credential resolves to an anonymous session with no upstream call.
	// A present credential that fails identity verification for any reason
	// returns ErrStaleCredential; the caller must discard it.
	Resolve(ctx context.Context, credential string) (*sessiondomain.Session, error)
	// Login exchanges credentials for a session. Invalid credentials return
	// ErrInvalidCredentials; a login already pending for the same username
	// returns ErrLoginInFlight. The session is never partially populated.
	Login(ctx context.Context, username, password string) (*sessiondomain.Session, error)
	// Logout is purely local; persisted-credential removal is the caller's
	// side of the contract. It never fails.
	Logout(ctx context.Context)
}
