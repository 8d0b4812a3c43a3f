package guard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ringside-club/ringside/app/modules/gateway"
	"github.com/ringside-club/ringside/app/modules/session/infrastructure/credentials"

	sessiondomain "github.com/ringside-club/ringside/app/modules/session/domain"
)

// SessionResolver is the slice of the session store the guard needs.
type SessionResolver interface {
	Resolve(ctx context.Context, credential string) (*sessiondomain.Session, error)
}

// Guard resolves the session for each navigation and enforces the redirect
// decision before any protected content is written.
type Guard struct {
	sessions SessionResolver
	creds    credentials.Store
	logger   *slog.Logger
}

// New creates a route guard.
func New(sessions SessionResolver, creds credentials.Store, logger *slog.Logger) *Guard {
	return &Guard{
		sessions: sessions,
		creds:    creds,
		logger:   logger,
	}
}

// resolve builds the session for this request, discarding the persisted
// credential whenever rehydration fails.
func (g *Guard) resolve(w http.ResponseWriter, r *http.Request) *sessiondomain.Session {
	credential, err := g.creds.Read(r)
	if err != nil {
		if !errors.Is(err, credentials.ErrNoCredential) {
			// A cookie we can no longer trust is removed outright.
			g.creds.Clear(w)
		}
		return sessiondomain.Anonymous()
	}

	sess, err := g.sessions.Resolve(r.Context(), credential)
	if err != nil {
		g.creds.Clear(w)
		g.logger.InfoContext(r.Context(), "Session rehydration failed, credential cleared")
		return sessiondomain.Anonymous()
	}
	return sess
}

// Protect wraps a protected handler. The wrapped content is reached only in
// the authenticated state; nothing of it is written in any other state.
func (g *Guard) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := g.resolve(w, r)

		switch d := Decide(sess); d.Action {
		case ActionRedirect:
			http.Redirect(w, r, d.Target, http.StatusSeeOther)
			return
		case ActionHold:
			// Resolution is synchronous on the server, so this state is not
			// normally reachable; render the placeholder rather than leak
			// protected content.
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte("Loading"))
			return
		}

		ctx := sessiondomain.WithSession(r.Context(), sess)
		ctx = gateway.WithCredential(ctx, sess.Credential)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Attach resolves the session without gating, for public pages that adapt to
// an authenticated viewer (e.g. the login page redirecting away).
func (g *Guard) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := g.resolve(w, r)
		ctx := sessiondomain.WithSession(r.Context(), sess)
		if sess.Authenticated() {
			ctx = gateway.WithCredential(ctx, sess.Credential)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a protected handler to admins; everyone else is sent to
// their role landing page. Must be nested inside Protect.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessiondomain.FromContext(r.Context())
		if !ok || !sess.IsAdmin() {
			http.Redirect(w, r, Landing(sess), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LandingRedirect is the dashboard root: a one-time, role-based redirect.
func (g *Guard) LandingRedirect(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessiondomain.FromContext(r.Context())
	http.Redirect(w, r, Landing(sess), http.StatusSeeOther)
}
