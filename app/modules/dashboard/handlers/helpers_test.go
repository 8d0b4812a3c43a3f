package dashboardhandlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace/noop"

	sessiondomain "github.com/ringside-club/ringside/app/modules/session/domain"
)

func testTime() time.Time {
	return time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
}

func newTestHandlers(api *FakeTournamentAPI, sessions *FakeSessionService, creds *FakeCredentialStore) *Handlers {
	h := New(
		api,
		sessions,
		creds,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		noop.NewTracerProvider().Tracer("test"),
	)
	h.now = testTime
	return h
}

func adminSession() *sessiondomain.Session {
	return &sessiondomain.Session{
		Identity: &sessiondomain.Identity{
			ID:       1,
			Username: "boss",
			Name:     "The Boss",
			Role:     sessiondomain.RoleAdmin,
		},
		Credential: "admin-token",
	}
}

func playerSession(id int64) *sessiondomain.Session {
	return &sessiondomain.Session{
		Identity: &sessiondomain.Identity{
			ID:       id,
			Username: "challenger",
			Name:     "Challenger",
			Role:     sessiondomain.RolePlayer,
		},
		Credential: "player-token",
	}
}

// authedRequest builds a request carrying an already-resolved session, the
// way the route guard hands it to page handlers.
func authedRequest(method, target string, s *sessiondomain.Session) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	return r.WithContext(sessiondomain.WithSession(r.Context(), s))
}

// withURLParam attaches a chi path parameter the way the router would.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
