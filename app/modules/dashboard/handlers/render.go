package dashboardhandlers

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/ringside-club/ringside/app/modules/gateway"
	sessionservice "github.com/ringside-club/ringside/app/modules/session/application"
	sessiondomain "github.com/ringside-club/ringside/app/modules/session/domain"
	statsdomain "github.com/ringside-club/ringside/app/modules/stats/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(
	template.New("dashboard").Funcs(template.FuncMap{
		"titlecase": TitleCase,
		"date":      FormatDate,
		"score":     FormatScore,
		"rating":    FormatRating,
		"tournamentBadge": func(status gateway.TournamentStatus) string {
			return string(statsdomain.TournamentBadge(string(status)))
		},
		"matchBadge": func(status gateway.MatchStatus) string {
			return string(statsdomain.MatchBadge(string(status)))
		},
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

// page is the view model every template receives. Data carries the
// page-specific payload; Notice and Errors carry user-facing feedback.
type page struct {
	Title   string
	Session *sessiondomain.Session
	Notice  string
	Errors  map[string]string
	Form    map[string]string
	Data    any
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	if p.Session == nil {
		if s, ok := sessiondomain.FromContext(r.Context()); ok {
			p.Session = s
		} else {
			p.Session = sessiondomain.Anonymous()
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplates.ExecuteTemplate(w, name, p); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render template",
			"template", name,
			"error", err,
		)
	}
}

// notice maps a gateway or session error to a user-facing message. The raw
// error never reaches the page.
func notice(err error) string {
	switch {
	case errors.Is(err, gateway.ErrUnauthorized), errors.Is(err, sessionservice.ErrStaleCredential):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, gateway.ErrBadRequest):
		return "The server rejected that request."
	case errors.Is(err, gateway.ErrMalformedResponse):
		return "The server returned an unexpected response."
	case errors.Is(err, sessionservice.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, sessionservice.ErrLoginInFlight):
		return "A sign-in for this account is already in progress."
	case err != nil:
		return "The tournament service is unavailable. Please try again shortly."
	}
	return ""
}

// renderError shows the shared error page with an appropriate notice.
func (h *Handlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, gateway.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, gateway.ErrMalformedResponse):
		status = http.StatusBadGateway
	}
	h.logger.ErrorContext(r.Context(), "page fetch failed", "error", err)
	h.render(w, r, status, "error.tmpl", page{
		Title:  "Something went wrong",
		Notice: notice(err),
	})
}

// renderNotFound shows the shared not-found page.
func (h *Handlers) renderNotFound(w http.ResponseWriter, r *http.Request, what string) {
	h.render(w, r, http.StatusNotFound, "error.tmpl", page{
		Title:  "Not found",
		Notice: fmt.Sprintf("That %s does not exist.", what),
	})
}
