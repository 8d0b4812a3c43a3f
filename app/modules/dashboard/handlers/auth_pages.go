package dashboardhandlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ringside-club/ringside/app/modules/gateway"
	"github.com/ringside-club/ringside/app/modules/guard"
	sessionservice "github.com/ringside-club/ringside/app/modules/session/application"
	sessiondomain "github.com/ringside-club/ringside/app/modules/session/domain"
)

// LoginPage renders the sign-in form. Visitors who already carry a valid
// session are sent straight to their landing page.
func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if s, ok := sessiondomain.FromContext(r.Context()); ok && s.Authenticated() {
		http.Redirect(w, r, guard.Landing(s), http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "login.tmpl", page{Title: "Sign in"})
}

// LoginSubmit authenticates against the upstream API, stores the issued
// credential in the session cookie, and redirects to the role landing page.
func (h *Handlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.LoginSubmit")
	defer span.End()

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.render(w, r, http.StatusUnprocessableEntity, "login.tmpl", page{
			Title:  "Sign in",
			Notice: "Username and password are required.",
			Form:   map[string]string{"username": username},
		})
		return
	}

	session, err := h.sessions.Login(ctx, username, password)
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, sessionservice.ErrInvalidCredentials) {
			status = http.StatusServiceUnavailable
		}
		h.render(w, r, status, "login.tmpl", page{
			Title:  "Sign in",
			Notice: notice(err),
			Form:   map[string]string{"username": username},
		})
		return
	}

	if err := h.creds.Write(w, session.Credential); err != nil {
		h.logger.ErrorContext(ctx, "failed to write session cookie", "error", err)
		h.render(w, r, http.StatusInternalServerError, "login.tmpl", page{
			Title:  "Sign in",
			Notice: "Could not establish a session. Please try again.",
		})
		return
	}

	h.logger.InfoContext(ctx, "user signed in",
		"username", username,
		"role", session.Identity.Role,
	)
	http.Redirect(w, r, guard.Landing(session), http.StatusSeeOther)
}

// Logout discards the session cookie and returns the visitor to the sign-in
// page. The upstream credential is simply forgotten.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(r.Context())
	h.creds.Clear(w)
	http.Redirect(w, r, guard.LoginPath, http.StatusSeeOther)
}

// RegisterPage renders the sign-up form.
func (h *Handlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register.tmpl", page{Title: "Create account"})
}

// RegisterSubmit creates a player account upstream and sends the visitor to
// the sign-in page on success.
func (h *Handlers) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.RegisterSubmit")
	defer span.End()

	form := parseRegisterForm(r)
	req, fieldErrs := form.Validate()
	if len(fieldErrs) > 0 {
		h.render(w, r, http.StatusUnprocessableEntity, "register.tmpl", page{
			Title:  "Create account",
			Errors: fieldErrs,
			Form:   form.values(),
		})
		return
	}

	if err := h.api.Register(ctx, req); err != nil {
		msg := notice(err)
		if errors.Is(err, gateway.ErrBadRequest) {
			msg = "That username or email is already taken."
		}
		h.render(w, r, http.StatusUnprocessableEntity, "register.tmpl", page{
			Title:  "Create account",
			Notice: msg,
			Form:   form.values(),
		})
		return
	}

	h.logger.InfoContext(ctx, "account registered", "username", req.Username)
	h.render(w, r, http.StatusOK, "login.tmpl", page{
		Title:  "Sign in",
		Notice: "Account created. Sign in to continue.",
		Form:   map[string]string{"username": req.Username},
	})
}
