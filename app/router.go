package app

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	dashboardhandlers "github.com/ringside-club/ringside/app/modules/dashboard/handlers"
	"github.com/ringside-club/ringside/app/modules/guard"
)

//go:embed static
var staticFS embed.FS

// NewRouter builds the HTTP surface: public auth pages, the guarded
// dashboard, chart endpoints, and operational routes.
func NewRouter(
	g *guard.Guard,
	h *dashboardhandlers.Handlers,
	loginLimiter *IPRateLimiter,
	allowedOrigins []string,
	registry *prometheus.Registry,
) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(CORSMiddleware(allowedOrigins))

	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Group(func(r chi.Router) {
		r.Use(g.Attach)
		r.Get("/", g.LandingRedirect)
		r.Get(guard.LoginPath, h.LoginPage)
		r.With(RateLimitMiddleware(loginLimiter)).Post(guard.LoginPath, h.LoginSubmit)
		r.Get("/register", h.RegisterPage)
		r.With(RateLimitMiddleware(loginLimiter)).Post("/register", h.RegisterSubmit)
		r.Post("/logout", h.Logout)
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(g.Protect)
		r.Get("/", g.LandingRedirect)
		r.Get("/profile", h.Profile)

		r.Get("/list/tournaments", h.TournamentList)
		r.With(g.RequireAdmin).Post("/list/tournaments", h.CreateTournament)
		r.Get("/list/tournaments/{tournamentID}", h.TournamentDetail)
		r.With(g.RequireAdmin).Post("/list/tournaments/{tournamentID}/players", h.EnrollPlayers)

		r.Get("/list/matches", h.MatchList)

		r.Get("/list/users", h.PlayerList)
		r.Get("/list/users/export", h.ExportPlayers)
		r.Get("/list/users/{playerID}", h.PlayerDetail)
	})

	r.Route("/charts/players/{playerID}", func(r chi.Router) {
		r.Use(g.Protect)
		r.Get("/elo", h.EloChart)
		r.Get("/outcomes", h.OutcomesChart)
		r.Get("/combat", h.CombatChart)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
