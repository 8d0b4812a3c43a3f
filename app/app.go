package app

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"

	"github.com/ringside-club/ringside/app/modules/gateway"
	"github.com/ringside-club/ringside/app/modules/guard"
	"github.com/ringside-club/ringside/config"

	dashboardhandlers "github.com/ringside-club/ringside/app/modules/dashboard/handlers"
	sessionservice "github.com/ringside-club/ringside/app/modules/session/application"
	"github.com/ringside-club/ringside/app/modules/session/infrastructure/credentials"
)

// App is the assembled front end: one upstream gateway, one session store,
// one guarded router.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Router http.Handler

	server *http.Server
}

// NewApp wires the application from configuration.
func NewApp(cfg *config.Config) (*App, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	tracer := otel.Tracer("ringside")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	api := gateway.NewClient(
		cfg.Upstream.BaseURL,
		cfg.Upstream.Timeout,
		logger,
		tracer,
		gateway.WithMetrics(gateway.NewMetrics(registry)),
	)

	sessions := sessionservice.NewService(api, logger, tracer)
	creds := credentials.NewCookieStore(
		cfg.Session.CookieName,
		cfg.Session.Secret,
		cfg.Session.TTL,
		cfg.Session.Secure,
	)

	g := guard.New(sessions, creds, logger)
	h := dashboardhandlers.New(api, sessions, creds, logger, tracer)

	loginLimiter := NewIPRateLimiter(rate.Limit(cfg.Login.RatePerSecond), cfg.Login.Burst)
	router := NewRouter(g, h, loginLimiter, cfg.CORS.AllowedOrigins, registry)

	return &App{
		Config: cfg,
		Logger: logger,
		Router: router,
		server: &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: router,
		},
	}, nil
}
