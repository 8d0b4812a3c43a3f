package dashboardhandlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/ringside-club/ringside/app/modules/gateway"
	sessionservice "github.com/ringside-club/ringside/app/modules/session/application"
	"github.com/ringside-club/ringside/app/modules/session/infrastructure/credentials"
	statsservice "github.com/ringside-club/ringside/app/modules/stats/application"
	"go.opentelemetry.io/otel/trace"
)

// TournamentAPI is the slice of the gateway the dashboard pages consume.
type TournamentAPI interface {
	Tournaments(ctx context.Context) ([]gateway.Tournament, error)
	Tournament(ctx context.Context, id int64) (*gateway.Tournament, error)
	CreateTournament(ctx context.Context, req gateway.CreateTournamentRequest) (*gateway.Tournament, error)
	AddPlayers(ctx context.Context, tournamentID int64, playerIDs []int64) error
	Matches(ctx context.Context) ([]gateway.Match, error)
	PlayerMatches(ctx context.Context, playerID int64) ([]gateway.Match, error)
	Players(ctx context.Context) ([]gateway.Player, error)
	Player(ctx context.Context, id int64) (*gateway.Player, error)
	EloRecords(ctx context.Context, playerID int64) ([]gateway.EloRecord, error)
	PlayerStats(ctx context.Context, playerID int64) (*gateway.PlayerStats, error)
	Register(ctx context.Context, req gateway.RegisterRequest) error
}

// Handlers renders the dashboard pages.
type Handlers struct {
	api      TournamentAPI
	sessions sessionservice.Service
	creds    credentials.Store
	palette  statsservice.Palette
	logger   *slog.Logger
	tracer   trace.Tracer

	// now is swapped in tests to pin natural-language date parsing.
	now func() time.Time
}

// New creates the dashboard handler set.
func New(
	api TournamentAPI,
	sessions sessionservice.Service,
	creds credentials.Store,
	logger *slog.Logger,
	tracer trace.Tracer,
) *Handlers {
	return &Handlers{
		api:      api,
		sessions: sessions,
		creds:    creds,
		palette:  statsservice.DefaultPalette(),
		logger:   logger,
		tracer:   tracer,
		now:      time.Now,
	}
}
