package dashboardhandlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/ringside-club/ringside/app/modules/gateway"
	"github.com/ringside-club/ringside/app/modules/session/infrastructure/credentials"
	sessiondomain "github.com/ringside-club/ringside/app/modules/session/domain"
)

// FakeTournamentAPI implements TournamentAPI for handler tests. Each call is
// recorded, and behavior is injected per method.
type FakeTournamentAPI struct {
	mu    sync.Mutex
	calls []string

	TournamentsFunc      func(ctx context.Context) ([]gateway.Tournament, error)
	TournamentFunc       func(ctx context.Context, id int64) (*gateway.Tournament, error)
	CreateTournamentFunc func(ctx context.Context, req gateway.CreateTournamentRequest) (*gateway.Tournament, error)
	AddPlayersFunc       func(ctx context.Context, tournamentID int64, playerIDs []int64) error
	MatchesFunc          func(ctx context.Context) ([]gateway.Match, error)
	PlayerMatchesFunc    func(ctx context.Context, playerID int64) ([]gateway.Match, error)
	PlayersFunc          func(ctx context.Context) ([]gateway.Player, error)
	PlayerFunc           func(ctx context.Context, id int64) (*gateway.Player, error)
	EloRecordsFunc       func(ctx context.Context, playerID int64) ([]gateway.EloRecord, error)
	PlayerStatsFunc      func(ctx context.Context, playerID int64) (*gateway.PlayerStats, error)
	RegisterFunc         func(ctx context.Context, req gateway.RegisterRequest) error
}

func (f *FakeTournamentAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *FakeTournamentAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FakeTournamentAPI) Tournaments(ctx context.Context) ([]gateway.Tournament, error) {
	f.record("Tournaments")
	if f.TournamentsFunc != nil {
		return f.TournamentsFunc(ctx)
	}
	return nil, nil
}

func (f *FakeTournamentAPI) Tournament(ctx context.Context, id int64) (*gateway.Tournament, error) {
	f.record("Tournament")
	if f.TournamentFunc != nil {
		return f.TournamentFunc(ctx, id)
	}
	return &gateway.Tournament{ID: id}, nil
}

func (f *FakeTournamentAPI) CreateTournament(ctx context.Context, req gateway.CreateTournamentRequest) (*gateway.Tournament, error) {
	f.record("CreateTournament")
	if f.CreateTournamentFunc != nil {
		return f.CreateTournamentFunc(ctx, req)
	}
	return &gateway.Tournament{ID: 1, Name: req.Name}, nil
}

func (f *FakeTournamentAPI) AddPlayers(ctx context.Context, tournamentID int64, playerIDs []int64) error {
	f.record("AddPlayers")
	if f.AddPlayersFunc != nil {
		return f.AddPlayersFunc(ctx, tournamentID, playerIDs)
	}
	return nil
}

func (f *FakeTournamentAPI) Matches(ctx context.Context) ([]gateway.Match, error) {
	f.record("Matches")
	if f.MatchesFunc != nil {
		return f.MatchesFunc(ctx)
	}
	return nil, nil
}

func (f *FakeTournamentAPI) PlayerMatches(ctx context.Context, playerID int64) ([]gateway.Match, error) {
	f.record("PlayerMatches")
	if f.PlayerMatchesFunc != nil {
		return f.PlayerMatchesFunc(ctx, playerID)
	}
	return nil, nil
}

func (f *FakeTournamentAPI) Players(ctx context.Context) ([]gateway.Player, error) {
	f.record("Players")
	if f.PlayersFunc != nil {
		return f.PlayersFunc(ctx)
	}
	return nil, nil
}

func (f *FakeTournamentAPI) Player(ctx context.Context, id int64) (*gateway.Player, error) {
	f.record("Player")
	if f.PlayerFunc != nil {
		return f.PlayerFunc(ctx, id)
	}
	return &gateway.Player{ID: id}, nil
}

func (f *FakeTournamentAPI) EloRecords(ctx context.Context, playerID int64) ([]gateway.EloRecord, error) {
	f.record("EloRecords")
	if f.EloRecordsFunc != nil {
		return f.EloRecordsFunc(ctx, playerID)
	}
	return nil, nil
}

func (f *FakeTournamentAPI) PlayerStats(ctx context.Context, playerID int64) (*gateway.PlayerStats, error) {
	f.record("PlayerStats")
	if f.PlayerStatsFunc != nil {
		return f.PlayerStatsFunc(ctx, playerID)
	}
	return &gateway.PlayerStats{PlayerID: playerID}, nil
}

func (f *FakeTournamentAPI) Register(ctx context.Context, req gateway.RegisterRequest) error {
	f.record("Register")
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, req)
	}
	return nil
}

// FakeSessionService implements the session store interface for handler
// tests.
type FakeSessionService struct {
	ResolveFunc func(ctx context.Context, credential string) (*sessiondomain.Session, error)
	LoginFunc   func(ctx context.Context, username, password string) (*sessiondomain.Session, error)

	mu         sync.Mutex
	LogoutCall int
}

func (f *FakeSessionService) Resolve(ctx context.Context, credential string) (*sessiondomain.Session, error) {
	if f.ResolveFunc != nil {
		return f.ResolveFunc(ctx, credential)
	}
	return sessiondomain.Anonymous(), nil
}

func (f *FakeSessionService) Login(ctx context.Context, username, password string) (*sessiondomain.Session, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, username, password)
	}
	return sessiondomain.Anonymous(), nil
}

func (f *FakeSessionService) Logout(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LogoutCall++
}

// FakeCredentialStore records writes and clears without real cookies.
type FakeCredentialStore struct {
	mu         sync.Mutex
	Credential string
	ReadErr    error
	Written    []string
	Cleared    int
}

func (f *FakeCredentialStore) Read(r *http.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ReadErr != nil {
		return "", f.ReadErr
	}
	if f.Credential == "" {
		return "", credentials.ErrNoCredential
	}
	return f.Credential, nil
}

func (f *FakeCredentialStore) Write(w http.ResponseWriter, credential string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Written = append(f.Written, credential)
	return nil
}

func (f *FakeCredentialStore) Clear(w http.ResponseWriter) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Cleared++
}
