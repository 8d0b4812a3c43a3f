package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// Tournaments fetches all tournaments.
func (c *Client) Tournaments(ctx context.Context) ([]Tournament, error) {
	var out []Tournament
	if err := c.do(ctx, "Tournaments", http.MethodGet, "/api/tournament", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Tournament fetches a single tournament with its players and matches.
func (c *Client) Tournament(ctx context.Context, id int64) (*Tournament, error) {
	var out Tournament
	path := fmt.Sprintf("/api/tournament/%d", id)
	if err := c.do(ctx, "Tournament", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTournament creates a new tournament.
func (c *Client) CreateTournament(ctx context.Context, req CreateTournamentRequest) (*Tournament, error) {
	var out Tournament
	if err := c.do(ctx, "CreateTournament", http.MethodPost, "/api/tournament", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddPlayers enrolls the given players into a tournament.
func (c *Client) AddPlayers(ctx context.Context, tournamentID int64, playerIDs []int64) error {
	body := map[string][]int64{"playerIds": playerIDs}
	path := fmt.Sprintf("/api/tournament/%d/players", tournamentID)
	return c.do(ctx, "AddPlayers", http.MethodPut, path, body, nil)
}

// Matches fetches all matches.
func (c *Client) Matches(ctx context.Context) ([]Match, error) {
	var out []Match
	if err := c.do(ctx, "Matches", http.MethodGet, "/api/match", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlayerMatches fetches all matches a player has taken part in.
func (c *Client) PlayerMatches(ctx context.Context, playerID int64) ([]Match, error) {
	var out []Match
	path := fmt.Sprintf("/api/match/player/%d", playerID)
	if err := c.do(ctx, "PlayerMatches", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
