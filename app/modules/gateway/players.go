package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// Players fetches the leaderboard player list.
func (c *Client) Players(ctx context.Context) ([]Player, error) {
	var out []Player
	if err := c.do(ctx, "Players", http.MethodGet, "/api/player", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Player fetches one player.
func (c *Client) Player(ctx context.Context, id int64) (*Player, error) {
	var out Player
	path := fmt.Sprintf("/api/player/%d", id)
	if err := c.do(ctx, "Player", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EloRecords fetches a player's rating history, oldest first.
func (c *Client) EloRecords(ctx context.Context, playerID int64) ([]EloRecord, error) {
	var out []EloRecord
	path := fmt.Sprintf("/api/elo-records/player/%d", playerID)
	if err := c.do(ctx, "EloRecords", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlayerStats fetches a player's aggregate combat stats.
func (c *Client) PlayerStats(ctx context.Context, playerID int64) (*PlayerStats, error) {
	var out PlayerStats
	path := fmt.Sprintf("/api/player-stats/player/%d", playerID)
	if err := c.do(ctx, "PlayerStats", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
