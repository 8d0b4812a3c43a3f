package gateway

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Number tolerates the upstream API's loosely typed numeric fields: JSON
// numbers, numeric strings, null, and garbage all decode without error.
// Anything unparseable becomes zero so the shaping layer never has to guard
// against malformed input. Optional fields use *Number, where JSON null
// leaves the pointer nil.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

// Float returns the underlying value, treating a nil pointer as absent.
func (n *Number) Float() (float64, bool) {
	if n == nil {
		return 0, false
	}
	return float64(*n), true
}

// TournamentStatus is the lifecycle state of a tournament.
type TournamentStatus string

const (
	TournamentScheduled TournamentStatus = "SCHEDULED"
	TournamentOngoing   TournamentStatus = "ONGOING"
	TournamentCompleted TournamentStatus = "COMPLETED"
)

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	MatchScheduled MatchStatus = "SCHEDULED"
	MatchPending   MatchStatus = "PENDING"
	MatchCompleted MatchStatus = "COMPLETED"
	MatchCancelled MatchStatus = "CANCELLED"
	MatchBye       MatchStatus = "BYE"
	MatchWaiting   MatchStatus = "WAITING"
)

// Bracket identifies the double-elimination bracket a match belongs to.
type Bracket string

const (
	BracketUpper      Bracket = "UPPER"
	BracketLower      Bracket = "LOWER"
	BracketFinal      Bracket = "FINAL"
	BracketGrandFinal Bracket = "GRAND_FINAL"
)

// TournamentFormat is the pairing system a tournament runs under.
type TournamentFormat string

const (
	FormatSwiss             TournamentFormat = "SWISS"
	FormatDoubleElimination TournamentFormat = "DOUBLE_ELIMINATION"
	FormatHybrid            TournamentFormat = "HYBRID"
)

// Player is a participant as reported by the upstream API.
type Player struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	EloRating *Number `json:"eloRating"`
	Role      string  `json:"role"`
}

// Tournament is one tournament with its enrolled players and matches.
type Tournament struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
	Location     string           `json:"location"`
	Status       TournamentStatus `json:"status"`
	MinEloRating Number           `json:"minEloRating"`
	MaxEloRating Number           `json:"maxEloRating"`
	Format       TournamentFormat `json:"format"`
	Players      []Player         `json:"players"`
	Matches      []Match          `json:"matches"`
}

// TournamentRef is the abbreviated tournament embedded in a match.
type TournamentRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Match is one bout. Score fields are populated only for COMPLETED and BYE
// matches; everything else renders as undecided.
type Match struct {
	ID           int64          `json:"id"`
	Status       MatchStatus    `json:"status"`
	Bracket      Bracket        `json:"bracket"`
	Player1      Player         `json:"player1"`
	Player2      Player         `json:"player2"`
	Player1Score *Number        `json:"player1Score"`
	Player2Score *Number        `json:"player2Score"`
	MatchDate    string         `json:"matchDate"`
	Winner       *Player        `json:"winner"`
	Tournament   *TournamentRef `json:"tournament"`
}

// EloRecord is one entry of a player's rating history, ordered
// chronologically by the upstream API.
type EloRecord struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	OldRating Number `json:"oldRating"`
	NewRating Number `json:"newRating"`
	Match     struct {
		ID int64 `json:"id"`
	} `json:"match"`
}

// PlayerStats is a player's aggregate combat line.
type PlayerStats struct {
	PlayerID     int64  `json:"playerId"`
	PlayerName   string `json:"playerName"`
	TotalPunches Number `json:"totalPunches"`
	TotalDodges  Number `json:"totalDodges"`
	TotalKOs     Number `json:"totalKOs"`
}

// CreateTournamentRequest is the payload for POST /api/tournament.
type CreateTournamentRequest struct {
	Name         string `json:"name"`
	StartDate    string `json:"startDate"`
	Location     string `json:"location"`
	MinEloRating int    `json:"minEloRating"`
	MaxEloRating int    `json:"maxEloRating"`
	Format       string `json:"format"`
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
