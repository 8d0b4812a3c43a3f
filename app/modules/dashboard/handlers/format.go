package dashboardhandlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/ringside-club/ringside/app/modules/gateway"
)

// TitleCase turns an enum spelling like "DOUBLE_ELIMINATION" into
// "Double Elimination". Non-string-ish input renders empty.
func TitleCase(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Fields(strings.ReplaceAll(strings.ToLower(s), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FormatDate renders an upstream date string readably; unparseable or empty
// input renders empty rather than erroring.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return ""
}

// FormatScore renders a match's score column. Scores are shown only for
// statuses that carry them; everything else is undecided.
func FormatScore(m gateway.Match) string {
	if m.Status != gateway.MatchCompleted && m.Status != gateway.MatchBye {
		return "Undecided"
	}
	s1, ok1 := m.Player1Score.Float()
	s2, ok2 := m.Player2Score.Float()
	if !ok1 || !ok2 {
		return "Undecided"
	}
	return fmt.Sprintf("%d : %d", int(s1), int(s2))
}

// FormatRating renders an optional Elo rating, defaulting to "—".
func FormatRating(n *gateway.Number) string {
	v, ok := n.Float()
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%d", int(v))
}
