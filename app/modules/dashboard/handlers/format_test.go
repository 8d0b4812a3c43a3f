package dashboardhandlers

import (
	"testing"

	"github.com/ringside-club/ringside/app/modules/gateway"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DOUBLE_ELIMINATION", "Double Elimination"},
		{"SWISS", "Swiss"},
		{"GRAND_FINAL", "Grand Final"},
		{"already Mixed", "Already Mixed"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain date", "2026-03-15", "March 15, 2026"},
		{"timestamp", "2026-03-15T18:30:00", "March 15, 2026"},
		{"rfc3339", "2026-03-15T18:30:00Z", "March 15, 2026"},
		{"empty", "", ""},
		{"garbage", "someday", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.in); got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		name string
		m    gateway.Match
		want string
	}{
		{
			name: "completed match shows scores",
			m: gateway.Match{
				Status:       gateway.MatchCompleted,
				Player1Score: numberPtr(3),
				Player2Score: numberPtr(1),
			},
			want: "3 : 1",
		},
		{
			name: "bye shows scores",
			m: gateway.Match{
				Status:       gateway.MatchBye,
				Player1Score: numberPtr(1),
				Player2Score: numberPtr(0),
			},
			want: "1 : 0",
		},
		{
			name: "scheduled match is undecided even with scores present",
			m: gateway.Match{
				Status:       gateway.MatchScheduled,
				Player1Score: numberPtr(2),
				Player2Score: numberPtr(2),
			},
			want: "Undecided",
		},
		{
			name: "completed match with missing scores is undecided",
			m:    gateway.Match{Status: gateway.MatchCompleted},
			want: "Undecided",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatScore(tt.m); got != tt.want {
				t.Errorf("FormatScore() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRating(t *testing.T) {
	if got := FormatRating(numberPtr(1234.6)); got != "1234" {
		t.Errorf("FormatRating(1234.6) = %q, want %q", got, "1234")
	}
	if got := FormatRating(nil); got != "—" {
		t.Errorf("FormatRating(nil) = %q, want %q", got, "—")
	}
}
