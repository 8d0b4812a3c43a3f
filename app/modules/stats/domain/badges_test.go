package statsdomain

import "testing"

func TestTournamentBadge_Total(t *testing.T) {
	tests := []struct {
		status string
		want   BadgeTier
	}{
		{status: "SCHEDULED", want: BadgeScheduled},
		{status: "ONGOING", want: BadgeActive},
		{status: "COMPLETED", want: BadgeDone},
		{status: "SOMETHING_NEW", want: BadgeMuted},
		{status: "", want: BadgeMuted},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := TournamentBadge(tt.status)
			if got != tt.want {
				t.Errorf("TournamentBadge(%q) = %q, want %q", tt.status, got, tt.want)
			}
			// Idempotent: classifying twice yields the same tier.
			if again := TournamentBadge(tt.status); again != got {
				t.Errorf("TournamentBadge(%q) second call = %q, first = %q", tt.status, again, got)
			}
		})
	}
}

func TestMatchBadge_Total(t *testing.T) {
	tests := []struct {
		status string
		want   BadgeTier
	}{
		{status: "SCHEDULED", want: BadgeScheduled},
		{status: "PENDING", want: BadgeActive},
		{status: "COMPLETED", want: BadgeDone},
		{status: "BYE", want: BadgeDone},
		{status: "CANCELLED", want: BadgeMuted},
		{status: "WAITING", want: BadgeMuted},
		{status: "UNHEARD_OF", want: BadgeMuted},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := MatchBadge(tt.status)
			if got != tt.want {
				t.Errorf("MatchBadge(%q) = %q, want %q", tt.status, got, tt.want)
			}
			if again := MatchBadge(tt.status); again != got {
				t.Errorf("MatchBadge(%q) second call = %q, first = %q", tt.status, again, got)
			}
		})
	}
}
