package statsdomain

// BadgeTier is the display tier a status badge renders in.
type BadgeTier string

const (
	// BadgeScheduled marks statuses that have not started yet.
	BadgeScheduled BadgeTier = "scheduled"
	// BadgeActive marks statuses currently in play.
	BadgeActive BadgeTier = "active"
	// BadgeDone marks finished statuses, including byes.
	BadgeDone BadgeTier = "done"
	// BadgeMuted marks inactive statuses and anything unrecognized.
	BadgeMuted BadgeTier = "muted"
)

// TournamentBadge maps a tournament status to its display tier. The mapping
// is total: unknown statuses render muted.
func TournamentBadge(status string) BadgeTier {
	switch status {
	case "SCHEDULED":
		return BadgeScheduled
	case "ONGOING":
		return BadgeActive
	case "COMPLETED":
		return BadgeDone
	default:
		return BadgeMuted
	}
}

// MatchBadge maps a match status to its display tier. The mapping is total:
// unknown statuses render muted.
func MatchBadge(status string) BadgeTier {
	switch status {
	case "SCHEDULED":
		return BadgeScheduled
	case "PENDING":
		return BadgeActive
	case "COMPLETED", "BYE":
		return BadgeDone
	case "CANCELLED", "WAITING":
		return BadgeMuted
	default:
		return BadgeMuted
	}
}
