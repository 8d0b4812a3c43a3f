package statsdomain

// ScorePair is one match seen from the viewed player's side. A nil score
// means the match has not produced one.
type ScorePair struct {
	Mine   *float64
	Theirs *float64
}

// Tally is the outcome breakdown of a match list.
type Tally struct {
	Wins    int
	Losses  int
	Draws   int
	Ongoing int
}

// Total is the number of matches tallied.
func (t Tally) Total() int {
	return t.Wins + t.Losses + t.Draws + t.Ongoing
}

// Percentages returns each bucket's share of the total. A zero total yields
// zeroes rather than NaN.
func (t Tally) Percentages() (win, lose, draw, ongoing float64) {
	total := t.Total()
	if total == 0 {
		return 0, 0, 0, 0
	}
	n := float64(total)
	return float64(t.Wins) / n * 100,
		float64(t.Losses) / n * 100,
		float64(t.Draws) / n * 100,
		float64(t.Ongoing) / n * 100
}

// TallyOutcomes classifies each match: a missing score on either side is
// ongoing, otherwise the viewed player's score decides win, loss, or draw.
func TallyOutcomes(pairs []ScorePair) Tally {
	var t Tally
	for _, p := range pairs {
		switch {
		case p.Mine == nil || p.Theirs == nil:
			t.Ongoing++
		case *p.Mine > *p.Theirs:
			t.Wins++
		case *p.Mine < *p.Theirs:
			t.Losses++
		default:
			t.Draws++
		}
	}
	return t
}
