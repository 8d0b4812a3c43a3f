package statsdomain

import "math"

// CombatLine is one source of punch/dodge/KO counts.
type CombatLine struct {
	Punches float64
	Dodges  float64
	KOs     float64
}

// CombatTotals are the three scalars the stats chart displays.
type CombatTotals struct {
	Punches int
	Dodges  int
	KOs     int
}

// SumCombat folds combat lines into display totals. NaN and negative inputs
// count as zero, since upstream data is not schema-validated.
func SumCombat(lines []CombatLine) CombatTotals {
	var t CombatTotals
	for _, l := range lines {
		t.Punches += sanitize(l.Punches)
		t.Dodges += sanitize(l.Dodges)
		t.KOs += sanitize(l.KOs)
	}
	return t
}

func sanitize(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return int(math.Round(v))
}
