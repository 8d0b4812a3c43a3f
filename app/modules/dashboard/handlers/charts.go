package dashboardhandlers

import (
	"errors"
	"net/http"

	"github.com/ringside-club/ringside/app/modules/gateway"
	statsservice "github.com/ringside-club/ringside/app/modules/stats/application"
	statsdomain "github.com/ringside-club/ringside/app/modules/stats/domain"
)

func scoresFor(m gateway.Match, playerID int64) statsdomain.ScorePair {
	mine, theirs := m.Player1Score, m.Player2Score
	if m.Player2.ID == playerID {
		mine, theirs = theirs, mine
	}
	pair := statsdomain.ScorePair{}
	if v, ok := mine.Float(); ok {
		pair.Mine = &v
	}
	if v, ok := theirs.Float(); ok {
		pair.Theirs = &v
	}
	return pair
}

func (h *Handlers) writeChart(w http.ResponseWriter, r *http.Request, png []byte, err error) {
	if err != nil {
		h.logger.ErrorContext(r.Context(), "chart rendering failed", "error", err)
		http.Error(w, "chart rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(png)
}

func (h *Handlers) chartFetchFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, gateway.ErrUnauthorized) {
		h.creds.Clear(w)
		http.Error(w, "session expired", http.StatusUnauthorized)
		return
	}
	h.logger.ErrorContext(r.Context(), "chart data fetch failed", "error", err)
	http.Error(w, "upstream unavailable", http.StatusBadGateway)
}

// EloChart renders a player's rating progression as a PNG line chart.
func (h *Handlers) EloChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.EloChart")
	defer span.End()

	id, ok := pathID(r, "playerID")
	if !ok {
		http.NotFound(w, r)
		return
	}

	records, err := h.api.EloRecords(ctx, id)
	if err != nil {
		h.chartFetchFailed(w, r, err)
		return
	}

	changes := make([]statsdomain.RatingChange, len(records))
	for i, rec := range records {
		v, _ := rec.NewRating.Float()
		changes[i] = statsdomain.RatingChange{NewRating: v}
	}

	png, err := statsservice.RenderEloChart(statsdomain.EloSeries(changes), h.palette)
	h.writeChart(w, r, png, err)
}

// OutcomesChart renders a player's win/loss/draw/ongoing split as a PNG
// donut chart.
func (h *Handlers) OutcomesChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.OutcomesChart")
	defer span.End()

	id, ok := pathID(r, "playerID")
	if !ok {
		http.NotFound(w, r)
		return
	}

	matches, err := h.api.PlayerMatches(ctx, id)
	if err != nil {
		h.chartFetchFailed(w, r, err)
		return
	}

	pairs := make([]statsdomain.ScorePair, len(matches))
	for i, m := range matches {
		pairs[i] = scoresFor(m, id)
	}

	png, err := statsservice.RenderOutcomeChart(statsdomain.TallyOutcomes(pairs), h.palette)
	h.writeChart(w, r, png, err)
}

// CombatChart renders a player's punch/dodge/KO totals as a PNG bar chart.
func (h *Handlers) CombatChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.CombatChart")
	defer span.End()

	id, ok := pathID(r, "playerID")
	if !ok {
		http.NotFound(w, r)
		return
	}

	stats, err := h.api.PlayerStats(ctx, id)
	if err != nil {
		h.chartFetchFailed(w, r, err)
		return
	}

	punches, _ := stats.TotalPunches.Float()
	dodges, _ := stats.TotalDodges.Float()
	kos, _ := stats.TotalKOs.Float()
	totals := statsdomain.SumCombat([]statsdomain.CombatLine{{
		Punches: punches,
		Dodges:  dodges,
		KOs:     kos,
	}})

	png, err := statsservice.RenderCombatChart(totals, h.palette)
	h.writeChart(w, r, png, err)
}
