package dashboardhandlers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ringside-club/ringside/app/modules/gateway"
)

const exportSheet = "Leaderboard"

// ExportPlayers streams the current leaderboard as an xlsx workbook.
func (h *Handlers) ExportPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.ExportPlayers")
	defer span.End()

	players, err := h.api.Players(ctx)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			h.expireSession(w, r)
			return
		}
		h.renderError(w, r, err)
		return
	}

	sort.SliceStable(players, func(i, j int) bool {
		ri, _ := players[i].EloRating.Float()
		rj, _ := players[j].EloRating.Float()
		return ri > rj
	})

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create export sheet", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"Rank", "Username", "Name", "Elo Rating"}
	for col, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(exportSheet, cell, title)
	}
	for row, p := range players {
		rating := "—"
		if v, ok := p.EloRating.Float(); ok {
			rating = fmt.Sprintf("%d", int(v))
		}
		values := []any{row + 1, p.Username, p.Name, rating}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	filename := fmt.Sprintf("leaderboard-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(w); err != nil {
		h.logger.ErrorContext(ctx, "failed to stream export", "error", err)
	}
}
