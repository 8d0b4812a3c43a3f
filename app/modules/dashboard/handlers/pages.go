package dashboardhandlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/ringside-club/ringside/app/modules/gateway"
	"github.com/ringside-club/ringside/app/modules/guard"
	sessiondomain "github.com/ringside-club/ringside/app/modules/session/domain"
)

const pageSize = 10

// pagination describes one window of a list.
type pagination struct {
	Page    int
	Pages   int
	HasPrev bool
	HasNext bool
	Prev    int
	Next    int
}

func paginate[T any](items []T, requested int) ([]T, pagination) {
	pages := (len(items) + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}
	p := requested
	if p < 1 {
		p = 1
	}
	if p > pages {
		p = pages
	}
	start := (p - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], pagination{
		Page:    p,
		Pages:   pages,
		HasPrev: p > 1,
		HasNext: p < pages,
		Prev:    p - 1,
		Next:    p + 1,
	}
}

func queryPage(r *http.Request) int {
	p, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return p
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// expireSession handles a credential that went stale between the guard check
// and the data fetch: the cookie is dropped and the visitor signs in again.
func (h *Handlers) expireSession(w http.ResponseWriter, r *http.Request) {
	h.creds.Clear(w)
	http.Redirect(w, r, guard.LoginPath, http.StatusSeeOther)
}

// TournamentList shows every tournament with a status badge, paginated.
// Admins also see the create-tournament form.
func (h *Handlers) TournamentList(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.TournamentList")
	defer span.End()

	tournaments, err := h.api.Tournaments(ctx)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			h.expireSession(w, r)
			return
		}
		h.renderError(w, r, err)
		return
	}

	window, pg := paginate(tournaments, queryPage(r))
	h.render(w, r, http.StatusOK, "tournaments.tmpl", page{
		Title: "Tournaments",
		Data: struct {
			Tournaments []gateway.Tournament
			Pagination  pagination
		}{window, pg},
	})
}

// CreateTournament handles the admin create form. Validation failures
// re-render the list page with field errors and the submitted values.
func (h *Handlers) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.CreateTournament")
	defer span.End()

	form := parseTournamentForm(r)
	req, fieldErrs := form.Validate(h.now())
	if len(fieldErrs) > 0 {
		tournaments, err := h.api.Tournaments(ctx)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		window, pg := paginate(tournaments, 1)
		h.render(w, r, http.StatusUnprocessableEntity, "tournaments.tmpl", page{
			Title:  "Tournaments",
			Errors: fieldErrs,
			Form:   form.values(),
			Data: struct {
				Tournaments []gateway.Tournament
				Pagination  pagination
			}{window, pg},
		})
		return
	}

	created, err := h.api.CreateTournament(ctx, req)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			h.expireSession(w, r)
			return
		}
		h.renderError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "tournament created", "tournament_id", created.ID, "name", created.Name)
	http.Redirect(w, r, fmt.Sprintf("/dashboard/list/tournaments/%d", created.ID), http.StatusSeeOther)
}

// tournamentDetailData is the view model for one tournament page.
type tournamentDetailData struct {
	Tournament       *gateway.Tournament
	EligiblePlayers  []gateway.Player
	EnrollmentNotice string
}

func (h *Handlers) tournamentDetail(ctx context.Context, id int64) (*tournamentDetailData, error) {
	t, err := h.api.Tournament(ctx, id)
	if err != nil {
		return nil, err
	}

	// enrolled players are offered no second enrollment
	all, err := h.api.Players(ctx)
	if err != nil {
		return nil, err
	}
	enrolled := make(map[int64]bool, len(t.Players))
	for _, p := range t.Players {
		enrolled[p.ID] = true
	}
	var eligible []gateway.Player
	for _, p := range all {
		if !enrolled[p.ID] {
			eligible = append(eligible, p)
		}
	}

	return &tournamentDetailData{Tournament: t, EligiblePlayers: eligible}, nil
}

// TournamentDetail shows one tournament with its matches and, for admins,
// the enroll-players form.
func (h *Handlers) TournamentDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.TournamentDetail")
	defer span.End()

	id, ok := pathID(r, "tournamentID")
	if !ok {
		h.renderNotFound(w, r, "tournament")
		return
	}

	data, err := h.tournamentDetail(ctx, id)
	switch {
	case errors.Is(err, gateway.ErrUnauthorized):
		h.expireSession(w, r)
		return
	case errors.Is(err, gateway.ErrBadRequest):
		h.renderNotFound(w, r, "tournament")
		return
	case err != nil:
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "tournament_detail.tmpl", page{
		Title: data.Tournament.Name,
		Data:  data,
	})
}

// EnrollPlayers adds the selected players to a tournament and re-renders the
// tournament page.
func (h *Handlers) EnrollPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.EnrollPlayers")
	defer span.End()

	id, ok := pathID(r, "tournamentID")
	if !ok {
		h.renderNotFound(w, r, "tournament")
		return
	}

	ids := parseAddPlayersForm(r)
	if len(ids) == 0 {
		data, err := h.tournamentDetail(ctx, id)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		data.EnrollmentNotice = "Select at least one player to enroll."
		h.render(w, r, http.StatusUnprocessableEntity, "tournament_detail.tmpl", page{
			Title: data.Tournament.Name,
			Data:  data,
		})
		return
	}

	if err := h.api.AddPlayers(ctx, id, ids); err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			h.expireSession(w, r)
			return
		}
		if errors.Is(err, gateway.ErrBadRequest) {
			data, derr := h.tournamentDetail(ctx, id)
			if derr != nil {
				h.renderError(w, r, derr)
				return
			}
			data.EnrollmentNotice = "Some of the selected players are not eligible for this tournament."
			h.render(w, r, http.StatusUnprocessableEntity, "tournament_detail.tmpl", page{
				Title: data.Tournament.Name,
				Data:  data,
			})
			return
		}
		h.renderError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "players enrolled", "tournament_id", id, "count", len(ids))
	http.Redirect(w, r, fmt.Sprintf("/dashboard/list/tournaments/%d", id), http.StatusSeeOther)
}

// MatchList shows every match with status badges and scores, paginated.
func (h *Handlers) MatchList(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.MatchList")
	defer span.End()

	matches, err := h.api.Matches(ctx)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			h.expireSession(w, r)
			return
		}
		h.renderError(w, r, err)
		return
	}

	window, pg := paginate(matches, queryPage(r))
	h.render(w, r, http.StatusOK, "matches.tmpl", page{
		Title: "Matches",
		Data: struct {
			Matches    []gateway.Match
			Pagination pagination
		}{window, pg},
	})
}

// PlayerList shows the leaderboard, ordered by rating descending.
func (h *Handlers) PlayerList(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.PlayerList")
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

	window, pg := paginate(players, queryPage(r))
	h.render(w, r, http.StatusOK, "players.tmpl", page{
		Title: "Players",
		Data: struct {
			Players    []gateway.Player
			Pagination pagination
		}{window, pg},
	})
}

// playerDetailData is the view model for one player page. Each section loads
// independently; a failed section carries a notice instead of sinking the
// whole page.
type playerDetailData struct {
	Player      *gateway.Player
	Matches     []gateway.Match
	MatchErr    string
	RecordCount int
	EloErr      string
	StatsErr    string
}

// PlayerDetail shows one player's profile with match history and the three
// chart panels. The four upstream fetches run concurrently.
func (h *Handlers) PlayerDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Dashboard.PlayerDetail")
	defer span.End()

	id, ok := pathID(r, "playerID")
	if !ok {
		h.renderNotFound(w, r, "player")
		return
	}

	var (
		wg       sync.WaitGroup
		player   *gateway.Player
		matches  []gateway.Match
		records  []gateway.EloRecord
		playerE  error
		matchesE error
		eloE     error
		statsE   error
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		player, playerE = h.api.Player(ctx, id)
	}()
	go func() {
		defer wg.Done()
		matches, matchesE = h.api.PlayerMatches(ctx, id)
	}()
	go func() {
		defer wg.Done()
		records, eloE = h.api.EloRecords(ctx, id)
	}()
	go func() {
		defer wg.Done()
		_, statsE = h.api.PlayerStats(ctx, id)
	}()
	wg.Wait()

	switch {
	case errors.Is(playerE, gateway.ErrUnauthorized):
		h.expireSession(w, r)
		return
	case errors.Is(playerE, gateway.ErrBadRequest):
		h.renderNotFound(w, r, "player")
		return
	case playerE != nil:
		h.renderError(w, r, playerE)
		return
	}

	data := playerDetailData{
		Player:      player,
		Matches:     matches,
		RecordCount: len(records),
	}
	if matchesE != nil {
		data.MatchErr = "Match history is unavailable right now."
	}
	if eloE != nil {
		data.EloErr = "Rating history is unavailable right now."
	}
	if statsE != nil {
		data.StatsErr = "Combat statistics are unavailable right now."
	}

	h.render(w, r, http.StatusOK, "player_detail.tmpl", page{
		Title: player.Name,
		Data:  data,
	})
}

// Profile redirects to the signed-in player's own detail page.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	s, ok := sessiondomain.FromContext(r.Context())
	if !ok || !s.Authenticated() {
		http.Redirect(w, r, guard.LoginPath, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/dashboard/list/users/%d", s.Identity.ID), http.StatusSeeOther)
}
