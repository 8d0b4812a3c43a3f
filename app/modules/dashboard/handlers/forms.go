package dashboardhandlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/ringside-club/ringside/app/modules/gateway"
)

var dateParser = func() *when.Parser {
	p := when.New(nil)
	p.Add(en.All...)
	p.Add(common.All...)
	return p
}()

// parseStartDate accepts either an ISO date or a natural-language phrase
// like "next saturday". The result is the upstream wire format.
func parseStartDate(raw string, now time.Time) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format("2006-01-02"), true
	}
	result, err := dateParser.Parse(raw, now)
	if err != nil || result == nil {
		return "", false
	}
	return result.Time.Format("2006-01-02"), true
}

var validFormats = map[string]bool{
	string(gateway.FormatSwiss):             true,
	string(gateway.FormatDoubleElimination): true,
	string(gateway.FormatHybrid):            true,
}

// TournamentForm is the create-tournament form as submitted.
type TournamentForm struct {
	Name      string
	StartDate string
	Location  string
	MinElo    string
	MaxElo    string
	Format    string
}

func parseTournamentForm(r *http.Request) TournamentForm {
	return TournamentForm{
		Name:      strings.TrimSpace(r.PostFormValue("name")),
		StartDate: strings.TrimSpace(r.PostFormValue("startDate")),
		Location:  strings.TrimSpace(r.PostFormValue("location")),
		MinElo:    strings.TrimSpace(r.PostFormValue("minEloRating")),
		MaxElo:    strings.TrimSpace(r.PostFormValue("maxEloRating")),
		Format:    strings.TrimSpace(r.PostFormValue("format")),
	}
}

func (f TournamentForm) values() map[string]string {
	return map[string]string{
		"name":         f.Name,
		"startDate":    f.StartDate,
		"location":     f.Location,
		"minEloRating": f.MinElo,
		"maxEloRating": f.MaxElo,
		"format":       f.Format,
	}
}

// Validate checks the form and, when clean, returns the upstream request.
// The error map is keyed by form field name.
func (f TournamentForm) Validate(now time.Time) (gateway.CreateTournamentRequest, map[string]string) {
	fieldErrs := map[string]string{}

	if f.Name == "" {
		fieldErrs["name"] = "Name is required."
	}
	startDate, ok := parseStartDate(f.StartDate, now)
	if !ok {
		fieldErrs["startDate"] = "Enter a date like 2026-10-01 or a phrase like \"next saturday\"."
	}
	if f.Location == "" {
		fieldErrs["location"] = "Location is required."
	}

	minElo, err := strconv.Atoi(f.MinElo)
	if err != nil || minElo < 0 {
		fieldErrs["minEloRating"] = "Minimum rating must be a non-negative number."
	}
	maxElo, err := strconv.Atoi(f.MaxElo)
	if err != nil || maxElo < 0 {
		fieldErrs["maxEloRating"] = "Maximum rating must be a non-negative number."
	}
	if len(fieldErrs) == 0 && maxElo < minElo {
		fieldErrs["maxEloRating"] = "Maximum rating must not be below the minimum."
	}

	if !validFormats[f.Format] {
		fieldErrs["format"] = "Choose a tournament format."
	}

	if len(fieldErrs) > 0 {
		return gateway.CreateTournamentRequest{}, fieldErrs
	}
	return gateway.CreateTournamentRequest{
		Name:         f.Name,
		StartDate:    startDate,
		Location:     f.Location,
		MinEloRating: minElo,
		MaxEloRating: maxElo,
		Format:       f.Format,
	}, nil
}

// RegisterForm is the sign-up form as submitted.
type RegisterForm struct {
	Username string
	Password string
	Confirm  string
	Email    string
	Name     string
}

func parseRegisterForm(r *http.Request) RegisterForm {
	return RegisterForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
		Confirm:  r.PostFormValue("confirmPassword"),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Name:     strings.TrimSpace(r.PostFormValue("name")),
	}
}

func (f RegisterForm) values() map[string]string {
	return map[string]string{
		"username": f.Username,
		"email":    f.Email,
		"name":     f.Name,
	}
}

// Validate checks the form and, when clean, returns the upstream request.
// New accounts always register as players.
func (f RegisterForm) Validate() (gateway.RegisterRequest, map[string]string) {
	fieldErrs := map[string]string{}

	if f.Username == "" {
		fieldErrs["username"] = "Username is required."
	}
	if len(f.Password) < 8 {
		fieldErrs["password"] = "Password must be at least 8 characters."
	}
	if f.Password != f.Confirm {
		fieldErrs["confirmPassword"] = "Passwords do not match."
	}
	if f.Email == "" || !strings.Contains(f.Email, "@") {
		fieldErrs["email"] = "Enter a valid email address."
	}
	if f.Name == "" {
		fieldErrs["name"] = "Name is required."
	}

	if len(fieldErrs) > 0 {
		return gateway.RegisterRequest{}, fieldErrs
	}
	return gateway.RegisterRequest{
		Username: f.Username,
		Password: f.Password,
		Email:    f.Email,
		Name:     f.Name,
		Role:     "PLAYER",
	}, nil
}

// parseAddPlayersForm reads the selected player IDs from the enroll form.
// Unparseable values are skipped.
func parseAddPlayersForm(r *http.Request) []int64 {
	if err := r.ParseForm(); err != nil {
		return nil
	}
	var ids []int64
	for _, raw := range r.PostForm["playerIds"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
