package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewClient(srv.URL, 2*time.Second, logger, tracer), srv
}

func TestClient_AttachesCredential(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))

	ctx := WithCredential(context.Background(), "abc123")
	_, err := client.Players(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_NoCredentialNoHeader(t *testing.T) {
	var hadAuth bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	}))

	_, err := client.Players(context.Background())
	require.NoError(t, err)
	assert.False(t, hadAuth, "request without a credential must not carry an Authorization header")
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrBadRequest},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := client.Tournaments(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_NetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	client := NewClient(srv.URL, time.Second, logger, tracer)

	_, err := client.Matches(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Login(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["username"] != "alice" || body["password"] != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"jwt":"tok-1","user":{"id":7,"username":"alice","name":"Alice","userType":"ROLE_PLAYER"}}`))
	}))

	result, err := client.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", result.Credential)
	assert.Equal(t, int64(7), result.Identity.ID)
	assert.Equal(t, "alice", result.Identity.Username)
	assert.Equal(t, "PLAYER", result.Identity.Role.String())

	_, err = client.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_MeMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))

	_, err := client.Me(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClient_DecodesMatches(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":1,"status":"COMPLETED","bracket":"UPPER",
			 "player1":{"id":10,"username":"a"},"player2":{"id":11,"username":"b"},
			 "player1Score":3,"player2Score":"1","matchDate":"2026-03-01"},
			{"id":2,"status":"PENDING",
			 "player1":{"id":10,"username":"a"},"player2":{"id":12,"username":"c"},
			 "player1Score":null,"player2Score":null}
		]`))
	}))

	matches, err := client.Matches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 2)

	s1, ok := matches[0].Player1Score.Float()
	require.True(t, ok)
	assert.Equal(t, 3.0, s1)

	// Numeric string coerced at the boundary.
	s2, ok := matches[0].Player2Score.Float()
	require.True(t, ok)
	assert.Equal(t, 1.0, s2)

	// Null scores stay absent rather than becoming zero.
	assert.Nil(t, matches[1].Player1Score)
	assert.Nil(t, matches[1].Player2Score)
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "number", in: `7.5`, want: 7.5},
		{name: "numeric string", in: `"1200"`, want: 1200},
		{name: "null", in: `null`, want: 0},
		{name: "garbage string", in: `"n/a"`, want: 0},
		{name: "object", in: `{"x":1}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v, want nil", tt.in, err)
			}
			if got := float64(n); got != tt.want {
				t.Errorf("Number(%s) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClient_DecodesTournament(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tournament/5", r.URL.Path)
		w.Write([]byte(`{"id":5,"name":"Spring Open","status":"ONGOING","format":"SWISS",
			"location":"Hall A","minEloRating":600,"maxEloRating":1200,
			"players":[{"id":1,"username":"a","eloRating":1005}]}`))
	}))

	got, err := client.Tournament(context.Background(), 5)
	require.NoError(t, err)

	require.Len(t, got.Players, 1)
	elo, ok := got.Players[0].EloRating.Float()
	require.True(t, ok)
	assert.Equal(t, 1005.0, elo)

	want := &Tournament{
		ID:           5,
		Name:         "Spring Open",
		Status:       TournamentOngoing,
		Format:       FormatSwiss,
		Location:     "Hall A",
		MinEloRating: 600,
		MaxEloRating: 1200,
	}
	got.Players = nil
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tournament mismatch (-want +got):\n%s", diff)
	}
}
