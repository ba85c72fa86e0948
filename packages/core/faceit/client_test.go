package faceit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Zattox/RavensPedia-sub000/config"
	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
)

func newClient(baseURL string) *Client {
	return NewClient(&config.Settings{FaceitBaseURL: baseURL, FaceitAPIKey: "test-key"})
}

func TestGetMatchRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"match_id":"1-room","started_at":1700000000}`)
	}))
	defer srv.Close()

	summary, err := newClient(srv.URL).GetMatch(context.Background(), "1-room")
	if err != nil {
		t.Fatalf("expected retries to recover, got %v", err)
	}
	if summary.StartedAt != 1700000000 {
		t.Fatalf("started_at = %d", summary.StartedAt)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestGetMatchDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).GetMatch(context.Background(), "1-room")
	if err == nil {
		t.Fatal("expected an error")
	}
	if apperrors.KindOf(err) != apperrors.KindUpstreamUnavailable {
		t.Fatalf("kind = %v, want KindUpstreamUnavailable", apperrors.KindOf(err))
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
}

func TestGetMatchGivesUpAfterRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).GetMatch(context.Background(), "1-room")
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestGetMatchRejectsMissingStartedAt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"match_id":"1-room"}`)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).GetMatch(context.Background(), "1-room")
	if apperrors.KindOf(err) != apperrors.KindUpstreamBadPayload {
		t.Fatalf("kind = %v, want KindUpstreamBadPayload", apperrors.KindOf(err))
	}
}

func TestGetMatchStatsRejectsEmptyRounds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rounds":[]}`)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).GetMatchStats(context.Background(), "1-room")
	if apperrors.KindOf(err) != apperrors.KindUpstreamBadPayload {
		t.Fatalf("kind = %v, want KindUpstreamBadPayload", apperrors.KindOf(err))
	}
}

func TestGetMatchStatsRejectsMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rounds": [`)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).GetMatchStats(context.Background(), "1-room")
	if apperrors.KindOf(err) != apperrors.KindUpstreamBadPayload {
		t.Fatalf("kind = %v, want KindUpstreamBadPayload", apperrors.KindOf(err))
	}
}

func TestRequestCarriesAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"match_id":"1-room","started_at":1700000000}`)
	}))
	defer srv.Close()

	if _, err := newClient(srv.URL).GetMatch(context.Background(), "1-room"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestGetPlayerByIDRequiresSteamID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"player_id":"f1","nickname":"x","games":{}}`)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).GetPlayerByID(context.Background(), "f1")
	if apperrors.KindOf(err) != apperrors.KindUpstreamBadPayload {
		t.Fatalf("kind = %v, want KindUpstreamBadPayload", apperrors.KindOf(err))
	}
}

func TestGetPlayerBySteamID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("game_player_id") != "steam-1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"player_id":"f1","nickname":"x","games":{"cs2":{"game_player_id":"steam-1","faceit_elo":2100}}}`)
	}))
	defer srv.Close()

	details, err := newClient(srv.URL).GetPlayerBySteamID(context.Background(), "steam-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if details.PlayerID != "f1" || details.Games.CS2.FaceitElo != 2100 {
		t.Fatalf("unexpected details: %+v", details)
	}
}
