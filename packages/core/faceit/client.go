// Package faceit is the client for the FACEIT open data API. It consumes
// four GET endpoints: match summary, match stats, player lookup by steam
// id and player lookup by FACEIT id. Transient upstream failures are
// retried a bounded number of times with jitter.
package faceit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/Zattox/RavensPedia-sub000/config"
	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
)

const (
	requestTimeout = 15 * time.Second
	maxRetries     = 2
	retryBase      = 250 * time.Millisecond
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg *config.Settings) *Client {
	return &Client{
		baseURL: cfg.FaceitBaseURL,
		apiKey:  cfg.FaceitAPIKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// MatchSummary carries the fields of GET /matches/{id} the ingestor needs.
type MatchSummary struct {
	MatchID   string `json:"match_id"`
	StartedAt int64  `json:"started_at"`
}

// MatchStatsResponse is the payload of GET /matches/{id}/stats. A "round"
// here is one played map of the series, not a CS2 round.
type MatchStatsResponse struct {
	Rounds []Round `json:"rounds"`
}

type Round struct {
	BestOf     string     `json:"best_of"`
	MatchRound string     `json:"match_round"`
	RoundStats RoundStats `json:"round_stats"`
	Teams      []TeamStat `json:"teams"`
}

type RoundStats struct {
	Map string `json:"Map"`
}

type TeamStat struct {
	TeamID  string       `json:"team_id"`
	Players []PlayerStat `json:"players"`
}

type PlayerStat struct {
	PlayerID    string            `json:"player_id"`
	Nickname    string            `json:"nickname"`
	PlayerStats map[string]string `json:"player_stats"`
}

// PlayerDetails is the payload of GET /players/{id} and of the
// steam-id lookup GET /players?game=cs2&game_player_id={id}.
type PlayerDetails struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname"`
	Games    struct {
		CS2 struct {
			GamePlayerID string `json:"game_player_id"`
			FaceitElo    int    `json:"faceit_elo"`
		} `json:"cs2"`
	} `json:"games"`
}

// GetMatch fetches the summary of a finished match.
func (c *Client) GetMatch(ctx context.Context, matchID string) (*MatchSummary, error) {
	var summary MatchSummary
	if err := c.get(ctx, "/matches/"+url.PathEscape(matchID), &summary); err != nil {
		return nil, err
	}
	if summary.StartedAt == 0 {
		return nil, apperrors.Newf(apperrors.KindUpstreamBadPayload, "FACEIT match %s has no started_at", matchID)
	}
	return &summary, nil
}

// GetMatchStats fetches the per-map, per-player statistics of a match.
func (c *Client) GetMatchStats(ctx context.Context, matchID string) (*MatchStatsResponse, error) {
	var stats MatchStatsResponse
	if err := c.get(ctx, "/matches/"+url.PathEscape(matchID)+"/stats", &stats); err != nil {
		return nil, err
	}
	if len(stats.Rounds) == 0 {
		return nil, apperrors.Newf(apperrors.KindUpstreamBadPayload, "FACEIT match %s has no rounds", matchID)
	}
	return &stats, nil
}

// GetPlayerBySteamID resolves a steam id to a FACEIT player profile.
func (c *Client) GetPlayerBySteamID(ctx context.Context, steamID string) (*PlayerDetails, error) {
	var details PlayerDetails
	path := "/players?game=cs2&game_player_id=" + url.QueryEscape(steamID)
	if err := c.get(ctx, path, &details); err != nil {
		return nil, err
	}
	if details.PlayerID == "" {
		return nil, apperrors.Newf(apperrors.KindUpstreamBadPayload, "FACEIT player for steam id %s has no player_id", steamID)
	}
	return &details, nil
}

// GetPlayerByID fetches a FACEIT player profile by its FACEIT id.
func (c *Client) GetPlayerByID(ctx context.Context, playerID string) (*PlayerDetails, error) {
	var details PlayerDetails
	if err := c.get(ctx, "/players/"+url.PathEscape(playerID), &details); err != nil {
		return nil, err
	}
	if details.Games.CS2.GamePlayerID == "" {
		return nil, apperrors.Newf(apperrors.KindUpstreamBadPayload, "FACEIT player %s has no cs2 game_player_id", playerID)
	}
	return &details, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.WithJitterPercent(20, retry.NewExponential(retryBase)))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return apperrors.Wrap(apperrors.KindInternal, "failed to build FACEIT request", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(apperrors.Wrap(apperrors.KindUpstreamUnavailable, "FACEIT request failed", err))
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(apperrors.Newf(apperrors.KindUpstreamUnavailable, "FACEIT responded with status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return apperrors.Newf(apperrors.KindUpstreamUnavailable, "FACEIT responded with status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(apperrors.Wrap(apperrors.KindUpstreamUnavailable, "failed to read FACEIT response", err))
		}
		if err := json.Unmarshal(body, out); err != nil {
			return apperrors.Wrap(apperrors.KindUpstreamBadPayload, fmt.Sprintf("failed to decode FACEIT response for %s", path), err)
		}
		return nil
	})
}
