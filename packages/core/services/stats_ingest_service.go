package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
	"github.com/Zattox/RavensPedia-sub000/packages/core/faceit"
	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

// StatsIngestService pulls per-map, per-player statistics from FACEIT,
// reconciles the players with the local roster and keeps tournament
// memberships in sync. All writes of one ingestion commit atomically.
type StatsIngestService struct {
	db      *gorm.DB
	faceit  *faceit.Client
	players *PlayerService
	log     *slog.Logger
}

func NewStatsIngestService(db *gorm.DB, faceitClient *faceit.Client, playerService *PlayerService) *StatsIngestService {
	return &StatsIngestService{
		db:      db,
		faceit:  faceitClient,
		players: playerService,
		log:     slog.Default(),
	}
}

// AddMatchStatsFromFaceit ingests the statistics of a finished match from
// its FACEIT room URL.
func (s *StatsIngestService) AddMatchStatsFromFaceit(ctx context.Context, matchID uint, faceitURL string) (*models.Match, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var match models.Match
		if err := tx.Preload("Stats").Preload("Teams").First(&match, matchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Match %d not found", matchID)
			}
			return err
		}

		if len(match.Stats) > 0 {
			return apperrors.ConflictBadRequest("Statistics have already been added to the match %d", matchID)
		}

		roomID, err := parseFaceitRoomID(faceitURL)
		if err != nil {
			return err
		}

		stats, err := s.faceit.GetMatchStats(ctx, roomID)
		if err != nil {
			return err
		}

		payloadBestOf, err := strconv.Atoi(stats.Rounds[0].BestOf)
		if err != nil {
			return apperrors.Wrap(apperrors.KindUpstreamBadPayload, "FACEIT best_of is not a number", err)
		}
		// FACEIT encodes a best-of-1 as best_of=2 with a single round.
		if payloadBestOf == 2 && len(stats.Rounds) == 1 {
			s.log.Warn("normalizing FACEIT best_of=2 single-round payload to best_of=1",
				"match_id", matchID, "room_id", roomID)
			payloadBestOf = 1
		}
		if payloadBestOf != match.BestOf {
			return apperrors.BadInput("The best_of field differs from the specified one. Needed %d, but passed %d",
				match.BestOf, payloadBestOf)
		}
		if !roundCountMatchesBestOf(match.BestOf, len(stats.Rounds)) {
			return apperrors.BadInput("The best_of field differs from the specified one. Needed %d, but passed %d",
				match.BestOf, len(stats.Rounds))
		}

		summary, err := s.faceit.GetMatch(ctx, roomID)
		if err != nil {
			return err
		}
		matchDate := time.Unix(summary.StartedAt, 0).Local().Truncate(time.Minute)

		updates := map[string]interface{}{
			"date":            matchDate,
			"status":          models.StatusCompleted,
			"original_source": faceitURL,
		}
		if err := tx.Model(&match).Updates(updates).Error; err != nil {
			return err
		}

		seen := make(map[uint]*models.Player)
		for i, round := range stats.Rounds {
			roundNumber := i + 1
			if n, err := strconv.Atoi(round.MatchRound); err == nil {
				roundNumber = n
			}

			for _, teamStat := range round.Teams {
				for _, playerStat := range teamStat.Players {
					player, err := s.players.ResolveFaceitPlayer(ctx, tx, playerStat.PlayerID, playerStat.Nickname)
					if err != nil {
						return err
					}

					row := models.MatchStats{
						MatchID:      match.ID,
						PlayerID:     player.ID,
						RoundOfMatch: roundNumber,
						Nickname:     player.Nickname,
						Map:          round.RoundStats.Map,
						Stats:        providerStatsToJSON(playerStat.PlayerStats),
					}
					if err := tx.Create(&row).Error; err != nil {
						return err
					}
					seen[player.ID] = player
				}
			}
		}

		for _, player := range seen {
			if err := SyncPlayerTournaments(tx, player); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var match models.Match
	if err := s.db.Preload("Stats").Preload("Teams").Preload("Tournament").First(&match, matchID).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// AddManualMatchStats inserts a single stats row from a trusted admin
// body, completing the match if it is not completed yet.
func (s *StatsIngestService) AddManualMatchStats(ctx context.Context, matchID uint, req models.ManualMatchStatsRequest) (*models.Match, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var match models.Match
		if err := tx.First(&match, matchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Match %d not found", matchID)
			}
			return err
		}

		var player models.Player
		if err := tx.Where("nickname = ?", req.Nickname).First(&player).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Player %s not found", req.Nickname)
			}
			return err
		}

		if match.Status != models.StatusCompleted {
			if err := tx.Model(&match).Update("status", models.StatusCompleted).Error; err != nil {
				return err
			}
		}

		row := models.MatchStats{
			MatchID:      match.ID,
			PlayerID:     player.ID,
			RoundOfMatch: req.RoundOfMatch,
			Nickname:     player.Nickname,
			Map:          req.Map,
			Stats: datatypes.JSONMap{
				models.StatResult:     req.Result,
				models.StatKills:      req.Kills,
				models.StatAssists:    req.Assists,
				models.StatDeaths:     req.Deaths,
				models.StatADR:        req.ADR,
				models.StatHeadshotsP: req.Headshots,
			},
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		return SyncPlayerTournaments(tx, &player)
	})
	if err != nil {
		return nil, err
	}

	var match models.Match
	if err := s.db.Preload("Stats").Preload("Teams").Preload("Tournament").First(&match, matchID).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// DeleteLastMatchStats pops the most recent stats row of a match.
func (s *StatsIngestService) DeleteLastMatchStats(matchID uint) (*models.Match, error) {
	var match models.Match
	if err := s.db.Preload("Stats").First(&match, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Match %d not found", matchID)
		}
		return nil, err
	}
	if len(match.Stats) == 0 {
		return nil, apperrors.BadInput("No statistics to delete for the match %d", matchID)
	}

	last := match.Stats[len(match.Stats)-1]
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&last).Error; err != nil {
			return err
		}
		var player models.Player
		if err := tx.First(&player, last.PlayerID).Error; err != nil {
			return err
		}
		return SyncPlayerTournaments(tx, &player)
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Stats").Preload("Teams").First(&match, matchID).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// parseFaceitRoomID extracts the room id from a FACEIT match URL, e.g.
// https://www.faceit.com/en/cs2/room/1-abc-def/scoreboard -> 1-abc-def.
func parseFaceitRoomID(faceitURL string) (string, error) {
	const marker = "/room/"
	idx := strings.Index(faceitURL, marker)
	if idx < 0 {
		return "", apperrors.BadInput("Invalid FACEIT match URL: %s", faceitURL)
	}
	roomID := faceitURL[idx+len(marker):]
	roomID = strings.TrimSuffix(roomID, "/")
	roomID = strings.TrimSuffix(roomID, "/scoreboard")
	roomID = strings.TrimSuffix(roomID, "/")
	if roomID == "" || strings.Contains(roomID, "/") {
		return "", apperrors.BadInput("Invalid FACEIT match URL: %s", faceitURL)
	}
	return roomID, nil
}

// roundCountMatchesBestOf reports whether the number of played maps is
// plausible for the series length.
func roundCountMatchesBestOf(bestOf, rounds int) bool {
	switch bestOf {
	case 1:
		return rounds == 1
	case 2:
		return rounds == 2
	case 3:
		return rounds == 2 || rounds == 3
	case 5:
		return rounds >= 3 && rounds <= 5
	default:
		return false
	}
}

func providerStatsToJSON(stats map[string]string) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(stats))
	for k, v := range stats {
		out[k] = v
	}
	return out
}
