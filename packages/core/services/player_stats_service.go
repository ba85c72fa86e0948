package services

import (
	"encoding/json"
	"strconv"

	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

// PlayerStatsService aggregates the stored per-map stat rows of a player
// into the compact or the detailed projection.
type PlayerStatsService struct {
	db      *gorm.DB
	players *PlayerService
}

func NewPlayerStatsService(db *gorm.DB, playerService *PlayerService) *PlayerStatsService {
	return &PlayerStatsService{
		db:      db,
		players: playerService,
	}
}

func (s *PlayerStatsService) loadRows(nickname string, filter models.StatsFilter) (*models.Player, []models.MatchStats, error) {
	player, err := s.players.GetPlayerByNickname(nickname)
	if err != nil {
		return nil, nil, err
	}

	query := s.db.
		Joins("JOIN matches ON matches.id = match_stats.match_id").
		Where("match_stats.player_id = ?", player.ID)
	if filter.StartDate != nil {
		query = query.Where("matches.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("matches.date <= ?", *filter.EndDate)
	}
	if len(filter.TournamentIDs) > 0 {
		query = query.Where("matches.tournament_id IN ?", filter.TournamentIDs)
	}

	var rows []models.MatchStats
	if err := query.Order("match_stats.id ASC").Find(&rows).Error; err != nil {
		return nil, nil, err
	}
	return player, rows, nil
}

// GetGeneralStats sums the matching rows into the compact projection.
// A player with no matching rows gets an all-zero response.
func (s *PlayerStatsService) GetGeneralStats(nickname string, filter models.StatsFilter) (*models.GeneralPlayerStats, error) {
	player, rows, err := s.loadRows(nickname, filter)
	if err != nil {
		return nil, err
	}

	out := &models.GeneralPlayerStats{Nickname: player.Nickname}
	out.TotalMatches = len(rows)

	var adrSum, krSum float64
	for _, row := range rows {
		out.Kills += statInt(row.Stats, models.StatKills)
		out.Assists += statInt(row.Stats, models.StatAssists)
		out.Deaths += statInt(row.Stats, models.StatDeaths)
		out.Headshots += statInt(row.Stats, models.StatHeadshots)
		out.Wins += statInt(row.Stats, models.StatResult)
		adrSum += statFloat(row.Stats, models.StatADR)
		krSum += statFloat(row.Stats, models.StatKRRatio)
	}

	// K/D and headshot percentage derive from the summed totals, not
	// from averaging the per-map values the provider reports.
	n := float64(len(rows))
	out.ADR = safeDiv(adrSum, n)
	out.KDRatio = safeDiv(float64(out.Kills), float64(out.Deaths))
	out.KRRatio = safeDiv(krSum, n)
	out.HeadshotsPercentage = safeDiv(float64(out.Headshots)*100, float64(out.Kills))
	out.WinsPercentage = safeDiv(float64(out.Wins)*100, n)
	return out, nil
}

// GetDetailedStats sums the full provider vocabulary and computes the
// derived rates at this boundary.
func (s *PlayerStatsService) GetDetailedStats(nickname string, filter models.StatsFilter) (*models.DetailedPlayerStats, error) {
	player, rows, err := s.loadRows(nickname, filter)
	if err != nil {
		return nil, err
	}

	out := &models.DetailedPlayerStats{Nickname: player.Nickname}
	out.TotalMatches = len(rows)

	var adrSum, krSum float64
	var sniperKRRSum, sniperKRMSum float64
	var utilUsageSum, utilDmgRSum, flashesRSum, enemiesFlRSum, flashSuccRSum float64
	for _, row := range rows {
		out.Kills += statInt(row.Stats, models.StatKills)
		out.Assists += statInt(row.Stats, models.StatAssists)
		out.Deaths += statInt(row.Stats, models.StatDeaths)
		out.Headshots += statInt(row.Stats, models.StatHeadshots)
		out.MVPs += statInt(row.Stats, models.StatMVPs)
		out.Damage += statInt(row.Stats, models.StatDamage)
		out.DoubleKills += statInt(row.Stats, models.StatDoubleKills)
		out.TripleKills += statInt(row.Stats, models.StatTripleKills)
		out.QuadroKills += statInt(row.Stats, models.StatQuadroKills)
		out.PentaKills += statInt(row.Stats, models.StatPentaKills)
		out.ClutchKills += statInt(row.Stats, models.StatClutchKills)
		out.OneVOne += statInt(row.Stats, models.Stat1v1Count)
		out.OneVTwo += statInt(row.Stats, models.Stat1v2Count)
		out.OneVOneWins += statInt(row.Stats, models.Stat1v1Wins)
		out.OneVTwoWins += statInt(row.Stats, models.Stat1v2Wins)
		out.FirstKills += statInt(row.Stats, models.StatFirstKills)
		out.EntryCount += statInt(row.Stats, models.StatEntryCount)
		out.EntryWins += statInt(row.Stats, models.StatEntryWins)
		out.SniperKills += statInt(row.Stats, models.StatSniperKills)
		out.PistolKills += statInt(row.Stats, models.StatPistolKills)
		out.KnifeKills += statInt(row.Stats, models.StatKnifeKills)
		out.ZeusKills += statInt(row.Stats, models.StatZeusKills)
		out.UtilityCount += statInt(row.Stats, models.StatUtilCount)
		out.UtilitySuccesses += statInt(row.Stats, models.StatUtilSucc)
		out.UtilityEnemies += statInt(row.Stats, models.StatUtilEnemies)
		out.UtilityDamage += statInt(row.Stats, models.StatUtilDamage)
		out.FlashCount += statInt(row.Stats, models.StatFlashCount)
		out.EnemiesFlashed += statInt(row.Stats, models.StatEnemiesFl)
		out.FlashSuccesses += statInt(row.Stats, models.StatFlashSucc)
		out.Wins += statInt(row.Stats, models.StatResult)

		adrSum += statFloat(row.Stats, models.StatADR)
		krSum += statFloat(row.Stats, models.StatKRRatio)
		sniperKRRSum += statFloat(row.Stats, models.StatSniperKRR)
		sniperKRMSum += statFloat(row.Stats, models.StatSniperKRM)
		utilUsageSum += statFloat(row.Stats, models.StatUtilUsageR)
		utilDmgRSum += statFloat(row.Stats, models.StatUtilDmgR)
		flashesRSum += statFloat(row.Stats, models.StatFlashesR)
		enemiesFlRSum += statFloat(row.Stats, models.StatEnemiesFlR)
		flashSuccRSum += statFloat(row.Stats, models.StatFlashSuccR)
	}

	n := float64(len(rows))
	out.ADR = safeDiv(adrSum, n)
	out.KDRatio = safeDiv(float64(out.Kills), float64(out.Deaths))
	out.KRRatio = safeDiv(krSum, n)
	out.HeadshotsPercentage = safeDiv(float64(out.Headshots)*100, float64(out.Kills))
	out.WinsPercentage = safeDiv(float64(out.Wins)*100, n)

	out.OneVOneWinRate = safeDiv(float64(out.OneVOneWins)*100, float64(out.OneVOne))
	out.OneVTwoWinRate = safeDiv(float64(out.OneVTwoWins)*100, float64(out.OneVTwo))
	out.EntryRate = safeDiv(float64(out.EntryCount), n)
	out.EntrySuccessRate = safeDiv(float64(out.EntryWins), float64(out.EntryCount))

	out.SniperKillRatePerRound = safeDiv(sniperKRRSum, n)
	out.SniperKillRatePerMatch = safeDiv(sniperKRMSum, n)
	out.UtilityUsagePerRound = safeDiv(utilUsageSum, n)
	out.UtilityDamagePerRoundInMatch = safeDiv(utilDmgRSum, n)
	out.FlashesPerRoundInMatch = safeDiv(flashesRSum, n)
	out.EnemiesFlashedPerRoundInMatch = safeDiv(enemiesFlRSum, n)
	out.FlashSuccessRatePerMatch = safeDiv(flashSuccRSum, n)
	return out, nil
}

// statFloat reads a single stat value. Provider ingestion stores string
// values and manual entry stores numbers; JSONMap decodes stored numbers
// with UseNumber, so json.Number is the shape rows loaded from the
// database carry, while float64/int cover maps built in process.
func statFloat(stats map[string]interface{}, key string) float64 {
	v, ok := stats[key]
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func statInt(stats map[string]interface{}, key string) int {
	return int(statFloat(stats, key))
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
