package services

import (
	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

// TeamStatsService materializes the per-map win rates of a team from its
// recorded map results. The aggregate is recomputed on read so it never
// drifts from the result log.
type TeamStatsService struct {
	db    *gorm.DB
	teams *TeamService
}

func NewTeamStatsService(db *gorm.DB, teamService *TeamService) *TeamStatsService {
	return &TeamStatsService{
		db:    db,
		teams: teamService,
	}
}

// GetTeamMapStats refreshes and returns the per-map aggregates of a team.
func (s *TeamStatsService) GetTeamMapStats(teamName string) ([]models.TeamMapStats, error) {
	team, err := s.teams.GetTeamByName(teamName)
	if err != nil {
		return nil, err
	}
	if err := s.refresh(team); err != nil {
		return nil, err
	}

	var stats []models.TeamMapStats
	if err := s.db.Where("team_id = ?", team.ID).Order("map ASC").Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *TeamStatsService) refresh(team *models.Team) error {
	var results []models.MapResult
	if err := s.db.
		Where("first_team = ? OR second_team = ?", team.Name, team.Name).
		Find(&results).Error; err != nil {
		return err
	}

	type tally struct{ played, won int }
	byMap := make(map[string]*tally)
	for _, r := range results {
		t := byMap[r.Map]
		if t == nil {
			t = &tally{}
			byMap[r.Map] = t
		}
		t.played++
		if won(r, team.Name) {
			t.won++
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", team.ID).Delete(&models.TeamMapStats{}).Error; err != nil {
			return err
		}
		for mapName, t := range byMap {
			row := models.TeamMapStats{
				TeamID:        team.ID,
				Map:           mapName,
				MatchesPlayed: t.played,
				MatchesWon:    t.won,
				WinRate:       safeDiv(float64(t.won)*100, float64(t.played)),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func won(r models.MapResult, teamName string) bool {
	if r.FirstTeam == teamName {
		return r.TotalScoreFirstTeam > r.TotalScoreSecondTeam
	}
	return r.TotalScoreSecondTeam > r.TotalScoreFirstTeam
}
