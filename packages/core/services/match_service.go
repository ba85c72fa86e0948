package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db: db,
	}
}

func (s *MatchService) GetAllMatches(page, pageSize int) (*models.PaginatedMatchesResponse, error) {
	var matches []models.Match
	var total int64

	if err := s.db.Model(&models.Match{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	if err := s.db.
		Preload("Teams").
		Preload("Tournament").
		Order("id ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&matches).Error; err != nil {
		return nil, err
	}

	return &models.PaginatedMatchesResponse{
		Data:       matches,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *MatchService) GetMatchByID(id uint) (*models.Match, error) {
	var match models.Match
	err := s.db.
		Preload("Tournament").
		Preload("Teams").
		Preload("Stats").
		Preload("Veto").
		Preload("Result").
		First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Match %d not found", id)
		}
		return nil, err
	}
	return &match, nil
}

func (s *MatchService) CreateMatch(req models.CreateMatchRequest) (*models.Match, error) {
	if !models.ValidBestOf(req.BestOf) {
		return nil, apperrors.BadInput("The best_of field must be one of 1, 2, 3, 5")
	}

	var tournament models.Tournament
	if err := s.db.Where("name = ?", req.TournamentName).First(&tournament).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Tournament %s not found", req.TournamentName)
		}
		return nil, err
	}

	maxPlayers := req.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = 10
	}

	match := &models.Match{
		BestOf:       req.BestOf,
		MaxTeams:     2,
		MaxPlayers:   maxPlayers,
		TournamentID: tournament.ID,
		Date:         req.Date,
		Status:       models.StatusScheduled,
		Description:  req.Description,
	}
	if err := s.db.Create(match).Error; err != nil {
		return nil, err
	}
	return s.GetMatchByID(match.ID)
}

func (s *MatchService) UpdateMatch(id uint, req models.UpdateMatchRequest) (*models.Match, error) {
	match, err := s.GetMatchByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(match).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetMatchByID(id)
}

// DeleteMatch removes a match and cascades stats, veto and map results,
// then re-syncs the tournament memberships of the affected players.
func (s *MatchService) DeleteMatch(id uint) error {
	match, err := s.GetMatchByID(id)
	if err != nil {
		return err
	}

	playerIDs := make(map[uint]struct{})
	for _, row := range match.Stats {
		playerIDs[row.PlayerID] = struct{}{}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", match.ID).Delete(&models.MatchStats{}).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", match.ID).Delete(&models.MapPickBan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", match.ID).Delete(&models.MapResult{}).Error; err != nil {
			return err
		}
		if err := tx.Model(match).Association("Teams").Clear(); err != nil {
			return err
		}
		if err := tx.Delete(&models.Match{}, match.ID).Error; err != nil {
			return err
		}

		for playerID := range playerIDs {
			var player models.Player
			if err := tx.First(&player, playerID).Error; err != nil {
				return err
			}
			if err := SyncPlayerTournaments(tx, &player); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddTeamToMatch registers one of the two sides of a match.
func (s *MatchService) AddTeamToMatch(matchID uint, teamName string) (*models.Match, error) {
	match, err := s.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}

	var team models.Team
	if err := s.db.Where("name = ?", teamName).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Team %s not found", teamName)
		}
		return nil, err
	}

	for _, t := range match.Teams {
		if t.ID == team.ID {
			return nil, apperrors.BadInput("The team %s is already in the match %d", teamName, matchID)
		}
	}
	if len(match.Teams) >= match.MaxTeams {
		return nil, apperrors.BadInput("The maximum number of teams will participate in the match")
	}

	if err := s.db.Model(match).Association("Teams").Append(&team); err != nil {
		return nil, err
	}
	return s.GetMatchByID(matchID)
}

// DeleteTeamFromMatch removes a side from the match.
func (s *MatchService) DeleteTeamFromMatch(matchID uint, teamName string) (*models.Match, error) {
	match, err := s.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}

	var team *models.Team
	for i := range match.Teams {
		if match.Teams[i].Name == teamName {
			team = &match.Teams[i]
			break
		}
	}
	if team == nil {
		return nil, apperrors.BadInput("The team %s is not in the match %d", teamName, matchID)
	}

	if err := s.db.Model(match).Association("Teams").Delete(team); err != nil {
		return nil, err
	}
	return s.GetMatchByID(matchID)
}
