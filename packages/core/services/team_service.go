package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		db: db,
	}
}

func (s *TeamService) GetAllTeams(page, pageSize int) (*models.PaginatedTeamsResponse, error) {
	var teams []models.Team
	var total int64

	if err := s.db.Model(&models.Team{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	if err := s.db.
		Preload("Players").
		Order("id ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&teams).Error; err != nil {
		return nil, err
	}

	return &models.PaginatedTeamsResponse{
		Data:       teams,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *TeamService) GetTeamByName(name string) (*models.Team, error) {
	var team models.Team
	err := s.db.
		Preload("Players").
		Preload("Tournaments").
		Preload("Matches").
		Preload("MapStats").
		Where("name = ?", name).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Team %s not found", name)
		}
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) CreateTeam(req models.CreateTeamRequest) (*models.Team, error) {
	var existing models.Team
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("Team %s already exists", req.Name)
	}

	team := &models.Team{
		Name:        req.Name,
		MaxPlayers:  req.MaxPlayers,
		Description: req.Description,
	}
	if err := s.db.Create(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

func (s *TeamService) UpdateTeam(name string, req models.UpdateTeamRequest) (*models.Team, error) {
	team, err := s.GetTeamByName(name)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil && *req.Name != team.Name {
		var existing models.Team
		if err := s.db.Where("name = ?", *req.Name).First(&existing).Error; err == nil {
			return nil, apperrors.Conflict("Team %s already exists", *req.Name)
		}
		updates["name"] = *req.Name
	}
	if req.MaxPlayers != nil {
		if len(team.Players) > *req.MaxPlayers {
			return nil, apperrors.BadInput("Team %s already has %d players", team.Name, len(team.Players))
		}
		updates["max_players"] = *req.MaxPlayers
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(team).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetTeamByName(team.Name)
}

// DeleteTeam detaches the roster, drops the per-map aggregates and
// removes the team from its tournaments and matches.
func (s *TeamService) DeleteTeam(name string) error {
	team, err := s.GetTeamByName(name)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Player{}).
			Where("team_id = ?", team.ID).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		for i := range team.Players {
			team.Players[i].TeamID = nil
			if err := SyncPlayerTournaments(tx, &team.Players[i]); err != nil {
				return err
			}
		}
		if err := tx.Where("team_id = ?", team.ID).Delete(&models.TeamMapStats{}).Error; err != nil {
			return err
		}
		if err := tx.Model(team).Association("Tournaments").Clear(); err != nil {
			return err
		}
		if err := tx.Model(team).Association("Matches").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&models.TournamentResult{}).
			Where("team_id = ?", team.ID).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, team.ID).Error
	})
}

// AddPlayerToTeam moves a free player into the roster, within capacity.
func (s *TeamService) AddPlayerToTeam(teamName, nickname string) (*models.Team, error) {
	team, err := s.GetTeamByName(teamName)
	if err != nil {
		return nil, err
	}

	var player models.Player
	if err := s.db.Preload("Team").Where("nickname = ?", nickname).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Player %s not found", nickname)
		}
		return nil, err
	}

	if player.TeamID != nil {
		currentName := teamName
		if player.Team != nil {
			currentName = player.Team.Name
		}
		return nil, apperrors.BadInput("The player %s has already joined %s", nickname, currentName)
	}
	if len(team.Players) >= team.MaxPlayers {
		return nil, apperrors.BadInput("The maximum number of players will participate in team")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&player).Update("team_id", team.ID).Error; err != nil {
			return err
		}
		player.TeamID = &team.ID
		if err := SyncPlayerTournaments(tx, &player); err != nil {
			return err
		}
		return recomputeTeamAverageElo(tx, team.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.GetTeamByName(teamName)
}

// RemovePlayerFromTeam detaches a roster member.
func (s *TeamService) RemovePlayerFromTeam(teamName, nickname string) (*models.Team, error) {
	team, err := s.GetTeamByName(teamName)
	if err != nil {
		return nil, err
	}

	var player models.Player
	if err := s.db.Where("nickname = ?", nickname).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Player %s not found", nickname)
		}
		return nil, err
	}
	if player.TeamID == nil || *player.TeamID != team.ID {
		return nil, apperrors.BadInput("The player %s is not in team %s", nickname, teamName)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&player).Update("team_id", nil).Error; err != nil {
			return err
		}
		player.TeamID = nil
		if err := SyncPlayerTournaments(tx, &player); err != nil {
			return err
		}
		return recomputeTeamAverageElo(tx, team.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.GetTeamByName(teamName)
}

// recomputeTeamAverageElo refreshes the derived average of the roster's
// FACEIT Elo snapshots; null when no member has one.
func recomputeTeamAverageElo(tx *gorm.DB, teamID uint) error {
	var players []models.Player
	if err := tx.Where("team_id = ?", teamID).Find(&players).Error; err != nil {
		return err
	}

	sum, count := 0, 0
	for _, p := range players {
		if p.FaceitElo != nil {
			sum += *p.FaceitElo
			count++
		}
	}

	if count == 0 {
		return tx.Model(&models.Team{}).Where("id = ?", teamID).Update("average_faceit_elo", nil).Error
	}
	avg := float64(sum) / float64(count)
	return tx.Model(&models.Team{}).Where("id = ?", teamID).Update("average_faceit_elo", avg).Error
}
