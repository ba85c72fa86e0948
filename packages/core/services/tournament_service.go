package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

type TournamentService struct {
	db *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{
		db: db,
	}
}

func (s *TournamentService) GetAllTournaments(page, pageSize int) (*models.PaginatedTournamentsResponse, error) {
	var tournaments []models.Tournament
	var total int64

	if err := s.db.Model(&models.Tournament{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	if err := s.db.
		Preload("Teams").
		Order("id ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&tournaments).Error; err != nil {
		return nil, err
	}

	return &models.PaginatedTournamentsResponse{
		Data:       tournaments,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *TournamentService) GetTournamentByName(name string) (*models.Tournament, error) {
	var tournament models.Tournament
	err := s.db.
		Preload("Teams").
		Preload("Matches").
		Preload("Results").
		Preload("Results.Team").
		Where("name = ?", name).
		First(&tournament).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Tournament %s not found", name)
		}
		return nil, err
	}
	return &tournament, nil
}

func (s *TournamentService) CreateTournament(req models.CreateTournamentRequest) (*models.Tournament, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.BadInput("The start date of the tournament must be before the end date")
	}

	var existing models.Tournament
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("Tournament %s already exists", req.Name)
	}

	tournament := &models.Tournament{
		Name:        req.Name,
		Prize:       req.Prize,
		Description: req.Description,
		MaxTeams:    req.MaxTeams,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      models.StatusScheduled,
	}
	if err := s.db.Create(tournament).Error; err != nil {
		return nil, err
	}
	return tournament, nil
}

func (s *TournamentService) UpdateTournament(name string, req models.UpdateTournamentRequest) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByName(name)
	if err != nil {
		return nil, err
	}

	start := tournament.StartDate
	end := tournament.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if end.Before(start) {
		return nil, apperrors.BadInput("The start date of the tournament must be before the end date")
	}

	updates := map[string]interface{}{
		"start_date": start,
		"end_date":   end,
	}
	if req.Prize != nil {
		updates["prize"] = *req.Prize
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if err := s.db.Model(tournament).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetTournamentByName(name)
}

func (s *TournamentService) DeleteTournament(name string) error {
	tournament, err := s.GetTournamentByName(name)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var matchIDs []uint
		if err := tx.Model(&models.Match{}).
			Where("tournament_id = ?", tournament.ID).
			Pluck("id", &matchIDs).Error; err != nil {
			return err
		}
		if len(matchIDs) > 0 {
			if err := tx.Where("match_id IN ?", matchIDs).Delete(&models.MatchStats{}).Error; err != nil {
				return err
			}
			if err := tx.Where("match_id IN ?", matchIDs).Delete(&models.MapPickBan{}).Error; err != nil {
				return err
			}
			if err := tx.Where("match_id IN ?", matchIDs).Delete(&models.MapResult{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tournament_id = ?", tournament.ID).Delete(&models.Match{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("tournament_id = ?", tournament.ID).Delete(&models.TournamentResult{}).Error; err != nil {
			return err
		}
		if err := tx.Model(tournament).Association("Teams").Clear(); err != nil {
			return err
		}
		if err := tx.Model(tournament).Association("Players").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Tournament{}, tournament.ID).Error
	})
}

// AddTeamToTournament registers a team, within the tournament's capacity,
// and syncs the tournament memberships of the team's players.
func (s *TournamentService) AddTeamToTournament(tournamentName, teamName string) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByName(tournamentName)
	if err != nil {
		return nil, err
	}

	var team models.Team
	if err := s.db.Preload("Players").Where("name = ?", teamName).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Team %s not found", teamName)
		}
		return nil, err
	}

	for _, t := range tournament.Teams {
		if t.ID == team.ID {
			return nil, apperrors.BadInput("The team %s is already in the tournament %s", teamName, tournamentName)
		}
	}
	if len(tournament.Teams) >= tournament.MaxTeams {
		return nil, apperrors.BadInput("The maximum number of teams will participate in the tournament")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(tournament).Association("Teams").Append(&team); err != nil {
			return err
		}
		for i := range team.Players {
			if err := SyncPlayerTournaments(tx, &team.Players[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTournamentByName(tournamentName)
}

// RemoveTeamFromTournament deregisters a team and its placement slot.
func (s *TournamentService) RemoveTeamFromTournament(tournamentName, teamName string) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByName(tournamentName)
	if err != nil {
		return nil, err
	}

	var team models.Team
	if err := s.db.Preload("Players").Where("name = ?", teamName).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Team %s not found", teamName)
		}
		return nil, err
	}

	registered := false
	for _, t := range tournament.Teams {
		if t.ID == team.ID {
			registered = true
			break
		}
	}
	if !registered {
		return nil, apperrors.BadInput("The team %s is not in the tournament %s", teamName, tournamentName)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(tournament).Association("Teams").Delete(&team); err != nil {
			return err
		}
		if err := tx.Model(&models.TournamentResult{}).
			Where("tournament_id = ? AND team_id = ?", tournament.ID, team.ID).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		for i := range team.Players {
			if err := SyncPlayerTournaments(tx, &team.Players[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTournamentByName(tournamentName)
}

// AddResult appends a placement slot (place, prize) with no team yet.
func (s *TournamentService) AddResult(tournamentName string, req models.TournamentResultRequest) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByName(tournamentName)
	if err != nil {
		return nil, err
	}

	for _, r := range tournament.Results {
		if r.Place == req.Place {
			return nil, apperrors.BadInput("Place %d already exists in the tournament %s", req.Place, tournamentName)
		}
	}
	if len(tournament.Results) >= tournament.MaxTeams {
		return nil, apperrors.BadInput("Cannot add more than %d results for this tournament.", tournament.MaxTeams)
	}

	result := models.TournamentResult{
		TournamentID: tournament.ID,
		Place:        req.Place,
		Prize:        req.Prize,
	}
	if err := s.db.Create(&result).Error; err != nil {
		return nil, err
	}
	return s.GetTournamentByName(tournamentName)
}

// DeleteLastResult removes the slot with the greatest place.
func (s *TournamentService) DeleteLastResult(tournamentName string) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByName(tournamentName)
	if err != nil {
		return nil, err
	}
	if len(tournament.Results) == 0 {
		return nil, apperrors.BadInput("No results to delete for the tournament %s", tournamentName)
	}

	var last models.TournamentResult
	if err := s.db.Where("tournament_id = ?", tournament.ID).
		Order("place DESC").
		First(&last).Error; err != nil {
		return nil, err
	}
	if err := s.db.Delete(&last).Error; err != nil {
		return nil, err
	}
	return s.GetTournamentByName(tournamentName)
}

// AssignTeamToResult puts a participating team into an existing slot.
func (s *TournamentService) AssignTeamToResult(tournamentName string, place int, teamName string) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByName(tournamentName)
	if err != nil {
		return nil, err
	}

	var team *models.Team
	for i := range tournament.Teams {
		if tournament.Teams[i].Name == teamName {
			team = &tournament.Teams[i]
			break
		}
	}
	if team == nil {
		return nil, apperrors.BadInput("The team %s does not participate in the tournament %s", teamName, tournamentName)
	}

	var slot *models.TournamentResult
	for i := range tournament.Results {
		if tournament.Results[i].Place == place {
			slot = &tournament.Results[i]
			break
		}
	}
	if slot == nil {
		return nil, apperrors.NotFound("Place %d not found in the tournament %s", place, tournamentName)
	}
	for i := range tournament.Results {
		r := &tournament.Results[i]
		if r.TeamID != nil && *r.TeamID == team.ID {
			return nil, apperrors.BadInput("The team %s already has a place in the tournament %s", teamName, tournamentName)
		}
	}

	if err := s.db.Model(slot).Update("team_id", team.ID).Error; err != nil {
		return nil, err
	}
	return s.GetTournamentByName(tournamentName)
}

// RemoveTeamFromResult clears the team of the given slot.
func (s *TournamentService) RemoveTeamFromResult(tournamentName string, place int) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByName(tournamentName)
	if err != nil {
		return nil, err
	}

	var slot *models.TournamentResult
	for i := range tournament.Results {
		if tournament.Results[i].Place == place {
			slot = &tournament.Results[i]
			break
		}
	}
	if slot == nil {
		return nil, apperrors.NotFound("Place %d not found in the tournament %s", place, tournamentName)
	}

	if err := s.db.Model(slot).Update("team_id", nil).Error; err != nil {
		return nil, err
	}
	return s.GetTournamentByName(tournamentName)
}
