package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
	"github.com/Zattox/RavensPedia-sub000/packages/core/faceit"
	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

type PlayerService struct {
	db     *gorm.DB
	faceit *faceit.Client
}

func NewPlayerService(db *gorm.DB, faceitClient *faceit.Client) *PlayerService {
	return &PlayerService{
		db:     db,
		faceit: faceitClient,
	}
}

func (s *PlayerService) GetAllPlayers(page, pageSize int) (*models.PaginatedPlayersResponse, error) {
	var players []models.Player
	var total int64

	if err := s.db.Model(&models.Player{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	if err := s.db.
		Preload("Team").
		Order("id ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&players).Error; err != nil {
		return nil, err
	}

	return &models.PaginatedPlayersResponse{
		Data:       players,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *PlayerService) GetPlayerByNickname(nickname string) (*models.Player, error) {
	var player models.Player
	err := s.db.
		Preload("Team").
		Preload("Tournaments").
		Preload("Stats").
		Where("nickname = ?", nickname).
		First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Player %s not found", nickname)
		}
		return nil, err
	}
	return &player, nil
}

func (s *PlayerService) CreatePlayer(req models.CreatePlayerRequest) (*models.Player, error) {
	var existing models.Player
	if err := s.db.Where("nickname = ?", req.Nickname).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("Player %s already exists", req.Nickname)
	}
	if err := s.db.Where("steam_id = ?", req.SteamID).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("Player with steam id %s already exists", req.SteamID)
	}

	player := &models.Player{
		Nickname: req.Nickname,
		Name:     req.Name,
		Surname:  req.Surname,
		SteamID:  req.SteamID,
	}
	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}
	return player, nil
}

func (s *PlayerService) UpdatePlayer(nickname string, req models.UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.GetPlayerByNickname(nickname)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Nickname != nil && *req.Nickname != player.Nickname {
		var existing models.Player
		if err := s.db.Where("nickname = ?", *req.Nickname).First(&existing).Error; err == nil {
			return nil, apperrors.Conflict("Player %s already exists", *req.Nickname)
		}
		updates["nickname"] = *req.Nickname
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Surname != nil {
		updates["surname"] = *req.Surname
	}

	if len(updates) > 0 {
		if err := s.db.Model(player).Updates(updates).Error; err != nil {
			return nil, err
		}
		// Stats rows carry the nickname denormalized for aggregation.
		if newNickname, ok := updates["nickname"]; ok {
			if err := s.db.Model(&models.MatchStats{}).
				Where("player_id = ?", player.ID).
				Update("nickname", newNickname).Error; err != nil {
				return nil, err
			}
		}
	}

	return s.GetPlayerByNickname(player.Nickname)
}

// DeletePlayer removes a player and cascades its per-round stats rows.
func (s *PlayerService) DeletePlayer(nickname string) error {
	player, err := s.GetPlayerByNickname(nickname)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("player_id = ?", player.ID).Delete(&models.MatchStats{}).Error; err != nil {
			return err
		}
		if err := tx.Model(player).Association("Tournaments").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Player{}, player.ID).Error
	})
}

// RefreshFaceitProfile pulls the player's FACEIT id and current Elo by
// steam id and recomputes the team's average Elo.
func (s *PlayerService) RefreshFaceitProfile(ctx context.Context, nickname string) (*models.Player, error) {
	player, err := s.GetPlayerByNickname(nickname)
	if err != nil {
		return nil, err
	}

	details, err := s.faceit.GetPlayerBySteamID(ctx, player.SteamID)
	if err != nil {
		return nil, err
	}

	elo := details.Games.CS2.FaceitElo
	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"faceit_id":  details.PlayerID,
			"faceit_elo": elo,
		}
		if err := tx.Model(player).Updates(updates).Error; err != nil {
			return err
		}
		if player.TeamID != nil {
			return recomputeTeamAverageElo(tx, *player.TeamID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetPlayerByNickname(nickname)
}

// ResolveFaceitPlayer returns the local player for a FACEIT player id,
// provisioning one when unknown. When the upstream steam id matches an
// existing row, that row wins and is back-filled with the FACEIT id.
func (s *PlayerService) ResolveFaceitPlayer(ctx context.Context, tx *gorm.DB, faceitID, nickname string) (*models.Player, error) {
	var player models.Player
	err := tx.Where("faceit_id = ?", faceitID).First(&player).Error
	if err == nil {
		return &player, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	details, err := s.faceit.GetPlayerByID(ctx, faceitID)
	if err != nil {
		return nil, err
	}
	steamID := details.Games.CS2.GamePlayerID

	// Prefer the existing row when the steam id is already known.
	err = tx.Where("steam_id = ?", steamID).First(&player).Error
	if err == nil {
		if player.FaceitID == nil {
			if err := tx.Model(&player).Update("faceit_id", faceitID).Error; err != nil {
				return nil, err
			}
		}
		return &player, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if len(nickname) > models.MaxNicknameLen {
		nickname = nickname[:models.MaxNicknameLen]
	}

	player = models.Player{
		Nickname: nickname,
		SteamID:  steamID,
		FaceitID: &faceitID,
	}
	if err := tx.Create(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// SyncPlayerTournaments recomputes the player's tournament memberships as
// {tournaments of matches the player has stats in} union {tournaments of
// the player's current team} and replaces the association atomically.
func SyncPlayerTournaments(tx *gorm.DB, player *models.Player) error {
	var statTournamentIDs []uint
	if err := tx.Table("match_stats").
		Joins("JOIN matches ON matches.id = match_stats.match_id").
		Where("match_stats.player_id = ?", player.ID).
		Distinct().
		Pluck("matches.tournament_id", &statTournamentIDs).Error; err != nil {
		return err
	}

	ids := make(map[uint]struct{}, len(statTournamentIDs))
	for _, id := range statTournamentIDs {
		ids[id] = struct{}{}
	}

	if player.TeamID != nil {
		var teamTournamentIDs []uint
		if err := tx.Table("team_tournaments").
			Where("team_id = ?", *player.TeamID).
			Pluck("tournament_id", &teamTournamentIDs).Error; err != nil {
			return err
		}
		for _, id := range teamTournamentIDs {
			ids[id] = struct{}{}
		}
	}

	all := make([]uint, 0, len(ids))
	for id := range ids {
		all = append(all, id)
	}

	var tournaments []models.Tournament
	if len(all) > 0 {
		if err := tx.Where("id IN ?", all).Find(&tournaments).Error; err != nil {
			return err
		}
	}

	return tx.Model(player).Association("Tournaments").Replace(&tournaments)
}

func totalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
