package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

// ScheduleService derives the lifecycle status of matches and tournaments
// from their dates and serves the schedule views. The sweep runs from the
// cron scheduler and is also exposed as an admin trigger.
type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{
		db: db,
	}
}

// SweepMatchStatuses realigns every match status with its date. A match
// whose statistics already completed it is never demoted.
func (s *ScheduleService) SweepMatchStatuses(now time.Time) error {
	if err := s.db.Model(&models.Match{}).
		Where("date > ? AND status <> ?", now, models.StatusCompleted).
		Where("status <> ?", models.StatusScheduled).
		Update("status", models.StatusScheduled).Error; err != nil {
		return err
	}
	return s.db.Model(&models.Match{}).
		Where("date <= ? AND status = ?", now, models.StatusScheduled).
		Update("status", models.StatusInProgress).Error
}

// SweepTournamentStatuses realigns every tournament status with its
// start/end window.
func (s *ScheduleService) SweepTournamentStatuses(now time.Time) error {
	if err := s.db.Model(&models.Tournament{}).
		Where("start_date > ? AND status <> ?", now, models.StatusScheduled).
		Update("status", models.StatusScheduled).Error; err != nil {
		return err
	}
	if err := s.db.Model(&models.Tournament{}).
		Where("start_date <= ? AND end_date > ? AND status <> ?", now, now, models.StatusInProgress).
		Update("status", models.StatusInProgress).Error; err != nil {
		return err
	}
	return s.db.Model(&models.Tournament{}).
		Where("end_date <= ? AND status <> ?", now, models.StatusCompleted).
		Update("status", models.StatusCompleted).Error
}

// Sweep runs both realignments.
func (s *ScheduleService) Sweep(now time.Time) error {
	if err := s.SweepMatchStatuses(now); err != nil {
		return err
	}
	return s.SweepTournamentStatuses(now)
}

// UpdateMatchStatus is the manual override for a single match.
func (s *ScheduleService) UpdateMatchStatus(matchID uint, status string) (*models.Match, error) {
	if !models.ValidStatus(status) {
		return nil, apperrors.BadInput("Status must be one of SCHEDULED, IN_PROGRESS, COMPLETED")
	}

	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Match %d not found", matchID)
		}
		return nil, err
	}
	if err := s.db.Model(&match).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// UpdateTournamentStatus is the manual override for a single tournament.
func (s *ScheduleService) UpdateTournamentStatus(name, status string) (*models.Tournament, error) {
	if !models.ValidStatus(status) {
		return nil, apperrors.BadInput("Status must be one of SCHEDULED, IN_PROGRESS, COMPLETED")
	}

	var tournament models.Tournament
	if err := s.db.Where("name = ?", name).First(&tournament).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Tournament %s not found", name)
		}
		return nil, err
	}
	if err := s.db.Model(&tournament).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &tournament, nil
}

// GetLastCompletedMatches returns the most recently played matches.
func (s *ScheduleService) GetLastCompletedMatches(limit int) ([]models.Match, error) {
	var matches []models.Match
	err := s.db.
		Preload("Teams").
		Preload("Tournament").
		Where("status = ?", models.StatusCompleted).
		Order("date DESC").
		Limit(limit).
		Find(&matches).Error
	return matches, err
}

// GetUpcomingScheduledMatches returns the next matches on the calendar.
func (s *ScheduleService) GetUpcomingScheduledMatches(limit int) ([]models.Match, error) {
	var matches []models.Match
	err := s.db.
		Preload("Teams").
		Preload("Tournament").
		Where("status = ?", models.StatusScheduled).
		Order("date ASC").
		Limit(limit).
		Find(&matches).Error
	return matches, err
}

// GetMatchesInProgress returns the matches being played right now.
func (s *ScheduleService) GetMatchesInProgress(limit int) ([]models.Match, error) {
	var matches []models.Match
	err := s.db.
		Preload("Teams").
		Preload("Tournament").
		Where("status = ?", models.StatusInProgress).
		Order("date ASC").
		Limit(limit).
		Find(&matches).Error
	return matches, err
}

// GetTournamentsByStatus filters tournaments by lifecycle status.
func (s *ScheduleService) GetTournamentsByStatus(status string, limit int) ([]models.Tournament, error) {
	if !models.ValidStatus(status) {
		return nil, apperrors.BadInput("Status must be one of SCHEDULED, IN_PROGRESS, COMPLETED")
	}
	var tournaments []models.Tournament
	err := s.db.
		Preload("Teams").
		Where("status = ?", status).
		Order("start_date ASC").
		Limit(limit).
		Find(&tournaments).Error
	return tournaments, err
}
