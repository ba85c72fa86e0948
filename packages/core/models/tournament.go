package models

import (
	"time"
)

// Lifecycle statuses shared by matches and tournaments.
const (
	StatusScheduled  = "SCHEDULED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// ValidStatus reports whether s is one of the lifecycle statuses.
func ValidStatus(s string) bool {
	return s == StatusScheduled || s == StatusInProgress || s == StatusCompleted
}

type Tournament struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Prize       string    `gorm:"size:50" json:"prize,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	MaxTeams    int       `gorm:"not null" json:"max_count_of_teams"`
	StartDate   time.Time `gorm:"not null" json:"start_date"`
	EndDate     time.Time `gorm:"not null" json:"end_date"`
	Status      string    `gorm:"size:20;not null;default:SCHEDULED" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Teams   []Team             `gorm:"many2many:team_tournaments" json:"teams,omitempty"`
	Players []Player           `gorm:"many2many:player_tournaments" json:"players,omitempty"`
	Matches []Match            `gorm:"foreignKey:TournamentID;constraint:OnDelete:CASCADE" json:"matches,omitempty"`
	Results []TournamentResult `gorm:"foreignKey:TournamentID;constraint:OnDelete:CASCADE" json:"results,omitempty"`
}

func (Tournament) TableName() string {
	return "tournaments"
}

// TournamentResult is one placement slot: (place, prize, optional team).
type TournamentResult struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TournamentID uint      `gorm:"not null;uniqueIndex:idx_tournament_place,priority:1" json:"tournament_id"`
	Place        int       `gorm:"not null;uniqueIndex:idx_tournament_place,priority:2" json:"place"`
	Prize        string    `gorm:"size:50" json:"prize"`
	TeamID       *uint     `json:"team_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Team *Team `gorm:"foreignKey:TeamID;references:ID" json:"team,omitempty"`
}

func (TournamentResult) TableName() string {
	return "tournament_results"
}

type PaginatedTournamentsResponse struct {
	Data       []Tournament `json:"data"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}

type CreateTournamentRequest struct {
	Name        string    `json:"name" binding:"required,max=100"`
	Prize       string    `json:"prize,omitempty"`
	Description string    `json:"description,omitempty"`
	MaxTeams    int       `json:"max_count_of_teams" binding:"required,min=2"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

type UpdateTournamentRequest struct {
	Prize       *string    `json:"prize,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type TournamentResultRequest struct {
	Place int    `json:"place" binding:"required,min=1"`
	Prize string `json:"prize" binding:"required"`
}
