package models

import (
	"time"
)

// MaxTeamNameLen mirrors the teams.name column size.
const MaxTeamNameLen = 15

type Team struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"size:15;uniqueIndex;not null" json:"name"`
	MaxPlayers       int       `gorm:"not null;default:5" json:"max_players"`
	Description      string    `gorm:"type:text" json:"description,omitempty"`
	AverageFaceitElo *float64  `json:"average_faceit_elo,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relationships
	Players     []Player       `gorm:"foreignKey:TeamID" json:"players,omitempty"`
	Matches     []Match        `gorm:"many2many:team_matches" json:"matches,omitempty"`
	Tournaments []Tournament   `gorm:"many2many:team_tournaments" json:"tournaments,omitempty"`
	MapStats    []TeamMapStats `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"map_stats,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

type PaginatedTeamsResponse struct {
	Data       []Team `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=15"`
	MaxPlayers  int    `json:"max_players" binding:"required,min=1"`
	Description string `json:"description,omitempty"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=15"`
	MaxPlayers  *int    `json:"max_players,omitempty" binding:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}
