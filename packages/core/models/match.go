package models

import (
	"time"
)

type Match struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BestOf         int       `gorm:"not null" json:"best_of"`
	MaxTeams       int       `gorm:"not null;default:2" json:"max_number_of_teams"`
	MaxPlayers     int       `gorm:"not null;default:10" json:"max_number_of_players"`
	TournamentID   uint      `gorm:"not null" json:"tournament_id"`
	Date           time.Time `gorm:"not null" json:"date"`
	Status         string    `gorm:"size:20;not null;default:SCHEDULED" json:"status"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	OriginalSource string    `gorm:"size:255" json:"original_source,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Tournament *Tournament  `gorm:"foreignKey:TournamentID;references:ID" json:"tournament,omitempty"`
	Teams      []Team       `gorm:"many2many:team_matches" json:"teams,omitempty"`
	Stats      []MatchStats `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE" json:"stats,omitempty"`
	Veto       []MapPickBan `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE" json:"veto,omitempty"`
	Result     []MapResult  `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE" json:"result,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// ValidBestOf reports whether n is a playable series length.
func ValidBestOf(n int) bool {
	return n == 1 || n == 2 || n == 3 || n == 5
}

type PaginatedMatchesResponse struct {
	Data       []Match `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}

type CreateMatchRequest struct {
	BestOf         int       `json:"best_of" binding:"required"`
	MaxPlayers     int       `json:"max_number_of_players,omitempty"`
	TournamentName string    `json:"tournament_name" binding:"required"`
	Date           time.Time `json:"date" binding:"required"`
	Description    string    `json:"description,omitempty"`
}

type UpdateMatchRequest struct {
	Date        *time.Time `json:"date,omitempty"`
	Description *string    `json:"description,omitempty"`
}
