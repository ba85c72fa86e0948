package models

import (
	"time"
)

// MaxNicknameLen mirrors the players.nickname column size.
const MaxNicknameLen = 12

type Player struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nickname  string    `gorm:"size:12;uniqueIndex;not null" json:"nickname"`
	Name      string    `gorm:"size:50" json:"name,omitempty"`
	Surname   string    `gorm:"size:50" json:"surname,omitempty"`
	SteamID   string    `gorm:"size:50;uniqueIndex;not null" json:"steam_id"`
	FaceitID  *string   `gorm:"size:50;uniqueIndex" json:"faceit_id,omitempty"`
	FaceitElo *int      `json:"faceit_elo,omitempty"`
	TeamID    *uint     `json:"team_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Team        *Team        `gorm:"foreignKey:TeamID;references:ID" json:"team,omitempty"`
	Stats       []MatchStats `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"stats,omitempty"`
	Tournaments []Tournament `gorm:"many2many:player_tournaments" json:"tournaments,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

type PaginatedPlayersResponse struct {
	Data       []Player `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}

type CreatePlayerRequest struct {
	Nickname string `json:"nickname" binding:"required,max=12"`
	Name     string `json:"name,omitempty"`
	Surname  string `json:"surname,omitempty"`
	SteamID  string `json:"steam_id" binding:"required"`
}

type UpdatePlayerRequest struct {
	Nickname *string `json:"nickname,omitempty" binding:"omitempty,max=12"`
	Name     *string `json:"name,omitempty"`
	Surname  *string `json:"surname,omitempty"`
}
