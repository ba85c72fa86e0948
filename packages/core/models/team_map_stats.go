package models

import (
	"time"
)

// TeamMapStats is the materialized per-(team, map) win/loss aggregate,
// refreshed each time team statistics are read.
type TeamMapStats struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID        uint      `gorm:"not null;uniqueIndex:idx_team_map,priority:1" json:"team_id"`
	Map           string    `gorm:"size:20;not null;uniqueIndex:idx_team_map,priority:2" json:"map"`
	MatchesPlayed int       `gorm:"not null;default:0" json:"matches_played"`
	MatchesWon    int       `gorm:"not null;default:0" json:"matches_won"`
	WinRate       float64   `gorm:"not null;default:0" json:"win_rate"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (TeamMapStats) TableName() string {
	return "team_map_stats"
}
