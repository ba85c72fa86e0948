package models

import (
	"time"
)

// MapPool is the active duty map set.
var MapPool = []string{"Anubis", "Dust2", "Mirage", "Nuke", "Vertigo", "Ancient", "Inferno", "Train"}

// ValidMapName reports whether m belongs to the active map pool.
func ValidMapName(m string) bool {
	for _, name := range MapPool {
		if name == m {
			return true
		}
	}
	return false
}

// Pick/ban statuses in the veto log.
const (
	MapStatusBanned  = "Banned"
	MapStatusPicked  = "Picked"
	MapStatusDefault = "Default"
)

// ValidMapStatus reports whether s is one of the veto statuses.
func ValidMapStatus(s string) bool {
	return s == MapStatusBanned || s == MapStatusPicked || s == MapStatusDefault
}

// VetoBudget is the number of entries a full pick/ban log holds.
const VetoBudget = 7

// MapPickBan is one ordered entry of a match's veto log.
type MapPickBan struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID   uint      `gorm:"not null;index" json:"match_id"`
	Map       string    `gorm:"size:20;not null" json:"map"`
	Status    string    `gorm:"size:10;not null" json:"map_status"`
	Initiator string    `gorm:"size:15;not null" json:"initiator"`
	CreatedAt time.Time `json:"created_at"`
}

func (MapPickBan) TableName() string {
	return "map_pick_bans"
}

// MapResult is the final score of one played map. Teams are referenced by
// name as they appeared in the match at the time the result was entered.
type MapResult struct {
	ID                        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID                   uint      `gorm:"not null;index" json:"match_id"`
	Map                       string    `gorm:"size:20;not null" json:"map"`
	FirstTeam                 string    `gorm:"size:15;not null" json:"first_team"`
	SecondTeam                string    `gorm:"size:15;not null" json:"second_team"`
	FirstHalfScoreFirstTeam   int       `gorm:"not null" json:"first_half_score_first_team"`
	FirstHalfScoreSecondTeam  int       `gorm:"not null" json:"first_half_score_second_team"`
	SecondHalfScoreFirstTeam  int       `gorm:"not null" json:"second_half_score_first_team"`
	SecondHalfScoreSecondTeam int       `gorm:"not null" json:"second_half_score_second_team"`
	OvertimeScoreFirstTeam    int       `gorm:"not null;default:0" json:"overtime_score_first_team"`
	OvertimeScoreSecondTeam   int       `gorm:"not null;default:0" json:"overtime_score_second_team"`
	TotalScoreFirstTeam       int       `gorm:"not null" json:"total_score_first_team"`
	TotalScoreSecondTeam      int       `gorm:"not null" json:"total_score_second_team"`
	CreatedAt                 time.Time `json:"created_at"`
}

func (MapResult) TableName() string {
	return "map_results"
}

type PickBanRequest struct {
	Map       string `json:"map" binding:"required"`
	Status    string `json:"map_status" binding:"required"`
	Initiator string `json:"initiator" binding:"required"`
}

type MapResultRequest struct {
	Map                       string `json:"map" binding:"required"`
	FirstTeam                 string `json:"first_team" binding:"required"`
	SecondTeam                string `json:"second_team" binding:"required"`
	FirstHalfScoreFirstTeam   int    `json:"first_half_score_first_team" binding:"min=0"`
	FirstHalfScoreSecondTeam  int    `json:"first_half_score_second_team" binding:"min=0"`
	SecondHalfScoreFirstTeam  int    `json:"second_half_score_first_team" binding:"min=0"`
	SecondHalfScoreSecondTeam int    `json:"second_half_score_second_team" binding:"min=0"`
	OvertimeScoreFirstTeam    int    `json:"overtime_score_first_team" binding:"min=0"`
	OvertimeScoreSecondTeam   int    `json:"overtime_score_second_team" binding:"min=0"`
	TotalScoreFirstTeam       int    `json:"total_score_first_team" binding:"min=0"`
	TotalScoreSecondTeam      int    `json:"total_score_second_team" binding:"min=0"`
}
