package models

import (
	"time"

	"gorm.io/datatypes"
)

// Provider stat keys used in MatchStats.Stats. The full vocabulary is
// stored verbatim under the provider's names; only the keys the manual
// entry path and the aggregators address directly are named here.
const (
	StatKills       = "Kills"
	StatAssists     = "Assists"
	StatDeaths      = "Deaths"
	StatHeadshots   = "Headshots"
	StatHeadshotsP  = "Headshots %"
	StatADR         = "ADR"
	StatKDRatio     = "K/D Ratio"
	StatKRRatio     = "K/R Ratio"
	StatResult      = "Result"
	StatMVPs        = "MVPs"
	StatDamage      = "Damage"
	StatDoubleKills = "Double Kills"
	StatTripleKills = "Triple Kills"
	StatQuadroKills = "Quadro Kills"
	StatPentaKills  = "Penta Kills"
	StatClutchKills = "Clutch Kills"
	Stat1v1Count    = "1v1Count"
	Stat1v2Count    = "1v2Count"
	Stat1v1Wins     = "1v1Wins"
	Stat1v2Wins     = "1v2Wins"
	StatFirstKills  = "First Kills"
	StatEntryCount  = "Entry Count"
	StatEntryWins   = "Entry Wins"
	StatSniperKills = "Sniper Kills"
	StatSniperKRR   = "Sniper Kill Rate per Round"
	StatSniperKRM   = "Sniper Kill Rate per Match"
	StatPistolKills = "Pistol Kills"
	StatKnifeKills  = "Knife Kills"
	StatZeusKills   = "Zeus Kills"
	StatUtilCount   = "Utility Count"
	StatUtilSucc    = "Utility Successes"
	StatUtilEnemies = "Utility Enemies"
	StatUtilDamage  = "Utility Damage"
	StatUtilUsageR  = "Utility Usage per Round"
	StatUtilDmgR    = "Utility Damage per Round in a Match"
	StatFlashCount  = "Flash Count"
	StatEnemiesFl   = "Enemies Flashed"
	StatFlashSucc   = "Flash Successes"
	StatFlashesR    = "Flashes per Round in a Match"
	StatEnemiesFlR  = "Enemies Flashed per Round in a Match"
	StatFlashSuccR  = "Flash Success Rate per Match"
)

// MatchStats is one player's line for one map of a match. The keyed
// statistics keep the provider's names verbatim in a JSON column.
type MatchStats struct {
	ID           uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID      uint              `gorm:"not null;uniqueIndex:idx_match_player_round,priority:1" json:"match_id"`
	PlayerID     uint              `gorm:"not null;uniqueIndex:idx_match_player_round,priority:2" json:"player_id"`
	RoundOfMatch int               `gorm:"not null;uniqueIndex:idx_match_player_round,priority:3" json:"round_of_match"`
	Nickname     string            `gorm:"size:12;not null" json:"nickname"`
	Map          string            `gorm:"size:20;not null" json:"map"`
	Stats        datatypes.JSONMap `gorm:"not null" json:"stats"`
	CreatedAt    time.Time         `json:"created_at"`

	// Relationships
	Match  *Match  `gorm:"foreignKey:MatchID;references:ID" json:"match,omitempty"`
	Player *Player `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
}

func (MatchStats) TableName() string {
	return "match_stats"
}

// ManualMatchStatsRequest is the trusted admin body for a single stats row.
type ManualMatchStatsRequest struct {
	Nickname     string  `json:"nickname" binding:"required"`
	RoundOfMatch int     `json:"round_of_match" binding:"required,min=1"`
	Map          string  `json:"map" binding:"required"`
	Result       int     `json:"Result" binding:"min=0,max=1"`
	Kills        int     `json:"Kills" binding:"min=0"`
	Assists      int     `json:"Assists" binding:"min=0"`
	Deaths       int     `json:"Deaths" binding:"min=0"`
	ADR          float64 `json:"ADR" binding:"min=0"`
	Headshots    float64 `json:"Headshots %" binding:"min=0,max=100"`
}
