package models

import (
	"time"
)

// StatsFilter constrains which stat rows feed a player aggregation.
type StatsFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	TournamentIDs []uint
	Detailed      bool
}

// GeneralPlayerStats is the compact per-player projection.
type GeneralPlayerStats struct {
	Nickname            string  `json:"nickname"`
	TotalMatches        int     `json:"total_matches"`
	Kills               int     `json:"Kills"`
	Assists             int     `json:"Assists"`
	Deaths              int     `json:"Deaths"`
	Headshots           int     `json:"Headshots"`
	HeadshotsPercentage float64 `json:"Headshots %"`
	ADR                 float64 `json:"ADR"`
	KDRatio             float64 `json:"K/D Ratio"`
	KRRatio             float64 `json:"K/R Ratio"`
	Wins                int     `json:"Wins"`
	WinsPercentage      float64 `json:"Wins %"`
}

// DetailedPlayerStats passes the full provider vocabulary through, with
// the derived rates computed at this boundary only.
type DetailedPlayerStats struct {
	Nickname     string `json:"nickname"`
	TotalMatches int    `json:"total_matches"`

	Kills       int `json:"Kills"`
	Assists     int `json:"Assists"`
	Deaths      int `json:"Deaths"`
	Headshots   int `json:"Headshots"`
	MVPs        int `json:"MVPs"`
	Damage      int `json:"Damage"`
	DoubleKills int `json:"Double Kills"`
	TripleKills int `json:"Triple Kills"`
	QuadroKills int `json:"Quadro Kills"`
	PentaKills  int `json:"Penta Kills"`
	ClutchKills int `json:"Clutch Kills"`
	OneVOne     int `json:"1v1Count"`
	OneVTwo     int `json:"1v2Count"`
	OneVOneWins int `json:"1v1Wins"`
	OneVTwoWins int `json:"1v2Wins"`
	FirstKills  int `json:"First Kills"`
	EntryCount  int `json:"Entry Count"`
	EntryWins   int `json:"Entry Wins"`
	SniperKills int `json:"Sniper Kills"`
	PistolKills int `json:"Pistol Kills"`
	KnifeKills  int `json:"Knife Kills"`
	ZeusKills   int `json:"Zeus Kills"`

	UtilityCount     int `json:"Utility Count"`
	UtilitySuccesses int `json:"Utility Successes"`
	UtilityEnemies   int `json:"Utility Enemies"`
	UtilityDamage    int `json:"Utility Damage"`
	FlashCount       int `json:"Flash Count"`
	EnemiesFlashed   int `json:"Enemies Flashed"`
	FlashSuccesses   int `json:"Flash Successes"`

	Wins           int     `json:"Wins"`
	WinsPercentage float64 `json:"Wins %"`

	HeadshotsPercentage float64 `json:"Headshots %"`
	ADR                 float64 `json:"ADR"`
	KDRatio             float64 `json:"K/D Ratio"`
	KRRatio             float64 `json:"K/R Ratio"`

	OneVOneWinRate   float64 `json:"Match 1v1 Win Rate"`
	OneVTwoWinRate   float64 `json:"Match 1v2 Win Rate"`
	EntryRate        float64 `json:"Match Entry Rate"`
	EntrySuccessRate float64 `json:"Match Entry Success Rate"`

	SniperKillRatePerRound float64 `json:"Sniper Kill Rate per Round"`
	SniperKillRatePerMatch float64 `json:"Sniper Kill Rate per Match"`

	UtilityUsagePerRound          float64 `json:"Utility Usage per Round"`
	UtilityDamagePerRoundInMatch  float64 `json:"Utility Damage per Round in a Match"`
	FlashesPerRoundInMatch        float64 `json:"Flashes per Round in a Match"`
	EnemiesFlashedPerRoundInMatch float64 `json:"Enemies Flashed per Round in a Match"`
	FlashSuccessRatePerMatch      float64 `json:"Flash Success Rate per Match"`
}
