package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	authModels "github.com/Zattox/RavensPedia-sub000/packages/auth/models"
	authUtils "github.com/Zattox/RavensPedia-sub000/packages/auth/utils"
	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData seeds users, teams with rosters, a tournament with
// matches, and stats rows for the completed matches.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	if err := f.generateUsers(); err != nil {
		return fmt.Errorf("failed to generate users: %w", err)
	}

	teams, err := f.generateTeams()
	if err != nil {
		return fmt.Errorf("failed to generate teams: %w", err)
	}

	tournament, err := f.generateTournament(teams)
	if err != nil {
		return fmt.Errorf("failed to generate tournament: %w", err)
	}

	if err := f.generateMatches(tournament, teams); err != nil {
		return fmt.Errorf("failed to generate matches: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	return nil
}

// ClearAllData wipes every fixture table in dependency order.
func (f *Fixtures) ClearAllData() error {
	tables := []string{
		"match_stats", "map_results", "map_pick_bans",
		"team_matches", "player_tournaments", "team_tournaments",
		"tournament_results", "matches", "team_map_stats",
		"news", "players", "teams", "tournaments", "tokens", "users",
	}
	for _, table := range tables {
		if err := f.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func (f *Fixtures) generateUsers() error {
	seed := []struct {
		email string
		role  string
	}{
		{"superadmin@ravenspedia.local", authModels.RoleSuperAdmin},
		{"admin@ravenspedia.local", authModels.RoleAdmin},
		{"user@ravenspedia.local", authModels.RoleUser},
	}

	for _, s := range seed {
		hashed, err := authUtils.HashPassword("password123")
		if err != nil {
			return err
		}
		user := authModels.User{
			Email:    s.email,
			Password: hashed,
			Role:     s.role,
		}
		if err := f.db.Where("email = ?", s.email).FirstOrCreate(&user).Error; err != nil {
			return err
		}
	}
	return nil
}

func (f *Fixtures) generateTeams() ([]models.Team, error) {
	names := []string{"Ravens", "Falcons", "Wolves", "Sharks"}

	teams := make([]models.Team, 0, len(names))
	for i, name := range names {
		team := models.Team{
			Name:        name,
			MaxPlayers:  5,
			Description: fmt.Sprintf("Fixture team %s", name),
		}
		if err := f.db.Where("name = ?", name).FirstOrCreate(&team).Error; err != nil {
			return nil, err
		}

		for j := 0; j < 5; j++ {
			elo := 1000 + rand.Intn(2000)
			player := models.Player{
				Nickname:  fmt.Sprintf("%s_p%d", name[:4], j+1),
				SteamID:   fmt.Sprintf("7656119%d%04d", i, j),
				FaceitElo: &elo,
				TeamID:    &team.ID,
			}
			if err := f.db.Where("nickname = ?", player.Nickname).FirstOrCreate(&player).Error; err != nil {
				return nil, err
			}
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func (f *Fixtures) generateTournament(teams []models.Team) (*models.Tournament, error) {
	tournament := models.Tournament{
		Name:      "Ravens Invitational",
		Prize:     "$10,000",
		MaxTeams:  8,
		StartDate: time.Now().AddDate(0, 0, -7),
		EndDate:   time.Now().AddDate(0, 0, 7),
		Status:    models.StatusInProgress,
	}
	if err := f.db.Where("name = ?", tournament.Name).FirstOrCreate(&tournament).Error; err != nil {
		return nil, err
	}

	for i := range teams {
		if err := f.db.Model(&tournament).Association("Teams").Append(&teams[i]); err != nil {
			return nil, err
		}
	}
	return &tournament, nil
}

func (f *Fixtures) generateMatches(tournament *models.Tournament, teams []models.Team) error {
	for i := 0; i+1 < len(teams); i += 2 {
		match := models.Match{
			BestOf:       3,
			MaxTeams:     2,
			MaxPlayers:   10,
			TournamentID: tournament.ID,
			Date:         time.Now().AddDate(0, 0, -i-1),
			Status:       models.StatusCompleted,
		}
		if err := f.db.Create(&match).Error; err != nil {
			return err
		}
		if err := f.db.Model(&match).Association("Teams").Append(&teams[i], &teams[i+1]); err != nil {
			return err
		}

		var players []models.Player
		if err := f.db.Where("team_id IN ?", []uint{teams[i].ID, teams[i+1].ID}).Find(&players).Error; err != nil {
			return err
		}
		for round := 1; round <= 2; round++ {
			for _, p := range players {
				kills := 5 + rand.Intn(25)
				deaths := 5 + rand.Intn(20)
				row := models.MatchStats{
					MatchID:      match.ID,
					PlayerID:     p.ID,
					RoundOfMatch: round,
					Nickname:     p.Nickname,
					Map:          models.MapPool[rand.Intn(len(models.MapPool))],
					Stats: datatypes.JSONMap{
						models.StatKills:      kills,
						models.StatAssists:    rand.Intn(10),
						models.StatDeaths:     deaths,
						models.StatADR:        50 + rand.Float64()*50,
						models.StatHeadshotsP: rand.Float64() * 100,
						models.StatResult:     rand.Intn(2),
					},
				}
				if err := f.db.Create(&row).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}
