package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// The pool is pinned to one connection so every query sees the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Team{},
		&models.Player{},
		&models.Tournament{},
		&models.TournamentResult{},
		&models.Match{},
		&models.MatchStats{},
		&models.MapPickBan{},
		&models.MapResult{},
		&models.TeamMapStats{},
		&models.News{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return db
}

func seedTournament(t *testing.T, db *gorm.DB, name string) *models.Tournament {
	t.Helper()
	tournament := &models.Tournament{
		Name:      name,
		MaxTeams:  8,
		StartDate: time.Now().AddDate(0, 0, -1),
		EndDate:   time.Now().AddDate(0, 0, 1),
		Status:    models.StatusInProgress,
	}
	if err := db.Create(tournament).Error; err != nil {
		t.Fatalf("failed to seed tournament %s: %v", name, err)
	}
	return tournament
}

func seedTeam(t *testing.T, db *gorm.DB, name string) *models.Team {
	t.Helper()
	team := &models.Team{Name: name, MaxPlayers: 5}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to seed team %s: %v", name, err)
	}
	return team
}

func seedPlayer(t *testing.T, db *gorm.DB, nickname, steamID string) *models.Player {
	t.Helper()
	player := &models.Player{Nickname: nickname, SteamID: steamID}
	if err := db.Create(player).Error; err != nil {
		t.Fatalf("failed to seed player %s: %v", nickname, err)
	}
	return player
}

func seedMatch(t *testing.T, db *gorm.DB, tournament *models.Tournament, bestOf int) *models.Match {
	t.Helper()
	match := &models.Match{
		BestOf:       bestOf,
		MaxTeams:     2,
		MaxPlayers:   10,
		TournamentID: tournament.ID,
		Date:         time.Now().Add(-time.Hour),
		Status:       models.StatusScheduled,
	}
	if err := db.Create(match).Error; err != nil {
		t.Fatalf("failed to seed match: %v", err)
	}
	return match
}

func wantErrMessage(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("expected error %q, got %q", want, err.Error())
	}
}
