package services

import (
	"testing"

	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

func TestCreateTeam(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	if _, err := svc.CreateTeam(models.CreateTeamRequest{Name: "Alpha", MaxPlayers: 5}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err := svc.CreateTeam(models.CreateTeamRequest{Name: "Alpha", MaxPlayers: 5})
	wantErrMessage(t, err, "Team Alpha already exists")
}

func TestAddPlayerToTeam(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	if _, err := svc.CreateTeam(models.CreateTeamRequest{Name: "Alpha", MaxPlayers: 2}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	seedPlayer(t, db, "one", "steam-1")
	seedPlayer(t, db, "two", "steam-2")
	seedPlayer(t, db, "three", "steam-3")

	updated, err := svc.AddPlayerToTeam("Alpha", "one")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(updated.Players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(updated.Players))
	}

	_, err = svc.AddPlayerToTeam("Alpha", "one")
	wantErrMessage(t, err, "The player one has already joined Alpha")

	if _, err := svc.AddPlayerToTeam("Alpha", "two"); err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	_, err = svc.AddPlayerToTeam("Alpha", "three")
	wantErrMessage(t, err, "The maximum number of players will participate in team")

	_, err = svc.AddPlayerToTeam("Alpha", "ghost")
	wantErrMessage(t, err, "Player ghost not found")
}

func TestRemovePlayerFromTeam(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	if _, err := svc.CreateTeam(models.CreateTeamRequest{Name: "Alpha", MaxPlayers: 5}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	seedPlayer(t, db, "one", "steam-1")

	_, err := svc.RemovePlayerFromTeam("Alpha", "one")
	wantErrMessage(t, err, "The player one is not in team Alpha")

	if _, err := svc.AddPlayerToTeam("Alpha", "one"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	updated, err := svc.RemovePlayerFromTeam("Alpha", "one")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(updated.Players) != 0 {
		t.Fatalf("expected empty roster, got %d", len(updated.Players))
	}
}

func TestTeamAverageEloTracksRoster(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	if _, err := svc.CreateTeam(models.CreateTeamRequest{Name: "Alpha", MaxPlayers: 5}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	one := seedPlayer(t, db, "one", "steam-1")
	two := seedPlayer(t, db, "two", "steam-2")
	if err := db.Model(one).Update("faceit_elo", 2000).Error; err != nil {
		t.Fatalf("failed to set elo: %v", err)
	}
	if err := db.Model(two).Update("faceit_elo", 1000).Error; err != nil {
		t.Fatalf("failed to set elo: %v", err)
	}

	if _, err := svc.AddPlayerToTeam("Alpha", "one"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	updated, err := svc.AddPlayerToTeam("Alpha", "two")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if updated.AverageFaceitElo == nil {
		t.Fatal("expected an average elo")
	}
	approx(t, "average elo", *updated.AverageFaceitElo, 1500)

	updated, err = svc.RemovePlayerFromTeam("Alpha", "two")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if updated.AverageFaceitElo == nil {
		t.Fatal("expected an average elo")
	}
	approx(t, "average elo", *updated.AverageFaceitElo, 2000)
}

func TestUpdateTeamRespectsRosterSize(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	if _, err := svc.CreateTeam(models.CreateTeamRequest{Name: "Alpha", MaxPlayers: 5}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	seedPlayer(t, db, "one", "steam-1")
	seedPlayer(t, db, "two", "steam-2")
	for _, nickname := range []string{"one", "two"} {
		if _, err := svc.AddPlayerToTeam("Alpha", nickname); err != nil {
			t.Fatalf("add %s failed: %v", nickname, err)
		}
	}

	smaller := 1
	_, err := svc.UpdateTeam("Alpha", models.UpdateTeamRequest{MaxPlayers: &smaller})
	wantErrMessage(t, err, "Team Alpha already has 2 players")
}

func TestDeleteTeamFreesRoster(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	if _, err := svc.CreateTeam(models.CreateTeamRequest{Name: "Alpha", MaxPlayers: 5}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	player := seedPlayer(t, db, "one", "steam-1")
	if _, err := svc.AddPlayerToTeam("Alpha", "one"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.DeleteTeam("Alpha"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var reloaded models.Player
	if err := db.First(&reloaded, player.ID).Error; err != nil {
		t.Fatalf("player should survive team deletion: %v", err)
	}
	if reloaded.TeamID != nil {
		t.Fatalf("expected player to be free, still on team %d", *reloaded.TeamID)
	}

	_, err := svc.GetTeamByName("Alpha")
	wantErrMessage(t, err, "Team Alpha not found")
}
