package services

import (
	"testing"
	"time"

	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

func createRequest(name string) models.CreateTournamentRequest {
	return models.CreateTournamentRequest{
		Name:      name,
		MaxTeams:  2,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 0, 7),
	}
}

func TestCreateTournament(t *testing.T) {
	db := newTestDB(t)
	svc := NewTournamentService(db)

	tournament, err := svc.CreateTournament(createRequest("Major"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if tournament.Status != models.StatusScheduled {
		t.Fatalf("expected SCHEDULED, got %s", tournament.Status)
	}

	_, err = svc.CreateTournament(createRequest("Major"))
	wantErrMessage(t, err, "Tournament Major already exists")

	bad := createRequest("Backwards")
	bad.EndDate = bad.StartDate.AddDate(0, 0, -1)
	_, err = svc.CreateTournament(bad)
	wantErrMessage(t, err, "The start date of the tournament must be before the end date")
}

func TestUpdateTournamentValidatesWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewTournamentService(db)
	if _, err := svc.CreateTournament(createRequest("Major")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	end := time.Now().AddDate(0, 0, -30)
	_, err := svc.UpdateTournament("Major", models.UpdateTournamentRequest{EndDate: &end})
	wantErrMessage(t, err, "The start date of the tournament must be before the end date")
}

func TestAddTeamToTournament(t *testing.T) {
	db := newTestDB(t)
	svc := NewTournamentService(db)
	if _, err := svc.CreateTournament(createRequest("Major")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	alpha := seedTeam(t, db, "Alpha")
	player := seedPlayer(t, db, "veteran", "steam-x")
	if err := db.Model(player).Update("team_id", alpha.ID).Error; err != nil {
		t.Fatalf("failed to put player on team: %v", err)
	}
	seedTeam(t, db, "Beta")
	seedTeam(t, db, "Gamma")

	updated, err := svc.AddTeamToTournament("Major", "Alpha")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(updated.Teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(updated.Teams))
	}

	// Registering the team pulls its roster into the membership.
	var reloaded models.Player
	if err := db.Preload("Tournaments").First(&reloaded, player.ID).Error; err != nil {
		t.Fatalf("failed to reload player: %v", err)
	}
	if len(reloaded.Tournaments) != 1 || reloaded.Tournaments[0].Name != "Major" {
		t.Fatalf("expected player membership in Major, got %+v", reloaded.Tournaments)
	}

	_, err = svc.AddTeamToTournament("Major", "Alpha")
	wantErrMessage(t, err, "The team Alpha is already in the tournament Major")

	if _, err := svc.AddTeamToTournament("Major", "Beta"); err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	_, err = svc.AddTeamToTournament("Major", "Gamma")
	wantErrMessage(t, err, "The maximum number of teams will participate in the tournament")

	_, err = svc.AddTeamToTournament("Major", "Ghosts")
	wantErrMessage(t, err, "Team Ghosts not found")
}

func TestRemoveTeamFromTournament(t *testing.T) {
	db := newTestDB(t)
	svc := NewTournamentService(db)
	if _, err := svc.CreateTournament(createRequest("Major")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	seedTeam(t, db, "Alpha")

	_, err := svc.RemoveTeamFromTournament("Major", "Alpha")
	wantErrMessage(t, err, "The team Alpha is not in the tournament Major")

	if _, err := svc.AddTeamToTournament("Major", "Alpha"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	updated, err := svc.RemoveTeamFromTournament("Major", "Alpha")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(updated.Teams) != 0 {
		t.Fatalf("expected no teams, got %d", len(updated.Teams))
	}
}

func TestTournamentResults(t *testing.T) {
	db := newTestDB(t)
	svc := NewTournamentService(db)
	if _, err := svc.CreateTournament(createRequest("Major")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	seedTeam(t, db, "Alpha")
	if _, err := svc.AddTeamToTournament("Major", "Alpha"); err != nil {
		t.Fatalf("team add failed: %v", err)
	}

	if _, err := svc.AddResult("Major", models.TournamentResultRequest{Place: 1, Prize: "$5,000"}); err != nil {
		t.Fatalf("add result failed: %v", err)
	}
	_, err := svc.AddResult("Major", models.TournamentResultRequest{Place: 1, Prize: "$1,000"})
	wantErrMessage(t, err, "Place 1 already exists in the tournament Major")

	if _, err := svc.AddResult("Major", models.TournamentResultRequest{Place: 2, Prize: "$2,000"}); err != nil {
		t.Fatalf("second result failed: %v", err)
	}
	_, err = svc.AddResult("Major", models.TournamentResultRequest{Place: 3, Prize: "$500"})
	wantErrMessage(t, err, "Cannot add more than 2 results for this tournament.")

	updated, err := svc.AssignTeamToResult("Major", 1, "Alpha")
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	var assigned *models.TournamentResult
	for i := range updated.Results {
		if updated.Results[i].Place == 1 {
			assigned = &updated.Results[i]
		}
	}
	if assigned == nil || assigned.TeamID == nil {
		t.Fatalf("expected place 1 to carry a team, got %+v", updated.Results)
	}

	_, err = svc.AssignTeamToResult("Major", 2, "Alpha")
	wantErrMessage(t, err, "The team Alpha already has a place in the tournament Major")
	_, err = svc.AssignTeamToResult("Major", 5, "Alpha")
	wantErrMessage(t, err, "Place 5 not found in the tournament Major")
	_, err = svc.AssignTeamToResult("Major", 2, "Beta")
	wantErrMessage(t, err, "The team Beta does not participate in the tournament Major")

	updated, err = svc.RemoveTeamFromResult("Major", 1)
	if err != nil {
		t.Fatalf("unassign failed: %v", err)
	}
	for _, r := range updated.Results {
		if r.Place == 1 && r.TeamID != nil {
			t.Fatalf("expected place 1 to be empty again")
		}
	}

	// DeleteLastResult drops the greatest place, not the newest row.
	updated, err = svc.DeleteLastResult("Major")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(updated.Results) != 1 || updated.Results[0].Place != 1 {
		t.Fatalf("expected only place 1 to remain, got %+v", updated.Results)
	}

	if _, err := svc.DeleteLastResult("Major"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, err = svc.DeleteLastResult("Major")
	wantErrMessage(t, err, "No results to delete for the tournament Major")
}
