package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

func seedMatchAt(t *testing.T, db *gorm.DB, tournament *models.Tournament, date time.Time, status string) *models.Match {
	t.Helper()
	match := &models.Match{
		BestOf:       3,
		MaxTeams:     2,
		MaxPlayers:   10,
		TournamentID: tournament.ID,
		Date:         date,
		Status:       status,
	}
	if err := db.Create(match).Error; err != nil {
		t.Fatalf("failed to seed match: %v", err)
	}
	return match
}

func matchStatus(t *testing.T, db *gorm.DB, id uint) string {
	t.Helper()
	var match models.Match
	if err := db.First(&match, id).Error; err != nil {
		t.Fatalf("failed to reload match %d: %v", id, err)
	}
	return match.Status
}

func TestSweepMatchStatuses(t *testing.T) {
	db := newTestDB(t)
	tournament := seedTournament(t, db, "Major")
	now := time.Now()

	future := seedMatchAt(t, db, tournament, now.Add(2*time.Hour), models.StatusInProgress)
	past := seedMatchAt(t, db, tournament, now.Add(-2*time.Hour), models.StatusScheduled)
	futureCompleted := seedMatchAt(t, db, tournament, now.Add(2*time.Hour), models.StatusCompleted)
	pastCompleted := seedMatchAt(t, db, tournament, now.Add(-2*time.Hour), models.StatusCompleted)

	svc := NewScheduleService(db)
	if err := svc.SweepMatchStatuses(now); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if got := matchStatus(t, db, future.ID); got != models.StatusScheduled {
		t.Fatalf("future match = %s, want SCHEDULED", got)
	}
	if got := matchStatus(t, db, past.ID); got != models.StatusInProgress {
		t.Fatalf("past match = %s, want IN_PROGRESS", got)
	}
	// A completed match is never demoted by the sweep.
	if got := matchStatus(t, db, futureCompleted.ID); got != models.StatusCompleted {
		t.Fatalf("future completed match = %s, want COMPLETED", got)
	}
	if got := matchStatus(t, db, pastCompleted.ID); got != models.StatusCompleted {
		t.Fatalf("past completed match = %s, want COMPLETED", got)
	}
}

func TestSweepTournamentStatuses(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	seed := func(name string, start, end time.Time, status string) *models.Tournament {
		tournament := &models.Tournament{
			Name: name, MaxTeams: 8, StartDate: start, EndDate: end, Status: status,
		}
		if err := db.Create(tournament).Error; err != nil {
			t.Fatalf("failed to seed tournament %s: %v", name, err)
		}
		return tournament
	}

	upcoming := seed("Upcoming", now.Add(24*time.Hour), now.Add(48*time.Hour), models.StatusInProgress)
	running := seed("Running", now.Add(-24*time.Hour), now.Add(24*time.Hour), models.StatusScheduled)
	finished := seed("Finished", now.Add(-48*time.Hour), now.Add(-24*time.Hour), models.StatusInProgress)

	svc := NewScheduleService(db)
	if err := svc.SweepTournamentStatuses(now); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	check := func(id uint, want string) {
		var tournament models.Tournament
		if err := db.First(&tournament, id).Error; err != nil {
			t.Fatalf("failed to reload tournament %d: %v", id, err)
		}
		if tournament.Status != want {
			t.Fatalf("tournament %s = %s, want %s", tournament.Name, tournament.Status, want)
		}
	}
	check(upcoming.ID, models.StatusScheduled)
	check(running.ID, models.StatusInProgress)
	check(finished.ID, models.StatusCompleted)
}

func TestUpdateMatchStatus(t *testing.T) {
	db := newTestDB(t)
	tournament := seedTournament(t, db, "Major")
	match := seedMatch(t, db, tournament, 3)

	svc := NewScheduleService(db)
	if _, err := svc.UpdateMatchStatus(match.ID, models.StatusCompleted); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got := matchStatus(t, db, match.ID); got != models.StatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", got)
	}

	_, err := svc.UpdateMatchStatus(match.ID, "FINISHED")
	wantErrMessage(t, err, "Status must be one of SCHEDULED, IN_PROGRESS, COMPLETED")

	_, err = svc.UpdateMatchStatus(999, models.StatusCompleted)
	wantErrMessage(t, err, "Match 999 not found")
}

func TestUpdateTournamentStatus(t *testing.T) {
	db := newTestDB(t)
	seedTournament(t, db, "Major")

	svc := NewScheduleService(db)
	updated, err := svc.UpdateTournamentStatus("Major", models.StatusCompleted)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != models.StatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", updated.Status)
	}

	_, err = svc.UpdateTournamentStatus("Ghost", models.StatusCompleted)
	wantErrMessage(t, err, "Tournament Ghost not found")
}

func TestScheduleViews(t *testing.T) {
	db := newTestDB(t)
	tournament := seedTournament(t, db, "Major")
	now := time.Now()

	older := seedMatchAt(t, db, tournament, now.Add(-48*time.Hour), models.StatusCompleted)
	newer := seedMatchAt(t, db, tournament, now.Add(-24*time.Hour), models.StatusCompleted)
	soon := seedMatchAt(t, db, tournament, now.Add(24*time.Hour), models.StatusScheduled)
	later := seedMatchAt(t, db, tournament, now.Add(48*time.Hour), models.StatusScheduled)
	seedMatchAt(t, db, tournament, now, models.StatusInProgress)

	svc := NewScheduleService(db)

	completed, err := svc.GetLastCompletedMatches(10)
	if err != nil {
		t.Fatalf("completed view failed: %v", err)
	}
	if len(completed) != 2 || completed[0].ID != newer.ID || completed[1].ID != older.ID {
		t.Fatalf("expected completed matches newest first, got %+v", completed)
	}

	upcoming, err := svc.GetUpcomingScheduledMatches(10)
	if err != nil {
		t.Fatalf("upcoming view failed: %v", err)
	}
	if len(upcoming) != 2 || upcoming[0].ID != soon.ID || upcoming[1].ID != later.ID {
		t.Fatalf("expected upcoming matches soonest first, got %+v", upcoming)
	}

	inProgress, err := svc.GetMatchesInProgress(1)
	if err != nil {
		t.Fatalf("in-progress view failed: %v", err)
	}
	if len(inProgress) != 1 {
		t.Fatalf("expected 1 in-progress match, got %d", len(inProgress))
	}

	tournaments, err := svc.GetTournamentsByStatus(models.StatusInProgress, 10)
	if err != nil {
		t.Fatalf("tournament view failed: %v", err)
	}
	if len(tournaments) != 1 || tournaments[0].ID != tournament.ID {
		t.Fatalf("expected the seeded tournament, got %+v", tournaments)
	}

	_, err = svc.GetTournamentsByStatus("FINISHED", 10)
	wantErrMessage(t, err, "Status must be one of SCHEDULED, IN_PROGRESS, COMPLETED")
}
