package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

func newSearchFixture(t *testing.T) (*gorm.DB, *SearchService) {
	t.Helper()
	db := newTestDB(t)

	ivan := &models.Player{Nickname: "zattox", Name: "Иван", Surname: "Петров", SteamID: "s1"}
	john := &models.Player{Nickname: "JohnCS", Name: "John", Surname: "Smith", SteamID: "s2"}
	for _, p := range []*models.Player{ivan, john} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("failed to seed player: %v", err)
		}
	}
	seedTeam(t, db, "Ravens")
	seedTournament(t, db, "Ravens Invitational")

	return db, NewSearchService(db)
}

func TestSearchCyrillicCaseInsensitive(t *testing.T) {
	_, svc := newSearchFixture(t)

	res, err := svc.Search("иВАН")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(res.Players) != 1 || res.Players[0].Nickname != "zattox" {
		t.Fatalf("expected the Cyrillic-named player, got %+v", res.Players)
	}
	if len(res.Teams) != 0 || len(res.Tournaments) != 0 {
		t.Fatalf("expected no team or tournament hits")
	}
}

func TestSearchMixedCase(t *testing.T) {
	_, svc := newSearchFixture(t)

	res, err := svc.Search("JOHN")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(res.Players) != 1 || res.Players[0].Nickname != "JohnCS" {
		t.Fatalf("expected JohnCS, got %+v", res.Players)
	}
}

func TestSearchAcrossKinds(t *testing.T) {
	_, svc := newSearchFixture(t)

	res, err := svc.Search("ravens")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(res.Teams) != 1 || len(res.Tournaments) != 1 {
		t.Fatalf("expected one team and one tournament, got %d/%d", len(res.Teams), len(res.Tournaments))
	}
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	_, svc := newSearchFixture(t)

	res, err := svc.Search("")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(res.Players) != 2 || len(res.Teams) != 1 || len(res.Tournaments) != 1 {
		t.Fatalf("expected every entity, got %d/%d/%d", len(res.Players), len(res.Teams), len(res.Tournaments))
	}
}

func TestSearchNoHitsReturnsEmptySlices(t *testing.T) {
	_, svc := newSearchFixture(t)

	res, err := svc.Search("nothing-matches-this")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Players == nil || res.Teams == nil || res.Tournaments == nil {
		t.Fatal("expected empty slices, got nil")
	}
	if len(res.Players) != 0 || len(res.Teams) != 0 || len(res.Tournaments) != 0 {
		t.Fatalf("expected no hits, got %d/%d/%d", len(res.Players), len(res.Teams), len(res.Tournaments))
	}
}
