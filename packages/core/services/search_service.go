package services

import (
	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
	"github.com/Zattox/RavensPedia-sub000/packages/core/utils"
)

// SearchService runs a case-insensitive substring search across players,
// teams and tournaments. Matching happens in Go through a Unicode-aware
// lowercase fold so Cyrillic and other scripts behave like ASCII.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{
		db: db,
	}
}

// SearchResponse groups the hits per entity kind.
type SearchResponse struct {
	Players     []models.Player     `json:"players"`
	Teams       []models.Team       `json:"teams"`
	Tournaments []models.Tournament `json:"tournaments"`
}

// Search returns every entity whose display name contains the query.
// An empty query matches everything.
func (s *SearchService) Search(query string) (*SearchResponse, error) {
	var players []models.Player
	if err := s.db.Order("id ASC").Find(&players).Error; err != nil {
		return nil, err
	}
	var teams []models.Team
	if err := s.db.Order("id ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	var tournaments []models.Tournament
	if err := s.db.Order("id ASC").Find(&tournaments).Error; err != nil {
		return nil, err
	}

	out := &SearchResponse{
		Players:     make([]models.Player, 0),
		Teams:       make([]models.Team, 0),
		Tournaments: make([]models.Tournament, 0),
	}
	for _, p := range players {
		if utils.ContainsFold(p.Nickname, query) ||
			utils.ContainsFold(p.Name, query) ||
			utils.ContainsFold(p.Surname, query) {
			out.Players = append(out.Players, p)
		}
	}
	for _, t := range teams {
		if utils.ContainsFold(t.Name, query) {
			out.Teams = append(out.Teams, t)
		}
	}
	for _, t := range tournaments {
		if utils.ContainsFold(t.Name, query) {
			out.Tournaments = append(out.Tournaments, t)
		}
	}
	return out, nil
}
