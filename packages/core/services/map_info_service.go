package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

// MapInfoService maintains the two ordered logs of a match: the pick/ban
// veto and the per-map score results.
type MapInfoService struct {
	db           *gorm.DB
	matchService *MatchService
}

func NewMapInfoService(db *gorm.DB, matchService *MatchService) *MapInfoService {
	return &MapInfoService{
		db:           db,
		matchService: matchService,
	}
}

// AddPickBan appends one veto entry, validating the budget, the initiator
// and that each map appears at most once in the log.
func (s *MapInfoService) AddPickBan(matchID uint, req models.PickBanRequest) (*models.Match, error) {
	match, err := s.matchService.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}

	if !models.ValidMapName(req.Map) {
		return nil, apperrors.BadInput("Map %s is not in the map pool", req.Map)
	}
	if !models.ValidMapStatus(req.Status) {
		return nil, apperrors.BadInput("Map status must be one of Banned, Picked, Default")
	}
	if len(match.Veto) >= models.VetoBudget {
		return nil, apperrors.BadInput("Cannot add more than %d pick/ban entries for a match.", models.VetoBudget)
	}

	teamNames := make([]string, len(match.Teams))
	initiatorOK := false
	for i, t := range match.Teams {
		teamNames[i] = t.Name
		if t.Name == req.Initiator {
			initiatorOK = true
		}
	}
	if !initiatorOK {
		return nil, apperrors.BadInput("Initiator must be one of the teams in the match: %s", strings.Join(teamNames, ", "))
	}

	for _, entry := range match.Veto {
		if entry.Map == req.Map {
			return nil, apperrors.BadInput("Map %s must be once in the match veto", req.Map)
		}
	}

	entry := models.MapPickBan{
		MatchID:   match.ID,
		Map:       req.Map,
		Status:    req.Status,
		Initiator: req.Initiator,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return s.matchService.GetMatchByID(matchID)
}

// DeleteLastPickBan pops the tail of the veto log.
func (s *MapInfoService) DeleteLastPickBan(matchID uint) (*models.Match, error) {
	match, err := s.matchService.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}
	if len(match.Veto) == 0 {
		return nil, apperrors.BadInput("No pick/ban entries to delete for the match %d", matchID)
	}

	last := match.Veto[len(match.Veto)-1]
	if err := s.db.Delete(&last).Error; err != nil {
		return nil, err
	}
	return s.matchService.GetMatchByID(matchID)
}

// AddMapResult appends one map score, enforcing the CS2 cross-field
// invariants in the order the client sees them.
func (s *MapInfoService) AddMapResult(matchID uint, req models.MapResultRequest) (*models.Match, error) {
	match, err := s.matchService.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}

	playable := make(map[string]struct{})
	banned := make(map[string]struct{})
	for _, entry := range match.Veto {
		if entry.Status == models.MapStatusBanned {
			banned[entry.Map] = struct{}{}
		} else {
			playable[entry.Map] = struct{}{}
		}
	}
	if _, isBanned := banned[req.Map]; isBanned {
		return nil, apperrors.BadInput("Map %s is banned and cannot have a result.", req.Map)
	}
	if _, ok := playable[req.Map]; !ok {
		return nil, apperrors.BadInput("Map %s was not picked in the match veto.", req.Map)
	}

	if len(match.Result) >= match.BestOf {
		return nil, apperrors.BadInput("Cannot add more than %d map result entries for this match.", match.BestOf)
	}

	if req.FirstHalfScoreFirstTeam+req.FirstHalfScoreSecondTeam != 12 {
		return nil, apperrors.BadInput("The sum of first half scores for both teams must equal 12.")
	}
	if req.SecondHalfScoreFirstTeam+req.SecondHalfScoreSecondTeam > 12 {
		return nil, apperrors.BadInput("The sum of the second half scores for both teams must be less than or equal to 12.")
	}

	regulationFirst := req.FirstHalfScoreFirstTeam + req.SecondHalfScoreFirstTeam
	regulationSecond := req.FirstHalfScoreSecondTeam + req.SecondHalfScoreSecondTeam
	tied := regulationFirst == 12 && regulationSecond == 12

	if tied {
		diff := req.OvertimeScoreFirstTeam - req.OvertimeScoreSecondTeam
		if diff < 0 {
			diff = -diff
		}
		if req.OvertimeScoreFirstTeam == 0 && req.OvertimeScoreSecondTeam == 0 {
			return nil, apperrors.BadInput("Overtime scores are required when the match is tied 12-12.")
		}
		if diff == 0 || diff > 4 {
			return nil, apperrors.BadInput("The difference of overtime scores must be between 1 and 4.")
		}
	} else if req.OvertimeScoreFirstTeam != 0 || req.OvertimeScoreSecondTeam != 0 {
		return nil, apperrors.BadInput("Overtime scores must be 0 when the match is not tied 12-12.")
	}

	if req.TotalScoreFirstTeam != regulationFirst+req.OvertimeScoreFirstTeam ||
		req.TotalScoreSecondTeam != regulationSecond+req.OvertimeScoreSecondTeam {
		return nil, apperrors.BadInput("The total score of each team must equal the sum of its half and overtime scores.")
	}

	winner := req.TotalScoreFirstTeam
	if req.TotalScoreSecondTeam > winner {
		winner = req.TotalScoreSecondTeam
	}
	if winner < 13 {
		return nil, apperrors.BadInput("The winning team must score at least 13 rounds.")
	}

	result := models.MapResult{
		MatchID:                   match.ID,
		Map:                       req.Map,
		FirstTeam:                 req.FirstTeam,
		SecondTeam:                req.SecondTeam,
		FirstHalfScoreFirstTeam:   req.FirstHalfScoreFirstTeam,
		FirstHalfScoreSecondTeam:  req.FirstHalfScoreSecondTeam,
		SecondHalfScoreFirstTeam:  req.SecondHalfScoreFirstTeam,
		SecondHalfScoreSecondTeam: req.SecondHalfScoreSecondTeam,
		OvertimeScoreFirstTeam:    req.OvertimeScoreFirstTeam,
		OvertimeScoreSecondTeam:   req.OvertimeScoreSecondTeam,
		TotalScoreFirstTeam:       req.TotalScoreFirstTeam,
		TotalScoreSecondTeam:      req.TotalScoreSecondTeam,
	}
	if err := s.db.Create(&result).Error; err != nil {
		return nil, err
	}
	return s.matchService.GetMatchByID(matchID)
}

// DeleteLastMapResult pops the tail of the result log.
func (s *MapInfoService) DeleteLastMapResult(matchID uint) (*models.Match, error) {
	match, err := s.matchService.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}
	if len(match.Result) == 0 {
		return nil, apperrors.BadInput("No map result entries to delete for the match %d", matchID)
	}

	last := match.Result[len(match.Result)-1]
	if err := s.db.Delete(&last).Error; err != nil {
		return nil, err
	}
	return s.matchService.GetMatchByID(matchID)
}
