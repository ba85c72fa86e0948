package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
	"github.com/Zattox/RavensPedia-sub000/packages/core/services"
)

type MatchHandler struct {
	matchService   *services.MatchService
	mapInfoService *services.MapInfoService
	ingestService  *services.StatsIngestService
}

func NewMatchHandler(matchService *services.MatchService, mapInfoService *services.MapInfoService, ingestService *services.StatsIngestService) *MatchHandler {
	return &MatchHandler{
		matchService:   matchService,
		mapInfoService: mapInfoService,
		ingestService:  ingestService,
	}
}

// GetMatches lists matches
// @Summary List matches
// @Description Get a paginated list of matches
// @Tags matches
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} models.PaginatedMatchesResponse
// @Router /matches/ [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	page, pageSize := parsePagination(c)
	response, err := h.matchService.GetAllMatches(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetMatch gets a match by id
// @Summary Get match
// @Description Get a match with teams, stats, veto and map results
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/ [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	match, err := h.matchService.GetMatchByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// CreateMatch creates a match
// @Summary Create match
// @Description Create a new match inside a tournament
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/ [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.CreateMatch(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

// UpdateMatch updates a match
// @Summary Update match
// @Description Update a match's date or description
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param match body models.UpdateMatchRequest true "Match update data"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/ [patch]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.UpdateMatch(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// DeleteMatch deletes a match
// @Summary Delete match
// @Description Delete a match and cascade its stats, veto and results
// @Tags matches
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/ [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.matchService.DeleteMatch(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddTeamToMatch registers a side
// @Summary Add team to match
// @Description Register one of the two sides of a match
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Param team_name path string true "Team name"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/add_team/{team_name}/ [patch]
func (h *MatchHandler) AddTeamToMatch(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	match, err := h.matchService.AddTeamToMatch(id, c.Param("team_name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// DeleteTeamFromMatch removes a side
// @Summary Remove team from match
// @Description Remove a side from the match
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Param team_name path string true "Team name"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/delete_team/{team_name}/ [patch]
func (h *MatchHandler) DeleteTeamFromMatch(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	match, err := h.matchService.DeleteTeamFromMatch(id, c.Param("team_name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// AddFaceitStats ingests FACEIT statistics
// @Summary Ingest FACEIT statistics
// @Description Pull per-map, per-player stats from a FACEIT room URL
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Param faceit_url query string true "FACEIT room URL"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/stats/{id}/add_faceit_stats/ [patch]
func (h *MatchHandler) AddFaceitStats(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	faceitURL := c.Query("faceit_url")
	if faceitURL == "" {
		respondError(c, apperrors.BadInput("Invalid faceit_url parameter"))
		return
	}

	match, err := h.ingestService.AddMatchStatsFromFaceit(c.Request.Context(), id, faceitURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// AddManualStats inserts one stats row
// @Summary Add manual statistics
// @Description Insert a single stats row from a trusted admin body
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param stats body models.ManualMatchStatsRequest true "Stats row"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/stats/{id}/add_stats_manual/ [patch]
func (h *MatchHandler) AddManualStats(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req models.ManualMatchStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.ingestService.AddManualMatchStats(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// DeleteLastStats pops the most recent stats row
// @Summary Delete last statistics row
// @Description Remove the most recent stats row of a match
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/stats/{id}/delete_last_stats/ [patch]
func (h *MatchHandler) DeleteLastStats(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	match, err := h.ingestService.DeleteLastMatchStats(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// AddPickBan appends a veto entry
// @Summary Add pick/ban entry
// @Description Append one entry to the match veto log
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param entry body models.PickBanRequest true "Pick/ban entry"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/stats/{id}/add_pick_ban_info_in_match/ [patch]
func (h *MatchHandler) AddPickBan(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req models.PickBanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.mapInfoService.AddPickBan(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// DeleteLastPickBan pops the veto log tail
// @Summary Delete last pick/ban entry
// @Description Remove the most recent entry of the match veto log
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/stats/{id}/delete_last_pick_ban_info_from_match/ [patch]
func (h *MatchHandler) DeleteLastPickBan(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	match, err := h.mapInfoService.DeleteLastPickBan(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// AddMapResult appends a map score
// @Summary Add map result
// @Description Append one map score, enforcing the CS2 score invariants
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param result body models.MapResultRequest true "Map result"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/stats/{id}/add_map_result_info_in_match/ [patch]
func (h *MatchHandler) AddMapResult(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req models.MapResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.mapInfoService.AddMapResult(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// DeleteLastMapResult pops the result log tail
// @Summary Delete last map result
// @Description Remove the most recent map score of the match
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/stats/{id}/delete_last_map_result_info_from_match/ [patch]
func (h *MatchHandler) DeleteLastMapResult(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	match, err := h.mapInfoService.DeleteLastMapResult(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}
