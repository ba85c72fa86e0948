package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
	"github.com/Zattox/RavensPedia-sub000/packages/core/services"
)

type PlayerHandler struct {
	playerService *services.PlayerService
	statsService  *services.PlayerStatsService
}

func NewPlayerHandler(playerService *services.PlayerService, statsService *services.PlayerStatsService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		statsService:  statsService,
	}
}

// GetPlayers lists players
// @Summary List players
// @Description Get a paginated list of players
// @Tags players
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} models.PaginatedPlayersResponse
// @Router /players/ [get]
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	page, pageSize := parsePagination(c)
	response, err := h.playerService.GetAllPlayers(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetPlayer gets a player by nickname
// @Summary Get player
// @Description Get a player by nickname with team, tournaments and stats
// @Tags players
// @Produce json
// @Param nickname path string true "Player nickname"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string
// @Router /players/{nickname}/ [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	player, err := h.playerService.GetPlayerByNickname(c.Param("nickname"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// CreatePlayer creates a player
// @Summary Create player
// @Description Create a new player
// @Tags players
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param player body models.CreatePlayerRequest true "Player data"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /players/ [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.CreatePlayer(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

// UpdatePlayer updates a player
// @Summary Update player
// @Description Update a player's nickname, name or surname
// @Tags players
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param nickname path string true "Player nickname"
// @Param player body models.UpdatePlayerRequest true "Player update data"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /players/{nickname}/ [patch]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	var req models.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.UpdatePlayer(c.Param("nickname"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// DeletePlayer deletes a player
// @Summary Delete player
// @Description Delete a player and its stats rows
// @Tags players
// @Security BearerAuth
// @Param nickname path string true "Player nickname"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /players/{nickname}/ [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	if err := h.playerService.DeletePlayer(c.Param("nickname")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RefreshFaceitProfile refreshes a player's FACEIT snapshot
// @Summary Refresh FACEIT profile
// @Description Pull the player's FACEIT id and current Elo by steam id
// @Tags players
// @Security BearerAuth
// @Produce json
// @Param nickname path string true "Player nickname"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{nickname}/refresh_faceit_profile/ [patch]
func (h *PlayerHandler) RefreshFaceitProfile(c *gin.Context) {
	player, err := h.playerService.RefreshFaceitProfile(c.Request.Context(), c.Param("nickname"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// GetPlayerStats aggregates a player's stats
// @Summary Player statistics
// @Description Aggregate a player's stats with optional date/tournament filters
// @Tags players
// @Produce json
// @Param nickname path string true "Player nickname"
// @Param start_date query string false "Filter start date (RFC3339)"
// @Param end_date query string false "Filter end date (RFC3339)"
// @Param tournament_ids query string false "Comma-separated tournament ids"
// @Param detailed query bool false "Full provider vocabulary"
// @Success 200 {object} models.DetailedPlayerStats
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/stats/{nickname}/ [get]
func (h *PlayerHandler) GetPlayerStats(c *gin.Context) {
	filter, err := parseStatsFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	nickname := c.Param("nickname")
	if filter.Detailed {
		stats, err := h.statsService.GetDetailedStats(nickname, filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
		return
	}

	stats, err := h.statsService.GetGeneralStats(nickname, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func parseStatsFilter(c *gin.Context) (models.StatsFilter, error) {
	var filter models.StatsFilter

	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, badQueryParam("start_date")
		}
		filter.StartDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, badQueryParam("end_date")
		}
		filter.EndDate = &t
	}
	if raw := c.Query("tournament_ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				return filter, badQueryParam("tournament_ids")
			}
			filter.TournamentIDs = append(filter.TournamentIDs, uint(id))
		}
	}
	filter.Detailed = c.Query("detailed") == "true"
	return filter, nil
}
