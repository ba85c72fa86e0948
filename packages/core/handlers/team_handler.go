package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
	"github.com/Zattox/RavensPedia-sub000/packages/core/services"
)

type TeamHandler struct {
	teamService  *services.TeamService
	statsService *services.TeamStatsService
}

func NewTeamHandler(teamService *services.TeamService, statsService *services.TeamStatsService) *TeamHandler {
	return &TeamHandler{
		teamService:  teamService,
		statsService: statsService,
	}
}

// GetTeams lists teams
// @Summary List teams
// @Description Get a paginated list of teams
// @Tags teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} models.PaginatedTeamsResponse
// @Router /teams/ [get]
func (h *TeamHandler) GetTeams(c *gin.Context) {
	page, pageSize := parsePagination(c)
	response, err := h.teamService.GetAllTeams(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetTeam gets a team by name
// @Summary Get team
// @Description Get a team by name with roster, tournaments and matches
// @Tags teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Router /teams/{name}/ [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.teamService.GetTeamByName(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// CreateTeam creates a team
// @Summary Create team
// @Description Create a new team
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team body models.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams/ [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam updates a team
// @Summary Update team
// @Description Update a team's name, capacity or description
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param name path string true "Team name"
// @Param team body models.UpdateTeamRequest true "Team update data"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{name}/ [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.UpdateTeam(c.Param("name"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam deletes a team
// @Summary Delete team
// @Description Delete a team, detaching its roster and aggregates
// @Tags teams
// @Security BearerAuth
// @Param name path string true "Team name"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /teams/{name}/ [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if err := h.teamService.DeleteTeam(c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPlayerToTeam adds a player to the roster
// @Summary Add player to team
// @Description Move a free player into the team roster
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param name path string true "Team name"
// @Param nickname path string true "Player nickname"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{name}/add_player/{nickname}/ [patch]
func (h *TeamHandler) AddPlayerToTeam(c *gin.Context) {
	team, err := h.teamService.AddPlayerToTeam(c.Param("name"), c.Param("nickname"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// RemovePlayerFromTeam removes a player from the roster
// @Summary Remove player from team
// @Description Detach a roster member
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param name path string true "Team name"
// @Param nickname path string true "Player nickname"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{name}/delete_player/{nickname}/ [patch]
func (h *TeamHandler) RemovePlayerFromTeam(c *gin.Context) {
	team, err := h.teamService.RemovePlayerFromTeam(c.Param("name"), c.Param("nickname"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// GetTeamMapStats returns per-map aggregates
// @Summary Team map statistics
// @Description Get the team's per-map played/won/win-rate aggregates
// @Tags teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {array} models.TeamMapStats
// @Failure 404 {object} map[string]string
// @Router /teams/stats/{name}/ [get]
func (h *TeamHandler) GetTeamMapStats(c *gin.Context) {
	stats, err := h.statsService.GetTeamMapStats(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
