package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
	"github.com/Zattox/RavensPedia-sub000/packages/core/services"
)

type TournamentHandler struct {
	tournamentService *services.TournamentService
}

func NewTournamentHandler(tournamentService *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
	}
}

// GetTournaments lists tournaments
// @Summary List tournaments
// @Description Get a paginated list of tournaments
// @Tags tournaments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} models.PaginatedTournamentsResponse
// @Router /tournaments/ [get]
func (h *TournamentHandler) GetTournaments(c *gin.Context) {
	page, pageSize := parsePagination(c)
	response, err := h.tournamentService.GetAllTournaments(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetTournament gets a tournament by name
// @Summary Get tournament
// @Description Get a tournament by name with teams, matches and results
// @Tags tournaments
// @Produce json
// @Param name path string true "Tournament name"
// @Success 200 {object} models.Tournament
// @Failure 404 {object} map[string]string
// @Router /tournaments/{name}/ [get]
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	tournament, err := h.tournamentService.GetTournamentByName(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// CreateTournament creates a tournament
// @Summary Create tournament
// @Description Create a new tournament
// @Tags tournaments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param tournament body models.CreateTournamentRequest true "Tournament data"
// @Success 201 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tournaments/ [post]
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req models.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.CreateTournament(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tournament)
}

// UpdateTournament updates a tournament
// @Summary Update tournament
// @Description Update a tournament's dates, prize or description
// @Tags tournaments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param name path string true "Tournament name"
// @Param tournament body models.UpdateTournamentRequest true "Tournament update data"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{name}/ [patch]
func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	var req models.UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.UpdateTournament(c.Param("name"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// DeleteTournament deletes a tournament
// @Summary Delete tournament
// @Description Delete a tournament and cascade its matches
// @Tags tournaments
// @Security BearerAuth
// @Param name path string true "Tournament name"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /tournaments/{name}/ [delete]
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	if err := h.tournamentService.DeleteTournament(c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddTeamToTournament registers a team
// @Summary Add team to tournament
// @Description Register a team in the tournament, within capacity
// @Tags tournaments
// @Security BearerAuth
// @Produce json
// @Param name path string true "Tournament name"
// @Param team_name path string true "Team name"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{name}/add_team/{team_name}/ [patch]
func (h *TournamentHandler) AddTeamToTournament(c *gin.Context) {
	tournament, err := h.tournamentService.AddTeamToTournament(c.Param("name"), c.Param("team_name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// RemoveTeamFromTournament deregisters a team
// @Summary Remove team from tournament
// @Description Deregister a team and clear its placement
// @Tags tournaments
// @Security BearerAuth
// @Produce json
// @Param name path string true "Tournament name"
// @Param team_name path string true "Team name"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{name}/delete_team/{team_name}/ [patch]
func (h *TournamentHandler) RemoveTeamFromTournament(c *gin.Context) {
	tournament, err := h.tournamentService.RemoveTeamFromTournament(c.Param("name"), c.Param("team_name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// AddResult appends a placement slot
// @Summary Add tournament result slot
// @Description Append a placement slot (place, prize) with no team yet
// @Tags tournaments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param name path string true "Tournament name"
// @Param result body models.TournamentResultRequest true "Result slot"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{name}/add_result/ [patch]
func (h *TournamentHandler) AddResult(c *gin.Context) {
	var req models.TournamentResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.AddResult(c.Param("name"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// DeleteLastResult removes the slot with the greatest place
// @Summary Delete last result slot
// @Description Remove the placement slot with the greatest place
// @Tags tournaments
// @Security BearerAuth
// @Produce json
// @Param name path string true "Tournament name"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{name}/delete_last_result/ [patch]
func (h *TournamentHandler) DeleteLastResult(c *gin.Context) {
	tournament, err := h.tournamentService.DeleteLastResult(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// AssignTeamToResult puts a team into a placement slot
// @Summary Assign team to result
// @Description Put a participating team into an existing placement slot
// @Tags tournaments
// @Security BearerAuth
// @Produce json
// @Param name path string true "Tournament name"
// @Param place query int true "Place"
// @Param team_name query string true "Team name"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{name}/assign_team_to_result/ [patch]
func (h *TournamentHandler) AssignTeamToResult(c *gin.Context) {
	place, err := strconv.Atoi(c.Query("place"))
	if err != nil {
		respondError(c, apperrors.BadInput("Invalid place parameter"))
		return
	}
	teamName := c.Query("team_name")
	if teamName == "" {
		respondError(c, apperrors.BadInput("Invalid team_name parameter"))
		return
	}

	tournament, err := h.tournamentService.AssignTeamToResult(c.Param("name"), place, teamName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// RemoveTeamFromResult clears a placement slot
// @Summary Remove team from result
// @Description Clear the team of a placement slot
// @Tags tournaments
// @Security BearerAuth
// @Produce json
// @Param name path string true "Tournament name"
// @Param place query int true "Place"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{name}/remove_team_from_result/ [patch]
func (h *TournamentHandler) RemoveTeamFromResult(c *gin.Context) {
	place, err := strconv.Atoi(c.Query("place"))
	if err != nil {
		respondError(c, apperrors.BadInput("Invalid place parameter"))
		return
	}

	tournament, err := h.tournamentService.RemoveTeamFromResult(c.Param("name"), place)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}
