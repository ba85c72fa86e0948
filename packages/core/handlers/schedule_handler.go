package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
	"github.com/Zattox/RavensPedia-sub000/packages/core/services"
)

const defaultScheduleLimit = 10

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

func parseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultScheduleLimit)))
	if err != nil || limit < 1 {
		return defaultScheduleLimit
	}
	return limit
}

// GetLastCompletedMatches lists recently played matches
// @Summary Last completed matches
// @Description Get the most recently played matches
// @Tags schedules
// @Produce json
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {array} models.Match
// @Router /schedules/matches/get_last_completed/ [get]
func (h *ScheduleHandler) GetLastCompletedMatches(c *gin.Context) {
	matches, err := h.scheduleService.GetLastCompletedMatches(parseLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetUpcomingScheduledMatches lists upcoming matches
// @Summary Upcoming scheduled matches
// @Description Get the next matches on the calendar
// @Tags schedules
// @Produce json
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {array} models.Match
// @Router /schedules/matches/get_upcoming_scheduled/ [get]
func (h *ScheduleHandler) GetUpcomingScheduledMatches(c *gin.Context) {
	matches, err := h.scheduleService.GetUpcomingScheduledMatches(parseLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetMatchesInProgress lists live matches
// @Summary Matches in progress
// @Description Get the matches being played right now
// @Tags schedules
// @Produce json
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {array} models.Match
// @Router /schedules/matches/get_in_progress/ [get]
func (h *ScheduleHandler) GetMatchesInProgress(c *gin.Context) {
	matches, err := h.scheduleService.GetMatchesInProgress(parseLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetLastCompletedTournaments lists finished tournaments
// @Summary Last completed tournaments
// @Description Get tournaments whose window has closed
// @Tags schedules
// @Produce json
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {array} models.Tournament
// @Router /schedules/tournaments/get_last_completed/ [get]
func (h *ScheduleHandler) GetLastCompletedTournaments(c *gin.Context) {
	tournaments, err := h.scheduleService.GetTournamentsByStatus(models.StatusCompleted, parseLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournaments)
}

// GetUpcomingScheduledTournaments lists upcoming tournaments
// @Summary Upcoming scheduled tournaments
// @Description Get tournaments that have not started yet
// @Tags schedules
// @Produce json
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {array} models.Tournament
// @Router /schedules/tournaments/get_upcoming_scheduled/ [get]
func (h *ScheduleHandler) GetUpcomingScheduledTournaments(c *gin.Context) {
	tournaments, err := h.scheduleService.GetTournamentsByStatus(models.StatusScheduled, parseLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournaments)
}

// GetTournamentsInProgress lists running tournaments
// @Summary Tournaments in progress
// @Description Get tournaments currently inside their window
// @Tags schedules
// @Produce json
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {array} models.Tournament
// @Router /schedules/tournaments/get_in_progress/ [get]
func (h *ScheduleHandler) GetTournamentsInProgress(c *gin.Context) {
	tournaments, err := h.scheduleService.GetTournamentsByStatus(models.StatusInProgress, parseLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournaments)
}

// UpdateMatchStatus is the manual lifecycle override for a match
// @Summary Update match status
// @Description Manually set a match's lifecycle status
// @Tags schedules
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Param new_status query string true "New status"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/matches/{id}/update_status/ [patch]
func (h *ScheduleHandler) UpdateMatchStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	match, err := h.scheduleService.UpdateMatchStatus(id, c.Query("new_status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// UpdateTournamentStatus is the manual lifecycle override for a tournament
// @Summary Update tournament status
// @Description Manually set a tournament's lifecycle status
// @Tags schedules
// @Security BearerAuth
// @Produce json
// @Param name path string true "Tournament name"
// @Param new_status query string true "New status"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/tournaments/{name}/update_status/ [patch]
func (h *ScheduleHandler) UpdateTournamentStatus(c *gin.Context) {
	tournament, err := h.scheduleService.UpdateTournamentStatus(c.Param("name"), c.Query("new_status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}
