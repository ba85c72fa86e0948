package core

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/config"
	"github.com/Zattox/RavensPedia-sub000/packages/core/cron"
	"github.com/Zattox/RavensPedia-sub000/packages/core/faceit"
	"github.com/Zattox/RavensPedia-sub000/packages/core/handlers"
	"github.com/Zattox/RavensPedia-sub000/packages/core/services"
)

// Module wires the domain services, their handlers and the scheduler.
type Module struct {
	PlayerHandler     *handlers.PlayerHandler
	TeamHandler       *handlers.TeamHandler
	TournamentHandler *handlers.TournamentHandler
	MatchHandler      *handlers.MatchHandler
	ScheduleHandler   *handlers.ScheduleHandler
	SearchHandler     *handlers.SearchHandler
	NewsHandler       *handlers.NewsHandler

	PlayerService     *services.PlayerService
	TeamService       *services.TeamService
	TournamentService *services.TournamentService
	MatchService      *services.MatchService
	MapInfoService    *services.MapInfoService
	IngestService     *services.StatsIngestService
	ScheduleService   *services.ScheduleService
	Scheduler         *cron.Scheduler

	db *gorm.DB
}

func NewModule(db *gorm.DB, cfg *config.Settings) *Module {
	faceitClient := faceit.NewClient(cfg)

	playerService := services.NewPlayerService(db, faceitClient)
	playerStatsService := services.NewPlayerStatsService(db, playerService)
	teamService := services.NewTeamService(db)
	teamStatsService := services.NewTeamStatsService(db, teamService)
	tournamentService := services.NewTournamentService(db)
	matchService := services.NewMatchService(db)
	mapInfoService := services.NewMapInfoService(db, matchService)
	ingestService := services.NewStatsIngestService(db, faceitClient, playerService)
	scheduleService := services.NewScheduleService(db)
	searchService := services.NewSearchService(db)
	newsService := services.NewNewsService(db)

	scheduler := cron.NewScheduler(db, scheduleService, cfg.TokenCleanupMinutes)

	return &Module{
		PlayerHandler:     handlers.NewPlayerHandler(playerService, playerStatsService),
		TeamHandler:       handlers.NewTeamHandler(teamService, teamStatsService),
		TournamentHandler: handlers.NewTournamentHandler(tournamentService),
		MatchHandler:      handlers.NewMatchHandler(matchService, mapInfoService, ingestService),
		ScheduleHandler:   handlers.NewScheduleHandler(scheduleService),
		SearchHandler:     handlers.NewSearchHandler(searchService),
		NewsHandler:       handlers.NewNewsHandler(newsService),

		PlayerService:     playerService,
		TeamService:       teamService,
		TournamentService: tournamentService,
		MatchService:      matchService,
		MapInfoService:    mapInfoService,
		IngestService:     ingestService,
		ScheduleService:   scheduleService,
		Scheduler:         scheduler,

		db: db,
	}
}

// Guards holds the auth middleware the write endpoints are mounted
// behind. Reads stay public.
type Guards struct {
	JWT   gin.HandlerFunc
	Admin gin.HandlerFunc
}

func (m *Module) SetupRoutes(r *gin.Engine, guards Guards) {
	players := r.Group("/players")
	{
		players.GET("/", m.PlayerHandler.GetPlayers)
		players.GET("/stats/:nickname/", m.PlayerHandler.GetPlayerStats)
		players.GET("/:nickname/", m.PlayerHandler.GetPlayer)
		players.POST("/", guards.JWT, guards.Admin, m.PlayerHandler.CreatePlayer)
		players.PATCH("/:nickname/", guards.JWT, guards.Admin, m.PlayerHandler.UpdatePlayer)
		players.PATCH("/:nickname/refresh_faceit_profile/", guards.JWT, guards.Admin, m.PlayerHandler.RefreshFaceitProfile)
		players.DELETE("/:nickname/", guards.JWT, guards.Admin, m.PlayerHandler.DeletePlayer)
	}

	teams := r.Group("/teams")
	{
		teams.GET("/", m.TeamHandler.GetTeams)
		teams.GET("/stats/:name/", m.TeamHandler.GetTeamMapStats)
		teams.GET("/:name/", m.TeamHandler.GetTeam)
		teams.POST("/", guards.JWT, guards.Admin, m.TeamHandler.CreateTeam)
		teams.PATCH("/:name/", guards.JWT, guards.Admin, m.TeamHandler.UpdateTeam)
		teams.PATCH("/:name/add_player/:nickname/", guards.JWT, guards.Admin, m.TeamHandler.AddPlayerToTeam)
		teams.PATCH("/:name/delete_player/:nickname/", guards.JWT, guards.Admin, m.TeamHandler.RemovePlayerFromTeam)
		teams.DELETE("/:name/", guards.JWT, guards.Admin, m.TeamHandler.DeleteTeam)
	}

	tournaments := r.Group("/tournaments")
	{
		tournaments.GET("/", m.TournamentHandler.GetTournaments)
		tournaments.GET("/:name/", m.TournamentHandler.GetTournament)
		tournaments.POST("/", guards.JWT, guards.Admin, m.TournamentHandler.CreateTournament)
		tournaments.PATCH("/:name/", guards.JWT, guards.Admin, m.TournamentHandler.UpdateTournament)
		tournaments.PATCH("/:name/add_team/:team_name/", guards.JWT, guards.Admin, m.TournamentHandler.AddTeamToTournament)
		tournaments.PATCH("/:name/delete_team/:team_name/", guards.JWT, guards.Admin, m.TournamentHandler.RemoveTeamFromTournament)
		tournaments.PATCH("/:name/add_result/", guards.JWT, guards.Admin, m.TournamentHandler.AddResult)
		tournaments.PATCH("/:name/delete_last_result/", guards.JWT, guards.Admin, m.TournamentHandler.DeleteLastResult)
		tournaments.PATCH("/:name/assign_team_to_result/", guards.JWT, guards.Admin, m.TournamentHandler.AssignTeamToResult)
		tournaments.PATCH("/:name/remove_team_from_result/", guards.JWT, guards.Admin, m.TournamentHandler.RemoveTeamFromResult)
		tournaments.DELETE("/:name/", guards.JWT, guards.Admin, m.TournamentHandler.DeleteTournament)
	}

	matches := r.Group("/matches")
	{
		matches.GET("/", m.MatchHandler.GetMatches)
		matches.GET("/:id/", m.MatchHandler.GetMatch)
		matches.POST("/", guards.JWT, guards.Admin, m.MatchHandler.CreateMatch)
		matches.PATCH("/:id/", guards.JWT, guards.Admin, m.MatchHandler.UpdateMatch)
		matches.PATCH("/:id/add_team/:team_name/", guards.JWT, guards.Admin, m.MatchHandler.AddTeamToMatch)
		matches.PATCH("/:id/delete_team/:team_name/", guards.JWT, guards.Admin, m.MatchHandler.DeleteTeamFromMatch)
		matches.DELETE("/:id/", guards.JWT, guards.Admin, m.MatchHandler.DeleteMatch)

		stats := matches.Group("/stats")
		{
			stats.PATCH("/:id/add_faceit_stats/", guards.JWT, guards.Admin, m.MatchHandler.AddFaceitStats)
			stats.PATCH("/:id/add_stats_manual/", guards.JWT, guards.Admin, m.MatchHandler.AddManualStats)
			stats.PATCH("/:id/delete_last_stats/", guards.JWT, guards.Admin, m.MatchHandler.DeleteLastStats)
			stats.PATCH("/:id/add_pick_ban_info_in_match/", guards.JWT, guards.Admin, m.MatchHandler.AddPickBan)
			stats.PATCH("/:id/delete_last_pick_ban_info_from_match/", guards.JWT, guards.Admin, m.MatchHandler.DeleteLastPickBan)
			stats.PATCH("/:id/add_map_result_info_in_match/", guards.JWT, guards.Admin, m.MatchHandler.AddMapResult)
			stats.PATCH("/:id/delete_last_map_result_info_from_match/", guards.JWT, guards.Admin, m.MatchHandler.DeleteLastMapResult)
		}
	}

	schedules := r.Group("/schedules")
	{
		schedules.GET("/matches/get_last_completed/", m.ScheduleHandler.GetLastCompletedMatches)
		schedules.GET("/matches/get_upcoming_scheduled/", m.ScheduleHandler.GetUpcomingScheduledMatches)
		schedules.GET("/matches/get_in_progress/", m.ScheduleHandler.GetMatchesInProgress)
		schedules.GET("/tournaments/get_last_completed/", m.ScheduleHandler.GetLastCompletedTournaments)
		schedules.GET("/tournaments/get_upcoming_scheduled/", m.ScheduleHandler.GetUpcomingScheduledTournaments)
		schedules.GET("/tournaments/get_in_progress/", m.ScheduleHandler.GetTournamentsInProgress)
		schedules.PATCH("/matches/:id/update_status/", guards.JWT, guards.Admin, m.ScheduleHandler.UpdateMatchStatus)
		schedules.PATCH("/tournaments/:name/update_status/", guards.JWT, guards.Admin, m.ScheduleHandler.UpdateTournamentStatus)
	}

	news := r.Group("/news")
	{
		news.GET("/", m.NewsHandler.GetNews)
		news.GET("/:id/", m.NewsHandler.GetNewsItem)
		news.POST("/", guards.JWT, guards.Admin, m.NewsHandler.CreateNews)
		news.PATCH("/:id/", guards.JWT, guards.Admin, m.NewsHandler.UpdateNews)
		news.DELETE("/:id/", guards.JWT, guards.Admin, m.NewsHandler.DeleteNews)
	}

	r.GET("/search/", m.SearchHandler.Search)
}

// StartScheduler starts the periodic jobs.
func (m *Module) StartScheduler() error {
	return m.Scheduler.Start()
}

// StopScheduler stops the periodic jobs.
func (m *Module) StopScheduler() {
	m.Scheduler.Stop()
}
