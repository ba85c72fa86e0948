package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_02_000000_create_teams_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS teams (
						id SERIAL PRIMARY KEY,
						name VARCHAR(15) UNIQUE NOT NULL,
						max_players INTEGER NOT NULL DEFAULT 5,
						description TEXT,
						average_faceit_elo DOUBLE PRECISION NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_name ON teams(name);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS teams CASCADE").Error
			},
		},
		{
			Name: "2025_01_02_000100_create_players_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id SERIAL PRIMARY KEY,
						nickname VARCHAR(12) UNIQUE NOT NULL,
						name VARCHAR(50),
						surname VARCHAR(50),
						steam_id VARCHAR(50) UNIQUE NOT NULL,
						faceit_id VARCHAR(50) UNIQUE NULL,
						faceit_elo INTEGER NULL,
						team_id INTEGER NULL REFERENCES teams(id) ON DELETE SET NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_players_nickname ON players(nickname);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_players_steam_id ON players(steam_id);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_players_faceit_id ON players(faceit_id);
					CREATE INDEX IF NOT EXISTS idx_players_team_id ON players(team_id);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS players CASCADE").Error
			},
		},
		{
			Name: "2025_01_02_000200_create_tournaments_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS tournaments (
						id SERIAL PRIMARY KEY,
						name VARCHAR(100) UNIQUE NOT NULL,
						prize VARCHAR(50),
						description TEXT,
						max_teams INTEGER NOT NULL,
						start_date TIMESTAMP NOT NULL,
						end_date TIMESTAMP NOT NULL,
						status VARCHAR(20) NOT NULL DEFAULT 'SCHEDULED',
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_tournaments_name ON tournaments(name);
					CREATE INDEX IF NOT EXISTS idx_tournaments_status ON tournaments(status);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS tournaments CASCADE").Error
			},
		},
		{
			Name: "2025_01_02_000300_create_matches_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id SERIAL PRIMARY KEY,
						best_of INTEGER NOT NULL,
						max_teams INTEGER NOT NULL DEFAULT 2,
						max_players INTEGER NOT NULL DEFAULT 10,
						tournament_id INTEGER NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
						date TIMESTAMP NOT NULL,
						status VARCHAR(20) NOT NULL DEFAULT 'SCHEDULED',
						description TEXT,
						original_source VARCHAR(255),
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE INDEX IF NOT EXISTS idx_matches_tournament_id ON matches(tournament_id);
					CREATE INDEX IF NOT EXISTS idx_matches_status ON matches(status);
					CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(date);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS matches CASCADE").Error
			},
		},
		{
			Name: "2025_01_02_000400_create_match_stats_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS match_stats (
						id SERIAL PRIMARY KEY,
						match_id INTEGER NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
						player_id INTEGER NOT NULL REFERENCES players(id) ON DELETE CASCADE,
						round_of_match INTEGER NOT NULL,
						nickname VARCHAR(12) NOT NULL,
						map VARCHAR(20) NOT NULL,
						stats JSONB NOT NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_match_player_round
						ON match_stats(match_id, player_id, round_of_match);
					CREATE INDEX IF NOT EXISTS idx_match_stats_player_id ON match_stats(player_id);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS match_stats CASCADE").Error
			},
		},
		{
			Name: "2025_01_02_000500_create_map_info_tables",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS map_pick_bans (
						id SERIAL PRIMARY KEY,
						match_id INTEGER NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
						map VARCHAR(20) NOT NULL,
						status VARCHAR(10) NOT NULL,
						initiator VARCHAR(15) NOT NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE INDEX IF NOT EXISTS idx_map_pick_bans_match_id ON map_pick_bans(match_id);

					CREATE TABLE IF NOT EXISTS map_results (
						id SERIAL PRIMARY KEY,
						match_id INTEGER NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
						map VARCHAR(20) NOT NULL,
						first_team VARCHAR(15) NOT NULL,
						second_team VARCHAR(15) NOT NULL,
						first_half_score_first_team INTEGER NOT NULL,
						first_half_score_second_team INTEGER NOT NULL,
						second_half_score_first_team INTEGER NOT NULL,
						second_half_score_second_team INTEGER NOT NULL,
						overtime_score_first_team INTEGER NOT NULL DEFAULT 0,
						overtime_score_second_team INTEGER NOT NULL DEFAULT 0,
						total_score_first_team INTEGER NOT NULL,
						total_score_second_team INTEGER NOT NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE INDEX IF NOT EXISTS idx_map_results_match_id ON map_results(match_id);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`
					DROP TABLE IF EXISTS map_results CASCADE;
					DROP TABLE IF EXISTS map_pick_bans CASCADE;
				`).Error
			},
		},
		{
			Name: "2025_01_02_000600_create_tournament_results_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS tournament_results (
						id SERIAL PRIMARY KEY,
						tournament_id INTEGER NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
						place INTEGER NOT NULL,
						prize VARCHAR(50),
						team_id INTEGER NULL REFERENCES teams(id) ON DELETE SET NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_tournament_place
						ON tournament_results(tournament_id, place);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS tournament_results CASCADE").Error
			},
		},
		{
			Name: "2025_01_02_000700_create_team_map_stats_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS team_map_stats (
						id SERIAL PRIMARY KEY,
						team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
						map VARCHAR(20) NOT NULL,
						matches_played INTEGER NOT NULL DEFAULT 0,
						matches_won INTEGER NOT NULL DEFAULT 0,
						win_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_team_map ON team_map_stats(team_id, map);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS team_map_stats CASCADE").Error
			},
		},
		{
			Name: "2025_01_02_000800_create_association_tables",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS team_matches (
						team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
						match_id INTEGER NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
						PRIMARY KEY (team_id, match_id)
					);
					CREATE TABLE IF NOT EXISTS team_tournaments (
						team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
						tournament_id INTEGER NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
						PRIMARY KEY (team_id, tournament_id)
					);
					CREATE TABLE IF NOT EXISTS player_tournaments (
						player_id INTEGER NOT NULL REFERENCES players(id) ON DELETE CASCADE,
						tournament_id INTEGER NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
						PRIMARY KEY (player_id, tournament_id)
					);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`
					DROP TABLE IF EXISTS player_tournaments;
					DROP TABLE IF EXISTS team_tournaments;
					DROP TABLE IF EXISTS team_matches;
				`).Error
			},
		},
		{
			Name: "2025_01_02_000900_create_news_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS news (
						id SERIAL PRIMARY KEY,
						title VARCHAR(100) NOT NULL,
						content TEXT NOT NULL,
						author VARCHAR(50),
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE INDEX IF NOT EXISTS idx_news_created_at ON news(created_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS news CASCADE").Error
			},
		},
	}
}
