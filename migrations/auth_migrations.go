package migrations

import "gorm.io/gorm"

func GetAuthMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_01_000000_create_users_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS users (
						id SERIAL PRIMARY KEY,
						email VARCHAR(100) UNIQUE NOT NULL,
						password VARCHAR(100) NOT NULL,
						role VARCHAR(20) NOT NULL DEFAULT 'USER',
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS users CASCADE").Error
			},
		},
		{
			Name: "2025_01_01_000100_create_tokens_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS tokens (
						id SERIAL PRIMARY KEY,
						jti VARCHAR(36) UNIQUE NOT NULL,
						user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
						device_id VARCHAR(36) NOT NULL,
						token_type VARCHAR(10) NOT NULL,
						expired_time BIGINT NOT NULL,
						revoked BOOLEAN NOT NULL DEFAULT false
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_tokens_jti ON tokens(jti);
					CREATE INDEX IF NOT EXISTS idx_tokens_user_id ON tokens(user_id);
					CREATE INDEX IF NOT EXISTS idx_tokens_device_id ON tokens(device_id);
					CREATE INDEX IF NOT EXISTS idx_tokens_expired_time ON tokens(expired_time);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS tokens CASCADE").Error
			},
		},
	}
}
