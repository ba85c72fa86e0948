package config

import (
	"crypto/rsa"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the process-wide database handle, set by ConnectDatabase.
var DB *gorm.DB

// Settings holds everything read from the environment at startup.
// JWT key material is parsed once here and never reloaded.
type Settings struct {
	Port string

	DBURL  string
	DBEcho bool

	FaceitBaseURL string
	FaceitAPIKey  string

	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	JWTAlgorithm      string
	JWTPrivateKey     *rsa.PrivateKey
	JWTPublicKey      *rsa.PublicKey

	AccessTokenMinutes  int
	RefreshTokenDays    int
	TokenCleanupMinutes int

	AllowedOrigins []string
}

// Load reads the settings from the environment and parses the RSA key pair.
func Load() (*Settings, error) {
	s := &Settings{
		Port:                getEnv("PORT", "8000"),
		DBURL:               getEnv("DB_URL", ""),
		DBEcho:              getEnvBool("DB_ECHO", false),
		FaceitBaseURL:       getEnv("FACEIT_BASE_URL", "https://open.faceit.com/data/v4"),
		FaceitAPIKey:        getEnv("FACEIT_API_KEY", ""),
		JWTPrivateKeyPath:   getEnv("JWT_PRIVATE_KEY_PATH", "certs/jwt-private.pem"),
		JWTPublicKeyPath:    getEnv("JWT_PUBLIC_KEY_PATH", "certs/jwt-public.pem"),
		JWTAlgorithm:        getEnv("JWT_ALGORITHM", "RS256"),
		AccessTokenMinutes:  getEnvInt("ACCESS_TOKEN_MINUTES", 15),
		RefreshTokenDays:    getEnvInt("REFRESH_TOKEN_DAYS", 14),
		TokenCleanupMinutes: getEnvInt("TOKEN_CLEANUP_MINUTES", 20),
		AllowedOrigins:      getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	if s.JWTAlgorithm != "RS256" {
		return nil, fmt.Errorf("unsupported JWT algorithm: %s", s.JWTAlgorithm)
	}

	privatePEM, err := os.ReadFile(s.JWTPrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JWT private key: %w", err)
	}
	s.JWTPrivateKey, err = jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT private key: %w", err)
	}

	publicPEM, err := os.ReadFile(s.JWTPublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JWT public key: %w", err)
	}
	s.JWTPublicKey, err = jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT public key: %w", err)
	}

	return s, nil
}

// ConnectDatabase opens the postgres connection and stores it in DB.
func ConnectDatabase(s *Settings) {
	logLevel := logger.Silent
	if s.DBEcho {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(s.DBURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	DB = db
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
