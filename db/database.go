package db

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize sets up the database connection with WAL mode for concurrency
func Initialize(dbPath string, environment string) error {
	// Enable WAL mode for better concurrency support
	dsn := dbPath + "?_journal_mode=WAL&_foreign_keys=on"

	conn, err := gorm.Open(sqlite.Open(dsn), gormConfig(environment))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	DB = conn

	log.Info().Str("path", dbPath).Msg("Database connection established (WAL mode enabled)")
	return nil
}

// InitializeRemote connects to a libSQL (Turso) database through the libsql driver
func InitializeRemote(databaseURL string, authToken string, environment string) error {
	dsn, err := RemoteDSN(databaseURL, authToken)
	if err != nil {
		return err
	}

	conn, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: "libsql",
		DSN:        dsn,
	}), gormConfig(environment))
	if err != nil {
		return fmt.Errorf("failed to connect to remote database: %w", err)
	}
	DB = conn

	log.Info().Str("host", hostOf(databaseURL)).Msg("Remote libSQL connection established")
	return nil
}

// RemoteDSN appends the auth token to a libsql:// URL
func RemoteDSN(databaseURL string, authToken string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid remote database URL %q", databaseURL)
	}
	if authToken != "" {
		q := u.Query()
		q.Set("authToken", authToken)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}

func gormConfig(environment string) *gorm.Config {
	// Determine log level based on environment
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}
	return &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Int("models", len(models)).Msg("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
