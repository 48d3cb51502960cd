package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Session secret validation errors
var (
	ErrInsecureSessionSecret = errors.New("SESSION_SECRET is set to an insecure default value")
	ErrShortSessionSecret    = errors.New("SESSION_SECRET is too short for production")
)

const (
	// MinSessionSecretLength is the minimum required length for session secret in production
	MinSessionSecretLength = 32
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	LogLevel    string
	// SessionSecret signs the flash message cookie
	SessionSecret string
	// AppURL is the public base URL, also the default target of venuectl
	AppURL string
	// Remote libSQL (Turso). When set it takes precedence over DBPath.
	TursoDatabaseURL string
	TursoAuthToken   string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	sessionSecret := getEnv("SESSION_SECRET", "")

	if err := ValidateSessionSecret(sessionSecret, environment); err != nil {
		log.Fatal().Err(err).Msg("Generate a secure session secret with: openssl rand -base64 32")
	}

	// In development, generate a secure secret if none provided
	if sessionSecret == "" && environment != "production" {
		sessionSecret = GenerateSecureSecret()
		log.Info().Msg("Generated temporary session secret for development. Set SESSION_SECRET env var for persistence.")
	}

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "db/app.db"),
		Environment:      environment,
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SessionSecret:    sessionSecret,
		AppURL:           strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		TursoDatabaseURL: getEnv("TURSO_DATABASE_URL", ""),
		TursoAuthToken:   getEnv("TURSO_AUTH_TOKEN", ""),
	}
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Debug().Str("key", key).Str("default", defaultValue).Msg("Using default config value")
		return defaultValue
	}
	return value
}

// ValidateSessionSecret validates the session secret meets security requirements.
// In production it must be at least MinSessionSecretLength bytes and not a known insecure default;
// elsewhere weak secrets only log a warning.
func ValidateSessionSecret(secret string, environment string) error {
	// Known insecure defaults that must be rejected
	insecureDefaults := []string{
		"dev-secret-change-in-production",
		"change-me",
		"secret",
		"development",
		"test",
		"",
	}

	for _, insecure := range insecureDefaults {
		if strings.EqualFold(secret, insecure) {
			if environment == "production" {
				return ErrInsecureSessionSecret
			}
			log.Warn().Msg("SESSION_SECRET is set to an insecure default value. This is acceptable only in development.")
			return nil
		}
	}

	if environment == "production" && len(secret) < MinSessionSecretLength {
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrShortSessionSecret, len(secret), MinSessionSecretLength)
	}

	return nil
}

// GenerateSecureSecret generates a cryptographically secure random secret
// This is used only for development when no secret is provided
func GenerateSecureSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Warn().Err(err).Msg("Failed to generate secure secret")
		return ""
	}
	return base64.StdEncoding.EncodeToString(bytes)
}
