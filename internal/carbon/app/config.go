package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/carbon/internal/carbon/upstream"
	"github.com/aussiebroadwan/carbon/pkg/cryptox"
	"github.com/aussiebroadwan/carbon/pkg/jwtx"
)

type Config struct {
	DatabaseURL      string // Store DSN; the scheme picks the driver (default: carbon.db, sqlite)
	JWTSecret        string // Required outside dev: HS256 signing secret
	JWTIssuer        string // Optional: iss claim (default: carbon-api)
	PasswordHashCost int    // Optional: bcrypt cost (default: 10)

	NewsAPIKey string // Optional: newsapi.org key; without it /news fails upstream
	NewsAPIURL string // Optional: news endpoint (default: newsapi.org everything)
	NewsQuery  string // Optional: query used when the client sends none

	DialogflowProjectID string // Optional: chat is disabled when empty
	DialogflowKeyFile   string // Optional: service account JSON (default: ambient credentials)
	DialogflowLanguage  string // Optional: query language (default: en-US)

	UpstreamTimeout     time.Duration // Outbound HTTP timeout, 0 keeps the transport default
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	// Set by Validate when JWTSecret was empty in dev and one was generated.
	generatedSecret bool
}

// LoadConfig reads the environment, after loading .env from the working
// directory when one exists. Variables already set win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		DatabaseURL:      getEnvOrDefault("DATABASE_URL", getEnvOrDefault("MONGO_URI", "carbon.db")),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTIssuer:        getEnvOrDefault("JWT_ISSUER", "carbon-api"),
		PasswordHashCost: getEnvIntOrDefault("PASSWORD_HASH_COST", cryptox.DefaultCost),

		NewsAPIKey: os.Getenv("NEWS_API_KEY"),
		NewsAPIURL: getEnvOrDefault("NEWS_API_URL", upstream.DefaultNewsURL),
		NewsQuery:  getEnvOrDefault("NEWS_QUERY", upstream.DefaultNewsQuery),

		DialogflowProjectID: os.Getenv("DIALOGFLOW_PROJECT_ID"),
		DialogflowKeyFile:   os.Getenv("DIALOGFLOW_KEYFILE"),
		DialogflowLanguage:  getEnvOrDefault("DIALOGFLOW_LANGUAGE", upstream.DefaultLanguage),

		UpstreamTimeout:     getEnvDurationOrDefault("UPSTREAM_TIMEOUT", 0),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg, nil
}

// Validate checks the config and fills in the dev signing secret. Outside
// dev a missing or short secret is fatal.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}

	if c.JWTSecret == "" {
		if c.Env != "dev" {
			return errors.New("JWT_SECRET is required outside dev")
		}
		secret, err := cryptox.GenerateSecret(cryptox.SecretSize256)
		if err != nil {
			return err
		}
		c.JWTSecret = secret
		c.generatedSecret = true
	}
	if len(c.JWTSecret) < jwtx.MinSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinSecretLength)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
