package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/ideanest/ideanest-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	GeminiConnectorCfg GeminiConnectorConfig `envPrefix:"GEMINI_"`
	AuthConnectorCfg   AuthConnectorConfig   `envPrefix:"AUTH_"`

	// Change-feed listener configuration
	ListenerRetry pkgRetry.RetryConfig `envPrefix:"LISTENER_RETRY_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS,notEmpty"`

	// Environment (set from flag, not from env var)
	Environment string
}

// GeminiConnectorConfig configures the generative-text connector. The main
// pipeline performs a single attempt per completion; no retry settings exist
// here on purpose.
type GeminiConnectorConfig struct {
	HTTPClientConfig
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-2.5-flash"`
}

// AuthConnectorConfig configures session-token introspection.
type AuthConnectorConfig struct {
	HTTPClientConfig
	IntrospectEndpoint string        `env:"INTROSPECT_ENDPOINT,notEmpty"`
	SessionCacheTTL    time.Duration `env:"SESSION_CACHE_TTL" envDefault:"5m"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT,notEmpty"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT,notEmpty"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE,notEmpty"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT,notEmpty"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT,notEmpty"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL,notEmpty"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	// Validate Database configuration
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	// An absent Gemini key is allowed (the connector refuses calls with
	// ErrNotConfigured), but mocks-off plus a blank key is almost always a
	// deployment mistake worth flagging early.
	if !cfg.EnableMocks && cfg.GeminiConnectorCfg.APIKey == "" {
		fmt.Println("Warning: GEMINI_API_KEY is empty; generative endpoints will return a configuration error")
	}

	if cfg.AuthConnectorCfg.SessionCacheTTL < time.Second || cfg.AuthConnectorCfg.SessionCacheTTL > time.Hour {
		errors = append(errors, fmt.Sprintf("AUTH_SESSION_CACHE_TTL must be between 1s and 1h, got %s", cfg.AuthConnectorCfg.SessionCacheTTL))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
