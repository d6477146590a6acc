package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion      string
	GamesTable     string
	ProgressTable  string
	UserIndexName  string // GSI for listing progress by user
	RateLimitTable string
	EventBusName   string

	// Lambda configuration
	IsLambda           bool
	LambdaFunctionName string

	// NLP collaborators
	AnnotatorURL  string
	SummarizerURL string
	NLPTimeout    time.Duration
	MaxPaperBytes int64

	// Storage backend: "memory" or "dynamodb"
	StorageBackend string

	// Game cache
	GameCacheTTL int // seconds

	// Logging
	LogLevel string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableMetrics bool
	EnableTracing bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:  getEnv("SERVER_ADDRESS", ":8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AWSRegion:      getEnv("AWS_REGION", "us-west-2"),
		GamesTable:     getEnv("GAMES_TABLE", "paperplay-games"),
		ProgressTable:  getEnv("PROGRESS_TABLE", "paperplay-progress"),
		UserIndexName:  getEnv("USER_INDEX_NAME", "UserIndex"),
		RateLimitTable: getEnv("RATE_LIMIT_TABLE", "paperplay-rate-limits"),
		EventBusName:   getEnv("EVENT_BUS_NAME", "paperplay-events"),

		// Lambda configuration
		IsLambda:           getEnvBool("IS_LAMBDA", false),
		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),

		// NLP collaborators
		AnnotatorURL:  getEnv("ANNOTATOR_URL", "http://localhost:9090"),
		SummarizerURL: getEnv("SUMMARIZER_URL", "http://localhost:9091"),
		NLPTimeout:    time.Duration(getEnvInt("NLP_TIMEOUT_SECONDS", 30)) * time.Second,
		MaxPaperBytes: int64(getEnvInt("MAX_PAPER_BYTES", 16*1024*1024)),

		// Storage
		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),
		GameCacheTTL:   getEnvInt("GAME_CACHE_TTL_SECONDS", 300),

		// Authentication
		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "paperplay-backend"),

		// Logging and features
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig for backwards compatibility
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.StorageBackend != "memory" && c.StorageBackend != "dynamodb" {
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.StorageBackend == "dynamodb" {
			if c.GamesTable == "" {
				return fmt.Errorf("GAMES_TABLE is required")
			}
			if c.ProgressTable == "" {
				return fmt.Errorf("PROGRESS_TABLE is required")
			}
		}
		if c.EventBusName == "" {
			return fmt.Errorf("EVENT_BUS_NAME is required")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
