package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Events   EventsConfig
	OpenAI   OpenAIConfig
	Local    LocalModelConfig
	Summary  SummaryConfig
	Log      LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"summary_engine"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// EventsConfig holds event bus configuration
type EventsConfig struct {
	NATSURL      string `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	SummaryTopic string `envconfig:"EVENT_TOPIC_SUMMARY" default:"meetings.summary"`
}

// OpenAIConfig holds the primary LLM summarizer configuration
type OpenAIConfig struct {
	APIKey         string        `envconfig:"OPENAI_API_KEY" default:""`
	BaseURL        string        `envconfig:"OPENAI_BASE_URL" default:""`
	Model          string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	MaxTokens      int           `envconfig:"OPENAI_MAX_TOKENS" default:"1000"`
	Temperature    float32       `envconfig:"OPENAI_TEMPERATURE" default:"0.3"`
	RequestTimeout time.Duration `envconfig:"OPENAI_REQUEST_TIMEOUT" default:"30s"`
}

// LocalModelConfig holds the fallback summarization model configuration
type LocalModelConfig struct {
	URL       string        `envconfig:"LOCAL_MODEL_URL" default:"http://localhost:8100/summarize"`
	MaxChars  int           `envconfig:"LOCAL_MODEL_MAX_CHARS" default:"1024"`
	MaxLength int           `envconfig:"LOCAL_MODEL_MAX_LENGTH" default:"200"`
	MinLength int           `envconfig:"LOCAL_MODEL_MIN_LENGTH" default:"50"`
	Timeout   time.Duration `envconfig:"LOCAL_MODEL_TIMEOUT" default:"60s"`
}

// SummaryConfig holds the summary pipeline configuration
type SummaryConfig struct {
	MinMeetingDuration int           `envconfig:"SUMMARY_MIN_MEETING_DURATION" default:"60"`
	MaxInputLength     int           `envconfig:"SUMMARY_MAX_INPUT_LENGTH" default:"8000"`
	TargetLength       int           `envconfig:"SUMMARY_TARGET_LENGTH" default:"200"`
	CacheTTL           time.Duration `envconfig:"CACHE_TTL_SUMMARY" default:"1h"`
	AnalysisWorkers    int           `envconfig:"SUMMARY_ANALYSIS_WORKERS" default:"4"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	File       string `envconfig:"LOG_FILE" default:""`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"3"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Summary.MinMeetingDuration < 0 {
		return fmt.Errorf("SUMMARY_MIN_MEETING_DURATION must not be negative")
	}
	if c.Summary.AnalysisWorkers < 1 {
		return fmt.Errorf("SUMMARY_ANALYSIS_WORKERS must be at least 1")
	}
	if c.Local.MinLength > c.Local.MaxLength {
		return fmt.Errorf("LOCAL_MODEL_MIN_LENGTH must not exceed LOCAL_MODEL_MAX_LENGTH")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
