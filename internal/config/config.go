package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	BotToken string `envconfig:"BOT_TOKEN" required:"true"`

	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY" required:"true"`
	AnthropicModel  string `envconfig:"ANTHROPIC_MODEL" default:"claude-3-5-haiku-latest"`

	// Language pair the assistant translates between.
	LearningLanguage string `envconfig:"LEARNING_LANGUAGE" default:"English"`
	NativeLanguage   string `envconfig:"NATIVE_LANGUAGE" default:"Russian"`

	TranslationCacheSize int           `envconfig:"TRANSLATION_CACHE_SIZE" default:"1024"`
	TranslationCacheTTL  time.Duration `envconfig:"TRANSLATION_CACHE_TTL" default:"24h"`

	Database DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"lexibot"`
	User     string `envconfig:"DB_USER" default:"lexibot"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	return &cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
