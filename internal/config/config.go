package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server      ServerConfig
	Translation TranslationConfig
	Words       WordsConfig
	BotToken    string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        string `validate:"required,numeric"`
	Environment string `validate:"oneof=production development"`
}

// TranslationConfig holds translation provider settings
type TranslationConfig struct {
	Provider          string        `validate:"oneof=google libretranslate"`
	SourceLanguage    string        `validate:"required"`
	TargetLanguage    string        `validate:"required"`
	Timeout           time.Duration `validate:"gt=0"`
	GoogleAPIKey      string
	LibreTranslateURL string `validate:"required_if=Provider libretranslate,omitempty,url"`
	LibreTranslateKey string
}

// WordsConfig holds word-list locations
type WordsConfig struct {
	CommonWordsPath string `validate:"required"`
	NounsPath       string `validate:"required"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("TRANSLATE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("TRANSLATE_TIMEOUT is invalid: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "9001"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Translation: TranslationConfig{
			Provider:          strings.ToLower(getEnv("TRANSLATE_PROVIDER", "google")),
			SourceLanguage:    getEnv("SOURCE_LANGUAGE", "en"),
			TargetLanguage:    getEnv("TARGET_LANGUAGE", "pl"),
			Timeout:           timeout,
			GoogleAPIKey:      os.Getenv("GOOGLE_TRANSLATE_API_KEY"),
			LibreTranslateURL: os.Getenv("LIBRETRANSLATE_URL"),
			LibreTranslateKey: os.Getenv("LIBRETRANSLATE_API_KEY"),
		},
		Words: WordsConfig{
			CommonWordsPath: getEnv("COMMON_WORDS_PATH", "resources/english-words.txt"),
			NounsPath:       getEnv("NOUNS_PATH", "resources/nouns.txt"),
		},
		BotToken: os.Getenv("BOT_TOKEN"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// BotEnabled reports whether the Telegram bot should run
func (c *Config) BotEnabled() bool {
	return c.BotToken != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
