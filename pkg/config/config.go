package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Load when GROQ_API_KEY is not set.
var ErrMissingAPIKey = errors.New("GROQ_API_KEY is required")

type Config struct {
	Port        string
	ProjectName string
	Version     string

	CatalogBaseURL string
	CatalogTimeout time.Duration

	GroqAPIKey      string
	GroqBaseURL     string
	GroqModel       string
	GroqTemperature float64
	GroqMaxTokens   int
	LLMTimeout      time.Duration

	AllowedOrigins []string

	LogLevel  string
	LogFormat string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Port:            v.GetString("PORT"),
		ProjectName:     v.GetString("PROJECT_NAME"),
		Version:         v.GetString("VERSION"),
		CatalogBaseURL:  v.GetString("DUMMYJSON_BASE_URL"),
		CatalogTimeout:  v.GetDuration("CATALOG_TIMEOUT"),
		GroqAPIKey:      strings.TrimSpace(v.GetString("GROQ_API_KEY")),
		GroqBaseURL:     v.GetString("GROQ_BASE_URL"),
		GroqModel:       v.GetString("GROQ_MODEL"),
		GroqTemperature: v.GetFloat64("GROQ_TEMPERATURE"),
		GroqMaxTokens:   v.GetInt("GROQ_MAX_TOKENS"),
		LLMTimeout:      v.GetDuration("LLM_TIMEOUT"),
		AllowedOrigins:  splitList(v.GetString("ALLOWED_ORIGINS")),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8000")
	v.SetDefault("PROJECT_NAME", "Product Chatbot API")
	v.SetDefault("VERSION", "1.0.0")
	v.SetDefault("DUMMYJSON_BASE_URL", "https://dummyjson.com")
	v.SetDefault("CATALOG_TIMEOUT", "10s")
	v.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	v.SetDefault("GROQ_TEMPERATURE", 0.7)
	v.SetDefault("GROQ_MAX_TOKENS", 1024)
	v.SetDefault("LLM_TIMEOUT", "30s")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Validate reports the first setting the service cannot start with.
func (c Config) Validate() error {
	if c.GroqAPIKey == "" {
		return ErrMissingAPIKey
	}
	if c.GroqTemperature < 0 || c.GroqTemperature > 1 {
		return fmt.Errorf("GROQ_TEMPERATURE must be between 0 and 1, got %v", c.GroqTemperature)
	}
	if c.GroqMaxTokens <= 0 {
		return fmt.Errorf("GROQ_MAX_TOKENS must be positive, got %d", c.GroqMaxTokens)
	}
	if c.CatalogTimeout <= 0 {
		return errors.New("CATALOG_TIMEOUT must be a positive duration")
	}
	if c.LLMTimeout <= 0 {
		return errors.New("LLM_TIMEOUT must be a positive duration")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
