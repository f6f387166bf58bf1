package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	JobSearch JobSearchConfig
	Gemini    GeminiConfig
	Redis     RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// JobSearchConfig configures the upstream job search API. With no APIKey
// the service runs entirely on fallback sample data.
type JobSearchConfig struct {
	BaseURL  string
	APIKey   string
	APIHost  string
	Timeout  time.Duration
	Cooldown time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return def
		}
		return d
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.JobSearch = JobSearchConfig{
		BaseURL:  opt("JSEARCH_BASE_URL"),
		APIKey:   opt("RAPIDAPI_KEY"),
		APIHost:  opt("RAPIDAPI_HOST"),
		Timeout:  optDuration("JSEARCH_TIMEOUT", 10*time.Second),
		Cooldown: optDuration("JSEARCH_COOLDOWN", 5*time.Minute),
	}

	cfg.Gemini = GeminiConfig{
		APIKey: opt("GEMINI_API_KEY"),
		Model:  opt("GEMINI_MODEL"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      optDuration("REDIS_TTL", 10*time.Minute),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
