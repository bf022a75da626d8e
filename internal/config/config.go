package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ProviderConfig holds the credentials and endpoint of one upstream API
type ProviderConfig struct {
	APIKey  string
	BaseURL string
}

type Config struct {
	// Server
	ServerPort           string
	ServerEnv            string
	ServerHost           string // Swagger host 설정용
	FallbackRouteEnabled bool

	// Database
	DatabaseURL   string
	DBAutoMigrate bool

	// Providers
	Geocode         ProviderConfig
	Weather         ProviderConfig
	Meetup          ProviderConfig
	Yelp            ProviderConfig
	Movie           ProviderConfig
	MovieConfigURL  string
	MoviePosterSize string
	ProviderTimeout time.Duration // 0 = no client timeout

	// SigNoz
	SigNozEndpoint string
}

func Load() *Config {
	return &Config{
		// Server - PORT 우선 (Heroku 스타일), 없으면 SERVER_PORT
		ServerPort:           getEnvWithFallback("PORT", "SERVER_PORT", "3000"),
		ServerEnv:            getEnv("SERVER_ENV", "development"),
		ServerHost:           getEnv("SERVER_HOST", "localhost:3000"),
		FallbackRouteEnabled: getEnvAsBool("FALLBACK_ROUTE_ENABLED", true),

		// Database - DATABASE_URL 우선, 없으면 개별 환경변수로 구성
		DatabaseURL:   getDatabaseURL(),
		DBAutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),

		// Providers
		Geocode: ProviderConfig{
			APIKey:  getEnv("GOOGLE_MAPS_API_KEY", ""),
			BaseURL: getEnv("GEOCODE_BASE_URL", "https://maps.googleapis.com/maps/api/geocode/json"),
		},
		Weather: ProviderConfig{
			APIKey:  getEnv("DARK_SKY_API_KEY", ""),
			BaseURL: getEnv("WEATHER_BASE_URL", "https://api.darksky.net/forecast"),
		},
		Meetup: ProviderConfig{
			APIKey:  getEnv("MEETUP_API_KEY", ""),
			BaseURL: getEnv("MEETUP_BASE_URL", "https://api.meetup.com/find/upcoming_events"),
		},
		Yelp: ProviderConfig{
			APIKey:  getEnv("YELP_API_KEY", ""),
			BaseURL: getEnv("YELP_BASE_URL", "https://api.yelp.com/v3/businesses/search"),
		},
		Movie: ProviderConfig{
			APIKey:  getEnv("MOVIE_API_KEY", ""),
			BaseURL: getEnv("MOVIE_BASE_URL", "https://api.themoviedb.org/3/search/movie"),
		},
		MovieConfigURL:  getEnv("MOVIE_CONFIG_URL", "https://api.themoviedb.org/3/configuration"),
		MoviePosterSize: getEnv("MOVIE_POSTER_SIZE", "w500"),
		ProviderTimeout: getEnvAsDuration("PROVIDER_TIMEOUT", 0),

		// SigNoz
		SigNozEndpoint: getEnv("SIGNOZ_ENDPOINT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvWithFallback tries primary key first, then fallback key
func getEnvWithFallback(primary, fallback, defaultValue string) string {
	if value, exists := os.LookupEnv(primary); exists && value != "" {
		return value
	}
	if value, exists := os.LookupEnv(fallback); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvAsDuration accepts Go durations ("10s") or plain seconds ("10")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs := getEnvAsInt(key, -1); secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// getDatabaseURL returns DATABASE_URL or builds it from individual env vars
func getDatabaseURL() string {
	// 1. DATABASE_URL이 있으면 그대로 사용
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	// 2. 개별 환경변수로 구성
	host := getEnv("POSTGRES_HOST", "localhost")
	port := getEnv("POSTGRES_PORT", "5432")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "")
	dbname := getEnv("POSTGRES_DB", "city_explorer")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, dbname, sslmode)
}
