package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Translate  TranslateConfig
	Gemini     GeminiConfig
	Downstream DownstreamConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type TranslateConfig struct {
	APIKey        string
	Endpoint      string
	RetryAttempts int
	RetryBackoff  time.Duration
	CacheSize     int
}

type GeminiConfig struct {
	APIKey         string
	RelevanceModel string
	TitleModel     string
	TitleUseLLM    bool
}

type DownstreamConfig struct {
	URL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Translate: TranslateConfig{
			APIKey:        getEnv("GOOGLE_TRANSLATE_API_KEY", ""),
			Endpoint:      getEnv("GOOGLE_TRANSLATE_ENDPOINT", "https://translation.googleapis.com/language/translate/v2"),
			RetryAttempts: getEnvAsInt("TRANSLATE_RETRY_ATTEMPTS", 2),
			RetryBackoff:  time.Duration(getEnvAsInt("TRANSLATE_RETRY_BACKOFF_MS", 600)) * time.Millisecond,
			CacheSize:     getEnvAsInt("TRANSLATE_CACHE_SIZE", 50000),
		},
		Gemini: GeminiConfig{
			APIKey:         getEnv("GOOGLE_API_KEY", ""),
			RelevanceModel: getEnv("RELEVANCE_MODEL", "gemini-2.0-flash"),
			TitleModel:     getEnv("TITLE_MODEL", "gemini-1.5-flash"),
			TitleUseLLM:    getEnvAsBool("TITLE_USE_LLM", false),
		},
		Downstream: DownstreamConfig{
			URL: getEnv("KISANSAATHI_URL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
