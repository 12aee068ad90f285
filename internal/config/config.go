package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBPath       string
	SecretKey    string
	GeminiAPIKey string
	GeminiModel  string
	FruitAPIURL  string
	DatasetPath  string // overrides the bundled dataset when set
	CookieSecure bool
}

// Load reads the environment (an optional .env file first) and fills in
// defaults. Nothing here is fatal: missing keys disable the feature that
// needs them.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "nutritrack.db")),
		SecretKey:    getEnv("SECRET_KEY", "change_me_in_production"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		FruitAPIURL:  getEnv("FRUIT_API_URL", ""),
		DatasetPath:  getEnv("DATASET_PATH", ""),
		CookieSecure: getEnvBool("COOKIE_SECURE", false),
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value == "1" || value == "true" || value == "yes"
}
