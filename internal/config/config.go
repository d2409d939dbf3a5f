package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort            string
	TasksFile          string
	TrustedProxies     []string
	CorsAllowedOrigins []string
	TranslationFolder  string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:            getEnv("APP_PORT", "3000"),
		TasksFile:          getEnv("TASKS_FILE", "task.json"),
		TrustedProxies:     parseList(os.Getenv("TRUSTED_PROXIES")),
		CorsAllowedOrigins: parseList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		TranslationFolder:  getEnv("TRANSLATION_FOLDER", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// parseList splits a comma separated value, dropping blank entries.
func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
