package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir     string
	DBPath      string
	DatabaseURL string
	HTTPAddr    string
	SearchLimit int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DataDir:     getEnv("DATA_DIR", filepath.Join(cwd, "data", "proveedores")),
		DBPath:      getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		DatabaseURL: getEnv("URL_BASE_DE_DATOS", ""),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		SearchLimit: getEnvInt("SEARCH_LIMIT", 200),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
