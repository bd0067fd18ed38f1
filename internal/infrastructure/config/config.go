package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Storage
	StorageBackend string // "sqlite" or "file"
	SQLitePath     string
	DataFile       string // JSON document used by the file backend
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		StorageBackend:  getenvDefault("STORAGE_BACKEND", "sqlite"),
		SQLitePath:      getenvDefault("SQLITE_PATH", "palabras.db"),
		DataFile:        getenvDefault("DATA_FILE", "data/palabras.json"),
	}

	if cfg.StorageBackend != "sqlite" && cfg.StorageBackend != "file" {
		log.Fatalf("config: STORAGE_BACKEND=%q is not valid: must be sqlite or file", cfg.StorageBackend)
	}
	return cfg
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
