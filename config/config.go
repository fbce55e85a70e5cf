package config

import (
	"os"
	"strconv"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendValkey = "valkey"
)

// Config holds the service settings read from the environment.
type Config struct {
	ListenAddr     string
	SQLitePath     string
	CacheBackend   string
	ValkeyAddr     string
	ValkeyPassword string
	ValkeyTLS      bool
	HistoryLimit   int
}

func FromEnv() Config {
	return Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		SQLitePath:     getEnv("SQLITE_PATH", "chatbot.db"),
		CacheBackend:   getEnv("CACHE_BACKEND", CacheBackendMemory),
		ValkeyAddr:     os.Getenv("VALKEY_INIT_ADDRESS"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		ValkeyTLS:      os.Getenv("VALKEY_TLS") == "true",
		HistoryLimit:   getEnvInt("HISTORY_LIMIT", 5),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
