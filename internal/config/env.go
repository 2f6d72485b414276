package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// lookup returns the trimmed value of key; blank values count as unset.
func lookup(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != ""
}

// parsed reads key through parse, falling back on missing or invalid values.
func parsed[T any](key string, fallback T, parse func(string) (T, error)) T {
	value, ok := lookup(key)
	if !ok {
		return fallback
	}
	out, err := parse(value)
	if err != nil {
		return fallback
	}
	return out
}

func GetEnv(key, fallback string) string {
	if value, ok := lookup(key); ok {
		return value
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	return parsed(key, fallback, strconv.Atoi)
}

func GetEnvBool(key string, fallback bool) bool {
	return parsed(key, fallback, strconv.ParseBool)
}

func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	return parsed(key, fallback, time.ParseDuration)
}

// DefaultPostgresDSN assembles a key/value DSN from the DB_* variables, used
// when POSTGRES_DSN is not set.
func DefaultPostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", "postgres"),
		GetEnv("DB_NAME", "url-shortener"),
		GetEnv("DB_SSL_MODE", "disable"),
	)
}
