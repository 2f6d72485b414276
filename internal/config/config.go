package config

import (
	"fmt"
	"time"

	"github.com/IgorGrieder/shortlink/internal/infrastructure/validation"
	"github.com/joho/godotenv"
)

const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Storage   StorageConfig
	MongoDB   MongoDBConfig
	Postgres  PostgresConfig
	Shortener ShortenerConfig
	OTel      OTelConfig
}

type AppConfig struct {
	Name     string `validate:"notblank"`
	Version  string
	Env      string `validate:"required"`
	LogLevel string `validate:"oneof=debug info warn error"`
}

type ServerConfig struct {
	Port string `validate:"required,numeric"`
	Host string
}

type StorageConfig struct {
	Backend string `validate:"oneof=mongo postgres memory"`
}

type MongoDBConfig struct {
	URI        string `validate:"required_if=Enabled true"`
	Database   string `validate:"notblank"`
	Collection string `validate:"notblank"`
	TTLIndex   bool
	Enabled    bool
}

type PostgresConfig struct {
	DSN     string `validate:"required_if=Enabled true"`
	Enabled bool
}

type ShortenerConfig struct {
	LinkTTL        time.Duration `validate:"gt=0"`
	RedirectStatus int           `validate:"oneof=302 307"` // temporary redirects only
}

type OTelConfig struct {
	Enabled  bool
	Endpoint string `validate:"required_if=Enabled true"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	backend := GetEnv("STORAGE_BACKEND", BackendMongo)

	cfg := &Config{
		App: AppConfig{
			Name:     GetEnv("APP_NAME", "shortlink"),
			Version:  GetEnv("APP_VERSION", "0.1.0"),
			Env:      GetEnv("APP_ENV", "development"),
			LogLevel: GetEnv("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port: GetEnv("APP_PORT", "8080"),
			Host: GetEnv("APP_HOST", "localhost"),
		},
		Storage: StorageConfig{
			Backend: backend,
		},
		MongoDB: MongoDBConfig{
			URI:        GetEnv("DB_CONN_STR", GetEnv("MONGODB_URI", "")),
			Database:   GetEnv("MONGODB_DATABASE", "url-shortener"),
			Collection: GetEnv("MONGODB_COLLECTION", "urls"),
			TTLIndex:   GetEnvBool("MONGODB_TTL_INDEX", false),
			Enabled:    backend == BackendMongo,
		},
		Postgres: PostgresConfig{
			DSN:     GetEnv("POSTGRES_DSN", DefaultPostgresDSN()),
			Enabled: backend == BackendPostgres,
		},
		Shortener: ShortenerConfig{
			LinkTTL:        GetEnvDuration("LINK_TTL", 7*24*time.Hour),
			RedirectStatus: GetEnvInt("REDIRECT_STATUS", 302),
		},
		OTel: OTelConfig{
			Enabled:  GetEnvBool("OTEL_ENABLED", false),
			Endpoint: GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
		},
	}

	if err := validation.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
