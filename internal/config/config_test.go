package config

import (
	"strings"
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("DB_CONN_STR", "mongodb://localhost:27017")
	t.Setenv("LINK_TTL", "")
	t.Setenv("REDIRECT_STATUS", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.Backend != BackendMongo {
		t.Errorf("backend = %q, want %q", cfg.Storage.Backend, BackendMongo)
	}
	if cfg.MongoDB.Database != "url-shortener" || cfg.MongoDB.Collection != "urls" {
		t.Errorf("unexpected mongo defaults: %+v", cfg.MongoDB)
	}
	if cfg.Shortener.LinkTTL != 7*24*time.Hour {
		t.Errorf("link ttl = %v, want 168h", cfg.Shortener.LinkTTL)
	}
	if cfg.Shortener.RedirectStatus != 302 {
		t.Errorf("redirect status = %d, want 302", cfg.Shortener.RedirectStatus)
	}
}

func TestFromEnv_MongoURIFallback(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "mongo")
	t.Setenv("DB_CONN_STR", "")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MongoDB.URI != "mongodb://db:27017" {
		t.Errorf("uri = %q, want MONGODB_URI value", cfg.MongoDB.URI)
	}
}

func TestFromEnv_MongoRequiresConnectionString(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "mongo")
	t.Setenv("DB_CONN_STR", "")
	t.Setenv("MONGODB_URI", "")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error when no mongo connection string is set")
	}
}

func TestFromEnv_MemoryNeedsNoDatabase(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("DB_CONN_STR", "")
	t.Setenv("MONGODB_URI", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MongoDB.Enabled || cfg.Postgres.Enabled {
		t.Errorf("memory backend should disable database configs: %+v %+v", cfg.MongoDB, cfg.Postgres)
	}
}

func TestFromEnv_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown backend", "STORAGE_BACKEND", "cassandra"},
		{"permanent redirect", "REDIRECT_STATUS", "301"},
		{"non-numeric port", "APP_PORT", "http"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"non-positive ttl", "LINK_TTL", "-1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORAGE_BACKEND", "memory")
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			if err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), "invalid configuration") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
