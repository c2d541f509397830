package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Addr != ":8000" {
		t.Errorf("expected default addr :8000, got %s", cfg.Addr)
	}
	if cfg.DBURL != "mongodb://localhost:27017" {
		t.Errorf("unexpected default db_url: %s", cfg.DBURL)
	}
	if cfg.DBName != "memora" {
		t.Errorf("unexpected default db_name: %s", cfg.DBName)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("unexpected default log_level: %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("unexpected default log_format: %s", cfg.LogFormat)
	}
	if cfg.CORSOrigins != "*" {
		t.Errorf("unexpected default cors_origins: %s", cfg.CORSOrigins)
	}
	if cfg.ShutdownTimeout != 10 {
		t.Errorf("unexpected default shutdown_timeout: %d", cfg.ShutdownTimeout)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MEMORA_ADDR", ":9999")
	t.Setenv("MEMORA_DB_NAME", "cards")
	t.Setenv("MEMORA_LOG_FORMAT", "text")
	t.Setenv("MEMORA_SHUTDOWN_TIMEOUT", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != ":9999" {
		t.Errorf("expected addr :9999, got %s", cfg.Addr)
	}
	if cfg.DBName != "cards" {
		t.Errorf("expected db_name cards, got %s", cfg.DBName)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected log_format text, got %s", cfg.LogFormat)
	}
	if cfg.ShutdownTimeout != 30 {
		t.Errorf("expected shutdown_timeout 30, got %d", cfg.ShutdownTimeout)
	}
	// Незатронутые ключи остаются по умолчанию.
	if cfg.DBURL != "mongodb://localhost:27017" {
		t.Errorf("expected default db_url, got %s", cfg.DBURL)
	}
}

func TestLoad_LegacyEnvFallbacks(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://db:27017")
	t.Setenv("DATABASE_NAME", "legacy")
	t.Setenv("PORT", "8123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DBURL != "mongodb://db:27017" {
		t.Errorf("expected legacy db url, got %s", cfg.DBURL)
	}
	if cfg.DBName != "legacy" {
		t.Errorf("expected legacy db name, got %s", cfg.DBName)
	}
	if cfg.Addr != ":8123" {
		t.Errorf("expected addr :8123 from PORT, got %s", cfg.Addr)
	}
}

func TestLoad_EnvWinsOverLegacy(t *testing.T) {
	t.Setenv("MEMORA_DB_URL", "mongodb://primary:27017")
	t.Setenv("DATABASE_URL", "mongodb://legacy:27017")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DBURL != "mongodb://primary:27017" {
		t.Errorf("expected MEMORA_DB_URL to win, got %s", cfg.DBURL)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":7070\"\ndb_name: filedb\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("MEMORA_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != ":7070" {
		t.Errorf("expected addr :7070 from file, got %s", cfg.Addr)
	}
	if cfg.DBName != "filedb" {
		t.Errorf("expected db_name filedb from file, got %s", cfg.DBName)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("MEMORA_CONFIG", path)
	t.Setenv("MEMORA_ADDR", ":6060")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != ":6060" {
		t.Errorf("expected env to override file, got %s", cfg.Addr)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("MEMORA_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("MEMORA_SHUTDOWN_TIMEOUT", "-5")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative shutdown_timeout")
	}
}

func TestCORSOriginList(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		want    []string
	}{
		{name: "wildcard", origins: "*", want: []string{"*"}},
		{
			name:    "list with spaces",
			origins: "http://a.example, http://b.example",
			want:    []string{"http://a.example", "http://b.example"},
		},
		{name: "empty", origins: "", want: []string{}},
		{name: "trailing comma", origins: "http://a.example,", want: []string{"http://a.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{CORSOrigins: tt.origins}
			if got := c.CORSOriginList(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
