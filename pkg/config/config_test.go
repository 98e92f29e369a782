package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "dev" {
		t.Fatalf("expected App.Env dev, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "5000" {
		t.Fatalf("expected App.Port 5000, got %q", cfg.App.Port)
	}
	if cfg.DB.Driver != DriverSQLite {
		t.Fatalf("expected sqlite driver, got %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN != "file:inventory.db?_fk=1" {
		t.Fatalf("unexpected derived DSN %q", cfg.DB.DSN)
	}
	if cfg.History.Actor != "admin" {
		t.Fatalf("expected default actor admin, got %q", cfg.History.Actor)
	}
	if cfg.Import.MaxUploadMB != 10 {
		t.Fatalf("expected default upload limit 10, got %d", cfg.Import.MaxUploadMB)
	}
	if len(cfg.HTTP.CORSOrigins) != 1 || cfg.HTTP.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected CORS origins %v", cfg.HTTP.CORSOrigins)
	}
}

func TestLoadSQLitePathOverride(t *testing.T) {
	t.Setenv("INVENTORY_DB_PATH", "/tmp/stock.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.DB.DSN != "file:/tmp/stock.db?_fk=1" {
		t.Fatalf("unexpected derived DSN %q", cfg.DB.DSN)
	}
}

func TestLoadExplicitDSNWins(t *testing.T) {
	t.Setenv("INVENTORY_DB_DSN", "file:custom.db?_fk=1&cache=shared")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.DB.DSN != "file:custom.db?_fk=1&cache=shared" {
		t.Fatalf("expected explicit DSN to be kept, got %q", cfg.DB.DSN)
	}
}

func TestLoadPostgresRequiresDSN(t *testing.T) {
	t.Setenv("INVENTORY_DB_DRIVER", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected postgres without DSN to fail")
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("INVENTORY_DB_DRIVER", "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown driver to fail")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
