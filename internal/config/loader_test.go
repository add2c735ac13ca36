package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/festops/scoreboard-service/internal/config"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
logger:
  level: debug
  env: dev
server:
  addr: ":9090"
mongo:
  uri: mongodb://db:27017
  database: fest
  connectTimeout: 5s
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("server.addr = %q", cfg.Server.Addr)
	}
	if cfg.Mongo.URI != "mongodb://db:27017" || cfg.Mongo.Database != "fest" {
		t.Errorf("mongo = %+v", cfg.Mongo)
	}
	if cfg.Mongo.ConnectTimeout != 5*time.Second {
		t.Errorf("connectTimeout = %v, want 5s", cfg.Mongo.ConnectTimeout)
	}
	// Defaults fill what the file omits.
	if cfg.Mongo.Collection != "activities" {
		t.Errorf("collection default = %q, want activities", cfg.Mongo.Collection)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("logger.level = %q", cfg.Logger.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
