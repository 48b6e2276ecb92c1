package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
debug: true
server:
  host: 0.0.0.0
  port: 9090
storage:
  database_path: /tmp/adesua/analytics.db
catalogs:
  directory: /tmp/adesua/catalogs
  watch: false
search:
  default_limit: 10
  intent_threshold: 0.25
  ranking:
    title_term_score: 12
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug not set")
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9090 {
		t.Errorf("server: %+v", cfg.Server)
	}
	if cfg.Catalogs.WatchOrDefault() {
		t.Error("watch: explicit false ignored")
	}
	if cfg.Search.DefaultLimit != 10 {
		t.Errorf("default limit: %d", cfg.Search.DefaultLimit)
	}
	if cfg.Search.IntentThreshold != 0.25 {
		t.Errorf("intent threshold: %v", cfg.Search.IntentThreshold)
	}

	// Explicit ranking values survive, the rest are filled in.
	if cfg.Search.Ranking.TitleTermScore != 12 {
		t.Errorf("title term score: %v", cfg.Search.Ranking.TitleTermScore)
	}
	if cfg.Search.Ranking.DescriptionTermScore == 0 {
		t.Error("ranking defaults not applied")
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "debug: false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults: %+v", cfg.Server)
	}
	if cfg.Search.MaxLimit != 100 || cfg.Search.HistorySize != 10 || cfg.Search.SessionLimit != 20 {
		t.Errorf("search defaults: %+v", cfg.Search)
	}
	if cfg.Search.IntentThreshold != 0.30 {
		t.Errorf("intent threshold default: %v", cfg.Search.IntentThreshold)
	}
	if !cfg.Catalogs.WatchOrDefault() {
		t.Error("watch should default to true")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file: expected error")
	}

	bad := writeConfig(t, t.TempDir(), "server: [not a map\n")
	if _, err := Load(bad); err == nil {
		t.Error("malformed yaml: expected error")
	}
}

func TestLoad_ExpandsRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
storage:
  database_path: ./data/analytics.db
catalogs:
  directory: ./catalogs
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := filepath.Join(dir, "data/analytics.db"); cfg.Storage.DatabasePath != want {
		t.Errorf("database path: got %q, want %q", cfg.Storage.DatabasePath, want)
	}
	if want := filepath.Join(dir, "catalogs"); cfg.Catalogs.Directory != want {
		t.Errorf("catalog dir: got %q, want %q", cfg.Catalogs.Directory, want)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := &Config{}
	ApplyDefaults(cfg)
	cfg.Server.Port = 7070

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if loaded.Server.Port != 7070 {
		t.Errorf("port after round trip: %d", loaded.Server.Port)
	}
}
