package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("exists = true for a missing file")
	}
	if resolved == "" {
		t.Error("resolved path should be reported even when missing")
	}
	if cfg.Update.Workers != 4 {
		t.Errorf("default workers = %d, want 4", cfg.Update.Workers)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("default logging = %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "DEBUG"
format = "json"

[filter]
exclude = ["繁体", " "]
include_enabled = true

[filter.weights]
"1080" = 10

[update]
workers = 8
include_old = true
`)

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("exists = false for a present file")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want lowercased debug", cfg.Logging.Level)
	}
	if len(cfg.Filter.Exclude) != 1 || cfg.Filter.Exclude[0] != "繁体" {
		t.Errorf("exclude = %v, blank terms should be dropped", cfg.Filter.Exclude)
	}
	if cfg.Filter.Weights["1080"] != 10 {
		t.Errorf("weights = %v", cfg.Filter.Weights)
	}
	if cfg.Update.Workers != 8 || !cfg.Update.IncludeOld {
		t.Errorf("update = %+v", cfg.Update)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"bad level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad workers", "[update]\nworkers = -1\n", "update.workers"},
		{"negative weight", "[filter.weights]\n\"1080\" = -5\n", "filter.weights"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadExpandsPaths(t *testing.T) {
	path := writeConfig(t, "[paths]\ndata_dir = \"~/anisub-data\"\n")

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasPrefix(cfg.Paths.DataDir, "~") {
		t.Errorf("data_dir %q not expanded", cfg.Paths.DataDir)
	}
	if !filepath.IsAbs(cfg.Paths.DataDir) {
		t.Errorf("data_dir %q not absolute", cfg.Paths.DataDir)
	}
	if cfg.DatabasePath() != filepath.Join(cfg.Paths.DataDir, "anisub.db") {
		t.Errorf("database path = %q", cfg.DatabasePath())
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("sample config not found after CreateSample")
	}
	defaults := Default()
	if cfg.Update.Workers != defaults.Update.Workers {
		t.Errorf("sample workers = %d, want default %d", cfg.Update.Workers, defaults.Update.Workers)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("directory %q not created", dir)
		}
	}
}
