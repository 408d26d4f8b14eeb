package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if Exists() {
		t.Fatal("Exists() = true before Save")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := DefaultConfig()
	want.Profile.Email = "student@example.edu"
	want.Appearance.Theme = "terminal"
	want.General.RecentLimit = 5
	want.General.StatePath = "/tmp/elsewhere.db"

	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	info, err := os.Stat(ConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config perm = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FillsZeroValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, appName, "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	raw := "[general]\nrecent_limit = 0\n[display]\ncurrency = \"\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.RecentLimit != 10 {
		t.Errorf("RecentLimit = %d, want 10", cfg.General.RecentLimit)
	}
	if cfg.Display.Currency != "BDT" {
		t.Errorf("Currency = %q, want BDT", cfg.Display.Currency)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, appName, "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load of malformed file returned nil error")
	}
}

func TestStatePath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg := DefaultConfig()
	if got, want := cfg.StatePath(), filepath.Join("/data", appName, "state.db"); got != want {
		t.Errorf("StatePath() = %q, want %q", got, want)
	}
	cfg.General.StatePath = "/custom/state.db"
	if got := cfg.StatePath(); got != "/custom/state.db" {
		t.Errorf("StatePath() override = %q", got)
	}
}
