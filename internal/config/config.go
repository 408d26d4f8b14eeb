// Package config loads and saves the scholarhub TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "scholarhub"

// Config holds all scholarhub configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Profile    ProfileConfig    `toml:"profile"`
	Appearance AppearanceConfig `toml:"appearance"`
	Display    DisplayConfig    `toml:"display"`
}

// Expense id styles accepted in [general] id_style.
const (
	IDStyleUUID     = "uuid"
	IDStyleSequence = "sequence"
)

// GeneralConfig holds storage and listing preferences.
type GeneralConfig struct {
	StatePath   string `toml:"state_path,omitempty"`
	RecentLimit int    `toml:"recent_limit"`
	IDStyle     string `toml:"id_style,omitempty"`
}

// ProfileConfig remembers the last signed-in email.
type ProfileConfig struct {
	Email string `toml:"email,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DisplayConfig controls how amounts are printed.
type DisplayConfig struct {
	Currency string `toml:"currency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			RecentLimit: 10,
		},
		Appearance: AppearanceConfig{
			Theme: "campus-indigo",
		},
		Display: DisplayConfig{
			Currency: "BDT",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the state database
// and the TUI log.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// StatePath returns the state database path, honoring the configured override.
func (c Config) StatePath() string {
	if c.General.StatePath != "" {
		return c.General.StatePath
	}
	return filepath.Join(DataDir(), "state.db")
}

// LogPath is where the TUI writes its log.
func LogPath() string {
	return filepath.Join(DataDir(), appName+".log")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.General.RecentLimit <= 0 {
		cfg.General.RecentLimit = DefaultConfig().General.RecentLimit
	}
	if cfg.Display.Currency == "" {
		cfg.Display.Currency = DefaultConfig().Display.Currency
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
