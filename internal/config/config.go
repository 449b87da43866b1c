package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds hogview configuration.
type Config struct {
	UI        UIConfig        `toml:"ui"`
	Analyzer  AnalyzerConfig  `toml:"analyzer"`
	Creatures CreaturesConfig `toml:"creatures"`
}

// UIConfig controls display options.
type UIConfig struct {
	Color bool `toml:"color"`
	Grid  bool `toml:"grid"`
}

// AnalyzerConfig controls the external analysis executable.
type AnalyzerConfig struct {
	Binary string `toml:"binary"` // empty = discover next to hogview, target/release, $PATH
	Engine string `toml:"engine"`
}

// CreaturesConfig controls the decorative sprites.
type CreaturesConfig struct {
	Enabled bool `toml:"enabled"`
	Count   int  `toml:"count"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI:        UIConfig{Color: true, Grid: true},
		Analyzer:  AnalyzerConfig{Engine: "syn"},
		Creatures: CreaturesConfig{Enabled: true, Count: 2},
	}
}

// ConfigDir returns the hogview config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "hogview")
}

func configPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() *Config {
	cfg := Default()
	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}
	_ = toml.Unmarshal(data, cfg)
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
