package state

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// State remembers the last session between runs.
type State struct {
	LastFolder string    `toml:"last_folder"`
	LastOutput string    `toml:"last_output"`
	UpdatedAt  time.Time `toml:"updated_at"`
}

func statePath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "hogview", "state.toml")
}

// Load reads the state file, returning empty state if it doesn't exist.
func Load() *State {
	s := &State{}
	data, err := os.ReadFile(statePath())
	if err != nil {
		return s
	}
	_ = toml.Unmarshal(data, s)
	return s
}

// Save writes the state file to disk.
func Save(s *State) error {
	path := statePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}

// Remember records the folder and output file of a successful run.
func Remember(folder, output string) error {
	s := Load()
	s.LastFolder = folder
	s.LastOutput = output
	s.UpdatedAt = time.Now()
	return Save(s)
}
