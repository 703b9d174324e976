package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ghodss/yaml"
)

// DefaultFileName is the config file consulted when no pipeline flags are
// given on the command line.
const DefaultFileName = "taskreport.json"

// ReadFile loads configuration from path. The file is nominally JSON with
// keys repos, author, since, until, filename and separate_sheets; since the
// decoder goes through ghodss/yaml, a hand-edited YAML variant also parses.
// A missing file is reported with os.ErrNotExist so callers can offer to
// create one.
func ReadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefaultFile writes a starter config for the user to edit.
func WriteDefaultFile(path string) error {
	def := Config{
		Repos: []string{"./"},
		Since: "2025-07-01",
		Until: "2025-09-15",
	}
	b, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0644)
}
