// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"todolist/internal/model"
)

// Default values.
const (
	DefaultStorageKey = "todos.json"
	DefaultTheme      = "classic"
	configFileName    = "config.toml"
)

// Config holds the full configuration for the todo clients.
type Config struct {
	// DataDir is where the storage backend keeps its files.
	DataDir string `toml:"data_dir"`

	// StorageKey names the single key the collection lives under.
	StorageKey string `toml:"storage_key"`

	// Theme selects the CLI color theme: classic, neon, or mono.
	Theme string `toml:"theme"`

	// Seed lists the titles the collection starts with on first run.
	Seed []string `toml:"seed"`
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".todolist"), nil
}

// Load reads configuration from path if given, else from
// $TODOLIST_CONFIG, else from ~/.todolist/config.toml. A missing implicit
// file is not an error; defaults apply. $TODOLIST_DIR overrides the data
// directory last.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	explicit := path != ""
	if path == "" {
		path = strings.TrimSpace(os.Getenv("TODOLIST_CONFIG"))
		explicit = path != ""
	}
	if path == "" {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, configFileName)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			// No config file; run on defaults.
		} else {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if env := strings.TrimSpace(os.Getenv("TODOLIST_DIR")); env != "" {
		cfg.DataDir = env
	}
	return cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.DataDir == "" {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		c.DataDir = dir
	}
	if c.StorageKey == "" {
		c.StorageKey = DefaultStorageKey
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	return nil
}

// SeedItems converts the configured seed titles into the default
// collection handed to the item service on first run.
func (c *Config) SeedItems() []model.Item {
	items := make([]model.Item, 0, len(c.Seed))
	for i, title := range c.Seed {
		items = append(items, model.Item{ID: i + 1, Title: strings.TrimSpace(title)})
	}
	return items
}
