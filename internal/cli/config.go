package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ServeConfig configures the serve command. Values come from a TOML file
// with flags layered on top.
type ServeConfig struct {
	Addr  string      `toml:"addr"`
	Store StoreConfig `toml:"store"`
}

// StoreConfig selects and configures the label store backend.
type StoreConfig struct {
	Backend string `toml:"backend"` // memory, file, redis, mongo

	// File backend.
	Dir string `toml:"dir"`

	// Redis backend.
	RedisAddr string `toml:"redis_addr"`

	// Mongo backend.
	MongoURI string `toml:"mongo_uri"`
	MongoDB  string `toml:"mongo_db"`
}

// defaultServeConfig returns the config used when no file is given:
// listen on :8080 and persist labels under the user config dir.
func defaultServeConfig() ServeConfig {
	return ServeConfig{
		Addr: ":8080",
		Store: StoreConfig{
			Backend:   "file",
			RedisAddr: "localhost:6379",
			MongoURI:  "mongodb://localhost:27017",
			MongoDB:   appName,
		},
	}
}

// loadServeConfig reads a TOML config file over the defaults. An empty
// path returns the defaults; unknown keys are an error.
func loadServeConfig(path string) (ServeConfig, error) {
	cfg := defaultServeConfig()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// storeDir returns the default file-store directory using the XDG
// convention (~/.config/labelgen/labels/).
func storeDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "labels"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "labels"), nil
}
