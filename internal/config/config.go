// Package config holds runtime settings for the thesisvault CLI.
package config

import (
	"path/filepath"

	"github.com/dmitrijs2005/thesisvault/internal/activity"
)

// Config holds runtime settings.
//
// Fields:
//   - DataDir: directory keeping the database, keychain and journal files.
//   - DatabaseFile: SQLite file name inside DataDir.
//   - KeychainFile: keychain file name inside DataDir.
//   - ActivityLimit: how many recent-activity entries are retained.
type Config struct {
	DataDir       string
	DatabaseFile  string
	KeychainFile  string
	ActivityLimit int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".thesisvault"
	c.DatabaseFile = "vault.db"
	c.KeychainFile = "keychain"
	c.ActivityLimit = activity.DefaultLimit
}

// DatabasePath returns the full path of the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// KeychainPath returns the full path of the keychain file.
func (c *Config) KeychainPath() string {
	return filepath.Join(c.DataDir, c.KeychainFile)
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was named with -c/-config). Command-line
// overrides are applied later by the CLI layer, so precedence stays
// defaults -> JSON -> flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	return cfg
}
