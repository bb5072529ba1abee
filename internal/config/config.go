package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/unconfessional/internal/models"
)

// Config holds runtime settings for the journal CLI.
type Config struct {
	DataDir              string
	DatabasePath         string
	LockoutCheckInterval time.Duration
	LockoutDuration      time.Duration
	MaxFailedAttempts    int
	LogPath              string
	LogLevel             string
	ViewMode             models.ViewMode
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = defaultDataDir()
	c.DatabasePath = "journal.db"
	c.LockoutCheckInterval = time.Second
	c.LockoutDuration = 30 * time.Second
	c.MaxFailedAttempts = 3
	c.LogPath = "unconfessional.log"
	c.LogLevel = "info"
	c.ViewMode = models.ViewGrid
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".unconfessional"
	}
	return filepath.Join(home, ".unconfessional")
}

// LoadConfig builds a Config from defaults, then the optional config file,
// then command-line flags taken from args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be repaired with a default.
func (c *Config) Validate() error {
	if _, err := models.ParseViewMode(string(c.ViewMode)); err != nil {
		return err
	}
	if c.LockoutCheckInterval <= 0 {
		return fmt.Errorf("lockout check interval must be positive, got %s", c.LockoutCheckInterval)
	}
	if c.LockoutDuration <= 0 {
		return fmt.Errorf("lockout duration must be positive, got %s", c.LockoutDuration)
	}
	if c.MaxFailedAttempts <= 0 {
		return fmt.Errorf("max failed attempts must be positive, got %d", c.MaxFailedAttempts)
	}
	return nil
}

// ResolvedDatabasePath returns DatabasePath, joined to DataDir when relative.
func (c *Config) ResolvedDatabasePath() string {
	return c.resolve(c.DatabasePath)
}

// ResolvedLogPath returns LogPath, joined to DataDir when relative. An empty
// LogPath stays empty.
func (c *Config) ResolvedLogPath() string {
	if c.LogPath == "" {
		return ""
	}
	return c.resolve(c.LogPath)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.DataDir == "" {
		return p
	}
	return filepath.Join(c.DataDir, p)
}
