package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dmitrijs2005/unconfessional/internal/flagx"
	"github.com/dmitrijs2005/unconfessional/internal/models"
	"github.com/dmitrijs2005/unconfessional/internal/timex"
)

// fileConfig is the DTO decoded from JSON or TOML. Zero values leave the
// corresponding Config field untouched.
type fileConfig struct {
	DataDir              string         `json:"data_dir" toml:"data_dir"`
	DatabasePath         string         `json:"database_path" toml:"database_path"`
	LockoutCheckInterval timex.Duration `json:"lockout_check_interval" toml:"lockout_check_interval"`
	LockoutDuration      timex.Duration `json:"lockout_duration" toml:"lockout_duration"`
	MaxFailedAttempts    int            `json:"max_failed_attempts" toml:"max_failed_attempts"`
	LogPath              *string        `json:"log_path" toml:"log_path"`
	LogLevel             string         `json:"log_level" toml:"log_level"`
	ViewMode             string         `json:"view_mode" toml:"view_mode"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return fmt.Errorf("decode config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	fc.apply(cfg)
	return nil
}

func (fc fileConfig) apply(cfg *Config) {
	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.LockoutCheckInterval.Duration != 0 {
		cfg.LockoutCheckInterval = fc.LockoutCheckInterval.Duration
	}
	if fc.LockoutDuration.Duration != 0 {
		cfg.LockoutDuration = fc.LockoutDuration.Duration
	}
	if fc.MaxFailedAttempts != 0 {
		cfg.MaxFailedAttempts = fc.MaxFailedAttempts
	}
	// An explicit empty log_path disables logging.
	if fc.LogPath != nil {
		cfg.LogPath = *fc.LogPath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.ViewMode != "" {
		cfg.ViewMode = models.ViewMode(fc.ViewMode)
	}
}
