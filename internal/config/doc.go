// Package config loads runtime configuration for the unconfessional CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     ".toml" are decoded as TOML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path of the journal database
//	-i int      lockout expiry check interval (seconds)
//	-l string   log file path (empty disables logging)
//	-v string   entry view mode: grid or list
//
// # File schema
//
// Durations accept strings like "1s" or integer nanoseconds:
//
//	{
//	  "data_dir": "/home/me/.unconfessional",
//	  "database_path": "journal.db",
//	  "lockout_check_interval": "1s",
//	  "lockout_duration": "30s",
//	  "max_failed_attempts": 3,
//	  "log_path": "unconfessional.log",
//	  "log_level": "info",
//	  "view_mode": "grid"
//	}
//
// Relative database and log paths are resolved against DataDir.
package config
