package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/unconfessional/internal/flagx"
	"github.com/dmitrijs2005/unconfessional/internal/models"
)

// parseFlags populates selected Config fields from command-line flags.
// Only -d, -i, -l and -v are looked at; everything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-i", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "journal database path")
	interval := fs.Int("i", int(cfg.LockoutCheckInterval.Seconds()), "lockout check interval (in seconds)")
	fs.StringVar(&cfg.LogPath, "l", cfg.LogPath, "log file path")
	view := fs.String("v", string(cfg.ViewMode), "view mode: grid or list")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.LockoutCheckInterval = time.Duration(*interval) * time.Second
		case "v":
			cfg.ViewMode = models.ViewMode(*view)
		}
	})
	return nil
}
