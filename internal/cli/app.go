package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/unconfessional/internal/config"
	"github.com/dmitrijs2005/unconfessional/internal/lockout"
	"github.com/dmitrijs2005/unconfessional/internal/logging"
	"github.com/dmitrijs2005/unconfessional/internal/models"
	"github.com/dmitrijs2005/unconfessional/internal/scramble"
	"github.com/dmitrijs2005/unconfessional/internal/services"
)

type App struct {
	config    *config.Config
	journal   services.JournalService
	scrambler *scramble.Scrambler
	log       logging.Logger
	view      models.ViewMode
	reader    *bufio.Reader
	out       io.Writer
	inFd      int
	now       func() time.Time
}

// NewApp builds an App reading from stdin and writing to stdout.
func NewApp(c *config.Config, journal services.JournalService, log logging.Logger) *App {
	return &App{
		config:    c,
		journal:   journal,
		scrambler: scramble.NewScrambler(scramble.DefaultTable(), nil),
		log:       log.With("component", "cli"),
		view:      c.ViewMode,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		inFd:      int(os.Stdin.Fd()),
		now:       time.Now,
	}
}

// Run starts the lockout watcher and blocks in the REPL until the user exits
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartLockoutWatcher(ctx, a.config.LockoutCheckInterval)

	fmt.Fprintln(a.out, "Welcome to unconfessional (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

// status is shown in the prompt: the entry count and how many are locked.
func (a *App) status() string {
	entries := a.journal.List(context.Background())
	locked := 0
	now := a.now()
	for _, e := range entries {
		if lockout.IsLocked(e, now) {
			locked++
		}
	}
	if locked > 0 {
		return fmt.Sprintf("(%d entries, %d locked)", len(entries), locked)
	}
	return fmt.Sprintf("(%d entries)", len(entries))
}

// StartLockoutWatcher clears elapsed lockouts every interval until ctx is
// done.
func (a *App) StartLockoutWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := a.journal.ExpireLockouts(ctx); n > 0 {
				a.log.Info(ctx, "lockouts lifted", "count", n)
			}

		case <-ctx.Done():
			return
		}
	}
}
