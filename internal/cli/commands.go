package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/dmitrijs2005/unconfessional/internal/common"
	"github.com/dmitrijs2005/unconfessional/internal/editor"
	"github.com/dmitrijs2005/unconfessional/internal/lockout"
	"github.com/dmitrijs2005/unconfessional/internal/models"
)

// Write prompts for a title, lets the user compose the body and seals the
// result as a new entry. Only the scrambled text is ever echoed back.
func (a *App) Write(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title (optional)", a.out)
	if err != nil {
		return err
	}

	session := editor.NewSession(a.scrambler.Scramble)
	sealed, err := a.compose(session)
	if err != nil {
		return err
	}
	if !sealed {
		fmt.Fprintln(a.out, "Draft discarded.")
		return nil
	}

	e, err := a.journal.Seal(ctx, title, session)
	if errors.Is(err, common.ErrEmptyEntry) {
		fmt.Fprintln(a.out, "Nothing to seal.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Sealed %q.\n%s\n", e.DisplayTitle(), e.Content)
	return nil
}

// List prints every entry, newest first, in the current view mode.
func (a *App) List(ctx context.Context) error {
	entries := a.journal.List(ctx)
	fmt.Fprintln(a.out, renderEntries(a.view, entries, a.now(), a.maxFailures()))
	return nil
}

func (a *App) SetView(mode models.ViewMode) error {
	a.view = mode
	fmt.Fprintf(a.out, "View set to %s.\n", mode)
	return nil
}

// Show prints one entry by list number or id.
func (a *App) Show(ctx context.Context, ref string) error {
	e, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderEntry(e, a.now(), a.maxFailures()))
	return nil
}

// Decipher spends one attempt on an entry. The cipher never yields; enough
// attempts lock the entry for a while.
func (a *App) Decipher(ctx context.Context, ref string) error {
	target, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}

	e, outcome, err := a.journal.Decipher(ctx, target.ID)
	if err != nil {
		return err
	}

	switch outcome {
	case lockout.OutcomeFailed:
		fmt.Fprintf(a.out, "The cipher holds. %d of %d attempts spent.\n", e.FailureCount, a.maxFailures())
	case lockout.OutcomeLocked:
		fmt.Fprintf(a.out, "Too many attempts. %q is locked for %ds.\n",
			e.DisplayTitle(), seconds(lockout.Remaining(e, a.now())))
	case lockout.OutcomeRejected:
		fmt.Fprintf(a.out, "%q is locked. Try again in %ds.\n",
			e.DisplayTitle(), seconds(lockout.Remaining(e, a.now())))
	}
	return nil
}

// Clear erases the whole journal after confirmation.
func (a *App) Clear(ctx context.Context) error {
	ok, err := confirm(a.reader, "Erase every entry?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Nothing erased.")
		return nil
	}
	a.journal.Clear(ctx)
	fmt.Fprintln(a.out, "Journal cleared.")
	return nil
}

// resolve finds an entry by its 1-based list number, full id or unique id
// prefix.
func (a *App) resolve(ctx context.Context, ref string) (models.Entry, error) {
	entries := a.journal.List(ctx)

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(entries) {
			return models.Entry{}, fmt.Errorf("entry %d: %w", n, common.ErrorNotFound)
		}
		return entries[n-1], nil
	}

	if e, ok := lo.Find(entries, func(e models.Entry) bool { return e.ID == ref }); ok {
		return e, nil
	}
	matches := lo.Filter(entries, func(e models.Entry, _ int) bool {
		return strings.HasPrefix(e.ID, ref)
	})
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Entry{}, fmt.Errorf("entry %s: %w", ref, common.ErrorNotFound)
	}
	return models.Entry{}, fmt.Errorf("entry %s: %w", ref, common.ErrAmbiguousRef)
}

func (a *App) maxFailures() int {
	if a.config == nil || a.config.MaxFailedAttempts <= 0 {
		return lockout.DefaultMaxFailures
	}
	return a.config.MaxFailedAttempts
}
