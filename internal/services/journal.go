// Package services implements the journal use cases on top of the entry
// store, the editor session and the lockout gate.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/unconfessional/internal/common"
	"github.com/dmitrijs2005/unconfessional/internal/editor"
	"github.com/dmitrijs2005/unconfessional/internal/journal"
	"github.com/dmitrijs2005/unconfessional/internal/lockout"
	"github.com/dmitrijs2005/unconfessional/internal/logging"
	"github.com/dmitrijs2005/unconfessional/internal/models"
)

type JournalService interface {
	// Seal commits the session as a new entry at the head of the journal.
	Seal(ctx context.Context, title string, session *editor.Session) (models.Entry, error)
	// Decipher records one attempt against the entry. It never reveals text.
	Decipher(ctx context.Context, id string) (models.Entry, lockout.Outcome, error)
	// ExpireLockouts resets entries whose lockout elapsed and returns how many.
	ExpireLockouts(ctx context.Context) int
	List(ctx context.Context) []models.Entry
	Get(ctx context.Context, id string) (models.Entry, error)
	// Remaining returns how long the entry stays locked.
	Remaining(ctx context.Context, id string) (time.Duration, error)
	Clear(ctx context.Context)
}

type journalService struct {
	store *journal.Store
	gate  lockout.Gate
	now   func() time.Time
	log   logging.Logger
}

// NewJournalService wires a service over store. A nil now uses time.Now.
func NewJournalService(store *journal.Store, gate lockout.Gate, now func() time.Time, log logging.Logger) JournalService {
	if now == nil {
		now = time.Now
	}
	return &journalService{store: store, gate: gate, now: now, log: log}
}

func (s *journalService) Seal(ctx context.Context, title string, session *editor.Session) (models.Entry, error) {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(session.Hidden()) == "" {
		return models.Entry{}, common.ErrEmptyEntry
	}

	content, actual := session.Commit()
	e, err := models.NewEntry(title, content, actual, s.now())
	if err != nil {
		return models.Entry{}, fmt.Errorf("seal entry: %w", err)
	}

	s.store.Add(ctx, e)
	s.log.Info(ctx, "entry sealed", "id", e.ID, "length", len([]rune(actual)))
	return e, nil
}

func (s *journalService) Decipher(ctx context.Context, id string) (models.Entry, lockout.Outcome, error) {
	var outcome lockout.Outcome
	e, err := s.store.Replace(ctx, id, func(e models.Entry) (models.Entry, bool) {
		var next models.Entry
		next, outcome = s.gate.Attempt(e, s.now())
		return next, outcome != lockout.OutcomeRejected
	})
	if err != nil {
		return models.Entry{}, 0, fmt.Errorf("decipher: %w", err)
	}

	s.log.Info(ctx, "decipher attempt", "id", id, "outcome", outcome.String(), "failures", e.FailureCount)
	return e, outcome, nil
}

func (s *journalService) ExpireLockouts(ctx context.Context) int {
	now := s.now()
	expired := 0
	s.store.Update(ctx, func(entries []models.Entry) ([]models.Entry, bool) {
		next, changed := lockout.Expire(entries, now)
		for i := range entries {
			if entries[i].LockoutUntil != nil && next[i].LockoutUntil == nil {
				expired++
			}
		}
		return next, changed
	})
	if expired > 0 {
		s.log.Debug(ctx, "lockouts expired", "count", expired)
	}
	return expired
}

func (s *journalService) List(ctx context.Context) []models.Entry {
	return s.store.List()
}

func (s *journalService) Get(ctx context.Context, id string) (models.Entry, error) {
	e, ok := s.store.Get(id)
	if !ok {
		return models.Entry{}, fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
	}
	return e, nil
}

func (s *journalService) Remaining(ctx context.Context, id string) (time.Duration, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return lockout.Remaining(e, s.now()), nil
}

func (s *journalService) Clear(ctx context.Context) {
	s.store.Clear(ctx)
	s.log.Info(ctx, "journal cleared")
}
