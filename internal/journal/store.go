// Package journal holds the ordered collection of sealed entries and keeps
// it mirrored in local storage.
//
// Persistence is best effort: every mutation re-serializes the whole
// collection under a single key, and storage failures are logged and
// otherwise ignored, leaving the in-memory collection as the source of truth
// for the rest of the session.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/dmitrijs2005/unconfessional/internal/common"
	"github.com/dmitrijs2005/unconfessional/internal/logging"
	"github.com/dmitrijs2005/unconfessional/internal/models"
)

// Storage is the key/value backend the store persists into.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store is the in-memory entry collection, newest first. It is safe for
// concurrent use.
type Store struct {
	mu      sync.Mutex
	entries []models.Entry
	storage Storage
	key     string
	log     logging.Logger
}

// NewStore returns an empty store persisting under common.EntriesStorageKey.
func NewStore(storage Storage, log logging.Logger) *Store {
	return &Store{
		storage: storage,
		key:     common.EntriesStorageKey,
		log:     log.With("component", "journal"),
	}
}

// Load replaces the in-memory collection with the persisted one. A missing
// key, unreadable storage or malformed data all yield an empty store.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil

	raw, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.log.Warn(ctx, "read entries failed", "err", err)
		return
	}
	if raw == nil {
		return
	}

	var entries []models.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.log.Warn(ctx, "stored entries are malformed, starting empty", "err", err)
		return
	}
	s.entries = entries
	s.log.Debug(ctx, "entries loaded", "count", len(entries))
}

// List returns a copy of all entries, newest first.
func (s *Store) List() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (models.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Find(s.entries, func(e models.Entry) bool { return e.ID == id })
}

// Add puts e at the head of the collection and persists.
func (s *Store) Add(ctx context.Context, e models.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = slices.Insert(slices.Clone(s.entries), 0, e)
	s.persist(ctx)
}

// Replace swaps the entry with the given id for fn's result. fn reports
// whether it changed anything; nothing is persisted otherwise.
func (s *Store) Replace(ctx context.Context, id string, fn func(models.Entry) (models.Entry, bool)) (models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, idx, ok := lo.FindIndexOf(s.entries, func(e models.Entry) bool { return e.ID == id })
	if !ok {
		return models.Entry{}, fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
	}

	next, changed := fn(current)
	if !changed {
		return current, nil
	}
	next.ID = current.ID

	entries := slices.Clone(s.entries)
	entries[idx] = next
	s.entries = entries
	s.persist(ctx)
	return next, nil
}

// Update passes the whole collection to fn and installs its result when fn
// reports a change.
func (s *Store) Update(ctx context.Context, fn func([]models.Entry) ([]models.Entry, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := fn(slices.Clone(s.entries))
	if !changed {
		return false
	}
	s.entries = next
	s.persist(ctx)
	return true
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.persist(ctx)
}

// persist writes the collection, removing the key when it is empty.
// Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	if len(s.entries) == 0 {
		if err := s.storage.Delete(ctx, s.key); err != nil {
			s.log.Warn(ctx, "remove entries failed", "err", err)
		}
		return
	}

	raw, err := json.Marshal(s.entries)
	if err != nil {
		s.log.Error(ctx, "encode entries failed", "err", err)
		return
	}
	if err := s.storage.Set(ctx, s.key, raw); err != nil {
		s.log.Warn(ctx, "write entries failed", "err", err, "count", len(s.entries))
	}
}
