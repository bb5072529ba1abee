// Package models defines the journal data model shared by the store, the
// lockout gate and the CLI.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/unconfessional/internal/common"
	"github.com/google/uuid"
)

// Entry is one sealed journal record. Only FailureCount and LockoutUntil
// change after creation.
type Entry struct {
	// ID is a time-ordered UUIDv7.
	ID string `json:"id"`

	Title string `json:"title"`

	// Content is the scrambled text shown by default.
	Content string `json:"content"`

	// ActualContent is the original text. No operation reveals it.
	ActualContent string `json:"actualContent"`

	CreatedAt time.Time `json:"createdAt"`

	// FailureCount counts failed decipher attempts since the last reset.
	FailureCount int `json:"failureCount"`

	// LockoutUntil is the end of the lockout window in Unix milliseconds.
	LockoutUntil *int64 `json:"lockoutUntil,omitempty"`
}

// NewEntry builds an entry created at now with a fresh identifier.
func NewEntry(title, content, actual string, now time.Time) (Entry, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Entry{}, fmt.Errorf("generate entry id: %w", err)
	}
	return Entry{
		ID:            id.String(),
		Title:         strings.TrimSpace(title),
		Content:       content,
		ActualContent: actual,
		CreatedAt:     now.UTC(),
	}, nil
}

// DisplayTitle returns the title, or a placeholder when it is empty.
func (e Entry) DisplayTitle() string {
	if e.Title == "" {
		return common.UntitledEntry
	}
	return e.Title
}

// LockedUntil returns the lockout deadline and whether one is set.
func (e Entry) LockedUntil() (time.Time, bool) {
	if e.LockoutUntil == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*e.LockoutUntil), true
}

// WithLockout returns a copy of e locked until t. A zero t clears the lockout.
func (e Entry) WithLockout(t time.Time) Entry {
	if t.IsZero() {
		e.LockoutUntil = nil
		return e
	}
	ms := t.UnixMilli()
	e.LockoutUntil = &ms
	return e
}
