// Package lockout implements the per-entry decipher gate: every attempt
// fails, and too many failures lock the entry for a while.
package lockout

import (
	"time"

	"github.com/dmitrijs2005/unconfessional/internal/models"
)

const (
	DefaultMaxFailures = 3
	DefaultDuration    = 30 * time.Second
)

// Outcome describes what an attempt did to an entry.
type Outcome int

const (
	// OutcomeFailed means the attempt was counted and the entry is still open.
	OutcomeFailed Outcome = iota
	// OutcomeLocked means the attempt was counted and locked the entry.
	OutcomeLocked
	// OutcomeRejected means the entry was locked and nothing changed.
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFailed:
		return "failed"
	case OutcomeLocked:
		return "locked"
	case OutcomeRejected:
		return "rejected"
	}
	return "unknown"
}

// Gate applies a lockout policy to entries. The zero value uses the defaults.
type Gate struct {
	MaxFailures int
	Duration    time.Duration
}

// NewGate returns a gate with the given policy; non-positive values fall
// back to the defaults.
func NewGate(maxFailures int, d time.Duration) Gate {
	return Gate{MaxFailures: maxFailures, Duration: d}
}

func (g Gate) maxFailures() int {
	if g.MaxFailures <= 0 {
		return DefaultMaxFailures
	}
	return g.MaxFailures
}

func (g Gate) duration() time.Duration {
	if g.Duration <= 0 {
		return DefaultDuration
	}
	return g.Duration
}

// Attempt records one decipher attempt against e at now and returns the
// updated entry. There is no success path.
func (g Gate) Attempt(e models.Entry, now time.Time) (models.Entry, Outcome) {
	if IsLocked(e, now) {
		return e, OutcomeRejected
	}
	if _, ok := e.LockedUntil(); ok {
		// Lockout elapsed but the ticker has not cleared it yet.
		e = reset(e)
	}

	if e.FailureCount+1 < g.maxFailures() {
		e.FailureCount++
		return e, OutcomeFailed
	}
	return e.WithLockout(now.Add(g.duration())), OutcomeLocked
}

// IsLocked reports whether e is inside its lockout window at now.
func IsLocked(e models.Entry, now time.Time) bool {
	until, ok := e.LockedUntil()
	return ok && now.Before(until)
}

// Remaining returns how long e stays locked after now, never negative.
func Remaining(e models.Entry, now time.Time) time.Duration {
	until, ok := e.LockedUntil()
	if !ok {
		return 0
	}
	return max(until.Sub(now), 0)
}

// Expire resets every entry whose lockout has elapsed at now to zero
// failures and no lockout. The input slice is not modified; when nothing
// expired it is returned as is together with false.
func Expire(entries []models.Entry, now time.Time) ([]models.Entry, bool) {
	var out []models.Entry
	for i, e := range entries {
		until, ok := e.LockedUntil()
		if !ok || now.Before(until) {
			continue
		}
		if out == nil {
			out = append([]models.Entry(nil), entries...)
		}
		out[i] = reset(e)
	}
	if out == nil {
		return entries, false
	}
	return out, true
}

func reset(e models.Entry) models.Entry {
	e.FailureCount = 0
	return e.WithLockout(time.Time{})
}
