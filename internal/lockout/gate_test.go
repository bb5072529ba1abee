package lockout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/unconfessional/internal/models"
)

var t0 = time.UnixMilli(1_760_000_000_000)

func TestAttempt_ThreeFailuresLock(t *testing.T) {
	var g Gate
	e := models.Entry{ID: "a"}

	e, out := g.Attempt(e, t0)
	assert.Equal(t, OutcomeFailed, out)
	assert.Equal(t, 1, e.FailureCount)
	assert.False(t, IsLocked(e, t0))

	e, out = g.Attempt(e, t0)
	assert.Equal(t, OutcomeFailed, out)
	assert.Equal(t, 2, e.FailureCount)
	assert.False(t, IsLocked(e, t0))

	e, out = g.Attempt(e, t0)
	assert.Equal(t, OutcomeLocked, out)
	assert.NotEqual(t, 3, e.FailureCount)
	require.NotNil(t, e.LockoutUntil)
	assert.Equal(t, t0.UnixMilli()+30000, *e.LockoutUntil)
	assert.True(t, IsLocked(e, t0))
}

func TestAttempt_RejectedWhileLocked(t *testing.T) {
	var g Gate
	e := models.Entry{ID: "a", FailureCount: 2}.WithLockout(t0.Add(30 * time.Second))

	got, out := g.Attempt(e, t0.Add(29*time.Second))

	assert.Equal(t, OutcomeRejected, out)
	assert.Equal(t, e.FailureCount, got.FailureCount)
	assert.Equal(t, *e.LockoutUntil, *got.LockoutUntil)
}

func TestAttempt_AfterElapsedLockoutStartsOver(t *testing.T) {
	var g Gate
	e := models.Entry{ID: "a", FailureCount: 2}.WithLockout(t0)

	got, out := g.Attempt(e, t0)

	assert.Equal(t, OutcomeFailed, out)
	assert.Equal(t, 1, got.FailureCount)
	assert.Nil(t, got.LockoutUntil)
}

func TestAttempt_CustomPolicy(t *testing.T) {
	g := NewGate(1, time.Minute)
	e, out := g.Attempt(models.Entry{}, t0)
	assert.Equal(t, OutcomeLocked, out)
	assert.Equal(t, time.Minute, Remaining(e, t0))
}

func TestRemaining(t *testing.T) {
	e := models.Entry{}.WithLockout(t0.Add(10 * time.Second))
	assert.Equal(t, 10*time.Second, Remaining(e, t0))
	assert.Equal(t, time.Duration(0), Remaining(e, t0.Add(time.Minute)))
	assert.Equal(t, time.Duration(0), Remaining(models.Entry{}, t0))
}

func TestExpire_ResetsElapsedLockouts(t *testing.T) {
	entries := []models.Entry{
		models.Entry{ID: "a", FailureCount: 2}.WithLockout(t0),
		models.Entry{ID: "b", FailureCount: 1},
		models.Entry{ID: "c", FailureCount: 2}.WithLockout(t0.Add(time.Hour)),
	}

	out, changed := Expire(entries, t0.Add(time.Second))

	require.True(t, changed)
	assert.Equal(t, 0, out[0].FailureCount)
	assert.Nil(t, out[0].LockoutUntil)
	assert.Equal(t, entries[1], out[1])
	assert.Equal(t, entries[2], out[2])
	assert.NotNil(t, entries[0].LockoutUntil, "input must not be modified")
}

func TestExpire_NoopWhenNothingElapsed(t *testing.T) {
	entries := []models.Entry{
		models.Entry{ID: "a", FailureCount: 2}.WithLockout(t0.Add(time.Hour)),
		{ID: "b"},
	}

	out, changed := Expire(entries, t0)

	assert.False(t, changed)
	assert.Equal(t, entries, out)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "locked", OutcomeLocked.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
