package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/unconfessional/internal/common"
	"github.com/dmitrijs2005/unconfessional/internal/editor"
	"github.com/dmitrijs2005/unconfessional/internal/journal"
	"github.com/dmitrijs2005/unconfessional/internal/lockout"
	"github.com/dmitrijs2005/unconfessional/internal/logging"
	"github.com/dmitrijs2005/unconfessional/internal/scramble"
	"github.com/dmitrijs2005/unconfessional/internal/storage"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	svc       JournalService
	store     *journal.Store
	clock     *clock
	scrambler *scramble.Scrambler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	c := &clock{t: time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)}
	store := journal.NewStore(repos.LocalStorage, logging.NewNop())
	return &fixture{
		svc:       NewJournalService(store, lockout.Gate{}, c.now, logging.NewNop()),
		store:     store,
		clock:     c,
		scrambler: scramble.NewScrambler(scramble.DefaultTable(), nil),
	}
}

func (f *fixture) seal(t *testing.T, title, text string) string {
	t.Helper()
	s := editor.NewSession(f.scrambler.Scramble)
	s.InsertString(text)
	e, err := f.svc.Seal(context.Background(), title, s)
	require.NoError(t, err)
	return e.ID
}

func TestSeal_TypingHi(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.seal(t, "T", "hi")

	entries := f.svc.List(ctx)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, id, e.ID)
	assert.Equal(t, "T", e.Title)
	assert.Equal(t, "hi", e.ActualContent)
	require.Len(t, []rune(e.Content), 2)
	for i, orig := range "hi" {
		cands, _ := f.scrambler.Table().Candidates(orig)
		assert.Contains(t, cands, []rune(e.Content)[i])
	}
	assert.True(t, e.CreatedAt.Equal(f.clock.t))
}

func TestSeal_RequiresTitleOrContent(t *testing.T) {
	f := newFixture(t)
	s := editor.NewSession(f.scrambler.Scramble)
	s.InsertString("  \n ")

	_, err := f.svc.Seal(context.Background(), "   ", s)
	require.ErrorIs(t, err, common.ErrEmptyEntry)
	assert.Equal(t, 4, s.Len(), "rejected seal keeps the session")

	_, err = f.svc.Seal(context.Background(), "only a title", s)
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

func TestDecipher_ThreeAttemptsLock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.seal(t, "", "secret")

	e, out, err := f.svc.Decipher(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, lockout.OutcomeFailed, out)
	assert.Equal(t, 1, e.FailureCount)

	e, out, err = f.svc.Decipher(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, lockout.OutcomeFailed, out)
	assert.Equal(t, 2, e.FailureCount)

	e, out, err = f.svc.Decipher(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, lockout.OutcomeLocked, out)
	require.NotNil(t, e.LockoutUntil)
	assert.Equal(t, f.clock.t.UnixMilli()+30000, *e.LockoutUntil)

	rem, err := f.svc.Remaining(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, rem)

	f.clock.advance(10 * time.Second)
	locked, out, err := f.svc.Decipher(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, lockout.OutcomeRejected, out)
	assert.Equal(t, e.FailureCount, locked.FailureCount)
	assert.Equal(t, *e.LockoutUntil, *locked.LockoutUntil)
}

func TestExpireLockouts_ResetsAfterWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.seal(t, "", "secret")
	for i := 0; i < 3; i++ {
		_, _, err := f.svc.Decipher(ctx, id)
		require.NoError(t, err)
	}

	assert.Zero(t, f.svc.ExpireLockouts(ctx), "nothing elapsed yet")

	f.clock.advance(30 * time.Second)
	assert.Equal(t, 1, f.svc.ExpireLockouts(ctx))

	e, err := f.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, e.FailureCount)
	assert.Nil(t, e.LockoutUntil)

	assert.Zero(t, f.svc.ExpireLockouts(ctx), "second pass is a no-op")
}

func TestExpireLockouts_PersistsReset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.seal(t, "", "secret")
	for i := 0; i < 3; i++ {
		_, _, _ = f.svc.Decipher(ctx, id)
	}
	f.clock.advance(time.Minute)
	f.svc.ExpireLockouts(ctx)

	f.store.Load(ctx)
	e, ok := f.store.Get(id)
	require.True(t, ok)
	assert.Nil(t, e.LockoutUntil)
}

func TestNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.Decipher(ctx, "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = f.svc.Get(ctx, "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = f.svc.Remaining(ctx, "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seal(t, "a", "b")
	f.seal(t, "c", "d")

	f.svc.Clear(ctx)
	assert.Empty(t, f.svc.List(ctx))

	f.store.Load(ctx)
	assert.Zero(t, f.store.Len())
}
