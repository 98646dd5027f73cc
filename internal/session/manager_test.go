package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/balancer"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/dal"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/metrics"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/mocks"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/pubsub"
)

type managerFixture struct {
	manager   *Manager
	store     *dal.MemoryDAL
	events    *mocks.MockNATSPubSub
	analytics *mocks.MockAnalytics
}

func newManagerFixture(t *testing.T, opts ...ManagerOption) *managerFixture {
	t.Helper()

	f := &managerFixture{
		store:     dal.NewMemoryDAL(),
		events:    mocks.NewMockNATSPubSub(),
		analytics: mocks.NewMockAnalytics(),
	}
	opts = append([]ManagerOption{
		WithPublisher(f.events),
		WithRecorder(f.analytics),
		WithMetrics(metrics.New()),
	}, opts...)
	f.manager = NewManager(f.store, balancer.New(balancer.WithSeed(7)), opts...)
	return f
}

func TestManagerCreateDefaults(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	s, err := f.manager.Create(ctx, CreateOptions{})
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, DefaultTeamCount, s.TeamCount)
	assert.Len(t, s.Roster, DefaultRosterSize)
	assert.Nil(t, s.Assignment)
	assert.Nil(t, s.History)
	assert.False(t, s.RandomizeLocked)
	assert.Equal(t, []string{pubsub.SessionCreate}, f.events.Types())

	stored, err := f.manager.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, stored)
}

func TestManagerCreateOptions(t *testing.T) {
	f := newManagerFixture(t, WithDefaults(4, 6))
	ctx := context.Background()

	s, err := f.manager.Create(ctx, CreateOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4, s.TeamCount)
	assert.Len(t, s.Roster, 6)

	zero := 0
	s, err = f.manager.Create(ctx, CreateOptions{TeamCount: 2, RosterSize: &zero})
	require.NoError(t, err)
	assert.Equal(t, 2, s.TeamCount)
	assert.Empty(t, s.Roster)

	s, err = f.manager.Create(ctx, CreateOptions{RosterText: "1. Ann\n2. Ben"})
	require.NoError(t, err)
	assert.Len(t, s.Roster, 2)

	_, err = f.manager.Create(ctx, CreateOptions{TeamCount: -1})
	assert.True(t, errors.Is(err, models.ErrInvalidTeamCount))

	negative := -1
	_, err = f.manager.Create(ctx, CreateOptions{RosterSize: &negative})
	assert.True(t, errors.Is(err, models.ErrInvalidRosterSize))
}

func TestManagerBalanceRecordsAndPublishes(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	s, err := f.manager.Create(ctx, CreateOptions{RosterText: "1. A\n2. B\n3. C\n4. D"})
	require.NoError(t, err)
	_, err = f.manager.SetTeamCount(ctx, s.ID, 2)
	require.NoError(t, err)

	balanced, err := f.manager.Balance(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, balanced.Assignment, 2)
	assert.Equal(t, MessageBalanced, balanced.Message)
	assert.Equal(t, int64(2), balanced.Version)

	records := f.analytics.Records()
	require.Len(t, records, 1)
	assert.Equal(t, s.ID, records[0].SessionID)
	assert.Len(t, records[0].Teams, 2)

	events := f.events.Events()
	require.Len(t, events, 3)
	last := events[2]
	assert.Equal(t, pubsub.TeamsBalance, last.Type)
	assert.Equal(t, s.ID, last.SessionID())
	assert.Equal(t, int64(2), last.Payload["version"])
}

func TestManagerBalanceSurvivesRecorderFailure(t *testing.T) {
	f := newManagerFixture(t)
	f.analytics.Err = errors.New("clickhouse unavailable")
	ctx := context.Background()

	s, err := f.manager.Create(ctx, CreateOptions{})
	require.NoError(t, err)

	_, err = f.manager.Balance(ctx, s.ID)
	assert.NoError(t, err)
}

func TestManagerNoopsAreNotSavedOrPublished(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	s, err := f.manager.Create(ctx, CreateOptions{})
	require.NoError(t, err)

	got, applied, err := f.manager.Undo(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, s.Version, got.Version)

	_, applied, err = f.manager.Randomize(ctx, s.ID)
	require.NoError(t, err)
	require.True(t, applied)

	locked, applied, err := f.manager.Randomize(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.True(t, locked.RandomizeLocked)

	assert.Equal(t, []string{pubsub.SessionCreate, pubsub.TeamsRandomize}, f.events.Types())
}

func TestManagerUndoRestoresAndUnlocks(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	s, err := f.manager.Create(ctx, CreateOptions{RosterText: "1. A\n2. B\n3. C"})
	require.NoError(t, err)

	first, err := f.manager.Balance(ctx, s.ID)
	require.NoError(t, err)
	_, applied, err := f.manager.Randomize(ctx, s.ID)
	require.NoError(t, err)
	require.True(t, applied)

	undone, applied, err := f.manager.Undo(ctx, s.ID)
	require.NoError(t, err)
	require.True(t, applied)
	assert.Equal(t, first.Assignment, undone.Assignment)
	assert.False(t, undone.RandomizeLocked)
	assert.Equal(t, MessageReverted, undone.Message)
}

func TestManagerResetUnlocksRandomize(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	s, err := f.manager.Create(ctx, CreateOptions{RosterText: "1. A\n2. B\n3. C"})
	require.NoError(t, err)

	_, applied, err := f.manager.Randomize(ctx, s.ID)
	require.NoError(t, err)
	require.True(t, applied)

	reset, err := f.manager.Reset(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, reset.RandomizeLocked)

	again, applied, err := f.manager.Randomize(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.True(t, again.RandomizeLocked)
}

func TestManagerUpdateParticipant(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	s, err := f.manager.Create(ctx, CreateOptions{RosterText: "1. A\n2. B"})
	require.NoError(t, err)
	target := s.Roster[1].ID

	name := "Bea"
	rating := models.Rating("4 (Strong)")
	got, err := f.manager.UpdateParticipant(ctx, s.ID, ParticipantUpdate{ID: target, Name: &name, Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, "Bea", got.Roster[1].Name)
	assert.Equal(t, rating, got.Roster[1].Rating)
	assert.Equal(t, target, got.Roster[1].ID)

	_, err = f.manager.UpdateParticipant(ctx, s.ID, ParticipantUpdate{ID: "missing", Name: &name})
	assert.True(t, errors.Is(err, models.ErrParticipantNotFound))

	_, err = f.manager.UpdateParticipant(ctx, s.ID, ParticipantUpdate{ID: target})
	assert.True(t, errors.Is(err, models.ErrEmptyUpdate))

	stored, err := f.manager.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Version, stored.Version, "failed updates are not saved")
}

func TestManagerRosterOperations(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	s, err := f.manager.Create(ctx, CreateOptions{})
	require.NoError(t, err)

	s, n, err := f.manager.Import(ctx, s.ID, "1. Ann\nskip me\n2. Ben")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, s.Roster, 2)

	s, err = f.manager.Resize(ctx, s.ID, 4)
	require.NoError(t, err)
	assert.Len(t, s.Roster, 4)

	_, err = f.manager.Resize(ctx, s.ID, -2)
	assert.True(t, errors.Is(err, models.ErrInvalidRosterSize))

	s, err = f.manager.Replace(ctx, s.ID, []models.Participant{{Name: "Cat", Rating: "5"}})
	require.NoError(t, err)
	require.Len(t, s.Roster, 1)
	assert.NotEmpty(t, s.Roster[0].ID)

	_, err = f.manager.Replace(ctx, s.ID, []models.Participant{{ID: "d", Name: "Dan"}, {ID: "d", Name: "Dee"}})
	assert.True(t, errors.Is(err, models.ErrDuplicateParticipant))
	kept, err := f.manager.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Roster, kept.Roster)

	s, err = f.manager.SetShowDetails(ctx, s.ID, true)
	require.NoError(t, err)
	assert.True(t, s.ShowDetails)

	_, err = f.manager.SetTeamCount(ctx, s.ID, 0)
	assert.True(t, errors.Is(err, models.ErrInvalidTeamCount))
}

func TestManagerExportAndStats(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	s, err := f.manager.Create(ctx, CreateOptions{TeamCount: 1, RosterText: "1. Ann\n2. Ben"})
	require.NoError(t, err)

	text, err := f.manager.Export(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, text)

	_, err = f.manager.Balance(ctx, s.ID)
	require.NoError(t, err)

	text, err = f.manager.Export(ctx, s.ID)
	require.NoError(t, err)
	assert.Contains(t, []string{"Team 1\nAnn\nBen", "Team 1\nBen\nAnn"}, text)

	stats, err := f.manager.Stats(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, models.TeamStats{Index: 1, Size: 2, AverageRating: 3, AllNeutral: true}, stats[0])
}

func TestManagerUnknownSession(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	_, err := f.manager.Balance(ctx, "missing")
	assert.True(t, errors.Is(err, models.ErrSessionNotFound))
	_, _, err = f.manager.Undo(ctx, "missing")
	assert.True(t, errors.Is(err, models.ErrSessionNotFound))
	_, err = f.manager.Export(ctx, "missing")
	assert.True(t, errors.Is(err, models.ErrSessionNotFound))
	assert.True(t, errors.Is(f.manager.Delete(ctx, "missing"), models.ErrSessionNotFound))

	assert.Empty(t, f.events.Events())
}

func TestManagerDelete(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	s, err := f.manager.Create(ctx, CreateOptions{})
	require.NoError(t, err)
	require.NoError(t, f.manager.Delete(ctx, s.ID))

	_, err = f.manager.Get(ctx, s.ID)
	assert.True(t, errors.Is(err, models.ErrSessionNotFound))
	assert.Equal(t, []string{pubsub.SessionCreate, pubsub.SessionDelete}, f.events.Types())
}

func TestManagerSessionsAreIsolated(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	a, err := f.manager.Create(ctx, CreateOptions{RosterText: "1. A1\n2. A2"})
	require.NoError(t, err)
	b, err := f.manager.Create(ctx, CreateOptions{RosterText: "1. B1\n2. B2"})
	require.NoError(t, err)

	_, err = f.manager.Balance(ctx, a.ID)
	require.NoError(t, err)
	_, applied, err := f.manager.Randomize(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, applied)

	untouched, err := f.manager.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, untouched)
}

func TestManagerConcurrentOperations(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	s, err := f.manager.Create(ctx, CreateOptions{RosterText: "1. A\n2. B\n3. C\n4. D\n5. E"})
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				_, err = f.manager.Balance(ctx, s.ID)
			} else {
				_, err = f.manager.SetTeamCount(ctx, s.ID, 1+i%4)
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	final, err := f.manager.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), final.Version, "every operation saved exactly once")
}

// conflictingDAL fails the first n saves with a version conflict
type conflictingDAL struct {
	*dal.MemoryDAL
	remaining atomic.Int32
	saves     atomic.Int32
}

func (c *conflictingDAL) SaveSession(ctx context.Context, s *models.Session) error {
	c.saves.Add(1)
	if c.remaining.Add(-1) >= 0 {
		return fmt.Errorf("injected: %w", dal.ErrVersionConflict)
	}
	return c.MemoryDAL.SaveSession(ctx, s)
}

func TestManagerRetriesVersionConflicts(t *testing.T) {
	store := &conflictingDAL{MemoryDAL: dal.NewMemoryDAL()}
	m := NewManager(store, balancer.New(balancer.WithSeed(1)))
	ctx := context.Background()

	s, err := m.Create(ctx, CreateOptions{})
	require.NoError(t, err)

	store.remaining.Store(2)
	_, err = m.Balance(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(3), store.saves.Load())

	store.saves.Store(0)
	store.remaining.Store(maxSaveAttempts)
	_, err = m.Balance(ctx, s.ID)
	assert.True(t, errors.Is(err, dal.ErrVersionConflict))
	assert.Equal(t, int32(maxSaveAttempts), store.saves.Load())
}

func TestManagerPurgeExpired(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	f := newManagerFixture(t, WithTTL(time.Hour), WithClock(clock))
	ctx := context.Background()

	stale, err := f.manager.Create(ctx, CreateOptions{})
	require.NoError(t, err)

	now = now.Add(50 * time.Minute)
	fresh, err := f.manager.Create(ctx, CreateOptions{})
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	n, err := f.manager.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = f.manager.Get(ctx, stale.ID)
	assert.True(t, errors.Is(err, models.ErrSessionNotFound))
	_, err = f.manager.Get(ctx, fresh.ID)
	assert.NoError(t, err)

	events := f.events.Events()
	last := events[len(events)-1]
	assert.Equal(t, pubsub.SessionDelete, last.Type)
	assert.Equal(t, stale.ID, last.SessionID())
	assert.Equal(t, "expired", last.Payload["reason"])
}

func TestManagerPurgeDisabled(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	_, err := f.manager.Create(ctx, CreateOptions{})
	require.NoError(t, err)

	n, err := f.manager.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestManagerSweeper(t *testing.T) {
	now := time.Now()
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	f := newManagerFixture(t, WithTTL(time.Minute), WithClock(clock))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := f.manager.Create(ctx, CreateOptions{})
	require.NoError(t, err)

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	f.manager.StartSweeper(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		_, err := f.manager.Get(context.Background(), s.ID)
		return errors.Is(err, models.ErrSessionNotFound)
	}, time.Second, 10*time.Millisecond)
}
