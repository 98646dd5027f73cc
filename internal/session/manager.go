package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/balancer"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/dal"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/logger"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/metrics"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/pubsub"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/roster"
)

const (
	// DefaultTeamCount is the team count of a new session
	DefaultTeamCount = 3
	// DefaultRosterSize is the number of blank participants of a new session
	DefaultRosterSize = 10

	maxSaveAttempts = 3
)

// Recorder receives the team summary of every successful balance
type Recorder interface {
	RecordBalance(ctx context.Context, sessionID string, stats []models.TeamStats) error
}

// Manager runs lifecycle operations against stored sessions. Operations on
// the same session are serialized; different sessions never block each other.
type Manager struct {
	store      dal.SessionDAL
	controller *Controller

	publisher pubsub.Publisher
	recorder  Recorder
	metrics   *metrics.Metrics

	teamCount  int
	rosterSize int
	ttl        time.Duration
	now        func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithPublisher publishes an event for every applied operation
func WithPublisher(p pubsub.Publisher) ManagerOption {
	return func(m *Manager) { m.publisher = p }
}

// WithRecorder sends balance summaries to an analytics sink
func WithRecorder(r Recorder) ManagerOption {
	return func(m *Manager) { m.recorder = r }
}

// WithMetrics instruments operations
func WithMetrics(mt *metrics.Metrics) ManagerOption {
	return func(m *Manager) { m.metrics = mt }
}

// WithDefaults sets the team count and roster size of new sessions
func WithDefaults(teamCount, rosterSize int) ManagerOption {
	return func(m *Manager) {
		m.teamCount = teamCount
		m.rosterSize = rosterSize
	}
}

// WithTTL sets how long an untouched session survives. Zero disables purging.
func WithTTL(ttl time.Duration) ManagerOption {
	return func(m *Manager) { m.ttl = ttl }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a manager over store using b for balancing and shuffling
func NewManager(store dal.SessionDAL, b *balancer.Balancer, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:      store,
		controller: NewController(b),
		teamCount:  DefaultTeamCount,
		rosterSize: DefaultRosterSize,
		now:        time.Now,
		locks:      make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateOptions overrides the defaults of a new session. Zero values keep
// the manager defaults.
type CreateOptions struct {
	TeamCount  int
	RosterSize *int
	// RosterText, when set, is imported instead of blank participants
	RosterText string
}

// ParticipantUpdate changes one participant. Nil fields are left as is.
type ParticipantUpdate struct {
	ID     string
	Name   *string
	Rating *models.Rating
}

// Create stores a new session and returns it
func (m *Manager) Create(ctx context.Context, opts CreateOptions) (*models.Session, error) {
	start := m.now()

	teamCount := m.teamCount
	if opts.TeamCount != 0 {
		teamCount = opts.TeamCount
	}
	size := m.rosterSize
	if opts.RosterSize != nil {
		size = *opts.RosterSize
	}

	s := &models.Session{
		ID:        uuid.NewString(),
		CreatedAt: start.UnixMilli(),
		UpdatedAt: start.UnixMilli(),
	}
	if err := SetTeamCount(s, teamCount); err != nil {
		return nil, err
	}
	if opts.RosterText != "" {
		s.Roster = roster.Parse(opts.RosterText)
	} else {
		if size < 0 || size > models.MaxRosterSize {
			return nil, models.ErrInvalidRosterSize
		}
		s.Roster = roster.Blank(size)
	}

	err := m.store.CreateSession(ctx, s)
	m.observe(pubsub.SessionCreate, err == nil, err, start)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	logger.Info("Session created", "session_id", s.ID, "team_count", s.TeamCount, "roster_size", len(s.Roster))
	m.publish(pubsub.SessionCreate, s, nil)
	m.refreshGauge(ctx)
	return s, nil
}

// Get returns a snapshot of the session
func (m *Manager) Get(ctx context.Context, id string) (*models.Session, error) {
	return m.store.GetSession(ctx, id)
}

// Delete removes the session
func (m *Manager) Delete(ctx context.Context, id string) error {
	start := m.now()
	unlock := m.lock(id)
	err := m.store.DeleteSession(ctx, id)
	unlock()

	m.observe(pubsub.SessionDelete, err == nil, err, start)
	if err != nil {
		return err
	}

	m.forget(id)
	m.publish(pubsub.SessionDelete, &models.Session{ID: id}, nil)
	m.refreshGauge(ctx)
	return nil
}

// Balance replaces the assignment with a fresh tiered balance
func (m *Manager) Balance(ctx context.Context, id string) (*models.Session, error) {
	s, _, err := m.apply(ctx, id, pubsub.TeamsBalance, func(s *models.Session) (bool, error) {
		return true, m.controller.Balance(s)
	})
	if err != nil {
		return nil, err
	}

	if m.metrics != nil {
		m.metrics.ObserveRosterSize(len(s.Roster))
	}
	if m.recorder != nil {
		if err := m.recorder.RecordBalance(ctx, s.ID, balancer.Summarize(s.Assignment)); err != nil {
			logger.Warn("Failed to record balance", "session_id", s.ID, "error", err)
		}
	}
	return s, nil
}

// Randomize shuffles the roster and resets ratings. applied is false while
// the randomize-lock is set.
func (m *Manager) Randomize(ctx context.Context, id string) (*models.Session, bool, error) {
	return m.apply(ctx, id, pubsub.TeamsRandomize, func(s *models.Session) (bool, error) {
		return m.controller.Randomize(s), nil
	})
}

// Undo restores the previous assignment. applied is false without history.
func (m *Manager) Undo(ctx context.Context, id string) (*models.Session, bool, error) {
	return m.apply(ctx, id, pubsub.TeamsUndo, func(s *models.Session) (bool, error) {
		return Undo(s), nil
	})
}

// Reset sets every rating to neutral and clears the assignment
func (m *Manager) Reset(ctx context.Context, id string) (*models.Session, error) {
	s, _, err := m.apply(ctx, id, pubsub.TeamsReset, func(s *models.Session) (bool, error) {
		Reset(s)
		return true, nil
	})
	return s, err
}

// SetTeamCount changes the team count used by the next balance
func (m *Manager) SetTeamCount(ctx context.Context, id string, n int) (*models.Session, error) {
	s, _, err := m.apply(ctx, id, pubsub.TeamsCount, func(s *models.Session) (bool, error) {
		return true, SetTeamCount(s, n)
	})
	return s, err
}

// SetShowDetails toggles per-team rating details
func (m *Manager) SetShowDetails(ctx context.Context, id string, show bool) (*models.Session, error) {
	s, _, err := m.apply(ctx, id, pubsub.TeamsDetails, func(s *models.Session) (bool, error) {
		s.ShowDetails = show
		return true, nil
	})
	return s, err
}

// UpdateParticipant renames and/or re-rates one participant
func (m *Manager) UpdateParticipant(ctx context.Context, id string, u ParticipantUpdate) (*models.Session, error) {
	if u.Name == nil && u.Rating == nil {
		return nil, models.ErrEmptyUpdate
	}
	s, _, err := m.apply(ctx, id, pubsub.RosterUpdate, func(s *models.Session) (bool, error) {
		if u.Name != nil {
			if err := Rename(s, u.ID, *u.Name); err != nil {
				return false, err
			}
		}
		if u.Rating != nil {
			if err := Rate(s, u.ID, *u.Rating); err != nil {
				return false, err
			}
		}
		return true, nil
	})
	return s, err
}

// Resize grows or truncates the roster to n participants
func (m *Manager) Resize(ctx context.Context, id string, n int) (*models.Session, error) {
	s, _, err := m.apply(ctx, id, pubsub.RosterUpdate, func(s *models.Session) (bool, error) {
		return true, Resize(s, n)
	})
	return s, err
}

// Import replaces the roster with the participants parsed from text and
// returns how many were kept
func (m *Manager) Import(ctx context.Context, id, text string) (*models.Session, int, error) {
	var count int
	s, _, err := m.apply(ctx, id, pubsub.RosterUpdate, func(s *models.Session) (bool, error) {
		count = Import(s, text)
		return true, nil
	})
	return s, count, err
}

// Replace swaps in a whole roster
func (m *Manager) Replace(ctx context.Context, id string, participants []models.Participant) (*models.Session, error) {
	s, _, err := m.apply(ctx, id, pubsub.RosterUpdate, func(s *models.Session) (bool, error) {
		if err := Replace(s, participants); err != nil {
			return false, err
		}
		return true, nil
	})
	return s, err
}

// Export renders the current assignment as text
func (m *Manager) Export(ctx context.Context, id string) (string, error) {
	s, err := m.store.GetSession(ctx, id)
	if err != nil {
		return "", err
	}
	return roster.Format(s.Assignment), nil
}

// Stats summarizes the teams of the current assignment
func (m *Manager) Stats(ctx context.Context, id string) ([]models.TeamStats, error) {
	s, err := m.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return balancer.Summarize(s.Assignment), nil
}

// PurgeExpired deletes sessions idle for longer than the TTL
func (m *Manager) PurgeExpired(ctx context.Context) (int, error) {
	if m.ttl <= 0 {
		return 0, nil
	}

	ids, err := m.store.PurgeSessions(ctx, m.now().Add(-m.ttl))
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}

	for _, id := range ids {
		m.forget(id)
		m.publish(pubsub.SessionDelete, &models.Session{ID: id}, map[string]interface{}{"reason": "expired"})
	}
	if len(ids) > 0 {
		logger.Info("Purged idle sessions", "count", len(ids), "ttl", m.ttl.String())
		if m.metrics != nil {
			m.metrics.Purged(len(ids))
		}
	}
	m.refreshGauge(ctx)
	return len(ids), nil
}

// StartSweeper purges expired sessions every interval until ctx is done
func (m *Manager) StartSweeper(ctx context.Context, interval time.Duration) {
	if m.ttl <= 0 || interval <= 0 {
		logger.Info("Session sweeper disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := m.PurgeExpired(ctx); err != nil {
					logger.Error("Failed to purge sessions", "error", err)
				}
			}
		}
	}()
}

// mutation changes a loaded session and reports whether anything happened.
// A mutation that is not applied is neither saved nor published.
type mutation func(s *models.Session) (bool, error)

func (m *Manager) apply(ctx context.Context, id, op string, fn mutation) (*models.Session, bool, error) {
	start := m.now()
	unlock := m.lock(id)
	defer unlock()

	var (
		s       *models.Session
		applied bool
		err     error
	)
	for attempt := 1; ; attempt++ {
		s, err = m.store.GetSession(ctx, id)
		if err != nil {
			break
		}

		applied, err = fn(s)
		if err != nil || !applied {
			break
		}

		s.UpdatedAt = m.now().UnixMilli()
		err = m.store.SaveSession(ctx, s)
		if errors.Is(err, dal.ErrVersionConflict) && attempt < maxSaveAttempts {
			logger.Warn("Session changed while saving, retrying", "session_id", id, "op", op, "attempt", attempt)
			if m.metrics != nil {
				m.metrics.VersionConflict()
			}
			continue
		}
		break
	}

	m.observe(op, applied, err, start)
	if err != nil {
		return nil, false, err
	}

	if applied {
		logger.Debug("Session updated", "session_id", id, "op", op, "version", s.Version)
		m.publish(op, s, nil)
	}
	return s, applied, nil
}

func (m *Manager) lock(id string) func() {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (m *Manager) forget(id string) {
	m.mu.Lock()
	delete(m.locks, id)
	m.mu.Unlock()
}

func (m *Manager) publish(op string, s *models.Session, extra map[string]interface{}) {
	if m.publisher == nil {
		return
	}

	payload := map[string]interface{}{
		"sessionId": s.ID,
		"version":   s.Version,
	}
	for k, v := range extra {
		payload[k] = v
	}
	m.publisher.Publish(pubsub.Event{Type: op, Payload: payload})
}

func (m *Manager) observe(op string, applied bool, err error, start time.Time) {
	if m.metrics == nil {
		return
	}

	result := "applied"
	switch {
	case err != nil:
		result = "error"
	case !applied:
		result = "noop"
	}
	m.metrics.ObserveOperation(op, result, m.now().Sub(start))
}

func (m *Manager) refreshGauge(ctx context.Context) {
	if m.metrics == nil {
		return
	}

	n, err := m.store.CountSessions(ctx)
	if err != nil {
		logger.Warn("Failed to count sessions", "error", err)
		return
	}
	m.metrics.SetSessions(n)
}
