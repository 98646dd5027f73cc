package dal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

// MemoryDAL implements SessionDAL using in-memory storage
type MemoryDAL struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemoryDAL creates a new in-memory data access layer
func NewMemoryDAL() *MemoryDAL {
	return &MemoryDAL{
		sessions: make(map[string]*models.Session),
	}
}

func (m *MemoryDAL) CreateSession(ctx context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[s.ID]; exists {
		return fmt.Errorf("session %s already exists", s.ID)
	}

	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *MemoryDAL) GetSession(ctx context.Context, id string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, models.ErrSessionNotFound)
	}

	// Copy so callers can't race with stored state
	return s.Clone(), nil
}

func (m *MemoryDAL) SaveSession(ctx context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.sessions[s.ID]
	if !ok {
		return fmt.Errorf("session %s: %w", s.ID, models.ErrSessionNotFound)
	}
	if stored.Version != s.Version {
		return fmt.Errorf("session %s at version %d, have %d: %w", s.ID, stored.Version, s.Version, ErrVersionConflict)
	}

	s.Version++
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *MemoryDAL) DeleteSession(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, models.ErrSessionNotFound)
	}
	delete(m.sessions, id)
	return nil
}

func (m *MemoryDAL) PurgeSessions(ctx context.Context, before time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := before.UnixMilli()
	purged := []string{}
	for id, s := range m.sessions {
		if s.UpdatedAt < cutoff {
			delete(m.sessions, id)
			purged = append(purged, id)
		}
	}
	return purged, nil
}

func (m *MemoryDAL) CountSessions(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions), nil
}

func (m *MemoryDAL) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryDAL) Close() error {
	return nil
}
