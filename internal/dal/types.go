package dal

import (
	"context"
	"errors"
	"time"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

// ErrVersionConflict is returned by SaveSession when the stored session was
// written by someone else since it was loaded
var ErrVersionConflict = errors.New("session was modified concurrently")

// SessionDAL defines the interface for the session data access layer.
//
// Implementations hand out copies: mutating a returned session never changes
// stored state until it is passed back to SaveSession.
type SessionDAL interface {
	CreateSession(ctx context.Context, s *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
	// SaveSession stores s if the stored version still equals s.Version and
	// bumps s.Version on success.
	SaveSession(ctx context.Context, s *models.Session) error
	DeleteSession(ctx context.Context, id string) error
	// PurgeSessions deletes sessions not updated since before and returns
	// their ids.
	PurgeSessions(ctx context.Context, before time.Time) ([]string, error)
	CountSessions(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
	Close() error
}
