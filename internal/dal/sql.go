package dal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

// sqlStore holds the queries shared by the SQLite and Postgres backends.
// Queries are written with ? placeholders and rewritten by rebind.
type sqlStore struct {
	db     *sql.DB
	rebind func(string) string
}

// dollarPlaceholders rewrites ? placeholders to $1, $2, ...
func dollarPlaceholders(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *sqlStore) q(query string) string {
	if s.rebind == nil {
		return query
	}
	return s.rebind(query)
}

func (s *sqlStore) CreateSession(ctx context.Context, sess *models.Session) error {
	assignmentJSON, historyJSON, err := encodeAssignments(sess)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, s.q(`
		INSERT INTO sessions (id, team_count, assignment, history, randomize_locked, message, show_details, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), sess.ID, sess.TeamCount, assignmentJSON, historyJSON, sess.RandomizeLocked, sess.Message, sess.ShowDetails, sess.Version, sess.CreatedAt, sess.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	if err := s.insertParticipants(ctx, tx, sess); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *sqlStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	sess := &models.Session{ID: id}
	var assignmentJSON, historyJSON string

	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT team_count, assignment, history, randomize_locked, message, show_details, version, created_at, updated_at
		FROM sessions WHERE id = ?
	`), id).Scan(&sess.TeamCount, &assignmentJSON, &historyJSON, &sess.RandomizeLocked, &sess.Message, &sess.ShowDetails, &sess.Version, &sess.CreatedAt, &sess.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, models.ErrSessionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := json.Unmarshal([]byte(assignmentJSON), &sess.Assignment); err != nil {
		return nil, fmt.Errorf("failed to decode assignment: %w", err)
	}
	if err := json.Unmarshal([]byte(historyJSON), &sess.History); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT participant_id, name, rating FROM session_participants
		WHERE session_id = ? ORDER BY position
	`), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	sess.Roster = []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		sess.Roster = append(sess.Roster, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return sess, nil
}

func (s *sqlStore) SaveSession(ctx context.Context, sess *models.Session) error {
	assignmentJSON, historyJSON, err := encodeAssignments(sess)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, s.q(`
		UPDATE sessions
		SET team_count = ?, assignment = ?, history = ?, randomize_locked = ?, message = ?, show_details = ?, version = ?, updated_at = ?
		WHERE id = ? AND version = ?
	`), sess.TeamCount, assignmentJSON, historyJSON, sess.RandomizeLocked, sess.Message, sess.ShowDetails, sess.Version+1, sess.UpdatedAt, sess.ID, sess.Version)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		var exists int
		err := tx.QueryRowContext(ctx, s.q(`SELECT COUNT(*) FROM sessions WHERE id = ?`), sess.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
		if exists == 0 {
			return fmt.Errorf("session %s: %w", sess.ID, models.ErrSessionNotFound)
		}
		return fmt.Errorf("session %s at version %d: %w", sess.ID, sess.Version, ErrVersionConflict)
	}

	if _, err := tx.ExecContext(ctx, s.q(`DELETE FROM session_participants WHERE session_id = ?`), sess.ID); err != nil {
		return fmt.Errorf("failed to clear participants: %w", err)
	}
	if err := s.insertParticipants(ctx, tx, sess); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	sess.Version++
	return nil
}

func (s *sqlStore) DeleteSession(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.q(`DELETE FROM session_participants WHERE session_id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}
	res, err := tx.ExecContext(ctx, s.q(`DELETE FROM sessions WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("session %s: %w", id, models.ErrSessionNotFound)
	}

	return tx.Commit()
}

func (s *sqlStore) PurgeSessions(ctx context.Context, before time.Time) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`SELECT id FROM sessions WHERE updated_at < ?`), before.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to list expired sessions: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan session id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	purged := []string{}
	for _, id := range ids {
		err := s.DeleteSession(ctx, id)
		if errors.Is(err, models.ErrSessionNotFound) {
			continue
		}
		if err != nil {
			return purged, err
		}
		purged = append(purged, id)
	}
	return purged, nil
}

func (s *sqlStore) CountSessions(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

func (s *sqlStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func (s *sqlStore) insertParticipants(ctx context.Context, tx *sql.Tx, sess *models.Session) error {
	for i, p := range sess.Roster {
		_, err := tx.ExecContext(ctx, s.q(`
			INSERT INTO session_participants (session_id, position, participant_id, name, rating)
			VALUES (?, ?, ?, ?, ?)
		`), sess.ID, i, p.ID, p.Name, string(p.Rating))
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}
	return nil
}

func encodeAssignments(sess *models.Session) (string, string, error) {
	assignment, err := json.Marshal(sess.Assignment)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode assignment: %w", err)
	}
	history, err := json.Marshal(sess.History)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode history: %w", err)
	}
	return string(assignment), string(history), nil
}
