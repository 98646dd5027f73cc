package dal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDAL implements SessionDAL using SQLite
type SQLiteDAL struct {
	sqlStore
}

// NewSQLiteDAL creates a new SQLite data access layer
func NewSQLiteDAL(dbPath string) (*SQLiteDAL, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	// A single connection keeps ":memory:" databases shared and avoids
	// SQLITE_BUSY between writers
	db.SetMaxOpenConns(1)

	dal := &SQLiteDAL{sqlStore{db: db}}
	if err := dal.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return dal, nil
}

func (s *SQLiteDAL) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		team_count INTEGER NOT NULL,
		assignment TEXT NOT NULL DEFAULT 'null',
		history TEXT NOT NULL DEFAULT 'null',
		randomize_locked BOOLEAN NOT NULL DEFAULT 0,
		message TEXT NOT NULL DEFAULT '',
		show_details BOOLEAN NOT NULL DEFAULT 0,
		version INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS session_participants (
		session_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		participant_id TEXT NOT NULL,
		name TEXT NOT NULL,
		rating TEXT NOT NULL,
		PRIMARY KEY (session_id, position),
		FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at);
	`

	_, err := s.db.Exec(schema)
	return err
}
