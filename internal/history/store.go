package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

var (
	// ErrEmptyCommand is returned when asked to persist a blank command.
	ErrEmptyCommand = errors.New("history: empty command")
	// ErrNoStore is returned by callers that need a store when none is configured.
	ErrNoStore = errors.New("history: no store configured")
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS command_history (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id   TEXT    NOT NULL,
		command      TEXT    NOT NULL,
		submitted_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_command_history_session ON command_history(session_id)`,
}

// Entry is one persisted submission.
type Entry struct {
	ID          int64     `json:"id"`
	SessionID   string    `json:"session_id"`
	Command     string    `json:"command"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Filter narrows List. Zero values mean "no filter" and a default limit.
type Filter struct {
	SessionID string
	Limit     int
	Offset    int
}

const defaultListLimit = 50

// Store persists submitted commands in a SQL database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore wraps an open database. The caller is expected to run Migrate.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Open connects to dsn and migrates the schema. Remote libSQL URLs use the
// libsql driver; anything else is treated as a local SQLite path.
func Open(ctx context.Context, dsn string) (*Store, error) {
	driver := driverFor(dsn)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s history: %w", driver, err)
	}
	if driver == "sqlite" {
		// single writer; also keeps ":memory:" on one connection
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect history: %w", err)
	}

	s := NewStore(db)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func driverFor(dsn string) string {
	for _, scheme := range []string{"libsql://", "https://", "http://", "wss://", "ws://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "libsql"
		}
	}
	return "sqlite"
}

// Migrate creates the history table if needed.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate history: %w", err)
		}
	}
	return nil
}

// Append persists one submitted command.
func (s *Store) Append(ctx context.Context, sessionID, command string) error {
	if strings.TrimSpace(command) == "" {
		return ErrEmptyCommand
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO command_history (session_id, command, submitted_at) VALUES (?, ?, ?)`,
		sessionID, command, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// Recent returns up to limit of the newest commands across all sessions,
// oldest first, ready to seed a Navigator.
func (s *Store) Recent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT command FROM (
			SELECT id, command FROM command_history ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent history: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var cmd string
		if err := rows.Scan(&cmd); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, cmd)
	}
	return out, rows.Err()
}

// List returns entries newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]Entry, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT id, session_id, command, submitted_at FROM command_history`
	var args []any
	if f.SessionID != "" {
		query += ` WHERE session_id = ?`
		args = append(args, f.SessionID)
	}
	query += ` ORDER BY id DESC LIMIT ? OFFSET ?`
	args = append(args, limit, max(0, f.Offset))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ms int64
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Command, &ms); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.SubmittedAt = time.UnixMilli(ms).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}
