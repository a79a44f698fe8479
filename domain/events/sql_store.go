package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const queryTimeout = 3 * time.Second

type dialect struct {
	driver string
	schema []string
	// bind rewrites ? placeholders for drivers that number them
	bind func(query string) string
}

var sqliteDialect = dialect{
	driver: "sqlite",
	schema: []string{`
CREATE TABLE IF NOT EXISTS review_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    event_id TEXT NOT NULL UNIQUE,
    session_id TEXT NOT NULL,
    name TEXT NOT NULL,
    payload TEXT NOT NULL,
    created_at_ms BIGINT NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_review_events_session ON review_events (session_id, id)`,
	},
	bind: func(query string) string { return query },
}

var postgresDialect = dialect{
	driver: "postgres",
	schema: []string{`
CREATE TABLE IF NOT EXISTS review_events (
    id BIGSERIAL PRIMARY KEY,
    event_id TEXT NOT NULL UNIQUE,
    session_id TEXT NOT NULL,
    name TEXT NOT NULL,
    payload TEXT NOT NULL,
    created_at_ms BIGINT NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_review_events_session ON review_events (session_id, id)`,
	},
	bind: numberPlaceholders,
}

func numberPlaceholders(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLEventStore keeps review events in SQLite or Postgres as JSON payloads
type SQLEventStore struct {
	db      *sql.DB
	dialect dialect
}

// NewSQLiteEventStore opens (or creates) a local SQLite database. ":memory:"
// keeps everything in memory.
func NewSQLiteEventStore(dbPath string) (*SQLEventStore, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open(sqliteDialect.driver, dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return newSQLEventStore(ctx, db, sqliteDialect)
}

// NewPostgresEventStore connects to Postgres using dsn
func NewPostgresEventStore(dsn string) (*SQLEventStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("empty postgres dsn")
	}

	db, err := sql.Open(postgresDialect.driver, dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return newSQLEventStore(ctx, db, postgresDialect)
}

func newSQLEventStore(ctx context.Context, db *sql.DB, d dialect) (*SQLEventStore, error) {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	for _, stmt := range d.schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create review_events schema: %w", err)
		}
	}
	return &SQLEventStore{db: db, dialect: d}, nil
}

// Append stores the event; appending the same EventID twice is a no-op
func (s *SQLEventStore) Append(event Event) error {
	sessionID := ExtractSessionID(event)
	if sessionID == "" {
		return fmt.Errorf("event %s has no sessionID", event.Name())
	}
	eventID := ExtractEventID(event)
	if eventID == "" {
		return fmt.Errorf("event %s has no eventID", event.Name())
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.Name(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	_, err = s.db.ExecContext(ctx, s.dialect.bind(`
INSERT INTO review_events (event_id, session_id, name, payload, created_at_ms)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (event_id) DO NOTHING`),
		eventID, sessionID, event.Name(), string(payload), time.Now().UTC().UnixMilli())
	return err
}

// LoadEvents retrieves all events for the given session, oldest first.
func (s *SQLEventStore) LoadEvents(sessionID string) ([]Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, s.dialect.bind(`
SELECT name, payload
FROM review_events
WHERE session_id = ?
ORDER BY id ASC`), sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []Event{}
	for rows.Next() {
		var name, payload string
		if err := rows.Scan(&name, &payload); err != nil {
			return nil, err
		}
		event, err := Decode(name, []byte(payload))
		if err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	return result, rows.Err()
}

func (s *SQLEventStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
