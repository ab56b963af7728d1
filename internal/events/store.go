// Package events keeps a small audit trail of lifecycle operations
// (save creation and deletion, instance starts and stops) in SQLite.
package events

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Event is one recorded lifecycle operation. At is the UTC timestamp text
// SQLite stored for the row.
type Event struct {
	ID   int64  `json:"id"`
	At   string `json:"at"`
	Kind string `json:"kind"`
	Save string `json:"save"`
}

// Kinds recorded by the HTTP layer.
const (
	KindSaveCreated     = "save-created"
	KindSaveDeleted     = "save-deleted"
	KindInstanceStarted = "instance-started"
	KindInstanceStopped = "instance-stopped"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the event database.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		kind TEXT NOT NULL,
		save TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create events table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one event.
func (s *Store) Record(kind, save string) error {
	_, err := s.db.Exec("INSERT INTO events (kind, save) VALUES (?, ?)", kind, save)
	return err
}

// Recent returns up to limit events, newest first.
func (s *Store) Recent(limit int) ([]Event, error) {
	rows, err := s.db.Query(
		"SELECT id, at, kind, save FROM events ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]Event, 0, limit)
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.At, &e.Kind, &e.Save); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
