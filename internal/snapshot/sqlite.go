package snapshot

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteSlot stores the snapshot payload in a single named row of a SQLite
// database. One row per slot name; saves upsert in place.
type SQLiteSlot struct {
	db   *sql.DB
	name string
}

// OpenSQLite opens (and migrates) the slot database at the given DSN.
func OpenSQLite(dsn, name string) (*SQLiteSlot, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteSlot{db: db, name: name}, nil
}

func migrate(db *sql.DB) error {
	stmt := `CREATE TABLE IF NOT EXISTS snapshots (
		name VARCHAR(100) PRIMARY KEY,
		payload BLOB NOT NULL,
		saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Load returns the stored payload, or ErrNoSnapshot when the slot is empty.
func (s *SQLiteSlot) Load() ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM snapshots WHERE name = ?`, s.name).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return payload, nil
}

// Save upserts the payload into the slot row.
func (s *SQLiteSlot) Save(payload []byte) error {
	query := `
		INSERT INTO snapshots (name, payload, saved_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, saved_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.Exec(query, s.name, payload); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}

var _ Slot = (*SQLiteSlot)(nil)
