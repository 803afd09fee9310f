package position

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/yllada/exforms/common"
)

const schema = `
CREATE TABLE IF NOT EXISTS window_positions (
	name     TEXT PRIMARY KEY,
	left_px  TEXT NOT NULL,
	top_px   TEXT NOT NULL,
	saved_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteStore keeps all window positions in one SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open positions database: %w", err)
	}
	// one UI thread writes; a single connection keeps :memory: databases coherent
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create positions table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads the record for name.
func (s *SQLiteStore) Load(name string) (Record, error) {
	if err := validName(name); err != nil {
		return Record{}, err
	}

	var left, top string
	err := s.db.QueryRow(`SELECT left_px, top_px FROM window_positions WHERE name = ?`, name).Scan(&left, &top)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, common.WrapError(common.ErrPositionNotFound, name)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to query position: %w", err)
	}
	return parseRecord(name, left, top)
}

// Save upserts the record for name.
func (s *SQLiteStore) Save(name string, rec Record) error {
	if err := validName(name); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO window_positions (name, left_px, top_px) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			left_px = excluded.left_px,
			top_px = excluded.top_px,
			saved_at = CURRENT_TIMESTAMP`,
		name, fmt.Sprint(rec.Left), fmt.Sprint(rec.Top))
	if err != nil {
		return fmt.Errorf("failed to save position: %w", err)
	}
	return nil
}

// Delete removes the record for name.
func (s *SQLiteStore) Delete(name string) error {
	if _, err := s.db.Exec(`DELETE FROM window_positions WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}

// List returns every well-formed record.
func (s *SQLiteStore) List() (map[string]Record, error) {
	rows, err := s.db.Query(`SELECT name, left_px, top_px FROM window_positions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	records := make(map[string]Record)
	for rows.Next() {
		var name, left, top string
		if err := rows.Scan(&name, &left, &top); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		rec, err := parseRecord(name, left, top)
		if err != nil {
			common.LogDebug("skipping position row %q: %v", name, err)
			continue
		}
		records[name] = rec
	}
	return records, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
