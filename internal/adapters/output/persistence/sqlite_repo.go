package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteNumberStore keeps light numbers in SQLite. The number is the row id,
// so numbers are never reused.
type SQLiteNumberStore struct {
	db *sql.DB
}

// OpenSQLiteNumberStore opens the database and initializes the schema
func OpenSQLiteNumberStore(dbPath string) (*SQLiteNumberStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteNumberStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS light_numbers (
			number INTEGER PRIMARY KEY AUTOINCREMENT,
			entity_id TEXT NOT NULL UNIQUE
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create light_numbers table: %w", err)
	}
	return nil
}

func (s *SQLiteNumberStore) Number(ctx context.Context, entityID string) (string, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO light_numbers (entity_id) VALUES (?)
		ON CONFLICT(entity_id) DO NOTHING
	`, entityID)
	if err != nil {
		return "", fmt.Errorf("assign number: %w", err)
	}

	var number int64
	err = s.db.QueryRowContext(ctx, `
		SELECT number FROM light_numbers WHERE entity_id = ?
	`, entityID).Scan(&number)
	if err != nil {
		return "", fmt.Errorf("read number: %w", err)
	}
	return strconv.FormatInt(number, 10), nil
}

func (s *SQLiteNumberStore) EntityID(ctx context.Context, number string) (string, bool, error) {
	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return "", false, nil
	}

	var entityID string
	err = s.db.QueryRowContext(ctx, `
		SELECT entity_id FROM light_numbers WHERE number = ?
	`, n).Scan(&entityID)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entityID, true, nil
}

func (s *SQLiteNumberStore) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT number, entity_id FROM light_numbers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all := make(map[string]string)
	for rows.Next() {
		var number int64
		var entityID string
		if err := rows.Scan(&number, &entityID); err != nil {
			return nil, err
		}
		all[strconv.FormatInt(number, 10)] = entityID
	}
	return all, rows.Err()
}

// Close closes the database connection
func (s *SQLiteNumberStore) Close() error {
	return s.db.Close()
}
