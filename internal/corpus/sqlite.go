package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"promptlens/internal/domain"
)

const selectPrompts = `SELECT id, prompt, COALESCE(tag, ''), COALESCE(creator, '') FROM prompts ORDER BY rowid`

// Schema is the table layout SQLSource reads from.
const Schema = `CREATE TABLE IF NOT EXISTS prompts (
	id      TEXT PRIMARY KEY,
	prompt  TEXT NOT NULL,
	tag     TEXT,
	creator TEXT
)`

// SQLSource reads prompts from the prompts table of a SQL database.
type SQLSource struct {
	db   *sql.DB
	path string
}

// NewSQLSource reads from an already opened database.
func NewSQLSource(db *sql.DB) *SQLSource {
	return &SQLSource{db: db}
}

// NewSQLiteSource opens the SQLite file at path on each Load.
func NewSQLiteSource(path string) *SQLSource {
	return &SQLSource{path: path}
}

// OpenSQLite opens a SQLite database with the pure-Go driver.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return db, nil
}

// Load returns every row of the prompts table in insertion order.
func (s *SQLSource) Load(ctx context.Context) ([]domain.Document, error) {
	db := s.db
	if db == nil {
		if s.path == "" {
			return nil, errors.New("sqlite corpus path not set")
		}
		opened, err := OpenSQLite(s.path)
		if err != nil {
			return nil, err
		}
		defer opened.Close()
		db = opened
	}

	rows, err := db.QueryContext(ctx, selectPrompts)
	if err != nil {
		return nil, fmt.Errorf("query prompts: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.Text, &d.Tag, &d.Creator); err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
