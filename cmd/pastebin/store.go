package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

// errPasteNotFound is returned when no paste exists under the given id.
var errPasteNotFound = errors.New("paste not found")

// pasteStore persists pastes in a single SQLite table.
type pasteStore struct {
	db *sql.DB
}

func openPasteStore(ctx context.Context, path string) (*pasteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed opening SQLite database: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS pastes (
			id         TEXT PRIMARY KEY,
			content    TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed creating schema: %w", err)
	}

	return &pasteStore{db: db}, nil
}

func (s *pasteStore) Save(ctx context.Context, id, content string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pastes (id, content, created_at) VALUES (?, ?, ?)`,
		id, content, time.Now().UTC())
	return err
}

func (s *pasteStore) Get(ctx context.Context, id string) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM pastes WHERE id = ?`, id).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errPasteNotFound
	}
	return content, err
}

func (s *pasteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM pastes WHERE id = ?`, id)
	return err
}

func (s *pasteStore) Close() error {
	return s.db.Close()
}
