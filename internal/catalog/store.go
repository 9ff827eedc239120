// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists export-run history in a SQLite database so past
// bundles can be audited from the CLI.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/partsbundle/pkg/types"
)

const (
	catalogDir = "catalog"
	dbFile     = "partsbundle.db"
)

// Store manages the export-run SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at rootDir/catalog/
// partsbundle.db, creating the schema if it does not exist.
func NewStore(rootDir string, cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(rootDir, catalogDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		character TEXT NOT NULL,
		source TEXT NOT NULL,
		bundle_path TEXT NOT NULL,
		animations INTEGER NOT NULL,
		textures INTEGER NOT NULL,
		models INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// Record inserts a completed run and returns its assigned ID.
func (s *Store) Record(run types.Run) (int64, error) {
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	res, err := s.db.Exec(
		`INSERT INTO runs (character, source, bundle_path, animations, textures, models, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Character, run.Source, run.BundlePath,
		run.Animations, run.Textures, run.Models,
		createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first. limit <= 0 falls back to
// the store's configured maximum.
func (s *Store) List(limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.Query(
		`SELECT id, character, source, bundle_path, animations, textures, models, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var run types.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Character, &run.Source, &run.BundlePath,
			&run.Animations, &run.Textures, &run.Models, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			run.CreatedAt = t
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}
