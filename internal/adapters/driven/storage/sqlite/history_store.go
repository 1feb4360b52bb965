package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/veldt-labs/wikiqa-cli/internal/core/domain"
	"github.com/veldt-labs/wikiqa-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// defaultListLimit bounds List when the caller passes a non-positive limit.
const defaultListLimit = 20

// schema is the history table definition. A single append-only table
// needs no versioned migrations.
const schema = `
	CREATE TABLE IF NOT EXISTS history (
		id            TEXT PRIMARY KEY,
		article_title TEXT NOT NULL,
		language      TEXT NOT NULL,
		question      TEXT NOT NULL,
		answer        TEXT NOT NULL,
		confidence    REAL NOT NULL,
		chunk_index   INTEGER NOT NULL,
		total_chunks  INTEGER NOT NULL,
		start_offset  INTEGER NOT NULL,
		end_offset    INTEGER NOT NULL,
		asked_at      DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_asked_at ON history(asked_at DESC);
`

// HistoryStore is a SQLite-backed audit log of answered questions.
type HistoryStore struct {
	db   *sql.DB
	path string
}

// NewHistoryStore creates a new SQLite history store at the specified
// data directory. If dataDir is empty, defaults to ~/.wikiqa/data/history.db.
func NewHistoryStore(dataDir string) (*HistoryStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".wikiqa", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &HistoryStore{
		db:   db,
		path: dbPath,
	}, nil
}

// Append records an answered question.
func (s *HistoryStore) Append(ctx context.Context, entry driven.HistoryEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (
			id, article_title, language, question, answer,
			confidence, chunk_index, total_chunks, start_offset, end_offset, asked_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.ArticleTitle,
		entry.Language,
		entry.Answer.Question,
		entry.Answer.Text,
		entry.Answer.Score,
		entry.Answer.ChunkIndex,
		entry.Answer.TotalChunks,
		entry.Answer.Start,
		entry.Answer.End,
		entry.AskedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]driven.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, article_title, language, question, answer,
		       confidence, chunk_index, total_chunks, start_offset, end_offset, asked_at
		FROM history
		ORDER BY asked_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []driven.HistoryEntry
	for rows.Next() {
		var entry driven.HistoryEntry
		var answer domain.Answer
		var askedAt string

		err := rows.Scan(
			&entry.ID,
			&entry.ArticleTitle,
			&entry.Language,
			&answer.Question,
			&answer.Text,
			&answer.Score,
			&answer.ChunkIndex,
			&answer.TotalChunks,
			&answer.Start,
			&answer.End,
			&askedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}

		entry.Answer = answer
		entry.AskedAt, err = time.Parse(time.RFC3339Nano, askedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing asked_at: %w", err)
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	return entries, nil
}

// Close closes the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *HistoryStore) Path() string {
	return s.path
}
