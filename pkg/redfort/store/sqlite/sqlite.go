// Package sqlite persists the speech corpus in a SQLite database, populated
// once by redfort-import and read back at server startup.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/corpuslab/redfort/pkg/redfort/corpus"
	"github.com/corpuslab/redfort/pkg/redfort/store"
)

// Store implements store.Store over a SQLite database.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// Open opens (and if needed initializes) the corpus database at path with
// WAL mode enabled.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS speeches (
	year INTEGER PRIMARY KEY,
	pm TEXT NOT NULL,
	party TEXT NOT NULL,
	title TEXT,
	footnote TEXT,
	source TEXT,
	url TEXT,
	text TEXT
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertSpeech inserts or replaces one speech, keyed by year.
func (s *Store) UpsertSpeech(ctx context.Context, sp corpus.Speech) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO speeches (year, pm, party, title, footnote, source, url, text)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(year) DO UPDATE SET
	pm = excluded.pm,
	party = excluded.party,
	title = excluded.title,
	footnote = excluded.footnote,
	source = excluded.source,
	url = excluded.url,
	text = excluded.text`,
		sp.Year, sp.PM, sp.Party, sp.Title, sp.Footnote, sp.Source, sp.URL, sp.Text)
	if err != nil {
		return fmt.Errorf("upsert speech %d: %w", sp.Year, err)
	}
	return nil
}

// Import writes every speech in one transaction.
func (s *Store) Import(ctx context.Context, speeches []corpus.Speech) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO speeches (year, pm, party, title, footnote, source, url, text)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(year) DO UPDATE SET
	pm = excluded.pm,
	party = excluded.party,
	title = excluded.title,
	footnote = excluded.footnote,
	source = excluded.source,
	url = excluded.url,
	text = excluded.text`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, sp := range speeches {
		if _, err := stmt.ExecContext(ctx, sp.Year, sp.PM, sp.Party, sp.Title, sp.Footnote, sp.Source, sp.URL, sp.Text); err != nil {
			return fmt.Errorf("import speech %d: %w", sp.Year, err)
		}
	}

	return tx.Commit()
}

// Speeches returns every stored speech ordered by year.
func (s *Store) Speeches(ctx context.Context) ([]corpus.Speech, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT year, pm, party, title, footnote, source, url, text
FROM speeches ORDER BY year`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var speeches []corpus.Speech
	for rows.Next() {
		var sp corpus.Speech
		var title, footnote, source, url, text sql.NullString
		if err := rows.Scan(&sp.Year, &sp.PM, &sp.Party, &title, &footnote, &source, &url, &text); err != nil {
			return nil, err
		}
		sp.Title = title.String
		sp.Footnote = footnote.String
		sp.Source = source.String
		sp.URL = url.String
		sp.Text = text.String
		speeches = append(speeches, sp)
	}
	return speeches, rows.Err()
}

// Count returns the number of stored speeches.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM speeches`).Scan(&n)
	return n, err
}
