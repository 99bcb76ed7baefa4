// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteExport writes runs into a SQLite database file. Each run is stored
// under its own identifier; the pipeline never reads the database back.
type SQLiteExport struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and creates the schema
// if it does not exist.
func OpenSQLite(path string) (*SQLiteExport, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating export directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteExport{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteExport) Close() error {
	return s.db.Close()
}

func (s *SQLiteExport) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			query TEXT NOT NULL,
			mode TEXT,
			max_results INTEGER,
			ids_fetched INTEGER,
			total_matches INTEGER,
			failure TEXT,
			started_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			pubmed_id TEXT NOT NULL,
			title TEXT,
			publication_date TEXT,
			corresponding_email TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS record_authors (
			record_id INTEGER NOT NULL REFERENCES records(id),
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (record_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS record_affiliations (
			record_id INTEGER NOT NULL REFERENCES records(id),
			position INTEGER NOT NULL,
			affiliation TEXT NOT NULL,
			PRIMARY KEY (record_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_run_id ON records(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_records_pubmed_id ON records(pubmed_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Export stores run and its records in a single transaction.
func (s *SQLiteExport) Export(ctx context.Context, run Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, query, mode, max_results, ids_fetched, total_matches, failure, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Query, run.Mode, run.MaxResults, run.IDsFetched, run.TotalMatches,
		run.Failure, run.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	authorStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO record_authors (record_id, position, name) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing author insert: %w", err)
	}
	defer authorStmt.Close()

	affStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO record_affiliations (record_id, position, affiliation) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing affiliation insert: %w", err)
	}
	defer affStmt.Close()

	for i, r := range run.Records {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO records (run_id, position, pubmed_id, title, publication_date, corresponding_email)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, i, r.PubmedID, r.Title, r.PublicationDate, r.CorrespondingEmail,
		)
		if err != nil {
			return fmt.Errorf("inserting record %s: %w", r.PubmedID, err)
		}
		recordID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading record id: %w", err)
		}

		for j, name := range r.NonAcademicAuthors {
			if _, err := authorStmt.ExecContext(ctx, recordID, j, name); err != nil {
				return fmt.Errorf("inserting author for %s: %w", r.PubmedID, err)
			}
		}
		for j, aff := range r.CompanyAffiliations {
			if _, err := affStmt.ExecContext(ctx, recordID, j, aff); err != nil {
				return fmt.Errorf("inserting affiliation for %s: %w", r.PubmedID, err)
			}
		}
	}

	return tx.Commit()
}
