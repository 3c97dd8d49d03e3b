// Package export writes report snapshots to a SQLite file.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/tstat/internal/report"
	"github.com/verte-zerg/tstat/internal/wordstore"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Snapshot is a report read back from the database.
type Snapshot struct {
	ID        string
	CreatedAt time.Time
	Document  report.Document
}

// Exporter wraps SQLite access for report snapshots.
type Exporter struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Exporter, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	exp := &Exporter{db: db}
	if err := exp.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return exp, nil
}

// Close closes the underlying database.
func (e *Exporter) Close() error {
	return e.db.Close()
}

func (e *Exporter) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			file TEXT NOT NULL,
			has_overall INTEGER NOT NULL,
			characters INTEGER NOT NULL,
			words INTEGER NOT NULL,
			lines INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS char_counts (
			report_id TEXT NOT NULL,
			code INTEGER NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (report_id, code)
		);`,
		`CREATE TABLE IF NOT EXISTS word_counts (
			report_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			word TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (report_id, position)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := e.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport replaces the database contents with doc and returns the new report ID.
// Word rows keep the order of doc.Words.
func (e *Exporter) WriteReport(ctx context.Context, doc report.Document) (string, error) {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for _, table := range []string{"word_counts", "char_counts", "reports"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return "", err
		}
	}

	id := uuid.NewString()
	var overall report.Overall
	hasOverall := 0
	if doc.Overall != nil {
		overall = *doc.Overall
		hasOverall = 1
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO reports (id, created_at, file, has_overall, characters, words, lines)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		time.Now().UTC().Format(time.RFC3339Nano),
		doc.File,
		hasOverall,
		overall.Characters,
		overall.Words,
		overall.Lines,
	)
	if err != nil {
		return "", err
	}

	if len(doc.Characters) > 0 {
		if err = insertRows(ctx, tx, `INSERT INTO char_counts (report_id, code, count) VALUES (?, ?, ?)`, len(doc.Characters), func(i int) []any {
			return []any{id, doc.Characters[i].Code, doc.Characters[i].Count}
		}); err != nil {
			return "", err
		}
	}
	if len(doc.Words) > 0 {
		if err = insertRows(ctx, tx, `INSERT INTO word_counts (report_id, position, word, count) VALUES (?, ?, ?, ?)`, len(doc.Words), func(i int) []any {
			return []any{id, i, doc.Words[i].Word, doc.Words[i].Count}
		}); err != nil {
			return "", err
		}
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

func insertRows(ctx context.Context, tx *sql.Tx, query string, n int, args func(i int) []any) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return err
		}
	}
	return nil
}

// LoadReport reads the stored snapshot back.
func (e *Exporter) LoadReport(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	var createdAt string
	var hasOverall int
	var overall report.Overall
	row := e.db.QueryRowContext(ctx,
		`SELECT id, created_at, file, has_overall, characters, words, lines FROM reports LIMIT 1`)
	if err := row.Scan(&snap.ID, &createdAt, &snap.Document.File, &hasOverall, &overall.Characters, &overall.Words, &overall.Lines); err != nil {
		return Snapshot{}, fmt.Errorf("failed to load report: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Snapshot{}, err
	}
	snap.CreatedAt = parsed
	if hasOverall != 0 {
		snap.Document.Overall = &overall
	}

	chars, err := e.loadChars(ctx, snap.ID)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Document.Characters = chars
	words, err := e.loadWords(ctx, snap.ID)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Document.Words = words
	return snap, nil
}

func (e *Exporter) loadChars(ctx context.Context, id string) ([]report.CharCount, error) {
	rows, err := e.db.QueryContext(ctx, `SELECT code, count FROM char_counts WHERE report_id = ? ORDER BY code ASC`, id)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []report.CharCount
	for rows.Next() {
		var cc report.CharCount
		if err := rows.Scan(&cc.Code, &cc.Count); err != nil {
			return nil, err
		}
		cc.Char = string(rune(cc.Code))
		result = append(result, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Exporter) loadWords(ctx context.Context, id string) ([]wordstore.WordCount, error) {
	rows, err := e.db.QueryContext(ctx, `SELECT word, count FROM word_counts WHERE report_id = ? ORDER BY position ASC`, id)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []wordstore.WordCount
	for rows.Next() {
		var wc wordstore.WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, err
		}
		result = append(result, wc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
