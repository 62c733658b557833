// Package sqlite provides SQLite storage for vocabulary caches and residue tables
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/smz-lab/lipres/pkg/core"
	"github.com/smz-lab/lipres/pkg/table"
	_ "github.com/mattn/go-sqlite3"
)

// Date format for MetaTable (ISO 8601)
const metaDateFormat = "2006-01-02"

// VocabWriter handles writing reference vocabulary entries to a SQLite
// cache file, so converted RefMet tables can be reloaded without reparsing.
type VocabWriter struct {
	db         *sql.DB
	outputPath string
	source     string
	entryStmt  *sql.Stmt
	entries    int
}

// NewVocabWriter creates a vocabulary cache writer. The source tag is
// recorded in the cache metadata (e.g. the original RefMet file name).
func NewVocabWriter(outputPath, source string) (*VocabWriter, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &VocabWriter{
		db:         db,
		outputPath: outputPath,
		source:     source,
	}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	w.entryStmt, err = db.Prepare(`
		INSERT OR REPLACE INTO VocabularyTable (Name, Residues, ExactMass)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare entry statement: %w", err)
	}

	return w, nil
}

// createTables creates the required database schema
func (w *VocabWriter) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS VocabularyTable (
		Name TEXT PRIMARY KEY,
		Residues TEXT NOT NULL,
		ExactMass DOUBLE
	);

	CREATE TABLE IF NOT EXISTS MetaTable (
		CreationDate TEXT,
		EntryCount INTEGER,
		Source TEXT
	);
	`

	_, err := w.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// WriteEntry writes a single vocabulary entry. Residues are stored as
// slash-delimited canonical tokens in authored order.
func (w *VocabWriter) WriteEntry(e core.ReferenceEntry) error {
	tokens := make([]string, len(e.Residues))
	for i, r := range e.Residues {
		tokens[i] = r.String()
	}

	var mass interface{}
	if e.ExactMass != nil {
		mass = *e.ExactMass
	}

	_, err := w.entryStmt.Exec(core.NormalizeName(e.Name), strings.Join(tokens, "/"), mass)
	if err != nil {
		return fmt.Errorf("failed to insert entry %q: %w", e.Name, err)
	}

	w.entries++
	return nil
}

// Finalize writes the metadata table and closes the database
func (w *VocabWriter) Finalize() error {
	_, err := w.db.Exec(`
		INSERT INTO MetaTable (CreationDate, EntryCount, Source)
		VALUES (?, ?, ?)
	`, time.Now().Format(metaDateFormat), w.entries, w.source)
	if err != nil {
		return fmt.Errorf("failed to insert metadata: %w", err)
	}

	if w.entryStmt != nil {
		w.entryStmt.Close()
	}

	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// Close closes the database connection (alias for Finalize)
func (w *VocabWriter) Close() error {
	return w.Finalize()
}

// LoadVocabulary reads a vocabulary cache file back into memory.
func LoadVocabulary(path string) (*core.Vocabulary, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT Name, Residues, ExactMass FROM VocabularyTable`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vocabulary: %w", err)
	}
	defer rows.Close()

	vocab := core.NewVocabulary()
	for rows.Next() {
		var name, tokens string
		var mass sql.NullFloat64
		if err := rows.Scan(&name, &tokens, &mass); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		entry := core.ReferenceEntry{Name: name}
		for _, token := range strings.Split(tokens, "/") {
			residue, err := core.ParseResidue(token)
			if err != nil {
				return nil, fmt.Errorf("entry %q: %w", name, err)
			}
			entry.Residues = append(entry.Residues, residue)
		}
		if mass.Valid {
			entry.ExactMass = &mass.Float64
		}

		vocab.AddEntry(entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}

	return vocab, nil
}

// VocabInfo returns the metadata of a vocabulary cache file.
func VocabInfo(path string) (created string, entries int, source string, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return "", 0, "", fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	row := db.QueryRow(`SELECT CreationDate, EntryCount, Source FROM MetaTable ORDER BY rowid DESC LIMIT 1`)
	if err := row.Scan(&created, &entries, &source); err != nil {
		return "", 0, "", fmt.Errorf("failed to read metadata: %w", err)
	}

	return created, entries, source, nil
}

// TableWriter handles writing residue aggregation results to SQLite.
type TableWriter struct {
	db         *sql.DB
	outputPath string
}

// NewTableWriter creates a residue-table writer.
func NewTableWriter(outputPath string) (*TableWriter, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS ResidueTable (
		Residue TEXT NOT NULL,
		Sample TEXT NOT NULL,
		Amount DOUBLE NOT NULL
	);

	CREATE TABLE IF NOT EXISTS MetaTable (
		CreationDate TEXT,
		EntryCount INTEGER,
		Source TEXT
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &TableWriter{db: db, outputPath: outputPath}, nil
}

// Write stores a whole residue table in long format (residue, sample, amount).
func (w *TableWriter) Write(result *table.Result, source string) error {
	stmt, err := w.db.Prepare(`INSERT INTO ResidueTable (Residue, Sample, Amount) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for i, residue := range result.Residues {
		for j, sample := range result.Samples {
			if _, err := stmt.Exec(residue, sample, result.Values[i][j]); err != nil {
				return fmt.Errorf("failed to insert %s/%s: %w", residue, sample, err)
			}
			count++
		}
	}

	_, err = w.db.Exec(`
		INSERT INTO MetaTable (CreationDate, EntryCount, Source)
		VALUES (?, ?, ?)
	`, time.Now().Format(metaDateFormat), count, source)
	if err != nil {
		return fmt.Errorf("failed to insert metadata: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (w *TableWriter) Close() error {
	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
