// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive records completed lookups in a local SQLite database so
// earlier results can be listed and re-opened. The archive is write-only
// from the lookup path; it is never consulted in place of the upstream
// service.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/drugtarget/pkg/types"
)

const defaultListLimit = 20

// timeLayout is fixed-width so fetched_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned by Get when no lookup has the given id.
var ErrNotFound = errors.New("lookup not found")

// Lookup is one archived invocation.
type Lookup struct {
	ID          string        `json:"id" yaml:"id"`
	Accession   string        `json:"accession" yaml:"accession"`
	ProteinName string        `json:"protein_name" yaml:"protein_name"`
	Gene        string        `json:"gene,omitempty" yaml:"gene,omitempty"`
	Organism    string        `json:"organism,omitempty" yaml:"organism,omitempty"`
	OutputPath  string        `json:"output_path" yaml:"output_path"`
	FetchedAt   time.Time     `json:"fetched_at" yaml:"fetched_at"`
	Summary     types.Summary `json:"summary" yaml:"summary"`
}

// Query describes how a lookup was requested.
type Query struct {
	Gene     string
	Organism string
}

// ListOptions filters List.
type ListOptions struct {
	// Accession restricts results to one accession.
	Accession string
	// Limit caps the number of rows. Zero means 20.
	Limit int
}

// Store manages the archive database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the archive database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	s := &Store{db: db, now: time.Now}
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
	statements := []string{
		`CREATE TABLE IF NOT EXISTS lookups (
			id TEXT PRIMARY KEY,
			accession TEXT NOT NULL,
			protein_name TEXT,
			gene TEXT,
			organism TEXT,
			output_path TEXT,
			fetched_at TEXT NOT NULL,
			summary_json TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lookups_accession ON lookups(accession)`,
		`CREATE INDEX IF NOT EXISTS idx_lookups_fetched_at ON lookups(fetched_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a completed lookup and returns it with its generated id.
func (s *Store) Record(ctx context.Context, sum types.Summary, q Query, outputPath string) (Lookup, error) {
	data, err := json.Marshal(sum)
	if err != nil {
		return Lookup{}, fmt.Errorf("marshaling summary: %w", err)
	}

	l := Lookup{
		ID:         uuid.NewString(),
		Accession:  sum.Accession,
		Gene:       q.Gene,
		Organism:   q.Organism,
		OutputPath: outputPath,
		FetchedAt:  s.now().UTC(),
		Summary:    sum,
	}
	if sum.ProteinName != nil {
		l.ProteinName = *sum.ProteinName
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO lookups (id, accession, protein_name, gene, organism, output_path, fetched_at, summary_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Accession, l.ProteinName, l.Gene, l.Organism, l.OutputPath,
		l.FetchedAt.Format(timeLayout), string(data),
	)
	if err != nil {
		return Lookup{}, fmt.Errorf("inserting lookup: %w", err)
	}
	return l, nil
}

// List returns archived lookups, newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Lookup, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT id, accession, protein_name, gene, organism, output_path, fetched_at, summary_json
		FROM lookups`
	var args []any
	if opts.Accession != "" {
		query += ` WHERE accession = ?`
		args = append(args, opts.Accession)
	}
	query += ` ORDER BY fetched_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var out []Lookup
	for rows.Next() {
		l, err := scanLookup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Get returns the lookup with the given id.
func (s *Store) Get(ctx context.Context, id string) (Lookup, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, accession, protein_name, gene, organism, output_path, fetched_at, summary_json
		 FROM lookups WHERE id = ?`, id)
	l, err := scanLookup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Lookup{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return l, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLookup(sc scanner) (Lookup, error) {
	var (
		l                                   Lookup
		proteinName, gene, organism, output sql.NullString
		fetchedAt, summaryJSON              string
	)
	if err := sc.Scan(&l.ID, &l.Accession, &proteinName, &gene, &organism, &output, &fetchedAt, &summaryJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lookup{}, err
		}
		return Lookup{}, fmt.Errorf("scanning row: %w", err)
	}
	l.ProteinName = proteinName.String
	l.Gene = gene.String
	l.Organism = organism.String
	l.OutputPath = output.String

	t, err := time.Parse(timeLayout, fetchedAt)
	if err != nil {
		return Lookup{}, fmt.Errorf("parsing fetched_at for %s: %w", l.ID, err)
	}
	l.FetchedAt = t

	if err := json.Unmarshal([]byte(summaryJSON), &l.Summary); err != nil {
		return Lookup{}, fmt.Errorf("parsing summary for %s: %w", l.ID, err)
	}
	return l, nil
}
