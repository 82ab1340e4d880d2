// Package store exports record graphs and validation runs to SQLite.
//
// Every saved graph gets one row per top-level record holding the record's
// encoded text and its BLAKE3 digest, so two exports can be compared
// record by record. Validation runs are stored with their findings.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/gedcom"
	"github.com/FocuswithJustin/gedcomkit/core/model"
	"github.com/FocuswithJustin/gedcomkit/core/sqlite"
	"github.com/FocuswithJustin/gedcomkit/core/validate"
	"github.com/FocuswithJustin/gedcomkit/internal/logging"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS graphs (
		id         TEXT PRIMARY KEY,
		digest     TEXT NOT NULL,
		records    INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS records (
		graph_id TEXT NOT NULL REFERENCES graphs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		kind     TEXT NOT NULL,
		xref     TEXT NOT NULL,
		digest   TEXT NOT NULL,
		text     TEXT NOT NULL,
		PRIMARY KEY (graph_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS runs (
		id         TEXT PRIMARY KEY,
		graph_id   TEXT REFERENCES graphs(id) ON DELETE CASCADE,
		findings   INTEGER NOT NULL,
		errors     INTEGER NOT NULL,
		repairs    INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS findings (
		run_id      TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		severity    TEXT NOT NULL,
		code        INTEGER NOT NULL,
		description TEXT NOT NULL,
		kind        TEXT NOT NULL,
		xref        TEXT NOT NULL,
		field       TEXT NOT NULL,
		repairs     INTEGER NOT NULL,
		PRIMARY KEY (run_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS records_xref ON records (xref)`,
}

// newID is a variable so tests can pin identifiers.
var newID = func() string { return uuid.New().String() }

// now is a variable so tests can pin timestamps.
var now = func() time.Time { return time.Now().UTC() }

// Store is an open export database.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open opens or creates the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open database", path, err)
	}
	// SQLite has a single writer.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, errors.NewIO("create schema in", path, err)
		}
	}
	return &Store{db: db, path: path, logger: logging.GetLogger()}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Graph describes a saved record graph.
type Graph struct {
	ID        string
	Digest    string
	Records   int
	CreatedAt time.Time
}

// Record is one saved top-level record.
type Record struct {
	Position int
	Kind     model.Kind
	XRef     string
	Digest   string
	Text     string
}

// Run describes a saved validation run.
type Run struct {
	ID        string
	GraphID   string
	Findings  int
	Errors    int
	Repairs   int
	CreatedAt time.Time
}

// Finding is one saved validation finding.
type Finding struct {
	Position    int
	Severity    string
	Code        int
	Description string
	Kind        model.Kind
	XRef        string
	Field       string
	Repairs     int
}

// SaveGraph encodes g and stores every top-level record in one
// transaction. Encoding failures are returned unchanged.
func (s *Store) SaveGraph(ctx context.Context, g *model.Gedcom) (*Graph, error) {
	w, err := gedcom.NewWriter(g)
	if err != nil {
		return nil, err
	}
	recs, err := w.Records()
	if err != nil {
		return nil, err
	}

	var doc []byte
	for _, r := range recs {
		doc = append(doc, r.Text...)
	}
	graph := &Graph{
		ID:        newID(),
		Digest:    gedcom.DigestBytes(doc),
		Records:   len(recs),
		CreatedAt: now(),
	}

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO graphs (id, digest, records, created_at) VALUES (?, ?, ?, ?)`,
			graph.ID, graph.Digest, graph.Records, graph.CreatedAt.Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("insert graph: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO records (graph_id, position, kind, xref, digest, text) VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare record insert: %w", err)
		}
		defer stmt.Close()
		for i, r := range recs {
			if _, err := stmt.ExecContext(ctx, graph.ID, i, string(r.Kind), r.XRef,
				gedcom.DigestBytes(r.Text), string(r.Text)); err != nil {
				return fmt.Errorf("insert record %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("graph saved", "graph_id", graph.ID, "records", graph.Records, "digest", graph.Digest)
	return graph, nil
}

// SaveRun stores the findings of a validation run. graphID links the run
// to a saved graph and may be empty.
func (s *Store) SaveRun(ctx context.Context, graphID string, results *validate.Results) (*Run, error) {
	if results == nil {
		return nil, errors.NewValidation("results", "is a required argument")
	}
	all := results.All()
	run := &Run{
		ID:        newID(),
		GraphID:   graphID,
		Findings:  len(all),
		Errors:    len(results.Errors()),
		Repairs:   results.RepairCount(),
		CreatedAt: now(),
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var gid any
		if graphID != "" {
			gid = graphID
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO runs (id, graph_id, findings, errors, repairs, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, gid, run.Findings, run.Errors, run.Repairs, run.CreatedAt.Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("insert run: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO findings (run_id, position, severity, code, description, kind, xref, field, repairs)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare finding insert: %w", err)
		}
		defer stmt.Close()
		for i, f := range all {
			kind := ""
			if f.Item() != nil {
				kind = string(f.Item().Kind())
			}
			if _, err := stmt.ExecContext(ctx, run.ID, i, f.Severity().String(), f.ProblemCode(),
				f.ProblemDescription(), kind, f.ItemXRef(), f.FieldName(), len(f.Repairs())); err != nil {
				return fmt.Errorf("insert finding %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.InfoContext(logging.WithRunID(ctx, run.ID), "validation run saved",
		"findings", run.Findings, "errors", run.Errors, "repairs", run.Repairs)
	return run, nil
}

// Records returns the records of a saved graph in document order.
func (s *Store) Records(ctx context.Context, graphID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, kind, xref, digest, text FROM records WHERE graph_id = ? ORDER BY position`, graphID)
	if err != nil {
		return nil, errors.NewIO("query records in", s.path, err)
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		var r Record
		var kind string
		if err := rows.Scan(&r.Position, &kind, &r.XRef, &r.Digest, &r.Text); err != nil {
			return nil, errors.NewIO("scan record in", s.path, err)
		}
		r.Kind = model.Kind(kind)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewIO("query records in", s.path, err)
	}
	if len(out) == 0 {
		return nil, errors.NewNotFound("graph", graphID)
	}
	return out, nil
}

// Findings returns the findings of a saved run in the order they were
// recorded.
func (s *Store) Findings(ctx context.Context, runID string) ([]Finding, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, runID).Scan(&exists)
	if err != nil {
		return nil, errors.NewIO("query runs in", s.path, err)
	}
	if exists == 0 {
		return nil, errors.NewNotFound("run", runID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT position, severity, code, description, kind, xref, field, repairs
		 FROM findings WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, errors.NewIO("query findings in", s.path, err)
	}
	defer func() { _ = rows.Close() }()

	out := []Finding{}
	for rows.Next() {
		var f Finding
		var kind string
		if err := rows.Scan(&f.Position, &f.Severity, &f.Code, &f.Description,
			&kind, &f.XRef, &f.Field, &f.Repairs); err != nil {
			return nil, errors.NewIO("scan finding in", s.path, err)
		}
		f.Kind = model.Kind(kind)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewIO("query findings in", s.path, err)
	}
	return out, nil
}

// DiffRecords compares two saved graphs by record key (kind and xref) and
// returns the keys whose digest differs or that exist on one side only.
func (s *Store) DiffRecords(ctx context.Context, a, b string) ([]string, error) {
	left, err := s.Records(ctx, a)
	if err != nil {
		return nil, err
	}
	right, err := s.Records(ctx, b)
	if err != nil {
		return nil, err
	}

	key := func(r Record) string { return string(r.Kind) + " " + r.XRef }
	digests := make(map[string]string, len(right))
	for _, r := range right {
		digests[key(r)] = r.Digest
	}

	var diff []string
	for _, r := range left {
		k := key(r)
		d, ok := digests[k]
		if !ok || d != r.Digest {
			diff = append(diff, k)
		}
		delete(digests, k)
	}
	for _, r := range right {
		if _, ok := digests[key(r)]; ok {
			diff = append(diff, key(r))
		}
	}
	return diff, nil
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewIO("begin transaction in", s.path, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(tx); err != nil {
		return errors.NewIO("write", s.path, err)
	}
	if err := tx.Commit(); err != nil {
		return errors.NewIO("commit", s.path, err)
	}
	committed = true
	return nil
}
