// store.go — sqlite persistence for generated puzzles.

package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/knighttour/codec"
)

// Store persists generated puzzles in a sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	return open(path, 0)
}

// OpenMemory opens an in-memory database. The connection pool is
// pinned to one connection, since every sqlite memory connection is
// its own database.
func OpenMemory() (*Store, error) {
	return open(":memory:", 1)
}

func open(dsn string, maxConns int) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("archive: open database: %w", err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: migrate: %w", err)
	}
	return s, nil
}

// migrate creates the schema if it does not exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id TEXT PRIMARY KEY,
		params TEXT NOT NULL,
		seed INTEGER NOT NULL,
		description TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_puzzles_params ON puzzles(params);
	CREATE INDEX IF NOT EXISTS idx_puzzles_created ON puzzles(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save validates the description against its board and writes a new
// record with a fresh UUID.
func (s *Store) Save(ctx context.Context, p codec.Params, seed int64, desc string) (*Record, error) {
	b, err := p.Board()
	if err != nil {
		return nil, err
	}
	if err := codec.ValidateDesc(b, desc); err != nil {
		return nil, err
	}

	rec := &Record{
		ID:        uuid.New().String(),
		Params:    p.String(),
		Seed:      seed,
		Desc:      desc,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO puzzles (id, params, seed, description, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Params, rec.Seed, rec.Desc, rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("archive: save: %w", err)
	}
	return rec, nil
}

// Get retrieves one record by ID.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, params, seed, description, created_at
		 FROM puzzles WHERE id = ?`, id,
	)
	rec, err := scanRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("archive: get: %w", err)
	}
	return rec, nil
}

// Recent returns the newest records, newest first. A non-positive
// limit returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Record, error) {
	return s.list(ctx,
		`SELECT id, params, seed, description, created_at
		 FROM puzzles ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		sqlLimit(limit),
	)
}

// ByParams returns the newest records for one board size, newest
// first. A non-positive limit returns everything.
func (s *Store) ByParams(ctx context.Context, p codec.Params, limit int) ([]*Record, error) {
	return s.list(ctx,
		`SELECT id, params, seed, description, created_at
		 FROM puzzles WHERE params = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		p.String(), sqlLimit(limit),
	)
}

// Delete removes one record by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM puzzles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("archive: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("archive: delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	defer rows.Close()

	var recs []*Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	return recs, nil
}

func scanRecord(scan func(...any) error) (*Record, error) {
	var rec Record
	var createdNs int64
	if err := scan(&rec.ID, &rec.Params, &rec.Seed, &rec.Desc, &createdNs); err != nil {
		return nil, err
	}
	rec.CreatedAt = time.Unix(0, createdNs).UTC()
	return &rec, nil
}

// sqlLimit maps "no limit" onto sqlite's unbounded LIMIT value.
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}
