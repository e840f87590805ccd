package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL DEFAULT '',
	channel         TEXT NOT NULL,
	resonances_json TEXT NOT NULL DEFAULT '[]',
	symmetrize      INTEGER NOT NULL DEFAULT 0,
	seed            INTEGER NOT NULL DEFAULT 0,
	samples         INTEGER NOT NULL DEFAULT 0,
	elapsed_sec     REAL NOT NULL DEFAULT 0.0,
	hermiticity     REAL NOT NULL DEFAULT 0.0,
	checksum        TEXT NOT NULL DEFAULT '',
	created_at_unix INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_channel ON runs(channel, created_at_unix);
`

// Catalog indexes runs in SQLite.
type Catalog struct {
	db *sql.DB
}

// OpenCatalog opens the catalog at path with WAL journaling and runs the
// schema migration.
func OpenCatalog(path string) (*Catalog, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	// single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schemaV1); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}

	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) Insert(meta RunMetadata) error {
	return c.InsertContext(context.Background(), meta)
}

func (c *Catalog) InsertContext(ctx context.Context, meta RunMetadata) error {
	res, err := json.Marshal(meta.Resonances)
	if err != nil {
		return err
	}

	const q = `INSERT INTO runs (id, name, channel, resonances_json, symmetrize, seed, samples, elapsed_sec, hermiticity, checksum, created_at_unix)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = c.db.ExecContext(ctx, q,
		meta.ID,
		meta.Name,
		meta.Channel,
		string(res),
		boolInt(meta.Symmetrize),
		int64(meta.Seed),
		meta.Samples,
		meta.Elapsed,
		meta.Hermiticity,
		meta.Checksum,
		meta.Timestamp.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

const selectRuns = `SELECT id, name, channel, resonances_json, symmetrize, seed, samples, elapsed_sec, hermiticity, checksum, created_at_unix
FROM runs`

// List returns runs newest first, restricted to channel unless it is empty.
func (c *Catalog) List(ctx context.Context, channel string) ([]RunMetadata, error) {
	q := selectRuns + ` ORDER BY created_at_unix DESC, id`
	args := []any{}
	if channel != "" {
		q = selectRuns + ` WHERE channel = ? ORDER BY created_at_unix DESC, id`
		args = append(args, channel)
	}

	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]RunMetadata, 0)
	for rows.Next() {
		meta, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *meta)
	}
	return runs, rows.Err()
}

func (c *Catalog) Get(ctx context.Context, id string) (*RunMetadata, error) {
	row := c.db.QueryRowContext(ctx, selectRuns+` WHERE id = ?`, id)
	meta, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return nil, err
	}
	return meta, nil
}

func (c *Catalog) Delete(ctx context.Context, id string) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*RunMetadata, error) {
	var (
		meta    RunMetadata
		resJSON string
		seed    int64
		created int64
	)
	err := s.Scan(&meta.ID, &meta.Name, &meta.Channel, &resJSON, &meta.Symmetrize, &seed,
		&meta.Samples, &meta.Elapsed, &meta.Hermiticity, &meta.Checksum, &created)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(resJSON), &meta.Resonances); err != nil {
		return nil, fmt.Errorf("run %s resonances: %w", meta.ID, err)
	}
	meta.Seed = uint64(seed)
	meta.Timestamp = time.Unix(created, 0).UTC()
	return &meta, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
