// Package sqlite is a repository backend that keeps each entity in its own
// SQLite table:
//
//	<name>(id INTEGER PRIMARY KEY AUTOINCREMENT, data TEXT NOT NULL)
//
// data holds the record as JSON. AUTOINCREMENT guarantees that ids of deleted
// rows are never handed out again.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/dalemusser/clubhub/internal/app/store/repo"
)

// Open opens (creating if needed) the database file at path in WAL mode.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_txlock=immediate")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Store keeps one entity type in one table.
type Store[T any] struct {
	db     *sql.DB
	entity repo.Entity[T]
}

// New ensures the entity's table exists and returns a store bound to it.
func New[T any](ctx context.Context, db *sql.DB, entity repo.Entity[T]) (*Store[T], error) {
	if !entity.ValidName() {
		return nil, fmt.Errorf("sqlite: invalid table name %q", entity.Name)
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		data TEXT NOT NULL
	)`, entity.Name)
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("sqlite: create table %s: %w", entity.Name, err)
	}
	return &Store[T]{db: db, entity: entity}, nil
}

func (s *Store[T]) decode(id int64, raw string) (T, error) {
	var rec T
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return rec, fmt.Errorf("sqlite: decode %s/%d: %w", s.entity.Name, id, err)
	}
	s.entity.SetID(&rec, id)
	return rec, nil
}

func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, data FROM "+s.entity.Name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var (
			id  int64
			raw string
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		rec, err := s.decode(id, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	s.entity.Sort(out)
	return out, nil
}

func (s *Store[T]) Get(ctx context.Context, id int64) (T, error) {
	return s.get(ctx, s.db, id)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store[T]) get(ctx context.Context, q queryer, id int64) (T, error) {
	var raw string
	err := q.QueryRowContext(ctx, "SELECT data FROM "+s.entity.Name+" WHERE id = ?", id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, repo.ErrNotFound
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return s.decode(id, raw)
}

func (s *Store[T]) Create(ctx context.Context, rec T) (T, error) {
	s.entity.ApplyDefaults(&rec)
	s.entity.SetID(&rec, 0)

	data, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("sqlite: encode %s: %w", s.entity.Name, err)
	}
	res, err := s.db.ExecContext(ctx, "INSERT INTO "+s.entity.Name+" (data) VALUES (?)", string(data))
	if err != nil {
		return rec, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return rec, err
	}
	s.entity.SetID(&rec, id)
	return rec, nil
}

func (s *Store[T]) Update(ctx context.Context, id int64, patch repo.Patch) (T, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	defer tx.Rollback()

	cur, err := s.get(ctx, tx, id)
	if err != nil {
		return cur, err
	}
	merged, err := repo.Merge(cur, patch)
	if err != nil {
		return cur, err
	}
	s.entity.SetID(&merged, id)

	data, err := json.Marshal(merged)
	if err != nil {
		return cur, fmt.Errorf("sqlite: encode %s/%d: %w", s.entity.Name, id, err)
	}
	if _, err := tx.ExecContext(ctx, "UPDATE "+s.entity.Name+" SET data = ? WHERE id = ?", string(data), id); err != nil {
		return cur, err
	}
	if err := tx.Commit(); err != nil {
		return cur, err
	}
	return merged, nil
}

func (s *Store[T]) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM "+s.entity.Name+" WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
