package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"path/filepath"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/model"
	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

const todoColumns = `id, name, priority, enddate, description, state`

type SQLiteRepository struct {
	db        *sql.DB
	bootstrap BootstrapResult
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenOptions configures Open. Seed defaults to the embedded template and
// SeedName to the fixed template name.
type OpenOptions struct {
	Path     string
	Seed     fs.FS
	SeedName string
	Logger   *slog.Logger
}

// Open runs the seed bootstrap for opts.Path and then opens a single
// long-lived connection to it. A failed bootstrap does not fail Open: the
// file is opened read-write without create, so the missing database shows up
// as an error on the first statement. Check Bootstrap() to tell the two apart.
func Open(opts OpenOptions) (*SQLiteRepository, error) {
	if opts.Path == "" {
		return nil, errors.New("storage: empty database path")
	}
	b := NewBootstrapper(opts.Path, opts.Seed, opts.Logger)
	if opts.SeedName != "" {
		b.SeedName = opts.SeedName
	}
	result := b.EnsureReady()

	db, err := sql.Open(driverName, dsn(opts.Path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	repo.bootstrap = result
	return repo, nil
}

func dsn(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	q := url.Values{}
	q.Set("mode", "rw")
	q.Set("_busy_timeout", "5000")
	u.RawQuery = q.Encode()
	return u.String()
}

func (r *SQLiteRepository) Bootstrap() BootstrapResult {
	return r.bootstrap
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// ListToDos returns every row in rowid order. When reading fails part way the
// rows read so far are returned together with the error.
func (r *SQLiteRepository) ListToDos(ctx context.Context) ([]model.ToDo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+todoColumns+` FROM ToDo ORDER BY id ASC`)
	if err != nil {
		return []model.ToDo{}, err
	}
	defer rows.Close()

	out := make([]model.ToDo, 0)
	for rows.Next() {
		item, scanErr := scanToDo(rows)
		if scanErr != nil {
			return out, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) GetToDo(ctx context.Context, id int64) (model.ToDo, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+todoColumns+` FROM ToDo WHERE id = ?`, id)
	item, err := scanToDo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ToDo{}, ErrNotFound
		}
		return model.ToDo{}, err
	}
	return item, nil
}

// InsertToDo ignores in.ID; storage assigns the id and it is returned.
func (r *SQLiteRepository) InsertToDo(ctx context.Context, in model.ToDo) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO ToDo (name, priority, enddate, description, state)
		VALUES (?, ?, ?, ?, ?)`,
		in.Name, in.Priority, in.EndDate, in.Description, boolInt(in.Done),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) UpdateToDo(ctx context.Context, in model.ToDo) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE ToDo
		SET name = ?, priority = ?, enddate = ?, description = ?, state = ?
		WHERE id = ?`,
		in.Name, in.Priority, in.EndDate, in.Description, boolInt(in.Done), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteToDo(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ToDo WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

// Seeded rows may carry NULLs in any column; they read back as zero values.
func scanToDo(s scanner) (model.ToDo, error) {
	var (
		out         model.ToDo
		name        sql.NullString
		priority    sql.NullInt64
		enddate     sql.NullString
		description sql.NullString
		state       sql.NullInt64
	)
	if err := s.Scan(&out.ID, &name, &priority, &enddate, &description, &state); err != nil {
		return model.ToDo{}, err
	}
	out.Name = name.String
	out.Priority = int(priority.Int64)
	out.EndDate = enddate.String
	out.Description = description.String
	out.Done = state.Int64 == 1
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
