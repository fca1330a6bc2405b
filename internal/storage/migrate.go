package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp creates the ToDo schema. It is used to build seed templates and
// in tests; the live database gets its schema from the seed copy.
func MigrateUp(db *sql.DB) error {
	return applyMigrations(db, ".up.sql", false)
}

func MigrateDown(db *sql.DB) error {
	return applyMigrations(db, ".down.sql", true)
}

func applyMigrations(db *sql.DB, suffix string, reverse bool) error {
	entries, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(entries)
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(entries)))
	}
	for _, name := range entries {
		sqlBytes, readErr := migrationFiles.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("read migration %s: %w", name, readErr)
		}
		if _, execErr := db.Exec(string(sqlBytes)); execErr != nil {
			return fmt.Errorf("apply migration %s: %w", name, execErr)
		}
	}
	return nil
}

// BuildSeed writes a fresh, empty template database to path. An existing
// file at path is refused rather than overwritten.
func BuildSeed(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("build seed: %s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("build seed: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("build seed: %w", err)
	}
	db, err := sql.Open(driverName, path)
	if err != nil {
		return fmt.Errorf("build seed: open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		_ = os.Remove(path)
		return fmt.Errorf("build seed: %w", err)
	}
	return db.Close()
}
