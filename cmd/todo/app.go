package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/config"
	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/logging"
	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/storage"
	"github.com/spf13/cobra"
)

// app holds what every command needs once configuration is resolved.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	repo    *storage.SQLiteRepository
	todos   *storage.Controller
	closers []io.Closer
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

// openApp resolves configuration, sets up logging and opens the database.
// The terminal UI logs to a file; every other command logs to stderr.
func openApp(cmd *cobra.Command, logToFile bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	if logToFile {
		logger, closer, err := logging.OpenFile(cfg.LogFile(), level)
		if err != nil {
			return nil, err
		}
		a.logger = logger
		a.closers = append(a.closers, closer)
	} else {
		a.logger = logging.New(cmd.ErrOrStderr(), level)
	}

	opts := storage.OpenOptions{Path: cfg.DatabasePath(), Logger: a.logger}
	if cfg.SeedFile != "" {
		opts.Seed, opts.SeedName = seedFromFile(cfg.SeedFile)
	}
	repo, err := storage.Open(opts)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.repo = repo
	a.closers = append(a.closers, repo)
	a.todos = storage.NewController(repo, a.logger)
	return a, nil
}

func seedFromFile(path string) (fs.FS, string) {
	return os.DirFS(filepath.Dir(path)), filepath.Base(path)
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
}

// warnUnavailable prints the bootstrap failure once so that the empty
// results that follow are not mistaken for an empty list.
func (a *app) warnUnavailable(w io.Writer) {
	if res := a.repo.Bootstrap(); !res.OK() {
		fmt.Fprintf(w, "warning: %s\n", res)
	}
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid todo id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

var errNoChanges = errors.New("nothing to change, pass at least one field flag")
