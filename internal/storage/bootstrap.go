package storage

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// SeedName is the fixed file name of the bundled template database.
const SeedName = "ToDo.db"

//go:embed seed/ToDo.db
var seedFiles embed.FS

// DefaultSeed returns the template database compiled into the binary.
func DefaultSeed() fs.FS {
	sub, err := fs.Sub(seedFiles, "seed")
	if err != nil {
		panic(err)
	}
	return sub
}

type BootstrapStatus int

const (
	BootstrapExisting BootstrapStatus = iota
	BootstrapCopied
	BootstrapFailed
)

func (s BootstrapStatus) String() string {
	switch s {
	case BootstrapExisting:
		return "existing"
	case BootstrapCopied:
		return "copied"
	case BootstrapFailed:
		return "copy-failed"
	default:
		return "unknown"
	}
}

// BootstrapResult reports what EnsureReady did. Err is set only when Status
// is BootstrapFailed.
type BootstrapResult struct {
	Status BootstrapStatus
	Path   string
	Bytes  int64
	Err    error
}

func (r BootstrapResult) OK() bool {
	return r.Status != BootstrapFailed
}

func (r BootstrapResult) String() string {
	switch r.Status {
	case BootstrapCopied:
		return fmt.Sprintf("database seeded at %s (%d bytes)", r.Path, r.Bytes)
	case BootstrapFailed:
		return fmt.Sprintf("database unavailable at %s: %v", r.Path, r.Err)
	default:
		return fmt.Sprintf("database at %s", r.Path)
	}
}

// Bootstrapper copies the seed template to Target the first time it is
// needed. Presence of Target is the only check: a damaged file is never
// detected or replaced.
type Bootstrapper struct {
	Seed     fs.FS
	SeedName string
	Target   string
	Logger   *slog.Logger
}

func NewBootstrapper(target string, seed fs.FS, logger *slog.Logger) *Bootstrapper {
	if seed == nil {
		seed = DefaultSeed()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bootstrapper{Seed: seed, SeedName: SeedName, Target: target, Logger: logger}
}

// EnsureReady is idempotent. A copy failure is logged and returned in the
// result; it never panics and the caller decides whether to continue.
func (b *Bootstrapper) EnsureReady() BootstrapResult {
	res := BootstrapResult{Path: b.Target}
	if _, err := os.Stat(b.Target); err == nil {
		b.Logger.Debug("database already exists", "path", b.Target)
		res.Status = BootstrapExisting
		return res
	}

	n, err := b.copySeed()
	if err != nil {
		b.Logger.Error("copy seed database", "path", b.Target, "seed", b.SeedName, "err", err)
		res.Status = BootstrapFailed
		res.Err = err
		return res
	}
	b.Logger.Info("database copied from seed", "path", b.Target, "bytes", n)
	res.Status = BootstrapCopied
	res.Bytes = n
	return res
}

func (b *Bootstrapper) copySeed() (int64, error) {
	src, err := b.Seed.Open(b.SeedName)
	if err != nil {
		return 0, fmt.Errorf("open seed %s: %w", b.SeedName, err)
	}
	defer src.Close()

	dir := filepath.Dir(b.Target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(b.Target)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	n, err := io.Copy(tmp, src)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return 0, fmt.Errorf("copy seed: %w", err)
	}
	if err := os.Rename(tmpName, b.Target); err != nil {
		_ = os.Remove(tmpName)
		return 0, fmt.Errorf("install database: %w", err)
	}
	return n, nil
}
