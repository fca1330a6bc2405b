// Package config resolves where the todo database lives and how the program
// logs. Values are layered: defaults, config.toml, .env, environment, flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the on-disk shape of config.toml as well as the resolved
// runtime configuration.
type Config struct {
	// DataDir is the writable directory the seed database is copied into.
	DataDir string `toml:"data-dir"`
	// DatabaseName is the file name inside DataDir.
	DatabaseName string `toml:"database-name"`
	// SeedFile optionally replaces the embedded template database.
	SeedFile string `toml:"seed-file"`

	Log      Log      `toml:"log"`
	Markdown Markdown `toml:"markdown"`
}

type Log struct {
	Level string `toml:"level"`
	// File receives the TUI's log output. Empty means DataDir/todo.log.
	File string `toml:"file"`
}

type Markdown struct {
	// Style is a glamour style name used for todo descriptions.
	Style string `toml:"style"`
}

func Default() Config {
	return Config{
		DataDir:      defaultDataDir(),
		DatabaseName: "ToDo.db",
		Log:          Log{Level: "info"},
		Markdown:     Markdown{Style: "dark"},
	}
}

// DatabasePath is the writable location of the live database.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseName)
}

func (c Config) LogFile() string {
	if strings.TrimSpace(c.Log.File) != "" {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, "todo.log")
}

// Load resolves configuration. configPath may be empty, in which case the
// default location is tried; a missing file is not an error.
func Load(configPath string) (Config, error) {
	cfg := Default()
	if configPath == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		configPath = p
	}
	if err := mergeFile(&cfg, configPath); err != nil {
		return Config{}, err
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(cfg), nil
}

func DefaultConfigPath() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(dir, "todo", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "todo", "config.toml"), nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var file Config
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parse config file %s: unknown key %q", path, undecoded[0].String())
	}

	mergeString(meta.IsDefined("data-dir"), &cfg.DataDir, expandHome(file.DataDir))
	mergeString(meta.IsDefined("database-name"), &cfg.DatabaseName, file.DatabaseName)
	mergeString(meta.IsDefined("seed-file"), &cfg.SeedFile, expandHome(file.SeedFile))
	mergeString(meta.IsDefined("log", "level"), &cfg.Log.Level, file.Log.Level)
	mergeString(meta.IsDefined("log", "file"), &cfg.Log.File, expandHome(file.Log.File))
	mergeString(meta.IsDefined("markdown", "style"), &cfg.Markdown.Style, file.Markdown.Style)
	return nil
}

func mergeString(defined bool, dst *string, value string) {
	value = strings.TrimSpace(value)
	if defined && value != "" {
		*dst = value
	}
}

// FromEnv overlays TODO_* environment variables on base.
func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("TODO_DATA_DIR"); ok {
		cfg.DataDir = expandHome(v)
	}
	if v, ok := getEnvString("TODO_DATABASE_NAME"); ok {
		cfg.DatabaseName = v
	}
	if v, ok := getEnvString("TODO_SEED_FILE"); ok {
		cfg.SeedFile = expandHome(v)
	}
	if v, ok := getEnvString("TODO_LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := getEnvString("TODO_LOG_FILE"); ok {
		cfg.Log.File = expandHome(v)
	}
	if v, ok := getEnvString("TODO_MARKDOWN_STYLE"); ok {
		cfg.Markdown.Style = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func defaultDataDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); dir != "" {
		return filepath.Join(dir, "todo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".todo"
	}
	return filepath.Join(home, ".local", "share", "todo")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
