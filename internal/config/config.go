// Package config locates the todo-notes config directory and maintains the
// config.toml registry that maps list names to list files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/atomic"
)

const (
	// DirName is the config directory created under XDG_CONFIG_HOME (or ~/.config).
	DirName  = ".todo_notes"
	FileName = "config.toml"

	DefaultListName = "DEFAULT"

	EnvConfigDir = "TODO_NOTES_CONFIG_DIR"
	EnvList      = "TODO_NOTES_LIST"
)

// Env looks up an environment variable. Passing it explicitly keeps resolution
// testable without touching the process environment.
type Env func(key string) string

// OSEnv reads the real process environment.
var OSEnv Env = os.Getenv

type Config struct {
	// Dir is the config directory the file was loaded from; list paths are relative to it.
	Dir string `toml:"-"`

	DefaultList string `toml:"default_list,omitempty"`

	// History toggles the sqlite mutation journal. Nil means enabled.
	History *bool `toml:"history,omitempty"`

	Lists map[string]string `toml:"lists"`
}

type ListRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// ErrInvalidListName is wrapped by NormalizeListName failures.
var ErrInvalidListName = errors.New("invalid list name")

// Error marks a problem with the config directory or config.toml.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("config %s: %v", e.Path, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Dir returns the config directory.
//
// Precedence: TODO_NOTES_CONFIG_DIR (used verbatim), $XDG_CONFIG_HOME/.todo_notes,
// $HOME/.config/.todo_notes.
func Dir(env Env) (string, error) {
	if env == nil {
		env = OSEnv
	}
	if v := strings.TrimSpace(env(EnvConfigDir)); v != "" {
		return filepath.Clean(v), nil
	}
	if v := strings.TrimSpace(env("XDG_CONFIG_HOME")); v != "" {
		return filepath.Join(v, DirName), nil
	}
	home := strings.TrimSpace(env("HOME"))
	if home == "" {
		return "", &Error{Path: DirName, Err: errors.New("cannot locate config dir: HOME and XDG_CONFIG_HOME are unset")}
	}
	return filepath.Join(home, ".config", DirName), nil
}

func (c *Config) Path() string {
	return filepath.Join(c.Dir, FileName)
}

// HistoryEnabled reports whether mutations should be journaled.
func (c *Config) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

func (c *Config) defaultList() string {
	if n, err := NormalizeListName(c.DefaultList); err == nil {
		return n
	}
	return DefaultListName
}

// Load reads dir/config.toml. A missing file yields an empty config.
func Load(dir string) (*Config, error) {
	cfg := &Config{Dir: dir, Lists: map[string]string{}}
	b, err := os.ReadFile(cfg.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, &Error{Path: cfg.Path(), Err: err}
	}
	if _, err := toml.Decode(string(b), cfg); err != nil {
		lists, ok := parseLegacy(string(b))
		if !ok {
			return nil, &Error{Path: cfg.Path(), Err: err}
		}
		cfg.Lists = lists
	}
	if cfg.Lists == nil {
		cfg.Lists = map[string]string{}
	}
	normalized := make(map[string]string, len(cfg.Lists))
	for name, p := range cfg.Lists {
		n, err := NormalizeListName(name)
		if err != nil {
			return nil, &Error{Path: cfg.Path(), Err: err}
		}
		normalized[n] = strings.TrimSpace(p)
	}
	cfg.Lists = normalized
	return cfg, nil
}

// parseLegacy reads the NAME=path line format written by earlier releases.
func parseLegacy(s string) (map[string]string, bool) {
	out := map[string]string{}
	for _, ln := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		name, p, ok := strings.Cut(ln, "=")
		name, p = strings.TrimSpace(name), strings.TrimSpace(p)
		if !ok || name == "" || p == "" || strings.HasPrefix(p, `"`) {
			return nil, false
		}
		out[name] = p
	}
	return out, len(out) > 0
}

// Save writes config.toml atomically, keeping the previous file as config.toml.bak.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return &Error{Path: c.Dir, Err: err}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return &Error{Path: c.Path(), Err: err}
	}

	// Best-effort copy of the previous config; ignore errors so normal use is never blocked.
	if prev, err := os.ReadFile(c.Path()); err == nil && len(prev) > 0 {
		_ = atomic.WriteFile(c.Path()+".bak", bytes.NewReader(prev))
	}

	if err := atomic.WriteFile(c.Path(), &buf); err != nil {
		return &Error{Path: c.Path(), Err: err}
	}
	return nil
}

// NormalizeListName trims and upper-cases name. Names become file names, so path
// separators are rejected.
func NormalizeListName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidListName)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidListName, name)
	}
	return strings.ToUpper(name), nil
}

func (c *Config) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Dir, p)
}

// Lookup returns the registered file for name, if any.
func (c *Config) Lookup(name string) (string, bool) {
	n, err := NormalizeListName(name)
	if err != nil {
		return "", false
	}
	p, ok := c.Lists[n]
	if !ok || p == "" {
		return "", false
	}
	return c.resolvePath(p), true
}

// EnsureList returns the list file for name, registering it as
// <dir>/<lowercased name>.txt when needed. created reports whether the file
// itself had to be created, for new and previously registered lists alike.
func (c *Config) EnsureList(name string) (path string, created bool, err error) {
	n, err := NormalizeListName(name)
	if err != nil {
		return "", false, err
	}

	path, ok := c.Lookup(n)
	if !ok {
		path = filepath.Join(c.Dir, strings.ToLower(n)+".txt")
		if c.Lists == nil {
			c.Lists = map[string]string{}
		}
		c.Lists[n] = path
		if err := c.Save(); err != nil {
			return "", false, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, err
	}
	// O_EXCL: an existing list is never clobbered, and EEXIST means nothing was created.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	switch {
	case errors.Is(err, fs.ErrExist):
		return path, false, nil
	case err != nil:
		return "", false, err
	}
	if err := f.Close(); err != nil {
		return "", false, err
	}
	return path, true, nil
}

// ListRefs returns registered lists sorted by name.
func (c *Config) ListRefs() []ListRef {
	names := make([]string, 0, len(c.Lists))
	for name := range c.Lists {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ListRef, 0, len(names))
	for _, name := range names {
		out = append(out, ListRef{Name: name, Path: c.resolvePath(c.Lists[name])})
	}
	return out
}
