package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// Dir is the directory name under the user config directory.
	Dir = "selectfile"
	// File is the config file name.
	File = "config.yaml"
)

// FileSystem abstracts the file operations needed for loading.
type FileSystem interface {
	UserConfigDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// OSFileSystem implements FileSystem with the os package.
type OSFileSystem struct{}

// UserConfigDir calls os.UserConfigDir.
func (OSFileSystem) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// ReadFile calls os.ReadFile.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader reads configuration through an injected FileSystem.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a Loader on the real filesystem.
func NewLoader() *Loader {
	return &Loader{fs: OSFileSystem{}}
}

// NewLoaderWithFS creates a Loader on a custom filesystem.
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// DefaultPath returns the location of the user's config file.
func (l *Loader) DefaultPath() (string, error) {
	dir, err := l.fs.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}

	return filepath.Join(dir, Dir, File), nil
}

// Load reads the config file at path, or the default location when path is empty,
// and decodes it over DefaultConfig. A missing default file yields the defaults;
// a missing explicit file is an error.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""

	if !explicit {
		p, err := l.DefaultPath()
		if err != nil {
			return cfg, nil //nolint:nilerr // No config directory means no config file
		}

		path = p
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}

		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	return cfg, nil
}

// Load is a convenience wrapper using the real filesystem.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}
