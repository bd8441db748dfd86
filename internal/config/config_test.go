package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/selectfile/internal/browser"
	"github.com/idelchi/selectfile/internal/dirsize"
	"github.com/idelchi/selectfile/internal/logger"
)

type mockFileSystem struct {
	configDir    string
	configDirErr error
	files        map[string][]byte
	readErr      error
}

func (m *mockFileSystem) UserConfigDir() (string, error) {
	return m.configDir, m.configDirErr
}

func (m *mockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}

	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}

	return data, nil
}

func defaultPath() string {
	return filepath.Join("/home/user/.config", Dir, File)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Browser.SelectFiles)
	assert.False(t, cfg.Browser.SelectDirs)
	assert.Equal(t, dirsize.DefaultMaxDepth, cfg.Size.MaxDepth)
	assert.Equal(t, dirsize.DefaultMaxItems, cfg.Size.MaxItems)
	assert.Equal(t, dirsize.DefaultCacheSize, cfg.Size.CacheSize)
	assert.Equal(t, browser.SortByName, cfg.SortMode())
	assert.Equal(t, browser.Ascending, cfg.SortOrder())
	assert.Equal(t, logger.LevelInfo, cfg.Level())
}

func TestLoad_MissingDefaultFileGivesDefaults(t *testing.T) {
	loader := NewLoaderWithFS(&mockFileSystem{configDir: "/home/user/.config"})

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_NoConfigDirGivesDefaults(t *testing.T) {
	loader := NewLoaderWithFS(&mockFileSystem{configDirErr: errors.New("$HOME is not defined")})

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	yaml := `
browser:
  select_dirs: true
  sort_mode: size
  sort_order: desc
size:
  max_depth: 5
log_level: debug
`
	loader := NewLoaderWithFS(&mockFileSystem{
		configDir: "/home/user/.config",
		files:     map[string][]byte{defaultPath(): []byte(yaml)},
	})

	cfg, err := loader.Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Browser.SelectFiles, "unset keys keep their defaults")
	assert.True(t, cfg.Browser.SelectDirs)
	assert.Equal(t, browser.SortBySize, cfg.SortMode())
	assert.Equal(t, browser.Descending, cfg.SortOrder())
	assert.Equal(t, 5, cfg.Size.MaxDepth)
	assert.Equal(t, dirsize.DefaultMaxItems, cfg.Size.MaxItems)
	assert.Equal(t, logger.LevelDebug, cfg.Level())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		fs      *mockFileSystem
		wantErr error
	}{
		{
			name:    "explicit file missing",
			path:    "/etc/selectfile.yaml",
			fs:      &mockFileSystem{},
			wantErr: fs.ErrNotExist,
		},
		{
			name:    "unreadable file",
			fs:      &mockFileSystem{configDir: "/home/user/.config", readErr: fs.ErrPermission},
			wantErr: fs.ErrPermission,
		},
		{
			name: "malformed yaml",
			fs: &mockFileSystem{
				configDir: "/home/user/.config",
				files:     map[string][]byte{defaultPath(): []byte("browser: [unclosed")},
			},
		},
		{
			name: "nothing selectable",
			fs: &mockFileSystem{
				configDir: "/home/user/.config",
				files: map[string][]byte{
					defaultPath(): []byte("browser:\n  select_files: false\n  select_dirs: false\n"),
				},
			},
			wantErr: ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoaderWithFS(tt.fs).Load(tt.path)
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad sort mode", func(c *Config) { c.Browser.SortMode = "colour" }},
		{"bad sort order", func(c *Config) { c.Browser.SortOrder = "up" }},
		{"zero depth", func(c *Config) { c.Size.MaxDepth = 0 }},
		{"negative items", func(c *Config) { c.Size.MaxItems = -1 }},
		{"zero cache", func(c *Config) { c.Size.CacheSize = 0 }},
		{"zero venv cache", func(c *Config) { c.Venv.CacheSize = 0 }},
		{"zero top", func(c *Config) { c.Report.TopN = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidate_ReportsFirstNonPositiveKey(t *testing.T) {
	for range 20 {
		cfg := DefaultConfig()
		cfg.Size.MaxDepth = 0
		cfg.Size.CacheSize = -3
		cfg.Report.TopN = 0

		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), "size.max_depth must be positive, got 0")
	}
}
