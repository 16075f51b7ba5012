package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "imebridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "log_level: debug\nshow_line_numbers: false\ntab_width: 8\nchar_width: 7.5\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.ShowLineNumbers)
	assert.Equal(t, 8, cfg.TabWidth)
	assert.InDelta(t, 7.5, cfg.CharWidth, 1e-9)
	assert.InDelta(t, 1.0, cfg.LineHeight, 1e-9)
	assert.True(t, cfg.EmptySelectionClipboard)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "tab_width: [1"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "line_height: 0\n"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"negative char width", func(c *Config) { c.CharWidth = -1 }, false},
		{"zero tab width", func(c *Config) { c.TabWidth = 0 }, false},
		{"negative history", func(c *Config) { c.HistoryLimit = -1 }, false},
		{"zero history uses buffer default", func(c *Config) { c.HistoryLimit = 0 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}
