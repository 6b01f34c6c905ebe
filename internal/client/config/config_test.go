package config

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:3000/api", c.APIBaseURL)
	assert.Equal(t, "ligacli.db", c.DatabasePath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expected    Config
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "https://liga.example/api", "-d", "/tmp/liga.db", "-t", "30"},
			expected: Config{
				APIBaseURL:     "https://liga.example/api",
				DatabasePath:   "/tmp/liga.db",
				RequestTimeout: 30 * time.Second,
			},
		},
		{
			name: "defaults survive missing flags",
			args: []string{"cmd"},
			expected: Config{
				APIBaseURL:     "http://127.0.0.1:3000/api",
				DatabasePath:   "ligacli.db",
				RequestTimeout: 15 * time.Second,
			},
		},
		{
			name:        "non-numeric timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"api_base_url":    "https://liga.example/api",
		"request_timeout": "20s",
	})

	t.Run("overlays listed fields only", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://liga.example/api", cfg.APIBaseURL)
		assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "ligacli.db", cfg.DatabasePath)
	})

	t.Run("no file requested leaves config alone", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "x", DatabasePath: "y", RequestTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, Config{APIBaseURL: "x", DatabasePath: "y", RequestTimeout: 42 * time.Second}, *cfg)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
