package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/datapad/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://swapi.dev/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 0, cfg.API.Retries)
	assert.Equal(t, "name", cfg.UI.DefaultSort)
	assert.Equal(t, "asc", cfg.UI.DefaultOrder)
	assert.True(t, cfg.UI.RememberQuery)
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: http://localhost:8080/api
  timeout: 3s
  retries: 2
ui:
  default_sort: films
  default_order: desc
  remember_query: false
  open_command: firefox --new-tab
store:
  path: ""
logging:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.API.Retries)
	assert.False(t, cfg.UI.RememberQuery)
	assert.Equal(t, "firefox --new-tab", cfg.UI.OpenCommand)
	assert.Empty(t, cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)

	q := cfg.DefaultListQuery()
	assert.Equal(t, domain.SortByFilms, q.SortKey)
	assert.Equal(t, domain.SortDesc, q.SortOrder)
	assert.Equal(t, domain.GenderAll, q.Gender)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, "api:\n  retries: 1\n")
	t.Setenv("DATAPAD_API_RETRIES", "4")
	t.Setenv("DATAPAD_UI_DEFAULT_SORT", "gender")
	t.Setenv("DATAPAD_API_TIMEOUT", "30s")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.API.Retries)
	assert.Equal(t, "gender", cfg.UI.DefaultSort)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"relative url": "api:\n  base_url: swapi.dev/api\n",
		"bad sort":     "ui:\n  default_sort: height\n",
		"bad order":    "ui:\n  default_order: sideways\n",
		"neg retries":  "api:\n  retries: -1\n",
		"open quote":   "ui:\n  open_command: 'firefox \"--new-tab'\n",
		"dash command": "ui:\n  open_command: --help\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestUIConfigOpenArgs(t *testing.T) {
	program, args, err := UIConfig{}.OpenArgs()
	require.NoError(t, err)
	assert.Empty(t, program)
	assert.Empty(t, args)

	program, args, err = UIConfig{OpenCommand: `"/Applications/Firefox Nightly.app/firefox" --new-tab`}.OpenArgs()
	require.NoError(t, err)
	assert.Equal(t, "/Applications/Firefox Nightly.app/firefox", program)
	assert.Equal(t, []string{"--new-tab"}, args)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "state.db"), expandHome("~/state.db"))
	assert.Equal(t, "/tmp/state.db", expandHome("/tmp/state.db"))
	assert.Equal(t, "", expandHome(""))
}

func TestSetupLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "datapad.log")

	logger, err := SetupLogger(&LoggingConfig{File: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug("hello", "k", "v")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestSetupLoggerEmptyPathDiscards(t *testing.T) {
	logger, err := SetupLogger(&LoggingConfig{})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}
