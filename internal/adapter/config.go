package adapter

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/spf13/viper"

	"github.com/mmcdole/datapad/internal/domain"
)

const envPrefix = "DATAPAD"

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the people API endpoint settings
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Retries int           `mapstructure:"retries"` // 0 = one request, no retry
}

// UIConfig holds list view defaults
type UIConfig struct {
	DefaultSort   string `mapstructure:"default_sort"`  // name, gender or films
	DefaultOrder  string `mapstructure:"default_order"` // asc or desc
	RememberQuery bool   `mapstructure:"remember_query"`
	OpenCommand   string `mapstructure:"open_command"` // empty = system default handler
}

// StoreConfig holds preference store settings
type StoreConfig struct {
	Path string `mapstructure:"path"` // empty = memory only
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "https://swapi.dev/api",
			Timeout: 15 * time.Second,
			Retries: 0,
		},
		UI: UIConfig{
			DefaultSort:   string(domain.SortByName),
			DefaultOrder:  string(domain.SortAsc),
			RememberQuery: true,
		},
		Store: StoreConfig{
			Path: filepath.Join(defaultDataPath(), "state.db"),
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "datapad.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "datapad")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "datapad")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "datapad")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "datapad")
	}
}

// LoadConfig loads configuration from file and environment.
// An explicit path must exist; the default locations are optional.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	// Defaults must be registered for AutomaticEnv to see every key
	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides: DATAPAD_API_BASE_URL, DATAPAD_UI_DEFAULT_SORT, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Store.Path = expandHome(cfg.Store.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("api.base_url", cfg.API.BaseURL)
	v.SetDefault("api.timeout", cfg.API.Timeout)
	v.SetDefault("api.retries", cfg.API.Retries)
	v.SetDefault("ui.default_sort", cfg.UI.DefaultSort)
	v.SetDefault("ui.default_order", cfg.UI.DefaultOrder)
	v.SetDefault("ui.remember_query", cfg.UI.RememberQuery)
	v.SetDefault("ui.open_command", cfg.UI.OpenCommand)
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// Validate rejects settings the rest of the program cannot honor
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.Retries < 0 {
		return fmt.Errorf("api.retries must not be negative, got %d", c.API.Retries)
	}
	if _, err := domain.ParseSortKey(c.UI.DefaultSort); err != nil {
		return fmt.Errorf("ui.default_sort: %w", err)
	}
	if _, err := domain.ParseSortOrder(c.UI.DefaultOrder); err != nil {
		return fmt.Errorf("ui.default_order: %w", err)
	}
	if _, _, err := c.UI.OpenArgs(); err != nil {
		return fmt.Errorf("ui.open_command: %w", err)
	}
	return nil
}

// OpenArgs splits OpenCommand with shell quoting rules.
// An empty command returns an empty program.
func (u UIConfig) OpenArgs() (string, []string, error) {
	parts, err := shlex.Split(u.OpenCommand)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse command: %w", err)
	}
	if len(parts) == 0 {
		return "", nil, nil
	}
	if strings.HasPrefix(parts[0], "-") {
		return "", nil, errors.New("command name cannot start with dash")
	}
	return parts[0], parts[1:], nil
}

// DefaultListQuery returns the starting list query honoring the UI defaults
func (c *Config) DefaultListQuery() domain.ListQuery {
	q := domain.DefaultListQuery()
	if key, err := domain.ParseSortKey(c.UI.DefaultSort); err == nil {
		q.SortKey = key
	}
	if order, err := domain.ParseSortOrder(c.UI.DefaultOrder); err == nil {
		q.SortOrder = order
	}
	return q
}

// expandHome expands a leading ~ in a path
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
