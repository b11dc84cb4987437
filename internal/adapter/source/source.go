package source

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/mmcdole/datapad/internal/adapter"
	"github.com/mmcdole/datapad/internal/adapter/source/swapi"
	"github.com/mmcdole/datapad/internal/domain"
)

// SourceConfig contains the configuration needed to create a CharacterRepository
type SourceConfig struct {
	BaseURL string
	Timeout time.Duration
	Retries int
}

// NewClient creates the people API client.
// The base URL must be absolute; the client never guesses a scheme.
func NewClient(cfg *SourceConfig, logger *slog.Logger) (domain.CharacterRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("API base URL is required")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("API base URL must be absolute, got: %s", cfg.BaseURL)
	}

	return swapi.NewClient(swapi.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Retries: cfg.Retries,
	}, logger), nil
}

// NewClientFromConfig creates a CharacterRepository from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.CharacterRepository, error) {
	return NewClient(&SourceConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Retries: cfg.API.Retries,
	}, logger)
}
