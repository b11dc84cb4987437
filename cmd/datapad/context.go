package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mmcdole/datapad/internal/adapter"
	"github.com/mmcdole/datapad/internal/adapter/source"
	"github.com/mmcdole/datapad/internal/service"
	"github.com/mmcdole/datapad/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *adapter.Config
	configErr  error
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*adapter.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := adapter.LoadConfig(path)
		if err != nil {
			c.configErr = fmt.Errorf("failed to load config: %w", err)
			return
		}
		c.config = cfg

		logger, err := adapter.SetupLogger(&cfg.Logging)
		if err != nil {
			// Fall back to null logger if file logging fails
			logger = adapter.NullLogger()
		}
		slog.SetDefault(logger)
		c.logger = logger
	})
	return c.config, c.configErr
}

// services bundles everything a command needs; close releases the store
type services struct {
	characters  *service.CharacterService
	preferences *service.PreferenceService
	opener      *adapter.Opener
	close       func() error
}

func (c *commandContext) openServices() (*services, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	client, err := source.NewClientFromConfig(cfg, c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	prefStore, err := store.NewPreferenceStore(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}

	// Validate already rejected unparsable commands
	program, args, _ := cfg.UI.OpenArgs()

	prefs := service.NewPreferenceService(prefStore, cfg.DefaultListQuery(), cfg.UI.RememberQuery, c.logger)
	return &services{
		characters:  service.NewCharacterService(client, prefs, c.logger),
		preferences: prefs,
		opener:      adapter.NewOpener(program, args, c.logger),
		close:       prefStore.Close,
	}, nil
}

