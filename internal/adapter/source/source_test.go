package source

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/datapad/internal/adapter"
	"github.com/mmcdole/datapad/internal/adapter/source/swapi"
)

func TestNewClientValidatesBaseURL(t *testing.T) {
	cases := map[string]*SourceConfig{
		"nil config":   nil,
		"empty url":    {BaseURL: ""},
		"relative url": {BaseURL: "swapi.dev/api"},
		"no host":      {BaseURL: "https://"},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewClient(cfg, nil)
			assert.Error(t, err)
		})
	}
}

func TestNewClientFromConfig(t *testing.T) {
	cfg := adapter.DefaultConfig()
	cfg.API.BaseURL = "http://localhost:8080/api/"
	cfg.API.Timeout = 3 * time.Second

	repo, err := NewClientFromConfig(cfg, nil)
	require.NoError(t, err)

	client, ok := repo.(*swapi.Client)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:8080/api", client.BaseURL())
}
