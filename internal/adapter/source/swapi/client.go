package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mmcdole/datapad/internal/domain"
)

const (
	DefaultBaseURL   = "https://swapi.dev/api"
	defaultTimeout   = 15 * time.Second
	baseRetryDelay   = 500 * time.Millisecond
	maxRetryDelay    = 2 * time.Second
	peoplePath       = "/people/"
	searchQueryParam = "search"
)

// Config holds the knobs for the people API client
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	Retries   int           // Extra attempts on transport errors and 5xx; 0 = single request
	RetryWait time.Duration // Initial backoff between attempts
}

// Client implements domain.CharacterRepository against the people collection
type Client struct {
	baseURL string
	http    *resty.Client
	logger  *slog.Logger
}

// NewClient creates a new people API client
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	wait := cfg.RetryWait
	if wait <= 0 {
		wait = baseRetryDelay
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(max(cfg.Retries, 0)).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(max(wait, maxRetryDelay)).
		SetLogger(restyLogger{logger: logger})

	// Retry on 5xx server errors as well as transport failures
	rc.AddRetryCondition(func(resp *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		return resp != nil && resp.StatusCode() >= 500 && resp.StatusCode() < 600
	})

	return &Client{
		baseURL: baseURL,
		http:    rc,
		logger:  logger,
	}
}

// BaseURL returns the normalized API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doGet performs a GET against the API and returns the raw body.
// Every failure is reported as domain.ErrFetchFailed so callers have one kind to branch on.
func (c *Client) doGet(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	c.logger.Debug("swapi request", "path", path, "query", query)

	resp, err := req.Get(path)
	if err != nil {
		c.logger.Error("swapi request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Error("swapi request error",
			"status", resp.StatusCode(),
			"path", path,
			"body", truncateBody(resp.Body()),
		)
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrFetchFailed, resp.StatusCode())
	}

	return resp.Body(), nil
}

func (c *Client) getPeople(ctx context.Context, query map[string]string) ([]Person, error) {
	body, err := c.doGet(ctx, peoplePath, query)
	if err != nil {
		return nil, err
	}

	var resp PeopleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("swapi response decode failed", "error", err)
		return nil, fmt.Errorf("%w: failed to parse response: %v", domain.ErrFetchFailed, err)
	}
	return resp.Results, nil
}

// FetchAll returns the first page of the people collection
func (c *Client) FetchAll(ctx context.Context) ([]domain.Character, error) {
	people, err := c.getPeople(ctx, nil)
	if err != nil {
		return nil, err
	}
	return MapCharacters(people), nil
}

// LookupByName searches the collection and returns the first match.
// Several characters may match; no attempt is made to pick an exact one.
func (c *Client) LookupByName(ctx context.Context, name string) (domain.Character, error) {
	people, err := c.getPeople(ctx, map[string]string{searchQueryParam: name})
	if err != nil {
		return domain.Character{}, err
	}
	if len(people) == 0 {
		return domain.Character{}, fmt.Errorf("%w: %q", domain.ErrNotFound, name)
	}
	return MapCharacter(people[0]), nil
}

func truncateBody(body []byte) string {
	const limit = 256
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}

// restyLogger routes resty's internal logging into slog
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
