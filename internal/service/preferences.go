package service

import (
	"log/slog"
	"slices"
	"sort"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/datapad/internal/domain"
)

// MaxRecent caps the recent-lookup history
const MaxRecent = 20

// PreferenceService manages list query persistence and lookup history
type PreferenceService struct {
	store    domain.PreferenceStore
	defaults domain.ListQuery
	remember bool
	logger   *slog.Logger

	mu sync.Mutex // Serializes read-modify-write of the recent list
}

// NewPreferenceService creates a new preference service.
// When remember is false the stored list query is neither read nor written.
func NewPreferenceService(
	store domain.PreferenceStore,
	defaults domain.ListQuery,
	remember bool,
	logger *slog.Logger,
) *PreferenceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PreferenceService{
		store:    store,
		defaults: defaults.Normalize(),
		remember: remember,
		logger:   logger,
	}
}

// InitialQuery returns the query a new list view should start with
func (s *PreferenceService) InitialQuery() domain.ListQuery {
	if !s.remember {
		return s.defaults
	}
	if q, ok := s.store.GetListQuery(); ok {
		return q.Normalize()
	}
	return s.defaults
}

// SaveQuery remembers the current list query. Failures are logged, not surfaced.
func (s *PreferenceService) SaveQuery(q domain.ListQuery) {
	if !s.remember {
		return
	}
	if err := s.store.SaveListQuery(q); err != nil {
		s.logger.Warn("failed to save list query", "error", err)
	}
}

// RecordLookup moves name to the front of the recent list
func (s *PreferenceService) RecordLookup(name string) {
	if name == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recent, _ := s.store.GetRecent()
	recent = slices.DeleteFunc(recent, func(n string) bool { return n == name })
	recent = append([]string{name}, recent...)
	if len(recent) > MaxRecent {
		recent = recent[:MaxRecent]
	}

	if err := s.store.SaveRecent(recent); err != nil {
		s.logger.Warn("failed to save recent lookups", "error", err)
	}
}

// Recent returns recent lookups, most recent first
func (s *PreferenceService) Recent() []string {
	recent, _ := s.store.GetRecent()
	return recent
}

// SearchRecent ranks recent lookups against query.
// An empty query returns the full history; ties keep recency order.
func (s *PreferenceService) SearchRecent(query string) []string {
	recent := s.Recent()
	if query == "" {
		return recent
	}

	ranks := fuzzy.RankFindFold(query, recent)
	sort.Stable(ranks)

	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}

// ClearRecent forgets the lookup history
func (s *PreferenceService) ClearRecent() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ClearRecent()
}
