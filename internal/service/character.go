package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmcdole/datapad/internal/domain"
)

// CharacterService orchestrates reads against the people collection.
// It holds no records itself; each view owns what it fetched.
type CharacterService struct {
	repo   domain.CharacterRepository
	prefs  *PreferenceService
	logger *slog.Logger
}

// NewCharacterService creates a new character service.
// prefs may be nil, in which case lookups are not remembered.
func NewCharacterService(
	repo domain.CharacterRepository,
	prefs *PreferenceService,
	logger *slog.Logger,
) *CharacterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CharacterService{
		repo:   repo,
		prefs:  prefs,
		logger: logger,
	}
}

// FetchAll loads the roster for a list view
func (s *CharacterService) FetchAll(ctx context.Context) ([]domain.Character, error) {
	records, err := s.repo.FetchAll(ctx)
	if err != nil {
		s.logger.Error("failed to fetch characters", "error", err)
		return nil, err
	}

	s.logger.Info("loaded characters", "count", len(records))
	return records, nil
}

// Lookup resolves a character by name for a detail view
func (s *CharacterService) Lookup(ctx context.Context, name string) (domain.Character, error) {
	c, err := s.repo.LookupByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Info("character not found", "name", name)
		} else {
			s.logger.Error("failed to look up character", "name", name, "error", err)
		}
		return domain.Character{}, err
	}

	s.logger.Info("resolved character", "name", name, "match", c.Name)
	if s.prefs != nil {
		s.prefs.RecordLookup(c.Name)
	}
	return c, nil
}
