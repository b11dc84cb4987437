package view

import "github.com/mmcdole/datapad/internal/domain"

// DetailState is the state of one detail view instance
type DetailState struct {
	ID        ID
	Name      string // decoded route parameter
	Status    Status
	Character domain.Character
	Err       string
}

// NewDetailState mounts a detail view for name in the loading state
func NewDetailState(name string) *DetailState {
	return &DetailState{
		ID:     NextID(),
		Name:   name,
		Status: StatusLoading,
	}
}

// Resolve moves loading -> found
func (s *DetailState) Resolve(c domain.Character) bool {
	if s.Status != StatusLoading {
		return false
	}
	s.Status = StatusReady
	s.Character = c
	return true
}

// Fail moves loading -> error with the user-visible message for err
func (s *DetailState) Fail(err error) bool {
	if s.Status != StatusLoading {
		return false
	}
	s.Status = StatusError
	s.Err = domain.UserMessage(err)
	return true
}

// Found reports whether the lookup succeeded
func (s *DetailState) Found() bool {
	return s.Status == StatusReady
}
