package view

import (
	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/roster"
)

// ListState is the state of one list view instance.
// Records are owned by the instance and dropped with it.
type ListState struct {
	ID      ID
	Status  Status
	Records []domain.Character
	Query   domain.ListQuery
	Err     string

	visible []domain.Character
}

// NewListState mounts a list view in the loading state
func NewListState(q domain.ListQuery) *ListState {
	return &ListState{
		ID:     NextID(),
		Status: StatusLoading,
		Query:  q.Normalize(),
	}
}

// Resolve moves loading -> ready. Returns false when the transition does not apply.
func (s *ListState) Resolve(records []domain.Character) bool {
	if s.Status != StatusLoading {
		return false
	}
	s.Status = StatusReady
	s.Records = records
	s.recompute()
	return true
}

// Fail moves loading -> error with the user-visible message for err
func (s *ListState) Fail(err error) bool {
	if s.Status != StatusLoading {
		return false
	}
	s.Status = StatusError
	s.Err = domain.UserMessage(err)
	s.Records = nil
	s.visible = nil
	return true
}

// Visible returns the filtered and sorted roster. Empty unless ready.
func (s *ListState) Visible() []domain.Character {
	return s.visible
}

// Genders returns the genders present in the loaded records
func (s *ListState) Genders() []string {
	return roster.Genders(s.Records)
}

// SetQuery replaces the whole query
func (s *ListState) SetQuery(q domain.ListQuery) {
	s.Query = q.Normalize()
	s.recompute()
}

// SetSearch updates the search text
func (s *ListState) SetSearch(text string) {
	s.Query.Search = text
	s.recompute()
}

// SetGender updates the gender filter ("all" disables it)
func (s *ListState) SetGender(gender string) {
	if gender == "" {
		gender = domain.GenderAll
	}
	s.Query.Gender = gender
	s.recompute()
}

// SetSort updates key and order together
func (s *ListState) SetSort(key domain.SortKey, order domain.SortOrder) {
	s.Query.SortKey = key
	s.Query.SortOrder = order
	s.recompute()
}

// SortByColumn mirrors clicking a column header: a new key sorts ascending,
// the active key flips direction.
func (s *ListState) SortByColumn(key domain.SortKey) {
	if s.Query.SortKey == key {
		s.SetSort(key, s.Query.SortOrder.Flip())
		return
	}
	s.SetSort(key, domain.SortAsc)
}

// ToggleOrder flips the sort direction
func (s *ListState) ToggleOrder() {
	s.SetSort(s.Query.SortKey, s.Query.SortOrder.Flip())
}

func (s *ListState) recompute() {
	if s.Status != StatusReady {
		s.visible = nil
		return
	}
	s.visible = roster.Apply(s.Records, s.Query)
}
