package domain

import "fmt"

// SortKey identifies the list column the roster is ordered by
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByGender SortKey = "gender"
	SortByFilms  SortKey = "films"
)

// SortKeys returns the sortable columns in display order
func SortKeys() []SortKey {
	return []SortKey{SortByName, SortByGender, SortByFilms}
}

// String returns the column header for the sort key
func (k SortKey) String() string {
	switch k {
	case SortByName:
		return "Name"
	case SortByGender:
		return "Gender"
	case SortByFilms:
		return "Films"
	default:
		return "Unknown"
	}
}

// ParseSortKey validates a sort key from config or flags
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortByName, SortByGender, SortByFilms:
		return k, nil
	}
	return "", fmt.Errorf("invalid sort key %q (want name, gender or films)", s)
}

// SortOrder is the direction applied after ordering by the key
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Flip returns the opposite direction
func (o SortOrder) Flip() SortOrder {
	if o == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// Arrow returns the header indicator for the direction
func (o SortOrder) Arrow() string {
	if o == SortDesc {
		return "↓"
	}
	return "↑"
}

// ParseSortOrder validates a sort order from config or flags
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case SortAsc, SortDesc:
		return o, nil
	}
	return "", fmt.Errorf("invalid sort order %q (want asc or desc)", s)
}

// ListQuery is the user-controlled part of the list view state.
// The visible roster is always derived from the raw records and this query.
type ListQuery struct {
	Search    string    `json:"search"`
	Gender    string    `json:"gender"`
	SortKey   SortKey   `json:"sort_key"`
	SortOrder SortOrder `json:"sort_order"`
}

// DefaultListQuery returns the query a fresh list view starts with
func DefaultListQuery() ListQuery {
	return ListQuery{
		Search:    "",
		Gender:    GenderAll,
		SortKey:   SortByName,
		SortOrder: SortAsc,
	}
}

// Normalize fills zero fields with defaults so a partially stored query is usable
func (q ListQuery) Normalize() ListQuery {
	def := DefaultListQuery()
	if q.Gender == "" {
		q.Gender = def.Gender
	}
	if _, err := ParseSortKey(string(q.SortKey)); err != nil {
		q.SortKey = def.SortKey
	}
	if _, err := ParseSortOrder(string(q.SortOrder)); err != nil {
		q.SortOrder = def.SortOrder
	}
	return q
}
