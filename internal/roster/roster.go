// Package roster derives the visible list of characters from the raw records
// and the list query. Every function here is pure: inputs are never mutated.
package roster

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mmcdole/datapad/internal/domain"
)

// Apply runs the full pipeline: filter, then sort
func Apply(records []domain.Character, q domain.ListQuery) []domain.Character {
	return Sort(Filter(records, q), q.SortKey, q.SortOrder)
}

// Filter keeps records whose gender matches the filter (or the filter is "all")
// and whose name contains the search text, ignoring case.
func Filter(records []domain.Character, q domain.ListQuery) []domain.Character {
	search := strings.ToLower(q.Search)
	out := make([]domain.Character, 0, len(records))
	for _, r := range records {
		if !MatchesGender(r, q.Gender) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Name), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// MatchesGender reports whether the record passes the gender filter
func MatchesGender(r domain.Character, gender string) bool {
	return gender == "" || gender == domain.GenderAll || r.Gender == gender
}

// Sort orders records ascending by key. A descending order is the ascending
// result reversed as a whole, so ties are reversed too.
func Sort(records []domain.Character, key domain.SortKey, order domain.SortOrder) []domain.Character {
	out := slices.Clone(records)
	slices.SortStableFunc(out, compareBy(key))
	if order == domain.SortDesc {
		slices.Reverse(out)
	}
	return out
}

func compareBy(key domain.SortKey) func(a, b domain.Character) int {
	switch key {
	case domain.SortByGender:
		return func(a, b domain.Character) int { return strings.Compare(a.Gender, b.Gender) }
	case domain.SortByFilms:
		return func(a, b domain.Character) int { return cmp.Compare(a.FilmCount(), b.FilmCount()) }
	default:
		return func(a, b domain.Character) int { return strings.Compare(a.Name, b.Name) }
	}
}

// Genders returns the distinct genders present in records, sorted
func Genders(records []domain.Character) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		if r.Gender == "" || seen[r.Gender] {
			continue
		}
		seen[r.Gender] = true
		out = append(out, r.Gender)
	}
	slices.Sort(out)
	return out
}

// Names projects records onto their names
func Names(records []domain.Character) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}
