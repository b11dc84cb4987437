package domain

import "context"

// CharacterRepository: Network reads against the people collection
// (implemented by the swapi client). The dataset is read-only.
type CharacterRepository interface {
	// FetchAll issues one request for the collection; no pagination
	FetchAll(ctx context.Context) ([]Character, error)

	// LookupByName returns the first search match or ErrNotFound
	LookupByName(ctx context.Context, name string) (Character, error)
}

// PreferenceStore persists UI session preferences between runs.
// It never holds dataset records.
type PreferenceStore interface {
	GetListQuery() (ListQuery, bool)
	SaveListQuery(q ListQuery) error

	GetRecent() ([]string, bool)
	SaveRecent(names []string) error
	ClearRecent() error

	Close() error
}

// URLOpener hands a resource URL to an external program
type URLOpener interface {
	Open(url string) error
}
