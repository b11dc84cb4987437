package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterLabels(t *testing.T) {
	c := Character{Name: "Luke Skywalker", Height: "172", Mass: "77", Films: []string{"a", "b", "c", "d"}}
	assert.Equal(t, 4, c.FilmCount())
	assert.Equal(t, "4 films", c.FilmsLabel())
	assert.Equal(t, "172 cm", c.HeightLabel())
	assert.Equal(t, "77 kg", c.MassLabel())

	unknown := Character{Height: "unknown"}
	assert.Equal(t, "unknown", unknown.HeightLabel())
	assert.Equal(t, "unknown", unknown.MassLabel())
	assert.Equal(t, "0 films", unknown.FilmsLabel())
}

func TestCharacterFields(t *testing.T) {
	c := Character{Name: "Leia Organa", Height: "150", BirthYear: "19BBY", Gender: "female"}
	fields := c.Fields()
	require.Len(t, fields, 8)
	assert.Equal(t, Field{Label: "Height", Value: "150 cm"}, fields[0])
	assert.Equal(t, Field{Label: "Birth Year", Value: "19BBY"}, fields[2])
	assert.Equal(t, Field{Label: "Hair Color", Value: "unknown"}, fields[4])
}

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeys() {
		got, err := ParseSortKey(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseSortKey("height")
	assert.Error(t, err)
}

func TestSortOrderFlip(t *testing.T) {
	assert.Equal(t, SortDesc, SortAsc.Flip())
	assert.Equal(t, SortAsc, SortDesc.Flip())
	assert.Equal(t, SortAsc, SortAsc.Flip().Flip())

	_, err := ParseSortOrder("sideways")
	assert.Error(t, err)
}

func TestListQueryNormalize(t *testing.T) {
	assert.Equal(t, DefaultListQuery(), ListQuery{}.Normalize())

	q := ListQuery{Search: "r2", Gender: "n/a", SortKey: SortByFilms, SortOrder: SortDesc}
	assert.Equal(t, q, q.Normalize())
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, MsgNotFound, UserMessage(ErrNotFound))
	assert.Equal(t, MsgNotFound, UserMessage(fmt.Errorf("lookup %q: %w", "x", ErrNotFound)))
	assert.Equal(t, MsgFetchFailed, UserMessage(fmt.Errorf("%w: status 500", ErrFetchFailed)))
	assert.Equal(t, MsgFetchFailed, UserMessage(errors.New("dial tcp: refused")))
}

func TestGenderLabel(t *testing.T) {
	assert.Equal(t, "Male", GenderLabel("male"))
	assert.Equal(t, "Hermaphrodite", GenderLabel("hermaphrodite"))
	assert.Equal(t, "All", GenderLabel(GenderAll))
	assert.Equal(t, "Unknown", GenderLabel(""))
}
