package view

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/datapad/internal/domain"
)

var people = []domain.Character{
	{Name: "Luke Skywalker", Gender: "male", Films: []string{"1", "2", "3", "6"}},
	{Name: "Leia Organa", Gender: "female", Films: []string{"1", "2", "3", "6", "7"}},
	{Name: "Darth Vader", Gender: "male", Films: []string{"1", "2", "3", "6"}},
	{Name: "R2-D2", Gender: "n/a", Films: []string{"1", "2", "3", "4", "5", "6"}},
}

func names(cs []domain.Character) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func TestNextIDIsUnique(t *testing.T) {
	a := NewListState(domain.DefaultListQuery())
	b := NewListState(domain.DefaultListQuery())
	d := NewDetailState("Luke")
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, b.ID, d.ID)
}

func TestListStartsLoading(t *testing.T) {
	s := NewListState(domain.DefaultListQuery())
	assert.Equal(t, StatusLoading, s.Status)
	assert.Empty(t, s.Visible())
}

func TestListResolve(t *testing.T) {
	s := NewListState(domain.DefaultListQuery())
	require.True(t, s.Resolve(people))

	assert.Equal(t, StatusReady, s.Status)
	assert.Equal(t, []string{"Darth Vader", "Leia Organa", "Luke Skywalker", "R2-D2"}, names(s.Visible()))
}

func TestListFailIsTerminal(t *testing.T) {
	s := NewListState(domain.DefaultListQuery())
	require.True(t, s.Fail(fmt.Errorf("%w: boom", domain.ErrFetchFailed)))

	assert.Equal(t, StatusError, s.Status)
	assert.Equal(t, domain.MsgFetchFailed, s.Err)
	assert.Empty(t, s.Visible())

	assert.False(t, s.Resolve(people))
	assert.Equal(t, StatusError, s.Status)
	assert.Empty(t, s.Visible())
}

func TestListResolveIsTerminal(t *testing.T) {
	s := NewListState(domain.DefaultListQuery())
	require.True(t, s.Resolve(people))
	assert.False(t, s.Fail(errors.New("late")))
	assert.False(t, s.Resolve(nil))
	assert.Equal(t, StatusReady, s.Status)
	assert.Len(t, s.Records, len(people))
}

func TestListQueryUpdates(t *testing.T) {
	s := NewListState(domain.DefaultListQuery())
	s.Resolve(people)

	s.SetSearch("LU")
	assert.Equal(t, []string{"Luke Skywalker"}, names(s.Visible()))

	s.SetSearch("")
	s.SetGender("male")
	assert.Equal(t, []string{"Darth Vader", "Luke Skywalker"}, names(s.Visible()))

	s.SetGender("")
	assert.Equal(t, domain.GenderAll, s.Query.Gender)
	assert.Len(t, s.Visible(), 4)
}

func TestListSortByColumn(t *testing.T) {
	s := NewListState(domain.DefaultListQuery())
	s.Resolve(people)

	s.SortByColumn(domain.SortByFilms)
	assert.Equal(t, domain.SortAsc, s.Query.SortOrder)
	assert.Equal(t, "R2-D2", s.Visible()[3].Name)

	s.SortByColumn(domain.SortByFilms)
	assert.Equal(t, domain.SortDesc, s.Query.SortOrder)
	assert.Equal(t, []string{"R2-D2", "Leia Organa", "Darth Vader", "Luke Skywalker"}, names(s.Visible()))

	s.SortByColumn(domain.SortByName)
	assert.Equal(t, domain.SortAsc, s.Query.SortOrder)
}

func TestListToggleOrder(t *testing.T) {
	s := NewListState(domain.DefaultListQuery())
	s.Resolve(people)
	asc := names(s.Visible())

	s.ToggleOrder()
	desc := names(s.Visible())
	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestListQueryBeforeResolve(t *testing.T) {
	s := NewListState(domain.DefaultListQuery())
	s.SetSearch("lu")
	assert.Empty(t, s.Visible())

	s.Resolve(people)
	assert.Equal(t, []string{"Luke Skywalker"}, names(s.Visible()))
}

func TestListGenders(t *testing.T) {
	s := NewListState(domain.DefaultListQuery())
	s.Resolve(people)
	assert.Equal(t, []string{"female", "male", "n/a"}, s.Genders())
}

func TestDetailTransitions(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s := NewDetailState("Luke")
		require.True(t, s.Resolve(people[0]))
		assert.True(t, s.Found())
		assert.Equal(t, "Luke Skywalker", s.Character.Name)
		assert.False(t, s.Fail(domain.ErrNotFound))
	})

	t.Run("not found", func(t *testing.T) {
		s := NewDetailState("Nonexistent")
		require.True(t, s.Fail(domain.ErrNotFound))
		assert.False(t, s.Found())
		assert.Equal(t, domain.MsgNotFound, s.Err)
		assert.False(t, s.Resolve(people[0]))
	})

	t.Run("fetch failure", func(t *testing.T) {
		s := NewDetailState("Luke")
		require.True(t, s.Fail(fmt.Errorf("%w: timeout", domain.ErrFetchFailed)))
		assert.Equal(t, domain.MsgFetchFailed, s.Err)
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "ready", StatusReady.String())
	assert.Equal(t, "error", StatusError.String())
}
