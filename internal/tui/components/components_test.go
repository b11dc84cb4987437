package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/view"
)

var people = []domain.Character{
	{Name: "Luke Skywalker", Gender: "male", Films: []string{"1", "2", "3", "6"}},
	{Name: "Leia Organa", Gender: "female", Films: []string{"1", "2", "3", "6", "7"}},
	{Name: "Darth Vader", Gender: "male", Films: []string{"1", "2", "3", "6"}},
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func special(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func readyList(t *testing.T) *view.ListState {
	t.Helper()
	s := view.NewListState(domain.DefaultListQuery())
	require.True(t, s.Resolve(people))
	return s
}

func TestRosterTableLoadingAndError(t *testing.T) {
	table := NewRosterTable()
	table.SetSize(80, 20)

	s := view.NewListState(domain.DefaultListQuery())
	table.SetState(s)
	assert.Contains(t, table.View(), "Loading...")
	assert.Nil(t, table.Selected())

	s.Fail(domain.ErrFetchFailed)
	table.SetState(s)
	out := table.View()
	assert.Contains(t, out, domain.MsgFetchFailed)
	assert.NotContains(t, out, "Name")
	assert.NotContains(t, out, "Luke")
}

func TestRosterTableRendersRows(t *testing.T) {
	table := NewRosterTable()
	table.SetSize(100, 20)
	table.SetState(readyList(t))

	out := table.View()
	assert.Contains(t, out, "Name ↑")
	assert.Contains(t, out, "Gender")
	assert.Contains(t, out, "Films")
	assert.Contains(t, out, "Details")
	assert.Contains(t, out, "Darth Vader")
	assert.Contains(t, out, "4 films")
	assert.Contains(t, out, DetailsLabel)
	assert.Equal(t, 20, lipgloss.Height(out))

	// Gender cells show the record value as served
	assert.Contains(t, out, "female")
	assert.NotContains(t, out, "Female")
}

func TestRosterTableNavigation(t *testing.T) {
	table := NewRosterTable()
	table.SetSize(100, 20)
	table.SetState(readyList(t))

	require.Equal(t, "Darth Vader", table.SelectedName())

	table, _ = table.Update(runes("j"))
	assert.Equal(t, "Leia Organa", table.SelectedName())

	table, _ = table.Update(runes("G"))
	assert.Equal(t, "Luke Skywalker", table.SelectedName())

	table, _ = table.Update(runes("j"))
	assert.Equal(t, "Luke Skywalker", table.SelectedName())

	table, _ = table.Update(runes("g"))
	assert.Equal(t, 0, table.Cursor())
}

func TestRosterTableKeepsSelectionAcrossSort(t *testing.T) {
	table := NewRosterTable()
	table.SetSize(100, 20)
	s := readyList(t)
	table.SetState(s)

	require.True(t, table.SelectByName("Leia Organa"))
	s.SetSort(domain.SortByFilms, domain.SortDesc)
	table.SetState(s)

	assert.Equal(t, "Leia Organa", table.SelectedName())
	assert.Equal(t, 0, table.Cursor())
}

func TestRosterTableSearchInput(t *testing.T) {
	table := NewRosterTable()
	table.SetSize(100, 20)
	table.SetState(readyList(t))

	table, _ = table.Update(runes("/"))
	require.True(t, table.IsSearchTyping())

	table, _ = table.Update(runes("lu"))
	assert.Equal(t, "lu", table.SearchValue())

	// j is text while typing
	table, _ = table.Update(runes("j"))
	assert.Equal(t, "luj", table.SearchValue())

	table, _ = table.Update(special(tea.KeyEnter))
	assert.False(t, table.IsSearchTyping())
	assert.Equal(t, "luj", table.SearchValue())

	table, _ = table.Update(special(tea.KeyEsc))
	assert.Equal(t, "", table.SearchValue())
}

func TestSortModalTogglesActiveKey(t *testing.T) {
	m := NewSortModal()
	m.Show(domain.SortByName, domain.SortAsc)
	require.True(t, m.IsVisible())

	handled, sel := m.HandleKey("enter")
	require.True(t, handled)
	require.NotNil(t, sel)
	assert.Equal(t, SortSelection{Key: domain.SortByName, Order: domain.SortDesc}, *sel)
	assert.False(t, m.IsVisible())
}

func TestSortModalNewKeyStartsAscending(t *testing.T) {
	m := NewSortModal()
	m.Show(domain.SortByName, domain.SortDesc)

	m.HandleKey("j")
	m.HandleKey("j")
	_, sel := m.HandleKey("enter")
	require.NotNil(t, sel)
	assert.Equal(t, SortSelection{Key: domain.SortByFilms, Order: domain.SortAsc}, *sel)
}

func TestSortModalEscape(t *testing.T) {
	m := NewSortModal()
	handled, _ := m.HandleKey("enter")
	assert.False(t, handled)

	m.Show(domain.SortByGender, domain.SortAsc)
	assert.Contains(t, m.View(), "Gender ↑")
	handled, sel := m.HandleKey("esc")
	assert.True(t, handled)
	assert.Nil(t, sel)
	assert.False(t, m.IsVisible())
}

func TestGenderModal(t *testing.T) {
	m := NewGenderModal()
	m.Show([]string{"female", "male", "n/a"}, "male")
	assert.Equal(t, []string{"all", "female", "male", "n/a"}, m.Options())

	view := m.View()
	assert.Contains(t, view, "All")
	assert.Contains(t, view, "Female")

	m.HandleKey("k")
	m.HandleKey("k")
	handled, sel := m.HandleKey("enter")
	assert.True(t, handled)
	assert.Equal(t, domain.GenderAll, sel)
}

func TestDetailCardStates(t *testing.T) {
	card := NewDetailCard()
	card.SetSize(80, 24)

	s := view.NewDetailState("Luke Skywalker")
	card.SetState(s)
	assert.Contains(t, card.View(), "Loading Luke Skywalker")

	s.Resolve(domain.Character{Name: "Luke Skywalker", Height: "172", BirthYear: "19BBY"})
	out := card.View()
	assert.Contains(t, out, "/person/Luke%20Skywalker")
	assert.Contains(t, out, "172 cm")
	assert.Contains(t, out, "19BBY")

	missing := view.NewDetailState("Nonexistent")
	missing.Fail(domain.ErrNotFound)
	card.SetState(missing)
	assert.Contains(t, card.View(), domain.MsgNotFound)
}

func TestOmnibarRanksAndSelects(t *testing.T) {
	o := NewOmnibar()
	o.SetSize(100, 30)
	o.Show([]string{"Luke Skywalker", "Leia Organa", "Darth Vader"})
	assert.Len(t, o.Results(), 3)

	o, _, _ = o.Update(runes("vad"))
	require.NotEmpty(t, o.Results())
	assert.Equal(t, "Darth Vader", o.Results()[0].Name)
	assert.NotEmpty(t, o.Results()[0].MatchedIndexes)

	o, _, picked := o.Update(special(tea.KeyEnter))
	assert.True(t, picked)
	assert.Equal(t, "Darth Vader", o.Selected())
	assert.False(t, o.IsVisible())
}

func TestOmnibarNoMatches(t *testing.T) {
	o := NewOmnibar()
	o.SetSize(100, 30)
	o.Show([]string{"Luke Skywalker"})

	o, _, _ = o.Update(runes("zzz"))
	assert.Empty(t, o.Results())
	assert.Contains(t, o.View(), "No matches found")

	o, _, picked := o.Update(special(tea.KeyEnter))
	assert.False(t, picked)

	o, _, _ = o.Update(special(tea.KeyEsc))
	assert.False(t, o.IsVisible())
}

func TestHighlightMatchesKeepsText(t *testing.T) {
	out := HighlightMatches("Padmé Amidala", []int{0, 1, 7}, false)
	assert.Equal(t, "Padmé Amidala", stripANSI(out))
}

func stripANSI(s string) string {
	var out []rune
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && ((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')):
			inEscape = false
		case !inEscape:
			out = append(out, r)
		}
	}
	return string(out)
}
