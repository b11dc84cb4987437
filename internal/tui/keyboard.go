package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/route"
	"github.com/mmcdole/datapad/internal/view"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.Shutdown()
		return m, tea.Quit
	}

	if m.State == StateHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// The search bar swallows everything while typing
	if m.Current().Kind == route.KindList && m.Table.IsSearchTyping() {
		return m.updateTable(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		m.Shutdown()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Reload):
		return m, m.remount()
	}

	if m.Current().Kind == route.KindPerson {
		switch {
		case key.Matches(msg, Keys.Back):
			return m, m.back()
		case key.Matches(msg, Keys.Open):
			return m, m.openDetail()
		case key.Matches(msg, Keys.Copy):
			if m.Clipboard != nil {
				return m, CopyCmd(m.Clipboard, m.Current().String())
			}
		}
		return m, nil
	}

	return m.handleListKey(msg)
}

// handleListKey handles keys on the list view
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ready := m.List != nil && m.List.Status == view.StatusReady

	switch {
	case key.Matches(msg, Keys.Jump):
		if ready {
			m.Omnibar.SetSize(m.Width, m.Height)
			m.Omnibar.Show(namesOf(m.List.Records))
			return m, m.Omnibar.Init()
		}
		return m, nil

	case key.Matches(msg, Keys.Gender):
		if ready {
			m.GenderModal.Show(m.List.Genders(), m.List.Query.Gender)
		}
		return m, nil

	case key.Matches(msg, Keys.Sort):
		if ready {
			m.SortModal.Show(m.List.Query.SortKey, m.List.Query.SortOrder)
		}
		return m, nil

	case key.Matches(msg, Keys.SortName):
		return m.sortByColumn(domain.SortByName)
	case key.Matches(msg, Keys.SortGender):
		return m.sortByColumn(domain.SortByGender)
	case key.Matches(msg, Keys.SortFilms):
		return m.sortByColumn(domain.SortByFilms)

	case key.Matches(msg, Keys.FlipOrder):
		if m.List != nil {
			m.List.ToggleOrder()
			m.queryChanged()
		}
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if c := m.Table.Selected(); c != nil {
			return m, m.navigate(route.Person(c.Name))
		}
		return m, nil

	case key.Matches(msg, Keys.Copy):
		if name := m.Table.SelectedName(); name != "" && m.Clipboard != nil {
			return m, CopyCmd(m.Clipboard, route.Person(name).String())
		}
		return m, nil
	}

	return m.updateTable(msg)
}

// routeToModal sends the key to the visible modal, if any
func (m Model) routeToModal(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	switch {
	case m.Omnibar.IsVisible():
		var cmd tea.Cmd
		var picked bool
		m.Omnibar, cmd, picked = m.Omnibar.Update(msg)
		if picked {
			if name := m.Omnibar.Selected(); name != "" {
				return true, m, m.navigate(route.Person(name))
			}
		}
		return true, m, cmd

	case m.SortModal.IsVisible():
		_, sel := m.SortModal.HandleKey(msg.String())
		if sel != nil && m.List != nil {
			m.List.SetSort(sel.Key, sel.Order)
			m.queryChanged()
		}
		return true, m, nil

	case m.GenderModal.IsVisible():
		_, sel := m.GenderModal.HandleKey(msg.String())
		if sel != "" && m.List != nil {
			m.List.SetGender(sel)
			m.queryChanged()
		}
		return true, m, nil
	}

	return false, m, nil
}

func (m Model) sortByColumn(k domain.SortKey) (tea.Model, tea.Cmd) {
	if m.List != nil {
		m.List.SortByColumn(k)
		m.queryChanged()
	}
	return m, nil
}

// updateTable forwards msg to the table and applies any search change
func (m Model) updateTable(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.Table.SearchValue()
	wasTyping := m.Table.IsSearchTyping()

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)

	changed := m.Table.SearchValue() != before
	if changed && m.List != nil {
		m.List.SetSearch(m.Table.SearchValue())
		m.Table.SetState(m.List)
	}

	// Keystrokes only filter; the query is saved once the search bar lets go
	if !m.Table.IsSearchTyping() && (wasTyping || changed) {
		m.saveQuery()
	}
	return m, cmd
}

func namesOf(records []domain.Character) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}
