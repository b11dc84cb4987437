package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/datapad/internal/route"
	"github.com/mmcdole/datapad/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	if m.Omnibar.IsVisible() {
		return m.Omnibar.View()
	}

	var content string
	if m.Current().Kind == route.KindPerson {
		content = m.Card.View()
	} else {
		content = m.Table.View()
	}

	contentHeight := m.Height - ChromeHeight
	switch {
	case m.SortModal.IsVisible():
		content = lipgloss.Place(m.Width, contentHeight, lipgloss.Center, lipgloss.Center, m.SortModal.View())
	case m.GenderModal.IsVisible():
		content = lipgloss.Place(m.Width, contentHeight, lipgloss.Center, lipgloss.Center, m.GenderModal.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderFooter())
}

// renderFooter renders the route breadcrumb or status on the left and key hints on the right
func (m Model) renderFooter() string {
	left := styles.AccentStyle.Render(m.Current().String())
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	bindings := Keys.ShortHelp()
	if m.Current().Kind == route.KindPerson {
		bindings = Keys.DetailHelp()
	}
	right := m.Help.ShortHelpView(bindings)

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	h := m.Help
	h.ShowAll = true

	body := styles.ModalTitleStyle.Render("Keys") + "\n" +
		h.View(Keys) + "\n\n" +
		styles.DimStyle.Render("Press ? or esc to return...")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(body))
}
