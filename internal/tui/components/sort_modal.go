package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/tui/styles"
)

// SortSelection represents the user's sort choice
type SortSelection struct {
	Key   domain.SortKey
	Order domain.SortOrder
}

// SortModal is a small popup for choosing the sort column
type SortModal struct {
	visible     bool
	options     []domain.SortKey
	cursor      int
	activeKey   domain.SortKey
	activeOrder domain.SortOrder
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{options: domain.SortKeys()}
}

// Show displays the modal with the current sort state
func (m *SortModal) Show(activeKey domain.SortKey, activeOrder domain.SortOrder) {
	m.visible = true
	m.options = domain.SortKeys()
	m.activeKey = activeKey
	m.activeOrder = activeOrder
	// Position cursor on the active key
	m.cursor = 0
	for i, opt := range m.options {
		if opt == activeKey {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a choice.
func (m *SortModal) HandleKey(key string) (handled bool, selection *SortSelection) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
		return true, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, nil
	case "enter":
		chosen := m.options[m.cursor]
		order := domain.SortAsc
		if chosen == m.activeKey {
			order = m.activeOrder.Flip()
		}
		m.visible = false
		return true, &SortSelection{Key: chosen, Order: order}
	case "esc", "s":
		m.visible = false
		return true, nil
	}

	return true, nil // consume all keys when visible
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	var lines []string
	for i, opt := range m.options {
		isActive := opt == m.activeKey

		prefix := "  "
		suffix := ""
		if isActive {
			prefix = "✓ "
			suffix = " " + m.activeOrder.Arrow()
		}
		text := styles.Pad(prefix+opt.String()+suffix, 20)

		style := lipgloss.NewStyle().Foreground(styles.LightGray)
		switch {
		case i == m.cursor:
			style = lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight)
		case isActive:
			style = lipgloss.NewStyle().Foreground(styles.SaberYellow)
		}
		lines = append(lines, style.Render(text))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.SaberYellow).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Sort by") + "\n" + strings.Join(lines, "\n"))
}
