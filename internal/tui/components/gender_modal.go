package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/tui/styles"
)

// GenderModal is a popup for choosing the gender filter
type GenderModal struct {
	visible bool
	options []string
	cursor  int
	active  string
}

// NewGenderModal creates a new gender modal
func NewGenderModal() GenderModal {
	return GenderModal{}
}

// Show displays the modal. "all" is always offered first.
func (m *GenderModal) Show(genders []string, active string) {
	m.visible = true
	m.options = append([]string{domain.GenderAll}, genders...)
	m.active = active
	if m.active == "" {
		m.active = domain.GenderAll
	}
	m.cursor = 0
	for i, opt := range m.options {
		if opt == m.active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *GenderModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m GenderModal) IsVisible() bool {
	return m.visible
}

// Options returns the offered gender values
func (m GenderModal) Options() []string {
	return m.options
}

// HandleKey processes a key press, returns (handled, selection).
// A non-empty selection is the chosen gender value.
func (m *GenderModal) HandleKey(key string) (handled bool, selection string) {
	if !m.visible {
		return false, ""
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
		return true, ""
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, ""
	case "enter":
		m.visible = false
		return true, m.options[m.cursor]
	case "esc", "f":
		m.visible = false
		return true, ""
	}

	return true, ""
}

// View renders the gender modal
func (m GenderModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	var lines []string
	for i, opt := range m.options {
		prefix := "  "
		if opt == m.active {
			prefix = "✓ "
		}
		text := styles.Pad(prefix+domain.GenderLabel(opt), 20)

		style := lipgloss.NewStyle().Foreground(styles.LightGray)
		switch {
		case i == m.cursor:
			style = lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight)
		case opt == m.active:
			style = lipgloss.NewStyle().Foreground(styles.SaberYellow)
		}
		lines = append(lines, style.Render(text))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.SaberYellow).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Gender") + "\n" + strings.Join(lines, "\n"))
}
