package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/tui/styles"
	"github.com/mmcdole/datapad/internal/view"
)

// SpinnerFrames is the loading animation shared by the views
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Layout constants for the roster table
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	genderColumnWidth  = 16
	filmsColumnWidth   = 10
	detailsColumnWidth = 14
	minNameWidth       = 12
)

// DetailsLabel is the action text shown on the cursor row
const DetailsLabel = "Show Details"

// RosterTable renders the visible roster as a Name | Gender | Films | Details table
// with a live search bar.
type RosterTable struct {
	rows  []domain.Character
	query domain.ListQuery
	total int

	status view.Status
	errMsg string

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width  int
	height int

	spinnerFrame int

	// Search state
	searchInput textinput.Model
}

// NewRosterTable creates an empty table in the loading state
func NewRosterTable() RosterTable {
	ti := textinput.New()
	ti.Placeholder = "type to search names..."
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.PlaceholderStyle = styles.DimStyle

	return RosterTable{
		status:      view.StatusLoading,
		searchInput: ti,
	}
}

// SetState syncs the table with a list view instance
func (t *RosterTable) SetState(s *view.ListState) {
	selected := t.SelectedName()

	t.status = s.Status
	t.errMsg = s.Err
	t.rows = s.Visible()
	t.query = s.Query
	t.total = len(s.Records)

	if !t.searchInput.Focused() && t.searchInput.Value() != s.Query.Search {
		t.searchInput.SetValue(s.Query.Search)
	}

	// Keep the cursor on the same character across re-sorts
	t.cursor = 0
	for i, r := range t.rows {
		if r.Name == selected {
			t.cursor = i
			break
		}
	}
	t.clampCursor()
	t.ensureVisible()
}

// SetSize updates the component dimensions
func (t *RosterTable) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.searchInput.Width = width - BorderWidth - 4
	t.recalcMaxVisible()
	t.ensureVisible()
}

// SetSpinnerFrame advances the loading animation
func (t *RosterTable) SetSpinnerFrame(frame int) {
	t.spinnerFrame = frame
}

// Selected returns the character under the cursor, or nil
func (t RosterTable) Selected() *domain.Character {
	if t.status != view.StatusReady || t.cursor < 0 || t.cursor >= len(t.rows) {
		return nil
	}
	c := t.rows[t.cursor]
	return &c
}

// SelectedName returns the name under the cursor, or ""
func (t RosterTable) SelectedName() string {
	if c := t.Selected(); c != nil {
		return c.Name
	}
	return ""
}

// SelectByName moves the cursor to the named row. Returns false if not visible.
func (t *RosterTable) SelectByName(name string) bool {
	for i, r := range t.rows {
		if r.Name == name {
			t.cursor = i
			t.ensureVisible()
			return true
		}
	}
	return false
}

// Cursor returns the cursor index into the visible rows
func (t RosterTable) Cursor() int {
	return t.cursor
}

// RowCount returns the number of visible rows
func (t RosterTable) RowCount() int {
	return len(t.rows)
}

// StartSearch focuses the search bar
func (t *RosterTable) StartSearch() tea.Cmd {
	t.searchInput.Focus()
	t.recalcMaxVisible()
	return textinput.Blink
}

// IsSearchTyping returns true while the search bar has focus
func (t RosterTable) IsSearchTyping() bool {
	return t.searchInput.Focused()
}

// SearchValue returns the current search text
func (t RosterTable) SearchValue() string {
	return t.searchInput.Value()
}

// Update handles key input for navigation and the search bar
func (t RosterTable) Update(msg tea.Msg) (RosterTable, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if t.searchInput.Focused() {
		if isKey {
			switch {
			case key.Matches(keyMsg, TableKeys.Escape):
				t.clearSearch()
				return t, nil
			case key.Matches(keyMsg, TableKeys.Enter):
				// Accept search, blur input to allow navigation
				t.searchInput.Blur()
				t.recalcMaxVisible()
				return t, nil
			}
		}
		var cmd tea.Cmd
		t.searchInput, cmd = t.searchInput.Update(msg)
		return t, cmd
	}

	if !isKey {
		return t, nil
	}

	switch {
	case key.Matches(keyMsg, TableKeys.Search):
		return t, t.StartSearch()
	case key.Matches(keyMsg, TableKeys.Escape):
		if t.searchInput.Value() != "" {
			t.clearSearch()
		}
		return t, nil
	}

	count := len(t.rows)
	if count == 0 {
		return t, nil
	}

	switch {
	case key.Matches(keyMsg, TableKeys.Down):
		if t.cursor < count-1 {
			t.cursor++
		}
	case key.Matches(keyMsg, TableKeys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(keyMsg, TableKeys.Home):
		t.cursor = 0
	case key.Matches(keyMsg, TableKeys.End):
		t.cursor = count - 1
	case key.Matches(keyMsg, TableKeys.HalfDown):
		t.cursor += t.maxVisible / 2
	case key.Matches(keyMsg, TableKeys.HalfUp):
		t.cursor -= t.maxVisible / 2
	case key.Matches(keyMsg, TableKeys.PageDown):
		t.cursor += t.maxVisible
	case key.Matches(keyMsg, TableKeys.PageUp):
		t.cursor -= t.maxVisible
	}
	t.clampCursor()
	t.ensureVisible()
	return t, nil
}

// View renders the component
func (t RosterTable) View() string {
	style := styles.ActiveBorder
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(max(t.width-frameW, 0)).
		Height(max(t.height-frameH, 0)).
		Render(t.renderContent())
}

func (t *RosterTable) clearSearch() {
	t.searchInput.SetValue("")
	t.searchInput.Blur()
	t.recalcMaxVisible()
}

func (t *RosterTable) searchBarVisible() bool {
	return t.searchInput.Focused() || t.searchInput.Value() != ""
}

func (t *RosterTable) recalcMaxVisible() {
	// Interior height minus title, column header and scroll indicators
	interior := t.height - BorderHeight
	t.maxVisible = interior - ScrollIndicatorLines - 2
	if t.searchBarVisible() {
		t.maxVisible--
	}
	if t.maxVisible < 1 {
		t.maxVisible = 1
	}
}

func (t *RosterTable) clampCursor() {
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *RosterTable) ensureVisible() {
	if t.maxVisible <= 0 {
		return
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+t.maxVisible {
		t.offset = t.cursor - t.maxVisible + 1
	}
	if t.offset < 0 {
		t.offset = 0
	}
}

// Rendering

func (t RosterTable) renderContent() string {
	innerWidth := max(t.width-BorderWidth, 30)

	titleLine := styles.AccentStyle.Render("Characters") + t.renderSummary()

	switch t.status {
	case view.StatusLoading:
		spinner := styles.SpinnerStyle.Render(SpinnerFrames[t.spinnerFrame%len(SpinnerFrames)])
		return titleLine + "\n\n" + spinner + styles.DimStyle.Render(" Loading...")
	case view.StatusError:
		// No table on error
		return titleLine + "\n\n" + styles.ErrorStyle.Render(t.errMsg)
	}

	nameWidth := max(innerWidth-genderColumnWidth-filmsColumnWidth-detailsColumnWidth-2, minNameWidth)

	var lines []string
	lines = append(lines, t.renderHeader(nameWidth))

	if len(t.rows) == 0 {
		lines = append(lines, " ", styles.DimStyle.Render("No characters match"))
	} else {
		end := min(t.offset+t.maxVisible, len(t.rows))

		header := " "
		if t.offset > 0 {
			header = styles.DimStyle.Render("↑ more")
		}
		lines = append(lines, header)

		for i := t.offset; i < end; i++ {
			lines = append(lines, t.renderRow(t.rows[i], i == t.cursor, nameWidth, innerWidth))
		}

		footer := " "
		if end < len(t.rows) {
			footer = styles.DimStyle.Render("↓ more")
		}
		lines = append(lines, footer)
	}

	content := titleLine + "\n" + strings.Join(lines, "\n")
	if t.searchBarVisible() {
		content += "\n" + t.renderSearchBar()
	}
	return content
}

func (t RosterTable) renderSummary() string {
	var parts []string
	if t.query.Gender != "" && t.query.Gender != domain.GenderAll {
		parts = append(parts, "gender: "+domain.GenderLabel(t.query.Gender))
	}
	if t.query.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", t.query.Search))
	}
	if len(parts) == 0 {
		return ""
	}
	return styles.DimStyle.Render("  " + strings.Join(parts, " · "))
}

func (t RosterTable) renderHeader(nameWidth int) string {
	cell := func(k domain.SortKey, n int, width int) string {
		label := fmt.Sprintf("%d %s", n, k)
		if t.query.SortKey == k {
			label += " " + t.query.SortOrder.Arrow()
			return styles.ActiveHeaderStyle.Render(styles.Pad(label, width))
		}
		return styles.HeaderStyle.Render(styles.Pad(label, width))
	}

	return " " +
		cell(domain.SortByName, 1, nameWidth) +
		cell(domain.SortByGender, 2, genderColumnWidth) +
		cell(domain.SortByFilms, 3, filmsColumnWidth) +
		styles.HeaderStyle.Render(styles.Pad("Details", detailsColumnWidth))
}

func (t RosterTable) renderRow(c domain.Character, selected bool, nameWidth, width int) string {
	accent := styles.SaberYellow
	blue := styles.Blue

	details := ""
	if selected {
		details = DetailsLabel
	}

	parts := []styles.RowPart{
		{Text: styles.Pad(styles.Truncate(c.Name, nameWidth-1), nameWidth), Foreground: &accent},
		{Text: styles.Pad(c.Gender, genderColumnWidth)},
		{Text: styles.Pad(c.FilmsLabel(), filmsColumnWidth)},
		{Text: styles.Pad(details, detailsColumnWidth), Foreground: &blue},
	}
	return styles.RenderListRow(parts, selected, width)
}

func (t RosterTable) renderSearchBar() string {
	count := styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", len(t.rows), t.total))
	return t.searchInput.View() + count
}
