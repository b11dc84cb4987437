package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/datapad/internal/tui/styles"
)

// maxOmnibarResults caps the rendered result list
const maxOmnibarResults = 10

// OmnibarResult is one ranked candidate with the byte offsets that matched
type OmnibarResult struct {
	Name           string
	MatchedIndexes []int
}

// Omnibar is the "jump to character" fuzzy finder over the loaded roster
type Omnibar struct {
	input      textinput.Model
	candidates []string
	results    []OmnibarResult
	cursor     int
	visible    bool
	width      int
	height     int
	prevQuery  string
}

// NewOmnibar creates a new omnibar component
func NewOmnibar() Omnibar {
	ti := textinput.New()
	ti.Placeholder = "Jump to character..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "› "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return Omnibar{
		input: ti,
	}
}

// Show makes the omnibar visible over candidates and focuses the input
func (o *Omnibar) Show(candidates []string) {
	o.visible = true
	o.candidates = candidates
	o.input.Focus()
	o.input.SetValue("")
	o.prevQuery = ""
	o.rank()
}

// Hide hides the omnibar
func (o *Omnibar) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible returns true if the omnibar is visible
func (o Omnibar) IsVisible() bool {
	return o.visible
}

// SetSize updates the component dimensions
func (o *Omnibar) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.input.Width = max(width-10, 10)
}

// Query returns the current search query
func (o Omnibar) Query() string {
	return o.input.Value()
}

// Results returns the ranked results
func (o Omnibar) Results() []OmnibarResult {
	return o.results
}

// Selected returns the name under the cursor, or ""
func (o Omnibar) Selected() string {
	if o.cursor < 0 || o.cursor >= len(o.results) {
		return ""
	}
	return o.results[o.cursor].Name
}

// Init initializes the component
func (o Omnibar) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. The bool result is true when the user picked a result.
func (o Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd, bool) {
	if !o.visible {
		return o, nil, false
	}

	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, PickerKeys.Escape):
			o.Hide()
			return o, nil, false

		case key.Matches(msg, PickerKeys.Enter):
			if len(o.results) > 0 {
				o.Hide()
				return o, nil, true
			}
			return o, nil, false

		case key.Matches(msg, PickerKeys.Down):
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return o, nil, false

		case key.Matches(msg, PickerKeys.Up):
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, false
		}
	}

	o.input, cmd = o.input.Update(msg)
	if o.input.Value() != o.prevQuery {
		o.prevQuery = o.input.Value()
		o.rank()
	}
	return o, cmd, false
}

// rank recomputes results for the current query. An empty query lists every candidate.
func (o *Omnibar) rank() {
	o.cursor = 0
	query := o.input.Value()
	if query == "" {
		o.results = make([]OmnibarResult, len(o.candidates))
		for i, c := range o.candidates {
			o.results[i] = OmnibarResult{Name: c}
		}
		return
	}

	matches := fuzzy.Find(query, o.candidates)
	o.results = make([]OmnibarResult, len(matches))
	for i, m := range matches {
		o.results[i] = OmnibarResult{Name: m.Str, MatchedIndexes: m.MatchedIndexes}
	}
}

// View renders the component
func (o Omnibar) View() string {
	if !o.visible {
		return ""
	}

	modalWidth := min(max(o.width*2/3, 40), 80)

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Jump to character"))
	b.WriteString("\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")
	o.renderResults(&b, modalWidth)

	content := lipgloss.NewStyle().
		Width(modalWidth - 4).
		Render(b.String())

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(content)

	return lipgloss.Place(
		o.width,
		o.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

func (o Omnibar) renderResults(b *strings.Builder, modalWidth int) {
	if len(o.results) == 0 {
		if o.input.Value() != "" {
			b.WriteString(styles.DimStyle.Render("No matches found"))
		}
		return
	}

	// Scroll the window so the cursor stays visible
	start := 0
	if o.cursor >= maxOmnibarResults {
		start = o.cursor - maxOmnibarResults + 1
	}
	end := min(start+maxOmnibarResults, len(o.results))

	maxNameWidth := modalWidth - 8
	for i := start; i < end; i++ {
		r := o.results[i]
		name := r.Name
		matched := r.MatchedIndexes
		if len([]rune(name)) > maxNameWidth {
			name = styles.Truncate(name, maxNameWidth)
			matched = nil
		}
		b.WriteString(HighlightMatches(name, matched, i == o.cursor))
		b.WriteString("\n")
	}

	if rest := len(o.results) - end; rest > 0 {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", rest)))
	}
}

// HighlightMatches renders text with the matched byte offsets emphasized.
// Consecutive runes with the same match state are rendered as one span.
func HighlightMatches(text string, matchedIndexes []int, selected bool) string {
	normal, match := styles.MatchNormalStyle, styles.MatchHighlightStyle
	if selected {
		normal, match = styles.MatchNormalSelectedStyle, styles.MatchHighlightSelectedStyle
	}
	if len(matchedIndexes) == 0 {
		return normal.Render(text)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	var result, batch strings.Builder
	batchIsMatch := false
	flush := func() {
		if batch.Len() == 0 {
			return
		}
		if batchIsMatch {
			result.WriteString(match.Render(batch.String()))
		} else {
			result.WriteString(normal.Render(batch.String()))
		}
		batch.Reset()
	}

	for i, r := range text {
		isMatch := matchSet[i]
		if isMatch != batchIsMatch {
			flush()
			batchIsMatch = isMatch
		}
		batch.WriteRune(r)
	}
	flush()

	return result.String()
}
