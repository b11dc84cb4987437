package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/datapad/internal/route"
	"github.com/mmcdole/datapad/internal/tui/styles"
	"github.com/mmcdole/datapad/internal/view"
)

// labelWidth is the left column of the field list
const labelWidth = 12

// DetailCard displays one character resolved by a detail view instance
type DetailCard struct {
	state        *view.DetailState
	width        int
	height       int
	spinnerFrame int
}

// NewDetailCard creates a new detail card
func NewDetailCard() DetailCard {
	return DetailCard{}
}

// SetState points the card at a detail view instance
func (d *DetailCard) SetState(s *view.DetailState) {
	d.state = s
}

// SetSize updates the component dimensions
func (d *DetailCard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetSpinnerFrame advances the loading animation
func (d *DetailCard) SetSpinnerFrame(frame int) {
	d.spinnerFrame = frame
}

// View renders the component
func (d DetailCard) View() string {
	style := styles.ActiveBorder
	frameW, frameH := style.GetFrameSize()

	contentWidth := max(d.width-frameW-1, 10)

	return style.
		Width(max(d.width-frameW, 0)).
		Height(max(d.height-frameH, 0)).
		Render(d.renderContent(contentWidth))
}

func (d DetailCard) renderContent(width int) string {
	if d.state == nil {
		return styles.DimStyle.Render("Nothing selected")
	}

	titleLine := styles.AccentStyle.Render(styles.Truncate(route.Person(d.state.Name).String(), width))

	var body string
	switch d.state.Status {
	case view.StatusLoading:
		spinner := styles.SpinnerStyle.Render(SpinnerFrames[d.spinnerFrame%len(SpinnerFrames)])
		body = spinner + styles.DimStyle.Render(" Loading "+d.state.Name+"...")
	case view.StatusError:
		body = styles.ErrorStyle.Render(d.state.Err)
	default:
		body = d.renderCharacter(width)
	}

	footer := styles.AccentStyle.Render("esc") + styles.DimStyle.Render(" back to list")

	return titleLine + "\n\n" + body + "\n\n" + footer
}

func (d DetailCard) renderCharacter(width int) string {
	c := d.state.Character

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(styles.Truncate(c.Name, width)))
	b.WriteString("\n\n")

	valueWidth := max(width-labelWidth, 1)
	for _, f := range c.Fields() {
		label := styles.DimStyle.Render(styles.Pad(f.Label, labelWidth))
		value := lipgloss.NewStyle().Foreground(styles.White).Render(styles.Truncate(f.Value, valueWidth))
		b.WriteString(label + value + "\n")
	}

	if c.URL != "" {
		b.WriteString("\n")
		b.WriteString(styles.LinkStyle.Render(styles.Truncate(c.URL, width)))
	}

	return strings.TrimRight(b.String(), "\n")
}
