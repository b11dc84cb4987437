package tui

// updateLayout sizes the views to the terminal
func (m *Model) updateLayout() {
	contentHeight := max(m.Height-ChromeHeight, 3)

	m.Table.SetSize(m.Width, contentHeight)
	m.Card.SetSize(m.Width, contentHeight)
	m.Omnibar.SetSize(m.Width, m.Height)
	m.Help.Width = m.Width
}
