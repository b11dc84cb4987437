package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
// It implements help.KeyMap for the footer and the help screen.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Home  key.Binding
	End   key.Binding
	Enter key.Binding
	Back  key.Binding

	// List actions
	Search     key.Binding
	Gender     key.Binding
	Sort       key.Binding
	SortName   key.Binding
	SortGender key.Binding
	SortFilms  key.Binding
	FlipOrder  key.Binding
	Jump       key.Binding

	// Global
	Reload key.Binding
	Open   key.Binding
	Copy   key.Binding
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", "l", "right"),
			key.WithHelp("enter", "show details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "h", "left", "backspace"),
			key.WithHelp("esc/h", "back"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Gender: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "gender"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		SortName: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort by name"),
		),
		SortGender: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort by gender"),
		),
		SortFilms: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort by films"),
		),
		FlipOrder: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "flip order"),
		),
		Jump: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("C-k", "jump to"),
		),

		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Open: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "open in browser"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Gender, k.Sort, k.Enter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End, k.Enter, k.Back},
		{k.Search, k.Gender, k.Sort, k.SortName, k.SortGender, k.SortFilms, k.FlipOrder},
		{k.Jump, k.Copy, k.Open, k.Reload, k.Help, k.Quit},
	}
}

// DetailHelp lists the bindings active on the detail view
func (k KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.Back, k.Open, k.Copy, k.Reload, k.Help, k.Quit}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
