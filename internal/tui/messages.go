package tui

import (
	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/view"
)

// Message types for the TUI

// RosterLoadedMsg carries the result of a list view fetch.
// ViewID addresses the list instance that issued the request.
type RosterLoadedMsg struct {
	ViewID  view.ID
	Records []domain.Character
	Err     error
}

// CharacterLoadedMsg carries the result of a detail view lookup
type CharacterLoadedMsg struct {
	ViewID    view.ID
	Name      string
	Character domain.Character
	Err       error
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message it was scheduled for
type ClearStatusMsg struct {
	Seq int
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
