package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/service"
	"github.com/mmcdole/datapad/internal/view"
)

// Command factories for async operations.
// Each request runs under a context owned by the view instance that issued it;
// cancel is released once the request completes.

// FetchRosterCmd loads the people collection for a list view instance
func FetchRosterCmd(ctx context.Context, cancel context.CancelFunc, svc *service.CharacterService, id view.ID) tea.Cmd {
	return func() tea.Msg {
		defer cancel()

		records, err := svc.FetchAll(ctx)
		return RosterLoadedMsg{ViewID: id, Records: records, Err: err}
	}
}

// LookupCharacterCmd resolves a name for a detail view instance
func LookupCharacterCmd(ctx context.Context, cancel context.CancelFunc, svc *service.CharacterService, id view.ID, name string) tea.Cmd {
	return func() tea.Msg {
		defer cancel()

		c, err := svc.Lookup(ctx, name)
		return CharacterLoadedMsg{ViewID: id, Name: name, Character: c, Err: err}
	}
}

// OpenURLCmd hands a resource URL to the configured opener
func OpenURLCmd(opener domain.URLOpener, url string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			return StatusMsg{Message: err.Error(), IsError: true}
		}
		return StatusMsg{Message: "Opened " + url}
	}
}

// CopyCmd writes text to the system clipboard
func CopyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return StatusMsg{Message: fmt.Sprintf("failed to copy to clipboard: %v", err), IsError: true}
		}
		return StatusMsg{Message: "Copied " + text}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status seq after a delay
func ClearStatusCmd(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
