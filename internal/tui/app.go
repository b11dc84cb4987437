package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/route"
	"github.com/mmcdole/datapad/internal/service"
	"github.com/mmcdole/datapad/internal/tui/components"
	"github.com/mmcdole/datapad/internal/view"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

const (
	// RequestTimeout bounds a single fetch or lookup
	RequestTimeout = 30 * time.Second

	// Vertical layout: single footer line
	ChromeHeight = 1

	tickInterval = 100 * time.Millisecond
	statusTTL    = 3 * time.Second
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	CharacterSvc *service.CharacterService
	PrefSvc      *service.PreferenceService // optional
	Opener       domain.URLOpener           // optional
	Clipboard    func(text string) error    // optional

	// Route history, current route last
	History []route.Route

	// View instances. The list instance survives a detail visit;
	// a detail instance lives only while its route is current.
	List   *view.ListState
	Detail *view.DetailState

	cancelList   context.CancelFunc
	cancelDetail context.CancelFunc

	// UI Components
	Table       components.RosterTable
	Card        components.DetailCard
	Omnibar     components.Omnibar
	SortModal   components.SortModal
	GenderModal components.GenderModal
	Help        help.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	statusSeq    int
	StatusIsErr  bool
	SpinnerFrame int

	logger  *slog.Logger
	initCmd tea.Cmd
}

// NewModel creates a new application model mounted at start.
// The mount request is issued by Init.
func NewModel(
	characterSvc *service.CharacterService,
	prefSvc *service.PreferenceService,
	start route.Route,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		State:        StateBrowsing,
		CharacterSvc: characterSvc,
		PrefSvc:      prefSvc,
		Table:        components.NewRosterTable(),
		Card:         components.NewDetailCard(),
		Omnibar:      components.NewOmnibar(),
		SortModal:    components.NewSortModal(),
		GenderModal:  components.NewGenderModal(),
		Help:         help.New(),
		Clipboard:    clipboard.WriteAll,
		logger:       logger,
	}
	m.initCmd = m.navigate(start)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.initCmd,
		TickCmd(tickInterval),
	)
}

// Current returns the active route
func (m Model) Current() route.Route {
	if len(m.History) == 0 {
		return route.List()
	}
	return m.History[len(m.History)-1]
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		m.Table.SetSpinnerFrame(m.SpinnerFrame)
		m.Card.SetSpinnerFrame(m.SpinnerFrame)
		return m, TickCmd(tickInterval)

	case RosterLoadedMsg:
		if m.List == nil || msg.ViewID != m.List.ID {
			m.logger.Debug("discarding stale roster response", "viewID", msg.ViewID)
			return m, nil
		}
		if msg.Err != nil {
			m.List.Fail(msg.Err)
		} else {
			m.List.Resolve(msg.Records)
		}
		m.cancelList = nil
		m.Table.SetState(m.List)
		return m, nil

	case CharacterLoadedMsg:
		if m.Detail == nil || msg.ViewID != m.Detail.ID {
			m.logger.Debug("discarding stale lookup response", "viewID", msg.ViewID, "name", msg.Name)
			return m, nil
		}
		if msg.Err != nil {
			m.Detail.Fail(msg.Err)
		} else {
			m.Detail.Resolve(msg.Character)
		}
		m.cancelDetail = nil
		return m, nil

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		m.statusSeq++
		return m, ClearStatusCmd(statusTTL, m.statusSeq)

	case ClearStatusMsg:
		// A newer status owns its own timer
		if msg.Seq != m.statusSeq {
			return m, nil
		}
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other component messages
	if m.Omnibar.IsVisible() {
		var cmd tea.Cmd
		m.Omnibar, cmd, _ = m.Omnibar.Update(msg)
		return m, cmd
	}
	if m.Current().Kind == route.KindList {
		var cmd tea.Cmd
		m.Table, cmd = m.Table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Shutdown cancels any in-flight requests and saves the list query
func (m *Model) Shutdown() {
	m.saveQuery()

	if m.cancelList != nil {
		m.cancelList()
		m.cancelList = nil
	}
	if m.cancelDetail != nil {
		m.cancelDetail()
		m.cancelDetail = nil
	}
}
