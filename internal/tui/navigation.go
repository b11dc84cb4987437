package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/route"
	"github.com/mmcdole/datapad/internal/view"
)

// navigate pushes r and mounts its view. The list instance is reused when it
// already exists; every detail navigation mounts a fresh instance.
func (m *Model) navigate(r route.Route) tea.Cmd {
	m.History = append(m.History, r)
	m.logger.Info("navigate", "route", r.String())

	switch r.Kind {
	case route.KindPerson:
		return m.mountDetail(r.Name)
	default:
		m.unmountDetail()
		if m.List == nil {
			return m.mountList(m.initialQuery())
		}
		m.Table.SetState(m.List)
		return nil
	}
}

// back pops the current route. Leaving a detail view cancels its lookup.
func (m *Model) back() tea.Cmd {
	if m.Current().Kind == route.KindList {
		return nil
	}

	m.unmountDetail()
	m.History = m.History[:len(m.History)-1]

	// Deep links start without a list underneath
	if len(m.History) == 0 {
		return m.navigate(route.List())
	}

	prev := m.History[len(m.History)-1]
	m.History = m.History[:len(m.History)-1]
	return m.navigate(prev)
}

// remount replaces the current view with a new instance and a new request
func (m *Model) remount() tea.Cmd {
	switch r := m.Current(); r.Kind {
	case route.KindPerson:
		return m.mountDetail(r.Name)
	default:
		q := m.initialQuery()
		if m.List != nil {
			q = m.List.Query
		}
		return m.mountList(q)
	}
}

func (m *Model) mountList(q domain.ListQuery) tea.Cmd {
	if m.cancelList != nil {
		m.cancelList()
	}

	m.List = view.NewListState(q)
	m.Table.SetState(m.List)

	ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
	m.cancelList = cancel
	m.logger.Debug("mount list view", "viewID", m.List.ID)
	return FetchRosterCmd(ctx, cancel, m.CharacterSvc, m.List.ID)
}

func (m *Model) mountDetail(name string) tea.Cmd {
	m.unmountDetail()

	m.Detail = view.NewDetailState(name)
	m.Card.SetState(m.Detail)

	ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
	m.cancelDetail = cancel
	m.logger.Debug("mount detail view", "viewID", m.Detail.ID, "name", name)
	return LookupCharacterCmd(ctx, cancel, m.CharacterSvc, m.Detail.ID, name)
}

func (m *Model) unmountDetail() {
	if m.cancelDetail != nil {
		m.cancelDetail()
		m.cancelDetail = nil
	}
	m.Detail = nil
	m.Card.SetState(nil)
}

func (m *Model) initialQuery() domain.ListQuery {
	if m.PrefSvc != nil {
		return m.PrefSvc.InitialQuery()
	}
	return domain.DefaultListQuery()
}

// queryChanged re-syncs the table and remembers the query
func (m *Model) queryChanged() {
	m.Table.SetState(m.List)
	m.saveQuery()
}

func (m *Model) saveQuery() {
	if m.PrefSvc != nil && m.List != nil {
		m.PrefSvc.SaveQuery(m.List.Query)
	}
}

// openDetail opens the resolved character's resource URL
func (m Model) openDetail() tea.Cmd {
	if m.Opener == nil || m.Detail == nil || !m.Detail.Found() || m.Detail.Character.URL == "" {
		return nil
	}
	return OpenURLCmd(m.Opener, m.Detail.Character.URL)
}
