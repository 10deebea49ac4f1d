package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/filter"
)

// searchDebounceMsg fires once the search input has been quiet for the
// debounce period. Only the latest generation commits.
type searchDebounceMsg struct {
	gen int
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search title, year, phase or description"
	ti.CharLimit = 100
	return ti
}

// scheduleSearch restarts the debounce window. Earlier pending ticks become
// stale because their generation no longer matches.
func (m *Model) scheduleSearch() tea.Cmd {
	m.searchGen++
	gen := m.searchGen
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{gen: gen}
	})
}

// commitSearch applies the search input once its debounce window closes:
// filter, grid rebuild and link update. Each generation commits at most
// once. The commit that completes a seeded search releases the deep link
// stage.
func (m *Model) commitSearch(msg searchDebounceMsg) tea.Cmd {
	if msg.gen != m.searchGen || msg.gen == m.committed {
		return nil
	}
	m.committed = msg.gen
	m.filter = m.filter.WithSearch(m.search.Value())
	m.location.SetSearch(m.filter.SearchTerm)
	m.logger.Debug("search committed", "term", m.filter.SearchTerm, "link", m.location.String())
	m.applyFilter()

	if m.seedPending {
		m.seedPending = false
		return stageCmd(stageDeepLink)
	}
	return nil
}

// applyFilter rebuilds the grid from the full catalog and the filter state.
func (m *Model) applyFilter() {
	items := m.store.Items()
	m.grid.SetItems(filter.Apply(items, m.filter))
	m.fallback = m.filter.Origin == filter.OriginSearch &&
		m.filter.SearchTerm != "" &&
		len(filter.SearchMatches(items, m.filter.SearchTerm)) == 0
	m.body.GotoTop()
	m.refreshBody()
}

// handleSearchKey routes keys while the search input has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape):
		m.setFocus(m.focusAfterSearch())
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.setFocus(m.focusAfterSearch())
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.cycleFocus(true)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleFocus(false)
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.scheduleSearch())
}

func (m Model) focusAfterSearch() focusTarget {
	if m.grid.Len() > 0 {
		return focusCards
	}
	return focusToggle
}
