package ui

import tea "github.com/charmbracelet/bubbletea"

// startupStage orders the work done before the UI is interactive. Each
// stage runs exactly once and schedules the next.
type startupStage int

const (
	stageGrid startupStage = iota
	stageTimeline
	stageSeedQuery
	stageDeepLink
	stageReady
)

func (s startupStage) String() string {
	switch s {
	case stageGrid:
		return "grid"
	case stageTimeline:
		return "timeline"
	case stageSeedQuery:
		return "seed query"
	case stageDeepLink:
		return "deep link"
	case stageReady:
		return "ready"
	default:
		return "unknown"
	}
}

type stageMsg struct {
	stage startupStage
}

func stageCmd(s startupStage) tea.Cmd {
	return func() tea.Msg {
		return stageMsg{stage: s}
	}
}

// runStage executes s if it is the pending stage. Repeated or out of order
// stage messages are dropped, so a deep link can only open once, and never
// before a seeded search has committed.
func (m *Model) runStage(s startupStage) tea.Cmd {
	if s != m.stage || m.started {
		return nil
	}
	if s == stageDeepLink && m.seedPending {
		return nil
	}
	m.logger.Debug("startup stage", "stage", s.String())

	switch s {
	case stageGrid:
		m.applyFilter()
		if m.grid.Len() > 0 && m.focus == focusToggle {
			m.focus = focusCards
			m.refreshBody()
		}
		m.stage = stageTimeline
		return stageCmd(stageTimeline)

	case stageTimeline:
		m.timeline.Build(m.store.Items())
		m.refreshBody()
		m.stage = stageSeedQuery
		return stageCmd(stageSeedQuery)

	case stageSeedQuery:
		m.stage = stageDeepLink
		q := m.location.Search()
		if q == "" {
			return stageCmd(stageDeepLink)
		}
		// Same path as typing, debounce included. The deep link stage
		// follows the commit so its outcome lands on the seeded grid.
		m.search.SetValue(q)
		m.search.CursorEnd()
		m.seedPending = true
		return m.scheduleSearch()

	case stageDeepLink:
		m.stage = stageReady
		if id := m.location.Fragment(); id != "" {
			_ = m.openDetail(id)
		}
		return stageCmd(stageReady)

	case stageReady:
		m.started = true
		m.logger.Info("catalog ready", "items", m.store.Len(), "link", m.location.String())
	}
	return nil
}
