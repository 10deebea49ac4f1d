package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 3

// handleMouse routes mouse input with the same precedence as keys.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.showHelp {
		if press {
			m.showHelp = false
		}
		return m, nil
	}

	if m.modal != nil {
		next, cmd, done := m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	if m.detail.open {
		// Scrolling is suppressed behind the modal; only clicks matter.
		if !press {
			return m, nil
		}
		left, top, w, h := m.detailBounds()
		inside := msg.X >= left && msg.X < left+w && msg.Y >= top && msg.Y < top+h
		if !inside {
			m.closeDetail()
			return m, nil
		}
		if c, ok := m.detailControlAt(msg.X, msg.Y); ok {
			m.detail.trap.Focus(c)
			return m.activateControl(c)
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.body.ScrollUp(wheelStep)
		m.refreshBody()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.body.ScrollDown(wheelStep)
		m.refreshBody()
		return m, nil
	}

	if !press {
		return m, nil
	}

	footerRow := m.height - footerRows
	switch {
	case msg.Y == searchRow:
		m.setFocus(focusSearch)
	case msg.Y == chipsRow:
		if msg.X >= m.toggleX() {
			m.setFocus(focusToggle)
			m.toggleTimeline()
			return m, nil
		}
		for i, r := range m.chipRanges() {
			if msg.X >= r[0] && msg.X < r[1] {
				m.selectChip(i)
				m.setFocus(focusChips)
				break
			}
		}
	case msg.Y >= bodyTop && msg.Y < footerRow:
		line := msg.Y - bodyTop + m.body.YOffset
		if idx, ok := m.grid.CardAt(msg.X, line, columnsFor(m.width)); ok {
			m.grid.cursor = idx
			m.setFocus(focusCards)
			if item, ok := m.grid.Selected(); ok {
				_ = m.openDetail(item.ID)
			}
		}
	case msg.Y == footerRow:
		if m.backToTopVisible() && msg.X >= m.backToTopX() {
			m.scrollToTop()
		}
	}
	return m, nil
}
