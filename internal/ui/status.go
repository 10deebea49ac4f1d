package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusError
)

// statusLine is the transient footer message. Each message carries an id
// so a stale clear tick cannot wipe a newer message.
type statusLine struct {
	text string
	kind statusKind
	id   int
}

type clearStatusMsg struct {
	id int
}

// setStatus shows text in the footer and schedules its removal.
func (m *Model) setStatus(kind statusKind, text string) tea.Cmd {
	m.status.id++
	m.status.text = text
	m.status.kind = kind
	id := m.status.id
	return tea.Tick(m.statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m *Model) clearStatus(msg clearStatusMsg) {
	if msg.id == m.status.id {
		m.status.text = ""
	}
}

const backToTopLabel = "↑ Top"

// backToTopVisible reports whether the body is scrolled past the
// configured threshold.
func (m Model) backToTopVisible() bool {
	return m.body.YOffset > m.backToTop
}

// backToTopX returns the first column of the back-to-top control.
func (m Model) backToTopX() int {
	return m.width - lipgloss.Width(backToTopLabel) - 2
}

// renderFooter renders the current link, the status message and the
// back-to-top control.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	right := ""
	if m.backToTopVisible() {
		style := styles.AccentText.Bold(true)
		if m.focus == focusBackToTop {
			style = styles.Selected.Bold(true)
		}
		right = style.Padding(0, 1).Render(backToTopLabel)
	}

	status := ""
	if m.status.text != "" {
		style := styles.SuccessText
		if m.status.kind == statusError {
			style = styles.DangerText
		}
		status = bg.Render(truncate(m.status.text, max(m.width/3, 10)), style)
	}

	linkWidth := m.width - lipgloss.Width(right) - lipgloss.Width(status) - 4
	link := bg.Render(truncateMiddle(m.location.String(), max(linkWidth, 8)), styles.MutedText)

	left := link
	if status != "" {
		left = link + bg.Spaces(2) + status
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return bg.FillLine(left+bg.Spaces(gap)+right, m.width)
}
