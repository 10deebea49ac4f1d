package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
)

const (
	timelineShowLabel = "Show timeline"
	timelineHideLabel = "Hide timeline"
)

type timelineEntry struct {
	year  string
	title string
	phase string
	num   int
}

// timeline is built once from the full catalog. Filters never touch it.
type timeline struct {
	entries []timelineEntry
	built   bool
}

// Build captures the catalog in chronological order. Later calls are
// ignored.
func (t *timeline) Build(items []catalog.Item) {
	if t.built {
		return
	}
	t.entries = make([]timelineEntry, len(items))
	for i, item := range items {
		t.entries[i] = timelineEntry{year: item.Year, title: item.Title, phase: item.Phase, num: item.PhaseNumber}
	}
	t.built = true
}

// Len returns the number of timeline entries.
func (t timeline) Len() int {
	return len(t.entries)
}

// View renders one line per entry.
func (t timeline) View(theme Theme, width int) string {
	styles := theme.Styles()
	if len(t.entries) == 0 {
		return styles.MutedText.Render("Timeline is empty")
	}
	lines := make([]string, len(t.entries))
	for i, e := range t.entries {
		year := styles.PhaseStyle(e.num).Render(padRight(e.year, 4))
		rest := truncate(e.title, max(width-lipgloss.Width(year)-len(e.phase)-6, 10))
		lines[i] = year + " " + styles.FaintText.Render("│") + " " +
			styles.Text.Render(rest) + styles.FaintText.Render(" · ") + styles.MutedText.Render(e.phase)
	}
	return strings.Join(lines, "\n")
}

// toggleLabel renders the timeline toggle control with its expanded state.
func toggleLabel(expanded bool) string {
	if expanded {
		return "▾ " + timelineHideLabel
	}
	return "▸ " + timelineShowLabel
}
