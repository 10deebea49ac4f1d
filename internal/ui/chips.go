package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/filter"
)

// chipLabels returns the category chips in display order; index 0 is All.
func (m Model) chipLabels() []string {
	labels := make([]string, 0, len(m.categories)+1)
	labels = append(labels, "All")
	for _, c := range m.categories {
		label := strings.TrimSpace(c.Label)
		if label == "" {
			label = "Phase " + strconv.Itoa(c.Key)
		}
		labels = append(labels, label)
	}
	return labels
}

// chipCategory maps a chip index to its filter category.
func (m Model) chipCategory(idx int) filter.Category {
	if idx <= 0 || idx > len(m.categories) {
		return filter.AllCategories
	}
	return filter.Phase(m.categories[idx-1].Key)
}

// selectChip makes idx the single active chip and filters the grid by it.
func (m *Model) selectChip(idx int) {
	if idx < 0 || idx > len(m.categories) {
		return
	}
	m.activeChip = idx
	m.chipCursor = idx
	m.filter = m.filter.WithCategory(m.chipCategory(idx))
	m.logger.Debug("category selected", "category", m.filter.Category.String())
	m.applyFilter()
}

// selectCategoryKey handles the 0-9 shortcuts: 0 is All, other digits
// pick the phase with that number.
func (m *Model) selectCategoryKey(digit string) {
	n, err := strconv.Atoi(digit)
	if err != nil {
		return
	}
	if n == 0 {
		m.selectChip(0)
		return
	}
	for i, c := range m.categories {
		if c.Key == n {
			m.selectChip(i + 1)
			return
		}
	}
}

// chipRanges returns the [start, end) columns of every chip.
func (m Model) chipRanges() [][2]int {
	labels := m.chipLabels()
	ranges := make([][2]int, len(labels))
	x := 0
	for i, label := range labels {
		w := lipgloss.Width(label) + 2
		ranges[i] = [2]int{x, x + w}
		x += w + 1
	}
	return ranges
}

// toggleX returns the first column of the timeline toggle.
func (m Model) toggleX() int {
	return m.width - lipgloss.Width(toggleLabel(m.showTimeline)) - 2
}

// renderChips renders the chip row with the timeline toggle on the right.
func (m Model) renderChips() string {
	styles := m.theme.Styles()
	focused := m.focus == focusChips && !m.detail.open

	labels := m.chipLabels()
	parts := make([]string, len(labels))
	for i, label := range labels {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(m.theme.Muted))
		if i == m.activeChip {
			style = style.
				Foreground(lipgloss.Color(m.theme.Background)).
				Background(lipgloss.Color(m.theme.Accent)).
				Bold(true)
		}
		if focused && i == m.chipCursor {
			style = style.Underline(true)
			if i != m.activeChip {
				style = style.Foreground(lipgloss.Color(m.theme.BorderFocus))
			}
		}
		parts[i] = style.Render(label)
	}
	chips := strings.Join(parts, " ")

	toggleStyle := styles.AccentText.Padding(0, 1)
	if m.focus == focusToggle && !m.detail.open {
		toggleStyle = styles.Selected.Bold(true).Padding(0, 1)
	}
	toggle := toggleStyle.Render(toggleLabel(m.showTimeline))

	gap := max(m.width-lipgloss.Width(chips)-lipgloss.Width(toggle), 1)
	return chips + strings.Repeat(" ", gap) + toggle
}
