package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title bar: logo, counts, the filter in effect
// and the theme name.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("marquee", styles.Logo),
		bg.Render("Showing", styles.MutedText) + bg.Space() +
			bg.Render(fmt.Sprintf("%d of %d", m.grid.Len(), m.store.Len()), styles.Text),
		bg.Render(m.filter.Describe(), styles.AccentText),
	}
	if m.fallback {
		parts = append(parts, bg.Render("no matches, showing all", styles.WarningText))
	}
	if m.width >= 100 {
		parts = append(parts, bg.Render("Theme:", styles.FaintText)+bg.Space()+bg.Render(m.theme.Name, styles.MutedText))
	}

	content := bg.Join(parts, "  ")
	hint := bg.Render("? help", styles.FaintText)
	gap := max(m.width-lipgloss.Width(content)-lipgloss.Width(hint)-2, 1)
	return styles.Header.Width(m.width).Render(content + bg.Spaces(gap) + hint)
}
