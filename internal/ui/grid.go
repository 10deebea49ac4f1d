package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
)

// grid holds the cards currently on screen. Every SetItems call rebuilds
// the card set from scratch.
type grid struct {
	items  []catalog.Item
	cursor int
	err    string
}

// SetItems replaces every card and clears any error.
func (g *grid) SetItems(items []catalog.Item) {
	g.items = items
	g.cursor = 0
	g.err = ""
}

// ShowError replaces the cards with an inline error line.
func (g *grid) ShowError(msg string) {
	g.items = nil
	g.cursor = 0
	g.err = msg
}

// Len returns the number of cards.
func (g grid) Len() int {
	return len(g.items)
}

// IDs returns the activation target of every card, in order.
func (g grid) IDs() []string {
	ids := make([]string, len(g.items))
	for i, item := range g.items {
		ids[i] = item.ID
	}
	return ids
}

// Selected returns the card under the cursor.
func (g grid) Selected() (catalog.Item, bool) {
	if g.cursor < 0 || g.cursor >= len(g.items) {
		return catalog.Item{}, false
	}
	return g.items[g.cursor], true
}

// Move shifts the cursor by rows and columns, clamping at the edges.
func (g *grid) Move(rows, cols, columns int) {
	if len(g.items) == 0 {
		return
	}
	next := g.cursor + rows*columns + cols
	if next < 0 {
		next = 0
	}
	if next >= len(g.items) {
		next = len(g.items) - 1
	}
	g.cursor = next
}

// columnsFor returns how many cards fit side by side in width cells.
func columnsFor(width int) int {
	cols := (width + cardGap) / (cardWidth + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// Lines returns the rendered height of the grid.
func (g grid) Lines(columns int) int {
	if g.err != "" || len(g.items) == 0 {
		return 1
	}
	rows := (len(g.items) + columns - 1) / columns
	return rows * cardHeight
}

// RowOffset returns the first line of the card row holding the cursor.
func (g grid) RowOffset(columns int) int {
	return (g.cursor / columns) * cardHeight
}

// CardAt maps a position inside the grid to a card index.
func (g grid) CardAt(x, y, columns int) (int, bool) {
	if g.err != "" || x < 0 || y < 0 {
		return 0, false
	}
	col := x / (cardWidth + cardGap)
	if col >= columns || x%(cardWidth+cardGap) >= cardWidth {
		return 0, false
	}
	idx := (y/cardHeight)*columns + col
	if idx >= len(g.items) {
		return 0, false
	}
	return idx, true
}

// View renders the cards in rows of columns.
func (g grid) View(theme Theme, columns int, focused bool) string {
	styles := theme.Styles()
	if g.err != "" {
		return styles.DangerText.Render(g.err)
	}
	if len(g.items) == 0 {
		return styles.MutedText.Render("No movies")
	}

	gap := strings.Repeat(" ", cardGap)
	var rows []string
	for start := 0; start < len(g.items); start += columns {
		end := min(start+columns, len(g.items))
		cards := make([]string, 0, (end-start)*2)
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, gap)
			}
			cards = append(cards, renderCard(theme, g.items[i], focused && i == g.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

// renderCard draws one card: poster alt text, year badge, title, phase and
// a details affordance.
func renderCard(theme Theme, item catalog.Item, selected bool) string {
	styles := theme.Styles()
	inner := cardWidth - 4

	border := theme.Border
	if selected {
		border = theme.BorderFocus
	}

	year := styles.PhaseStyle(item.PhaseNumber).Render(item.Year)
	poster := styles.FaintText.Render(truncate("▣ "+item.AltText(), inner-lipgloss.Width(year)-1))
	title := styles.Text.Bold(true).Render(truncate(item.Title, inner))
	phase := lipgloss.NewStyle().
		Foreground(lipgloss.Color(styles.PhaseColor(item.PhaseNumber))).
		Render(truncate(item.Phase, inner))

	details := styles.MutedText.Render("▸ Details")
	if selected {
		details = styles.Selected.Bold(true).Render("▸ Details")
	}

	body := strings.Join([]string{
		year + " " + poster,
		title,
		phase,
		details,
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(cardWidth - 2).
		Height(cardContentLines).
		Render(body)
}
