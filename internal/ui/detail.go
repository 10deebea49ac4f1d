package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/share"
)

// detailControl is a focusable control inside the detail modal.
type detailControl int

const (
	controlWatch detailControl = iota
	controlShare
	controlClose
)

func (c detailControl) label() string {
	switch c {
	case controlWatch:
		return "Watch"
	case controlShare:
		return "Share"
	default:
		return "Close"
	}
}

// detailView is the modal detail state: closed, or open on one item.
type detailView struct {
	open        bool
	item        catalog.Item
	position    catalog.Position
	description string

	// trap is fixed when the modal opens; only a reopen recomputes it.
	trap focusRing[detailControl]
}

func (d *detailView) show(item catalog.Item, pos catalog.Position, textWidth int) {
	controls := make([]detailControl, 0, 3)
	if strings.TrimSpace(item.WatchURL) != "" {
		controls = append(controls, controlWatch)
	}
	controls = append(controls, controlShare, controlClose)

	*d = detailView{
		open:        true,
		item:        item,
		position:    pos,
		description: renderDescription(item.Description, textWidth),
		trap:        newFocusRing(controls...),
	}
}

// focused returns the control holding focus inside the modal.
func (d detailView) focused() (detailControl, bool) {
	if !d.open {
		return 0, false
	}
	return d.trap.Current()
}

// openDetail shows the item with the given id. An unknown id replaces the
// grid with an inline error and leaves the modal closed.
func (m *Model) openDetail(id string) error {
	item, pos, err := m.store.Lookup(id)
	if err != nil {
		m.logger.Warn("detail lookup failed", "id", id, "error", err)
		m.grid.ShowError("Movie not found: " + id)
		m.refreshBody()
		return err
	}
	m.detail.show(item, pos, m.detailTextWidth())
	m.search.Blur()
	m.logger.Debug("detail opened", "id", id, "ordinal", pos.Ordinal, "total", pos.Total)
	return nil
}

// closeDetail hides the modal and hands focus to the timeline toggle.
func (m *Model) closeDetail() {
	if !m.detail.open {
		return
	}
	m.logger.Debug("detail closed", "id", m.detail.item.ID)
	m.detail = detailView{}
	if m.location.Fragment() != "" {
		m.location.ClearFragment()
	}
	m.setFocus(focusToggle)
}

// handleDetailKey routes every key while the modal is open. Nothing
// reaches the background.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.closeDetail()
	case key.Matches(msg, m.keys.Tab):
		m.detail.trap.Next()
	case key.Matches(msg, m.keys.ShiftTab):
		m.detail.trap.Prev()
	case key.Matches(msg, m.keys.Activate):
		if c, ok := m.detail.focused(); ok {
			return m.activateControl(c)
		}
	case key.Matches(msg, m.keys.Watch):
		if m.detail.trap.Focus(controlWatch) {
			return m.activateControl(controlWatch)
		}
	case key.Matches(msg, m.keys.Share):
		m.detail.trap.Focus(controlShare)
		return m.activateControl(controlShare)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

// activateControl runs the action behind a detail control.
func (m Model) activateControl(c detailControl) (tea.Model, tea.Cmd) {
	item := m.detail.item
	switch c {
	case controlWatch:
		return m, watchCmd(m.openURL, item.WatchURL)
	case controlShare:
		if m.sharer == nil {
			return m, m.setStatus(statusError, "Sharing is not available")
		}
		payload := share.Payload{
			Title: item.Title,
			Text:  shareText(item),
			URL:   m.location.ShareURL(item.ID),
		}
		return m, shareCmd(m.ctx, m.sharer, payload)
	default:
		m.closeDetail()
		return m, nil
	}
}

func shareText(item catalog.Item) string {
	return fmt.Sprintf("Watch %s (%s) - %s", item.Title, item.Year, item.Phase)
}

type watchResultMsg struct {
	url string
	err error
}

type shareResultMsg struct {
	url    string
	method share.Method
	err    error
}

func watchCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return watchResultMsg{url: url, err: open(url)}
	}
}

func shareCmd(ctx context.Context, sharer Sharer, p share.Payload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, ActionTimeout)
		defer cancel()
		method, err := sharer.Share(ctx, p)
		return shareResultMsg{url: p.URL, method: method, err: err}
	}
}

func (m Model) handleWatchResult(msg watchResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("open watch link failed", "url", msg.url, "error", msg.err)
		return m, m.setStatus(statusError, "Could not open link: "+msg.err.Error())
	}
	m.logger.Info("opened watch link", "url", msg.url)
	return m, m.setStatus(statusInfo, "Opened in browser")
}

func (m Model) handleShareResult(msg shareResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("share failed", "url", msg.url, "error", msg.err)
		return m, m.setStatus(statusError, "Share failed: "+msg.err.Error())
	}
	switch msg.method {
	case share.MethodClipboard:
		m.modal = newNoticeModal("Share", "Link copied to clipboard")
		return m, nil
	case share.MethodTerminal:
		// The terminal never confirms, so show the link as well.
		m.modal = newNoticeModal("Share", "Link sent to the terminal clipboard. Some terminals ignore this.\n\n"+msg.url)
		return m, nil
	}
	return m, m.setStatus(statusInfo, "Shared "+msg.url)
}

// detailBoxWidth is the outer width of the modal box.
func (m Model) detailBoxWidth() int {
	return max(detailMinWidth, min(detailMaxWidth, m.width-8))
}

// detailTextWidth is the usable text width inside the modal box.
func (m Model) detailTextWidth() int {
	return m.detailBoxWidth() - 6
}

// renderDetailBox draws the modal box without placement.
func (m Model) renderDetailBox() string {
	styles := m.theme.Styles()
	d := m.detail
	item := d.item
	width := m.detailTextWidth()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(truncate(fmt.Sprintf("%s (%s)", item.Title, item.Year), width)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(truncate("▣ "+item.AltText(), width)))
	b.WriteString("\n\n")

	b.WriteString(styles.PhaseStyle(item.PhaseNumber).Render(item.Phase))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Released  "))
	b.WriteString(styles.Text.Render(item.Year))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Order     "))
	b.WriteString(styles.Text.Render(fmt.Sprintf("%d of %d", d.position.Ordinal, d.position.Total)))
	b.WriteString("\n")

	if d.description != "" {
		b.WriteString("\n")
		b.WriteString(clampLines(d.description, max(m.height-16, 3)))
		b.WriteString("\n")
	}
	if item.WatchURL != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(truncateMiddle(item.WatchURL, width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderDetailActions())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(m.detailBoxWidth() - 2).
		Render(b.String())
}

// renderDetailActions draws the control row; only controls in the focus
// trap are shown.
func (m Model) renderDetailActions() string {
	styles := m.theme.Styles()
	current, _ := m.detail.focused()
	parts := make([]string, 0, m.detail.trap.Len())
	for _, c := range m.detail.trap.items {
		style := lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(m.theme.Text)).
			Background(lipgloss.Color(m.theme.SurfaceAlt))
		if c == current {
			style = styles.Selected.Bold(true).Padding(0, 1)
		}
		parts = append(parts, style.Render(c.label()))
	}
	return strings.Join(parts, "  ")
}

// detailBounds returns the modal box origin and size on screen.
func (m Model) detailBounds() (x, y, w, h int) {
	box := m.renderDetailBox()
	w, h = lipgloss.Width(box), lipgloss.Height(box)
	return max((m.width-w)/2, 0), max((m.height-h)/2, 0), w, h
}

// detailControlAt maps a click inside the modal box to a control.
func (m Model) detailControlAt(x, y int) (detailControl, bool) {
	left, top, _, h := m.detailBounds()
	if y != top+h-3 {
		return 0, false
	}
	pos := left + 3
	for _, c := range m.detail.trap.items {
		w := len(c.label()) + 2
		if x >= pos && x < pos+w {
			return c, true
		}
		pos += w + 2
	}
	return 0, false
}

// renderDetail renders the modal over a blank backdrop.
func (m Model) renderDetail() string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.renderDetailBox(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

func clampLines(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	lines = lines[:limit]
	lines[limit-1] = strings.TrimRight(lines[limit-1], " ") + " …"
	return strings.Join(lines, "\n")
}
