package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/filter"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/share"
	"github.com/five82/marquee/internal/urlstate"
)

// Sharer delivers a share payload and reports how.
type Sharer interface {
	Share(ctx context.Context, p share.Payload) (share.Method, error)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   *catalog.Store
	Location  *urlstate.Location
	Sharer    Sharer
	OpenURL   func(string) error
	Logger    *slog.Logger
	Debounce  time.Duration
	BackToTop int
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx            context.Context
	store          *catalog.Store
	location       *urlstate.Location
	sharer         Sharer
	openURL        func(string) error
	logger         *slog.Logger
	prefsPath      string
	debounce       time.Duration
	backToTop      int
	statusLifetime time.Duration
	keys           keyMap

	// UI state
	theme   Theme
	width   int
	height  int
	ready   bool
	stage   startupStage
	started bool
	focus   focusTarget

	// seedPending holds the deep link stage until the seeded search commits.
	seedPending bool

	// Filter state
	filter     filter.State
	fallback   bool
	search     textinput.Model
	searchGen  int
	committed  int // last generation applied
	categories []catalog.Category
	activeChip int
	chipCursor int

	// Body
	body         viewport.Model
	grid         grid
	timeline     timeline
	showTimeline bool

	// Overlays
	detail   detailView
	modal    Modal
	showHelp bool

	status statusLine
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Catalog
	if store == nil {
		store, _ = catalog.New(nil)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}

	backToTop := opts.BackToTop
	if backToTop <= 0 {
		backToTop = DefaultBackToTop
	}

	openURL := opts.OpenURL
	if openURL == nil {
		openURL = share.OpenURL
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:            ctx,
		store:          store,
		location:       opts.Location,
		sharer:         opts.Sharer,
		openURL:        openURL,
		logger:         logger,
		prefsPath:      prefsPath,
		debounce:       debounce,
		backToTop:      backToTop,
		statusLifetime: StatusLifetime,
		keys:           DefaultKeyMap(),
		theme:          GetTheme(themeName),
		stage:          stageGrid,
		focus:          focusCards,
		search:         newSearchInput(),
		categories:     store.Categories(),
		body:           viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return stageCmd(stageGrid)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.body.Width = msg.Width
		m.body.Height = max(msg.Height-bodyTop-footerRows, 1)
		m.search.Width = max(msg.Width-4, 10)
		if m.detail.open {
			m.detail.description = renderDescription(m.detail.item.Description, m.detailTextWidth())
		}
		m.refreshBody()
		return m, nil

	case stageMsg:
		return m, m.runStage(msg.stage)

	case searchDebounceMsg:
		return m, m.commitSearch(msg)

	case watchResultMsg:
		return m.handleWatchResult(msg)

	case shareResultMsg:
		return m.handleShareResult(msg)

	case clearStatusMsg:
		m.clearStatus(msg)
		return m, nil
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	if m.detail.open {
		return m.renderDetail()
	}
	return m.renderMain()
}

// handleKey routes keyboard input: overlays first, then the modal detail
// view, then the search input, then background controls.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
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
		return m.handleDetailKey(msg)
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Search):
		m.setFocus(focusSearch)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Tab):
		m.cycleFocus(true)
	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleFocus(false)
	case key.Matches(msg, m.keys.Category):
		m.selectCategoryKey(msg.String())
	case key.Matches(msg, m.keys.ToggleTimeline):
		m.toggleTimeline()
	case key.Matches(msg, m.keys.BackToTop):
		if m.backToTopVisible() {
			m.scrollToTop()
		}
	case key.Matches(msg, m.keys.PageDown):
		m.body.PageDown()
		m.refreshBody()
	case key.Matches(msg, m.keys.PageUp):
		m.body.PageUp()
		m.refreshBody()
	case key.Matches(msg, m.keys.HalfDown):
		m.body.HalfPageDown()
		m.refreshBody()
	case key.Matches(msg, m.keys.HalfUp):
		m.body.HalfPageUp()
		m.refreshBody()
	default:
		return m.handleFocusedKey(msg)
	}
	return m, nil
}

// handleFocusedKey handles navigation and activation for the focused
// background control.
func (m Model) handleFocusedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusChips:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.chipCursor = max(m.chipCursor-1, 0)
		case key.Matches(msg, m.keys.Right):
			m.chipCursor = min(m.chipCursor+1, len(m.categories))
		case key.Matches(msg, m.keys.Activate):
			m.selectChip(m.chipCursor)
			return m, nil
		}
		m.refreshBody()

	case focusCards:
		cols := columnsFor(m.width)
		switch {
		case key.Matches(msg, m.keys.Up):
			m.grid.Move(-1, 0, cols)
		case key.Matches(msg, m.keys.Down):
			m.grid.Move(1, 0, cols)
		case key.Matches(msg, m.keys.Left):
			m.grid.Move(0, -1, cols)
		case key.Matches(msg, m.keys.Right):
			m.grid.Move(0, 1, cols)
		case key.Matches(msg, m.keys.Activate):
			if item, ok := m.grid.Selected(); ok {
				_ = m.openDetail(item.ID)
			}
			return m, nil
		}
		m.refreshBody()
		m.scrollCardIntoView()

	case focusToggle:
		if key.Matches(msg, m.keys.Activate) {
			m.toggleTimeline()
		}

	case focusBackToTop:
		if key.Matches(msg, m.keys.Activate) {
			m.scrollToTop()
		}
	}

	if m.focus != focusCards {
		switch {
		case key.Matches(msg, m.keys.Down):
			m.body.ScrollDown(1)
			m.refreshBody()
		case key.Matches(msg, m.keys.Up):
			m.body.ScrollUp(1)
			m.refreshBody()
		}
	}
	return m, nil
}

// toggleTimeline flips the timeline panel. Expanding scrolls the panel
// into view.
func (m *Model) toggleTimeline() {
	m.showTimeline = !m.showTimeline
	m.refreshBody()
	if m.showTimeline {
		m.body.SetYOffset(m.timelineLine())
		m.refreshBody()
	}
	m.logger.Debug("timeline toggled", "visible", m.showTimeline)
}

// scrollToTop returns the body to its origin and focuses the timeline
// toggle.
func (m *Model) scrollToTop() {
	m.body.GotoTop()
	m.setFocus(focusToggle)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
		}
	}
	m.refreshBody()
}

// timelineLine is the first body line of the timeline panel.
func (m Model) timelineLine() int {
	return m.grid.Lines(columnsFor(m.width)) + 1
}

// scrollCardIntoView keeps the card row under the cursor on screen.
func (m *Model) scrollCardIntoView() {
	top := m.grid.RowOffset(columnsFor(m.width))
	switch {
	case top < m.body.YOffset:
		m.body.SetYOffset(top)
	case top+cardHeight > m.body.YOffset+m.body.Height:
		m.body.SetYOffset(top + cardHeight - m.body.Height)
	}
	m.refreshBody()
}

// refreshBody re-renders the scrollable body and drops focus from controls
// that are no longer available.
func (m *Model) refreshBody() {
	if m.focus == focusBackToTop && !m.backToTopVisible() {
		m.focus = focusToggle
	}
	if m.focus == focusCards && m.grid.Len() == 0 {
		m.focus = focusToggle
	}
	if !m.ready {
		return
	}
	m.body.SetContent(m.renderBody())
}

// renderBody renders the grid followed by the timeline panel.
func (m Model) renderBody() string {
	cols := columnsFor(m.width)
	var b strings.Builder
	b.WriteString(m.grid.View(m.theme, cols, m.focus == focusCards))
	if m.showTimeline {
		styles := m.theme.Styles()
		b.WriteString("\n\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Timeline"))
		b.WriteString("\n")
		b.WriteString(m.timeline.View(m.theme, m.width))
	}
	return b.String()
}

// renderMain renders the full screen.
func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.search.View(),
		m.renderChips(),
		m.body.View(),
		m.renderFooter(),
	)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
