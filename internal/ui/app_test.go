package ui

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/share"
	"github.com/five82/marquee/internal/urlstate"
)

const testBase = "https://marquee.local/"

func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.New([]catalog.Item{
		{ID: "iron-man", Title: "Iron Man", Year: "2008", Phase: "Phase One", PhaseNumber: 1, WatchURL: "https://example.com/iron-man"},
		{ID: "hulk", Title: "The Incredible Hulk", Year: "2008", Phase: "Phase One", PhaseNumber: 1, WatchURL: "https://example.com/hulk"},
		{ID: "thor", Title: "Thor", Year: "2011", Phase: "Phase One", PhaseNumber: 1, Description: "A god is exiled to Earth.", WatchURL: "https://example.com/thor"},
		{ID: "winter-soldier", Title: "Captain America: The Winter Soldier", Year: "2014", Phase: "Phase Two", PhaseNumber: 2, WatchURL: "https://example.com/cap"},
		{ID: "ant-man", Title: "Ant-Man", Year: "2015", Phase: "Phase Two", PhaseNumber: 2},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return store
}

type fakeSharer struct {
	method share.Method
	err    error
	got    []share.Payload
}

func (f *fakeSharer) Share(_ context.Context, p share.Payload) (share.Method, error) {
	f.got = append(f.got, p)
	return f.method, f.err
}

func newTestModel(t *testing.T, link string, mutate ...func(*Options)) Model {
	t.Helper()
	loc, err := urlstate.Parse(link, testBase)
	if err != nil {
		t.Fatalf("urlstate.Parse(%q): %v", link, err)
	}
	opts := Options{
		Catalog:   testStore(t),
		Location:  loc,
		Debounce:  time.Millisecond,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		OpenURL:   func(string) error { return nil },
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	m := New(opts)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

// boot runs the startup pipeline, delivering the debounce tick of a
// seeded search as soon as it is scheduled.
func boot(t *testing.T, m Model) Model {
	t.Helper()
	for s := stageGrid; s <= stageReady; s++ {
		m, _ = update(t, m, stageMsg{stage: s})
		if m.seedPending {
			m, _ = update(t, m, searchDebounceMsg{gen: m.searchGen})
		}
	}
	if !m.started {
		t.Fatalf("startup did not reach the ready stage (stage = %v)", m.stage)
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, keyMsg(k))
	}
	return m
}

func typeText(t *testing.T, m Model, text string) (Model, []int) {
	t.Helper()
	var gens []int
	for _, r := range text {
		var cmd tea.Cmd
		m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		if cmd == nil {
			t.Fatalf("keystroke %q scheduled no debounce", r)
		}
		gens = append(gens, m.searchGen)
	}
	return m, gens
}

func commitPending(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, searchDebounceMsg{gen: m.searchGen})
	return m
}

func TestStartup_RunsStagesInOrder(t *testing.T) {
	m := newTestModel(t, "")

	m, _ = update(t, m, stageMsg{stage: stageTimeline})
	if m.timeline.Len() != 0 {
		t.Fatalf("timeline built before the grid stage")
	}

	m = boot(t, m)
	want := []string{"iron-man", "hulk", "thor", "winter-soldier", "ant-man"}
	if got := m.grid.IDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("grid = %v, want %v", got, want)
	}
	if m.timeline.Len() != 5 {
		t.Fatalf("timeline entries = %d, want 5", m.timeline.Len())
	}
	if m.focus != focusCards {
		t.Fatalf("focus = %v, want cards", m.focus)
	}
}

func TestSearch_DebounceCommitsOnlyLatest(t *testing.T) {
	m := boot(t, newTestModel(t, ""))
	m = press(t, m, "/")
	if m.focus != focusSearch {
		t.Fatalf("focus = %v, want search", m.focus)
	}

	m, gens := typeText(t, m, "thor")

	// An earlier tick arriving late must not commit.
	m, _ = update(t, m, searchDebounceMsg{gen: gens[0]})
	if m.grid.Len() != 5 || m.location.Search() != "" {
		t.Fatalf("stale debounce committed: grid=%v q=%q", m.grid.IDs(), m.location.Search())
	}

	m, _ = update(t, m, searchDebounceMsg{gen: gens[len(gens)-1]})
	if got := m.grid.IDs(); !reflect.DeepEqual(got, []string{"thor"}) {
		t.Fatalf("grid = %v, want [thor]", got)
	}
	if got := m.location.String(); got != testBase+"?q=thor" {
		t.Fatalf("link = %q, want %q", got, testBase+"?q=thor")
	}
}

func TestSearch_NoMatchShowsEverything(t *testing.T) {
	m := boot(t, newTestModel(t, ""))
	m = press(t, m, "/")
	m, _ = typeText(t, m, "zzz")
	m = commitPending(t, m)

	if m.grid.Len() != 5 {
		t.Fatalf("grid len = %d, want full catalog", m.grid.Len())
	}
	if !m.fallback {
		t.Fatalf("fallback = false, want true")
	}
	if m.location.Search() != "zzz" {
		t.Fatalf("q = %q, want zzz", m.location.Search())
	}
}

func TestSearch_ClearingRemovesQuery(t *testing.T) {
	m := boot(t, newTestModel(t, "?q=thor"))
	m = commitPending(t, m)
	if m.location.Search() != "thor" {
		t.Fatalf("seeded q = %q, want thor", m.location.Search())
	}

	m = press(t, m, "/")
	for range "thor" {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = commitPending(t, m)

	if m.location.String() != testBase {
		t.Fatalf("link = %q, want %q", m.location.String(), testBase)
	}
	if m.grid.Len() != 5 {
		t.Fatalf("grid len = %d, want 5", m.grid.Len())
	}
}

func TestStartup_SeedQueryMatchesTyping(t *testing.T) {
	seeded := boot(t, newTestModel(t, "?q=Thor"))
	if seeded.search.Value() != "Thor" {
		t.Fatalf("search input = %q, want it seeded from q", seeded.search.Value())
	}
	seeded = commitPending(t, seeded)

	typed := boot(t, newTestModel(t, ""))
	typed = press(t, typed, "/")
	typed, _ = typeText(t, typed, "Thor")
	typed = commitPending(t, typed)

	if !reflect.DeepEqual(seeded.grid.IDs(), typed.grid.IDs()) {
		t.Fatalf("seeded grid %v != typed grid %v", seeded.grid.IDs(), typed.grid.IDs())
	}
	if seeded.location.String() != typed.location.String() {
		t.Fatalf("seeded link %q != typed link %q", seeded.location.String(), typed.location.String())
	}
}

func TestStartup_DeepLinkWaitsForSeededSearch(t *testing.T) {
	m := newTestModel(t, "?q=thor#nope")
	for s := stageGrid; s <= stageDeepLink; s++ {
		m, _ = update(t, m, stageMsg{stage: s})
	}
	if m.grid.err != "" {
		t.Fatalf("deep link resolved before the seeded search committed")
	}

	m, cmd := update(t, m, searchDebounceMsg{gen: m.searchGen})
	if cmd == nil {
		t.Fatalf("seeded commit did not release the deep link stage")
	}
	m, _ = update(t, m, cmd())
	m, _ = update(t, m, stageMsg{stage: stageReady})

	if !m.started {
		t.Fatalf("startup stuck at stage %v", m.stage)
	}
	if !strings.Contains(m.grid.err, "Movie not found: nope") {
		t.Fatalf("grid error = %q, want not found message", m.grid.err)
	}
	if m.location.Search() != "thor" {
		t.Fatalf("q = %q, want thor", m.location.Search())
	}
}

func TestStartup_UnknownDeepLinkSurvivesSeededSearch(t *testing.T) {
	m := boot(t, newTestModel(t, "?q=thor#nope"))

	// A late duplicate of the seed tick must not rebuild the grid.
	m = commitPending(t, m)

	if !strings.Contains(m.grid.err, "Movie not found: nope") {
		t.Fatalf("grid error = %q ids=%v, want not found message kept", m.grid.err, m.grid.IDs())
	}
	if m.detail.open {
		t.Fatalf("detail opened for an unknown id")
	}
}

func TestStartup_SeededDeepLinkOpensOnFilteredGrid(t *testing.T) {
	m := boot(t, newTestModel(t, "?q=thor#iron-man"))

	if !m.detail.open || m.detail.item.ID != "iron-man" {
		t.Fatalf("detail = %+v, want iron-man open", m.detail.item.ID)
	}
	if got := m.grid.IDs(); !reflect.DeepEqual(got, []string{"thor"}) {
		t.Fatalf("grid = %v, want seeded search applied", got)
	}
}

func TestCategory_LastInputWins(t *testing.T) {
	m := boot(t, newTestModel(t, ""))
	m = press(t, m, "/")
	m, _ = typeText(t, m, "thor")
	m = commitPending(t, m)
	m = press(t, m, "esc")

	m = press(t, m, "2")
	if got := m.grid.IDs(); !reflect.DeepEqual(got, []string{"winter-soldier", "ant-man"}) {
		t.Fatalf("grid after phase 2 = %v", got)
	}
	if m.activeChip != 2 {
		t.Fatalf("activeChip = %d, want 2", m.activeChip)
	}
	if m.search.Value() != "thor" || m.location.Search() != "thor" {
		t.Fatalf("category click cleared search: input=%q q=%q", m.search.Value(), m.location.Search())
	}

	m = press(t, m, "0")
	if m.grid.Len() != 5 || m.activeChip != 0 {
		t.Fatalf("after All: grid=%d activeChip=%d", m.grid.Len(), m.activeChip)
	}

	m = press(t, m, "7")
	if m.activeChip != 0 || m.grid.Len() != 5 {
		t.Fatalf("unknown phase key changed selection: chip=%d grid=%d", m.activeChip, m.grid.Len())
	}
}

func TestCategory_ChipsActivateFromFocus(t *testing.T) {
	m := boot(t, newTestModel(t, ""))
	m.setFocus(focusChips)
	m = press(t, m, "right", "enter")
	if m.activeChip != 1 {
		t.Fatalf("activeChip = %d, want 1", m.activeChip)
	}
	if got := m.grid.IDs(); !reflect.DeepEqual(got, []string{"iron-man", "hulk", "thor"}) {
		t.Fatalf("grid = %v", got)
	}
}

func TestTimeline_ToggleAndIgnoresFilters(t *testing.T) {
	m := boot(t, newTestModel(t, ""))
	if m.showTimeline {
		t.Fatalf("timeline visible at startup")
	}
	if !strings.Contains(m.renderChips(), timelineShowLabel) {
		t.Fatalf("chips row missing %q", timelineShowLabel)
	}

	m = press(t, m, "t")
	if !m.showTimeline || !strings.Contains(m.renderChips(), timelineHideLabel) {
		t.Fatalf("toggle did not expand the timeline")
	}

	m = press(t, m, "2")
	if m.timeline.Len() != 5 {
		t.Fatalf("timeline entries = %d after filtering, want 5", m.timeline.Len())
	}

	m = press(t, m, "t")
	if m.showTimeline {
		t.Fatalf("second toggle did not hide the timeline")
	}
}

func TestDetail_OpenReportsPosition(t *testing.T) {
	m := boot(t, newTestModel(t, ""))
	m.grid.cursor = 2
	m = press(t, m, "enter")

	if !m.detail.open || m.detail.item.ID != "thor" {
		t.Fatalf("detail = %+v, want thor open", m.detail)
	}
	if m.detail.position != (catalog.Position{Ordinal: 3, Total: 5}) {
		t.Fatalf("position = %+v, want 3 of 5", m.detail.position)
	}
	if !strings.Contains(m.View(), "3 of 5") {
		t.Fatalf("detail view missing chronological order")
	}
}

func TestDetail_OrdinalIgnoresFilter(t *testing.T) {
	m := boot(t, newTestModel(t, ""))
	m = press(t, m, "2")
	m = press(t, m, "right", "enter")

	if m.detail.item.ID != "ant-man" {
		t.Fatalf("opened %q, want ant-man", m.detail.item.ID)
	}
	if m.detail.position.Ordinal != 5 {
		t.Fatalf("ordinal = %d, want 5 (full catalog)", m.detail.position.Ordinal)
	}
}

func TestDetail_UnknownDeepLinkShowsInlineError(t *testing.T) {
	m := boot(t, newTestModel(t, "#nope"))

	if m.detail.open {
		t.Fatalf("detail opened for an unknown id")
	}
	if !strings.Contains(m.grid.err, "Movie not found") {
		t.Fatalf("grid error = %q, want not found message", m.grid.err)
	}
	if m.focus == focusCards {
		t.Fatalf("focus left on an empty grid")
	}
}

func TestDetail_DeepLinkOpensOnce(t *testing.T) {
	m := boot(t, newTestModel(t, "#hulk"))
	if !m.detail.open || m.detail.item.ID != "hulk" {
		t.Fatalf("deep link did not open hulk: %+v", m.detail)
	}

	m = press(t, m, "esc")
	if m.detail.open {
		t.Fatalf("escape did not close the detail view")
	}
	if m.location.Fragment() != "" {
		t.Fatalf("fragment = %q after close, want empty", m.location.Fragment())
	}

	m, _ = update(t, m, stageMsg{stage: stageDeepLink})
	if m.detail.open {
		t.Fatalf("deep link stage ran twice")
	}
}

func TestDetail_FocusTrapWrapsAndBackgroundIsInert(t *testing.T) {
	m := boot(t, newTestModel(t, "#thor"))

	current := func() detailControl {
		c, ok := m.detail.focused()
		if !ok {
			t.Fatalf("no control focused")
		}
		return c
	}
	if current() != controlWatch {
		t.Fatalf("initial focus = %v, want watch", current().label())
	}
	for _, want := range []detailControl{controlShare, controlClose, controlWatch} {
		m = press(t, m, "tab")
		if current() != want {
			t.Fatalf("tab focus = %s, want %s", current().label(), want.label())
		}
	}
	m = press(t, m, "shift+tab")
	if current() != controlClose {
		t.Fatalf("shift+tab from first = %s, want Close", current().label())
	}

	m = press(t, m, "t", "2", "/", "q")
	if m.showTimeline || m.activeChip != 0 || m.focus == focusSearch {
		t.Fatalf("background reacted while the modal was open")
	}
	if !m.detail.open {
		t.Fatalf("detail closed by background keys")
	}
}

func TestDetail_WithoutWatchURLSkipsWatch(t *testing.T) {
	m := boot(t, newTestModel(t, "#ant-man"))
	if got := m.detail.trap.items; !reflect.DeepEqual(got, []detailControl{controlShare, controlClose}) {
		t.Fatalf("trap = %v, want [Share Close]", got)
	}
}

func TestDetail_CloseFocusesTimelineToggle(t *testing.T) {
	m := boot(t, newTestModel(t, ""))
	m = press(t, m, "enter")
	m = press(t, m, "tab", "tab", "enter")

	if m.detail.open {
		t.Fatalf("Close control did not close the modal")
	}
	if m.focus != focusToggle {
		t.Fatalf("focus = %v, want timeline toggle", m.focus)
	}
}

func TestDetail_ShareFallsBackToClipboardNotice(t *testing.T) {
	sharer := &fakeSharer{method: share.MethodClipboard}
	m := boot(t, newTestModel(t, "?q=thor", func(o *Options) { o.Sharer = sharer }))
	m = commitPending(t, m)
	m = press(t, m, "enter")

	m, cmd := update(t, m, keyMsg("s"))
	if cmd == nil {
		t.Fatalf("share produced no command")
	}
	m, _ = update(t, m, cmd())

	if len(sharer.got) != 1 {
		t.Fatalf("share calls = %d, want 1", len(sharer.got))
	}
	p := sharer.got[0]
	if p.URL != testBase+"?q=thor#thor" {
		t.Fatalf("share URL = %q", p.URL)
	}
	if p.Text != "Watch Thor (2011) - Phase One" {
		t.Fatalf("share text = %q", p.Text)
	}
	if m.modal == nil || !strings.Contains(m.View(), "Link copied to clipboard") {
		t.Fatalf("clipboard fallback did not show a confirmation")
	}

	m = press(t, m, "x")
	if m.modal != nil {
		t.Fatalf("notice not dismissed by a key")
	}
	if !m.detail.open {
		t.Fatalf("dismissing the notice closed the detail view")
	}
}

func TestDetail_TerminalClipboardNoticeIsTentative(t *testing.T) {
	sharer := &fakeSharer{method: share.MethodTerminal}
	m := boot(t, newTestModel(t, "#thor", func(o *Options) { o.Sharer = sharer }))

	m, cmd := update(t, m, keyMsg("s"))
	m, _ = update(t, m, cmd())

	notice, ok := m.modal.(noticeModal)
	if !ok {
		t.Fatalf("modal = %T, want notice", m.modal)
	}
	if strings.Contains(notice.message, "copied") {
		t.Fatalf("notice %q claims a confirmed copy", notice.message)
	}
	if !strings.Contains(notice.message, "Some terminals ignore this") || !strings.Contains(notice.message, testBase+"#thor") {
		t.Fatalf("notice = %q, want caveat and link", notice.message)
	}
}

func TestDetail_ShareFailureIsReported(t *testing.T) {
	sharer := &fakeSharer{err: errors.New("no clipboard")}
	m := boot(t, newTestModel(t, "#thor", func(o *Options) { o.Sharer = sharer }))

	m, cmd := update(t, m, keyMsg("s"))
	m, _ = update(t, m, cmd())

	if m.status.kind != statusError || !strings.Contains(m.status.text, "no clipboard") {
		t.Fatalf("status = %+v, want share error", m.status)
	}
	if m.modal != nil {
		t.Fatalf("notice shown for a failed share")
	}
}

func TestDetail_WatchOpensLink(t *testing.T) {
	var opened []string
	m := boot(t, newTestModel(t, "#iron-man", func(o *Options) {
		o.OpenURL = func(u string) error {
			opened = append(opened, u)
			return nil
		}
	}))

	m, cmd := update(t, m, keyMsg("enter"))
	if cmd == nil {
		t.Fatalf("watch produced no command")
	}
	m, _ = update(t, m, cmd())

	if !reflect.DeepEqual(opened, []string{"https://example.com/iron-man"}) {
		t.Fatalf("opened = %v", opened)
	}
	if m.status.kind != statusInfo || m.status.text == "" {
		t.Fatalf("status = %+v, want info message", m.status)
	}
}

func TestBackToTop_AppearsPastThresholdAndResets(t *testing.T) {
	m := newTestModel(t, "", func(o *Options) { o.BackToTop = 2 })
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 12})
	m = boot(t, m)
	m = press(t, m, "t")
	m.body.GotoTop()
	m.refreshBody()

	if m.backToTopVisible() {
		t.Fatalf("back-to-top visible at offset 0")
	}

	m = press(t, m, "pgdown")
	if !m.backToTopVisible() {
		t.Fatalf("back-to-top hidden at offset %d (threshold 2)", m.body.YOffset)
	}
	if !strings.Contains(m.renderFooter(), backToTopLabel) {
		t.Fatalf("footer missing back-to-top control")
	}

	m = press(t, m, "home")
	if m.body.YOffset != 0 {
		t.Fatalf("offset = %d after back-to-top, want 0", m.body.YOffset)
	}
	if m.focus != focusToggle {
		t.Fatalf("focus = %v, want timeline toggle", m.focus)
	}
}

func TestFocus_TabCyclesBackgroundControls(t *testing.T) {
	m := boot(t, newTestModel(t, ""))
	m.setFocus(focusSearch)

	var order []focusTarget
	for i := 0; i < 4; i++ {
		m = press(t, m, "tab")
		order = append(order, m.focus)
	}
	want := []focusTarget{focusChips, focusCards, focusToggle, focusSearch}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("tab order = %v, want %v", order, want)
	}
}

func TestMouse_CardClickAndBackdropClick(t *testing.T) {
	m := boot(t, newTestModel(t, ""))

	click := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	m, _ = update(t, m, click(cardWidth+cardGap+2, bodyTop+1))
	if !m.detail.open || m.detail.item.ID != "hulk" {
		t.Fatalf("card click opened %+v, want hulk", m.detail.item.ID)
	}

	m, _ = update(t, m, click(0, 0))
	if m.detail.open {
		t.Fatalf("backdrop click did not close the modal")
	}
	if m.focus != focusToggle {
		t.Fatalf("focus = %v, want timeline toggle", m.focus)
	}
}

func TestTheme_CyclePersists(t *testing.T) {
	m := boot(t, newTestModel(t, ""))
	before := m.theme.Name
	m = press(t, m, "T")
	if m.theme.Name == before {
		t.Fatalf("theme unchanged after T")
	}
}
