// Package ui provides marquee's terminal catalog browser.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. Update is the only writer of filter
// and view state; commands (debounce ticks, share, watch) report back as
// messages.
//
// # Package Structure
//
//   - app.go: Model, Options, key routing, layout and the Run function
//   - startup.go: ordered startup pipeline (grid, timeline, seed query, deep link)
//   - input.go: search input with generation-based debounce
//   - chips.go: category chips and the timeline toggle row
//   - grid.go: card grid, rebuilt in full on every filter change
//   - timeline.go: chronological panel built once from the full catalog
//   - detail.go: modal detail controller with a focus trap and share/watch actions
//   - focus.go: focus rings for background controls and the modal trap
//   - mouse.go, modal.go, help.go, header.go, status.go: input and chrome
//
// # Screen Layout
//
//  1. Header: counts, the filter in effect, theme
//  2. Search input
//  3. Category chips, timeline toggle on the right
//  4. Scrollable body: card grid, then the timeline panel when expanded
//  5. Footer: the current link, status messages, back-to-top
//
// # Filter Behavior
//
// Search and category selection each re-derive the grid from the full
// catalog; whichever committed last is in effect. A search with no matches
// shows everything. Committed searches are written to the link's q
// parameter.
//
// # Detail Modal
//
// While the modal is open every key and click goes to it. Tab and
// Shift+Tab cycle its controls and wrap. Escape, the Close control or a
// click outside the box closes it, and focus returns to the timeline
// toggle.
//
// # Key Bindings
//
//   - /: Focus search (esc leaves)
//   - 0-9: Select phase (0 = all)
//   - t: Toggle timeline
//   - tab / shift+tab: Move between controls
//   - enter: Open card / activate control
//   - w / s: Watch / share from the detail view
//   - home: Back to top (once scrolled past the threshold)
//   - T: Cycle theme
//   - ?: Help
//   - q or Ctrl+C: Exit
package ui
