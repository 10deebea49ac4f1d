package ui

import "time"

// Screen rows above and below the scrollable body.
const (
	headerRow  = 0
	searchRow  = 1
	chipsRow   = 2
	bodyTop    = 3
	footerRows = 1
)

// Card geometry, in cells. Height includes the border.
const (
	cardWidth        = 30
	cardHeight       = 6
	cardGap          = 1
	cardContentLines = cardHeight - 2
)

// Detail modal geometry.
const (
	detailMaxWidth = 76
	detailMinWidth = 36
)

// Timing constants.
const (
	// DefaultSearchDebounce is the quiet period before a search commits.
	DefaultSearchDebounce = 300 * time.Millisecond

	// ActionTimeout bounds a share command.
	ActionTimeout = 5 * time.Second

	// StatusLifetime is how long a footer status message stays visible.
	StatusLifetime = 4 * time.Second
)

// DefaultBackToTop is the scroll offset, in rows, past which the
// back-to-top control appears.
const DefaultBackToTop = 20
