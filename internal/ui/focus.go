package ui

// focusRing is an ordered, wrapping set of focusable controls.
type focusRing[T comparable] struct {
	items []T
	index int
}

func newFocusRing[T comparable](items ...T) focusRing[T] {
	return focusRing[T]{items: items}
}

// Len returns the number of focusable controls.
func (r focusRing[T]) Len() int {
	return len(r.items)
}

// Current returns the focused control.
func (r focusRing[T]) Current() (T, bool) {
	var zero T
	if len(r.items) == 0 {
		return zero, false
	}
	return r.items[r.index], true
}

// Next moves forward, wrapping from the last control to the first.
func (r *focusRing[T]) Next() T {
	var zero T
	if len(r.items) == 0 {
		return zero
	}
	r.index = (r.index + 1) % len(r.items)
	return r.items[r.index]
}

// Prev moves backward, wrapping from the first control to the last.
func (r *focusRing[T]) Prev() T {
	var zero T
	if len(r.items) == 0 {
		return zero
	}
	r.index = (r.index - 1 + len(r.items)) % len(r.items)
	return r.items[r.index]
}

// Focus moves to target and reports whether it is part of the ring.
func (r *focusRing[T]) Focus(target T) bool {
	for i, item := range r.items {
		if item == target {
			r.index = i
			return true
		}
	}
	return false
}

// focusTarget is a background control that can hold focus while no modal
// is open.
type focusTarget int

const (
	focusSearch focusTarget = iota
	focusChips
	focusCards
	focusToggle
	focusBackToTop
)

func (f focusTarget) String() string {
	switch f {
	case focusSearch:
		return "search"
	case focusChips:
		return "chips"
	case focusCards:
		return "cards"
	case focusToggle:
		return "timeline toggle"
	case focusBackToTop:
		return "back to top"
	default:
		return "unknown"
	}
}

// backgroundRing lists the background controls that can currently take
// focus, in tab order.
func (m Model) backgroundRing() focusRing[focusTarget] {
	targets := []focusTarget{focusSearch, focusChips}
	if m.grid.Len() > 0 {
		targets = append(targets, focusCards)
	}
	targets = append(targets, focusToggle)
	if m.backToTopVisible() {
		targets = append(targets, focusBackToTop)
	}
	return newFocusRing(targets...)
}

// cycleFocus moves background focus forward or backward.
func (m *Model) cycleFocus(forward bool) {
	ring := m.backgroundRing()
	if !ring.Focus(m.focus) {
		ring.Focus(focusToggle)
	}
	if forward {
		m.setFocus(ring.Next())
	} else {
		m.setFocus(ring.Prev())
	}
}

// setFocus moves background focus to target.
func (m *Model) setFocus(target focusTarget) {
	m.focus = target
	if target == focusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
	m.refreshBody()
	if target == focusCards {
		m.scrollCardIntoView()
	}
}
