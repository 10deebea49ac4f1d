// Package filter derives the visible subset of the catalog from the current
// filter state. Every function here is pure and order-preserving.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/marquee/internal/catalog"
)

// Category selects a phase by key, or every phase.
type Category struct {
	key int
	all bool
}

// AllCategories disables category filtering.
var AllCategories = Category{all: true}

// Phase selects the items whose phase number equals key.
func Phase(key int) Category {
	return Category{key: key}
}

// IsAll reports whether c disables category filtering.
func (c Category) IsAll() bool {
	return c.all
}

// Key returns the phase key; it is meaningless when IsAll is true.
func (c Category) Key() int {
	return c.key
}

func (c Category) String() string {
	if c.all {
		return "all"
	}
	return strconv.Itoa(c.key)
}

// ParseCategory parses "all" or an integer phase key.
func ParseCategory(value string) (Category, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return AllCategories, nil
	}
	key, err := strconv.Atoi(value)
	if err != nil {
		return Category{}, fmt.Errorf("invalid category %q: want \"all\" or a phase number", value)
	}
	return Phase(key), nil
}

// Origin names the input that last committed a filter.
type Origin int

const (
	// OriginSearch means the grid reflects the search term only.
	OriginSearch Origin = iota
	// OriginCategory means the grid reflects the category only.
	OriginCategory
)

// State is the filter state owned by the event coordinator.
//
// Search and category are not combined. Each input re-derives the grid from
// the full catalog on its own, so Origin decides which one is in effect. The
// zero value shows everything.
type State struct {
	SearchTerm string
	Category   Category
	Origin     Origin
}

// WithSearch returns s with a committed search term.
func (s State) WithSearch(term string) State {
	s.SearchTerm = Normalize(term)
	s.Origin = OriginSearch
	return s
}

// WithCategory returns s with a committed category selection.
func (s State) WithCategory(c Category) State {
	s.Category = c
	s.Origin = OriginCategory
	return s
}

// Describe returns a short label for the filter in effect.
func (s State) Describe() string {
	switch s.Origin {
	case OriginCategory:
		if s.Category.IsAll() {
			return "All phases"
		}
		return "Phase " + s.Category.String()
	default:
		if s.SearchTerm == "" {
			return "All"
		}
		return fmt.Sprintf("Search %q", s.SearchTerm)
	}
}

// Apply derives the visible items for st from the full catalog.
func Apply(items []catalog.Item, st State) []catalog.Item {
	if st.Origin == OriginCategory {
		return ByCategory(items, st.Category)
	}
	return Search(items, st.SearchTerm)
}

// Normalize trims and lowercases a search term.
func Normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Search returns the items matching term. A term that matches nothing
// yields the full input rather than an empty result.
func Search(items []catalog.Item, term string) []catalog.Item {
	matches := SearchMatches(items, term)
	if len(matches) == 0 {
		return clone(items)
	}
	return matches
}

// SearchMatches returns exactly the items matching term, without the
// no-results fallback. An empty term matches everything.
func SearchMatches(items []catalog.Item, term string) []catalog.Item {
	term = Normalize(term)
	if term == "" {
		return clone(items)
	}
	out := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if Matches(item, term) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether the normalized term is a substring of the item's
// title, year, phase label or description, ignoring case.
func Matches(item catalog.Item, term string) bool {
	fields := [...]string{item.Title, item.Year, item.Phase, item.Description}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// ByCategory returns the items in category c.
func ByCategory(items []catalog.Item, c Category) []catalog.Item {
	if c.IsAll() {
		return clone(items)
	}
	out := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if item.PhaseNumber == c.key {
			out = append(out, item)
		}
	}
	return out
}

func clone(items []catalog.Item) []catalog.Item {
	out := make([]catalog.Item, len(items))
	copy(out, items)
	return out
}
