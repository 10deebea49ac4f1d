package catalog

import "strings"

// Item is a single catalog entry. All fields are treated as present but
// possibly empty; the loader does not validate them beyond id uniqueness.
type Item struct {
	ID          string `toml:"id" yaml:"id" json:"id"`
	Title       string `toml:"title" yaml:"title" json:"title"`
	Year        string `toml:"year" yaml:"year" json:"year"`
	Phase       string `toml:"phase" yaml:"phase" json:"phase"`
	PhaseNumber int    `toml:"phase_number" yaml:"phase_number" json:"phaseNumber"`
	Poster      string `toml:"poster" yaml:"poster" json:"poster"`
	Alt         string `toml:"alt" yaml:"alt" json:"alt,omitempty"`
	Description string `toml:"description" yaml:"description" json:"description"`
	WatchURL    string `toml:"watch_url" yaml:"watch_url" json:"watchUrl"`
}

// AltText returns the poster alt text, falling back to the title.
func (i Item) AltText() string {
	if alt := strings.TrimSpace(i.Alt); alt != "" {
		return alt
	}
	return i.Title
}

// Category groups items sharing a phase number.
type Category struct {
	Key   int
	Label string
}

// Position locates an item within the full, unfiltered catalog.
type Position struct {
	Ordinal int // 1-based
	Total   int
}
