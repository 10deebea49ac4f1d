// Package urlstate keeps the addressable link of the current view: the
// search term lives in the "q" query parameter and a bare fragment names an
// item to open on load.
package urlstate

import (
	"fmt"
	"net/url"
	"strings"
)

// QueryParam is the query parameter holding the search term.
const QueryParam = "q"

// Location is the current link. It only ever holds one URL: updates replace
// it in place, there is no history.
type Location struct {
	u *url.URL
}

// Parse builds a Location from raw, falling back to base when raw is empty.
// A raw value without a scheme ("?q=thor#iron-man", "#thor") is resolved
// against base.
func Parse(raw, base string) (*Location, error) {
	baseURL, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", base, err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &Location{u: baseURL}, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse link %q: %w", raw, err)
	}
	if u.Scheme == "" && u.Host == "" {
		u = baseURL.ResolveReference(u)
	}
	return &Location{u: u}, nil
}

// Search returns the "q" parameter, or "" when absent.
func (l *Location) Search() string {
	if l == nil || l.u == nil {
		return ""
	}
	return l.u.Query().Get(QueryParam)
}

// SetSearch writes the search term into "q", deleting the parameter when the
// term is empty.
func (l *Location) SetSearch(term string) {
	if l == nil || l.u == nil {
		return
	}
	values := l.u.Query()
	if term == "" {
		values.Del(QueryParam)
	} else {
		values.Set(QueryParam, term)
	}
	l.u.RawQuery = values.Encode()
}

// Fragment returns the deep-link item id, or "" when absent.
func (l *Location) Fragment() string {
	if l == nil || l.u == nil {
		return ""
	}
	return l.u.Fragment
}

// ClearFragment drops the fragment from the current link.
func (l *Location) ClearFragment() {
	if l == nil || l.u == nil {
		return
	}
	l.u.Fragment = ""
	l.u.RawFragment = ""
}

// ShareURL returns the current link without its fragment, plus "#" and id.
func (l *Location) ShareURL(id string) string {
	if l == nil || l.u == nil {
		return "#" + id
	}
	dup := *l.u
	dup.Fragment = ""
	dup.RawFragment = ""
	return dup.String() + "#" + url.PathEscape(id)
}

func (l *Location) String() string {
	if l == nil || l.u == nil {
		return ""
	}
	return l.u.String()
}
