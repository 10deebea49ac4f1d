// Package catalog holds the ordered, read-only collection of movies that
// marquee browses.
//
// # Overview
//
// A Store is built once at startup from a slice of Items in chronological
// order and is never mutated afterwards. Every view derives from it: the
// grid renders a filtered subset, the timeline renders all of it, and the
// detail view resolves ids against it to report an item's position in the
// full catalog.
//
// # Sources
//
// Open picks a loader from the source string:
//
//   - empty: the built-in catalog embedded from movies.toml
//   - http:// or https://: Fetch downloads a JSON catalog
//   - anything else: LoadFile reads .toml, .yaml/.yml or .json/.jsonc
//
// TOML and YAML files use a top-level "items" list with snake_case keys.
// JSON accepts either a bare array or {"items": [...]} with camelCase keys
// (phaseNumber, watchUrl).
//
// # Errors
//
// Lookup returns a *NotFoundError for unknown ids; callers match it with
// errors.Is(err, ErrNotFound). New rejects duplicate ids with ErrDuplicateID.
// Items are otherwise not validated: missing fields are empty strings.
package catalog
