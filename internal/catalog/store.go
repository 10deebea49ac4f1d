package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Store is the read-only, ordered catalog. It is built once before the UI
// starts and never mutated afterwards, so it is safe to share.
type Store struct {
	items []Item
	index map[string]int
}

// New builds a store from items in chronological order. Ids must be unique.
func New(items []Item) (*Store, error) {
	s := &Store{
		items: cloneItems(items),
		index: make(map[string]int, len(items)),
	}
	for i, item := range s.items {
		id := strings.TrimSpace(item.ID)
		if _, dup := s.index[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		s.items[i].ID = id
		s.index[id] = i
	}
	return s, nil
}

// Items returns a copy of every item in original order.
func (s *Store) Items() []Item {
	if s == nil {
		return nil
	}
	return cloneItems(s.items)
}

// Len returns the number of items.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Lookup resolves id to its item and chronological position. It fails with
// a *NotFoundError when the id is absent.
func (s *Store) Lookup(id string) (Item, Position, error) {
	id = strings.TrimSpace(id)
	if s == nil {
		return Item{}, Position{}, &NotFoundError{ID: id}
	}
	idx, ok := s.index[id]
	if !ok {
		return Item{}, Position{}, &NotFoundError{ID: id}
	}
	return s.items[idx], Position{Ordinal: idx + 1, Total: len(s.items)}, nil
}

// Categories returns the distinct phases, keyed by phase number and labelled
// with the first label seen for that number.
func (s *Store) Categories() []Category {
	if s == nil {
		return nil
	}
	seen := make(map[int]bool)
	var out []Category
	for _, item := range s.items {
		if seen[item.PhaseNumber] {
			continue
		}
		seen[item.PhaseNumber] = true
		out = append(out, Category{Key: item.PhaseNumber, Label: item.Phase})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
