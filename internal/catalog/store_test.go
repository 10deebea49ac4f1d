package catalog

import (
	"errors"
	"testing"
)

func sampleItems() []Item {
	return []Item{
		{ID: "iron-man", Title: "Iron Man", Year: "2008", Phase: "Phase One", PhaseNumber: 1},
		{ID: "thor", Title: "Thor", Year: "2011", Phase: "Phase One", PhaseNumber: 1},
		{ID: "winter-soldier", Title: "The Winter Soldier", Year: "2014", Phase: "Phase Two", PhaseNumber: 2},
		{ID: "ragnarok", Title: "Thor: Ragnarok", Year: "2017", Phase: "Phase Three", PhaseNumber: 3},
	}
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	items := sampleItems()
	items[2].ID = "thor"

	_, err := New(items)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("New error = %v, want ErrDuplicateID", err)
	}
}

func TestStore_ItemsReturnsCopyInOrder(t *testing.T) {
	s, err := New(sampleItems())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	items := s.Items()
	if len(items) != 4 || items[0].ID != "iron-man" || items[3].ID != "ragnarok" {
		t.Fatalf("Items = %#v, want original order", items)
	}

	items[0].Title = "changed"
	if got := s.Items()[0].Title; got != "Iron Man" {
		t.Fatalf("Items should return a copy; got title %q", got)
	}
}

func TestStore_LookupReportsPosition(t *testing.T) {
	s, err := New(sampleItems())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	item, pos, err := s.Lookup("winter-soldier")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if item.Title != "The Winter Soldier" {
		t.Fatalf("Title = %q, want The Winter Soldier", item.Title)
	}
	if pos.Ordinal != 3 || pos.Total != 4 {
		t.Fatalf("Position = %+v, want 3 of 4", pos)
	}
}

func TestStore_LookupMissing(t *testing.T) {
	s, err := New(sampleItems())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, _, err = s.Lookup("missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Lookup error = %v, want ErrNotFound", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != "missing-id" {
		t.Fatalf("Lookup error = %#v, want *NotFoundError for missing-id", err)
	}
}

func TestStore_Categories(t *testing.T) {
	items := append(sampleItems(), Item{ID: "zero", Phase: "Prelude", PhaseNumber: 0})
	s, err := New(items)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	got := s.Categories()
	want := []Category{{0, "Prelude"}, {1, "Phase One"}, {2, "Phase Two"}, {3, "Phase Three"}}
	if len(got) != len(want) {
		t.Fatalf("Categories = %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories[%d] = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestItem_AltTextFallsBackToTitle(t *testing.T) {
	if got := (Item{Title: "Thor", Alt: "  "}).AltText(); got != "Thor" {
		t.Fatalf("AltText = %q, want Thor", got)
	}
	if got := (Item{Title: "Thor", Alt: "poster"}).AltText(); got != "poster" {
		t.Fatalf("AltText = %q, want poster", got)
	}
}

func TestDefault_LoadsBuiltInCatalog(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}
	if s.Len() == 0 {
		t.Fatalf("Default catalog is empty")
	}
	if _, pos, err := s.Lookup("iron-man"); err != nil || pos.Ordinal != 1 {
		t.Fatalf("Lookup(iron-man) = %+v, %v; want first item", pos, err)
	}
}
