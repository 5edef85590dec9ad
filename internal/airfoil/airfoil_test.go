package airfoil

import (
	"errors"
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"CRM:jig", "CRM:alpha_2.75"} {
		tbl, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if tbl.Name != name {
			t.Errorf("table name = %q, want %q", tbl.Name, name)
		}
		if len(tbl.Stations) < 2 {
			t.Fatalf("%s: only %d stations", name, len(tbl.Stations))
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("NACA:0012")
	if !errors.Is(err, ErrUnknownShape) {
		t.Fatalf("expected ErrUnknownShape, got %v", err)
	}
}

func TestStationsWellFormed(t *testing.T) {
	for _, name := range Shapes() {
		tbl, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		st := tbl.Stations
		if st[0].Eta != 0 || st[len(st)-1].Eta != 1 {
			t.Errorf("%s: eta runs %g..%g, want 0..1", name, st[0].Eta, st[len(st)-1].Eta)
		}
		for i := 1; i < len(st); i++ {
			if st[i].Eta <= st[i-1].Eta {
				t.Errorf("%s: eta not strictly ascending at index %d", name, i)
			}
		}
		for i, s := range st {
			if s.Chord <= 0 {
				t.Errorf("%s: station %d has chord %g", name, i, s.Chord)
			}
		}
	}
}

func TestShapesSorted(t *testing.T) {
	names := Shapes()
	if len(names) != len(tables) {
		t.Fatalf("Shapes() returned %d names, have %d tables", len(names), len(tables))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Shapes() not sorted: %v", names)
	}
}
