// Package airfoil holds the reference airfoil tables used to seed
// realistic base geometries. Tables are immutable for the process
// lifetime and treated as a versioned external dataset; lengths are in
// the dataset's native unit (inches), angles in degrees.
package airfoil

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownShape is returned when no table matches the requested name.
var ErrUnknownShape = errors.New("airfoil: unknown reference shape")

// Station is one spanwise slice of a reference wing.
type Station struct {
	// Eta is the spanwise fraction, 0 at the root and 1 at the tip.
	Eta float64
	// LE is the leading edge coordinate in inches.
	LE [3]float64
	// Twist is the slice twist in degrees. The dataset convention
	// orders the twist column tip to root; reversing it is the mesh
	// factory's job, not the table's.
	Twist float64
	// Chord is the slice chord in inches.
	Chord float64
}

// Table is an ordered sequence of stations, eta ascending.
type Table struct {
	Name     string
	Stations []Station
}

// Lookup returns the table registered under name.
func Lookup(name string) (*Table, error) {
	t, ok := tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return t, nil
}

// Shapes lists the registered table names, sorted.
func Shapes() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
